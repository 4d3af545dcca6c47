/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package acquire

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"jinr.ru/greenlab/go-pulse/pkg/backend"
	"jinr.ru/greenlab/go-pulse/pkg/device"
	"jinr.ru/greenlab/go-pulse/pkg/regmap"
)

type fakeCollaborators struct {
	calls     []string
	statusErr error
	samples   int
	pulses    int
}

func (f *fakeCollaborators) CheckStatus(ctx context.Context) (string, error) {
	f.calls = append(f.calls, "checkStatus")
	return "done", f.statusErr
}

func (f *fakeCollaborators) SaveData(ctx context.Context, samples int) (string, error) {
	f.calls = append(f.calls, "saveData")
	f.samples = samples
	return "raw saved", nil
}

func (f *fakeCollaborators) SaveProcessedData(ctx context.Context, pulses int) (string, error) {
	f.calls = append(f.calls, "saveProcessedData")
	f.pulses = pulses
	return "processed saved", nil
}

func newTestSession(t *testing.T, rev regmap.Revision) (*Session, *backend.Memory, *fakeCollaborators) {
	t.Helper()
	m := backend.NewMemory()
	cfg, err := device.NewConfiguration(rev, m)
	if err != nil {
		t.Fatal(err)
	}
	fake := &fakeCollaborators{}
	return NewSession(cfg, fake, fake), m, fake
}

func TestBegin(t *testing.T) {
	s, m, fake := newTestSession(t, regmap.Legacy)
	out, err := s.Begin(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if out != "done" {
		t.Fatalf("unexpected status %q", out)
	}
	if word := m.Peek(backend.MemAddr); word != 1<<31 {
		t.Fatalf("expected start trigger bit, got %#x", word)
	}
	if !reflect.DeepEqual(fake.calls, []string{"checkStatus"}) {
		t.Fatalf("unexpected calls %s", spew.Sdump(fake.calls))
	}

	cause := errors.New("timeout")
	fake.statusErr = cause
	if _, err := s.Begin(context.Background()); !errors.Is(err, cause) {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestBeginUnsupported(t *testing.T) {
	s, _, fake := newTestSession(t, regmap.Current)
	var ue device.ErrUnsupported
	if _, err := s.Begin(context.Background()); !errors.As(err, &ue) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if len(fake.calls) != 0 {
		t.Fatalf("status must not be polled without a start trigger: %s", spew.Sdump(fake.calls))
	}
}

func TestSave(t *testing.T) {
	s, m, fake := newTestSession(t, regmap.Legacy)
	m.Poke(backend.MemAddr+0x8, 500)
	m.Poke(backend.MemAddr+0x14, 30)
	outputs, err := s.Save(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(outputs, []string{"raw saved", "processed saved"}) {
		t.Fatalf("unexpected outputs %s", spew.Sdump(outputs))
	}
	if !reflect.DeepEqual(fake.calls, []string{"saveData", "saveProcessedData"}) {
		t.Fatalf("unexpected calls %s", spew.Sdump(fake.calls))
	}
	if fake.samples != 31 || fake.pulses != 500 {
		t.Fatalf("expected 31 samples and 500 pulses, got %d and %d", fake.samples, fake.pulses)
	}
}

func writeProgram(t *testing.T, name, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPrograms(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("collaborators are shell scripts")
	}
	p := &Programs{
		CheckStatusPath:       writeProgram(t, "checkStatus", "#!/bin/sh\necho finished\n"),
		SaveDataPath:          writeProgram(t, "saveData", "#!/bin/sh\necho \"saved $1 samples\"\n"),
		SaveProcessedDataPath: writeProgram(t, "saveProcessedData", "#!/bin/sh\necho failed\nexit 3\n"),
	}
	ctx := context.Background()
	if out, err := p.CheckStatus(ctx); err != nil || out != "finished" {
		t.Fatalf("unexpected status: %s", spew.Sdump(out, err))
	}
	if out, err := p.SaveData(ctx, 1024); err != nil || out != "saved 1024 samples" {
		t.Fatalf("unexpected save output: %s", spew.Sdump(out, err))
	}
	_, err := p.SaveProcessedData(ctx, 500)
	var pe ErrProgram
	if !errors.As(err, &pe) || pe.Output != "failed" {
		t.Fatalf("expected ErrProgram, got %s", spew.Sdump(err))
	}
}
