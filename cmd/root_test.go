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

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jinr.ru/greenlab/go-pulse/pkg/device"
)

type testEnv struct {
	dir string
}

func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{
		"--" + ConfigOptionName, filepath.Join(e.dir, "config"),
		"--" + BackendOptionName, "sim",
		"--" + DBPathOptionName, filepath.Join(e.dir, "registers.db"),
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("%s: %v", strings.Join(args, " "), err)
	}
	return out
}

func TestParamCommands(t *testing.T) {
	env := testEnv{dir: t.TempDir()}
	out := env.mustRun(t, "defaults")
	if !strings.Contains(out, "Defaults written for legacy revision") {
		t.Fatalf("unexpected output: %q", out)
	}

	out = env.mustRun(t, "param", "get", "pulsePeriod", "numPulses")
	for _, want := range []string{"pulsePeriod = 5e-06", "numPulses = 500"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}

	out = env.mustRun(t, "param", "get")
	if strings.Count(out, "\n") != int(device.ParamLimit) {
		t.Errorf("expected every legacy param:\n%s", out)
	}

	out = env.mustRun(t, "param", "set", "subStart", "3")
	if n := strings.Count(out, "warning: subStart: Start of subtraction window must be after the summation window"); n != 2 {
		t.Errorf("expected two window warnings, got %d:\n%s", n, out)
	}
	if !strings.Contains(out, "subStart = 3") {
		t.Errorf("value must be written despite warnings:\n%s", out)
	}

	_, err := env.run(t, "param", "set", "numPulses", "513")
	var ve device.ErrValidation
	if !errors.As(err, &ve) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	out = env.mustRun(t, "param", "set", "rampStart", "300MHz")
	if !strings.Contains(out, "rampStart = ") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := env.run(t, "param", "get", "voltage"); err == nil {
		t.Fatal("expected error for unknown param")
	}

	out = env.mustRun(t, "param", "list", "--"+RevisionOptionName, "current")
	if strings.Contains(out, "rampStart") || !strings.Contains(out, "lastSample       ro") {
		t.Errorf("unexpected param list for current revision:\n%s", out)
	}
}

func TestRegCommands(t *testing.T) {
	env := testEnv{dir: t.TempDir()}
	env.mustRun(t, "defaults")

	out := env.mustRun(t, "reg", "read", "0x8")
	if !strings.Contains(out, "Register state: 0x40000008 = 0x000001f4") || !strings.Contains(out, "numPulses") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	env.mustRun(t, "reg", "write", "0x8", "0x10")
	out = env.mustRun(t, "param", "get", "numPulses")
	if !strings.Contains(out, "numPulses = 16") {
		t.Fatalf("raw write not visible through params:\n%s", out)
	}

	out = env.mustRun(t, "reg", "read")
	if n := strings.Count(out, "Register state:"); n != 13 {
		t.Fatalf("expected 13 legacy registers, got %d:\n%s", n, out)
	}

	if _, err := env.run(t, "reg", "write", "0x8", "zz"); err == nil {
		t.Fatal("expected error for malformed value")
	}
}

func TestControlCommands(t *testing.T) {
	env := testEnv{dir: t.TempDir()}
	env.mustRun(t, "trigger", "start")
	out := env.mustRun(t, "reg", "read", "0x0")
	if !strings.Contains(out, "= 0x80000000") {
		t.Fatalf("start trigger bit not set:\n%s", out)
	}

	var ue device.ErrUnsupported
	if _, err := env.run(t, "trigger", "start", "--"+RevisionOptionName, "current"); !errors.As(err, &ue) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}

	env.mustRun(t, "ramp", "--start", "300MHz", "--end", "310MHz", "--step-time", "10ms", "--duration", "10s")
	out = env.mustRun(t, "param", "get", "numSteps")
	if !strings.Contains(out, "numSteps = 1000") {
		t.Fatalf("unexpected ramp:\n%s", out)
	}

	out = env.mustRun(t, "display")
	for _, want := range []string{"~~~~  Full Registers  ~~~~", "~~~~  Parameters  ~~~~", "DDS Ramp Number of Steps"} {
		if !strings.Contains(out, want) {
			t.Errorf("display lacks %q:\n%s", want, out)
		}
	}
}

func TestConfigCommands(t *testing.T) {
	env := testEnv{dir: t.TempDir()}
	env.mustRun(t, "config", "init", "--"+RevisionOptionName, "current")
	if _, err := os.Stat(filepath.Join(env.dir, "config")); err != nil {
		t.Fatal(err)
	}
	if _, err := env.run(t, "config", "init"); err == nil {
		t.Fatal("expected error for existing config file")
	}

	// revision comes from the file now
	out := env.mustRun(t, "config", "show")
	if !strings.Contains(out, "revision: current") {
		t.Fatalf("unexpected config:\n%s", out)
	}
	out = env.mustRun(t, "param", "list")
	if strings.Contains(out, "rampStart") {
		t.Fatalf("config file revision ignored:\n%s", out)
	}

	if _, err := env.run(t, "param", "list", "--"+BackendOptionName, "ssh"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestCompletion(t *testing.T) {
	env := testEnv{dir: t.TempDir()}
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		if out := env.mustRun(t, "completion", shell); len(out) == 0 {
			t.Errorf("%s: empty completion script", shell)
		}
	}
	if _, err := env.run(t, "completion", "tcsh"); err == nil {
		t.Fatal("expected error for unsupported shell")
	}
}
