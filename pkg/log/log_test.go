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

package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(&buf, "info"); err != nil {
		t.Fatal(err)
	}
	defer Init(&bytes.Buffer{}, "warning")

	Error("e %d", 1)
	Warning("w %d", 2)
	Info("i %d", 3)
	Debug("d %d", 4)
	out := buf.String()
	for _, want := range []string{"[go-pulse] ", "[error] e 1", "[warn] w 2", "[info] i 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[debug]") {
		t.Errorf("debug message printed at info level:\n%s", out)
	}
	if !Enabled(InfoLevel) || Enabled(DebugLevel) {
		t.Fatal("unexpected enabled levels")
	}
}

func TestParseLevel(t *testing.T) {
	for name, want := range levelMapping {
		got, err := ParseLevel(name)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q): got %v, %v", name, got, err)
		}
	}
	var le ErrLogLevel
	if err := SetLevel("verbose"); !errors.As(err, &le) || le.Level != "verbose" {
		t.Fatalf("expected ErrLogLevel, got %v", err)
	}
}
