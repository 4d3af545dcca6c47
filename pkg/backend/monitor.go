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

package backend

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"jinr.ru/greenlab/go-pulse/pkg/log"
)

const (
	DefaultMonitorPath = "monitor"
)

// Monitor accesses the register file through the privileged monitor helper.
// "monitor ADDR" prints the register word, "monitor ADDR VALUE" writes it.
type Monitor struct {
	Path string
}

var _ RegisterBackend = &Monitor{}

// NewMonitor ...
func NewMonitor(path string) *Monitor {
	if path == "" {
		path = DefaultMonitorPath
	}
	return &Monitor{Path: path}
}

func (m *Monitor) run(op string, addr uint32, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(m.Path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = errors.New(err.Error() + ": " + msg)
		}
		return "", ErrBackend{Op: op, Addr: addr, Err: err}
	}
	return stdout.String(), nil
}

// ReadRegister ...
func (m *Monitor) ReadRegister(addr uint32) (uint32, error) {
	out, err := m.run(OpRead, addr, FormatWord(addr))
	if err != nil {
		return 0, err
	}
	value, err := ParseWord(out)
	if err != nil {
		return 0, ErrBackend{Op: OpRead, Addr: addr, Err: err}
	}
	log.Debug("monitor read: %s = %s", FormatWord(addr), FormatWord(value))
	return value, nil
}

// WriteRegister ...
func (m *Monitor) WriteRegister(addr, value uint32) error {
	log.Debug("monitor write: %s = %s", FormatWord(addr), FormatWord(value))
	_, err := m.run(OpWrite, addr, FormatWord(addr), FormatWord(value))
	return err
}
