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
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"jinr.ru/greenlab/go-pulse/pkg/log"
)

const (
	DefaultCheckStatusPath       = "./checkStatus"
	DefaultSaveDataPath          = "./saveData"
	DefaultSaveProcessedDataPath = "./saveProcessedData"
)

// StatusChecker blocks until the device reports that acquisition is done
type StatusChecker interface {
	CheckStatus(ctx context.Context) (string, error)
}

// DataSaver copies acquired data from the device memory to storage
type DataSaver interface {
	SaveData(ctx context.Context, samples int) (string, error)
	SaveProcessedData(ctx context.Context, pulses int) (string, error)
}

// Programs runs the external helper executables shipped with the firmware
type Programs struct {
	CheckStatusPath       string
	SaveDataPath          string
	SaveProcessedDataPath string
}

var _ StatusChecker = &Programs{}
var _ DataSaver = &Programs{}

// NewPrograms ...
func NewPrograms() *Programs {
	return &Programs{
		CheckStatusPath:       DefaultCheckStatusPath,
		SaveDataPath:          DefaultSaveDataPath,
		SaveProcessedDataPath: DefaultSaveProcessedDataPath,
	}
}

func run(ctx context.Context, path string, args ...string) (string, error) {
	log.Debug("Running %s %s", path, strings.Join(args, " "))
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	output := strings.TrimSpace(stdout.String())
	if err != nil {
		if output == "" {
			output = strings.TrimSpace(stderr.String())
		}
		return "", ErrProgram{Path: path, Output: output, Err: err}
	}
	return output, nil
}

// CheckStatus ...
func (p *Programs) CheckStatus(ctx context.Context) (string, error) {
	return run(ctx, p.CheckStatusPath)
}

// SaveData ...
func (p *Programs) SaveData(ctx context.Context, samples int) (string, error) {
	return run(ctx, p.SaveDataPath, strconv.Itoa(samples))
}

// SaveProcessedData ...
func (p *Programs) SaveProcessedData(ctx context.Context, pulses int) (string, error) {
	return run(ctx, p.SaveProcessedDataPath, strconv.Itoa(pulses))
}
