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

package command

import (
	"io"

	"jinr.ru/greenlab/go-pulse/pkg/acquire"
	"jinr.ru/greenlab/go-pulse/pkg/backend"
	"jinr.ru/greenlab/go-pulse/pkg/config"
	"jinr.ru/greenlab/go-pulse/pkg/device"
	"jinr.ru/greenlab/go-pulse/pkg/log"
	"jinr.ru/greenlab/go-pulse/pkg/regmap"
)

// Device bundles everything a command needs to talk to one instrument
type Device struct {
	*device.Configuration
	Backend backend.RegisterBackend
	closer  io.Closer
}

// Close releases the backend resources
func (d *Device) Close() error {
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}

// NewBackend opens the register backend selected in the config
func NewBackend(cfg *config.Config) (backend.RegisterBackend, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	switch cfg.Backend {
	case config.BackendSim:
		log.Debug("Opening simulated register file: %s", cfg.DBPath)
		state, err := backend.NewState(cfg.DBPath, cfg.DeviceName)
		if err != nil {
			return nil, nil, err
		}
		return backend.NewLocked(state), state, nil
	default:
		log.Debug("Using monitor helper: %s", cfg.MonitorPath)
		return backend.NewLocked(backend.NewMonitor(cfg.MonitorPath)), nil, nil
	}
}

// OpenDevice builds the configuration model of the device described by cfg
func OpenDevice(cfg *config.Config) (*Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rev, err := regmap.ParseRevision(cfg.Revision)
	if err != nil {
		return nil, err
	}
	b, closer, err := NewBackend(cfg)
	if err != nil {
		return nil, err
	}
	c, err := device.NewConfiguration(rev, b)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	return &Device{
		Configuration: c,
		Backend:       b,
		closer:        closer,
	}, nil
}

// NewSession wires the acquisition helpers from the config
func NewSession(cfg *config.Config, d *Device) *acquire.Session {
	programs := acquire.NewPrograms()
	if cfg.AcquireConfig != nil {
		if cfg.CheckStatusPath != "" {
			programs.CheckStatusPath = cfg.CheckStatusPath
		}
		if cfg.SaveDataPath != "" {
			programs.SaveDataPath = cfg.SaveDataPath
		}
		if cfg.SaveProcessedDataPath != "" {
			programs.SaveProcessedDataPath = cfg.SaveProcessedDataPath
		}
	}
	return acquire.NewSession(d.Configuration, programs, programs)
}

// ReportWarnings prints advisory warnings so that the user sees them regardless of the log level
func ReportWarnings(out io.Writer, warnings []regmap.Warning) {
	for _, w := range warnings {
		io.WriteString(out, "warning: "+w.String()+"\n")
	}
}
