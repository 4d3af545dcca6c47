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

	"jinr.ru/greenlab/go-pulse/pkg/device"
	"jinr.ru/greenlab/go-pulse/pkg/log"
)

// Session drives one acquisition run on a configured device
type Session struct {
	cfg    *device.Configuration
	status StatusChecker
	saver  DataSaver
}

func NewSession(cfg *device.Configuration, status StatusChecker, saver DataSaver) *Session {
	return &Session{
		cfg:    cfg,
		status: status,
		saver:  saver,
	}
}

// Begin strobes the start trigger and waits for the status checker to report
// completion. The status output is returned as is.
func (s *Session) Begin(ctx context.Context) (string, error) {
	if err := s.cfg.Trigger(device.TrigStart); err != nil {
		return "", err
	}
	out, err := s.status.CheckStatus(ctx)
	if err != nil {
		return "", err
	}
	log.Info("Acquisition status: %s", out)
	return out, nil
}

// Save stores the raw samples and the processed pulses of the last run
func (s *Session) Save(ctx context.Context) ([]string, error) {
	samples, err := s.cfg.Get(device.LastSample)
	if err != nil {
		return nil, err
	}
	pulses, err := s.cfg.Get(device.NumPulses)
	if err != nil {
		return nil, err
	}

	var outputs []string
	out, err := s.saver.SaveData(ctx, int(samples))
	if err != nil {
		return outputs, err
	}
	outputs = append(outputs, out)

	out, err = s.saver.SaveProcessedData(ctx, int(pulses))
	if err != nil {
		return outputs, err
	}
	outputs = append(outputs, out)
	return outputs, nil
}
