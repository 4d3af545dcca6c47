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

package device

import (
	"fmt"

	"jinr.ru/greenlab/go-pulse/pkg/log"
	"jinr.ru/greenlab/go-pulse/pkg/regmap"
)

type Trigger int

const (
	TrigPulse Trigger = iota
	TrigSample
	TrigStart
	TrigRamp
	TrigDDSSerialReset
	TrigDDSReset
	TrigDDS
	TrigClearStatus
	TriggerLimit
)

var triggerSpecs = [TriggerLimit]struct {
	name  string
	field regmap.FieldAlias
}{
	TrigPulse:          {"pulse", regmap.FieldPulseTrig},
	TrigSample:         {"sample", regmap.FieldSampleTrig},
	TrigStart:          {"start", regmap.FieldStartTrig},
	TrigRamp:           {"ramp", regmap.FieldRampTrig},
	TrigDDSSerialReset: {"ddsSerialReset", regmap.FieldDDSSerialReset},
	TrigDDSReset:       {"ddsReset", regmap.FieldDDSReset},
	TrigDDS:            {"dds", regmap.FieldDDSTrig},
	TrigClearStatus:    {"clearStatus", regmap.FieldClearStatus},
}

func (t Trigger) String() string {
	if t < 0 || t >= TriggerLimit {
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
	return triggerSpecs[t].name
}

// ParseTrigger ...
func ParseTrigger(s string) (Trigger, error) {
	for t := Trigger(0); t < TriggerLimit; t++ {
		if triggerSpecs[t].name == s {
			return t, nil
		}
	}
	return 0, ErrUnknownParam{Name: s}
}

// Triggers returns the triggers available on this revision
func (c *Configuration) Triggers() []Trigger {
	var triggers []Trigger
	for t := Trigger(0); t < TriggerLimit; t++ {
		if c.bank.Has(triggerSpecs[t].field) {
			triggers = append(triggers, t)
		}
	}
	return triggers
}

// Trigger strobes a single-bit trigger field. Clearing the bit is up to the hardware.
func (c *Configuration) Trigger(t Trigger) error {
	if t < 0 || t >= TriggerLimit || !c.bank.Has(triggerSpecs[t].field) {
		return ErrUnsupported{What: fmt.Sprintf("trigger %s", t), Revision: c.Revision()}
	}
	f, err := c.bank.Field(triggerSpecs[t].field)
	if err != nil {
		return err
	}
	log.Debug("Trigger %s", t)
	_, err = f.Set(1)
	return err
}
