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
	"math"

	"jinr.ru/greenlab/go-pulse/pkg/backend"
	"jinr.ru/greenlab/go-pulse/pkg/log"
	"jinr.ru/greenlab/go-pulse/pkg/regmap"
)

// The legacy firmware reports the index of the last acquired sample,
// the current firmware reports the number of samples.
var lastSampleOffset = map[regmap.Revision]float64{
	regmap.Legacy:  1,
	regmap.Current: 0,
}

// Configuration exposes the register fields of one device as physical
// parameters. Every Get and Set is a backend round trip; nothing is cached.
type Configuration struct {
	bank *regmap.Bank
}

// NewConfiguration ...
func NewConfiguration(rev regmap.Revision, b backend.RegisterBackend) (*Configuration, error) {
	bank, err := regmap.NewBank(rev, b)
	if err != nil {
		return nil, err
	}
	return &Configuration{bank: bank}, nil
}

// Revision ...
func (c *Configuration) Revision() regmap.Revision {
	return c.bank.Revision
}

// Bank gives access to the raw register fields
func (c *Configuration) Bank() *regmap.Bank {
	return c.bank
}

// Supports reports whether every field the param needs exists in the register map
func (c *Configuration) Supports(p Param) bool {
	if !p.valid() {
		return false
	}
	for _, alias := range p.fields() {
		if !c.bank.Has(alias) {
			return false
		}
	}
	return true
}

// Params returns the params available on this revision
func (c *Configuration) Params() []Param {
	var params []Param
	for _, p := range AllParams() {
		if c.Supports(p) {
			params = append(params, p)
		}
	}
	return params
}

// Field returns the register field backing the param
func (c *Configuration) Field(p Param) (*regmap.Field, error) {
	if !c.Supports(p) {
		return nil, ErrUnsupported{What: p.String(), Revision: c.Revision()}
	}
	return c.bank.Field(paramSpecs[p].field)
}

func (c *Configuration) raw(alias regmap.FieldAlias) (float64, error) {
	f, err := c.bank.Field(alias)
	if err != nil {
		return 0, err
	}
	v, err := f.Get()
	if err != nil {
		return 0, err
	}
	return float64(v), nil
}

func (c *Configuration) setRaw(alias regmap.FieldAlias, v float64) ([]regmap.Warning, error) {
	f, err := c.bank.Field(alias)
	if err != nil {
		return nil, err
	}
	return f.Set(v)
}

// Get reads the param and converts it to physical units
func (c *Configuration) Get(p Param) (float64, error) {
	if !c.Supports(p) {
		return 0, ErrUnsupported{What: p.String(), Revision: c.Revision()}
	}
	switch p {
	case TimePerPulse:
		samples, err := c.raw(regmap.FieldSamplesPerPulse)
		if err != nil {
			return 0, err
		}
		log2Avgs, err := c.raw(regmap.FieldLog2Avgs)
		if err != nil {
			return 0, err
		}
		return samples / CLK * math.Pow(2, log2Avgs), nil
	case RampStep:
		sign, err := c.raw(regmap.FieldRampStepSign)
		if err != nil {
			return 0, err
		}
		magnitude, err := c.raw(regmap.FieldRampStepMagnitude)
		if err != nil {
			return 0, err
		}
		v := Frequency.FromRaw(magnitude)
		if sign != 0 {
			return -v, nil
		}
		return v, nil
	case LastSample:
		raw, err := c.raw(regmap.FieldLastSample)
		if err != nil {
			return 0, err
		}
		return raw + lastSampleOffset[c.Revision()], nil
	}
	raw, err := c.raw(paramSpecs[p].field)
	if err != nil {
		return 0, err
	}
	return paramSpecs[p].scale.FromRaw(raw), nil
}

// Set checks v against the sibling params, converts it to a raw value and
// writes it. Advisory conditions are returned as warnings and the write still
// happens; only numPulses > MaxNumPulses is rejected, before any register access.
func (c *Configuration) Set(p Param, v float64) ([]regmap.Warning, error) {
	if !c.Supports(p) {
		return nil, ErrUnsupported{What: p.String(), Revision: c.Revision()}
	}
	if p.ReadOnly() {
		return nil, ErrReadOnly{Param: p}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, regmap.ErrInvalidValue{Field: p.String(), Value: v}
	}
	if p == NumPulses && v > MaxNumPulses {
		return nil, ErrValidation{Param: p, Value: v, Limit: MaxNumPulses}
	}

	warnings, err := c.validate(p, v)
	if err != nil {
		return warnings, err
	}

	var ws []regmap.Warning
	switch p {
	case TimePerPulse:
		log2Avgs, err := c.raw(regmap.FieldLog2Avgs)
		if err != nil {
			return warnings, err
		}
		ws, err = c.Set(SamplesPerPulse, v*CLK/math.Pow(2, log2Avgs))
		warnings = append(warnings, ws...)
		return warnings, err
	case RampStep:
		ws, err = c.setRaw(regmap.FieldRampStepMagnitude, Frequency.ToRaw(math.Abs(v)))
		warnings = append(warnings, ws...)
		if err != nil {
			return warnings, err
		}
		sign := 0.0
		if v < 0 {
			sign = 1
		}
		ws, err = c.setRaw(regmap.FieldRampStepSign, sign)
	default:
		ws, err = c.setRaw(paramSpecs[p].field, paramSpecs[p].scale.ToRaw(v))
	}
	warnings = append(warnings, ws...)
	if err != nil {
		return warnings, err
	}
	log.Debug("%s set to %v", p, v)

	// the DDS picks up a new frequency or amplitude only on the trigger strobe
	if p == FTW || p == ManAmp {
		if err := c.Trigger(TrigDDS); err != nil {
			return warnings, err
		}
	}
	return warnings, nil
}

// Setting is a param and its physical value
type Setting struct {
	Param Param
	Value float64
}

// Apply sets the params in order and stops at the first error
func (c *Configuration) Apply(settings []Setting) ([]regmap.Warning, error) {
	var warnings []regmap.Warning
	for _, s := range settings {
		ws, err := c.Set(s.Param, s.Value)
		warnings = append(warnings, ws...)
		if err != nil {
			return warnings, err
		}
	}
	return warnings, nil
}

// Snapshot reads every param available on this revision
func (c *Configuration) Snapshot() ([]Setting, error) {
	var settings []Setting
	for _, p := range c.Params() {
		v, err := c.Get(p)
		if err != nil {
			return nil, err
		}
		settings = append(settings, Setting{Param: p, Value: v})
	}
	return settings, nil
}
