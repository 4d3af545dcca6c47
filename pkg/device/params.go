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

	"jinr.ru/greenlab/go-pulse/pkg/regmap"
)

type Param int

const (
	// pulse generation
	PulsePeriod Param = iota
	PulseWidth
	NumPulses
	// initial data processing
	Delay
	SamplesPerPulse
	TimePerPulse
	Log2Avgs
	LastSample
	// secondary data processing
	SumStart
	SubStart
	Width
	// DDS frequency ramp
	RampStart
	RampStep
	NumSteps
	StepTime
	RampAmp
	// DDS manual control
	FTW
	ManAmp
	UseRamp
	// status
	PulsesDone
	ParamLimit
)

// MaxNumPulses is the only parameter bound that rejects a write
const MaxNumPulses = 512

type paramSpec struct {
	name  string
	label string
	// field holding the raw value, for derived params the field used for display
	field    regmap.FieldAlias
	scale    Scale
	integer  bool
	readOnly bool
	// display value = physical value * displayFactor, printed with unit
	displayFactor float64
	unit          string
}

var paramSpecs = [ParamLimit]paramSpec{
	PulsePeriod:     {"pulsePeriod", "Pulse period", regmap.FieldPulsePeriod, Clock, false, false, 1e6, "us"},
	PulseWidth:      {"pulseWidth", "Pulse width", regmap.FieldPulseWidth, Clock, false, false, 1e6, "us"},
	NumPulses:       {"numPulses", "Num pulses", regmap.FieldNumPulses, Identity, true, false, 1, ""},
	Delay:           {"delay", "Trigger delay", regmap.FieldDelay, Clock, false, false, 1e6, "us"},
	SamplesPerPulse: {"samplesPerPulse", "Samples per pulse", regmap.FieldSamplesPerPulse, Identity, true, false, 1, ""},
	TimePerPulse:    {"timePerPulse", "Time per pulse", regmap.FieldSamplesPerPulse, Clock, false, false, 1e6, "us"},
	Log2Avgs:        {"log2Avgs", "log2(Number of averages)", regmap.FieldLog2Avgs, Identity, true, false, 1, ""},
	LastSample:      {"lastSample", "Number of acquired samples", regmap.FieldLastSample, Identity, true, true, 1, ""},
	SumStart:        {"sumStart", "Start of summation window", regmap.FieldSumStart, Identity, true, false, 1, ""},
	SubStart:        {"subStart", "Start of subtraction window", regmap.FieldSubStart, Identity, true, false, 1, ""},
	Width:           {"width", "Width of summation and subtraction windows", regmap.FieldWidth, Identity, true, false, 1, ""},
	RampStart:       {"rampStart", "DDS start frequency", regmap.FieldRampStart, Frequency, false, false, 1e-6, "MHz"},
	RampStep:        {"rampStep", "DDS ramp step", regmap.FieldRampStepMagnitude, Frequency, false, false, 1e-3, "kHz"},
	NumSteps:        {"numSteps", "DDS ramp number of steps", regmap.FieldNumSteps, Identity, true, false, 1, ""},
	StepTime:        {"stepTime", "DDS ramp step time", regmap.FieldStepTime, Clock, false, false, 1e3, "ms"},
	RampAmp:         {"rampAmp", "DDS ramp amplitude", regmap.FieldRampAmp, Amplitude, false, false, 1, ""},
	FTW:             {"ftw", "Manual Frequency", regmap.FieldFTW, Frequency, false, false, 1e-6, "MHz"},
	ManAmp:          {"manAmp", "Manual DDS amplitude", regmap.FieldManAmp, Amplitude, false, false, 1, ""},
	UseRamp:         {"useRamp", "Use DDS ramp", regmap.FieldUseRamp, Identity, true, false, 1, ""},
	PulsesDone:      {"pulsesDone", "Pulses done", regmap.FieldPulsesDone, Identity, true, true, 1, ""},
}

func (p Param) valid() bool {
	return p >= 0 && p < ParamLimit
}

func (p Param) String() string {
	if !p.valid() {
		return fmt.Sprintf("Param(%d)", int(p))
	}
	return paramSpecs[p].name
}

// Label is the human readable name used by Display
func (p Param) Label() string {
	if !p.valid() {
		return p.String()
	}
	return paramSpecs[p].label
}

// Unit is the SI unit of the physical value, empty for counts and fractions
func (p Param) Unit() string {
	switch p {
	case PulsePeriod, PulseWidth, Delay, TimePerPulse, StepTime:
		return "s"
	case RampStart, RampStep, FTW:
		return "Hz"
	}
	return ""
}

// Integer reports whether the physical value is a raw integer
func (p Param) Integer() bool {
	return p.valid() && paramSpecs[p].integer
}

// ReadOnly reports whether the param is a status value
func (p Param) ReadOnly() bool {
	return p.valid() && paramSpecs[p].readOnly
}

// Scale is the scaling law between the physical value and the raw field
func (p Param) Scale() Scale {
	if !p.valid() {
		return Identity
	}
	return paramSpecs[p].scale
}

// ParseParam ...
func ParseParam(s string) (Param, error) {
	for p := Param(0); p < ParamLimit; p++ {
		if paramSpecs[p].name == s {
			return p, nil
		}
	}
	return 0, ErrUnknownParam{Name: s}
}

// AllParams returns every param known to any revision
func AllParams() []Param {
	params := make([]Param, 0, ParamLimit)
	for p := Param(0); p < ParamLimit; p++ {
		params = append(params, p)
	}
	return params
}

// fields lists every register field the param needs
func (p Param) fields() []regmap.FieldAlias {
	switch p {
	case TimePerPulse:
		return []regmap.FieldAlias{regmap.FieldSamplesPerPulse, regmap.FieldLog2Avgs}
	case RampStep:
		return []regmap.FieldAlias{regmap.FieldRampStepMagnitude, regmap.FieldRampStepSign}
	case FTW, ManAmp:
		return []regmap.FieldAlias{paramSpecs[p].field, regmap.FieldDDSTrig}
	}
	return []regmap.FieldAlias{paramSpecs[p].field}
}
