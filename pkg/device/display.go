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
	"io"

	"jinr.ru/greenlab/go-pulse/pkg/regmap"
)

type registerLabel struct {
	field regmap.FieldAlias
	label string
}

// one entry per register, named after a field it contains
var registerLabels = map[regmap.Revision][]registerLabel{
	regmap.Legacy: {
		{regmap.FieldPulsePeriod, "Pulse Register 1"},
		{regmap.FieldNumPulses, "Pulse Register 2"},
		{regmap.FieldDelay, "Initial Data Processing"},
		{regmap.FieldSumStart, "Secondary Data Processing"},
		{regmap.FieldRampStart, "DDS Ramp Start"},
		{regmap.FieldRampStepMagnitude, "DDS Ramp Step"},
		{regmap.FieldNumSteps, "DDS Ramp Number of Steps"},
		{regmap.FieldStepTime, "DDS Ramp Step Time"},
		{regmap.FieldFTW, "Manual FTW"},
		{regmap.FieldUseRamp, "Auxilliary ramp register"},
		{regmap.FieldPulsesDone, "Status Register"},
	},
	regmap.Current: {
		{regmap.FieldPulseWidth, "Pulse Register 0"},
		{regmap.FieldPulsePeriod, "Pulse Register 1"},
		{regmap.FieldDelay, "Initial Data Processing"},
		{regmap.FieldSumStart, "Secondary Data Processing"},
	},
}

var displayOrder = []Param{
	PulsePeriod, PulseWidth, NumPulses,
	Delay, SamplesPerPulse, TimePerPulse, Log2Avgs,
	LastSample,
	SumStart, SubStart, Width,
	RampStart, RampStep, NumSteps, StepTime, RampAmp,
	FTW, ManAmp, UseRamp,
}

// DisplayValue renders one param with its register geometry, scaled for
// reading: microseconds, MHz, kHz or milliseconds depending on the param
func (c *Configuration) DisplayValue(p Param) (string, error) {
	f, err := c.Field(p)
	if err != nil {
		return "", err
	}
	v, err := c.Get(p)
	if err != nil {
		return "", err
	}
	spec := paramSpecs[p]
	return f.DescribeValue(spec.label, v*spec.displayFactor, spec.integer, spec.unit)
}

// Display prints the full registers followed by every param of the revision
func (c *Configuration) Display(w io.Writer) error {
	fmt.Fprintln(w, "~~~~  Full Registers  ~~~~")
	for _, rl := range registerLabels[c.Revision()] {
		f, err := c.bank.Field(rl.field)
		if err != nil {
			return err
		}
		s, err := f.Describe(rl.label)
		if err != nil {
			return err
		}
		fmt.Fprint(w, s)
	}

	fmt.Fprintln(w, "~~~~  Parameters  ~~~~")
	for _, p := range displayOrder {
		if !c.Supports(p) {
			continue
		}
		s, err := c.DisplayValue(p)
		if err != nil {
			return err
		}
		fmt.Fprint(w, s)
	}
	return nil
}
