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
	"jinr.ru/greenlab/go-pulse/pkg/regmap"
)

// RampSetup programs a DDS frequency ramp from rampStart to rampEnd (Hz)
// lasting duration seconds with steps of stepTime seconds. The step size is
// computed from the number of steps actually committed to the register, so
// stepTime and numSteps are written before rampStep and rampStart.
func (c *Configuration) RampSetup(rampStart, rampEnd, stepTime, duration float64) ([]regmap.Warning, error) {
	for _, p := range []Param{StepTime, NumSteps, RampStep, RampStart} {
		if !c.Supports(p) {
			return nil, ErrUnsupported{What: "rampSetup", Revision: c.Revision()}
		}
	}

	var warnings []regmap.Warning
	ws, err := c.Set(StepTime, stepTime)
	warnings = append(warnings, ws...)
	if err != nil {
		return warnings, err
	}
	ws, err = c.Set(NumSteps, duration/stepTime)
	warnings = append(warnings, ws...)
	if err != nil {
		return warnings, err
	}
	numSteps, err := c.Get(NumSteps)
	if err != nil {
		return warnings, err
	}
	ws, err = c.Set(RampStep, (rampEnd-rampStart)/numSteps)
	warnings = append(warnings, ws...)
	if err != nil {
		return warnings, err
	}
	ws, err = c.Set(RampStart, rampStart)
	warnings = append(warnings, ws...)
	return warnings, err
}
