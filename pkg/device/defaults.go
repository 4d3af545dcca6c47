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

var defaults = map[regmap.Revision][]Setting{
	regmap.Legacy: {
		{PulsePeriod, 5e-6},
		{PulseWidth, 1e-6},
		{NumPulses, 500},

		{Delay, 100e-9},
		{SamplesPerPulse, 31},
		{Log2Avgs, 3},

		{SumStart, 5},
		{SubStart, 15},
		{Width, 5},

		{RampStart, 300e6},
		{RampStep, 0.01e6},
		{NumSteps, 1000},
		{StepTime, 10e-3},
		{RampAmp, 1},

		{FTW, 300e6},
		{ManAmp, 1},
		{UseRamp, 0},
	},
	regmap.Current: {
		{PulsePeriod, 5e-6},
		{PulseWidth, 1e-6},
		{NumPulses, 500},

		{Delay, 0},
		{SamplesPerPulse, 31},
		{Log2Avgs, 1},

		{SumStart, 5},
		{SubStart, 15},
		{Width, 5},
	},
}

// Defaults returns the baseline settings of the revision
func Defaults(rev regmap.Revision) []Setting {
	settings := make([]Setting, len(defaults[rev]))
	copy(settings, defaults[rev])
	return settings
}

// SetDefaults writes the known-good baseline of the revision
func (c *Configuration) SetDefaults() ([]regmap.Warning, error) {
	return c.Apply(defaults[c.Revision()])
}
