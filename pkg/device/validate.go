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
	"jinr.ru/greenlab/go-pulse/pkg/log"
	"jinr.ru/greenlab/go-pulse/pkg/regmap"
)

const (
	msgSamplesTooFew  = "Number of samples per pulse is smaller than the subtraction window!"
	msgSumTooLarge    = "Summation window is larger than the number of samples per pulse!"
	msgSubBeforeSum   = "Start of subtraction window must be after the summation window"
	msgSubTooLarge    = "Subtraction window is larger than the number of samples per pulse!"
	msgSubEndsTooLate = "Subtraction window must end before sampling does!"
)

type validator func(c *Configuration, v float64) ([]regmap.Warning, error)

// Window checks compare the new value with the current register contents.
// They never block the write.
var validators = map[Param]validator{
	SamplesPerPulse: validateSamplesPerPulse,
	SumStart:        validateSumStart,
	SubStart:        validateSubStart,
	Width:           validateWidth,
}

func (c *Configuration) validate(p Param, v float64) ([]regmap.Warning, error) {
	check, ok := validators[p]
	if !ok {
		return nil, nil
	}
	return check(c, v)
}

func warn(warnings []regmap.Warning, p Param, msg string) []regmap.Warning {
	w := regmap.Warning{Field: p.String(), Message: msg}
	log.Warning("%s", w)
	return append(warnings, w)
}

// getAll reads several params, stopping at the first error
func (c *Configuration) getAll(params ...Param) ([]float64, error) {
	values := make([]float64, len(params))
	for i, p := range params {
		v, err := c.Get(p)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func validateSamplesPerPulse(c *Configuration, v float64) ([]regmap.Warning, error) {
	values, err := c.getAll(SubStart, Width)
	if err != nil {
		return nil, err
	}
	subStart, width := values[0], values[1]
	var warnings []regmap.Warning
	if v < subStart+width {
		warnings = warn(warnings, SamplesPerPulse, msgSamplesTooFew)
	}
	return warnings, nil
}

func validateSumStart(c *Configuration, v float64) ([]regmap.Warning, error) {
	values, err := c.getAll(Width, SamplesPerPulse)
	if err != nil {
		return nil, err
	}
	width, samples := values[0], values[1]
	var warnings []regmap.Warning
	if v+width >= samples {
		warnings = warn(warnings, SumStart, msgSumTooLarge)
	}
	return warnings, nil
}

// The first two checks overlap and share a message. Both are kept so the
// same conditions keep producing the same warnings.
func validateSubStart(c *Configuration, v float64) ([]regmap.Warning, error) {
	values, err := c.getAll(SumStart, Width, SamplesPerPulse)
	if err != nil {
		return nil, err
	}
	sumStart, width, samples := values[0], values[1], values[2]
	var warnings []regmap.Warning
	if v < sumStart {
		warnings = warn(warnings, SubStart, msgSubBeforeSum)
	}
	if v < sumStart+width {
		warnings = warn(warnings, SubStart, msgSubBeforeSum)
	}
	if v+width >= samples {
		warnings = warn(warnings, SubStart, msgSubTooLarge)
	}
	return warnings, nil
}

func validateWidth(c *Configuration, v float64) ([]regmap.Warning, error) {
	values, err := c.getAll(SumStart, SubStart, SamplesPerPulse)
	if err != nil {
		return nil, err
	}
	sumStart, subStart, samples := values[0], values[1], values[2]
	var warnings []regmap.Warning
	if sumStart+v > subStart {
		warnings = warn(warnings, Width, msgSubBeforeSum)
	}
	if subStart+v >= samples {
		warnings = warn(warnings, Width, msgSubEndsTooLate)
	}
	return warnings, nil
}
