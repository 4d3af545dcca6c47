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

// Package units parses parameter values typed by a user. Plain numbers are
// taken in SI base units; frequencies also accept an SI prefix and Hz suffix
// ("300MHz", "10kHz") and times a Go duration ("100ns", "10ms", "5us").
package units

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"periph.io/x/conn/v3/physic"
)

const (
	Hertz  = "Hz"
	Second = "s"
)

// ErrParse returned when a value can not be parsed for the given unit
type ErrParse struct {
	Value string
	Unit  string
	Err   error
}

func (e ErrParse) Error() string {
	if e.Unit == "" {
		return fmt.Sprintf("Can not parse %q as a number: %s", e.Value, e.Err)
	}
	return fmt.Sprintf("Can not parse %q as a value in %s: %s", e.Value, e.Unit, e.Err)
}

func (e ErrParse) Unwrap() error {
	return e.Err
}

// Parse converts s to a float in the SI base unit
func Parse(s, unit string) (float64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	} else if unit == "" {
		return 0, ErrParse{Value: s, Err: err}
	}

	switch unit {
	case Hertz:
		return parseFrequency(s)
	case Second:
		return parseDuration(s)
	}
	return 0, ErrParse{Value: s, Unit: unit, Err: fmt.Errorf("unsupported unit")}
}

func parseFrequency(s string) (float64, error) {
	negative := strings.HasPrefix(s, "-")
	var f physic.Frequency
	if err := f.Set(strings.TrimPrefix(s, "-")); err != nil {
		return 0, ErrParse{Value: s, Unit: Hertz, Err: err}
	}
	v := float64(f) / float64(physic.Hertz)
	if negative {
		v = -v
	}
	return v, nil
}

func parseDuration(s string) (float64, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, ErrParse{Value: s, Unit: Second, Err: err}
	}
	return d.Seconds(), nil
}

// Format renders a value in the SI base unit with a readable prefix
func Format(v float64, unit string) string {
	switch unit {
	case Hertz:
		return (physic.Frequency(v * float64(physic.Hertz))).String()
	case Second:
		return time.Duration(v * float64(time.Second)).String()
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
