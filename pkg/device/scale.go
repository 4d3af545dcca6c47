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
)

const (
	// CLK is the FPGA clock frequency in Hz
	CLK = 125000000.0
	// FTWScale is the full scale of a DDS frequency tuning word
	FTWScale = 1 << 32
	// DDSClock is the DDS reference frequency the tuning word is relative to, in Hz
	DDSClock = 1e9
	// AmpScale is the full scale of a 14-bit DDS amplitude word
	AmpScale = 1<<14 - 1
)

// Scale converts between a physical value and the raw register integer
type Scale struct {
	ToRaw   func(v float64) float64
	FromRaw func(raw float64) float64
}

// Identity is used for counts and indices
var Identity = Scale{
	ToRaw:   func(v float64) float64 { return v },
	FromRaw: func(raw float64) float64 { return raw },
}

// Clock converts seconds to clock cycles
var Clock = Scale{
	ToRaw:   func(v float64) float64 { return v * CLK },
	FromRaw: func(raw float64) float64 { return raw / CLK },
}

// Frequency converts Hz to a DDS frequency tuning word
var Frequency = Scale{
	ToRaw:   func(v float64) float64 { return v / DDSClock * FTWScale },
	FromRaw: func(raw float64) float64 { return raw / FTWScale * DDSClock },
}

// Amplitude converts a fraction of full scale to a DDS amplitude word
var Amplitude = Scale{
	ToRaw:   func(v float64) float64 { return v * AmpScale },
	FromRaw: func(raw float64) float64 { return raw / AmpScale },
}

// Resolution is the physical value of one raw unit
func (s Scale) Resolution() float64 {
	return math.Abs(s.FromRaw(1) - s.FromRaw(0))
}
