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

package regmap

type FieldAlias int

const (
	// triggers, all in register 0x0
	FieldPulseTrig FieldAlias = iota
	FieldSampleTrig
	FieldRampTrig
	FieldDDSSerialReset
	FieldDDSReset
	FieldDDSTrig
	FieldClearStatus
	FieldStartTrig
	// pulse generation
	FieldPulsePeriod
	FieldPulseWidth
	FieldNumPulses
	// initial data processing
	FieldDelay
	FieldSamplesPerPulse
	FieldLog2Avgs
	FieldLastSample
	// secondary data processing
	FieldSumStart
	FieldSubStart
	FieldWidth
	// DDS control
	FieldRampStart
	FieldRampStepMagnitude
	FieldRampStepSign
	FieldNumSteps
	FieldStepTime
	FieldFTW
	FieldRampAmp
	FieldManAmp
	FieldUseRamp
	// status
	FieldPulsesDone
	FieldAliasLimit
)

var fieldNames = [FieldAliasLimit]string{
	FieldPulseTrig:         "pulseTrig",
	FieldSampleTrig:        "sampleTrig",
	FieldRampTrig:          "rampTrig",
	FieldDDSSerialReset:    "ddsSerialReset",
	FieldDDSReset:          "ddsReset",
	FieldDDSTrig:           "ddsTrig",
	FieldClearStatus:       "clearStatus",
	FieldStartTrig:         "startTrig",
	FieldPulsePeriod:       "pulsePeriod",
	FieldPulseWidth:        "pulseWidth",
	FieldNumPulses:         "numPulses",
	FieldDelay:             "delay",
	FieldSamplesPerPulse:   "samplesPerPulse",
	FieldLog2Avgs:          "log2Avgs",
	FieldLastSample:        "lastSample",
	FieldSumStart:          "sumStart",
	FieldSubStart:          "subStart",
	FieldWidth:             "width",
	FieldRampStart:         "rampStart",
	FieldRampStepMagnitude: "rampStepMagnitude",
	FieldRampStepSign:      "rampStepSign",
	FieldNumSteps:          "numSteps",
	FieldStepTime:          "stepTime",
	FieldFTW:               "ftw",
	FieldRampAmp:           "rampAmp",
	FieldManAmp:            "manAmp",
	FieldUseRamp:           "useRamp",
	FieldPulsesDone:        "pulsesDone",
}

func (a FieldAlias) String() string {
	if a >= 0 && a < FieldAliasLimit {
		return fieldNames[a]
	}
	return "unknown"
}

// FieldDef is the static geometry of one field: register offset and
// inclusive bit range [low, high].
type FieldDef struct {
	Addr uint32
	Bits []int
}

// LegacyMap ...
var LegacyMap = map[FieldAlias]FieldDef{
	FieldPulseTrig:      {0x0, []int{0, 0}},
	FieldSampleTrig:     {0x0, []int{1, 1}},
	FieldRampTrig:       {0x0, []int{2, 2}},
	FieldDDSSerialReset: {0x0, []int{3, 3}},
	FieldDDSReset:       {0x0, []int{4, 4}},
	FieldDDSTrig:        {0x0, []int{5, 5}},
	FieldClearStatus:    {0x0, []int{30, 30}},
	FieldStartTrig:      {0x0, []int{31, 31}},

	FieldPulsePeriod: {0x4, []int{0, 16}},
	FieldPulseWidth:  {0x4, []int{17, 31}},
	FieldNumPulses:   {0x8, []int{0, 8}},

	FieldDelay:           {0x10, []int{0, 13}},
	FieldSamplesPerPulse: {0x10, []int{14, 27}},
	FieldLog2Avgs:        {0x10, []int{28, 31}},
	FieldLastSample:      {0x14, []int{0, 14}},

	FieldSumStart: {0x18, []int{0, 7}},
	FieldSubStart: {0x18, []int{8, 15}},
	FieldWidth:    {0x18, []int{16, 23}},

	FieldRampStart:         {0x1c, []int{0, 31}},
	FieldRampStepMagnitude: {0x20, []int{0, 30}},
	FieldRampStepSign:      {0x20, []int{31, 31}},
	FieldNumSteps:          {0x24, []int{0, 31}},
	FieldStepTime:          {0x28, []int{0, 31}},
	FieldFTW:               {0x2c, []int{0, 31}},
	FieldRampAmp:           {0x30, []int{0, 13}},
	FieldManAmp:            {0x30, []int{14, 27}},
	FieldUseRamp:           {0x30, []int{31, 31}},

	FieldPulsesDone: {0x34, []int{0, 0}},
}

// CurrentMap ...
var CurrentMap = map[FieldAlias]FieldDef{
	FieldPulseTrig: {0x0, []int{0, 0}},

	FieldPulseWidth:  {0x4, []int{0, 15}},
	FieldNumPulses:   {0x4, []int{16, 31}},
	FieldPulsePeriod: {0x8, []int{0, 31}},

	FieldDelay:           {0xc, []int{0, 13}},
	FieldSamplesPerPulse: {0xc, []int{14, 27}},
	FieldLog2Avgs:        {0xc, []int{28, 31}},
	FieldLastSample:      {0x10, []int{0, 14}},

	FieldSumStart: {0x14, []int{0, 7}},
	FieldSubStart: {0x14, []int{8, 15}},
	FieldWidth:    {0x14, []int{16, 23}},
}
