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

// ErrValidation returned when a value violates a hard limit.
// Only numPulses has one; every other check is advisory.
type ErrValidation struct {
	Param Param
	Value float64
	Limit float64
}

func (e ErrValidation) Error() string {
	return fmt.Sprintf("%s cannot be larger than %v, got %v", e.Param, e.Limit, e.Value)
}

// ErrUnsupported returned when the register map revision lacks the param or trigger
type ErrUnsupported struct {
	What     string
	Revision regmap.Revision
}

func (e ErrUnsupported) Error() string {
	return fmt.Sprintf("%s is not supported by the %s register map", e.What, e.Revision)
}

// ErrReadOnly returned when writing a status param
type ErrReadOnly struct {
	Param Param
}

func (e ErrReadOnly) Error() string {
	return fmt.Sprintf("%s is read only", e.Param)
}

// ErrUnknownParam returned when a param name does not exist
type ErrUnknownParam struct {
	Name string
}

func (e ErrUnknownParam) Error() string {
	return fmt.Sprintf("Unknown parameter: %s", e.Name)
}
