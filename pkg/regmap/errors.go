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

import (
	"fmt"
)

// ErrConfiguration returned when a field or register map is statically wrong:
// malformed bit range, address out of the backend range, unknown revision
type ErrConfiguration struct {
	What string
}

func (e ErrConfiguration) Error() string {
	return fmt.Sprintf("Configuration error: %s", e.What)
}

// ErrInvalidValue returned when a value can not be represented as a register field
type ErrInvalidValue struct {
	Field string
	Value float64
}

func (e ErrInvalidValue) Error() string {
	return fmt.Sprintf("Invalid value for %s: %v", e.Field, e.Value)
}

// Warning is an advisory diagnostic. The operation that raised it still completes.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}
