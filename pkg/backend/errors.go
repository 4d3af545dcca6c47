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

package backend

import (
	"fmt"
)

// ErrBackend returned when the register backend reports a failure.
// Backend failures are never retried.
type ErrBackend struct {
	Op   string
	Addr uint32
	Err  error
}

func (e ErrBackend) Error() string {
	return fmt.Sprintf("Register %s failed at %s: %s", e.Op, FormatWord(e.Addr), e.Err)
}

func (e ErrBackend) Unwrap() error {
	return e.Err
}

const (
	OpRead  = "read"
	OpWrite = "write"
)
