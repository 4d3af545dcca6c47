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

package acquire

import (
	"fmt"
)

// ErrProgram returned when a collaborator executable exits with a non-zero status
type ErrProgram struct {
	Path   string
	Output string
	Err    error
}

func (e ErrProgram) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s returned error: %s: %s", e.Path, e.Err, e.Output)
	}
	return fmt.Sprintf("%s returned error: %s", e.Path, e.Err)
}

func (e ErrProgram) Unwrap() error {
	return e.Err
}
