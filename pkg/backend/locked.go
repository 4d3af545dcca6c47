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
	"sync"
)

// Locked guards one physical device. Fields sharing a register do a
// read-modify-write that is not atomic, so every session talking to the
// same device must share one Locked. regmap.Field takes the lock around
// each access; ReadRegister and WriteRegister themselves do not lock.
type Locked struct {
	sync.Mutex
	RegisterBackend
}

var _ sync.Locker = &Locked{}

func NewLocked(b RegisterBackend) *Locked {
	return &Locked{RegisterBackend: b}
}
