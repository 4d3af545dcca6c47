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
	"strconv"
	"strings"
)

// MemAddr is the base of the register file in the device address space.
// Both hardware revisions map their registers at this base.
const MemAddr uint32 = 0x40000000

// RegisterBackend performs the actual 32-bit register accesses.
// Addresses are global, i.e. MemAddr plus the register offset.
type RegisterBackend interface {
	ReadRegister(addr uint32) (uint32, error)
	WriteRegister(addr, value uint32) error
}

// FormatWord renders a register address or value the way the monitor helper expects it
func FormatWord(v uint32) string {
	return fmt.Sprintf("0x%08x", v)
}

// ParseWord parses a hexadecimal 32-bit word with or without the 0x prefix
func ParseWord(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
