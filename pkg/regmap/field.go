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
	"math"
	"strconv"
	"strings"
	"sync"

	"jinr.ru/greenlab/go-pulse/pkg/backend"
	"jinr.ru/greenlab/go-pulse/pkg/log"
)

const (
	RegWidth = 32
)

// Field is a half-open bit range [Bits[0], Bits[1]] inside one 32-bit register.
// It never caches the register contents: every Get and Set reads the whole
// word from the backend first, so fields sharing a register always see the
// latest state. The read-modify-write in Set is not atomic unless the backend
// implements sync.Locker (see backend.Locked).
type Field struct {
	Name    string
	Addr    uint32
	Bits    [2]int
	backend backend.RegisterBackend
	// last full word read, only used for display
	word uint32
}

// NewField checks the field geometry. limit is the highest register offset
// the backend can address for the hardware revision.
func NewField(name string, addr uint32, bits []int, limit uint32, b backend.RegisterBackend) (*Field, error) {
	if addr > limit {
		return nil, ErrConfiguration{What: fmt.Sprintf("%s: address %s must be between 0 and %s",
			name, backend.FormatWord(addr), backend.FormatWord(limit))}
	}
	if len(bits) != 2 {
		return nil, ErrConfiguration{What: fmt.Sprintf("%s: bit range must be a two element list, got %v", name, bits)}
	}
	if bits[0] < 0 || bits[0] > bits[1] || bits[1] >= RegWidth {
		return nil, ErrConfiguration{What: fmt.Sprintf("%s: bit range %v must satisfy 0 <= low <= high <= %d",
			name, bits, RegWidth-1)}
	}
	return &Field{
		Name:    name,
		Addr:    addr,
		Bits:    [2]int{bits[0], bits[1]},
		backend: b,
	}, nil
}

// Length is the number of bits in the field
func (f *Field) Length() int {
	return f.Bits[1] - f.Bits[0] + 1
}

// Max is the largest raw value the field can hold
func (f *Field) Max() uint32 {
	return uint32(uint64(1)<<uint(f.Length()) - 1)
}

// Mask selects the field bits inside the register word
func (f *Field) Mask() uint32 {
	return f.Max() << uint(f.Bits[0])
}

// GlobalAddress is the register address in the device address space
func (f *Field) GlobalAddress() string {
	return backend.FormatWord(f.globalAddr())
}

func (f *Field) globalAddr() uint32 {
	return backend.MemAddr + f.Addr
}

func (f *Field) lock() func() {
	if l, ok := f.backend.(sync.Locker); ok {
		l.Lock()
		return l.Unlock
	}
	return func() {}
}

func (f *Field) read() (uint32, error) {
	word, err := f.backend.ReadRegister(f.globalAddr())
	if err != nil {
		return 0, err
	}
	f.word = word
	return word, nil
}

// Read fetches the full register word containing the field
func (f *Field) Read() (uint32, error) {
	defer f.lock()()
	return f.read()
}

// Get returns the field value from a freshly read register word
func (f *Field) Get() (uint32, error) {
	defer f.lock()()
	word, err := f.read()
	if err != nil {
		return 0, err
	}
	return (word & f.Mask()) >> uint(f.Bits[0]), nil
}

// Set rounds |v| half to even and merges it into the register. A value wider
// than the field raises a warning and is truncated by the mask, not clamped.
func (f *Field) Set(v float64) ([]Warning, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrInvalidValue{Field: f.Name, Value: v}
	}
	defer f.lock()()
	word, err := f.read()
	if err != nil {
		return nil, err
	}

	var warnings []Warning
	rounded := math.RoundToEven(math.Abs(v))
	if rounded > float64(f.Max()) {
		w := Warning{Field: f.Name, Message: "value exceeds the allocated bit range of the register"}
		log.Warning("%s (%v > %d)", w, v, f.Max())
		warnings = append(warnings, w)
	}
	raw := uint64(math.Mod(rounded, float64(uint64(f.Max())+1)))

	mask := f.Mask()
	word = (word &^ mask) | (uint32(raw<<uint(f.Bits[0])) & mask)
	if err := f.backend.WriteRegister(f.globalAddr(), word); err != nil {
		return warnings, err
	}
	f.word = word
	return warnings, nil
}

// Reset clears the shadow word. The register itself is untouched.
func (f *Field) Reset() {
	f.word = 0
}

// Format renders the field value in base 2, 10 or 16. Binary is padded to the
// field length and hex to round(length/4) digits.
func (f *Field) Format(radix int) (string, error) {
	value, err := f.Get()
	if err != nil {
		return "", err
	}
	switch radix {
	case 2:
		return fmt.Sprintf("%0*b", f.Length(), value), nil
	case 10:
		return strconv.FormatUint(uint64(value), 10), nil
	case 16:
		digits := int(math.RoundToEven(float64(f.Length()) / 4))
		return fmt.Sprintf("%0*x", digits, value), nil
	}
	return "", ErrConfiguration{What: fmt.Sprintf("unsupported radix %d", radix)}
}

// Describe renders the whole register word containing the field
func (f *Field) Describe(name string) (string, error) {
	word, err := f.Read()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\n  Address: %s\n  Value:   %s\n",
		name, backend.FormatWord(f.Addr), backend.FormatWord(word)), nil
}

// DescribeValue renders a scaled physical value next to the field geometry.
// Integers are printed as plain decimals, everything else with two decimals.
func (f *Field) DescribeValue(name string, value float64, integer bool, unit string) (string, error) {
	if _, err := f.Read(); err != nil {
		return "", err
	}
	var valueString string
	if integer {
		valueString = strconv.FormatInt(int64(value), 10)
	} else {
		valueString = strconv.FormatFloat(value, 'f', 2, 64)
	}
	valueString = strings.TrimSpace(valueString + " " + unit)
	return fmt.Sprintf("%s\n  Address: %s, Bits: [%d, %d]\n  Value:   %s\n",
		name, backend.FormatWord(f.Addr), f.Bits[0], f.Bits[1], valueString), nil
}

// Word is the register word seen by the last read or write
func (f *Field) Word() uint32 {
	return f.word
}
