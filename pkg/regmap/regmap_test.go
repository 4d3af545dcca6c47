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
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"jinr.ru/greenlab/go-pulse/pkg/backend"
)

func newTestField(t *testing.T, m backend.RegisterBackend, addr uint32, low, high int) *Field {
	t.Helper()
	f, err := NewField("test", addr, []int{low, high}, Legacy.AddrLimit(), m)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestNewFieldGeometry(t *testing.T) {
	m := backend.NewMemory()
	cases := []struct {
		name  string
		addr  uint32
		bits  []int
		limit uint32
		ok    bool
	}{
		{"single bit", 0x0, []int{31, 31}, 0x7FFFFFFF, true},
		{"full word", 0x8, []int{0, 31}, 0x7FFFFFFF, true},
		{"one element", 0x0, []int{3}, 0x7FFFFFFF, false},
		{"three elements", 0x0, []int{0, 1, 2}, 0x7FFFFFFF, false},
		{"reversed", 0x0, []int{5, 4}, 0x7FFFFFFF, false},
		{"negative low", 0x0, []int{-1, 4}, 0x7FFFFFFF, false},
		{"beyond word", 0x0, []int{0, 32}, 0x7FFFFFFF, false},
		{"address over legacy limit", 0x80000000, []int{0, 1}, Legacy.AddrLimit(), false},
		{"address over current limit", 0x40000000, []int{0, 1}, Current.AddrLimit(), false},
		{"address on current limit", 0x3FFFFFFF, []int{0, 1}, Current.AddrLimit(), true},
	}
	for _, c := range cases {
		f, err := NewField(c.name, c.addr, c.bits, c.limit, m)
		if c.ok {
			if err != nil {
				t.Errorf("%s: unexpected error %v", c.name, err)
			}
			continue
		}
		var ce ErrConfiguration
		if !errors.As(err, &ce) {
			t.Errorf("%s: expected ErrConfiguration, got %s", c.name, spew.Sdump(f, err))
		}
	}
}

func TestFieldMask(t *testing.T) {
	m := backend.NewMemory()
	f := newTestField(t, m, 0x18, 8, 15)
	if f.Length() != 8 || f.Max() != 0xff || f.Mask() != 0xff00 {
		t.Fatalf("unexpected geometry: %s", spew.Sdump(f.Length(), f.Max(), f.Mask()))
	}
	if f.GlobalAddress() != "0x40000018" {
		t.Fatalf("unexpected global address %s", f.GlobalAddress())
	}
	full := newTestField(t, m, 0x1c, 0, 31)
	if full.Max() != 0xffffffff || full.Mask() != 0xffffffff {
		t.Fatalf("unexpected full word geometry: %s", spew.Sdump(full.Max(), full.Mask()))
	}
}

func TestFieldSetPreservesOtherBits(t *testing.T) {
	m := backend.NewMemory()
	addr := backend.MemAddr + 0x18
	m.Poke(addr, 0xffffffff)
	f := newTestField(t, m, 0x18, 8, 15)

	warnings, err := f.Set(0x12)
	if err != nil || len(warnings) != 0 {
		t.Fatalf("unexpected result: %s", spew.Sdump(warnings, err))
	}
	if got := m.Peek(addr); got != 0xffff12ff {
		t.Fatalf("expected 0xffff12ff, got %#x", got)
	}
	if v, _ := f.Get(); v != 0x12 {
		t.Fatalf("expected 0x12, got %#x", v)
	}
	if f.Word() != 0xffff12ff {
		t.Fatalf("shadow word not updated: %#x", f.Word())
	}
	f.Reset()
	if f.Word() != 0 || m.Peek(addr) != 0xffff12ff {
		t.Fatal("reset must only clear the shadow word")
	}
}

func TestFieldSetRounding(t *testing.T) {
	cases := []struct {
		in   float64
		want uint32
	}{
		{2.5, 2},
		{3.5, 4},
		{0.5, 0},
		{1.5, 2},
		{2.4999, 2},
		{-3, 3},
		{-2.5, 2},
		{625.0000001, 625},
	}
	for _, c := range cases {
		m := backend.NewMemory()
		f := newTestField(t, m, 0x4, 0, 16)
		if _, err := f.Set(c.in); err != nil {
			t.Fatal(err)
		}
		if got, _ := f.Get(); got != c.want {
			t.Errorf("Set(%v): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestFieldSetOverflow(t *testing.T) {
	m := backend.NewMemory()
	addr := backend.MemAddr + 0x8
	f := newTestField(t, m, 0x8, 0, 8)

	warnings, err := f.Set(512)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0].Message != "value exceeds the allocated bit range of the register" {
		t.Fatalf("expected one overflow warning, got %s", spew.Sdump(warnings))
	}
	if got := m.Peek(addr); got != 0 {
		t.Fatalf("512 in 9 bits must wrap to 0, got %d", got)
	}

	warnings, _ = f.Set(513)
	if len(warnings) != 1 || m.Peek(addr) != 1 {
		t.Fatalf("513 in 9 bits must wrap to 1: %s", spew.Sdump(warnings, m.Peek(addr)))
	}

	warnings, _ = f.Set(511)
	if len(warnings) != 0 || m.Peek(addr) != 511 {
		t.Fatalf("511 fits in 9 bits: %s", spew.Sdump(warnings, m.Peek(addr)))
	}
}

func TestFieldSetRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m := backend.NewMemory()
		f := newTestField(t, m, 0x4, 0, 16)
		_, err := f.Set(v)
		var ie ErrInvalidValue
		if !errors.As(err, &ie) {
			t.Errorf("Set(%v): expected ErrInvalidValue, got %v", v, err)
		}
		if m.Reads != 0 || m.Writes != 0 {
			t.Errorf("Set(%v): expected no backend access, got %d reads and %d writes", v, m.Reads, m.Writes)
		}
	}
}

func TestFieldBackendErrors(t *testing.T) {
	cause := errors.New("monitor failed")
	m := backend.NewMemory()
	f := newTestField(t, m, 0x4, 0, 16)

	m.WriteErr = cause
	if _, err := f.Set(1); !errors.Is(err, cause) {
		t.Fatalf("expected write failure, got %v", err)
	}
	m.ReadErr = cause
	if _, err := f.Get(); !errors.Is(err, cause) {
		t.Fatalf("expected read failure, got %v", err)
	}
	var be backend.ErrBackend
	if _, err := f.Set(1); !errors.As(err, &be) || be.Op != backend.OpRead {
		t.Fatalf("Set must fail on the read before writing, got %v", err)
	}
}

func TestFieldFormat(t *testing.T) {
	cases := []struct {
		low, high int
		value     float64
		radix     int
		want      string
	}{
		{0, 7, 5, 2, "00000101"},
		{0, 7, 5, 10, "5"},
		{0, 7, 5, 16, "05"},
		{0, 8, 300, 16, "12c"},
		{0, 9, 5, 16, "05"},
		{0, 13, 5, 16, "0005"},
		{0, 31, 0x271, 16, "00000271"},
		{31, 31, 1, 2, "1"},
	}
	for _, c := range cases {
		m := backend.NewMemory()
		f := newTestField(t, m, 0x4, c.low, c.high)
		if _, err := f.Set(c.value); err != nil {
			t.Fatal(err)
		}
		got, err := f.Format(c.radix)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("[%d, %d] = %v in base %d: expected %q, got %q", c.low, c.high, c.value, c.radix, c.want, got)
		}
	}
	f := newTestField(t, backend.NewMemory(), 0x4, 0, 7)
	if _, err := f.Format(8); err == nil {
		t.Fatal("expected error for base 8")
	}
}

func TestFieldDescribe(t *testing.T) {
	m := backend.NewMemory()
	m.Poke(backend.MemAddr+0x8, 0x271)
	f := newTestField(t, m, 0x8, 0, 31)

	s, err := f.Describe("Pulse Register 1")
	if err != nil {
		t.Fatal(err)
	}
	want := "Pulse Register 1\n  Address: 0x00000008\n  Value:   0x00000271\n"
	if s != want {
		t.Fatalf("expected %q, got %q", want, s)
	}

	s, _ = f.DescribeValue("Pulse period", 5, false, "us")
	want = "Pulse period\n  Address: 0x00000008, Bits: [0, 31]\n  Value:   5.00 us\n"
	if s != want {
		t.Fatalf("expected %q, got %q", want, s)
	}
	s, _ = f.DescribeValue("Number of pulses", 500, true, "")
	want = "Number of pulses\n  Address: 0x00000008, Bits: [0, 31]\n  Value:   500\n"
	if s != want {
		t.Fatalf("expected %q, got %q", want, s)
	}
}

type countingLocker struct {
	*backend.Memory
	locks, unlocks int
}

func (c *countingLocker) Lock()   { c.locks++ }
func (c *countingLocker) Unlock() { c.unlocks++ }

func TestFieldHonoursLocker(t *testing.T) {
	b := &countingLocker{Memory: backend.NewMemory()}
	f := newTestField(t, b, 0x4, 0, 3)
	f.Set(3)
	f.Get()
	f.Read()
	if b.locks != 3 || b.unlocks != 3 {
		t.Fatalf("expected 3 lock/unlock pairs, got %d/%d", b.locks, b.unlocks)
	}
}

func TestRegisterMaps(t *testing.T) {
	cases := []struct {
		rev       Revision
		fields    int
		registers int
	}{
		{Legacy, 28, 13},
		{Current, 11, 6},
	}
	for _, c := range cases {
		bank, err := NewBank(c.rev, backend.NewMemory())
		if err != nil {
			t.Fatalf("%s: %v", c.rev, err)
		}
		defs, _ := c.rev.Map()
		if len(defs) != c.fields {
			t.Errorf("%s: expected %d fields, got %d", c.rev, c.fields, len(defs))
		}
		regs := bank.Registers()
		if len(regs) != c.registers {
			t.Errorf("%s: expected %d registers, got %s", c.rev, c.registers, spew.Sdump(regs))
		}
		if !sort.SliceIsSorted(regs, func(i, j int) bool { return regs[i] < regs[j] }) {
			t.Errorf("%s: registers not sorted: %v", c.rev, regs)
		}
		for _, addr := range regs {
			var used uint32
			for _, f := range bank.FieldsAt(addr) {
				if used&f.Mask() != 0 {
					t.Errorf("%s: field %s overlaps another field at %#x", c.rev, f.Name, addr)
				}
				used |= f.Mask()
			}
		}
	}
}

func TestBank(t *testing.T) {
	if _, err := NewBank(Legacy, nil); err == nil {
		t.Fatal("expected error for nil backend")
	}
	bank, err := NewBank(Current, backend.NewMemory())
	if err != nil {
		t.Fatal(err)
	}
	if bank.Has(FieldRampStart) {
		t.Fatal("current revision has no DDS ramp")
	}
	var ce ErrConfiguration
	if _, err := bank.Field(FieldRampStart); !errors.As(err, &ce) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	f, err := bank.Field(FieldNumPulses)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "numPulses" || f.Addr != 0x4 || f.Bits != [2]int{16, 31} {
		t.Fatalf("unexpected field: %s", spew.Sdump(f.Name, f.Addr, f.Bits))
	}

	bad := map[FieldAlias]FieldDef{FieldDelay: {0x10, []int{20, 10}}}
	if _, err := NewBankFromMap(Legacy, bad, backend.NewMemory()); !errors.As(err, &ce) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestParseRevision(t *testing.T) {
	for in, want := range map[string]Revision{"legacy": Legacy, "Current": Current, "LEGACY": Legacy} {
		got, err := ParseRevision(in)
		if err != nil || got != want {
			t.Errorf("ParseRevision(%q): expected %s, got %s, %v", in, want, got, err)
		}
	}
	if _, err := ParseRevision("v3"); err == nil {
		t.Fatal("expected error for unknown revision")
	}
}
