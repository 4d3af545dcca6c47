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
	"sort"

	"jinr.ru/greenlab/go-pulse/pkg/backend"
)

// Bank holds every field of one register map revision bound to one backend
type Bank struct {
	Revision Revision
	fields   map[FieldAlias]*Field
}

// NewBank builds the fields of the revision map. Any malformed entry
// fails the whole bank with ErrConfiguration.
func NewBank(rev Revision, b backend.RegisterBackend) (*Bank, error) {
	defs, err := rev.Map()
	if err != nil {
		return nil, err
	}
	return NewBankFromMap(rev, defs, b)
}

// NewBankFromMap builds a bank from an arbitrary map, checked against the revision address limit
func NewBankFromMap(rev Revision, defs map[FieldAlias]FieldDef, b backend.RegisterBackend) (*Bank, error) {
	if b == nil {
		return nil, ErrConfiguration{What: "register backend is not set"}
	}
	bank := &Bank{
		Revision: rev,
		fields:   make(map[FieldAlias]*Field, len(defs)),
	}
	for alias, def := range defs {
		f, err := NewField(alias.String(), def.Addr, def.Bits, rev.AddrLimit(), b)
		if err != nil {
			return nil, err
		}
		bank.fields[alias] = f
	}
	return bank, nil
}

// Has reports whether the revision has the field
func (b *Bank) Has(alias FieldAlias) bool {
	_, ok := b.fields[alias]
	return ok
}

// Field ...
func (b *Bank) Field(alias FieldAlias) (*Field, error) {
	f, ok := b.fields[alias]
	if !ok {
		return nil, ErrConfiguration{What: fmt.Sprintf("field %s does not exist in the %s register map", alias, b.Revision)}
	}
	return f, nil
}

// Registers returns the distinct register offsets of the bank in ascending order
func (b *Bank) Registers() []uint32 {
	seen := make(map[uint32]bool)
	var regs []uint32
	for _, f := range b.fields {
		if !seen[f.Addr] {
			seen[f.Addr] = true
			regs = append(regs, f.Addr)
		}
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i] < regs[j] })
	return regs
}

// FieldsAt returns the fields packed into the register at addr, lowest bits first
func (b *Bank) FieldsAt(addr uint32) []*Field {
	var fields []*Field
	for _, f := range b.fields {
		if f.Addr == addr {
			fields = append(fields, f)
		}
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Bits[0] < fields[j].Bits[0] })
	return fields
}
