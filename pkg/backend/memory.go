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

// Memory is an in-process register file. Registers never written read as zero.
type Memory struct {
	mu     sync.Mutex
	regs   map[uint32]uint32
	Reads  int
	Writes int
	// ReadErr and WriteErr, when set, make every access of that kind fail
	ReadErr  error
	WriteErr error
}

var _ RegisterBackend = &Memory{}

func NewMemory() *Memory {
	return &Memory{regs: make(map[uint32]uint32)}
}

// ReadRegister ...
func (m *Memory) ReadRegister(addr uint32) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return 0, ErrBackend{Op: OpRead, Addr: addr, Err: m.ReadErr}
	}
	m.Reads++
	return m.regs[addr], nil
}

// WriteRegister ...
func (m *Memory) WriteRegister(addr, value uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return ErrBackend{Op: OpWrite, Addr: addr, Err: m.WriteErr}
	}
	m.Writes++
	if m.regs == nil {
		m.regs = make(map[uint32]uint32)
	}
	m.regs[addr] = value
	return nil
}

// Peek returns the stored word without counting it as a backend read
func (m *Memory) Peek(addr uint32) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.regs[addr]
}

// Poke stores a word without counting it as a backend write
func (m *Memory) Poke(addr, value uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.regs == nil {
		m.regs = make(map[uint32]uint32)
	}
	m.regs[addr] = value
}
