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
	"encoding/binary"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"jinr.ru/greenlab/go-pulse/pkg/log"
)

const (
	BucketNamePrefix = "reg_"
)

// State is a simulated register file kept in a bbolt database,
// one bucket per device. Registers never written read as zero.
type State struct {
	DB     *bbolt.DB
	bucket []byte
}

var _ RegisterBackend = &State{}

func NewState(dbPath, deviceName string) (*State, error) {
	// open register database
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, err
	}
	bucket := []byte(bucketName(deviceName))
	if err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &State{
		DB:     db,
		bucket: bucket,
	}, nil
}

func uint32ToByte(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func bucketName(deviceName string) string {
	return fmt.Sprintf("%s%s", BucketNamePrefix, deviceName)
}

// Close ...
func (s *State) Close() error {
	return s.DB.Close()
}

// ReadRegister ...
func (s *State) ReadRegister(addr uint32) (uint32, error) {
	var value uint32
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return errors.New(fmt.Sprintf("Bucket not found: %s", s.bucket))
		}
		valueBytes := b.Get(uint32ToByte(addr))
		if valueBytes == nil {
			return nil
		}
		if len(valueBytes) != 4 {
			return errors.New(fmt.Sprintf("Corrupted register value: %x", valueBytes))
		}
		value = binary.BigEndian.Uint32(valueBytes)
		return nil
	}); err != nil {
		return 0, ErrBackend{Op: OpRead, Addr: addr, Err: err}
	}
	log.Debug("Getting register: Addr: %x Value: %x", addr, value)
	return value, nil
}

// WriteRegister ...
func (s *State) WriteRegister(addr, value uint32) error {
	log.Debug("Setting register: Addr: %x Value: %x", addr, value)
	if err := s.DB.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return errors.New(fmt.Sprintf("Bucket not found: %s", s.bucket))
		}
		return b.Put(uint32ToByte(addr), uint32ToByte(value))
	}); err != nil {
		return ErrBackend{Op: OpWrite, Addr: addr, Err: err}
	}
	return nil
}

// Registers returns every register written so far, keyed by global address
func (s *State) Registers() (map[uint32]uint32, error) {
	regs := make(map[uint32]uint32)
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return errors.New(fmt.Sprintf("Bucket not found: %s", s.bucket))
		}
		return b.ForEach(func(k, v []byte) error {
			if len(k) != 4 || len(v) != 4 {
				return errors.New(fmt.Sprintf("Corrupted register entry: %x = %x", k, v))
			}
			regs[binary.BigEndian.Uint32(k)] = binary.BigEndian.Uint32(v)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return regs, nil
}
