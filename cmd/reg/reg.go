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

package reg

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-pulse/pkg/backend"
	"jinr.ru/greenlab/go-pulse/pkg/command"
	"jinr.ru/greenlab/go-pulse/pkg/config"
)

func NewCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reg",
		Short: "Raw register access",
	}
	cmd.AddCommand(NewReadCommand(cfg))
	cmd.AddCommand(NewWriteCommand(cfg))
	return cmd
}

// parseOffset accepts a register offset relative to the register file base
func parseOffset(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func printRegister(out io.Writer, d *command.Device, offset uint32) error {
	fields := d.Bank().FieldsAt(offset)
	var word uint32
	var err error
	if len(fields) > 0 {
		word, err = fields[0].Read()
	} else {
		word, err = d.Backend.ReadRegister(backend.MemAddr + offset)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Register state: %s = %s\n", backend.FormatWord(backend.MemAddr+offset), backend.FormatWord(word))
	for _, f := range fields {
		fmt.Fprintf(out, "  %-24s [%2d:%2d] = %d\n", f.Name, f.Bits[0], f.Bits[1], (word&f.Mask())>>uint(f.Bits[0]))
	}
	return nil
}

func NewReadCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read [offset]",
		Short: "Read register word and decode its fields. Without offset every mapped register is read",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := command.OpenDevice(cfg)
			if err != nil {
				return err
			}
			defer d.Close()
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				offset, err := parseOffset(args[0])
				if err != nil {
					return err
				}
				return printRegister(out, d, offset)
			}
			for _, offset := range d.Bank().Registers() {
				if err := printRegister(out, d, offset); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

func NewWriteCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write <offset> <value>",
		Short: "Write full register word (value is hexadecimal)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := parseOffset(args[0])
			if err != nil {
				return err
			}
			value, err := backend.ParseWord(args[1])
			if err != nil {
				return err
			}
			d, err := command.OpenDevice(cfg)
			if err != nil {
				return err
			}
			defer d.Close()
			if l, ok := d.Backend.(*backend.Locked); ok {
				l.Lock()
				defer l.Unlock()
			}
			return d.Backend.WriteRegister(backend.MemAddr+offset, value)
		},
	}
	return cmd
}
