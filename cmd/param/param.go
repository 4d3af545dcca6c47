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

package param

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-pulse/pkg/command"
	"jinr.ru/greenlab/go-pulse/pkg/config"
	"jinr.ru/greenlab/go-pulse/pkg/device"
	"jinr.ru/greenlab/go-pulse/pkg/units"
)

func NewCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "param",
		Short: "Read and write device parameters",
	}
	cmd.AddCommand(NewListCommand(cfg))
	cmd.AddCommand(NewGetCommand(cfg))
	cmd.AddCommand(NewSetCommand(cfg))
	return cmd
}

func printParam(out io.Writer, p device.Param, v float64) {
	if p.Unit() == "" {
		fmt.Fprintf(out, "%s = %v\n", p, v)
		return
	}
	fmt.Fprintf(out, "%s = %v (%s)\n", p, v, units.Format(v, p.Unit()))
}

func NewListCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List params available on the configured revision",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := command.OpenDevice(cfg)
			if err != nil {
				return err
			}
			defer d.Close()
			out := cmd.OutOrStdout()
			for _, p := range d.Params() {
				access := "rw"
				if p.ReadOnly() {
					access = "ro"
				}
				fmt.Fprintf(out, "%-16s %s %-3s %s\n", p, access, p.Unit(), p.Label())
			}
			return nil
		},
	}
	return cmd
}

func NewGetCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [param...]",
		Short: "Read params. Without arguments every param is read",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := command.OpenDevice(cfg)
			if err != nil {
				return err
			}
			defer d.Close()
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				settings, err := d.Snapshot()
				if err != nil {
					return err
				}
				for _, s := range settings {
					printParam(out, s.Param, s.Value)
				}
				return nil
			}
			for _, name := range args {
				p, err := device.ParseParam(name)
				if err != nil {
					return err
				}
				v, err := d.Get(p)
				if err != nil {
					return err
				}
				printParam(out, p, v)
			}
			return nil
		},
	}
	return cmd
}

func NewSetCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <param> <value>",
		Short: "Write a param. Values take an optional unit suffix, e.g. 300MHz or 10ms",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := device.ParseParam(args[0])
			if err != nil {
				return err
			}
			v, err := units.Parse(args[1], p.Unit())
			if err != nil {
				return err
			}
			d, err := command.OpenDevice(cfg)
			if err != nil {
				return err
			}
			defer d.Close()
			warnings, err := d.Set(p, v)
			command.ReportWarnings(cmd.OutOrStdout(), warnings)
			if err != nil {
				return err
			}
			got, err := d.Get(p)
			if err != nil {
				return err
			}
			printParam(cmd.OutOrStdout(), p, got)
			return nil
		},
	}
	return cmd
}
