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

package control

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-pulse/pkg/command"
	"jinr.ru/greenlab/go-pulse/pkg/config"
	"jinr.ru/greenlab/go-pulse/pkg/device"
	"jinr.ru/greenlab/go-pulse/pkg/units"
)

const (
	RampStartOptionName = "start"
	RampEndOptionName   = "end"
	StepTimeOptionName  = "step-time"
	DurationOptionName  = "duration"
)

func NewDefaultsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Write the baseline configuration of the revision",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := command.OpenDevice(cfg)
			if err != nil {
				return err
			}
			defer d.Close()
			warnings, err := d.SetDefaults()
			command.ReportWarnings(cmd.OutOrStdout(), warnings)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Defaults written for %s revision\n", d.Revision())
			return nil
		},
	}
	return cmd
}

func NewTriggerCommand(cfg *config.Config) *cobra.Command {
	var names []string
	for t := device.Trigger(0); t < device.TriggerLimit; t++ {
		names = append(names, t.String())
	}
	cmd := &cobra.Command{
		Use:       "trigger <name>",
		Short:     fmt.Sprintf("Strobe a trigger bit. One of: %s", strings.Join(names, ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := device.ParseTrigger(args[0])
			if err != nil {
				return err
			}
			d, err := command.OpenDevice(cfg)
			if err != nil {
				return err
			}
			defer d.Close()
			return d.Trigger(t)
		},
	}
	return cmd
}

func NewRampCommand(cfg *config.Config) *cobra.Command {
	var start, end, stepTime, duration string
	cmd := &cobra.Command{
		Use:   "ramp",
		Short: "Program a DDS frequency ramp",
		RunE: func(cmd *cobra.Command, args []string) error {
			startHz, err := units.Parse(start, units.Hertz)
			if err != nil {
				return err
			}
			endHz, err := units.Parse(end, units.Hertz)
			if err != nil {
				return err
			}
			step, err := units.Parse(stepTime, units.Second)
			if err != nil {
				return err
			}
			total, err := units.Parse(duration, units.Second)
			if err != nil {
				return err
			}
			d, err := command.OpenDevice(cfg)
			if err != nil {
				return err
			}
			defer d.Close()
			warnings, err := d.RampSetup(startHz, endHz, step, total)
			command.ReportWarnings(cmd.OutOrStdout(), warnings)
			return err
		},
	}
	cmd.Flags().StringVar(&start, RampStartOptionName, "", "Ramp start frequency. E.g. 300MHz")
	cmd.Flags().StringVar(&end, RampEndOptionName, "", "Ramp end frequency. E.g. 310MHz")
	cmd.Flags().StringVar(&stepTime, StepTimeOptionName, "10ms", "Time per ramp step")
	cmd.Flags().StringVar(&duration, DurationOptionName, "", "Total ramp duration. E.g. 10s")
	cmd.MarkFlagRequired(RampStartOptionName)
	cmd.MarkFlagRequired(RampEndOptionName)
	cmd.MarkFlagRequired(DurationOptionName)
	return cmd
}

func NewDisplayCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "display",
		Short: "Print registers and params",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := command.OpenDevice(cfg)
			if err != nil {
				return err
			}
			defer d.Close()
			return d.Display(cmd.OutOrStdout())
		},
	}
	return cmd
}
