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

package acquire

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-pulse/pkg/command"
	"jinr.ru/greenlab/go-pulse/pkg/config"
)

func NewCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "acquire",
		Short: "Run and save acquisitions",
	}
	cmd.AddCommand(NewBeginCommand(cfg))
	cmd.AddCommand(NewSaveCommand(cfg))
	return cmd
}

func NewBeginCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "begin",
		Short: "Strobe the start trigger and wait for the status checker",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := command.OpenDevice(cfg)
			if err != nil {
				return err
			}
			defer d.Close()
			status, err := command.NewSession(cfg, d).Begin(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), status)
			return nil
		},
	}
	return cmd
}

func NewSaveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save raw and processed data of the last acquisition",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := command.OpenDevice(cfg)
			if err != nil {
				return err
			}
			defer d.Close()
			outputs, err := command.NewSession(cfg, d).Save(context.Background())
			for _, out := range outputs {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return err
		},
	}
	return cmd
}
