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

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-pulse/cmd/acquire"
	"jinr.ru/greenlab/go-pulse/cmd/completion"
	"jinr.ru/greenlab/go-pulse/cmd/config"
	"jinr.ru/greenlab/go-pulse/cmd/control"
	"jinr.ru/greenlab/go-pulse/cmd/param"
	"jinr.ru/greenlab/go-pulse/cmd/reg"
	pkgconfig "jinr.ru/greenlab/go-pulse/pkg/config"
	"jinr.ru/greenlab/go-pulse/pkg/log"
)

const (
	LogLevelOptionName   = "log-level"
	ConfigOptionName     = "config"
	RevisionOptionName   = "revision"
	BackendOptionName    = "backend"
	DBPathOptionName     = "db"
	DeviceNameOptionName = "device"
)

type rootOptions struct {
	logLevel   string
	configPath string
	revision   string
	backend    string
	dbPath     string
	deviceName string
}

// apply loads the config file and lets the flags override it
func (o *rootOptions) apply(cfg *pkgconfig.Config) error {
	if o.configPath != "" {
		cfg.SetPath(o.configPath)
	}
	if err := cfg.Load(); err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.revision != "" {
		cfg.Revision = o.revision
	}
	if o.backend != "" {
		cfg.Backend = o.backend
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	if o.deviceName != "" {
		cfg.DeviceName = o.deviceName
	}
	return nil
}

func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cfg := pkgconfig.NewDefaultConfig()
	cmd := &cobra.Command{
		Use:           "go-pulse",
		Short:         "Tool to configure pulsed measurement devices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.apply(cfg); err != nil {
				return err
			}
			return log.Init(cmd.ErrOrStderr(), cfg.LogLevel)
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(config.NewCommand(cfg))
	cmd.AddCommand(param.NewCommand(cfg))
	cmd.AddCommand(control.NewDefaultsCommand(cfg))
	cmd.AddCommand(control.NewTriggerCommand(cfg))
	cmd.AddCommand(control.NewRampCommand(cfg))
	cmd.AddCommand(control.NewDisplayCommand(cfg))
	cmd.AddCommand(reg.NewCommand(cfg))
	cmd.AddCommand(acquire.NewCommand(cfg))
	cmd.AddCommand(completion.NewCommand())

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	flags.StringVar(&opts.configPath, ConfigOptionName, "", fmt.Sprintf("Config file. Default %s", pkgconfig.DefaultConfigPath()))
	flags.StringVar(&opts.revision, RevisionOptionName, "", "Register map revision: legacy or current")
	flags.StringVar(&opts.backend, BackendOptionName, "", "Register backend: monitor or sim")
	flags.StringVar(&opts.dbPath, DBPathOptionName, "", "Simulated register file used by the sim backend")
	flags.StringVar(&opts.deviceName, DeviceNameOptionName, "", "Device name")
	return cmd
}
