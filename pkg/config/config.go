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

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

type AcquireConfig struct {
	CheckStatusPath       string `json:"checkStatusPath,omitempty"`
	SaveDataPath          string `json:"saveDataPath,omitempty"`
	SaveProcessedDataPath string `json:"saveProcessedDataPath,omitempty"`
}

type Config struct {
	// Revision is the register map revision: legacy or current
	Revision string `json:"revision"`
	// Backend is either monitor or sim
	Backend     string `json:"backend"`
	MonitorPath string `json:"monitorPath,omitempty"`
	// DBPath is the simulated register file used by the sim backend
	DBPath         string `json:"dbPath,omitempty"`
	DeviceName     string `json:"deviceName,omitempty"`
	*AcquireConfig `json:"acquire,omitempty"`
	LogLevel       string `json:"logLevel,omitempty"`
	filepath       string
}

// Path ...
func (c *Config) Path() string {
	return c.filepath
}

// SetPath ...
func (c *Config) SetPath(path string) {
	c.filepath = path
}

// Validate checks the values that select code paths
func (c *Config) Validate() error {
	switch c.Revision {
	case "legacy", "current":
	default:
		return ErrBadValue{Key: "revision", Value: c.Revision, Help: "Must be one of: legacy, current."}
	}
	switch c.Backend {
	case BackendMonitor, BackendSim:
	default:
		return ErrBadValue{Key: "backend", Value: c.Backend, Help: "Must be one of: monitor, sim."}
	}
	return nil
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filepath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(c.filepath, data, 0644)
}

// Load reads the config file if it exists. Values missing from the file keep their defaults.
func (c *Config) Load() error {
	data, err := ioutil.ReadFile(c.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir)
}

func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), ConfigFile)
}

func NewDefaultConfig() *Config {
	return &Config{
		Revision:    DefaultRevision,
		Backend:     DefaultBackend,
		MonitorPath: DefaultMonitorPath,
		DBPath:      filepath.Join(DefaultConfigDir(), DBFile),
		DeviceName:  DefaultDeviceName,
		AcquireConfig: &AcquireConfig{
			CheckStatusPath:       DefaultCheckStatusPath,
			SaveDataPath:          DefaultSaveDataPath,
			SaveProcessedDataPath: DefaultSaveProcessedDataPath,
		},
		LogLevel: DefaultLogLevel,
		filepath: DefaultConfigPath(),
	}
}
