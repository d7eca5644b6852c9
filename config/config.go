package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/s4mli/farol/common"
)

// Environment variables read into the snapshot: the comma separated
// pattern spec and an explicit engine severity that overrides the
// computed threshold.
const (
	DefaultSpecVar  = "FAROL_DEBUG"
	DefaultLevelVar = "FAROL_LEVEL"
)

// Snapshot is the construction-time configuration of a logger matrix.
// It is read exactly once; a built matrix never looks at the
// environment again.
type Snapshot struct {
	Spec  string `yaml:"spec"`
	Level string `yaml:"level"`
}

func (s Snapshot) String() string { return common.Stringify(s) }

func FromEnv() Snapshot { return FromEnvVars(DefaultSpecVar, DefaultLevelVar) }

func FromEnvVars(specVar, levelVar string) Snapshot {
	return Snapshot{Spec: os.Getenv(specVar), Level: os.Getenv(levelVar)}
}

// LoadConfig reads a snapshot for one app and environment out of a
// nested yaml file (app → env → snapshot).
func LoadConfig(app, env, configFile string) (*Snapshot, error) {
	raw, err := ioutil.ReadFile(configFile)
	if err != nil {
		return nil, err
	}
	var appConfigs map[string]map[string]*Snapshot
	if err := yaml.Unmarshal(raw, &appConfigs); err != nil {
		return nil, err
	}
	configs, ok := appConfigs[app]
	if !ok {
		return nil, fmt.Errorf("ensure config is for %s", app)
	}
	c, ok := configs[env]
	if !ok {
		return nil, fmt.Errorf("missing config for %s", env)
	}
	if c == nil {
		c = &Snapshot{}
	}
	return c, nil
}
