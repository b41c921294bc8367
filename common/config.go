package common

import (
	"io/ioutil"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v2"
)

// Config defines the structure of the yml file for the vcd config
type Config struct {
	Host     string            `yaml:"host,omitempty"`
	Org      string            `yaml:"org,omitempty"`
	Insecure bool              `yaml:"insecure,omitempty"`
	Tokens   map[string]string `yaml:"tokens,omitempty"`
}

// InitializeConfigFromFile loads config from the named file, falling
// back to ~/.vcd/vcd.yml when the file does not exist
func (ctx *Context) InitializeConfigFromFile(configFile string) error {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		configFile = filepath.Join(home, ".vcd", "vcd.yml")
	}

	yamlConfig, err := ioutil.ReadFile(configFile)
	if err != nil {
		return err
	}

	return ctx.loadYamlConfig(yamlConfig)
}

func (ctx *Context) loadYamlConfig(yamlConfig []byte) error {
	if err := yaml.Unmarshal(yamlConfig, &ctx.Config); err != nil {
		return err
	}
	if ctx.Config.Tokens == nil {
		ctx.Config.Tokens = make(map[string]string)
	}
	return nil
}

// NewStringIfNotEmpty takes strings a and b, and returns a unless
// string b is not empty.
func NewStringIfNotEmpty(original string, newString string) string {
	if newString != "" {
		return newString
	}
	return original
}
