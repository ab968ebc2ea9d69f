package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults that can be persisted to <workdir>/sheetfreak.yaml
// so that scripted invocations don't have to repeat --credentials and --url
// on every command.
type Config struct {
	Credentials string `yaml:"credentials"`
	URL         string `yaml:"url"`
}

// loadConfig reads a sheetfreak.yaml configuration file. A missing file is
// not an error - commands fall back to the command line options and the
// built-in defaults.
func loadConfig(file string) (Config, error) {
	conf := Config{}

	bytes, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, nil
		}

		return conf, fmt.Errorf("could not read configuration file %s (%v)", file, err)
	}

	if err := yaml.Unmarshal(bytes, &conf); err != nil {
		return conf, fmt.Errorf("invalid configuration file %s (%v)", file, err)
	}

	return conf, nil
}
