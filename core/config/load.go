package config

import (
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Default returns the built-in configuration.
func Default() *Config {
	var out Config
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Load reads the configuration from the directory. Given the path to a
// config.yaml file it moves back up a level first.
func Load(fs afero.Fs, path string) (*Config, error) {
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := afero.ReadFile(fs, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	var out Config
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Initialize writes the commented default configuration into the
// directory, creating it if needed. Existing files are left alone.
func Initialize(fs afero.Fs, path string, logw io.Writer) error {
	if err := fs.MkdirAll(path, 0700); err != nil {
		return err
	}

	dest := filepath.Join(path, ConfigurationName)
	if exists, _ := afero.Exists(fs, dest); exists {
		io.WriteString(logw, dest+" already exists, leaving it alone\n")
		return nil
	}

	if err := afero.WriteFile(fs, dest, defaultConfigData, 0600); err != nil {
		return err
	}
	io.WriteString(logw, "wrote "+dest+"\n")
	return nil
}
