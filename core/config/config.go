// Package config loads and validates tabsh's configuration directory.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the file name inside the config directory.
	ConfigurationName = "config.yaml"
	// HistoryName is the readline history file inside the config directory.
	HistoryName = "history"
	// HostKeyName is the SSH host key used by serve.
	HostKeyName = "host_key"

	DefaultPrompt = `\u@\h:\w\$ `
)

// Config is tabsh's on-disk configuration.
type Config struct {
	// Prompt supports \u (user), \h (host), \w (working dir), \$.
	Prompt string `json:"prompt"`

	// HistorySize bounds the readline history; 0 keeps the default.
	HistorySize int `json:"history_size" validate:"gte=0"`

	// Aliases maps a command name to the line it expands to.
	Aliases map[string]string `json:"aliases"`

	SSH SSH `json:"ssh"`
}

// SSH configures the serve subcommand.
type SSH struct {
	Port int `json:"port" validate:"gte=0,lte=65535"`
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}
