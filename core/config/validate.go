package config

import (
	"fmt"

	"github.com/gookit/validate"
)

// Validate checks every section against its `validate` struct tags.
func (c *Config) Validate() error {
	sections := []struct {
		name  string
		value any
	}{
		{"kindle", &c.Kindle},
		{"data", &c.Data},
		{"report", &c.Report},
		{"server", &c.Server},
		{"log", &c.Log},
		{"database", &c.Database},
	}

	for _, s := range sections {
		v := validate.Struct(s.value)
		if !v.Validate() {
			return fmt.Errorf("invalid %s configuration: %w", s.name, v.Errors)
		}
	}
	return nil
}
