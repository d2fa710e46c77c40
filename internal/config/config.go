// Package config holds the monapi service configuration.
package config

import (
	"strings"

	"github.com/abgdnv/monapi/pkg/config"
	"github.com/abgdnv/monapi/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig      `koanf:"server"`
	API        config.APIConfig       `koanf:"api"`
	CORS       config.CORSConfig      `koanf:"cors"`
	Database   config.DatabaseConfig  `koanf:"database"`
	Log        config.LogConfig       `koanf:"log"`
	PProf      config.PProfConfig     `koanf:"pprof"`
	Shutdown   config.ShutdownConfig  `koanf:"shutdown"`
	Telemetry  config.TelemetryConfig `koanf:"telemetry"`
}

func (c *Config) String() string {
	if c == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.API.String())
	b.WriteString(c.CORS.String())
	b.WriteString(c.Database.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Shutdown.String())
	b.WriteString(c.Telemetry.String())
	return b.String()
}

// Validate checks every section and fills in defaults.
func (c *Config) Validate() error {
	validators := []configloader.Validator{
		&c.HTTPServer,
		&c.API,
		&c.CORS,
		&c.Database,
		&c.Log,
		&c.PProf,
		&c.Shutdown,
		&c.Telemetry,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
