package config

import (
	"fmt"
	"log"
	"strings"
	"time"
)

type HTTPConfig struct {
	Port           int `koanf:"port"`
	MaxHeaderBytes int `koanf:"maxHeaderBytes"`
	Timeout        struct {
		Read       time.Duration `koanf:"read"`
		Write      time.Duration `koanf:"write"`
		Idle       time.Duration `koanf:"idle"`
		ReadHeader time.Duration `koanf:"readHeader"`
	} `koanf:"timeout"`
}

const (
	defaultMaxHeaderBytes    = 1 << 20
	defaultReadTimeout       = 10 * time.Second
	defaultWriteTimeout      = 10 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

// String returns a string representation of the HTTP server configuration.
func (c *HTTPConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Server ---\n")
	b.WriteString(fmt.Sprintf("  port: %d\n", c.Port))
	b.WriteString(fmt.Sprintf("  maxHeaderBytes: %d\n", c.MaxHeaderBytes))
	b.WriteString(fmt.Sprintf("  timeout.read: %v\n", c.Timeout.Read))
	b.WriteString(fmt.Sprintf("  timeout.write: %v\n", c.Timeout.Write))
	b.WriteString(fmt.Sprintf("  timeout.idle: %v\n", c.Timeout.Idle))
	b.WriteString(fmt.Sprintf("  timeout.readHeader: %v\n", c.Timeout.ReadHeader))
	return b.String()
}

// Validate requires a port. Missing limits and timeouts fall back to defaults.
func (c *HTTPConfig) Validate() error {
	if c.Port == 0 {
		return fmt.Errorf("HTTP server port is not configured")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid HTTP server port: %d", c.Port)
	}
	if c.MaxHeaderBytes <= 0 {
		log.Println("Using default value for server.maxHeaderBytes")
		c.MaxHeaderBytes = defaultMaxHeaderBytes
	}
	if c.Timeout.Read <= 0 {
		log.Println("Using default value for server.timeout.read")
		c.Timeout.Read = defaultReadTimeout
	}
	if c.Timeout.Write <= 0 {
		log.Println("Using default value for server.timeout.write")
		c.Timeout.Write = defaultWriteTimeout
	}
	if c.Timeout.Idle <= 0 {
		log.Println("Using default value for server.timeout.idle")
		c.Timeout.Idle = defaultIdleTimeout
	}
	if c.Timeout.ReadHeader <= 0 {
		log.Println("Using default value for server.timeout.readHeader")
		c.Timeout.ReadHeader = defaultReadHeaderTimeout
	}
	return nil
}
