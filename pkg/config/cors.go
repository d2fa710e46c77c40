package config

import (
	"fmt"
	"strings"
)

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowedOrigins"`
	AllowedMethods []string `koanf:"allowedMethods"`
	AllowedHeaders []string `koanf:"allowedHeaders"`
	MaxAge         int      `koanf:"maxAge"`
}

// String returns a string representation of the CORS configuration.
func (c *CORSConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- CORS ---\n")
	b.WriteString(fmt.Sprintf("  allowedOrigins: %v\n", c.AllowedOrigins))
	b.WriteString(fmt.Sprintf("  allowedMethods: %v\n", c.AllowedMethods))
	b.WriteString(fmt.Sprintf("  allowedHeaders: %v\n", c.AllowedHeaders))
	b.WriteString(fmt.Sprintf("  maxAge: %d\n", c.MaxAge))
	return b.String()
}

// Validate fills in permissive defaults, matching a plain cors() setup.
func (c *CORSConfig) Validate() error {
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"}
	}
	if len(c.AllowedHeaders) == 0 {
		c.AllowedHeaders = []string{"*"}
	}
	if c.MaxAge < 0 {
		return fmt.Errorf("cors maxAge must not be negative: %d", c.MaxAge)
	}
	return nil
}
