package config

import (
	"fmt"
	"log"
	"strings"
)

// APIConfig holds the root path every resource router is mounted under.
type APIConfig struct {
	Prefix string `koanf:"prefix"`
}

const defaultAPIPrefix = "/monapi"

// String returns a string representation of the API configuration.
func (c *APIConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- API ---\n")
	b.WriteString(fmt.Sprintf("  prefix: %s\n", c.Prefix))
	return b.String()
}

func (c *APIConfig) Validate() error {
	if c.Prefix == "" {
		log.Println("Using default value for api.prefix")
		c.Prefix = defaultAPIPrefix
	}
	if !strings.HasPrefix(c.Prefix, "/") {
		return fmt.Errorf("api prefix must start with '/': %s", c.Prefix)
	}
	c.Prefix = strings.TrimSuffix(c.Prefix, "/")
	if c.Prefix == "" {
		return fmt.Errorf("api prefix must not be the root path")
	}
	return nil
}
