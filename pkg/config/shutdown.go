package config

import (
	"fmt"
	"log"
	"strings"
	"time"
)

type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

const defaultShutdownTimeout = 30 * time.Second

// String returns a string representation of the ShutdownConfig.
func (c *ShutdownConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Shutdown ---\n")
	b.WriteString(fmt.Sprintf("  timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *ShutdownConfig) Validate() error {
	if c.Timeout <= 0 {
		log.Println("Using default value for shutdown.timeout")
		c.Timeout = defaultShutdownTimeout
	}
	return nil
}
