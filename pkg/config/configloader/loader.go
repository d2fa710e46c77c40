// Package configloader loads a service configuration from a yaml file, a .env file and the
// process environment, in increasing order of priority.
package configloader

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Validator interface {
	Validate() error
}

const (
	defaultConfigFile = "config.yaml"
	defaultEnvFile    = ".env"
)

// Load builds a T for serviceName. Environment keys are expected as <SERVICE>_<SECTION>_<KEY>,
// e.g. MONAPI_SERVER_PORT maps to server.port and MONAPI_CORS_ALLOWEDORIGINS to
// cors.allowedOrigins. <SERVICE>_CONFIG_FILE overrides the yaml path.
func Load[T Validator](serviceName string) (T, error) {
	var cfg T
	k := koanf.New(".")

	envPrefix := fmt.Sprintf("%s_", strings.ToUpper(serviceName))
	configFile := defaultConfigFile
	if path, ok := os.LookupEnv(envPrefix + "CONFIG_FILE"); ok && path != "" {
		configFile = path
	}

	// 1. Load configuration from yaml file
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error loading YAML config file '%s': %v", configFile, err)
		}
	}

	// 2. Load environment variables from .env file
	resolve := envResolver(envPrefix, k)
	if envFileMap, err := godotenv.Read(defaultEnvFile); err == nil {
		envMap := make(map[string]any)
		for key, value := range envFileMap {
			if !strings.HasPrefix(strings.ToUpper(key), envPrefix) {
				continue
			}
			path, v := resolve(key, value)
			envMap[path] = v
		}
		if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
			log.Printf("WARN: error loading .env config: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("WARN: error reading .env file: %v", err)
	}

	// 3. Load environment variables from the system, the highest priority
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", resolve), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	// 4. Unmarshal the configuration into the Config struct
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// 5. Validate the configuration
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// envResolver maps an environment variable to a config path and value. Env names are
// case-insensitive, so MONAPI_SERVER_MAXHEADERBYTES resolves to the server.maxHeaderBytes key
// already present in k; keys absent from k keep the lowercase path, which unmarshalling
// matches to struct tags case-insensitively. Values for list keys are split on commas.
func envResolver(envPrefix string, k *koanf.Koanf) func(key, value string) (string, any) {
	transform := keyTransformer(envPrefix)
	known := make(map[string]string)
	for _, path := range k.Keys() {
		known[strings.ToLower(path)] = path
	}
	return func(key, value string) (string, any) {
		path := transform(key)
		if actual, ok := known[path]; ok {
			path = actual
		}
		switch k.Get(path).(type) {
		case []any, []string:
			return path, splitList(value)
		}
		return path, value
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}

// keyTransformer maps MONAPI_SERVER_PORT to server.port.
func keyTransformer(envPrefix string) func(string) string {
	lowerPrefix := strings.ToLower(envPrefix)
	return func(key string) string {
		key = strings.ToLower(key)
		key = strings.TrimPrefix(key, lowerPrefix)
		return strings.ReplaceAll(key, "_", ".")
	}
}
