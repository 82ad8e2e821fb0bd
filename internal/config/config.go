// Package config loads environment configuration for AirPad.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

const (
	defaultListenAddr   = "0.0.0.0:8927"
	defaultInstanceName = "AirPad"
	defaultMDNSEnabled  = true
)

// Config holds runtime configuration values. The wire protocol itself
// (service type, endpoint path, message schema) is fixed by convention
// with the client and is not configurable.
type Config struct {
	ListenAddr   string
	InstanceName string
	MDNSEnabled  bool
}

// Load reads configuration from ./.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:   defaultListenAddr,
		InstanceName: defaultInstanceName,
		MDNSEnabled:  defaultMDNSEnabled,
	}

	if err := loadEnvFile(".env"); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.InstanceName = envString("INSTANCE_NAME", cfg.InstanceName)
	cfg.MDNSEnabled = envBool("MDNS_ENABLED", cfg.MDNSEnabled)

	if _, err := cfg.Port(); err != nil {
		return Config{}, err
	}
	if cfg.InstanceName == "" {
		return Config{}, errors.New("INSTANCE_NAME must not be empty")
	}

	return cfg, nil
}

// Port extracts the TCP port from the listen address, for advertisement.
func (c Config) Port() (int, error) {
	_, portStr, err := net.SplitHostPort(c.ListenAddr)
	if err != nil {
		return 0, fmt.Errorf("LISTEN_ADDR invalid: %w", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("LISTEN_ADDR port invalid: %q", portStr)
	}
	return port, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
