package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Address     string
	AddressFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("ZDEFENSE_SERVER", "http://localhost:8080"),
		Address:     os.Getenv("ZDEFENSE_ADDRESS"),
		AddressFile: getEnvOrDefault("ZDEFENSE_ADDRESS_FILE", defaultAddressFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadAddress loads the default wallet address from file if not
// already set via flag or env
func (c *Config) LoadAddress() error {
	if c.Address != "" {
		return nil
	}

	data, err := os.ReadFile(c.AddressFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No address file is fine
		}
		return err
	}

	c.Address = strings.TrimSpace(string(data))
	return nil
}

// SaveAddress saves the wallet address to the address file so later
// commands can omit --address
func (c *Config) SaveAddress(address string) error {
	c.Address = address

	dir := filepath.Dir(c.AddressFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.AddressFile, []byte(address), 0600)
}

func defaultAddressFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zdefense/address"
	}
	return filepath.Join(home, ".zdefense", "address")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
