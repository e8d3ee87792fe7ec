/*
Package config loads the service configuration.

PURPOSE:
  Everything the core treats as fixed comes from here: the known-user
  roster, the hourly pay rate, the currency symbol, and which storage
  backend to wire. Config is read once at startup from a YAML file with
  env-var overrides for deployment secrets (DATABASE_URL).

EXAMPLE (config.yaml):

  pay_rate: 7.0
  currency: "€"
  storage:
    driver: sqlite          # sqlite | postgres | memory
    path: ./data/shifts.db  # sqlite only
    dsn: ""                 # postgres only; DATABASE_URL overrides
  users:
    - code: user_1
      name: Ira
    - code: user_2
      name: Andrii
    - code: user_3
      name: Pasha
*/
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/warp/shift-ledger/shift"
)

// Storage selects and parameterizes the ledger backend.
type Storage struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
}

// User is one roster entry in the config file.
type User struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Config is the full service configuration.
type Config struct {
	PayRate  float64 `yaml:"pay_rate"`
	Currency string  `yaml:"currency"`
	Storage  Storage `yaml:"storage"`
	Users    []User  `yaml:"users"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		PayRate:  shift.DefaultPayRate,
		Currency: shift.DefaultCurrency,
		Storage:  Storage{Driver: "sqlite", Path: "shifts.db"},
		Users: []User{
			{Code: "user_1", Name: "Ira"},
			{Code: "user_2", Name: "Andrii"},
			{Code: "user_3", Name: "Pasha"},
		},
	}
}

// Load reads the YAML file at path, applies defaults for missing fields and
// env overrides. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		// Unmarshal over the defaults so absent keys keep them.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Storage.DSN = dsn
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.PayRate <= 0 {
		return fmt.Errorf("pay_rate must be positive, got %v", c.PayRate)
	}
	switch c.Storage.Driver {
	case "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == "postgres" && c.Storage.DSN == "" {
		return fmt.Errorf("postgres driver requires storage.dsn or DATABASE_URL")
	}
	if len(c.Users) == 0 {
		return fmt.Errorf("users roster must not be empty")
	}
	seen := make(map[string]bool)
	for _, u := range c.Users {
		code := strings.TrimSpace(u.Code)
		if code == "" {
			return fmt.Errorf("user with empty code")
		}
		if seen[code] {
			return fmt.Errorf("duplicate user code %q", code)
		}
		seen[code] = true
	}
	return nil
}

// Roster builds the domain roster from the configured users.
func (c *Config) Roster() *shift.Roster {
	entries := make([]shift.RosterEntry, 0, len(c.Users))
	for _, u := range c.Users {
		entries = append(entries, shift.RosterEntry{
			Code: shift.UserCode(strings.ToLower(strings.TrimSpace(u.Code))),
			Name: u.Name,
		})
	}
	return shift.NewRoster(entries)
}
