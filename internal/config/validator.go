package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// EnvSchemaVersion names the variable carrying the .env layout version
const EnvSchemaVersion = "ENV_SCHEMA_VERSION"

// RequiredEnvVars must be present in the environment for a production start
var RequiredEnvVars = []string{
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
}

const examplePassword = "change_this_secure_password"

// ValidateEnv checks the .env schema version and that every required
// variable is set.
func ValidateEnv() error {
	switch version := os.Getenv(EnvSchemaVersion); version {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("%s is not set (expected %s)", EnvSchemaVersion, ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("%s mismatch: expected %s, got %s", EnvSchemaVersion, ExpectedEnvSchemaVersion, version)
	}

	var missing []string
	for _, name := range RequiredEnvVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then lists settings in cfg that
// load but are likely mistakes.
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}
	return cfg.Warnings(), nil
}

// Warnings reports risky or surprising values without rejecting them
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == examplePassword {
		warnings = append(warnings, EnvDBPassword+" is still the example value")
	}
	if c.APIKey == "" {
		warnings = append(warnings, EnvAPIKey+" is not set, securities administration is open to any caller")
	}
	if money.GetCurrency(c.Currency) == nil {
		warnings = append(warnings, fmt.Sprintf("%s %q is not a known ISO 4217 code, balances will be formatted in %s", EnvCurrency, c.Currency, DefaultCurrency))
	}
	if c.MinSecurities < DefaultMinSecurities {
		warnings = append(warnings, fmt.Sprintf("%s is %d, portfolios may be built from fewer than %d securities", EnvMinSecurities, c.MinSecurities, DefaultMinSecurities))
	}
	if c.TokenCacheTTL == 0 {
		warnings = append(warnings, EnvTokenCacheTTL+" is 0, cached tokens never expire")
	}
	return warnings
}
