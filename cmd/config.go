package cmd

import (
	"fmt"
	"strconv"
	"time"
)

// Config carries every startup setting of the service. Values come from
// the environment; see getConfigs in cmd/app.
type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	OpenAPIPath string

	// SupervisorEnabled switches between the four-role superset and the
	// three-role variant where the admin creates orders and Review
	// orders are rejected.
	SupervisorEnabled bool

	// AllowCancel opens the explicit order-cancellation endpoint. Off by
	// default: orders stay pending until executed.
	AllowCancel bool

	// OrderTTL expires pending orders older than the duration during the
	// alert sweep. Zero disables expiry.
	OrderTTL time.Duration

	// AlertSweepSpec overrides the sweep schedule. Empty means the
	// 30-second default.
	AlertSweepSpec string
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// ParseBool reads a boolean setting; empty and unparsable values are false.
func ParseBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}

// ParseDuration reads a duration setting; empty and unparsable values are
// zero.
func ParseDuration(value string) time.Duration {
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return parsed
}
