package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Query limits
const (
	DefaultHistoryLimit     = 50
	DefaultTransactionLimit = 100
)
