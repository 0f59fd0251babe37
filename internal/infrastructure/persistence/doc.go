// Package persistence provides GORM-based implementations of the domain
// repository contracts, together with database connection management for
// SQLite and PostgreSQL backends.
package persistence
