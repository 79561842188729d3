// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces. Uniqueness invariants (user names, key secrets, one
// key per client identifier) are enforced by database constraints so
// concurrent writers race safely; constraint violations are mapped to
// the store package's sentinel errors.
package postgres
