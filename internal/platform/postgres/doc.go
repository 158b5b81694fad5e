// Package postgres implements the repository contracts from internal/store
// on PostgreSQL through database/sql and the pgx stdlib driver. Rows read
// back from the database are re-validated through the domain value-object
// constructors before they reach a use case.
//
// The schema lives in the embedded migrations directory and is applied with
// goose (see Migrate).
package postgres
