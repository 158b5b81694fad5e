// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Tests call Open, which skips the test when no database URL is configured
// and otherwise applies all migrations, then isolate their writes with
// WithTx:
//
//	func TestMyFeature(t *testing.T) {
//		db := testdb.Open(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			users := postgres.NewPostgresUserStore(tx, nil)
//			// ...
//		})
//	}
package testdb
