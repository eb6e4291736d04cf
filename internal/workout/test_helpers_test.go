package workout

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// testDB creates a temporary SQLite database with the users and workouts
// schema applied. The database file is cleaned up when the test completes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	// Use a temp file so WAL mode works (in-memory doesn't support it)
	f, err := os.CreateTemp("", "workout-test-*.db")
	if err != nil {
		t.Fatalf("creating temp db: %v", err)
	}
	dbPath := f.Name()
	f.Close()
	t.Cleanup(func() { os.Remove(dbPath) })

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	migrationSQL := `
		CREATE TABLE users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		) STRICT;

		CREATE TABLE workouts (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			activity TEXT NOT NULL,
			duration_minutes INTEGER NOT NULL,
			intensity TEXT,
			notes TEXT,
			distance REAL,
			exercises TEXT,
			owner_id TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
			FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE
		) STRICT;

		CREATE INDEX idx_workouts_owner ON workouts(owner_id);
		CREATE INDEX idx_workouts_owner_date ON workouts(owner_id, date DESC);
	`
	if _, err := db.Exec(migrationSQL); err != nil {
		t.Fatalf("applying schema: %v", err)
	}

	return db
}

// seedTestOwner inserts a bare user row so workout foreign keys resolve.
func seedTestOwner(t *testing.T, db *sql.DB, id, username string) {
	t.Helper()

	_, err := db.Exec(
		"INSERT INTO users (id, username, password_hash, role) VALUES (?, ?, 'x', 'user')",
		id, username)
	if err != nil {
		t.Fatalf("seeding owner %s: %v", username, err)
	}
}

// seedTestWorkout creates a workout through the repository and returns it.
func seedTestWorkout(t *testing.T, repo *SQLiteRepository, ownerID, date, activity string) *Workout {
	t.Helper()

	w := &Workout{
		Date:     date,
		Activity: activity,
		Duration: 30,
		OwnerID:  ownerID,
	}
	if err := repo.Create(context.Background(), w); err != nil {
		t.Fatalf("creating test workout: %v", err)
	}
	return w
}
