package session

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id   TEXT PRIMARY KEY,
	profile_json TEXT NOT NULL,
	updated_at   TEXT NOT NULL
);`

type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the session database at dsn.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(sessionID string) (Record, bool) {
	var rec Record
	var profile string
	row := s.db.QueryRow(`SELECT session_id, profile_json, updated_at FROM sessions WHERE session_id = ?`, sessionID)
	if err := row.Scan(&rec.SessionID, &profile, &rec.UpdatedAt); err != nil {
		return Record{}, false
	}
	rec.ProfileJSON = []byte(profile)
	return rec, true
}

func (s *SQLiteStore) Put(rec Record) error {
	_, err := s.db.Exec(`INSERT INTO sessions (session_id, profile_json, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(session_id) DO UPDATE SET profile_json = excluded.profile_json, updated_at = excluded.updated_at`,
		rec.SessionID, string(rec.ProfileJSON), rec.UpdatedAt)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
