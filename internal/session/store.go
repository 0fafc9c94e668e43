// Package session stores the caller-owned conversation profile between
// turns, keyed by session ID. The advisory core never reads or writes
// this state itself; the request boundary injects it.
package session

// Record is the last materialized profile for one session.
type Record struct {
	SessionID   string
	ProfileJSON []byte
	UpdatedAt   string
}

type Store interface {
	Get(sessionID string) (Record, bool)
	Put(rec Record) error
	Close() error
}
