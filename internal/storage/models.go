package storage

import "time"

// KVEntry is a row of the kv table.
type KVEntry struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// JournalEntry is a recorded game notification.
type JournalEntry struct {
	ID          string    `db:"id"`
	Kind        string    `db:"kind"`
	ObjectiveID string    `db:"objective_id"`
	Text        string    `db:"text"`
	Chapter     int       `db:"chapter"`
	Level       int       `db:"level"`
	CreatedAt   time.Time `db:"created_at"`
}
