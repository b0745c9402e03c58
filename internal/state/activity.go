package state

import (
	"database/sql"
	"time"

	"github.com/llehouerou/actionbar/internal/db"
)

// maxActivity bounds the activity log; older rows are pruned on insert.
const maxActivity = 500

// Entry is one dispatched action in the activity log.
type Entry struct {
	ID     int64
	Name   string
	Source string // "button", "menu" or "keyboard"
	Label  string // display title at dispatch time, may be empty
	At     time.Time
}

// RecordDispatch appends a dispatched action to the activity log.
func (m *Manager) RecordDispatch(e Entry) error {
	return db.WithTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO activity (action_name, source, label, dispatched_at)
			VALUES (?, ?, ?, ?)
		`, e.Name, e.Source, db.NullString(e.Label), e.At.UnixMilli()); err != nil {
			return err
		}
		_, err := tx.Exec(`
			DELETE FROM activity WHERE id NOT IN (
				SELECT id FROM activity ORDER BY dispatched_at DESC, id DESC LIMIT ?
			)
		`, maxActivity)
		return err
	})
}

// Recent returns up to n entries, newest first.
func (m *Manager) Recent(n int) ([]Entry, error) {
	rows, err := m.db.Query(`
		SELECT id, action_name, source, label, dispatched_at
		FROM activity
		ORDER BY dispatched_at DESC, id DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var label sql.NullString
		var at int64
		if err := rows.Scan(&e.ID, &e.Name, &e.Source, &label, &at); err != nil {
			return nil, err
		}
		e.Label = db.NullStringValue(label)
		e.At = time.UnixMilli(at)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearActivity empties the activity log.
func (m *Manager) ClearActivity() error {
	_, err := m.db.Exec(`DELETE FROM activity`)
	return err
}
