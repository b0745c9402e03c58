package state

import (
	"database/sql"
	"errors"
	"time"
)

const settingLanguage = "language"

// SaveLanguage remembers the display language. Writes are debounced so that
// cycling through languages only stores the last one.
func (m *Manager) SaveLanguage(lang string) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &lang

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveSetting(m.db, settingLanguage, *pending)
		}
	})
}

// GetLanguage returns the saved display language, or "" when none was saved.
// A save still waiting for its debounce is returned as well.
func (m *Manager) GetLanguage() (string, error) {
	m.saveMu.Lock()
	pending := m.pending
	m.saveMu.Unlock()
	if pending != nil {
		return *pending, nil
	}
	return getSetting(m.db, settingLanguage)
}

func saveSetting(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func getSetting(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}
