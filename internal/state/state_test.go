package state

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestRecent_Empty(t *testing.T) {
	m := openTest(t)

	entries, err := m.Recent(10)

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordDispatch_NewestFirst(t *testing.T) {
	m := openTest(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, m.RecordDispatch(Entry{Name: "OPEN", Source: "button", At: base}))
	require.NoError(t, m.RecordDispatch(Entry{Name: "ADD_TOP", Source: "keyboard", Label: "Add on top", At: base.Add(time.Minute)}))
	require.NoError(t, m.RecordDispatch(Entry{Name: "DOWNLOAD", Source: "menu", At: base.Add(2 * time.Minute)}))

	entries, err := m.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "DOWNLOAD", entries[0].Name)
	assert.Equal(t, "menu", entries[0].Source)
	assert.Empty(t, entries[0].Label)
	assert.True(t, entries[0].At.Equal(base.Add(2*time.Minute)))

	assert.Equal(t, "ADD_TOP", entries[1].Name)
	assert.Equal(t, "Add on top", entries[1].Label)
}

func TestRecordDispatch_Prunes(t *testing.T) {
	m := openTest(t)
	base := time.Now()

	for i := range maxActivity + 5 {
		require.NoError(t, m.RecordDispatch(Entry{Name: "EDIT", Source: "button", At: base.Add(time.Duration(i) * time.Second)}))
	}

	var count int
	require.NoError(t, m.DB().QueryRow(`SELECT COUNT(*) FROM activity`).Scan(&count))
	assert.Equal(t, maxActivity, count)

	entries, err := m.Recent(1)
	require.NoError(t, err)
	newest := base.Add(time.Duration(maxActivity+4) * time.Second)
	assert.Equal(t, newest.UnixMilli(), entries[0].At.UnixMilli())
}

func TestClearActivity(t *testing.T) {
	m := openTest(t)
	require.NoError(t, m.RecordDispatch(Entry{Name: "OPEN", Source: "button", At: time.Now()}))

	require.NoError(t, m.ClearActivity())

	entries, err := m.Recent(5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLanguage_UnsetIsEmpty(t *testing.T) {
	m := openTest(t)

	lang, err := m.GetLanguage()

	require.NoError(t, err)
	assert.Empty(t, lang)
}

func TestSaveLanguage_Debounced(t *testing.T) {
	m := openTest(t)

	m.SaveLanguage("en")
	m.SaveLanguage("fr")

	lang, err := m.GetLanguage()
	require.NoError(t, err)
	assert.Equal(t, "fr", lang, "pending value is visible before it is written")

	require.Eventually(t, func() bool {
		v, err := getSetting(m.db, settingLanguage)
		return err == nil && v == "fr"
	}, 5*saveDebounce, 20*time.Millisecond)
}

func TestClose_FlushesPendingLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	m, err := OpenPath(path)
	require.NoError(t, err)

	m.SaveLanguage("de")
	require.NoError(t, m.Close())

	m, err = OpenPath(path)
	require.NoError(t, err)
	defer m.Close()

	lang, err := m.GetLanguage()
	require.NoError(t, err)
	assert.Equal(t, "de", lang)
}

func TestInitSchema_Idempotent(t *testing.T) {
	m := openTest(t)

	require.NoError(t, initSchema(m.DB()))

	var version int
	require.NoError(t, m.DB().QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestOpenPath_MigratesVersion1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	old, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = old.Exec(`
		CREATE TABLE schema_version (version INTEGER PRIMARY KEY);
		INSERT INTO schema_version (version) VALUES (1);
		CREATE TABLE activity (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			action_name TEXT NOT NULL,
			source TEXT NOT NULL,
			dispatched_at INTEGER NOT NULL
		);
	`)
	require.NoError(t, err)
	require.NoError(t, old.Close())

	m, err := OpenPath(path)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.RecordDispatch(Entry{Name: "OPEN", Source: "button", Label: "Open", At: time.UnixMilli(1000)}))
	entries, err := m.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Open", entries[0].Label)

	var version int
	require.NoError(t, m.DB().QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestMock(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.RecordDispatch(Entry{Name: "A"}))
	require.NoError(t, m.RecordDispatch(Entry{Name: "B"}))

	entries, err := m.Recent(5)
	require.NoError(t, err)
	assert.Equal(t, "B", entries[0].Name)
	assert.Len(t, entries, 2)

	m.SaveLanguage("fr")
	lang, _ := m.GetLanguage()
	assert.Equal(t, "fr", lang)

	require.NoError(t, m.Close())
	assert.True(t, m.Closed())
}
