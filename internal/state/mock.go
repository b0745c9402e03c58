package state

// Mock is an in-memory test double for Manager.
type Mock struct {
	entries  []Entry
	language string
	closed   bool
	Err      error // returned by every fallible method when set
}

var _ Interface = (*Mock)(nil)

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) RecordDispatch(e Entry) error {
	if m.Err != nil {
		return m.Err
	}
	e.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, e)
	return nil
}

func (m *Mock) Recent(n int) ([]Entry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []Entry
	for i := len(m.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

func (m *Mock) ClearActivity() error {
	m.entries = nil
	return m.Err
}

func (m *Mock) SaveLanguage(lang string) {
	m.language = lang
}

func (m *Mock) GetLanguage() (string, error) {
	return m.language, m.Err
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}
