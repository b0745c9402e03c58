package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	RecordDispatch(e Entry) error
	Recent(n int) ([]Entry, error)
	ClearActivity() error
	SaveLanguage(lang string)
	GetLanguage() (string, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
