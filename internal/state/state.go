package state

// Status is the tag of FetchState.
type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchState is the loading/success/failure status of the single remote call.
// Value is set only when Status is Loaded and Err only when Status is Failed.
// LastGood keeps the most recent successful payload across later failures.
type FetchState struct {
	Status   Status
	Value    string
	Err      error
	LastGood string
}

// IsLoading reports whether the screen should show the loading indicator.
// Idle renders as loading because a fetch is always issued on mount.
func (s FetchState) IsLoading() bool {
	return s.Status == Idle || s.Status == Loading
}
