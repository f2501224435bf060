package model

// FetchStatus represents the lifecycle of a fetch operation
type FetchStatus string

const (
	// FetchStatusIdle means no fetch has been requested yet
	FetchStatusIdle FetchStatus = "Idle"

	// FetchStatusLoading means the request is in flight
	FetchStatusLoading FetchStatus = "Loading"

	// FetchStatusLoaded means the fetch finished successfully
	FetchStatusLoaded FetchStatus = "Loaded"

	// FetchStatusFailed means the fetch failed with an error
	FetchStatusFailed FetchStatus = "Failed"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsActive returns true while a request is in flight
func (fs FetchStatus) IsActive() bool {
	return fs == FetchStatusLoading
}

// IsTerminal returns true if the fetch reached a final state (loaded or failed)
func (fs FetchStatus) IsTerminal() bool {
	return fs == FetchStatusLoaded || fs == FetchStatusFailed
}
