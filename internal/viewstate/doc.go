package viewstate

// Package viewstate implements the observable view state of the app: the
// startup fetch state machine (Idle -> Loading -> Loaded/Failed), the
// sprite image sub-state keyed by URL, and the click counter. Subscribers
// are notified with immutable snapshots after every transition; background
// goroutines only compute results and hand them to the controller.
