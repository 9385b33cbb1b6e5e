package quiz

// advanceMsg fires after the feedback pause. Position guards against a
// stale tick advancing a later question.
type advanceMsg struct {
	position int
}

// sessionEndMsg triggers the save-and-summarize flow.
type sessionEndMsg struct{}

// savedMsg reports the result of persisting the finished session.
type savedMsg struct {
	err error
}
