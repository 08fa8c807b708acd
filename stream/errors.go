package stream

// Error represents a misuse of the stream API, as opposed to malformed
// input, which is reported with the errors of package token.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}
