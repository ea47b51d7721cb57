package chucknorris

const invalidResponseMessage = "Invalid response from Chuck Norris API"

// FetchError reports a failed joke fetch. Message is safe to show to a user.
type FetchError struct {
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

func newTransportError(cause error) *FetchError {
	return &FetchError{Message: "Failed to fetch Chuck Norris joke: " + cause.Error(), Cause: cause}
}

func newInvalidResponseError(cause error) *FetchError {
	return &FetchError{Message: invalidResponseMessage, Cause: cause}
}
