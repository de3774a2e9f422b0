package field

// ValueError reports a value that cannot form a valid field element.
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string {
	return e.Message
}
