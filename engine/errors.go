package engine

// InputError reports that reading terminal input failed
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return "input: " + e.Err.Error()
}

func (e *InputError) Unwrap() error { return e.Err }
