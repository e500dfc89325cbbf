package backend

import "fmt"

// FetchError covers every failure while preparing audio for the pipeline:
// download, extraction, decoding and noise reduction. It is the only stage
// error that gets a structured HTTP response; later stages propagate as
// plain server errors, except synthesis which is non-fatal.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("audio prep failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
