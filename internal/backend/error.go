package backend

import (
	"errors"
	"fmt"
)

// ErrRemote marks failures of the remote data service itself, as opposed to
// validation or missing-record outcomes.
var ErrRemote = errors.New("remote service unavailable")

// remote wraps err with ErrRemote unless it matches one of the known domain
// outcomes.
func remote(err error, known ...error) error {
	if err == nil {
		return nil
	}
	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrRemote, err)
}
