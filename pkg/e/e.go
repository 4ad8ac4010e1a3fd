package e

import (
	"errors"
	"fmt"
)

func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// detailer is implemented by errors that carry a structured body worth
// surfacing to the caller, e.g. the gateway's error response.
type detailer interface {
	Detail() any
}

// Detail classifies an error once for the response body: the structured
// detail when the chain carries one, otherwise the plain message string.
func Detail(err error) any {
	var d detailer
	if errors.As(err, &d) {
		return d.Detail()
	}
	return err.Error()
}
