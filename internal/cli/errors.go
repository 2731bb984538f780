package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/cutcoach/internal/app"
)

// userError carries the localized message for a failed action. The cause
// stays reachable through errors.Is and is logged, never printed.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

func newUserError(err error, limit int64) error {
	return &userError{msg: app.UserMessage(err, limit), err: err}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
