// Package form parses and validates the HTML form submissions for
// venues, artists and shows. Each form type carries the raw submitted
// values; Validate reports every failing field so the handler can
// flash the full list back to the user in one message.
package form

import (
	"fmt"
	"strings"
)

// FieldError describes a validation failure on a single field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors collects every field failure of one submission.
type Errors []FieldError

func (errs Errors) Error() string {
	return strings.Join(errs.Messages(), "; ")
}

// Messages returns one "field: message" line per failure, in the
// order the fields were checked.
func (errs Errors) Messages() []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}

func (errs *Errors) add(field, message string) {
	*errs = append(*errs, FieldError{Field: field, Message: message})
}
