package storage

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateLink    = errors.New("link already exists")
	ErrInvalidReference = errors.New("referenced row does not exist")
	ErrInvalidDateRange = errors.New("end_date is before start_date")
)

// postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeStringTooLong       = "22001"
)

// InputError reports a constraint violation caused by client supplied values.
type InputError struct {
	Column string
	Msg    string
}

func (e *InputError) Error() string {
	if e.Column == "" {
		return e.Msg
	}
	return e.Column + ": " + e.Msg
}

func translate(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case codeForeignKeyViolation:
		return ErrInvalidReference
	case codeNotNullViolation:
		return &InputError{Column: pqErr.Column, Msg: "value is required"}
	case codeStringTooLong:
		return &InputError{Msg: pqErr.Message}
	}
	return err
}
