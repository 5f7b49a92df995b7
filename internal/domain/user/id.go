package user

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingID = errors.New("missing user id")
	ErrInvalidID = errors.New("invalid user id format")
)

// "number" only matches ^[0-9]+$, unlike "numeric" which allows signs and decimals.
const idRule = "required,number"

var validate = validator.New()

// ValidID reports whether raw, once trimmed, is a non-empty run of decimal digits.
func ValidID(raw string) bool {
	return validate.Var(strings.TrimSpace(raw), idRule) == nil
}

// CheckID classifies a candidate id before lookup.
func CheckID(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrMissingID
	}
	if !ValidID(raw) {
		return ErrInvalidID
	}
	return nil
}

// Outcome is the result of resolving a candidate id against the store.
type Outcome int

const (
	Found Outcome = iota
	NotFound
	InvalidID
	MissingID
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case InvalidID:
		return "invalid_id"
	case MissingID:
		return "missing_id"
	default:
		return "unknown"
	}
}

type Lookup struct {
	Outcome Outcome
	User    Public
}
