package data

import "errors"

// codec errors
var (
	ErrUnknownField          = errors.New("unknown field")
	ErrNonCanonicalLength    = errors.New("non-canonical length prefix")
	ErrNonCanonicalHeader    = errors.New("non-canonical field header")
	ErrNonCanonicalOrder     = errors.New("fields not in canonical order")
	ErrTruncatedInput        = errors.New("truncated input")
	ErrUnterminatedContainer = errors.New("unterminated container")
	ErrUnexpectedTerminator  = errors.New("unexpected terminator")
	ErrAmountOutOfRange      = errors.New("amount out of range")
	ErrInvalidCurrency       = errors.New("invalid currency")
	ErrInvalidPath           = errors.New("invalid path")
	ErrFieldTypeMismatch     = errors.New("value does not match field type")
	ErrInvalidArrayElement   = errors.New("invalid array element")
)

// signing errors
var (
	ErrAlreadySigned          = errors.New("transaction already signed")
	ErrMissingField           = errors.New("missing required field")
	ErrSigningKeyMismatch     = errors.New("signing public key does not match key")
	ErrBadSignature           = errors.New("bad signature")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
)
