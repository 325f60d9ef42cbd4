package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMalformedJSON         = errors.New("body is not valid JSON")
	ErrNotJSONObject         = errors.New("body must be a JSON object")
	ErrInvalidInitialBalance = errors.New("initialBalance must be a number")
	ErrInvalidTransactions   = errors.New("transactions must be an array")
	ErrInvalidTransaction    = errors.New("transaction must be an object")
	ErrInvalidAmount         = errors.New("transaction amount must be a number")
)
