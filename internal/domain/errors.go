package domain

import "errors"

// Sentinel errors returned by the catalog model. Callers match them with
// errors.Is; the messages carried alongside them are meant for end users.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInactiveProduct    = errors.New("product is inactive")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrOrderLimitExceeded = errors.New("order limit exceeded")
	ErrNotFound           = errors.New("not found")
)

// FailureReason maps an error to a short, stable label suitable for
// metrics and log fields.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrInactiveProduct):
		return "inactive_product"
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, ErrOrderLimitExceeded):
		return "order_limit_exceeded"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "unknown"
	}
}
