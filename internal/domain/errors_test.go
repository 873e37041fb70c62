package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abdidvp/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFailureReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: bad", domain.ErrInvalidArgument), "invalid_argument"},
		{domain.ErrInactiveProduct, "inactive_product"},
		{fmt.Errorf("%w: only 2 left", domain.ErrInsufficientStock), "insufficient_stock"},
		{domain.ErrOrderLimitExceeded, "order_limit_exceeded"},
		{domain.ErrNotFound, "not_found"},
		{errors.New("boom"), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.FailureReason(tt.err))
	}
}
