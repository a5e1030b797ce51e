package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByCode(t *testing.T) {
	sentinel := New(KindBusinessRule, "DAY_NOT_AVAILABLE", "item not available on this day")
	specific := sentinel.Withf("item not available on %s", "SUN")

	assert.ErrorIs(t, specific, sentinel)
	assert.ErrorIs(t, fmt.Errorf("book: %w", specific), sentinel)
	assert.NotErrorIs(t, specific, New(KindBusinessRule, "SLOT_NOT_CONFIGURED", "x"))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(Conflict("SLOT_CONFLICT", "taken")))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrapped: %w", NotFound("NOT_FOUND", "item"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("unique violation")
	err := Conflict("SLOT_CONFLICT", "slot already booked").Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "unique violation")
}
