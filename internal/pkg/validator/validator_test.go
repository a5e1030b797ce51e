package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHHMM(t *testing.T) {
	for _, s := range []string{"00:00", "09:30", "23:59"} {
		assert.True(t, IsHHMM(s), s)
	}
	for _, s := range []string{"", "9:30", "24:00", "12:60", "12-30", "12:300"} {
		assert.False(t, IsHHMM(s), s)
	}
}

func TestValidate_CustomTags(t *testing.T) {
	type req struct {
		Date  string `validate:"required,civildate"`
		Start string `validate:"required,hhmm"`
	}

	assert.Nil(t, Validate(req{Date: "2026-10-19", Start: "09:00"}))

	errs := Validate(req{Date: "2026-13-01", Start: "9am"})
	assert.Equal(t, "civildate", errs["Date"])
	assert.Equal(t, "hhmm", errs["Start"])
}
