package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restomenu/internal/domain"
)

func TestSumAddons(t *testing.T) {
	addons := []domain.Addon{
		{"id": "cheese", "name": "Extra cheese", "price": 5, "is_mandatory": false},
		{"id": 7, "name": "Fries", "price": 3.5},
		{"id": "sauce", "name": "Sauce", "price": "free"},
		{"id": "bacon", "name": "Bacon"},
		{"id": "olives", "name": "Olives", "price": 2},
	}

	total, applied := SumAddons(addons, []string{"cheese", "7", "sauce", "bacon", "missing"})
	assert.Equal(t, 8.5, total.InexactFloat64())
	assert.Len(t, applied, 4)

	total, applied = SumAddons(addons, nil)
	assert.True(t, total.IsZero())
	assert.NotNil(t, applied)
	assert.Empty(t, applied)
}
