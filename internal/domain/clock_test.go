package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		strict  bool
		want    int
		wantErr bool
	}{
		{"09:30", true, 570, false},
		{"09:30", false, 570, false},
		{"23:59", true, 1439, false},
		{"9:00", true, 0, true},
		{"9:00", false, 540, false},
		{"24:00", true, 0, true},
		{"24:00", false, 0, true},
		{"12:60", true, 0, true},
		{"12:60", false, 0, true},
		{"noon", false, 0, true},
		{"", true, 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in, tt.strict)
		if tt.wantErr {
			assert.Error(t, err, "%q strict=%v", tt.in, tt.strict)
			continue
		}
		require.NoError(t, err, "%q strict=%v", tt.in, tt.strict)
		assert.Equal(t, tt.want, got, "%q strict=%v", tt.in, tt.strict)
	}
}
