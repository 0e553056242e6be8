package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        Filter
		wantWord  string
		wantLimit int
	}{
		{"defaults", Filter{}, "", defaultLimit},
		{"clamped", Filter{Limit: 10_000}, "", maxLimit},
		{"negative", Filter{Limit: -3}, "", defaultLimit},
		{"word normalized", Filter{Word: "  Ephemeral  ", Limit: 5}, "ephemeral", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := tt.in
			f.normalize()
			assert.Equal(t, tt.wantWord, f.Word)
			assert.Equal(t, tt.wantLimit, f.Limit)
		})
	}
}
