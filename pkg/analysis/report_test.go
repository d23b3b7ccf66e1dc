package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotals_HasErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		totals Totals
		want   bool
	}{
		{
			name:   "no errors",
			totals: Totals{Files: 2, FilesParsed: 2},
			want:   false,
		},
		{
			name:   "has errors",
			totals: Totals{Files: 2, FilesParsed: 1, FilesErrored: 1},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.totals.HasErrors())
		})
	}
}

func TestTotals_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, Totals{}.IsEmpty())
	assert.False(t, Totals{Paragraphs: 1}.IsEmpty())
}

func TestSortField_IsValid(t *testing.T) {
	t.Parallel()

	for _, field := range []SortField{SortByCount, SortByAlpha, SortBySize, SortByOrder} {
		assert.True(t, field.IsValid(), field)
	}
	assert.False(t, SortField("severity").IsValid())
	assert.False(t, SortField("").IsValid())
}
