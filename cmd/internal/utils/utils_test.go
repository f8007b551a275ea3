package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "January 1, 2099", FormatDate("2099-01-01"))
	assert.Equal(t, "June 3, 2025", FormatDate("2025-06-03"))
}

func TestFormatDateFallsBackToInput(t *testing.T) {
	for _, raw := range []string{"", "not-a-date", "01/02/2025", "2025-13-40"} {
		assert.Equal(t, raw, FormatDate(raw))
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "9:00 AM", FormatTime("09:00"))
	assert.Equal(t, "1:00 PM", FormatTime("13:00"))
	assert.Equal(t, "4:00 PM", FormatTime("16:00"))
}

func TestFormatTimeFallsBackToInput(t *testing.T) {
	for _, raw := range []string{"", "25:99", "noonish"} {
		assert.Equal(t, raw, FormatTime(raw))
	}
}

func TestSanitizeTrimsStrings(t *testing.T) {
	type form struct {
		Name  string
		Tags  []string
		Count int
	}
	f := &form{Name: "  Alice ", Tags: []string{" one", "two "}, Count: 3}

	Sanitize(f)

	assert.Equal(t, "Alice", f.Name)
	assert.Equal(t, []string{"one", "two"}, f.Tags)
	assert.Equal(t, 3, f.Count)
}
