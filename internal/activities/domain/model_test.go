package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionLabel(t *testing.T) {
	start := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

	assert.Equal(t,
		"Morning Hike on Sat Mar 14 2026 at -33.918861, 18.4233",
		OptionLabel("Morning Hike", start, -33.918861, 18.4233))

	assert.Equal(t,
		"Unnamed on Sat Mar 14 2026 at 0, 0",
		OptionLabel("", start, 0, 0))
}

func TestFormatTimeRange(t *testing.T) {
	start := time.Date(2026, time.March, 14, 14, 5, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 14, 16, 0, 0, 0, time.UTC)

	gotStart, gotEnd := FormatTimeRange(start, end)
	assert.Equal(t, "Sat Mar 14 2026 at 14:05:00", gotStart)
	assert.Equal(t, "Sat Mar 14 2026 at 16:00:00", gotEnd)
}

func TestDisplayList(t *testing.T) {
	rows := []ListRow{
		{
			ID:        1,
			Name:      "Morning Hike",
			StartTime: time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC),
			EndTime:   time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC),
			Risk:      "low",
			Place:     "Table Mountain",
		},
	}

	items := DisplayList(rows)
	assert.Len(t, items, 1)
	assert.Equal(t, "Sat Mar 14 2026 at 09:30:00", items[0].StartTime)
	assert.Equal(t, "Sat Mar 14 2026 at 12:00:00", items[0].EndTime)
	assert.Equal(t, "Table Mountain", items[0].Place)

	// input untouched
	assert.Equal(t, "Morning Hike", rows[0].Name)
}

func TestMarkContacts(t *testing.T) {
	t.Run("single contact is not long", func(t *testing.T) {
		out := MarkContacts([]Contact{{UserID: 1}}, 7)
		assert.Len(t, out, 1)
		assert.False(t, out[0].Long)
		assert.Equal(t, int64(7), out[0].ActivityID)
	})

	t.Run("two contacts are long", func(t *testing.T) {
		out := MarkContacts([]Contact{{UserID: 1}, {UserID: 2}}, 7)
		assert.Len(t, out, 2)
		assert.True(t, out[0].Long)
		assert.True(t, out[1].Long)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, MarkContacts(nil, 7))
	})
}
