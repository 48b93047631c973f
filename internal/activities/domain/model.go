package domain

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

type Activity struct {
	ID         int64
	Name       string
	StartTime  time.Time
	EndTime    time.Time
	Risk       string
	LocationID int64
}

// Option is an activity formatted for a select input. Selected is only used
// on the edit-group form.
type Option struct {
	ID       int64
	Label    string
	Selected bool
}

// ListRow is one raw row of the activity list join.
type ListRow struct {
	ID        int64
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Risk      string
	Place     string
}

// ListItem is the display record for the activity list, with formatted times.
type ListItem struct {
	ID        int64
	Name      string
	StartTime string
	EndTime   string
	Risk      string
	Place     string
}

// Contact is a user responsible for an activity. Long is true when the
// activity has more than one contact (drives pluralized copy).
type Contact struct {
	UserID     int64
	FirstName  string
	LastName   string
	Phone      string
	Long       bool
	ActivityID int64
}

var ErrNotFound = errors.New("activity not found")

const (
	dateLayout  = "Mon Jan 02 2006"
	clockLayout = "15:04:05"

	// EditTimeLayout is the layout for datetime-local form inputs.
	EditTimeLayout = "2006-01-02T15:04"
)

// OptionLabel renders the select-input label for an activity. Activities
// without a name show as "Unnamed".
func OptionLabel(name string, start time.Time, lat, lng float64) string {
	if name == "" {
		name = "Unnamed"
	}
	return fmt.Sprintf("%s on %s at %s, %s",
		name,
		start.Format(dateLayout),
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64),
	)
}

// FormatTimeRange renders both ends of an activity's time span as
// "<weekday month day year> at <HH:MM:SS>".
func FormatTimeRange(start, end time.Time) (string, string) {
	return formatStamp(start), formatStamp(end)
}

func formatStamp(t time.Time) string {
	clock := t.Format(clockLayout)
	if len(clock) > 8 {
		clock = clock[:8]
	}
	return t.Format(dateLayout) + " at " + clock
}

// DisplayList maps raw list rows into display records. The input rows are
// not mutated.
func DisplayList(rows []ListRow) []ListItem {
	out := make([]ListItem, 0, len(rows))
	for _, row := range rows {
		start, end := FormatTimeRange(row.StartTime, row.EndTime)
		out = append(out, ListItem{
			ID:        row.ID,
			Name:      row.Name,
			StartTime: start,
			EndTime:   end,
			Risk:      row.Risk,
			Place:     row.Place,
		})
	}
	return out
}

// MarkContacts produces display contacts with the Long flag and activity id
// set on every row. The input rows are not mutated.
func MarkContacts(contacts []Contact, activityID int64) []Contact {
	long := len(contacts) > 1
	out := make([]Contact, 0, len(contacts))
	for _, ct := range contacts {
		ct.Long = long
		ct.ActivityID = activityID
		out = append(out, ct)
	}
	return out
}
