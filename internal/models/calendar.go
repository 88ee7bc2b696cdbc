package models

// EventColor is the marker color shown on the calendar widget.
type EventColor string

const (
	ColorGreen EventColor = "green"
	ColorRed   EventColor = "red"
	ColorNone  EventColor = "none"
)

// Valid reports whether the color is one of the known enum values.
func (c EventColor) Valid() bool {
	switch c {
	case ColorGreen, ColorRed, ColorNone:
		return true
	default:
		return false
	}
}

// CalendarEvent is one titled, colored marker on a calendar date. The
// teacher reference is informational attribution, not ownership: events
// survive without it, and reads are public.
//
// Date travels as a plain YYYY-MM-DD string end to end; the repository
// formats it on the way out so clients never see a time component.
type CalendarEvent struct {
	ID        string     `db:"id" json:"id"`
	TeacherID *string    `db:"teacher_id" json:"teacher_id"`
	Date      string     `db:"date" json:"date"`
	Title     string     `db:"title" json:"title"`
	Color     EventColor `db:"color" json:"color"`
}

// CalendarFilter narrows a month listing.
type CalendarFilter struct {
	// Inclusive YYYY-MM-DD bounds.
	StartDate string
	EndDate   string
	TeacherID string
}
