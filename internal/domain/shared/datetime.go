package shared

import "time"

const (
	humanLayout = "Jan 02, 2006, 3:04 PM"
	dateLayout  = "2006-01-02"
	clockLayout = "3:04 PM"
)

// All display helpers render in UTC so output does not depend on the host zone.

func formatHuman(t time.Time) string { return t.UTC().Format(humanLayout) }
func formatDate(t time.Time) string  { return t.UTC().Format(dateLayout) }
func formatClock(t time.Time) string { return t.UTC().Format(clockLayout) }

func now() time.Time { return time.Now().UTC() }
