package upstream

import "time"

// The platform expects date query parameters as MM-DD-YYYY. This is not
// ISO and not negotiable; the format must match the backend bit-exactly.
const dateLayout = "01-02-2006"

// FormatDate renders t the way the platform expects it in query strings.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a platform-formatted MM-DD-YYYY date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
