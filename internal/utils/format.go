package utils

import "time"

const DisplayDateLayout = "January 2, 2006"

// FormatDate renders t the way dates appear on post pages, e.g.
// "January 15, 2024". The zero time renders as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DisplayDateLayout)
}

// ISODate is used for <time datetime> attributes.
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
