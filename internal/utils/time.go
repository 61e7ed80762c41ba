package utils

import "time"

// ValidTaskTime reports whether timeStr is a well-formed "HH:MM" string
func ValidTaskTime(timeStr string) bool {
	_, err := time.Parse("15:04", timeStr)
	return err == nil && len(timeStr) == 5
}

// FormatMinute formats t to minute granularity, the same shape task
// times are stored in
func FormatMinute(t time.Time) string {
	return t.Format("15:04")
}
