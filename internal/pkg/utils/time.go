package utils

import (
	"hospital-service/internal/pkg/constvars"
	"time"
)

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constvars.DateLayoutYYYYMMDD, value, time.UTC)
}

func FormatDate(value time.Time) string {
	return value.UTC().Format(constvars.DateLayoutYYYYMMDD)
}
