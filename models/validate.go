package models

import "time"

const dateLayout = "2006-01-02"

// ValidateDate accepts a calendar date in YYYY-MM-DD form. time.Parse
// rejects out-of-range components, so "2024-13-40" fails here.
func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return &ValidationError{Field: "date", Reason: "must be a valid date in YYYY-MM-DD form"}
	}
	return nil
}
