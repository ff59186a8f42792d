package taskparse

import (
	"fmt"
	"time"
)

// Category is the closed classification set for a parsed task.
type Category string

const (
	CategoryStudy    Category = "study"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryOther    Category = "other"
)

// ParseCategory returns the Category for s, or false if s is not one of the
// closed set.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryStudy, CategoryWork, CategoryPersonal, CategoryOther:
		return Category(s), true
	}
	return "", false
}

// TimeOfDay is a wall-clock instant (hour:minute) independent of any date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Draft is the structured result of parsing one free-form task sentence.
// It is a pure value: the caller owns attaching identity and persistence.
type Draft struct {
	Title       string     // short label, at most 25 runes, never empty
	Description string     // raw input, verbatim
	Details     string     // input with links removed, otherwise verbatim
	DueDate     *time.Time // calendar date at midnight, nil when unresolved
	StartTime   *TimeOfDay
	EndTime     *TimeOfDay
	Category    Category // always set, CategoryOther as fallback
	Links       []string // first-occurrence order, duplicates preserved
}
