// Package taskparse turns a free-form task sentence (mixed Chinese/English,
// optionally containing URLs) into a structured draft: title, due date,
// time-of-day, category and the embedded links.
//
// The pipeline runs left to right, each stage consuming the previous stage's
// remainder text: link extraction, temporal resolution, category
// classification, title extraction. Parsing is pure and deterministic: the
// reference instant is always passed in, never read from the clock, so the
// package is safe for concurrent use without coordination.
package taskparse

import "time"

// Parse derives a Draft from text against the caller-supplied reference
// time. It is total over any string: text with no recognizable date, time or
// category simply yields those fields unset and CategoryOther. Callers are
// expected to reject empty input before calling.
func Parse(text string, now time.Time) Draft {
	details, links := ExtractLinks(text)

	due := ResolveDate(details, now)
	start, end := ResolveTime(details)

	return Draft{
		Title:       ExtractTitle(details),
		Description: text,
		Details:     details,
		DueDate:     due,
		StartTime:   start,
		EndTime:     end,
		Category:    Classify(details),
		Links:       links,
	}
}
