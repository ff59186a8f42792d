package taskparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"smartodo/pkg/datemath"
)

// Date resolution runs two ordered rule families: relative expressions first,
// then absolute dates. The first rule in either family that matches settles
// the due date and every remaining rule is skipped. Time-of-day resolution is
// a single ordered list, also first-match-wins, and independent of the date
// outcome.

type relativeDateRule struct {
	re      *regexp.Regexp
	resolve func(m []string, now time.Time) time.Time
}

func offsetRule(pattern string, days int) relativeDateRule {
	return relativeDateRule{
		re: regexp.MustCompile(pattern),
		resolve: func(_ []string, now time.Time) time.Time {
			return datemath.AddDays(now, days)
		},
	}
}

var cnWeekdays = map[string]time.Weekday{
	"一": time.Monday,
	"二": time.Tuesday,
	"三": time.Wednesday,
	"四": time.Thursday,
	"五": time.Friday,
	"六": time.Saturday,
	"日": time.Sunday,
	"天": time.Sunday,
}

var enWeekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// 大后天 must precede 后天, which must precede any shorter overlap.
var relativeDateRules = []relativeDateRule{
	offsetRule(`大后天`, 3),
	offsetRule(`后天`, 2),
	offsetRule(`明天|明日|(?i)tomorrow`, 1),
	offsetRule(`今天|今日|(?i)today`, 0),
	{
		re: regexp.MustCompile(`下(?:周|星期|礼拜)([一二三四五六日天])`),
		resolve: func(m []string, now time.Time) time.Time {
			return datemath.NextWeekday(cnWeekdays[m[1]], now)
		},
	},
	{
		re: regexp.MustCompile(`(?i)next (monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
		resolve: func(m []string, now time.Time) time.Time {
			return datemath.NextWeekday(enWeekdays[strings.ToLower(m[1])], now)
		},
	},
	{
		re: regexp.MustCompile(`(\d+)天后|过(\d+)天|(?i)in (\d+) days?`),
		resolve: func(m []string, now time.Time) time.Time {
			for _, g := range m[1:] {
				if g != "" {
					n, _ := strconv.Atoi(g)
					return datemath.AddDays(now, n)
				}
			}
			return datemath.AddDays(now, 0)
		},
	},
	offsetRule(`一个?(?:周|星期)后|(?i)in a week`, 7),
	offsetRule(`两个?(?:周|星期)后|(?i)in two weeks`, 14),
	offsetRule(`一个?月后|(?i)in a month`, 30),
}

// Absolute date shapes, tried in declared order. A shape whose candidate
// fails validation or the reference-year check yields to the next shape.
var (
	reAbsNumeric = regexp.MustCompile(`(\d{1,2})[./-](\d{1,2})(?:[./-](\d{4}|\d{2}))?`)
	reAbsCN      = regexp.MustCompile(`(\d{1,2})月(\d{1,2})[日号]?`)
	reAbsFull    = regexp.MustCompile(`(\d{4})[年/-](\d{1,2})[月/-](\d{1,2})[日号]?`)
)

type absoluteDateRule struct {
	re    *regexp.Regexp
	parse func(m []string, now time.Time) (year, month, day int)
}

var absoluteDateRules = []absoluteDateRule{
	{
		re: reAbsNumeric,
		parse: func(m []string, now time.Time) (int, int, int) {
			year := now.Year()
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
				if year < 100 {
					year += 2000
				}
			}
			month, _ := strconv.Atoi(m[1])
			day, _ := strconv.Atoi(m[2])
			return year, month, day
		},
	},
	{
		re: reAbsCN,
		parse: func(m []string, now time.Time) (int, int, int) {
			month, _ := strconv.Atoi(m[1])
			day, _ := strconv.Atoi(m[2])
			return now.Year(), month, day
		},
	},
	{
		re: reAbsFull,
		parse: func(m []string, now time.Time) (int, int, int) {
			year, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			day, _ := strconv.Atoi(m[3])
			return year, month, day
		},
	},
}

// ResolveDate finds the due date in text against the reference time, or nil
// when no rule matches.
func ResolveDate(text string, now time.Time) *time.Time {
	for _, rule := range relativeDateRules {
		if m := rule.re.FindStringSubmatch(text); m != nil {
			d := rule.resolve(m, now)
			return &d
		}
	}

	jan1 := datemath.MakeDate(now.Year(), 1, 1, now)
	for _, rule := range absoluteDateRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		year, month, day := rule.parse(m, now)
		// Day validation is deliberately 1-31 for every month; overshoot
		// carries into the next month via ordinary calendar normalization.
		if month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		candidate := datemath.MakeDate(year, month, day, now)
		if candidate.Before(jan1) && year <= now.Year() {
			continue
		}
		return &candidate
	}
	return nil
}

// Time-of-day rules. Range shapes are declared before their single-instant
// counterparts: a single-hour pattern is a prefix of the matching range
// pattern, so with first-match-wins the ranges have to come first for
// "下午2点到4点" to resolve both endpoints.

type timeRule struct {
	re    *regexp.Regexp
	apply func(m []string) (start, end *TimeOfDay)
}

// Hour 12 in a morning phrase means midnight; in an afternoon or evening
// phrase it stays 12, every other hour shifts +12.
func morningHour(h int) int {
	if h == 12 {
		return 0
	}
	return h
}

func afternoonHour(h int) int {
	if h == 12 {
		return 12
	}
	return h + 12
}

func atHour(h int) *TimeOfDay { return &TimeOfDay{Hour: h} }

func atClock(h, m int) *TimeOfDay { return &TimeOfDay{Hour: h, Minute: m} }

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

const rangeSep = `(?:到|至|[-~])`

var timeRules = []timeRule{
	{
		re: regexp.MustCompile(`(?:早上|早晨|上午|凌晨)(\d{1,2})[点时]` + rangeSep + `(\d{1,2})[点时]`),
		apply: func(m []string) (*TimeOfDay, *TimeOfDay) {
			return atHour(morningHour(atoi(m[1]))), atHour(morningHour(atoi(m[2])))
		},
	},
	{
		re: regexp.MustCompile(`(?:下午|晚上|傍晚)(\d{1,2})[点时]` + rangeSep + `(\d{1,2})[点时]`),
		apply: func(m []string) (*TimeOfDay, *TimeOfDay) {
			return atHour(afternoonHour(atoi(m[1]))), atHour(afternoonHour(atoi(m[2])))
		},
	},
	{
		re: regexp.MustCompile(`(\d{1,2}):(\d{2})` + rangeSep + `(\d{1,2}):(\d{2})`),
		apply: func(m []string) (*TimeOfDay, *TimeOfDay) {
			return atClock(atoi(m[1]), atoi(m[2])), atClock(atoi(m[3]), atoi(m[4]))
		},
	},
	{
		re: regexp.MustCompile(`(\d{1,2})[点时]` + rangeSep + `(\d{1,2})[点时]`),
		apply: func(m []string) (*TimeOfDay, *TimeOfDay) {
			return atHour(atoi(m[1])), atHour(atoi(m[2]))
		},
	},
	{
		re: regexp.MustCompile(`(?:早上|早晨|上午|凌晨)(\d{1,2})[点时]`),
		apply: func(m []string) (*TimeOfDay, *TimeOfDay) {
			return atHour(morningHour(atoi(m[1]))), nil
		},
	},
	{
		re: regexp.MustCompile(`(?:下午|晚上|傍晚)(\d{1,2})[点时]`),
		apply: func(m []string) (*TimeOfDay, *TimeOfDay) {
			return atHour(afternoonHour(atoi(m[1]))), nil
		},
	},
	{
		re: regexp.MustCompile(`中午`),
		apply: func(_ []string) (*TimeOfDay, *TimeOfDay) {
			return atHour(12), nil
		},
	},
	{
		re: regexp.MustCompile(`(\d{1,2}):(\d{2})`),
		apply: func(m []string) (*TimeOfDay, *TimeOfDay) {
			return atClock(atoi(m[1]), atoi(m[2])), nil
		},
	},
	{
		re: regexp.MustCompile(`(\d{1,2})[点时]`),
		apply: func(m []string) (*TimeOfDay, *TimeOfDay) {
			return atHour(atoi(m[1])), nil
		},
	},
}

// ResolveTime finds the start and optional end time-of-day in text. Only the
// first matching rule is kept; nothing is merged across rules.
func ResolveTime(text string) (start, end *TimeOfDay) {
	for _, rule := range timeRules {
		if m := rule.re.FindStringSubmatch(text); m != nil {
			return rule.apply(m)
		}
	}
	return nil, nil
}
