package taskparse

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultTitle is used when every extraction pass strips the input away.
const DefaultTitle = "未命名任务"

const titleMaxRunes = 25

// Temporal phrases are stripped with the same vocabulary the resolver
// matches with, whether or not the phrase produced a resolved value. Full
// date shapes go before partial ones so "2024-3-5" is removed whole instead
// of leaving year fragments behind.
var temporalStripPatterns = func() []*regexp.Regexp {
	var ps []*regexp.Regexp
	for _, r := range timeRules {
		ps = append(ps, r.re)
	}
	ps = append(ps, reAbsFull, reAbsCN, reAbsNumeric)
	for _, r := range relativeDateRules {
		ps = append(ps, r.re)
	}
	return ps
}()

// Bilingual filler stoplist. Longer entries first: strings.Replacer applies
// the first listed pattern that matches at each position.
var fillerReplacer = strings.NewReplacer(
	"帮我", "", "给我", "", "麻烦", "", "记得", "", "需要", "",
	"一下", "", "这个", "", "那个", "",
	"的", "", "了", "", "吧", "", "呢", "", "啊", "", "呀", "",
	"哦", "", "嘛", "", "请", "", "在", "", "把", "", "给", "",
)

var (
	fillerWordsEN = regexp.MustCompile(`(?i)\b(please|remember|need to|have to|the|an?|to|at|on|in|for|of|and|with)\b`)
	punctuation   = regexp.MustCompile(`[，。！？、；：“”‘’,.!?;:'"()（）【】\x5b\x5d]`)
	whitespace    = regexp.MustCompile(`\s+`)
	letterRun     = regexp.MustCompile(`[\p{Han}A-Za-z]{2,}`)
)

// ExtractTitle condenses the link-free text into a short label of at most 25
// runes (Latin and CJK counted uniformly). It never returns an empty string.
func ExtractTitle(details string) string {
	s := details
	for _, re := range temporalStripPatterns {
		s = re.ReplaceAllString(s, "")
	}
	s = fillerReplacer.Replace(s)
	s = fillerWordsEN.ReplaceAllString(s, " ")
	s = punctuation.ReplaceAllString(s, " ")
	s = strings.TrimSpace(whitespace.ReplaceAllString(s, " "))

	title := summarize(s)
	if utf8.RuneCountInString(title) < 2 {
		title = letterRunFallback(details)
	}
	if title == "" {
		title = DefaultTitle
	}
	return title
}

// summarize keeps s as-is when it fits, otherwise greedily accumulates
// whitespace-delimited tokens in order while the running length stays within
// the limit. When not even the first token fits, the cleaned text is
// hard-truncated instead.
func summarize(s string) string {
	if utf8.RuneCountInString(s) <= titleMaxRunes {
		return s
	}

	var b strings.Builder
	used := 0
	for _, tok := range strings.Fields(s) {
		need := utf8.RuneCountInString(tok)
		if used > 0 {
			need++ // joining space
		}
		if used+need > titleMaxRunes {
			break
		}
		if used > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
		used += need
	}
	if used == 0 {
		return truncateRunes(s, titleMaxRunes)
	}
	return b.String()
}

// letterRunFallback pulls the first three runs of two or more consecutive
// Latin or CJK letters straight from the link-free text.
func letterRunFallback(details string) string {
	runs := letterRun.FindAllString(details, 3)
	return truncateRunes(strings.Join(runs, " "), titleMaxRunes)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
