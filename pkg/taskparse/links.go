package taskparse

import "regexp"

// A link is a maximal run of non-whitespace starting with http:// or https://.
var linkPattern = regexp.MustCompile(`https?://\S+`)

// ExtractLinks pulls every URL out of text and returns the remainder plus the
// links in order of first occurrence. Matches are removed outright, not
// replaced by placeholders; leftover whitespace is collapsed later, during
// title extraction.
func ExtractLinks(text string) (string, []string) {
	links := linkPattern.FindAllString(text, -1)
	if links == nil {
		return text, nil
	}
	return linkPattern.ReplaceAllString(text, ""), links
}
