package router

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"

	"travel-assistant/internal/model"
)

var (
	// a line labelled with the category, e.g. "代理编号: 3", "Category: 3", "Agent 3"
	labelLineRe = regexp.MustCompile(`(?i)^\s*(?:代理编号|编号|代理|category|agent)\s*[:：#]?\s*(.*)$`)
	// a label value that is exactly one token, e.g. "3", "3.", "3 (住宿)"; "<1-5>" and "35" are not
	labelValueRe = regexp.MustCompile(`^([1-5])(?:[^0-9\-]|$)`)
	// a line starting with the token, e.g. "3", "3.", "3. 住宿推荐代理"
	leadingTokenRe = regexp.MustCompile(`^\s*([1-5])(?:[.、):：\s]|$)`)

	rationaleRe = regexp.MustCompile(`(?i)^\s*(理由|原因|rationale|reason)\s*[:：]\s*(.*)$`)
)

// Parse extracts a category token and an optional rationale from free-form
// classifier output. It never fails; an output with no recognizable token is
// returned with Matched=false.
func Parse(raw string) ClassificationResult {
	text := width.Narrow.String(raw)
	if strings.TrimSpace(text) == "" {
		return unmatched(raw)
	}

	token, ok := findToken(text)
	if !ok {
		return unmatched(raw)
	}
	category, ok := model.CategoryFromToken(token)
	if !ok {
		return unmatched(raw)
	}

	return ClassificationResult{
		Category:  category,
		Rationale: findRationale(text),
		RawText:   raw,
		Matched:   true,
	}
}

// findToken reads the category from a labelled line, else from a line that
// starts with the token. A labelled line without a valid token is final:
// digits elsewhere in the output are never taken as the category.
func findToken(text string) (int, bool) {
	lines := make([]string, 0, 4)
	for _, line := range strings.Split(text, "\n") {
		if !rationaleRe.MatchString(line) {
			lines = append(lines, line)
		}
	}

	for _, line := range lines {
		if m := labelLineRe.FindStringSubmatch(line); m != nil {
			v := labelValueRe.FindStringSubmatch(strings.TrimSpace(m[1]))
			if v == nil {
				return 0, false
			}
			return atoi(v[1])
		}
	}
	for _, line := range lines {
		if m := leadingTokenRe.FindStringSubmatch(line); m != nil {
			return atoi(m[1])
		}
	}
	return 0, false
}

func findRationale(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if m := rationaleRe.FindStringSubmatch(line); m != nil {
			if r := strings.TrimSpace(m[2]); r != "" {
				return r
			}
		}
	}
	return RationaleNotProvided
}

func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}
