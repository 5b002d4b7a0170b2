package handlers

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Cities recognised in free-text queries.
var knownCities = []string{
	"北京", "上海", "广州", "深圳", "成都", "杭州", "西安", "三亚", "丽江", "香港", "澳门",
	"台北", "东京", "大阪", "首尔", "曼谷", "新加坡", "巴黎", "伦敦", "纽约", "洛杉矶", "悉尼",
}

var (
	durationDigitsRe = regexp.MustCompile(`(?i)(\d{1,3})\s*(?:天|日游|days?\b)`)
	durationZhRe     = regexp.MustCompile(`([一二两三四五六七八九十]{1,3})\s*(?:天|日游)`)
	budgetLabelledRe = regexp.MustCompile(`(?i)(?:预算|budget)\s*(?:是|为|约|大约|[:：])?\s*(\d+(?:\.\d+)?)\s*(万|k)?`)
	budgetCurrencyRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(万)?\s*(?:元|块|rmb|cny)`)
	peopleRe         = regexp.MustCompile(`(\d{1,2})\s*(?:个人|人|位)`)
	isoDateRe        = regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`)
	quotedRe         = regexp.MustCompile(`[“"「『‘](.+?)[”"」』’]`)
	afterColonRe     = regexp.MustCompile(`(?:翻译|translate)[^:：]*[:：]\s*(.+)$`)
	targetLanguageRe = regexp.MustCompile(`(?i)(?:翻译成|翻译为|译成|翻成|用|into|to)\s*(英文|英语|日语|日文|韩语|韩文|法语|德语|西班牙语|泰语|中文|english|japanese|korean|french|german|spanish|thai|chinese)`)
	sourceLanguageRe = regexp.MustCompile(`(?i)(?:把|将|from)?\s*(英文|英语|日语|日文|韩语|韩文|法语|德语|西班牙语|泰语|中文|english|japanese|korean|french|german|spanish|thai|chinese)\s*(?:翻译成|翻译为|译成|翻成|to|into)`)
	zhNumeralDigits  = map[rune]int{'一': 1, '二': 2, '两': 2, '三': 3, '四': 4, '五': 5, '六': 6, '七': 7, '八': 8, '九': 9}
	languageSynonyms = map[string]string{
		"英文": "英语", "english": "英语", "日文": "日语", "japanese": "日语", "韩文": "韩语", "korean": "韩语",
		"french": "法语", "german": "德语", "spanish": "西班牙语", "thai": "泰语", "chinese": "中文",
	}
)

// extractHints mines structured fields from the raw query text.
func extractHints(query string) map[string]string {
	hints := make(map[string]string)
	if strings.TrimSpace(query) == "" {
		return hints
	}

	switch cities := citiesInOrder(query); len(cities) {
	case 0:
	case 1:
		hints[KeyDestination] = cities[0]
	default:
		hints[KeyOrigin] = cities[0]
		hints[KeyDestination] = cities[1]
	}

	if d := parseDuration(query); d > 0 {
		hints[KeyDuration] = strconv.Itoa(d)
	}
	if b := parseBudget(query); b != "" {
		hints[KeyBudget] = b
	}
	if m := peopleRe.FindStringSubmatch(query); m != nil {
		hints[KeyPeople] = m[1]
	}
	if dates := isoDateRe.FindAllString(query, 2); len(dates) > 0 {
		hints[KeyStartDate] = dates[0]
		if len(dates) > 1 {
			hints[KeyEndDate] = dates[1]
		}
	}
	if m := targetLanguageRe.FindStringSubmatch(query); m != nil {
		hints[KeyTargetLanguage] = normalizeLanguage(m[1])
	}
	if m := sourceLanguageRe.FindStringSubmatch(query); m != nil {
		hints[KeySourceLanguage] = normalizeLanguage(m[1])
	}
	if text := quotedText(query); text != "" {
		hints[KeyText] = text
	}
	return hints
}

// withHints returns a copy of ctx complemented by hints. Non-blank caller
// values always win.
func withHints(ctx map[string]string, hints map[string]string) map[string]string {
	out := make(map[string]string, len(ctx)+len(hints))
	for k, v := range hints {
		out[k] = v
	}
	for k, v := range ctx {
		if strings.TrimSpace(v) != "" {
			out[k] = strings.TrimSpace(v)
		}
	}
	return out
}

func citiesInOrder(query string) []string {
	type hit struct {
		city string
		pos  int
	}
	var hits []hit
	for _, c := range knownCities {
		if i := strings.Index(query, c); i >= 0 {
			hits = append(hits, hit{city: c, pos: i})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.city)
	}
	return out
}

func parseDuration(query string) int {
	if m := durationDigitsRe.FindStringSubmatch(query); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if m := durationZhRe.FindStringSubmatch(query); m != nil {
		return parseZhNumeral(m[1])
	}
	return 0
}

// parseZhNumeral handles numerals up to 九十九 (e.g. 五, 十, 十二, 二十, 二十一).
func parseZhNumeral(s string) int {
	runes := []rune(s)
	tenAt := -1
	for i, r := range runes {
		if r == '十' {
			tenAt = i
			break
		}
	}
	if tenAt < 0 {
		if len(runes) != 1 {
			return 0
		}
		return zhNumeralDigits[runes[0]]
	}

	tens := 1
	if tenAt > 0 {
		tens = zhNumeralDigits[runes[tenAt-1]]
	}
	ones := 0
	if tenAt+1 < len(runes) {
		ones = zhNumeralDigits[runes[tenAt+1]]
	}
	return tens*10 + ones
}

func parseBudget(query string) string {
	m := budgetLabelledRe.FindStringSubmatch(query)
	if m == nil {
		m = budgetCurrencyRe.FindStringSubmatch(query)
	}
	if m == nil {
		return ""
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return ""
	}
	switch strings.ToLower(m[2]) {
	case "万":
		amount *= 10000
	case "k":
		amount *= 1000
	}
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func quotedText(query string) string {
	if m := quotedRe.FindStringSubmatch(query); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := afterColonRe.FindStringSubmatch(query); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func normalizeLanguage(lang string) string {
	if v, ok := languageSynonyms[strings.ToLower(lang)]; ok {
		return v
	}
	return lang
}

// budgetTier maps a free-form budget to the PlaceProvider tiers.
func budgetTier(budget string) string {
	b := strings.ToLower(budget)
	switch {
	case b == "low" || strings.Contains(b, "便宜") || strings.Contains(b, "经济") || strings.Contains(b, "实惠"):
		return "low"
	case b == "high" || strings.Contains(b, "豪华") || strings.Contains(b, "高端") || strings.Contains(b, "奢华"):
		return "high"
	}
	return ""
}

func atoiOr(s string, fallback int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n > 0 {
		return n
	}
	return fallback
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unspecified
	}
	return s
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
