package datemath

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognized is returned when a value is neither an absolute date nor a known relative phrase.
var ErrUnrecognized = errors.New("unrecognized date")

// DateLayout is the canonical calendar date format.
const DateLayout = "2006-01-02"

var absoluteLayouts = []string{DateLayout, "2006/01/02", "2006.01.02", "2006年1月2日", time.RFC3339}

var (
	inDurationRe   = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	zhAfterDaysRe  = regexp.MustCompile(`^(\d+)\s*天(后|以后)$`)
	zhNextWeekRe   = regexp.MustCompile(`^下(周|星期|礼拜)([一二三四五六日天])$`)
	zhWeekdayIndex = map[string]time.Weekday{
		"一": time.Monday, "二": time.Tuesday, "三": time.Wednesday, "四": time.Thursday,
		"五": time.Friday, "六": time.Saturday, "日": time.Sunday, "天": time.Sunday,
	}
	enWeekdays = map[string]time.Weekday{
		"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
		"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday, "sunday": time.Sunday,
	}
)

// Parser converts absolute and relative date strings to calendar days in one timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Shanghai"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date string to the start of that day.
// baseTime anchors relative phrases ("明天", "next friday", "in 3 days").
func (p *Parser) Parse(value string, baseTime time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnrecognized)
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, value, p.location); err == nil {
			return p.startOfDay(t), nil
		}
	}
	value = strings.ToLower(value)

	switch value {
	case "today", "今天":
		return p.startOfDay(baseTime), nil
	case "tomorrow", "明天":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "后天":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "yesterday", "昨天":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(value, "in ") {
		return p.parseInDuration(value, baseTime)
	}
	if m := zhAfterDaysRe.FindStringSubmatch(value); m != nil {
		n, _ := strconv.Atoi(m[1])
		return p.startOfDay(baseTime.AddDate(0, 0, n)), nil
	}
	if strings.HasPrefix(value, "next ") {
		day, ok := enWeekdays[strings.TrimPrefix(value, "next ")]
		if !ok {
			return time.Time{}, fmt.Errorf("%w: unknown weekday in %q", ErrUnrecognized, value)
		}
		return p.nextWeekday(day, baseTime), nil
	}
	if m := zhNextWeekRe.FindStringSubmatch(value); m != nil {
		return p.dayOfNextWeek(zhWeekdayIndex[m[2]], baseTime), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, value)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(value string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(value)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, value)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// nextWeekday returns the first target weekday strictly after baseTime's day.
func (p *Parser) nextWeekday(target time.Weekday, baseTime time.Time) time.Time {
	daysUntil := int(target - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil))
}

// dayOfNextWeek returns the target weekday within the Monday-based week after baseTime's week.
func (p *Parser) dayOfNextWeek(target time.Weekday, baseTime time.Time) time.Time {
	toMonday := 8 - isoWeekday(baseTime.In(p.location).Weekday())
	return p.startOfDay(baseTime.AddDate(0, 0, toMonday+isoWeekday(target)-1))
}

func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// StartOfDay is the exported form of startOfDay.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.startOfDay(t)
}

// CalendarDays returns ceil((end-start)/1 day) measured between the calendar
// dates of start and end in the parser's timezone, ignoring wall-clock time.
// It is zero when end is not after start.
func (p *Parser) CalendarDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	s, e := p.startOfDay(start), p.startOfDay(end)
	if !e.After(s) {
		return 0
	}
	// Hours() absorbs DST shifts of up to an hour before rounding up.
	return int(math.Ceil(e.Sub(s).Hours()/24 - 1.0/24))
}

// Format renders t as a calendar date in the parser's timezone.
func (p *Parser) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(p.location).Format(DateLayout)
}
