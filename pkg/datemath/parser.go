package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts accepted for absolute deadlines that carry a clock time but no zone.
// The first one is what an HTML datetime-local input submits.
var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

const dateOnlyLayout = "2006-01-02"

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser turns user supplied deadline strings into absolute times.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// "Local" selects the host timezone.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone zone-less inputs are interpreted in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDeadline resolves input against base. Accepted forms, in order:
// RFC3339, datetime-local, date only (end of that day), and relative
// phrases (end of the resolved day).
func (p *Parser) ParseDeadline(input string, base time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, ErrEmptyInput
	}

	if t, err := time.Parse(time.RFC3339Nano, input); err == nil {
		return t, nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, input, p.location); err == nil {
			return t, nil
		}
	}

	if t, err := time.ParseInLocation(dateOnlyLayout, input, p.location); err == nil {
		return p.EndOfDay(t), nil
	}

	day, err := p.Resolve(input, base)
	if err != nil {
		return time.Time{}, err
	}
	return p.EndOfDay(day), nil
}

// Resolve converts a relative day phrase to the start of the day it names.
func (p *Parser) Resolve(relative string, base time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))
	// Calendar arithmetic happens in the parser's location.
	base = base.In(p.location)

	switch relative {
	case "today":
		return p.startOfDay(base), nil
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(base.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.resolveInDuration(relative, base)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.resolveNextWeekday(relative, base)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// resolveInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) resolveInDuration(relative string, base time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
	}

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(base.AddDate(0, amount, 0)), nil
	}
}

// resolveNextWeekday handles "next monday". The same weekday as base means a week later.
func (p *Parser) resolveNextWeekday(relative string, base time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	local := base.In(p.location)
	daysUntil := int(target - local.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(local.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 on the day of t in the parser's timezone.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, p.location)
}
