package duedate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEmptyInput   = errors.New("due date is empty")
	ErrUnrecognized = errors.New("unrecognized due date")
)

// Layouts accepted for absolute dates, tried in order. Layouts without a zone
// are interpreted in the parser's location.
var absoluteLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04", // <input type="datetime-local">
	"2006-01-02 15:04",
	"2006-01-02",
}

const (
	minYear = 0
	maxYear = 9999

	// upper bound for N in "in N days|weeks|months"
	maxRelativeAmount = 10_000_000
)

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

// Parser turns user-supplied due date strings into absolute times.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone, e.g. "Europe/Berlin".
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

// Parse accepts an absolute date (see absoluteLayouts) or a relative phrase:
// "today", "tomorrow", "yesterday", "in N days|weeks|months", "next <weekday>".
// Relative phrases resolve to midnight in the parser's location, relative to now.
// Results outside years 0 to 9999 are rejected because they cannot be stored as RFC 3339.
func (p *Parser) Parse(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, ErrEmptyInput
	}

	t, err := p.resolve(input, now)
	if err != nil {
		return time.Time{}, err
	}
	if y := t.UTC().Year(); y < minYear || y > maxYear {
		return time.Time{}, fmt.Errorf("%w: %q is out of range", ErrUnrecognized, input)
	}
	return t, nil
}

func (p *Parser) resolve(input string, now time.Time) (time.Time, error) {
	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, input, p.location); err == nil {
			return t, nil
		}
	}

	relative := strings.ToLower(input)
	switch relative {
	case "today":
		return p.startOfDay(now), nil
	case "tomorrow":
		return p.startOfDay(now.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(now.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, now)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, now)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, input)
}

// parseInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, now time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount > maxRelativeAmount {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
	}

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(now.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(now.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(now.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles "next monday", "next friday". Always strictly after today.
func (p *Parser) parseNextWeekday(relative string, now time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	local := now.In(p.location)
	daysUntil := int(target - local.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(local.AddDate(0, 0, daysUntil)), nil
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
