package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolver extracts date expressions from free-form text and converts
// them to absolute time.Time values relative to a caller-supplied "now".
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Relative phrases are matched with word boundaries so a phrase embedded
// inside a larger word ("todays") is not picked up.
var (
	reToday     = regexp.MustCompile(`\btoday\b`)
	reTomorrow  = regexp.MustCompile(`\btomorrow\b`)
	reNextWeek  = regexp.MustCompile(`\bnext week\b`)
	reNextMonth = regexp.MustCompile(`\bnext month\b`)

	reSlashDate = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
	reISODate   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	reMonthDay  = regexp.MustCompile(`\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]* (\d{1,2})\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// Resolve scans lowercased text for a date expression and returns the
// resolved time. Relative phrases win over absolute patterns; absolute
// patterns are tried in a fixed order (slash date, ISO date, month-name
// day) and a match that fails to parse into a real calendar date is
// discarded, continuing with the next pattern. The boolean is false when
// no expression resolves.
func (r *Resolver) Resolve(text string, now time.Time) (time.Time, bool) {
	switch {
	case reToday.MatchString(text):
		return now, true
	case reTomorrow.MatchString(text):
		return now.AddDate(0, 0, 1), true
	case reNextWeek.MatchString(text):
		return now.AddDate(0, 0, 7), true
	case reNextMonth.MatchString(text):
		return now.AddDate(0, 0, 30), true
	}

	if m := reSlashDate.FindStringSubmatch(text); m != nil {
		if t, err := r.parseSlashDate(m); err == nil {
			return t, true
		}
	}
	if m := reISODate.FindStringSubmatch(text); m != nil {
		if t, err := r.parseISODate(m); err == nil {
			return t, true
		}
	}
	if m := reMonthDay.FindStringSubmatch(text); m != nil {
		if t, err := r.parseMonthDay(m, now); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseSlashDate handles MM/DD/YYYY and MM/DD/YY.
func (r *Resolver) parseSlashDate(m []string) (time.Time, error) {
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month %d", month)
	}
	return r.date(year, time.Month(month), day)
}

func (r *Resolver) parseISODate(m []string) (time.Time, error) {
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid month %d", month)
	}
	return r.date(year, time.Month(month), day)
}

// parseMonthDay handles "jan 5", "december 24" — the year defaults to
// the current year of the reference time.
func (r *Resolver) parseMonthDay(m []string, now time.Time) (time.Time, error) {
	month, ok := monthsByPrefix[strings.ToLower(m[1])]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown month %q", m[1])
	}
	day, _ := strconv.Atoi(m[2])
	return r.date(now.In(r.location).Year(), month, day)
}

// date builds midnight of the given calendar date, rejecting values that
// time.Date would silently normalize (e.g. Feb 31 → Mar 2).
func (r *Resolver) date(year int, month time.Month, day int) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, r.location)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid day %d for %s %d", day, month, year)
	}
	return t, nil
}
