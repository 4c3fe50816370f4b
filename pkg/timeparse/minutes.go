// Package timeparse is the single parsing boundary for the heterogeneous time
// encodings bookings arrive with: ISO-like timestamps, plain datetimes,
// 12-hour clock with am/pm, 24-hour clock, bare hour numbers and duration
// labels ("1.5h"). Everything downstream works with minutes since midnight.
package timeparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTime возвращается, когда строку времени не удалось распознать
	ErrInvalidTime = errors.New("timeparse: invalid time string")

	// ErrInvalidStart возвращается, когда время начала окна не распознано
	ErrInvalidStart = errors.New("timeparse: invalid start time")

	// ErrInvalidWindow возвращается, когда конец окна не позже его начала
	ErrInvalidWindow = errors.New("timeparse: window end is not after start")
)

// MinutesPerDay число минут в сутках, верхняя граница для значений времени
const MinutesPerDay = 24 * 60

var (
	embeddedClockRe = regexp.MustCompile(`t(\d{2}):(\d{2})`)
	amPMClockRe     = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?\s*(am|pm)$`)
	plainClockRe    = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)
)

// Layouts tried for absolute datetime strings the regexes above do not cover
// (the store historically saved values like "2025-02-01 21:00:00").
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ToMinutes converts a time string in any accepted encoding to minutes since
// midnight. Forms are tried in order, first match wins:
//
//  1. a string with an embedded "T"+HH:MM (timestamp-like) - hour and minute
//     are taken directly, date and offset are ignored;
//  2. a parseable absolute datetime - local hour and minute of the instant;
//  3. HH:MM[:SS] am|pm (case-insensitive);
//  4. plain 24-hour HH:MM[:SS];
//  5. a bare integer, read as an hour with zero minutes.
//
// Anything else fails with ErrInvalidTime. The result is always in [0, 1439];
// out-of-range components fail rather than clamp.
func ToMinutes(s string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return 0, ErrInvalidTime
	}

	if m := embeddedClockRe.FindStringSubmatch(normalized); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return clockMinutes(hour, minute)
	}

	for _, layout := range datetimeLayouts {
		if ts, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return ts.Hour()*60 + ts.Minute(), nil
		}
	}

	if m := amPMClockRe.FindStringSubmatch(normalized); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		if m[3] == "pm" && hour != 12 {
			hour += 12
		}
		if m[3] == "am" && hour == 12 {
			hour = 0
		}
		return clockMinutes(hour, minute)
	}

	if m := plainClockRe.FindStringSubmatch(normalized); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return clockMinutes(hour, minute)
	}

	if hour, err := strconv.Atoi(normalized); err == nil {
		return clockMinutes(hour, 0)
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
}

func clockMinutes(hour, minute int) (int, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidTime, hour, minute)
	}
	return hour*60 + minute, nil
}

// FormatMinutes renders minutes since midnight as a zero-padded "HH:MM" label
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
