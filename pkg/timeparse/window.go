package timeparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// EndKind сообщает, чем оказалась строка конца окна: временем или длительностью
type EndKind int

const (
	// KindClock значение - время на часах (минуты от полуночи)
	KindClock EndKind = iota
	// KindDuration значение - длительность в минутах от начала окна
	KindDuration
)

// EndValue результат разбора строки "конец или длительность"
type EndValue struct {
	Kind    EndKind
	Minutes int
}

// Window полуоткрытый интервал [StartMin, EndMin) в минутах от полуночи
type Window struct {
	StartMin int
	EndMin   int
}

// Duration returns the window length in minutes
func (w Window) Duration() int {
	return w.EndMin - w.StartMin
}

// Overlaps reports whether two half-open windows intersect. Touching
// endpoints do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.StartMin < other.EndMin && w.EndMin > other.StartMin
}

// The booking UI submits a fixed set of duration labels; the generalized
// "<decimal>h" pattern covers anything else duration-shaped.
var durationLabels = map[string]int{
	"1h":   60,
	"1.5h": 90,
	"2h":   120,
	"3h":   180,
}

var durationRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*h`)

// DefaultWindowMinutes длительность окна по умолчанию, когда конец не распознан
const DefaultWindowMinutes = 60

// ParseEnd classifies an end-of-window string as either a clock time or a
// duration. Known duration labels win, then the generalized decimal+h
// pattern (offset = round(number*60)), then clock-time parsing.
func ParseEnd(s string) (EndValue, error) {
	trimmed := strings.TrimSpace(s)

	if offset, ok := durationLabels[trimmed]; ok {
		return EndValue{Kind: KindDuration, Minutes: offset}, nil
	}

	if m := durationRe.FindStringSubmatch(trimmed); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return EndValue{Kind: KindDuration, Minutes: int(math.Round(hours * 60))}, nil
		}
	}

	minutes, err := ToMinutes(s)
	if err != nil {
		return EndValue{}, err
	}
	return EndValue{Kind: KindClock, Minutes: minutes}, nil
}

// ResolveWindow derives a concrete [start, end) window from a start time and
// an end-time-or-duration string. An unresolvable start fails with
// ErrInvalidStart - there is no fallback for it. An unresolvable end falls
// back to a 60-minute window: most submissions are duration-label driven and
// a lenient default beats rejecting the booking outright. A resolvable end
// that is not after the start fails with ErrInvalidWindow: an inverted window
// can never conflict with anything and must not reach the store.
func ResolveWindow(start, endOrDuration string) (Window, error) {
	startMin, err := ToMinutes(start)
	if err != nil {
		return Window{}, ErrInvalidStart
	}

	end, err := ParseEnd(endOrDuration)
	if err != nil {
		return Window{StartMin: startMin, EndMin: startMin + DefaultWindowMinutes}, nil
	}

	w := Window{StartMin: startMin, EndMin: end.Minutes}
	if end.Kind == KindDuration {
		w.EndMin = startMin + end.Minutes
	}

	if w.EndMin <= w.StartMin {
		return Window{}, ErrInvalidWindow
	}

	return w, nil
}
