package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	tick          = 100 * time.Nanosecond
	day           = 24 * time.Hour
	fractionWidth = 7
)

var errTimeSpanSyntax = errors.New("invalid time span")

// ParseTimeSpan parses a duration written as [-][d.]hh:mm[:ss[.fffffff]] or
// as a bare number of days. Go duration syntax ("250ms") is accepted too.
func ParseTimeSpan(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errTimeSpanSyntax
	}

	if strings.IndexFunc(s, unicode.IsLetter) >= 0 {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", errTimeSpanSyntax, err)
		}

		return d, nil
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	d, err := parseUnsignedTimeSpan(s)
	if err != nil {
		return 0, err
	}

	if negative {
		return -d, nil
	}

	return d, nil
}

func parseUnsignedTimeSpan(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) == 1 {
		days, err := component(parts[0], -1)
		if err != nil {
			return 0, err
		}

		return accumulate(0, days, day)
	}

	if len(parts) > 3 {
		return 0, errTimeSpanSyntax
	}

	var total time.Duration

	hoursPart := parts[0]
	if daysPart, rest, ok := strings.Cut(hoursPart, "."); ok {
		days, err := component(daysPart, -1)
		if err != nil {
			return 0, err
		}

		if total, err = accumulate(total, days, day); err != nil {
			return 0, err
		}

		hoursPart = rest
	}

	hours, err := component(hoursPart, 23)
	if err != nil {
		return 0, err
	}

	minutes, err := component(parts[1], 59)
	if err != nil {
		return 0, err
	}

	if total, err = accumulate(total, hours, time.Hour); err != nil {
		return 0, err
	}

	if total, err = accumulate(total, minutes, time.Minute); err != nil {
		return 0, err
	}

	if len(parts) == 3 {
		secondsPart, fractionPart, hasFraction := strings.Cut(parts[2], ".")

		seconds, err := component(secondsPart, 59)
		if err != nil {
			return 0, err
		}

		if total, err = accumulate(total, seconds, time.Second); err != nil {
			return 0, err
		}

		if hasFraction {
			fraction, err := parseFraction(fractionPart)
			if err != nil {
				return 0, err
			}

			if total, err = accumulate(total, int64(fraction), 1); err != nil {
				return 0, err
			}
		}
	}

	return total, nil
}

// accumulate returns total + n*unit, failing when the result does not fit
// in a time.Duration. total and n are non-negative.
func accumulate(total time.Duration, n int64, unit time.Duration) (time.Duration, error) {
	if n > (math.MaxInt64-int64(total))/int64(unit) {
		return 0, fmt.Errorf("%w: exceeds the maximum duration", errTimeSpanSyntax)
	}

	return total + time.Duration(n)*unit, nil
}

// component parses a non-negative decimal; limit < 0 means unbounded.
func component(s string, limit int64) (int64, error) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, errTimeSpanSyntax
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errTimeSpanSyntax, err)
	}

	if limit >= 0 && v > limit {
		return 0, fmt.Errorf("%w: component %d out of range 0-%d", errTimeSpanSyntax, v, limit)
	}

	return v, nil
}

func parseFraction(s string) (time.Duration, error) {
	if len(s) > fractionWidth {
		return 0, fmt.Errorf("%w: fraction %q has more than %d digits", errTimeSpanSyntax, s, fractionWidth)
	}

	ticks, err := component(s+strings.Repeat("0", fractionWidth-len(s)), -1)
	if err != nil {
		return 0, err
	}

	return time.Duration(ticks) * tick, nil
}

// FormatTimeSpan writes d as [-][d.]hh:mm:ss[.fffffff].
func FormatTimeSpan(d time.Duration) string {
	var b strings.Builder

	// The magnitude is unsigned so that math.MinInt64 can be negated.
	magnitude := uint64(d)
	if d < 0 {
		b.WriteByte('-')

		magnitude = -magnitude
	}

	days := magnitude / uint64(day)
	magnitude -= days * uint64(day)

	if days > 0 {
		fmt.Fprintf(&b, "%d.", days)
	}

	hours := magnitude / uint64(time.Hour)
	magnitude -= hours * uint64(time.Hour)
	minutes := magnitude / uint64(time.Minute)
	magnitude -= minutes * uint64(time.Minute)
	seconds := magnitude / uint64(time.Second)
	magnitude -= seconds * uint64(time.Second)

	fmt.Fprintf(&b, "%02d:%02d:%02d", hours, minutes, seconds)

	if ticks := magnitude / uint64(tick); ticks > 0 {
		fmt.Fprintf(&b, ".%07d", ticks)
	}

	return b.String()
}
