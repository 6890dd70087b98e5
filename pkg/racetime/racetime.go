// Package racetime converts race time notations (h:mm:ss.ff, m:ss.ff, ss.ff)
// from and to elapsed seconds.
package racetime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMalformedTime   = errors.New("malformed time")
	ErrImplausibleTime = errors.New("implausible time")
)

const (
	// MaxHours is the largest hour value Validate accepts
	MaxHours = 999
	// values above are not rendered by FormatTime
	maxFormatSeconds = 1e15
)

type segments struct {
	h, m  int
	s     float64
	count int
}

// ParseSeconds converts a time string to elapsed seconds.
// Hours and minutes must be non-negative integers, seconds may carry a fraction.
func ParseSeconds(text string) (float64, error) {
	seg, err := split(text)
	if err != nil {
		return 0, err
	}
	return seg.total(), nil
}

// Validate is the stricter check used when records are entered.
// Minutes and seconds below a higher segment must be less than 60 and the
// total must not exceed MaxHours:59:59.99.
func Validate(text string) error {
	seg, err := split(text)
	if err != nil {
		return err
	}
	switch {
	case seg.count == 3 && seg.m >= 60:
		return implausible(text, "minutes must be less than 60")
	case seg.count >= 2 && seg.s >= 60:
		return implausible(text, "seconds must be less than 60")
	case seg.total() >= (MaxHours+1)*3600:
		return implausible(text, fmt.Sprintf("more than %d hours", MaxHours))
	}
	return nil
}

func split(text string) (segments, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	ret := segments{count: len(parts)}
	var err error
	switch len(parts) {
	case 3:
		if ret.h, err = parseInt(parts[0]); err != nil {
			return ret, malformed(text, err)
		}
		if ret.m, err = parseInt(parts[1]); err != nil {
			return ret, malformed(text, err)
		}
	case 2:
		if ret.m, err = parseInt(parts[0]); err != nil {
			return ret, malformed(text, err)
		}
	case 1:
	default:
		return ret, malformed(text, fmt.Errorf("%d segments", len(parts)))
	}
	if ret.s, err = parseFloat(parts[len(parts)-1]); err != nil {
		return ret, malformed(text, err)
	}
	return ret, nil
}

func (s segments) total() float64 {
	return float64(s.h)*3600 + float64(s.m)*60 + s.s
}

// ParseTime is ParseSeconds returning NaN for malformed input.
func ParseTime(text string) float64 {
	s, err := ParseSeconds(text)
	if err != nil {
		return math.NaN()
	}
	return s
}

// FormatTime renders seconds as [h:]mm:ss.ff. The value is rounded to
// centiseconds before splitting so 59.999 becomes 01:00.00.
// Non-finite, negative or absurdly large values render as the empty string.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) ||
		seconds < 0 || seconds > maxFormatSeconds {
		return ""
	}
	total := decimal.NewFromFloat(seconds).Round(2)
	whole := total.Floor()
	frac := total.Sub(whole)
	w := whole.IntPart()
	hours := w / 3600
	minutes := (w % 3600) / 60
	secs := decimal.NewFromInt(w % 60).Add(frac).StringFixed(2)
	if len(secs) < 5 {
		secs = strings.Repeat("0", 5-len(secs)) + secs
	}
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%s", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%s", minutes, secs)
}

func parseInt(seg string) (int, error) {
	seg = strings.TrimSpace(seg)
	if !isDecimal(seg, false) {
		return 0, fmt.Errorf("invalid number %q", seg)
	}
	return strconv.Atoi(seg)
}

// parseFloat accepts plain decimals only, no sign, exponent or special values
func parseFloat(seg string) (float64, error) {
	seg = strings.TrimSpace(seg)
	if !isDecimal(seg, true) {
		return 0, fmt.Errorf("invalid number %q", seg)
	}
	v, err := strconv.ParseFloat(seg, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid value %v", v)
	}
	return v, nil
}

func isDecimal(seg string, fraction bool) bool {
	digits, dots := 0, 0
	for _, r := range seg {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' && fraction:
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

func malformed(text string, cause error) error {
	return fmt.Errorf("%w %q: %w", ErrMalformedTime, text, cause)
}

func implausible(text, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrImplausibleTime, text, reason)
}
