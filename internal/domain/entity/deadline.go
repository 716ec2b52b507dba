package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
)

// epochMillisThreshold separates epoch seconds from epoch milliseconds.
// 1e11 seconds is beyond the year 5000, 1e11 milliseconds is March 1973.
const epochMillisThreshold = 1e11

var deadlineLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeDeadline coerces an ISO date string, a numeric string, epoch seconds,
// epoch milliseconds or a time.Time into a UTC instant.
func NormalizeDeadline(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time", errs.ErrInvalidDeadline)
		}
		return v.UTC(), nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: missing", errs.ErrInvalidDeadline)
		}
		return NormalizeDeadline(*v)
	case string:
		return parseDeadlineString(v)
	case json.Number:
		return parseDeadlineString(v.String())
	case float64:
		return fromEpoch(v)
	case float32:
		return fromEpoch(float64(v))
	case int:
		return fromEpoch(float64(v))
	case int64:
		return fromEpoch(float64(v))
	case nil:
		return time.Time{}, fmt.Errorf("%w: missing", errs.ErrInvalidDeadline)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", errs.ErrInvalidDeadline, value)
	}
}

// FormatDeadline renders an instant the way every API response carries it
func FormatDeadline(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseDeadlineString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", errs.ErrInvalidDeadline)
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return fromEpoch(n)
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errs.ErrInvalidDeadline, s)
}

func fromEpoch(n float64) (time.Time, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return time.Time{}, fmt.Errorf("%w: epoch value %v", errs.ErrInvalidDeadline, n)
	}
	if n < epochMillisThreshold {
		sec, frac := math.Modf(n)
		return time.Unix(int64(sec), int64(frac*1e9)).UTC(), nil
	}
	if n > math.MaxInt64/1e6 {
		return time.Time{}, fmt.Errorf("%w: epoch value %v out of range", errs.ErrInvalidDeadline, n)
	}
	return time.UnixMilli(int64(n)).UTC(), nil
}
