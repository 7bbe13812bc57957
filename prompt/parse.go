package prompt

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrUnsupportedType is returned when no ParseFunc is given and ParseText
// cannot handle the target type.
var ErrUnsupportedType = errors.New("unsupported input type")

// ParseFunc converts raw text into a value or reports why it cannot.
type ParseFunc[T any] func(raw string) (T, error)

// ParseText parses raw into T. It supports strings, booleans, every sized
// integer and float kind, time.Duration, and types whose pointer implements
// encoding.TextUnmarshaler.
func ParseText[T any](raw string) (T, error) {
	var v T
	err := parseInto(&v, raw)
	return v, err
}

// parserFor returns ParseText[T] after checking T is something it handles.
func parserFor[T any]() (ParseFunc[T], error) {
	var v T
	if !supported(&v) {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	return ParseText[T], nil
}

func supported(dst any) bool {
	switch dst.(type) {
	case encoding.TextUnmarshaler,
		*string, *bool, *time.Duration,
		*int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*float32, *float64:
		return true
	}
	return false
}

func parseInto(dst any, raw string) error {
	switch p := dst.(type) {
	case encoding.TextUnmarshaler:
		return p.UnmarshalText([]byte(raw))
	case *string:
		*p = raw
	case *bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*p = v
	case *time.Duration:
		v, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		*p = v
	case *int:
		return parseSigned(p, raw, strconv.IntSize)
	case *int8:
		return parseSigned(p, raw, 8)
	case *int16:
		return parseSigned(p, raw, 16)
	case *int32:
		return parseSigned(p, raw, 32)
	case *int64:
		return parseSigned(p, raw, 64)
	case *uint:
		return parseUnsigned(p, raw, strconv.IntSize)
	case *uint8:
		return parseUnsigned(p, raw, 8)
	case *uint16:
		return parseUnsigned(p, raw, 16)
	case *uint32:
		return parseUnsigned(p, raw, 32)
	case *uint64:
		return parseUnsigned(p, raw, 64)
	case *float32:
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return err
		}
		*p = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*p = v
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, dst)
	}
	return nil
}

func parseSigned[N ~int | ~int8 | ~int16 | ~int32 | ~int64](p *N, raw string, bits int) error {
	v, err := strconv.ParseInt(raw, 10, bits)
	if err != nil {
		return err
	}
	*p = N(v)
	return nil
}

func parseUnsigned[N ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](p *N, raw string, bits int) error {
	v, err := strconv.ParseUint(raw, 10, bits)
	if err != nil {
		return err
	}
	*p = N(v)
	return nil
}
