// Package numparse parses the loosely typed numeric fields the bot layer
// forwards from forum submissions: plain numbers, or strings with
// comma thousands separators ("1,500").
package numparse

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrNotANumber = errors.New("value is not a valid integer")

// Int normalizes a submitted value into an int64. Strings are stripped of
// comma separators before parsing.
func Int(v any) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, ErrNotANumber
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != float64(int64(n)) {
			return 0, ErrNotANumber
		}
		return int64(n), nil
	case json.Number:
		return parseString(n.String())
	case string:
		return parseString(n)
	}
	return 0, ErrNotANumber
}

// PositiveInt is Int restricted to values greater than zero.
func PositiveInt(v any) (int64, error) {
	n, err := Int(v)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, ErrNotANumber
	}
	return n, nil
}

func parseString(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}
