// seehuhn.de/go/chartgeom - geometry helpers for chart rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package coerce converts loosely typed record fields, as found in decoded
// JSON or CSV data, into numbers and times.
package coerce

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Number converts v to a float64.
//
// Go integer and floating point values are accepted, except for NaN.
// Strings are read the way JavaScript's parseFloat reads them: leading white
// space is skipped and the longest prefix forming a decimal number (or
// "Infinity") is used, so that "3.5kg" gives 3.5. A string without such a
// prefix is rejected. All other values give an error wrapping
// [ErrInvalidInput].
func Number(v any) (float64, error) {
	var x float64
	switch v := v.(type) {
	case float64:
		x = v
	case float32:
		x = float64(v)
	case int:
		x = float64(v)
	case int8:
		x = float64(v)
	case int16:
		x = float64(v)
	case int32:
		x = float64(v)
	case int64:
		x = float64(v)
	case uint:
		x = float64(v)
	case uint8:
		x = float64(v)
	case uint16:
		x = float64(v)
	case uint32:
		x = float64(v)
	case uint64:
		x = float64(v)
	case json.Number:
		return parseNumber(string(v))
	case string:
		return parseNumber(v)
	default:
		return 0, fmt.Errorf("%T is not a number: %w", v, ErrInvalidInput)
	}

	if math.IsNaN(x) {
		return 0, fmt.Errorf("NaN: %w", ErrInvalidInput)
	}
	return x, nil
}

func parseNumber(s string) (float64, error) {
	x, ok := parseFloatPrefix(s)
	if !ok {
		return 0, fmt.Errorf("%q is not a number: %w", s, ErrInvalidInput)
	}
	return x, nil
}

// parseFloatPrefix parses the longest prefix of s, after leading white
// space, which forms a decimal literal.
func parseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, isSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j { // an exponent needs at least one digit
			end = k
		}
	}

	x, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return x, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
