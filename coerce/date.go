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

package coerce

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// maxMillis is the largest distance from the epoch, in milliseconds, for
// which a JavaScript Date is valid.
const maxMillis = 8.64e15

// dateLayouts lists the accepted string formats, most specific first.
// Layouts without a zone are read as UTC. Zone abbreviations other than
// GMT and UTC are not accepted, since time.Parse cannot resolve them to an
// offset.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006",
	"Mon, 02 Jan 2006 15:04:05 GMT",
	"Mon, 02 Jan 2006 15:04:05 UTC",
	time.RFC1123Z,
}

// Date converts v to a time.
//
// A time.Time (or non-nil *time.Time) is returned unchanged. Numbers are
// interpreted as milliseconds since the Unix epoch, truncated towards zero.
// Strings are parsed as ISO 8601 dates and date-times; values without an
// explicit offset are taken to be in UTC. Numeric and string inputs give
// times in UTC.
//
// All other values, strings which do not parse, and numbers outside the
// range of ±8.64e15 ms give an error wrapping [ErrInvalidInput].
func Date(v any) (time.Time, error) {
	switch v := v.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("nil *time.Time: %w", ErrInvalidInput)
		}
		return *v, nil
	case string:
		return parseDate(v)
	}

	ms, err := Number(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%T is not a date: %w", v, ErrInvalidInput)
	}
	if math.IsInf(ms, 0) || math.Abs(ms) > maxMillis {
		return time.Time{}, fmt.Errorf("%g ms out of range: %w", ms, ErrInvalidInput)
	}
	return time.UnixMilli(int64(math.Trunc(ms))).UTC(), nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a date: %w", s, ErrInvalidInput)
}
