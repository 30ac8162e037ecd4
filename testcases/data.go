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

package testcases

import (
	"fmt"
	"slices"
	"time"

	"seehuhn.de/go/chartgeom/coerce"
)

// Sample is one value of a time series.
type Sample struct {
	Date  time.Time
	Value float64
}

func sampleDate(s Sample) time.Time { return s.Date }
func sampleValue(s Sample) float64 { return s.Value }

// RawSample is a time series value as found in decoded JSON, where dates
// may be strings or epoch milliseconds and values may be quoted.
type RawSample struct {
	Date  any
	Value any
}

// Series converts raw values into samples, keeping their order.
func Series(rows []RawSample) ([]Sample, error) {
	res := make([]Sample, len(rows))
	for i, row := range rows {
		d, err := coerce.Date(row.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		v, err := coerce.Number(row.Value)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		res[i] = Sample{Date: d, Value: v}
	}
	return res, nil
}

// Activity is one row of hourly repository activity. Counts are stored as
// strings, the way the activity export writes them.
type Activity struct {
	Week         string
	Hour         int
	PullRequests string
	Issues       string
	Branches     string
}

// WeeklyTotals adds up all events per week and returns one sample per week,
// in chronological order.
func WeeklyTotals(rows []Activity) ([]Sample, error) {
	totals := make(map[time.Time]float64)
	for i, row := range rows {
		week, err := coerce.Date(row.Week)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		total := 0.0
		for _, field := range []string{row.PullRequests, row.Issues, row.Branches} {
			n, err := coerce.Number(field)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			total += n
		}
		totals[week] += total
	}

	res := make([]Sample, 0, len(totals))
	for week, total := range totals {
		res = append(res, Sample{Date: week, Value: total})
	}
	slices.SortFunc(res, func(a, b Sample) int {
		return a.Date.Compare(b.Date)
	})
	return res, nil
}

func mustSeries(rows []RawSample) []Sample {
	s, err := Series(rows)
	if err != nil {
		panic(err)
	}
	return s
}

func mustWeekly(rows []Activity) []Sample {
	s, err := WeeklyTotals(rows)
	if err != nil {
		panic(err)
	}
	return s
}

// monthly mixes the value encodings seen in exported chart data.
var monthly = mustSeries([]RawSample{
	{"2023-01-01", "12"},
	{"2023-02-01", 15.5},
	{int64(1677628800000), "9"}, // 2023-03-01
	{"2023-04-01T00:00:00Z", 21},
	{"2023-05-01", "18.25"},
	{"2023-06-01", 4},
	{"2023-07-01", "11"},
	{"2023-08-01", 16},
})

var pair = mustSeries([]RawSample{
	{"2024-01-01", 3},
	{"2024-01-02", 7},
})

var activity = []Activity{
	{Week: "2023-09-04", Hour: 9, PullRequests: "3", Issues: "1", Branches: "0"},
	{Week: "2023-09-04", Hour: 14, PullRequests: "1", Issues: "4", Branches: "2"},
	{Week: "2023-09-11", Hour: 10, PullRequests: "0", Issues: "2", Branches: "1"},
	{Week: "2023-09-18", Hour: 11, PullRequests: "6", Issues: "0", Branches: "1"},
	{Week: "2023-09-18", Hour: 16, PullRequests: "2", Issues: "3", Branches: "0"},
	{Week: "2023-09-25", Hour: 9, PullRequests: "1", Issues: "1", Branches: "1"},
	{Week: "2023-10-02", Hour: 13, PullRequests: "4", Issues: "5", Branches: "2"},
	{Week: "2023-10-09", Hour: 15, PullRequests: "2", Issues: "0", Branches: "0"},
}

var weekly = mustWeekly(activity)
