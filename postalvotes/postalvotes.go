// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package postalvotes

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"time"
)

// CycleDate is the poll date the dispatch data applies to. Councils only
// share dispatch schedules per election cycle, so the lookup is scoped to
// this one poll day.
var CycleDate = time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

//go:embed data/20250501_postal_votes.csv
var dispatchCSV []byte

// DispatchDates returns the dates a council expects to post out postal
// ballot packs, or nil when we have nothing usable for that council.
// Absence is not an error: the section just renders without them.
func DispatchDates(councilID string) []time.Time {
	reader := csv.NewReader(bytes.NewReader(dispatchCSV))
	rows, err := reader.ReadAll()
	if err != nil || len(rows) < 2 {
		return nil
	}
	for _, row := range rows[1:] {
		if len(row) < 4 || row[0] != councilID {
			continue
		}
		dates := make([]time.Time, 0, 3)
		for _, cell := range row[1:4] {
			d, err := time.Parse("02/01/2006", cell)
			if err != nil {
				return nil
			}
			dates = append(dates, d)
		}
		return dates
	}
	return nil
}
