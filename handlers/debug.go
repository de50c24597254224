// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/dcapi"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/timetable"
)

type debugPostcode struct {
	Postcode    string
	Description string
}

type debugStage struct {
	Name     string
	Baseline string
	Relative string
}

// DebugIndex lists the mock postcodes and the timetable stages of a
// reference ballot so every page state is one click away. 404s outside
// debug mode.
func (a *App) DebugIndex(w http.ResponseWriter, r *http.Request) {
	if !a.Cfg.Debug {
		http.NotFound(w, r)
		return
	}

	postcodes := make([]debugPostcode, 0, len(dcapi.MockPostcodes))
	for pc, entry := range dcapi.MockPostcodes {
		postcodes = append(postcodes, debugPostcode{Postcode: pc, Description: entry.Description})
	}
	sort.Slice(postcodes, func(i, j int) bool { return postcodes[i].Postcode < postcodes[j].Postcode })

	a.render(w, r, "debug_page.html", map[string]any{
		"Title":         "Debug",
		"MockPostcodes": postcodes,
		"Stages":        a.debugStages(),
	})
}

// debugStages walks the timetable of the stock mock ballot, whose poll is
// always 20 days after the baseline.
func (a *App) debugStages() []debugStage {
	now := a.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	pollDate := today.AddDate(0, 0, 20)

	tt, err := timetable.FromElectionID(
		"local.sheffield.ecclesall."+pollDate.Format(time.DateOnly),
		timetable.England,
	)
	if err != nil {
		return nil
	}

	stages := make([]debugStage, 0, len(tt.Entries)+1)
	for _, entry := range tt.Entries {
		stages = append(stages, debugStage{
			Name:     entry.Label,
			Baseline: entry.Date.Format(time.DateOnly),
			Relative: humanize.RelTime(entry.Date, pollDate, "before the poll", "after the poll"),
		})
	}
	stages = append(stages, debugStage{
		Name:     "Polling day",
		Baseline: pollDate.Format(time.DateOnly),
		Relative: "the poll itself",
	})
	return stages
}
