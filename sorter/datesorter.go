// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package sorter

import (
	"sort"
	"time"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/models"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/timetable"
)

// DateSorter works out which sections one poll date needs and the order
// they render in.
type DateSorter struct {
	Data          *models.Date
	Country       timetable.Country
	Current       time.Time
	FirstUpcoming bool
	PollDate      time.Time

	// Timetable covers the date's standard ballots; CityTimetable covers
	// any City of London ballots, which follow different statutory
	// deadlines. Either may be nil when the date has no ballots in that
	// group.
	Timetable     *timetable.Timetable
	CityTimetable *timetable.Timetable

	// CurrentMode is the label of the most recently passed timetable
	// event, "" when none has passed yet.
	CurrentMode string

	// ParishTextKey selects the parish/community council disclaimer, ""
	// when no disclaimer applies.
	ParishTextKey string

	Sections []Section

	dispatchDates []time.Time
	londonBorough bool
}

type dateSorterParams struct {
	country       timetable.Country
	current       time.Time
	firstUpcoming bool
	dispatchDates []time.Time
	londonBorough bool
}

func newDateSorter(date *models.Date, p dateSorterParams) (*DateSorter, error) {
	ds := &DateSorter{
		Data:          date,
		Country:       p.country,
		Current:       p.current,
		FirstUpcoming: p.firstUpcoming,
		PollDate:      date.PollDate(),
		dispatchDates: p.dispatchDates,
		londonBorough: p.londonBorough,
	}

	standard, city := splitByJurisdiction(date.Ballots)
	if len(standard) > 0 {
		tt, err := timetable.FromElectionID(standard[0].ElectionID, p.country)
		if err != nil {
			return nil, err
		}
		ds.Timetable = tt
	}
	if len(city) > 0 {
		tt, err := timetable.FromElectionID(city[0].ElectionID, p.country)
		if err != nil {
			return nil, err
		}
		ds.CityTimetable = tt
	}

	if tt := ds.primaryTimetable(); tt != nil {
		ds.CurrentMode = tt.CurrentMode(p.current)
	}
	ds.ParishTextKey = parishTextKey(p.country, p.londonBorough)
	ds.buildSections(len(standard) > 0, len(city) > 0)
	return ds, nil
}

// splitByJurisdiction separates City of London ballots from the rest.
func splitByJurisdiction(ballots []models.Ballot) (standard, city []models.Ballot) {
	for _, b := range ballots {
		if b.IsCityOfLondon() {
			city = append(city, b)
		} else {
			standard = append(standard, b)
		}
	}
	return standard, city
}

func parishTextKey(c timetable.Country, londonBorough bool) string {
	switch c {
	case timetable.England:
		if londonBorough {
			return ""
		}
		return "parish.england"
	case timetable.Scotland:
		return "parish.scotland"
	case timetable.Wales:
		return "parish.wales"
	}
	return ""
}

func (ds *DateSorter) primaryTimetable() *timetable.Timetable {
	if ds.Timetable != nil {
		return ds.Timetable
	}
	return ds.CityTimetable
}

func (ds *DateSorter) buildSections(hasStandard, hasCity bool) {
	sections := []Section{
		&BallotsSection{
			date:          ds.Data,
			tt:            ds.primaryTimetable(),
			current:       ds.Current,
			parishTextKey: ds.ParishTextKey,
		},
	}

	if !ds.AllCancelled() {
		if hasStandard {
			sections = append(sections, &RegistrationSection{tt: ds.Timetable, current: ds.Current})
		}
		if hasCity {
			sections = append(sections, &CityOfLondonRegistrationSection{tt: ds.CityTimetable, current: ds.Current})
		}
		sections = append(sections, &PostalVotesSection{
			tt:            ds.primaryTimetable(),
			current:       ds.Current,
			dispatchDates: ds.dispatchDates,
		})
		if ds.FirstUpcoming {
			sections = append(sections, &PollingStationSection{
				date:     ds.Data,
				pollDate: ds.PollDate,
				current:  ds.Current,
			})
		}
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Weight() < sections[j].Weight()
	})
	ds.Sections = sections
}

func (ds *DateSorter) BallotCount() int {
	return len(ds.Data.Ballots)
}

func (ds *DateSorter) UncancelledBallotCount() int {
	n := 0
	for _, b := range ds.Data.Ballots {
		if !b.Cancelled {
			n++
		}
	}
	return n
}

// AllCancelled is true iff every ballot on this date is cancelled. A date
// with no ballots counts as cancelled, so it renders nothing actionable.
func (ds *DateSorter) AllCancelled() bool {
	return ds.UncancelledBallotCount() == 0
}

// CancellationReasons returns the distinct reasons present on this date,
// in order of first appearance.
func (ds *DateSorter) CancellationReasons() []models.CancellationReason {
	var reasons []models.CancellationReason
	seen := map[models.CancellationReason]bool{}
	for _, b := range ds.Data.Ballots {
		if b.CancellationReason == nil || seen[*b.CancellationReason] {
			continue
		}
		seen[*b.CancellationReason] = true
		reasons = append(reasons, *b.CancellationReason)
	}
	return reasons
}
