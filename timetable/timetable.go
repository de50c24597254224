// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package timetable

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Event string

const (
	SOPNPublishDate               Event = "SOPN_PUBLISH_DATE"
	RegistrationDeadline          Event = "REGISTRATION_DEADLINE"
	PostalVoteApplicationDeadline Event = "POSTAL_VOTE_APPLICATION_DEADLINE"
	VACApplicationDeadline        Event = "VAC_APPLICATION_DEADLINE"
)

var eventLabels = map[Event]string{
	SOPNPublishDate:               "List of candidates published",
	RegistrationDeadline:          "Register to vote deadline",
	PostalVoteApplicationDeadline: "Postal vote application deadline",
	VACApplicationDeadline:        "VAC application deadline",
}

// Entry is one dated milestone in an election timetable.
type Entry struct {
	Label string
	Date  time.Time
	Event Event
}

// Timetable is the ordered set of statutory milestones leading up to one
// poll day. All entries precede the poll date.
type Timetable struct {
	ElectionID   string
	ElectionType string
	PollDate     time.Time
	Entries      []Entry
}

// ResolutionError means an election id could not be resolved to a known
// timetable. It carries the offending id so callers can log it.
type ResolutionError struct {
	ElectionID string
	Reason     string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("can't resolve timetable for %q: %s", e.ElectionID, e.Reason)
}

// SOPN publication deadlines in working days before the poll, by election
// type. These track the per-election statutory rules rather than a single
// common offset.
var sopnOffsets = map[string]int{
	"parl":   19,
	"local":  18,
	"mayor":  19,
	"pcc":    19,
	"gla":    23,
	"senedd": 19,
	"sp":     23,
	"nia":    16,
}

// Deadlines common to all election types, in working days before the poll.
const (
	registrationOffset = 12
	postalVoteOffset   = 11
	postalVoteOffsetNI = 14
	vacOffset          = 6
)

// City of London SOPN offset. Common Council elections publish nominations
// later than standard locals.
const cityOfLondonSOPNOffset = 14

// FromElectionID resolves an election or ballot id such as
// "parl.2024-05-02" or "local.city-of-london.aldersgate.2025-03-20" into
// its statutory timetable for the given country.
func FromElectionID(id string, country Country) (*Timetable, error) {
	parts := strings.Split(id, ".")
	if len(parts) < 2 {
		return nil, &ResolutionError{ElectionID: id, Reason: "not a dotted election id"}
	}

	electionType := parts[0]
	sopnOffset, ok := sopnOffsets[electionType]
	if !ok {
		return nil, &ResolutionError{ElectionID: id, Reason: "unknown election type " + electionType}
	}

	pollDate, err := time.Parse(time.DateOnly, parts[len(parts)-1])
	if err != nil {
		return nil, &ResolutionError{ElectionID: id, Reason: "no poll date segment"}
	}

	cityOfLondon := electionType == "local" && len(parts) > 2 && parts[1] == "city-of-london"
	if cityOfLondon {
		sopnOffset = cityOfLondonSOPNOffset
	}

	registration := workingDaysBefore(pollDate, registrationOffset, country)
	if cityOfLondon {
		// Applications for the City's ward lists close at the end of the
		// preceding November.
		registration = precedingNovember30(pollDate)
	}

	postalOffset := postalVoteOffset
	if country == NorthernIreland {
		postalOffset = postalVoteOffsetNI
	}

	entries := []Entry{
		{Event: SOPNPublishDate, Date: workingDaysBefore(pollDate, sopnOffset, country)},
		{Event: RegistrationDeadline, Date: registration},
		{Event: PostalVoteApplicationDeadline, Date: workingDaysBefore(pollDate, postalOffset, country)},
		{Event: VACApplicationDeadline, Date: workingDaysBefore(pollDate, vacOffset, country)},
	}
	for i := range entries {
		entries[i].Label = eventLabels[entries[i].Event]
	}
	// The City of London registration deadline sits months before the
	// other milestones; keep the published order chronological.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return &Timetable{
		ElectionID:   id,
		ElectionType: electionType,
		PollDate:     pollDate,
		Entries:      entries,
	}, nil
}

func precedingNovember30(pollDate time.Time) time.Time {
	year := pollDate.Year()
	nov30 := time.Date(year, time.November, 30, 0, 0, 0, 0, time.UTC)
	if !pollDate.After(nov30) {
		nov30 = nov30.AddDate(-1, 0, 0)
	}
	return nov30
}

// Entry returns the milestone for an event.
func (t *Timetable) Entry(ev Event) (Entry, bool) {
	for _, e := range t.Entries {
		if e.Event == ev {
			return e, true
		}
	}
	return Entry{}, false
}

// Date returns the date of an event, or the zero time if the timetable
// doesn't carry it.
func (t *Timetable) Date(ev Event) time.Time {
	e, _ := t.Entry(ev)
	return e.Date
}

// IsBefore reports whether the reference date falls strictly before the
// event. On the event date itself both IsBefore and IsAfter are false.
func (t *Timetable) IsBefore(ev Event, on time.Time) bool {
	e, ok := t.Entry(ev)
	if !ok {
		return false
	}
	return truncate(on).Before(truncate(e.Date))
}

// IsAfter reports whether the reference date falls strictly after the
// event.
func (t *Timetable) IsAfter(ev Event, on time.Time) bool {
	e, ok := t.Entry(ev)
	if !ok {
		return false
	}
	return truncate(on).After(truncate(e.Date))
}

// CurrentMode returns the label of the most recently passed milestone at
// or before the reference date, or "" if none has passed yet.
func (t *Timetable) CurrentMode(on time.Time) string {
	mode := ""
	ref := truncate(on)
	for _, e := range t.Entries {
		if !truncate(e.Date).After(ref) {
			mode = e.Label
		}
	}
	return mode
}

func truncate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
