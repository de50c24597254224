// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type CancellationReason string

// CancellationReason values as they appear on the wire.
const (
	ReasonNoCandidates    CancellationReason = "NO_CANDIDATES"
	ReasonCandidateDeath  CancellationReason = "CANDIDATE_DEATH"
	ReasonEqualCandidates CancellationReason = "EQUAL_CANDIDATES"
	ReasonUnderContested  CancellationReason = "UNDER_CONTESTED"
)

// Uncontested reports whether the reason means the election was not
// contested (exactly as many candidates as seats). Everything else,
// including reason values we don't know about yet, reads as postponed.
func (r CancellationReason) Uncontested() bool {
	return r == ReasonEqualCandidates
}

// APIDate is a calendar date in the upstream "YYYY-MM-DD" format.
type APIDate struct {
	time.Time
}

func (d *APIDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d APIDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(time.DateOnly))
}

type Party struct {
	PartyName string `json:"party_name"`
	PartyID   string `json:"party_id"`
}

type Person struct {
	Name string `json:"name"`
}

type Candidate struct {
	ListPosition *int   `json:"list_position,omitempty"`
	Party        Party  `json:"party"`
	Person       Person `json:"person"`
}

// Ballot is one contested post on one poll date.
type Ballot struct {
	BallotPaperID      string              `json:"ballot_paper_id"`
	BallotTitle        string              `json:"ballot_title"`
	PollOpenDate       APIDate             `json:"poll_open_date"`
	ElectedRole        string              `json:"elected_role,omitempty"`
	Cancelled          bool                `json:"cancelled"`
	CancellationReason *CancellationReason `json:"cancellation_reason,omitempty"`
	ReplacedBy         string              `json:"replaced_by,omitempty"`
	ElectionID         string              `json:"election_id"`
	ElectionName       string              `json:"election_name"`
	PostName           string              `json:"post_name"`
	CandidatesVerified bool                `json:"candidates_verified"`
	Candidates         []Candidate         `json:"candidates"`
	SeatsContested     int                 `json:"seats_contested,omitempty"`
	BallotURL          string              `json:"ballot_url,omitempty"`
	WCIVFURL           string              `json:"wcivf_url,omitempty"`
}

// IsCityOfLondon reports whether the ballot belongs to the City of London
// jurisdiction, which runs its own registration rules.
func (b Ballot) IsCityOfLondon() bool {
	return strings.Contains(b.BallotPaperID, ".city-of-london.") ||
		strings.Contains(b.ElectionID, ".city-of-london")
}

// IsParl reports whether the ballot is for a UK Parliamentary election.
func (b Ballot) IsParl() bool {
	return strings.HasPrefix(b.BallotPaperID, "parl.")
}

type Station struct {
	ID        string         `json:"id"`
	StationID string         `json:"station_id"`
	Address   string         `json:"address,omitempty"`
	Postcode  string         `json:"postcode,omitempty"`
	URLs      map[string]any `json:"urls,omitempty"`
}

type PollingStation struct {
	PollingStationKnown bool     `json:"polling_station_known"`
	CustomFinder        string   `json:"custom_finder,omitempty"`
	ReportProblemURL    string   `json:"report_problem_url,omitempty"`
	Station             *Station `json:"station,omitempty"`
}

type Notification struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Date groups all ballots sharing one poll date, with any polling station
// we know about for that day.
type Date struct {
	Date           string         `json:"date"`
	PollingStation PollingStation `json:"polling_station"`
	Ballots        []Ballot       `json:"ballots"`
	Notifications  []Notification `json:"notifications,omitempty"`
}

// PollDate parses the ISO date string. Malformed values return the zero
// time; Validate rejects those up front.
func (d Date) PollDate() time.Time {
	t, err := time.Parse(time.DateOnly, d.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

type Address struct {
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
	Slug     string `json:"slug"`
	URL      string `json:"url"`
}

// ElectoralServices holds contact details for a council's electoral
// services team.
type ElectoralServices struct {
	CouncilID string   `json:"council_id"`
	Name      string   `json:"name"`
	Nation    string   `json:"nation"`
	Address   string   `json:"address"`
	Postcode  string   `json:"postcode"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Website   string   `json:"website"`
	IDs       []string `json:"identifiers,omitempty"`
}

// Registration holds the registration officer contact where it differs
// from electoral services (valuation joint boards in Scotland, mostly).
type Registration struct {
	Address  string `json:"address"`
	Postcode string `json:"postcode"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
}

// SameAddress reports whether the registration contact is the same body as
// electoral services. The API carries no shared identifier, so equality is
// by contact address.
func (r *Registration) SameAddress(es *ElectoralServices) bool {
	if r == nil || es == nil {
		return false
	}
	return r.Address == es.Address
}

// RootModel is a parsed response from the elections API for one postcode
// or address.
type RootModel struct {
	AddressPicker     bool               `json:"address_picker"`
	Addresses         []Address          `json:"addresses"`
	Dates             []Date             `json:"dates"`
	ElectoralServices *ElectoralServices `json:"electoral_services,omitempty"`
	Registration      *Registration      `json:"registration,omitempty"`
}

var ErrAddressPickerWithDates = errors.New("can't have dates when address_picker is true")

// Validate enforces the response invariants: a split postcode carries no
// election dates, and every date and ballot must be well formed.
func (r *RootModel) Validate() error {
	if r.AddressPicker && len(r.Dates) > 0 {
		return ErrAddressPickerWithDates
	}
	for _, d := range r.Dates {
		if _, err := time.Parse(time.DateOnly, d.Date); err != nil {
			return fmt.Errorf("invalid poll date %q: %w", d.Date, err)
		}
		for _, b := range d.Ballots {
			if b.BallotPaperID == "" {
				return fmt.Errorf("ballot on %s has no ballot_paper_id", d.Date)
			}
		}
	}
	return nil
}

// ParseRootModel decodes and validates an API response body.
func ParseRootModel(data []byte) (*RootModel, error) {
	var root RootModel
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding api response: %w", err)
	}
	if err := root.Validate(); err != nil {
		return nil, err
	}
	return &root, nil
}
