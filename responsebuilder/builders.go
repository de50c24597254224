// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package responsebuilder

import (
	"fmt"
	"time"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/models"
)

// BallotBuilder assembles a Ballot with explicit typed setters. Call the
// setters you need and Build at the end; unset fields keep their zero
// values.
type BallotBuilder struct {
	ballot models.Ballot
}

func NewBallot() *BallotBuilder {
	return &BallotBuilder{}
}

func (b *BallotBuilder) WithBallotPaperID(id string) *BallotBuilder {
	b.ballot.BallotPaperID = id
	return b
}

func (b *BallotBuilder) WithBallotTitle(title string) *BallotBuilder {
	b.ballot.BallotTitle = title
	return b
}

func (b *BallotBuilder) WithPollOpenDate(d time.Time) *BallotBuilder {
	b.ballot.PollOpenDate = models.APIDate{Time: d}
	return b
}

func (b *BallotBuilder) WithElectionID(id string) *BallotBuilder {
	b.ballot.ElectionID = id
	return b
}

func (b *BallotBuilder) WithElectionName(name string) *BallotBuilder {
	b.ballot.ElectionName = name
	return b
}

func (b *BallotBuilder) WithPostName(name string) *BallotBuilder {
	b.ballot.PostName = name
	return b
}

func (b *BallotBuilder) WithElectedRole(role string) *BallotBuilder {
	b.ballot.ElectedRole = role
	return b
}

func (b *BallotBuilder) WithCandidates(candidates []models.Candidate) *BallotBuilder {
	b.ballot.Candidates = candidates
	b.ballot.CandidatesVerified = len(candidates) > 0
	return b
}

func (b *BallotBuilder) WithCancellationReason(reason models.CancellationReason) *BallotBuilder {
	b.ballot.Cancelled = true
	b.ballot.CancellationReason = &reason
	return b
}

func (b *BallotBuilder) WithReplacedBy(ballotPaperID string) *BallotBuilder {
	b.ballot.ReplacedBy = ballotPaperID
	return b
}

func (b *BallotBuilder) Build() models.Ballot {
	return b.ballot
}

// AllCandidates is the stock candidate list used across fixtures.
var AllCandidates = []models.Candidate{
	{Party: models.Party{PartyName: "Liberal Democrat", PartyID: "party:90"}, Person: models.Person{Name: "Fred Foo"}},
	{Party: models.Party{PartyName: "Labour Party", PartyID: "party:53"}, Person: models.Person{Name: "Bar Baz"}},
	{Party: models.Party{PartyName: "Conservative Party", PartyID: "party:52"}, Person: models.Person{Name: "Alice Example"}},
}

func isoDate(d time.Time) string {
	return d.Format(time.DateOnly)
}

// LocalBallot is a stock local council ballot on the given poll date.
func LocalBallot(pollDate time.Time) *BallotBuilder {
	date := isoDate(pollDate)
	return NewBallot().
		WithBallotPaperID(fmt.Sprintf("local.sheffield.ecclesall.%s", date)).
		WithBallotTitle("Sheffield local election Ecclesall").
		WithPollOpenDate(pollDate).
		WithElectionID(fmt.Sprintf("local.sheffield.%s", date)).
		WithElectionName("Sheffield local election").
		WithPostName("Ecclesall").
		WithElectedRole("Local Councillor").
		WithCandidates(AllCandidates)
}

// ParlBallot is a stock UK Parliamentary ballot on the given poll date.
func ParlBallot(pollDate time.Time) *BallotBuilder {
	date := isoDate(pollDate)
	return NewBallot().
		WithBallotPaperID(fmt.Sprintf("parl.hallam.%s", date)).
		WithBallotTitle("UK Parliamentary general election Hallam").
		WithPollOpenDate(pollDate).
		WithElectionID(fmt.Sprintf("parl.%s", date)).
		WithElectionName("UK Parliamentary general election").
		WithPostName("Hallam").
		WithElectedRole("Member of Parliament").
		WithCandidates(AllCandidates)
}

// CityOfLondonLocalBallot is a Common Council ballot, which carries its
// own registration rules.
func CityOfLondonLocalBallot(pollDate time.Time) *BallotBuilder {
	date := isoDate(pollDate)
	return NewBallot().
		WithBallotPaperID(fmt.Sprintf("local.city-of-london.aldersgate.%s", date)).
		WithBallotTitle("City of London local election Aldersgate").
		WithPollOpenDate(pollDate).
		WithElectionID(fmt.Sprintf("local.city-of-london.%s", date)).
		WithElectionName("City of London local election").
		WithPostName("Aldersgate").
		WithElectedRole("Common Councilman").
		WithCandidates(AllCandidates)
}

// CityOfLondonParlBallot is the parliamentary ballot covering the City.
func CityOfLondonParlBallot(pollDate time.Time) *BallotBuilder {
	date := isoDate(pollDate)
	return NewBallot().
		WithBallotPaperID(fmt.Sprintf("parl.cities-of-london-and-westminster.%s", date)).
		WithBallotTitle("UK Parliamentary general election Cities of London and Westminster").
		WithPollOpenDate(pollDate).
		WithElectionID(fmt.Sprintf("parl.%s", date)).
		WithElectionName("UK Parliamentary general election").
		WithPostName("Cities of London and Westminster").
		WithElectedRole("Member of Parliament").
		WithCandidates(AllCandidates)
}

// SeneddBallot is a stock Senedd Cymru ballot.
func SeneddBallot(pollDate time.Time) *BallotBuilder {
	date := isoDate(pollDate)
	return NewBallot().
		WithBallotPaperID(fmt.Sprintf("senedd.gwyr-abertawe.%s", date)).
		WithBallotTitle("Gŵyr Abertawe").
		WithPollOpenDate(pollDate).
		WithElectionID(fmt.Sprintf("senedd.%s", date)).
		WithElectionName("Senedd Cymru elections").
		WithPostName("Gŵyr Abertawe").
		WithElectedRole("Member of the Senedd").
		WithCandidates(AllCandidates)
}

// SPConstituencyBallot is a stock Scottish Parliament constituency ballot.
func SPConstituencyBallot(pollDate time.Time) *BallotBuilder {
	date := isoDate(pollDate)
	return NewBallot().
		WithBallotPaperID(fmt.Sprintf("sp.c.shetland-islands.%s", date)).
		WithBallotTitle("Scottish Parliament elections (Constituencies) Shetland Islands").
		WithPollOpenDate(pollDate).
		WithElectionID(fmt.Sprintf("sp.c.%s", date)).
		WithElectionName("Scottish Parliament elections (Constituencies)").
		WithPostName("Shetland Islands").
		WithElectedRole("Member of the Scottish Parliament").
		WithCandidates(AllCandidates)
}

// RootBuilder assembles a RootModel the same way BallotBuilder does a
// Ballot. Build validates, so fixtures can't violate the response
// invariants silently.
type RootBuilder struct {
	root models.RootModel
}

func NewRoot() *RootBuilder {
	return &RootBuilder{
		root: models.RootModel{
			ElectoralServices: StockElectoralServices(),
		},
	}
}

func (r *RootBuilder) WithAddressPicker(addresses []models.Address) *RootBuilder {
	r.root.AddressPicker = true
	r.root.Addresses = addresses
	return r
}

// WithBallot appends the ballot to the date matching its poll day,
// creating the date entry if needed.
func (r *RootBuilder) WithBallot(ballot models.Ballot) *RootBuilder {
	date := ballot.PollOpenDate.Format(time.DateOnly)
	for i := range r.root.Dates {
		if r.root.Dates[i].Date == date {
			r.root.Dates[i].Ballots = append(r.root.Dates[i].Ballots, ballot)
			return r
		}
	}
	r.root.Dates = append(r.root.Dates, models.Date{
		Date:    date,
		Ballots: []models.Ballot{ballot},
	})
	return r
}

func (r *RootBuilder) WithPollingStation(date string, station models.PollingStation) *RootBuilder {
	for i := range r.root.Dates {
		if r.root.Dates[i].Date == date {
			r.root.Dates[i].PollingStation = station
		}
	}
	return r
}

func (r *RootBuilder) WithElectoralServices(es *models.ElectoralServices) *RootBuilder {
	r.root.ElectoralServices = es
	return r
}

func (r *RootBuilder) WithRegistration(reg *models.Registration) *RootBuilder {
	r.root.Registration = reg
	return r
}

func (r *RootBuilder) Build() (*models.RootModel, error) {
	root := r.root
	if err := root.Validate(); err != nil {
		return nil, err
	}
	return &root, nil
}

// StockElectoralServices is the default council contact used in fixtures.
func StockElectoralServices() *models.ElectoralServices {
	return &models.ElectoralServices{
		CouncilID: "SHF",
		Name:      "Sheffield City Council",
		Nation:    "England",
		Address:   "Town Hall, Pinstone Street, Sheffield",
		Postcode:  "S1 2HH",
		Email:     "elections@sheffield.gov.uk",
		Phone:     "0114 273 4093",
		Website:   "https://www.sheffield.gov.uk/",
	}
}

// StockPollingStation is a known polling station for fixtures.
func StockPollingStation() models.PollingStation {
	return models.PollingStation{
		PollingStationKnown: true,
		Station: &models.Station{
			ID:        "SHF-1",
			StationID: "1",
			Address:   "Ecclesall Church Hall\nRinginglow Road",
			Postcode:  "S11 8YA",
		},
	}
}
