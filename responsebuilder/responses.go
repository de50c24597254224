// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package responsebuilder

import (
	"time"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/models"
)

// Canned responses for the mock backend and the sandbox postcode table.
// Each takes a baseline date so every timetable stage is reachable from
// the debug page by shifting the baseline.

// NoUpcoming is a response with contact details but no elections.
func NoUpcoming(time.Time) (*models.RootModel, error) {
	return NewRoot().Build()
}

// SingleLocalFutureBallot is one uncancelled local ballot with a known
// polling station, polling 20 days after the baseline.
func SingleLocalFutureBallot(baseline time.Time) (*models.RootModel, error) {
	pollDate := baseline.AddDate(0, 0, 20)
	return NewRoot().
		WithBallot(LocalBallot(pollDate).Build()).
		WithPollingStation(pollDate.Format(time.DateOnly), StockPollingStation()).
		Build()
}

// SingleLocalBallotNoStation is the same ballot without station data.
func SingleLocalBallotNoStation(baseline time.Time) (*models.RootModel, error) {
	pollDate := baseline.AddDate(0, 0, 20)
	return NewRoot().
		WithBallot(LocalBallot(pollDate).Build()).
		Build()
}

// CancelledBallot is a single ballot cancelled for the given reason.
func CancelledBallot(baseline time.Time, reason models.CancellationReason) (*models.RootModel, error) {
	pollDate := baseline.AddDate(0, 0, 20)
	return NewRoot().
		WithBallot(LocalBallot(pollDate).WithCancellationReason(reason).Build()).
		Build()
}

// MultipleDatesWithCancellation mirrors the classic sandbox case: a
// mayoral and a cancelled local ballot on one date, the rescheduled local
// a week later, and a parliamentary by-election further out.
func MultipleDatesWithCancellation(baseline time.Time) (*models.RootModel, error) {
	first := baseline.AddDate(0, 0, 10)
	second := baseline.AddDate(0, 0, 17)
	third := baseline.AddDate(0, 0, 52)

	cancelled := LocalBallot(first).
		WithCancellationReason(models.ReasonCandidateDeath).
		WithReplacedBy("local.sheffield.ecclesall." + second.Format(time.DateOnly)).
		Build()

	mayoral := NewBallot().
		WithBallotPaperID("mayor.sheffield-city-region." + first.Format(time.DateOnly)).
		WithBallotTitle("Sheffield City Region mayoral election").
		WithPollOpenDate(first).
		WithElectionID("mayor." + first.Format(time.DateOnly)).
		WithElectionName("Mayoral election").
		WithPostName("Sheffield City Region").
		WithElectedRole("Mayor").
		WithCandidates(AllCandidates).
		Build()

	return NewRoot().
		WithBallot(mayoral).
		WithBallot(cancelled).
		WithBallot(LocalBallot(second).Build()).
		WithBallot(ParlBallot(third).WithCandidates(nil).Build()).
		WithPollingStation(first.Format(time.DateOnly), StockPollingStation()).
		Build()
}

// CityOfLondonAndParlSameDay holds a Common Council and a parliamentary
// ballot on one date, so both registration variants apply at once.
func CityOfLondonAndParlSameDay(baseline time.Time) (*models.RootModel, error) {
	pollDate := baseline.AddDate(0, 0, 20)
	return NewRoot().
		WithBallot(CityOfLondonLocalBallot(pollDate).Build()).
		WithBallot(CityOfLondonParlBallot(pollDate).Build()).
		Build()
}

// CityOfLondonAndParlDifferentDays splits the two ballots across dates.
func CityOfLondonAndParlDifferentDays(baseline time.Time) (*models.RootModel, error) {
	return NewRoot().
		WithBallot(CityOfLondonLocalBallot(baseline.AddDate(0, 0, 20)).Build()).
		WithBallot(CityOfLondonParlBallot(baseline.AddDate(0, 0, 48)).Build()).
		Build()
}

// ScotlandSplitContacts is a Scottish response where the registration
// contact (a valuation joint board) differs from electoral services. Two
// ballots share the poll date so the page gets a table of contents.
func ScotlandSplitContacts(baseline time.Time) (*models.RootModel, error) {
	pollDate := baseline.AddDate(0, 0, 20)
	es := &models.ElectoralServices{
		CouncilID: "EDH",
		Name:      "City of Edinburgh Council",
		Nation:    "Scotland",
		Address:   "City Chambers, High Street, Edinburgh",
		Postcode:  "EH1 1YJ",
		Email:     "elections@edinburgh.gov.uk",
		Phone:     "0131 200 2000",
		Website:   "https://www.edinburgh.gov.uk/",
	}
	reg := &models.Registration{
		Address:  "Lothian Valuation Joint Board, 17a South Gyle Crescent, Edinburgh",
		Postcode: "EH12 9FL",
		Email:    "register@lothian-vjb.gov.uk",
		Phone:    "0131 344 2500",
		Website:  "https://www.lothian-vjb.gov.uk/",
	}
	local := NewBallot().
		WithBallotPaperID("local.city-of-edinburgh.city-centre." + isoDate(pollDate)).
		WithBallotTitle("City of Edinburgh local election City Centre").
		WithPollOpenDate(pollDate).
		WithElectionID("local.city-of-edinburgh." + isoDate(pollDate)).
		WithElectionName("City of Edinburgh local election").
		WithPostName("City Centre").
		WithElectedRole("Local Councillor").
		WithCandidates(AllCandidates).
		Build()
	return NewRoot().
		WithElectoralServices(es).
		WithRegistration(reg).
		WithBallot(SPConstituencyBallot(pollDate).Build()).
		WithBallot(local).
		Build()
}

// AddressPicker is a split postcode needing an address choice.
func AddressPicker(time.Time) (*models.RootModel, error) {
	return NewRoot().
		WithAddressPicker([]models.Address{
			{Address: "1 High Street", Postcode: "AA1 3AA", Slug: "10035187881"},
			{Address: "2 High Street", Postcode: "AA1 3AA", Slug: "10035187882"},
			{Address: "3 High Street", Postcode: "AA1 3AA", Slug: "10035187883"},
		}).
		Build()
}
