// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package dcapi

import (
	"context"
	"time"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/models"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/responsebuilder"
)

// MockResponse pairs a canned response with a human description for the
// debug index.
type MockResponse struct {
	Description string
	Build       func(baseline time.Time) (*models.RootModel, error)
}

// MockPostcodes maps made-up postcodes to canned responses. Fixture poll
// dates float relative to the baseline, so every timetable stage can be
// reached by shifting the baseline back in time.
var MockPostcodes = map[string]MockResponse{
	"AA11AA": {
		Description: "No upcoming ballots",
		Build:       responsebuilder.NoUpcoming,
	},
	"AA12AA": {
		Description: "One upcoming ballot, station known, with candidates",
		Build:       responsebuilder.SingleLocalFutureBallot,
	},
	"AA12AB": {
		Description: "One upcoming ballot, station not known, with candidates",
		Build:       responsebuilder.SingleLocalBallotNoStation,
	},
	"AA13AA": {
		Description: "Split postcode; we show the user an address picker",
		Build:       responsebuilder.AddressPicker,
	},
	"AA14AA": {
		Description: "Four ballots across three dates with a cancellation",
		Build:       responsebuilder.MultipleDatesWithCancellation,
	},
	"AA16AA": {
		Description: "City of London and parliamentary ballots on the same day",
		Build:       responsebuilder.CityOfLondonAndParlSameDay,
	},
	"AA16AB": {
		Description: "City of London and parliamentary ballots on different days",
		Build:       responsebuilder.CityOfLondonAndParlDifferentDays,
	},
	"EH11YJ": {
		Description: "Scotland; two ballots, registration contact differs from electoral services",
		Build:       responsebuilder.ScotlandSplitContacts,
	},
	"AA17AA": {
		Description: "Cancelled ballot, equal candidates (uncontested)",
		Build: func(baseline time.Time) (*models.RootModel, error) {
			return responsebuilder.CancelledBallot(baseline, models.ReasonEqualCandidates)
		},
	},
	"AA17AB": {
		Description: "Cancelled ballot, no candidates (postponed)",
		Build: func(baseline time.Time) (*models.RootModel, error) {
			return responsebuilder.CancelledBallot(baseline, models.ReasonNoCandidates)
		},
	},
}

// MockBackend serves canned responses in-process. One is built per
// request so the baseline can come from the query string.
type MockBackend struct {
	Baseline time.Time
}

func NewMockBackend(baseline time.Time) *MockBackend {
	return &MockBackend{Baseline: baseline}
}

func (m *MockBackend) URLPrefix() string {
	return "mock"
}

func (m *MockBackend) GetPostcode(_ context.Context, postcode string) (*models.RootModel, error) {
	entry, ok := MockPostcodes[NormalizePostcode(postcode)]
	if !ok {
		return nil, &InvalidPostcodeError{Postcode: postcode}
	}
	return entry.Build(m.baseline())
}

func (m *MockBackend) GetUPRN(_ context.Context, uprn string) (*models.RootModel, error) {
	// All mock addresses resolve to the single-ballot response.
	if uprn == "" {
		return nil, &InvalidUPRNError{UPRN: uprn}
	}
	return responsebuilder.SingleLocalFutureBallot(m.baseline())
}

func (m *MockBackend) baseline() time.Time {
	if m.Baseline.IsZero() {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return m.Baseline
}
