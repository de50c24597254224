// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package sorter

import (
	"testing"
	"time"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/i18n"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/models"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/responsebuilder"
)

// A Friday with no nearby bank holidays. Fixture poll dates float
// relative to it, so these tests are deterministic.
var baseline = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func mustSorter(t *testing.T, root *models.RootModel, mode Mode, current time.Time) *Sorter {
	t.Helper()
	s, err := New(root, mode, current)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNoUpcoming(t *testing.T) {
	root, err := responsebuilder.NoUpcoming(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	s := mustSorter(t, root, UpcomingElections, baseline)

	if got := s.ResponseType(); got != ResponseNoUpcoming {
		t.Errorf("ResponseType = %s", got)
	}
	name, err := s.MainTemplateName()
	if err != nil {
		t.Fatalf("MainTemplateName: %v", err)
	}
	if name != "results_no_upcoming.html" {
		t.Errorf("template = %s", name)
	}
	if got := s.PageTitle(i18n.En); got != "You don't have any upcoming elections" {
		t.Errorf("PageTitle = %q", got)
	}
}

func TestSingleBallot(t *testing.T) {
	root, err := responsebuilder.SingleLocalFutureBallot(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	s := mustSorter(t, root, UpcomingElections, baseline)

	if got := s.ResponseType(); got != ResponseOneCurrentBallot {
		t.Fatalf("ResponseType = %s", got)
	}
	name, _ := s.MainTemplateName()
	if name != "results_one_ballot.html" {
		t.Errorf("template = %s", name)
	}
	if got := s.PageTitle(i18n.En); got != "You have an upcoming election" {
		t.Errorf("PageTitle = %q", got)
	}
	if toc := s.TOCItems(i18n.En); toc != nil {
		t.Errorf("TOCItems = %v, want nil for a single ballot", toc)
	}
}

// Twenty days out the deadlines are open, so registration renders first,
// then postal votes, then the ballots, then the station.
func TestSectionOrderDeadlinesOpen(t *testing.T) {
	root, err := responsebuilder.SingleLocalFutureBallot(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	s := mustSorter(t, root, UpcomingElections, baseline)

	want := []string{
		"section_registration.html",
		"section_postal_votes.html",
		"section_ballots.html",
		"section_polling_station.html",
	}
	assertSectionOrder(t, s.Dates[0], want)
}

// Registration closes on 5 March for a 21 March poll; postal applications
// stay open through the 6th. In between, postal votes lead and the closed
// registration section drops to the bottom.
func TestSectionOrderBetweenDeadlines(t *testing.T) {
	root, err := responsebuilder.SingleLocalFutureBallot(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	betweenDeadlines := baseline.AddDate(0, 0, 5)
	s := mustSorter(t, root, UpcomingElections, betweenDeadlines)

	want := []string{
		"section_postal_votes.html",
		"section_ballots.html",
		"section_polling_station.html",
		"section_registration.html",
	}
	assertSectionOrder(t, s.Dates[0], want)
}

// The day before the poll every deadline has passed and the polling
// station jumps to the top.
func TestSectionOrderNearPoll(t *testing.T) {
	root, err := responsebuilder.SingleLocalFutureBallot(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	dayBefore := baseline.AddDate(0, 0, 19)
	s := mustSorter(t, root, UpcomingElections, dayBefore)

	want := []string{
		"section_polling_station.html",
		"section_ballots.html",
		"section_registration.html",
		"section_postal_votes.html",
	}
	assertSectionOrder(t, s.Dates[0], want)
}

func assertSectionOrder(t *testing.T, ds *DateSorter, want []string) {
	t.Helper()
	if len(ds.Sections) != len(want) {
		t.Fatalf("got %d sections, want %d", len(ds.Sections), len(want))
	}
	for i, name := range want {
		if got := ds.Sections[i].TemplateName(); got != name {
			t.Errorf("section %d = %s, want %s", i, got, name)
		}
	}
	for i := 1; i < len(ds.Sections); i++ {
		if ds.Sections[i].Weight() < ds.Sections[i-1].Weight() {
			t.Errorf("sections not sorted ascending at %d", i)
		}
	}
}

func TestPastDatesAreFiltered(t *testing.T) {
	root, err := responsebuilder.SingleLocalFutureBallot(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	afterPoll := baseline.AddDate(0, 0, 21)
	s := mustSorter(t, root, UpcomingElections, afterPoll)

	if got := s.ResponseType(); got != ResponseNoUpcoming {
		t.Errorf("ResponseType = %s, want NO_UPCOMING after the poll", got)
	}
}

func TestPollDayIsRetained(t *testing.T) {
	root, err := responsebuilder.SingleLocalFutureBallot(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	pollDay := baseline.AddDate(0, 0, 20)
	s := mustSorter(t, root, UpcomingElections, pollDay)

	if got := s.ResponseType(); got != ResponseOneCurrentBallot {
		t.Fatalf("ResponseType = %s", got)
	}
	if got := s.PageTitle(i18n.En); got != "You have an election today" {
		t.Errorf("PageTitle = %q", got)
	}
	if got := s.PageTitle(i18n.Cy); got != "Mae gennych etholiad heddiw" {
		t.Errorf("Welsh PageTitle = %q", got)
	}
}

func TestCancelledUncontested(t *testing.T) {
	root, err := responsebuilder.CancelledBallot(baseline, models.ReasonEqualCandidates)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	s := mustSorter(t, root, UpcomingElections, baseline)

	if !s.AllCancelled() {
		t.Fatal("AllCancelled = false")
	}
	if got := s.PageTitle(i18n.En); got != "Uncontested election" {
		t.Errorf("PageTitle = %q", got)
	}
	// Cancelled dates carry the ballots section only; there is nothing
	// actionable to register or apply for.
	if got := len(s.Dates[0].Sections); got != 1 {
		t.Errorf("cancelled date has %d sections, want 1", got)
	}
}

func TestCancelledPostponed(t *testing.T) {
	root, err := responsebuilder.CancelledBallot(baseline, models.ReasonNoCandidates)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	s := mustSorter(t, root, UpcomingElections, baseline)

	if got := s.PageTitle(i18n.En); got != "Postponed election" {
		t.Errorf("PageTitle = %q", got)
	}
	if got := s.PageTitle(i18n.Cy); got != "Etholiad Wedi'i ohirio" {
		t.Errorf("Welsh PageTitle = %q", got)
	}
}

func TestMultipleDates(t *testing.T) {
	root, err := responsebuilder.MultipleDatesWithCancellation(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	s := mustSorter(t, root, UpcomingElections, baseline)

	if got := s.ResponseType(); got != ResponseMultipleDates {
		t.Fatalf("ResponseType = %s", got)
	}
	if len(s.Dates) != 3 {
		t.Fatalf("got %d dates, want 3", len(s.Dates))
	}
	if s.AllCancelled() {
		t.Error("AllCancelled = true with live ballots present")
	}

	// Only the first upcoming date gets a polling station section.
	for i, ds := range s.Dates {
		hasStation := false
		for _, sec := range ds.Sections {
			if _, ok := sec.(*PollingStationSection); ok {
				hasStation = true
			}
		}
		if want := i == 0; hasStation != want {
			t.Errorf("date %d polling station section = %v, want %v", i, hasStation, want)
		}
	}

	toc := s.TOCItems(i18n.En)
	// Three date entries plus the council contact entry.
	if len(toc) != 4 {
		t.Fatalf("got %d toc entries, want 4", len(toc))
	}
	if toc[len(toc)-1].Anchor != "electoral-services" {
		t.Errorf("last toc anchor = %s", toc[len(toc)-1].Anchor)
	}
	for _, item := range toc[:3] {
		if len(item.Sub) == 0 {
			t.Errorf("date entry %q has no sub entries", item.Label)
		}
	}
}

func TestCityOfLondonSameDay(t *testing.T) {
	root, err := responsebuilder.CityOfLondonAndParlSameDay(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	s := mustSorter(t, root, UpcomingElections, baseline)

	if got := s.ResponseType(); got != ResponseOneCurrentDate {
		t.Fatalf("ResponseType = %s", got)
	}
	ds := s.Dates[0]
	if ds.Timetable == nil || ds.CityTimetable == nil {
		t.Fatal("expected split timetables for a mixed-jurisdiction date")
	}

	var regIdx, cityRegIdx = -1, -1
	for i, sec := range ds.Sections {
		switch sec.(type) {
		case *RegistrationSection:
			regIdx = i
		case *CityOfLondonRegistrationSection:
			cityRegIdx = i
		}
	}
	if regIdx == -1 || cityRegIdx == -1 {
		t.Fatal("expected both registration sections")
	}
	if cityRegIdx < regIdx {
		t.Error("City of London registration rendered before the standard section")
	}
}

func TestScotlandSplitContacts(t *testing.T) {
	root, err := responsebuilder.ScotlandSplitContacts(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	s := mustSorter(t, root, UpcomingElections, baseline)

	if got := s.ResponseType(); got != ResponseOneCurrentDate {
		t.Fatalf("ResponseType = %s", got)
	}
	if s.Country.String() != "Scotland" {
		t.Errorf("Country = %s", s.Country)
	}
	if got := s.Dates[0].ParishTextKey; got != "parish.scotland" {
		t.Errorf("ParishTextKey = %q", got)
	}

	toc := s.TOCItems(i18n.En)
	if len(toc) < 2 {
		t.Fatalf("toc too short: %v", toc)
	}
	if toc[len(toc)-2].Anchor != "electoral-registration" {
		t.Errorf("expected electoral-registration entry before the council entry, got %v", toc)
	}
	if toc[len(toc)-1].Anchor != "electoral-services" {
		t.Errorf("expected the council entry last, got %v", toc)
	}
}

func TestContactDetailsMode(t *testing.T) {
	root, err := responsebuilder.SingleLocalFutureBallot(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	s := mustSorter(t, root, ContactDetails, baseline)

	if got := s.ResponseType(); got != ResponseContactDetails {
		t.Errorf("ResponseType = %s", got)
	}
	name, _ := s.MainTemplateName()
	if name != "results_contact_details.html" {
		t.Errorf("template = %s", name)
	}
	if got := s.PageTitle(i18n.En); got != "Contact details" {
		t.Errorf("PageTitle = %q", got)
	}
}

func TestUnknownNationFails(t *testing.T) {
	root, err := responsebuilder.NewRoot().
		WithBallot(responsebuilder.LocalBallot(baseline.AddDate(0, 0, 20)).Build()).
		WithElectoralServices(&models.ElectoralServices{CouncilID: "XXX", Nation: "Atlantis"}).
		Build()
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	if _, err := New(root, UpcomingElections, baseline); err == nil {
		t.Fatal("want error for unknown nation")
	}
}

func TestHasParlBallots(t *testing.T) {
	single, err := responsebuilder.SingleLocalFutureBallot(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	s := mustSorter(t, single, UpcomingElections, baseline)
	if s.HasParlBallots() {
		t.Error("local-only response reports parl ballots")
	}

	mixed, err := responsebuilder.CityOfLondonAndParlSameDay(baseline)
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}
	s = mustSorter(t, mixed, UpcomingElections, baseline)
	if !s.HasParlBallots() {
		t.Error("mixed response misses parl ballots")
	}
}

// Classification must stay total over every canned response at any
// reference date.
func TestEveryFixtureClassifies(t *testing.T) {
	fixtures := map[string]func(time.Time) (*models.RootModel, error){
		"no_upcoming":    responsebuilder.NoUpcoming,
		"single":         responsebuilder.SingleLocalFutureBallot,
		"no_station":     responsebuilder.SingleLocalBallotNoStation,
		"multiple":       responsebuilder.MultipleDatesWithCancellation,
		"city_same_day":  responsebuilder.CityOfLondonAndParlSameDay,
		"city_diff_days": responsebuilder.CityOfLondonAndParlDifferentDays,
		"scotland":       responsebuilder.ScotlandSplitContacts,
		"address_picker": responsebuilder.AddressPicker,
	}
	offsets := []int{-30, 0, 10, 19, 20, 21, 60}

	for name, build := range fixtures {
		root, err := build(baseline)
		if err != nil {
			t.Fatalf("%s: building fixture: %v", name, err)
		}
		for _, off := range offsets {
			s, err := New(root, UpcomingElections, baseline.AddDate(0, 0, off))
			if err != nil {
				t.Fatalf("%s at %+d days: %v", name, off, err)
			}
			if _, err := s.MainTemplateName(); err != nil {
				t.Errorf("%s at %+d days: %v", name, off, err)
			}
		}
	}
}

func TestCancellationSuffix(t *testing.T) {
	equal := models.ReasonEqualCandidates
	death := models.ReasonCandidateDeath

	tests := []struct {
		name   string
		ballot models.Ballot
		want   string
	}{
		{"live", models.Ballot{}, ""},
		{"no reason", models.Ballot{Cancelled: true}, " (postponed)"},
		{"uncontested", models.Ballot{Cancelled: true, CancellationReason: &equal}, " (uncontested)"},
		{"death", models.Ballot{Cancelled: true, CancellationReason: &death}, " (postponed)"},
	}
	for _, tc := range tests {
		if got := CancellationSuffix(i18n.En, tc.ballot); got != tc.want {
			t.Errorf("%s: suffix = %q, want %q", tc.name, got, tc.want)
		}
	}
}
