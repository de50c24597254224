// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package sorter

import (
	"time"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/i18n"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/models"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/timetable"
)

// Section is one renderable fragment of a results page. Sections for a
// date are sorted ascending by weight: lower weight renders first.
type Section interface {
	Weight() int
	TemplateName() string
	TOCID() string
	TOCLabel(loc i18n.Locale) string
	Context() map[string]any
}

// One signed convention throughout: the more actionable a section is
// right now, the lower (more negative) its weight.
const (
	weightPollingStationSoon = -7000 // poll within three days
	weightRegistrationOpen   = -6000
	weightPostalVotesOpen    = -4000
	weightBallotsNominated   = -1000 // candidate list published
	weightNeutral            = 0
	weightBallotsPending     = 1000 // before the candidate list
	weightDeadlinePassed     = 1001
)

// Weight offset distinguishing the City of London registration section
// when it coexists with the standard one on a mixed date.
const cityOfLondonOffset = 1

const pollingStationPromotionDays = 3

// BallotsSection lists the date's ballots, including cancelled ones so
// the cancellation wording is shown.
type BallotsSection struct {
	date          *models.Date
	tt            *timetable.Timetable
	current       time.Time
	parishTextKey string
}

func (s *BallotsSection) Weight() int {
	if s.tt == nil {
		return weightNeutral
	}
	if s.tt.IsBefore(timetable.SOPNPublishDate, s.current) {
		return weightBallotsPending
	}
	return weightBallotsNominated
}

func (s *BallotsSection) TemplateName() string { return "section_ballots.html" }

func (s *BallotsSection) TOCID() string {
	return "ballots-" + s.date.Date
}

func (s *BallotsSection) TOCLabel(loc i18n.Locale) string {
	return i18n.T(loc, "toc.ballots")
}

func (s *BallotsSection) Context() map[string]any {
	candidatesKnown := s.tt != nil && !s.tt.IsBefore(timetable.SOPNPublishDate, s.current)
	ctx := map[string]any{
		"ballots":          s.date.Ballots,
		"candidates_known": candidatesKnown,
		"parish_text_key":  s.parishTextKey,
	}
	if s.tt != nil {
		ctx["sopn_publish_date"] = s.tt.Date(timetable.SOPNPublishDate)
	}
	return ctx
}

// RegistrationSection tells the user how and by when to register.
type RegistrationSection struct {
	tt      *timetable.Timetable
	current time.Time
}

// Open reports whether registration is still actionable. The deadline day
// itself counts as open: applications close at the end of that day.
func (s *RegistrationSection) Open() bool {
	return !s.tt.IsAfter(timetable.RegistrationDeadline, s.current)
}

func (s *RegistrationSection) Weight() int {
	if s.Open() {
		return weightRegistrationOpen
	}
	return weightDeadlinePassed
}

func (s *RegistrationSection) TemplateName() string { return "section_registration.html" }

func (s *RegistrationSection) TOCID() string { return "registration" }

func (s *RegistrationSection) TOCLabel(loc i18n.Locale) string {
	return i18n.T(loc, "toc.registration")
}

func (s *RegistrationSection) Context() map[string]any {
	return map[string]any{
		"deadline": s.tt.Date(timetable.RegistrationDeadline),
		"open":     s.Open(),
	}
}

// CityOfLondonRegistrationSection mirrors RegistrationSection for City of
// London ballots, whose eligibility rules and deadline differ. Both can
// appear on one date when its ballots span jurisdictions.
type CityOfLondonRegistrationSection struct {
	tt      *timetable.Timetable
	current time.Time
}

func (s *CityOfLondonRegistrationSection) Open() bool {
	return !s.tt.IsAfter(timetable.RegistrationDeadline, s.current)
}

func (s *CityOfLondonRegistrationSection) Weight() int {
	if s.Open() {
		return weightRegistrationOpen + cityOfLondonOffset
	}
	return weightDeadlinePassed + cityOfLondonOffset
}

func (s *CityOfLondonRegistrationSection) TemplateName() string {
	return "section_city_of_london_registration.html"
}

func (s *CityOfLondonRegistrationSection) TOCID() string {
	return "city-of-london-registration"
}

func (s *CityOfLondonRegistrationSection) TOCLabel(loc i18n.Locale) string {
	return i18n.T(loc, "toc.city_of_london_registration")
}

func (s *CityOfLondonRegistrationSection) Context() map[string]any {
	return map[string]any{
		"deadline": s.tt.Date(timetable.RegistrationDeadline),
		"open":     s.Open(),
	}
}

// PostalVotesSection covers the postal vote application window, plus the
// council's dispatch dates when we know them.
type PostalVotesSection struct {
	tt            *timetable.Timetable
	current       time.Time
	dispatchDates []time.Time
}

func (s *PostalVotesSection) Open() bool {
	return !s.tt.IsAfter(timetable.PostalVoteApplicationDeadline, s.current)
}

func (s *PostalVotesSection) Weight() int {
	if s.Open() {
		return weightPostalVotesOpen
	}
	return weightDeadlinePassed
}

func (s *PostalVotesSection) TemplateName() string { return "section_postal_votes.html" }

func (s *PostalVotesSection) TOCID() string { return "postal-votes" }

func (s *PostalVotesSection) TOCLabel(loc i18n.Locale) string {
	return i18n.T(loc, "toc.postal_votes")
}

func (s *PostalVotesSection) Context() map[string]any {
	ctx := map[string]any{
		"deadline": s.tt.Date(timetable.PostalVoteApplicationDeadline),
		"open":     s.Open(),
	}
	if len(s.dispatchDates) > 0 {
		ctx["dispatch_dates"] = s.dispatchDates
	}
	return ctx
}

// PollingStationSection shows where to vote. Only the first upcoming date
// gets one, and it jumps to the top of the page as the poll approaches.
type PollingStationSection struct {
	date     *models.Date
	pollDate time.Time
	current  time.Time
}

func (s *PollingStationSection) Weight() int {
	if s.pollDate.Before(s.current) {
		return weightBallotsPending
	}
	if s.pollDate.AddDate(0, 0, -pollingStationPromotionDays).Before(s.current) {
		return weightPollingStationSoon
	}
	return weightNeutral
}

func (s *PollingStationSection) TemplateName() string { return "section_polling_station.html" }

func (s *PollingStationSection) TOCID() string { return "polling-station" }

func (s *PollingStationSection) TOCLabel(loc i18n.Locale) string {
	return i18n.T(loc, "toc.polling_station")
}

func (s *PollingStationSection) Context() map[string]any {
	return map[string]any{
		"polling_station": s.date.PollingStation,
		"poll_date":       s.pollDate,
		"days_to_poll":    int(s.pollDate.Sub(s.current).Hours() / 24),
	}
}

// CancellationSuffix is the label suffix for a cancelled ballot, e.g.
// " (postponed)". Unknown reasons get no suffix rather than a wrong one.
func CancellationSuffix(loc i18n.Locale, b models.Ballot) string {
	if !b.Cancelled {
		return ""
	}
	if b.CancellationReason == nil {
		return i18n.T(loc, "cancellation.suffix_postponed")
	}
	switch *b.CancellationReason {
	case models.ReasonEqualCandidates:
		return i18n.T(loc, "cancellation.suffix_uncontested")
	case models.ReasonNoCandidates, models.ReasonCandidateDeath, models.ReasonUnderContested:
		return i18n.T(loc, "cancellation.suffix_postponed")
	}
	return ""
}
