// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package sorter

import (
	"fmt"
	"strings"
	"time"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/i18n"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/models"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/postalvotes"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/timetable"
)

// Mode selects what the caller wants rendered from a response.
type Mode int

const (
	UpcomingElections Mode = iota
	ContactDetails
)

// ResponseType classifies a response; it drives the page template, the
// title and the table of contents.
type ResponseType int

const (
	ResponseNoUpcoming ResponseType = iota
	ResponseOneCurrentBallot
	ResponseOneCurrentDate
	ResponseMultipleDates
	ResponseContactDetails
)

func (t ResponseType) String() string {
	switch t {
	case ResponseNoUpcoming:
		return "NO_UPCOMING"
	case ResponseOneCurrentBallot:
		return "ONE_CURRENT_BALLOT"
	case ResponseOneCurrentDate:
		return "ONE_CURRENT_DATE"
	case ResponseMultipleDates:
		return "MULTIPLE_DATES"
	case ResponseContactDetails:
		return "CONTACT_DETAILS"
	}
	return fmt.Sprintf("ResponseType(%d)", int(t))
}

// InvalidResponseTypeError flags a response type outside the closed set.
// It should be unreachable; it exists so the failure is identifiable if
// the set ever grows without the template map keeping up.
type InvalidResponseTypeError struct {
	ResponseType ResponseType
}

func (e *InvalidResponseTypeError) Error() string {
	return fmt.Sprintf("no template for response type %s", e.ResponseType)
}

// TOCItem is one table of contents entry. Anchor matches the id rendered
// on the target element.
type TOCItem struct {
	Label  string
	Anchor string
	Sub    []TOCItem
}

// Sorter classifies a full API response for one reference date and holds
// a DateSorter per retained (future or today) poll date. It is built per
// request and never mutated afterwards.
type Sorter struct {
	Root    *models.RootModel
	Mode    Mode
	Current time.Time
	Country timetable.Country
	Dates   []*DateSorter
}

// New builds a Sorter. current is truncated to a date; the zero value
// means today. Timetable resolution failures propagate: a ballot id we
// can't parse is a data error we want surfaced, not hidden.
func New(root *models.RootModel, mode Mode, current time.Time) (*Sorter, error) {
	if current.IsZero() {
		current = time.Now()
	}
	current = time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, time.UTC)

	country := timetable.England
	if root.ElectoralServices != nil {
		// A missing electoral_services block defaults to England; an
		// unrecognized nation does not.
		var err error
		country, err = timetable.CountryFromNation(root.ElectoralServices.Nation)
		if err != nil {
			return nil, err
		}
	}

	s := &Sorter{
		Root:    root,
		Mode:    mode,
		Current: current,
		Country: country,
	}

	for _, date := range root.Dates {
		if date.PollDate().Before(current) {
			continue
		}
		d := date
		params := dateSorterParams{
			country:       country,
			current:       current,
			firstUpcoming: len(s.Dates) == 0,
			londonBorough: s.londonBorough(),
		}
		if d.PollDate().Equal(postalvotes.CycleDate) && root.ElectoralServices != nil {
			params.dispatchDates = postalvotes.DispatchDates(root.ElectoralServices.CouncilID)
		}
		ds, err := newDateSorter(&d, params)
		if err != nil {
			return nil, err
		}
		s.Dates = append(s.Dates, ds)
	}
	return s, nil
}

// londonBorough detects a London borough council from its GSS code
// (E09...). The parish disclaimer doesn't apply there.
func (s *Sorter) londonBorough() bool {
	es := s.Root.ElectoralServices
	if es == nil {
		return false
	}
	if strings.HasPrefix(es.CouncilID, "E09") {
		return true
	}
	for _, id := range es.IDs {
		if strings.HasPrefix(id, "E09") {
			return true
		}
	}
	return false
}

func (s *Sorter) TotalBallotCount() int {
	n := 0
	for _, ds := range s.Dates {
		n += ds.BallotCount()
	}
	return n
}

// AllCancelled is true when there is at least one retained date and every
// ballot on every one of them is cancelled.
func (s *Sorter) AllCancelled() bool {
	if len(s.Dates) == 0 {
		return false
	}
	for _, ds := range s.Dates {
		if !ds.AllCancelled() {
			return false
		}
	}
	return true
}

// CancellationReasons is the union of reasons across retained dates, in
// order of first appearance.
func (s *Sorter) CancellationReasons() []models.CancellationReason {
	var reasons []models.CancellationReason
	seen := map[models.CancellationReason]bool{}
	for _, ds := range s.Dates {
		for _, r := range ds.CancellationReasons() {
			if !seen[r] {
				seen[r] = true
				reasons = append(reasons, r)
			}
		}
	}
	return reasons
}

// ResponseType classifies the response. Precedence matters: contact
// details mode wins outright, then the retained date count decides.
func (s *Sorter) ResponseType() ResponseType {
	if s.Mode == ContactDetails {
		return ResponseContactDetails
	}
	switch {
	case len(s.Dates) == 0:
		return ResponseNoUpcoming
	case len(s.Dates) == 1 && s.Dates[0].BallotCount() == 1:
		return ResponseOneCurrentBallot
	case len(s.Dates) == 1:
		return ResponseOneCurrentDate
	}
	return ResponseMultipleDates
}

// MainTemplateName maps the response type to its page template.
func (s *Sorter) MainTemplateName() (string, error) {
	switch s.ResponseType() {
	case ResponseContactDetails:
		return "results_contact_details.html", nil
	case ResponseNoUpcoming:
		return "results_no_upcoming.html", nil
	case ResponseOneCurrentBallot:
		return "results_one_ballot.html", nil
	case ResponseOneCurrentDate:
		return "results_one_current.html", nil
	case ResponseMultipleDates:
		return "results_multiple_dates.html", nil
	}
	return "", &InvalidResponseTypeError{ResponseType: s.ResponseType()}
}

// PageTitle is the page's H1.
func (s *Sorter) PageTitle(loc i18n.Locale) string {
	if s.Mode == ContactDetails {
		return i18n.T(loc, "title.contact_details")
	}
	if len(s.Dates) == 0 {
		return i18n.T(loc, "title.no_upcoming")
	}
	if s.AllCancelled() {
		return s.cancelledTitle(loc)
	}
	if s.Dates[0].PollDate.Equal(s.Current) {
		if s.TotalBallotCount() == 1 {
			return i18n.T(loc, "title.election_today")
		}
		return i18n.T(loc, "title.elections_today")
	}
	if s.ResponseType() == ResponseOneCurrentBallot {
		return i18n.T(loc, "title.one_upcoming")
	}
	return i18n.T(loc, "title.multiple_upcoming")
}

// cancelledTitle combines verbs from the cancellation reason union:
// equal candidates reads as uncontested, everything else (and no recorded
// reason at all) as postponed.
func (s *Sorter) cancelledTitle(loc i18n.Locale) string {
	var uncontested, postponed bool
	for _, r := range s.CancellationReasons() {
		if r.Uncontested() {
			uncontested = true
		} else {
			postponed = true
		}
	}
	if !uncontested && !postponed {
		postponed = true
	}

	var verbs []string
	if uncontested {
		verbs = append(verbs, i18n.T(loc, "cancellation.uncontested"))
	}
	if postponed {
		verbs = append(verbs, i18n.T(loc, "cancellation.postponed"))
	}
	verb := strings.Join(verbs, " "+i18n.T(loc, "and")+" ")

	if s.TotalBallotCount() > 1 {
		return i18n.T(loc, "title.cancelled_many", verb)
	}
	return i18n.T(loc, "title.cancelled_one", verb)
}

// TOCItems builds the table of contents, or nil when the page is short
// enough not to need one.
func (s *Sorter) TOCItems(loc i18n.Locale) []TOCItem {
	if s.ResponseType() == ResponseOneCurrentBallot {
		return nil
	}

	var items []TOCItem
	switch s.ResponseType() {
	case ResponseOneCurrentDate:
		items = s.Dates[0].tocItems(loc)
	case ResponseMultipleDates:
		for _, ds := range s.Dates {
			items = append(items, TOCItem{
				Label:  i18n.FormatDate(loc, ds.PollDate),
				Anchor: "date-" + ds.Data.Date,
				Sub:    ds.tocItems(loc),
			})
		}
	}

	if s.Root.Registration != nil && !s.Root.Registration.SameAddress(s.Root.ElectoralServices) {
		items = append(items, TOCItem{
			Label:  i18n.T(loc, "toc.electoral_registration"),
			Anchor: "electoral-registration",
		})
	}
	items = append(items, TOCItem{
		Label:  i18n.T(loc, "toc.your_local_council"),
		Anchor: "electoral-services",
	})
	return items
}

func (ds *DateSorter) tocItems(loc i18n.Locale) []TOCItem {
	var items []TOCItem
	for _, section := range ds.Sections {
		if _, ok := section.(*BallotsSection); ok {
			for _, b := range ds.Data.Ballots {
				items = append(items, TOCItem{
					Label:  b.BallotTitle + CancellationSuffix(loc, b),
					Anchor: "ballot-" + b.BallotPaperID,
				})
			}
			continue
		}
		items = append(items, TOCItem{
			Label:  section.TOCLabel(loc),
			Anchor: section.TOCID(),
		})
	}
	return items
}

// HasParlBallots reports whether any retained ballot is parliamentary;
// callers use it to decide whether a parliamentary notice applies.
func (s *Sorter) HasParlBallots() bool {
	for _, ds := range s.Dates {
		for _, b := range ds.Data.Ballots {
			if b.IsParl() {
				return true
			}
		}
	}
	return false
}
