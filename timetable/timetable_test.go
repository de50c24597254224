// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package timetable

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParl2024GeneralElectionDates(t *testing.T) {
	// The May 2024 cycle has published reference dates for every
	// milestone, so it pins the working-day arithmetic exactly.
	tt, err := FromElectionID("parl.2024-05-02", England)
	if err != nil {
		t.Fatalf("FromElectionID: %v", err)
	}

	want := map[Event]time.Time{
		SOPNPublishDate:               date(2024, time.April, 5),
		RegistrationDeadline:          date(2024, time.April, 16),
		PostalVoteApplicationDeadline: date(2024, time.April, 17),
		VACApplicationDeadline:        date(2024, time.April, 24),
	}
	for ev, wantDate := range want {
		if got := tt.Date(ev); !got.Equal(wantDate) {
			t.Errorf("%s = %s, want %s", ev, got.Format(time.DateOnly), wantDate.Format(time.DateOnly))
		}
	}
	if !tt.PollDate.Equal(date(2024, time.May, 2)) {
		t.Errorf("PollDate = %s", tt.PollDate.Format(time.DateOnly))
	}
}

func TestEntriesAreChronological(t *testing.T) {
	for _, id := range []string{
		"parl.2024-05-02",
		"local.city-of-london.aldersgate.2025-03-20",
		"sp.2026-05-07",
	} {
		tt, err := FromElectionID(id, England)
		if err != nil {
			t.Fatalf("FromElectionID(%s): %v", id, err)
		}
		for i := 1; i < len(tt.Entries); i++ {
			if tt.Entries[i].Date.Before(tt.Entries[i-1].Date) {
				t.Errorf("%s: entry %d (%s) before entry %d", id, i, tt.Entries[i].Event, i-1)
			}
		}
	}
}

func TestCityOfLondonRegistrationDeadline(t *testing.T) {
	tt, err := FromElectionID("local.city-of-london.aldersgate.2025-03-20", England)
	if err != nil {
		t.Fatalf("FromElectionID: %v", err)
	}
	// Ward list applications close at the end of the preceding November.
	if got := tt.Date(RegistrationDeadline); !got.Equal(date(2024, time.November, 30)) {
		t.Errorf("registration deadline = %s, want 2024-11-30", got.Format(time.DateOnly))
	}
	// The Common Council SOPN offset is 14 working days, not the
	// standard local 18.
	if got := tt.Date(SOPNPublishDate); !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("sopn date = %s, want 2025-02-28", got.Format(time.DateOnly))
	}
}

func TestNorthernIrelandPostalDeadline(t *testing.T) {
	tt, err := FromElectionID("parl.2024-05-02", NorthernIreland)
	if err != nil {
		t.Fatalf("FromElectionID: %v", err)
	}
	if got := tt.Date(PostalVoteApplicationDeadline); !got.Equal(date(2024, time.April, 12)) {
		t.Errorf("postal deadline = %s, want 2024-04-12", got.Format(time.DateOnly))
	}
}

func TestBoundaryDay(t *testing.T) {
	tt, err := FromElectionID("parl.2024-05-02", England)
	if err != nil {
		t.Fatalf("FromElectionID: %v", err)
	}
	deadline := date(2024, time.April, 16)

	if tt.IsBefore(RegistrationDeadline, deadline) {
		t.Error("IsBefore true on the event day")
	}
	if tt.IsAfter(RegistrationDeadline, deadline) {
		t.Error("IsAfter true on the event day")
	}
	if !tt.IsBefore(RegistrationDeadline, deadline.AddDate(0, 0, -1)) {
		t.Error("IsBefore false the day before")
	}
	if !tt.IsAfter(RegistrationDeadline, deadline.AddDate(0, 0, 1)) {
		t.Error("IsAfter false the day after")
	}
}

func TestCurrentMode(t *testing.T) {
	tt, err := FromElectionID("parl.2024-05-02", England)
	if err != nil {
		t.Fatalf("FromElectionID: %v", err)
	}

	tests := []struct {
		on   time.Time
		want string
	}{
		{date(2024, time.April, 4), ""},
		{date(2024, time.April, 5), "List of candidates published"},
		{date(2024, time.April, 16), "Register to vote deadline"},
		{date(2024, time.April, 20), "Postal vote application deadline"},
		{date(2024, time.May, 1), "VAC application deadline"},
	}
	for _, tc := range tests {
		if got := tt.CurrentMode(tc.on); got != tc.want {
			t.Errorf("CurrentMode(%s) = %q, want %q", tc.on.Format(time.DateOnly), got, tc.want)
		}
	}
}

func TestFromElectionIDErrors(t *testing.T) {
	tests := []string{
		"nonsense",
		"unknown-type.2024-05-02",
		"parl.not-a-date",
	}
	for _, id := range tests {
		_, err := FromElectionID(id, England)
		var resErr *ResolutionError
		if !errors.As(err, &resErr) {
			t.Errorf("FromElectionID(%q) error = %v, want ResolutionError", id, err)
			continue
		}
		if resErr.ElectionID != id {
			t.Errorf("ResolutionError carries %q, want %q", resErr.ElectionID, id)
		}
	}
}

func TestSOPNOffsetsByType(t *testing.T) {
	// 2024-05-02 poll, England. Working days back from the poll:
	// 19 → 04-05, 18 → 04-08, 16 → 04-10.
	tests := []struct {
		id   string
		want time.Time
	}{
		{"parl.2024-05-02", date(2024, time.April, 5)},
		{"local.sheffield.ecclesall.2024-05-02", date(2024, time.April, 8)},
		{"nia.belfast-north.2024-05-02", date(2024, time.April, 10)},
	}
	for _, tc := range tests {
		tt, err := FromElectionID(tc.id, England)
		if err != nil {
			t.Fatalf("FromElectionID(%s): %v", tc.id, err)
		}
		if got := tt.Date(SOPNPublishDate); !got.Equal(tc.want) {
			t.Errorf("%s sopn = %s, want %s", tc.id, got.Format(time.DateOnly), tc.want.Format(time.DateOnly))
		}
	}
}
