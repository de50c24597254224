// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/cliparse"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/testutil"
)

func TestSearchRedirects(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	resp, _ := testutil.Get(t, srv.URL+"/search?postcode-search=aa1+2aa")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	// The test backend is the mock, so the canonical URL is /mock/.
	if loc := resp.Header.Get("Location"); loc != "/mock/AA12AA" {
		t.Errorf("Location = %q", loc)
	}
}

func TestSearchWithoutPostcode(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	resp, _ := testutil.Get(t, srv.URL+"/search")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("Location = %q", loc)
	}
}

func TestSearchInvalidPostcode(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	resp, body := testutil.Get(t, srv.URL+"/search?postcode-search=not+a+postcode")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, "Please enter a valid UK postcode") {
		t.Error("validation message missing")
	}
}

func TestNoUpcomingPage(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	resp, body := testutil.Get(t, srv.URL+"/mock/AA11AA")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "You don't have any upcoming elections") {
		t.Error("no-upcoming title missing")
	}
}

func TestSingleBallotPage(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	_, body := testutil.Get(t, srv.URL+"/mock/AA12AA")
	for _, want := range []string{
		"You have an upcoming election",
		"Sheffield local election Ecclesall",
		"Ecclesall Church Hall",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestWelshPage(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	_, body := testutil.Get(t, srv.URL+"/cy/mock/AA12AA")
	if !strings.Contains(body, "Mae gennych etholiad i ddod") {
		t.Error("Welsh title missing")
	}
	if !strings.Contains(body, `lang="cy"`) {
		t.Error("lang attribute not Welsh")
	}
}

func TestAddressPickerPage(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	_, body := testutil.Get(t, srv.URL+"/mock/AA13AA")
	if !strings.Contains(body, "Select your address") {
		t.Error("picker title missing")
	}
	// Picker links must resolve through the same backend family.
	if !strings.Contains(body, `href="/mock/address/`) {
		t.Error("picker links not rewritten to the mock address route")
	}
}

func TestUncontestedPage(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	_, body := testutil.Get(t, srv.URL+"/mock/AA17AA")
	if !strings.Contains(body, "Uncontested election") {
		t.Error("uncontested title missing")
	}
}

func TestBaselineDateMovesStages(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	// At the default baseline the registration section renders before
	// the polling station; the day before the poll the station wins.
	_, early := testutil.Get(t, srv.URL+"/mock/AA12AA")
	if strings.Index(early, `id="registration"`) > strings.Index(early, `id="polling-station"`) {
		t.Error("registration should render first while deadlines are open")
	}

	dayBefore := testutil.Baseline.AddDate(0, 0, 19).Format("2006-01-02")
	_, late := testutil.Get(t, srv.URL+"/mock/AA12AA?baseline_date="+dayBefore)
	if strings.Index(late, `id="polling-station"`) > strings.Index(late, `id="registration"`) {
		t.Error("polling station should render first near the poll")
	}
}

func TestWelshSpeakersSeeLanguageNotice(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	get := func(path, acceptLanguage string) string {
		t.Helper()
		req, err := http.NewRequest("GET", srv.URL+path, nil)
		if err != nil {
			t.Fatal(err)
		}
		if acceptLanguage != "" {
			req.Header.Set("Accept-Language", acceptLanguage)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		return string(body)
	}

	body := get("/mock/AA12AA", "cy-GB,cy;q=0.9,en;q=0.8")
	if !strings.Contains(body, `href="/cy/mock/AA12AA"`) {
		t.Error("notice link to the Welsh page missing")
	}

	if body := get("/mock/AA12AA", "en-GB,en;q=0.9"); strings.Contains(body, "ar gael yn Gymraeg") {
		t.Error("notice shown to an English-preferring browser")
	}
	if body := get("/cy/mock/AA12AA", "cy"); strings.Contains(body, "language-notice") {
		t.Error("notice shown on a page already in Welsh")
	}
}

func TestUnknownPostcodeRedirects(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	resp, _ := testutil.Get(t, srv.URL+"/mock/ZZ99ZZ")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/?invalid-postcode=1" {
		t.Errorf("Location = %q", loc)
	}
}

func TestFailoverDrillPostcodes(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	resp, _ := testutil.Get(t, srv.URL+"/mock/FA1LL")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("FA1LL status = %d, want 400", resp.StatusCode)
	}

	// FA2LL panics in the handler; recovery turns it into a 500.
	resp, _ = testutil.Get(t, srv.URL+"/mock/FA2LL")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("FA2LL status = %d, want 500", resp.StatusCode)
	}
}

func TestElectoralServicesForm(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	resp, body := testutil.Get(t, srv.URL+"/electoral-services")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Find your electoral services team") {
		t.Error("form title missing")
	}

	resp, _ = testutil.Get(t, srv.URL+"/electoral-services?postcode-search=EH1+1YJ")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("submit status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/electoral-services/EH11YJ" {
		t.Errorf("Location = %q", loc)
	}
}

func TestElectoralServicesHTML(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	_, body := testutil.Get(t, srv.URL+"/electoral-services/EH11YJ")
	if !strings.Contains(body, "City of Edinburgh Council") {
		t.Error("council contact missing")
	}
	// Registration differs from electoral services for this fixture, so
	// both contacts show.
	if !strings.Contains(body, "Lothian Valuation Joint Board") {
		t.Error("registration contact missing")
	}
}

func TestElectoralServicesJSON(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	resp, body := testutil.Get(t, srv.URL+"/electoral-services/EH11YJ?format=json")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var payload struct {
		ElectoralServices struct {
			CouncilID string `json:"council_id"`
			Name      string `json:"name"`
		} `json:"electoral_services"`
		Registration *struct {
			Address string `json:"address"`
		} `json:"registration"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if payload.ElectoralServices.CouncilID != "EDH" {
		t.Errorf("council_id = %q", payload.ElectoralServices.CouncilID)
	}
	if payload.Registration == nil {
		t.Error("registration block missing for split contacts")
	}
	// Nothing about ballots or dates belongs in this response.
	if strings.Contains(body, "ballot_paper_id") {
		t.Error("response leaks election data")
	}
}

func TestDebugIndex(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{Debug: true})

	resp, body := testutil.Get(t, srv.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, want := range []string{"Mock postcodes", "AA12AA", "Register to vote deadline"} {
		if !strings.Contains(body, want) {
			t.Errorf("debug page missing %q", want)
		}
	}
}

func TestIndexWithoutDebug(t *testing.T) {
	srv := testutil.NewServer(t, cliparse.Config{})

	_, body := testutil.Get(t, srv.URL+"/")
	if !strings.Contains(body, `name="postcode-search"`) {
		t.Error("search form missing")
	}
	if strings.Contains(body, "Mock postcodes") {
		t.Error("debug content leaked into the production index")
	}
}
