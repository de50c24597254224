// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

/*
Package timetable computes the statutory timetable for a UK election from
its election id.

Given an id like "parl.2024-05-02" and a country, FromElectionID returns
the dated milestones that gate what the site shows: the statement of
persons nominated (SOPN) publish date, the register-to-vote deadline, the
postal vote application deadline and the absent vote certificate (VAC)
application deadline. Deadlines are expressed in working days before the
poll; working days skip weekends and the fixed-rule bank holidays of the
relevant country.

Jurisdiction exceptions: City of London Common Council elections take
their registration deadline from the preceding 30 November (the ward list
cut-off) and a later SOPN date; Northern Ireland has a longer postal vote
window.
*/
package timetable
