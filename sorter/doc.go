// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

/*
Package sorter decides what an election results page looks like.

Given a parsed API response and a reference date, Sorter drops past poll
dates, classifies the response (no upcoming / one ballot / one date /
multiple dates / contact details), and derives the page template, title
and table of contents. Each retained date gets a DateSorter, which
resolves the statutory timetable for its ballots - City of London ballots
separately, since their deadlines differ - and instantiates the content
sections that apply: the ballot listing, registration (standard and City
of London variants), postal votes, and the polling station for the first
upcoming date only.

Sections sort ascending by weight, lower first, so whatever is most
actionable on the reference date tops the page: an open registration
deadline beats the candidate list, and the polling station beats
everything in the final three days before the poll.

Everything here is derived, deterministic state. No I/O happens in this
package; a fresh Sorter is built per request and discarded after
rendering.
*/
package sorter
