// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

/*
Package models defines the typed shape of an elections API response.

A response is decoded into a RootModel: either an address picker (the
postcode is split across councils) or a list of Dates, each carrying the
Ballots held on that day plus polling station details. Contact details for
the council's electoral services team, and a separate registration contact
where one exists, hang off the root.

ParseRootModel decodes and validates in one step. The key invariant is
that address_picker and dates are mutually exclusive.
*/
package models
