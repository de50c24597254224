// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

/*
Package responsebuilder builds elections API responses in code.

The builders (RootBuilder, BallotBuilder) use explicit typed setters, and
Build validates against the models package invariants. The canned
responses in responses.go feed the mock backend, the sandbox postcode
table and the test suite; each takes a baseline date so fixtures stay
"upcoming" forever.
*/
package responsebuilder
