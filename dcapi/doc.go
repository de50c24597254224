// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

/*
Package dcapi is the client for the Democracy Club elections API.

Three interchangeable backends implement the Backend interface: the live
API, the hosted sandbox (fixed demo postcodes, same wire format), and an
in-process mock that builds responses with the responsebuilder package.
Handlers pick a backend per route family, so /sandbox and /mock pages run
the exact code paths the live pages do.

Errors are typed: InvalidPostcodeError and InvalidUPRNError for rejected
lookups, APIError (with status code) for everything else.
*/
package dcapi
