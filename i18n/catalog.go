// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package i18n

type entry struct {
	en string
	cy string
}

// catalog holds every user-facing string. Keys are the English source text
// where that is short enough to be readable, otherwise a dotted identifier.
var catalog = map[string]entry{
	// Page titles
	"title.index": {
		en: "Find upcoming elections in your area",
		cy: "Dewch o hyd i etholiadau i ddod yn eich ardal",
	},
	"title.address_picker": {
		en: "Select your address",
		cy: "Dewiswch eich cyfeiriad",
	},
	"title.electoral_services_search": {
		en: "Find your electoral services team",
		cy: "Dewch o hyd i'ch tîm gwasanaethau etholiadol",
	},
	// Shown on English pages to browsers that prefer Welsh, so the text
	// is Welsh in both locales.
	"nav.welsh_available": {
		en: "Mae'r dudalen hon ar gael yn Gymraeg",
		cy: "Mae'r dudalen hon ar gael yn Gymraeg",
	},
	"title.contact_details": {
		en: "Contact details",
		cy: "Manylion cyswllt",
	},
	"title.no_upcoming": {
		en: "You don't have any upcoming elections",
		cy: "Nid oes gennych unrhyw etholiadau i ddod",
	},
	"title.election_today": {
		en: "You have an election today",
		cy: "Mae gennych etholiad heddiw",
	},
	"title.elections_today": {
		en: "You have elections today",
		cy: "Mae gennych etholiadau heddiw",
	},
	"title.one_upcoming": {
		en: "You have an upcoming election",
		cy: "Mae gennych etholiad i ddod",
	},
	"title.multiple_upcoming": {
		en: "You have upcoming elections",
		cy: "Mae gennych etholiadau i ddod",
	},
	"title.cancelled_one": {
		en: "%s election",
		cy: "Etholiad %s",
	},
	"title.cancelled_many": {
		en: "%s elections",
		cy: "Etholiadau %s",
	},

	// Cancellation verbs and suffixes
	"cancellation.postponed": {
		en: "Postponed",
		cy: "Wedi'i ohirio",
	},
	"cancellation.uncontested": {
		en: "Uncontested",
		cy: "Diwrthwynebiad",
	},
	"cancellation.suffix_postponed": {
		en: " (postponed)",
		cy: " (wedi'i ohirio)",
	},
	"cancellation.suffix_uncontested": {
		en: " (uncontested)",
		cy: " (diwrthwynebiad)",
	},
	"and": {en: "and", cy: "a"},

	// Table of contents labels
	"toc.registration": {
		en: "Register to vote",
		cy: "Cofrestru i bleidleisio",
	},
	"toc.city_of_london_registration": {
		en: "Register to vote in the City of London",
		cy: "Cofrestru i bleidleisio yn Ninas Llundain",
	},
	"toc.postal_votes": {
		en: "Voting by post",
		cy: "Pleidleisio drwy'r post",
	},
	"toc.polling_station": {
		en: "Where to vote",
		cy: "Ble i bleidleisio",
	},
	"toc.ballots": {
		en: "Upcoming elections",
		cy: "Etholiadau i ddod",
	},
	"toc.your_local_council": {
		en: "Your local council",
		cy: "Eich cyngor lleol",
	},
	"toc.electoral_registration": {
		en: "Electoral registration",
		cy: "Cofrestru etholiadol",
	},

	// Parish and community council disclaimers
	"parish.england": {
		en: "There may also be parish, town or community council elections in some areas.",
		cy: "Efallai y bydd etholiadau cyngor plwyf, tref neu gymuned mewn rhai ardaloedd hefyd.",
	},
	"parish.scotland": {
		en: "There may also be community council elections in some areas.",
		cy: "Efallai y bydd etholiadau cyngor cymuned mewn rhai ardaloedd hefyd.",
	},
	"parish.wales": {
		en: "There may also be town or community council elections in some areas.",
		cy: "Efallai y bydd etholiadau cyngor tref neu gymuned mewn rhai ardaloedd hefyd.",
	},

	// Form validation
	"form.postcode_error": {
		en: "Please enter a valid UK postcode, e.g., SW1A 1AA.",
		cy: "Rhowch god post dilys yn y DU, e.e., SW1A 1AA.",
	},

	// Number words, AP style
	"num.one":   {en: "one", cy: "un"},
	"num.two":   {en: "two", cy: "dau"},
	"num.three": {en: "three", cy: "tri"},
	"num.four":  {en: "four", cy: "pedwar"},
	"num.five":  {en: "five", cy: "pump"},
	"num.six":   {en: "six", cy: "chwech"},
	"num.seven": {en: "seven", cy: "saith"},
	"num.eight": {en: "eight", cy: "wyth"},
	"num.nine":  {en: "nine", cy: "naw"},
}
