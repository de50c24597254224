// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package i18n

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Locale identifies one of the two languages the site is served in.
type Locale string

const (
	En Locale = "en"
	Cy Locale = "cy"
)

var welsh = language.MustParse("cy")

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	welsh,
})

// FromPath returns the locale for a request path. Welsh pages live under
// the /cy prefix; everything else is English.
func FromPath(path string) Locale {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "cy" || strings.HasPrefix(trimmed, "cy/") {
		return Cy
	}
	return En
}

// Match resolves an Accept-Language header value to a supported locale.
func Match(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return En
	}
	// The matched tag can carry the request's region, so go by index.
	_, index, _ := matcher.Match(tags...)
	if index == 1 {
		return Cy
	}
	return En
}

// Tag returns the BCP 47 tag for the locale, for use in lang attributes.
func (l Locale) Tag() language.Tag {
	if l == Cy {
		return welsh
	}
	return language.English
}

// T looks up key in the catalog for the locale and interpolates args with
// fmt.Sprintf. Unknown keys come back verbatim, args and all ignored, so
// missing translations are visible in output.
func T(loc Locale, key string, args ...any) string {
	entry, ok := catalog[key]
	if !ok {
		return key
	}
	msg := entry.en
	if loc == Cy && entry.cy != "" {
		msg = entry.cy
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

var welshDays = [...]string{
	"Dydd Sul", "Dydd Llun", "Dydd Mawrth", "Dydd Mercher",
	"Dydd Iau", "Dydd Gwener", "Dydd Sadwrn",
}

var welshMonths = [...]string{
	"Ionawr", "Chwefror", "Mawrth", "Ebrill", "Mai", "Mehefin",
	"Gorffennaf", "Awst", "Medi", "Hydref", "Tachwedd", "Rhagfyr",
}

// FormatDate renders a date the way the site shows poll days and deadlines,
// e.g. "Thursday 2 May 2024" or "Dydd Iau 2 Mai 2024".
func FormatDate(loc Locale, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if loc == Cy {
		return fmt.Sprintf("%s %d %s %d",
			welshDays[t.Weekday()], t.Day(), welshMonths[t.Month()-1], t.Year())
	}
	return t.Format("Monday 2 January 2006")
}
