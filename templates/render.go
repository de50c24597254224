// Copyright (c) 2025 Democracy Club CIC.
// See LICENSE for copying information.

package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/i18n"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/models"
	"github.com/DemocracyClub/ec-postcode-lookup-pages/sorter"
)

//go:embed templates/*.html
var templateFS embed.FS

// StaticFS holds the css/js served under /static/.
//
//go:embed static
var StaticFS embed.FS

// Renderer executes the page templates. One template set is parsed per
// locale at startup so template funcs can close over the locale; build
// it once in main and share it, it is safe for concurrent use.
type Renderer struct {
	sets map[i18n.Locale]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{sets: map[i18n.Locale]*template.Template{}}
	for _, loc := range []i18n.Locale{i18n.En, i18n.Cy} {
		set, err := template.New("").Funcs(r.funcMap(loc)).ParseFS(templateFS, "templates/*.html")
		if err != nil {
			return nil, fmt.Errorf("parsing templates: %w", err)
		}
		r.sets[loc] = set
	}
	return r, nil
}

// Render executes the named page template for the locale.
func (r *Renderer) Render(w io.Writer, loc i18n.Locale, name string, data map[string]any) error {
	set, ok := r.sets[loc]
	if !ok {
		set = r.sets[i18n.En]
	}
	if data == nil {
		data = map[string]any{}
	}
	data["Lang"] = loc.Tag().String()
	return set.ExecuteTemplate(w, name, data)
}

func (r *Renderer) funcMap(loc i18n.Locale) template.FuncMap {
	return template.FuncMap{
		"t": func(key string, args ...any) string {
			return i18n.T(loc, key, args...)
		},
		"date_filter": func(v any) string {
			return i18n.FormatDate(loc, asTime(v))
		},
		"apnumber":  func(n int) string { return apNumber(loc, n) },
		"pluralize": pluralize,
		"nl2br":     nl2br,
		"cancellation_suffix": func(b models.Ballot) string {
			return sorter.CancellationSuffix(loc, b)
		},
		"render_section": func(s sorter.Section) (template.HTML, error) {
			var buf bytes.Buffer
			err := r.sets[loc].ExecuteTemplate(&buf, s.TemplateName(), map[string]any{
				"Section": s,
				"Label":   s.TOCLabel(loc),
				"Ctx":     s.Context(),
				"Lang":    loc.Tag().String(),
			})
			if err != nil {
				return "", err
			}
			return template.HTML(buf.String()), nil
		},
	}
}

func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case models.APIDate:
		return t.Time
	case string:
		parsed, err := time.Parse(time.DateOnly, t)
		if err != nil {
			return time.Time{}
		}
		return parsed
	}
	return time.Time{}
}

var apNumbers = [...]string{
	"num.one", "num.two", "num.three", "num.four", "num.five",
	"num.six", "num.seven", "num.eight", "num.nine",
}

// apNumber spells out 1-9 and leaves other numbers as digits, AP style.
func apNumber(loc i18n.Locale, n int) string {
	if n < 1 || n > 9 {
		return fmt.Sprintf("%d", n)
	}
	return i18n.T(loc, apNumbers[n-1])
}

// pluralize returns a suffix for n. With no argument the suffix is "s";
// with one argument that string; "y,ies" style arguments split into
// singular and plural suffixes.
func pluralize(n int, args ...string) string {
	arg := "s"
	if len(args) > 0 {
		arg = args[0]
	}
	if !strings.Contains(arg, ",") {
		arg = "," + arg
	}
	parts := strings.SplitN(arg, ",", 2)
	if n == 1 {
		return parts[0]
	}
	return parts[1]
}

func nl2br(s string) template.HTML {
	lines := strings.Split(s, "\n")
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = template.HTMLEscapeString(line)
	}
	return template.HTML(strings.Join(escaped, "<br>\n"))
}
