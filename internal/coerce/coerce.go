// Package coerce canonicalizes extracted string values against schema data
// types. A value that fails its type check is rejected, never written.
package coerce

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/call-sync/internal/model"
)

// maxTextLen caps text values to stay inside common custom-field limits.
const maxTextLen = 2000

// Value coerces a raw extracted string to the schema field's data type.
// The returned value is what goes on the wire.
func Value(raw string, f model.FieldSchema) (any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, eris.New("coerce: empty value")
	}

	switch f.Type {
	case model.TypeText:
		return capText(raw), nil
	case model.TypeNumber:
		return number(raw)
	case model.TypeSelect:
		return selectOption(raw, f.Options)
	case model.TypeCheckbox:
		return checkbox(raw)
	case model.TypeDate:
		return date(raw)
	case model.TypeURL:
		return urlValue(raw)
	case model.TypeEmail:
		return email(raw)
	case model.TypePhone:
		return phone(raw), nil
	default:
		return capText(raw), nil
	}
}

func capText(s string) string {
	if len(s) > maxTextLen {
		return s[:maxTextLen]
	}
	return s
}

var leadingNumberRe = regexp.MustCompile(`-?[\d,]+(?:\.\d+)?`)

// number parses the leading numeric token of the value, tolerating currency
// symbols and thousands separators.
func number(s string) (float64, error) {
	m := leadingNumberRe.FindString(s)
	if m == "" {
		return 0, eris.Errorf("coerce: no numeric token in %q", s)
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0, eris.Wrap(err, "coerce: parse number")
	}
	return n, nil
}

// selectOption matches free text against the option list: exact
// (case-insensitive) first, then substring containment in either direction.
func selectOption(s string, options []string) (string, error) {
	lower := strings.ToLower(s)
	for _, opt := range options {
		if strings.ToLower(opt) == lower {
			return opt, nil
		}
	}
	for _, opt := range options {
		optLower := strings.ToLower(opt)
		if strings.Contains(lower, optLower) || strings.Contains(optLower, lower) {
			return opt, nil
		}
	}
	return "", eris.Errorf("coerce: %q matches no option", s)
}

var truthy = map[string]bool{
	"true": true, "yes": true, "y": true, "1": true, "checked": true, "on": true,
}
var falsy = map[string]bool{
	"false": true, "no": true, "n": true, "0": true, "unchecked": true, "off": true,
}

func checkbox(s string) (bool, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if truthy[norm] {
		return true, nil
	}
	if falsy[norm] {
		return false, nil
	}
	return false, eris.Errorf("coerce: %q is not a checkbox value", s)
}

// dateLayouts are the accepted explicit date formats.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// date parses to a calendar date in ISO form.
func date(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", eris.Errorf("coerce: %q is not a date", s)
}

// urlValue does lightweight structural normalization, not full validation.
func urlValue(s string) (string, error) {
	if strings.ContainsAny(s, " \t\n") || !strings.Contains(s, ".") {
		return "", eris.Errorf("coerce: %q is not a url", s)
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}
	return s, nil
}

func email(s string) (string, error) {
	at := strings.Index(s, "@")
	if at <= 0 || !strings.Contains(s[at:], ".") || strings.ContainsAny(s, " \t\n") {
		return "", eris.Errorf("coerce: %q is not an email", s)
	}
	return strings.ToLower(s), nil
}

var phoneStripRe = regexp.MustCompile(`[^\d]`)

// phone strips formatting down to digits, keeping a leading +.
func phone(s string) string {
	s = strings.TrimSpace(s)
	cleaned := phoneStripRe.ReplaceAllString(s, "")
	if strings.HasPrefix(s, "+") {
		cleaned = "+" + cleaned
	}
	return cleaned
}
