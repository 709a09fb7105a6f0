package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// Refiners inspect the full summary text for stronger signals than the raw
// pattern span and may substitute a canonical phrase. They return the
// replacement and true, or ("", false) to keep the raw span.

func refineMotivation(fullText, _ string) (string, bool) {
	t := strings.ToLower(fullText)
	if strings.Contains(t, "commission") {
		if strings.Contains(t, "money") || strings.Contains(t, "most") {
			return "Save commission, get the most money", true
		}
		return "Save on agent commission", true
	}
	if strings.Contains(t, "control") && strings.Contains(t, "sale") {
		return "Wants control over the sale", true
	}
	return "", false
}

var monthsCountRe = regexp.MustCompile(`(?i)\b(\d+)\s*(month|week|year)s?\b`)

func refineTimeline(fullText, _ string) (string, bool) {
	t := strings.ToLower(fullText)
	if strings.Contains(t, "asap") || strings.Contains(t, "as soon as possible") || strings.Contains(t, "right away") {
		return "As soon as possible", true
	}
	if m := monthsCountRe.FindStringSubmatch(fullText); m != nil {
		unit := strings.ToLower(m[2])
		if m[1] == "1" {
			return fmt.Sprintf("1 %s", unit), true
		}
		return fmt.Sprintf("%s %ss", m[1], unit), true
	}
	return "", false
}

func refineDestination(fullText, raw string) (string, bool) {
	t := strings.ToLower(fullText)
	if strings.Contains(t, "out of state") {
		return "Moving out of state", true
	}
	if strings.Contains(t, "closer to family") {
		return "Moving closer to family", true
	}
	// A bare state name beats a fuzzy span.
	if m := locationMarker.FindString(fullText); m != "" && len(m) > len(raw) {
		return "Moving to " + strings.TrimSpace(m), true
	}
	return "", false
}

var millionRe = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s?million\b`)

func refineExpectations(fullText, raw string) (string, bool) {
	if m := millionRe.FindStringSubmatch(fullText); m != nil {
		return "Around $" + m[1] + "M", true
	}
	// Keep an explicit dollar figure as-is; anything else stays raw.
	if strings.Contains(raw, "$") {
		return "Around " + strings.TrimSpace(raw), true
	}
	return "", false
}

func refineDisappointments(fullText, _ string) (string, bool) {
	t := strings.ToLower(fullText)
	switch {
	case strings.Contains(t, "expired"):
		return "Listing expired without selling", true
	case strings.Contains(t, "communication"):
		return "Poor communication from agent", true
	case strings.Contains(t, "overpriced"):
		return "Agent overpriced the home", true
	}
	return "", false
}

func refineConcerns(fullText, _ string) (string, bool) {
	t := strings.ToLower(fullText)
	switch {
	case strings.Contains(t, "paperwork"):
		return "Handling the paperwork", true
	case strings.Contains(t, "legal"):
		return "Legal liability", true
	case strings.Contains(t, "pricing") && strings.Contains(t, "right"):
		return "Pricing it right", true
	}
	return "", false
}

func refineOpenness(fullText, _ string) (string, bool) {
	t := strings.ToLower(fullText)
	switch {
	case strings.Contains(t, "not interested") || strings.Contains(t, "never use an agent"):
		return "Not open to an agent", true
	case strings.Contains(t, "would consider") || strings.Contains(t, "open to"):
		return "Open to the right agent", true
	}
	return "", false
}
