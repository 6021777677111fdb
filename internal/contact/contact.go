// Package contact pulls candidate contact details out of resume text with
// cheap heuristics. It deliberately makes no network calls.
package contact

import (
	"regexp"
	"strings"
)

// NotAvailable is the wire sentinel for contact fields that stayed empty.
const NotAvailable = "N/A"

// Info holds candidate contact details; empty string means unknown.
type Info struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	urlRe   = regexp.MustCompile(`(?i)(https?://|www\.|linkedin\.com|github\.com)`)
)

// FromText extracts contact info from extracted resume text.
func FromText(text string) Info {
	info := Info{
		Email: emailRe.FindString(text),
		Phone: strings.TrimSpace(phoneRe.FindString(text)),
	}
	info.Name = guessName(text)
	return info
}

// Merge combines explicitly supplied fields with extracted ones; explicit
// values win.
func Merge(explicit, extracted Info) Info {
	merged := extracted
	if strings.TrimSpace(explicit.Name) != "" {
		merged.Name = strings.TrimSpace(explicit.Name)
	}
	if strings.TrimSpace(explicit.Email) != "" {
		merged.Email = strings.TrimSpace(explicit.Email)
	}
	if strings.TrimSpace(explicit.Phone) != "" {
		merged.Phone = strings.TrimSpace(explicit.Phone)
	}
	if strings.TrimSpace(explicit.LinkedIn) != "" {
		merged.LinkedIn = strings.TrimSpace(explicit.LinkedIn)
	}
	return merged
}

// OrNA returns the value or the "N/A" sentinel when empty.
func OrNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotAvailable
	}
	return value
}

// guessName picks the first early line that looks like a person's name:
// a few capitalized words with no digits, emails, or URLs.
func guessName(text string) string {
	lines := strings.Split(text, "\n")
	checked := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		checked++
		if checked > 10 {
			break
		}
		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

func looksLikeName(line string) bool {
	if len(line) > 60 {
		return false
	}
	if strings.ContainsAny(line, "@0123456789|/\\") {
		return false
	}
	if urlRe.MatchString(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, banned := range []string{"resume", "curriculum", "vitae", "profile", "summary", "objective"} {
		if strings.Contains(lower, banned) {
			return false
		}
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		r := []rune(w)
		if r[0] < 'A' || r[0] > 'Z' {
			return false
		}
	}
	return true
}
