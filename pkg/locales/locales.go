// Package locales holds the translated strings used in outgoing mail.
package locales

import (
	_ "embed"
	"encoding/json"
	"log"
	"strings"
)

//go:embed locales.json
var localesJSON []byte

type Strings struct {
	DigestSubject   string `json:"digest_subject"`
	DigestIntro     string `json:"digest_intro"`
	DigestItemLine  string `json:"digest_item_line"`
	DigestFooter    string `json:"digest_footer"`
	UrgencyUseNow   string `json:"urgency_use_now"`
	UrgencyPlanSoon string `json:"urgency_plan_soon"`
	UrgencySafe     string `json:"urgency_safe"`
}

var tables map[string]Strings

func load() {
	if tables != nil {
		return
	}
	tables = make(map[string]Strings)
	if err := json.Unmarshal(localesJSON, &tables); err != nil {
		log.Printf("Error parsing locales.json: %v", err)
	}
}

// Get returns the string table for lang, falling back to English for
// unknown languages.
func Get(lang string) Strings {
	load()
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables["en"]
}

// Format replaces {key} placeholders in a template string.
func Format(template string, args map[string]string) string {
	out := template
	for key, value := range args {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}
