// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/medichat/go-medichat/models"
)

// symptomKeywords maps canonical symptom names to the phrases users write.
// Extraction is keyword-based: the first canonical symptom whose phrase
// appears in the text wins for the primary complaint; all matches are kept
// for additional symptoms.
var symptomKeywords = map[string][]string{
	"fever":            {"fever", "temperature", "hot", "burning up", "feverish"},
	"headache":         {"headache", "head pain", "head hurts", "migraine"},
	"cough":            {"cough", "coughing"},
	"sore throat":      {"sore throat", "throat pain", "throat hurts"},
	"runny nose":       {"runny nose", "nasal congestion", "stuffy nose", "blocked nose"},
	"sneezing":         {"sneezing", "sneeze", "sneezes"},
	"body ache":        {"body ache", "body pain", "muscle pain", "muscle ache", "aching"},
	"fatigue":          {"fatigue", "tired", "exhausted", "weakness", "no energy"},
	"nausea":           {"nausea", "nauseous", "feel sick", "queasy"},
	"vomiting":         {"vomiting", "throwing up", "vomit"},
	"diarrhea":         {"diarrhea", "loose stool", "loose motion"},
	"stomach pain":     {"stomach pain", "abdominal pain", "stomach ache", "stomach hurts", "belly pain"},
	"chest pain":       {"chest pain", "chest tightness", "chest hurts"},
	"breathlessness":   {"breathless", "shortness of breath", "difficulty breathing", "hard to breathe"},
	"dizziness":        {"dizzy", "dizziness", "lightheaded", "light-headed"},
	"loss of taste":    {"loss of taste", "can't taste", "cannot taste"},
	"loss of smell":    {"loss of smell", "can't smell", "cannot smell"},
	"chills":           {"chills", "shivering"},
	"rash":             {"rash", "skin irritation", "itchy skin"},
	"joint pain":       {"joint pain", "joints hurt", "joint ache"},
	"light sensitivity": {"light sensitivity", "sensitive to light", "photophobia"},
	"vision changes":    {"vision changes", "blurred vision", "blurry vision", "seeing spots"},
}

// durationPatterns recognise how long a symptom has been present. Ordered:
// the first matching pattern wins.
var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(\d+|a|an|one|two|three|four|five|six|seven|eight|nine|ten)\s*(hour|day|week|month|year)s?\b`),
	regexp.MustCompile(`(?i)\b(since|for|from)\s+(yesterday|today|this morning|last night|last week|last month)\b`),
	regexp.MustCompile(`(?i)\b(yesterday|today|this morning|last night|last week|last month)\b`),
	regexp.MustCompile(`(?i)\b(a few|several|couple of)\s*(hours|days|weeks|months)\b`),
}

// scalePattern recognises "7 out of 10" style severity answers.
var scalePattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:/|out of)\s*10\b`)

// severityKeywords maps severity grades to descriptive phrases, checked
// from most to least severe so the strongest mentioned grade wins.
var severityKeywords = []struct {
	level    models.SeverityLevel
	keywords []string
}{
	{models.SeverityVerySevere, []string{"unbearable", "worst", "excruciating", "extreme", "very severe"}},
	{models.SeveritySevere, []string{"severe", "terrible", "intense", "really bad", "very bad"}},
	{models.SeverityModerate, []string{"moderate", "noticeable", "uncomfortable", "bad"}},
	{models.SeverityMild, []string{"mild", "slight", "little", "minor", "light"}},
}

// symptomExtractor pulls structured assessment answers out of free text.
type symptomExtractor struct{}

func newSymptomExtractor() *symptomExtractor {
	return &symptomExtractor{}
}

// ExtractSymptoms returns every canonical symptom mentioned in the text, in
// deterministic order.
func (e *symptomExtractor) ExtractSymptoms(text string) []string {
	lowered := strings.ToLower(text)

	var found []string
	for _, symptom := range canonicalSymptomOrder {
		for _, phrase := range symptomKeywords[symptom] {
			if strings.Contains(lowered, phrase) {
				found = append(found, symptom)
				break
			}
		}
	}
	return found
}

// ExtractDuration returns the duration phrase mentioned in the text, or the
// trimmed text itself when nothing matches (the user answered the duration
// question, so their words are the best record available).
func (e *symptomExtractor) ExtractDuration(text string) string {
	for _, pattern := range durationPatterns {
		if match := pattern.FindString(text); match != "" {
			return strings.ToLower(strings.TrimSpace(match))
		}
	}
	return strings.TrimSpace(text)
}

// ExtractSeverity grades the text: a "N out of 10" scale answer wins when
// present, otherwise descriptive keywords are checked from most to least
// severe. Defaults to moderate.
func (e *symptomExtractor) ExtractSeverity(text string) models.SeverityLevel {
	if m := scalePattern.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			switch {
			case n <= 3:
				return models.SeverityMild
			case n <= 6:
				return models.SeverityModerate
			case n <= 8:
				return models.SeveritySevere
			default:
				return models.SeverityVerySevere
			}
		}
	}

	lowered := strings.ToLower(text)
	for _, grade := range severityKeywords {
		for _, keyword := range grade.keywords {
			if strings.Contains(lowered, keyword) {
				return grade.level
			}
		}
	}
	return models.SeverityModerate
}

// IsNegativeAnswer reports whether the text declines to add information
// ("no", "none", "nothing else").
func (e *symptomExtractor) IsNegativeAnswer(text string) bool {
	switch strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(text), "."))) {
	case "no", "none", "nothing", "nothing else", "nope", "na", "n/a", "not really":
		return true
	}
	return false
}

// canonicalSymptomOrder fixes the iteration order over symptomKeywords so
// extraction results are deterministic.
var canonicalSymptomOrder = []string{
	"fever", "headache", "cough", "sore throat", "runny nose", "sneezing",
	"body ache", "fatigue", "nausea", "vomiting", "diarrhea", "stomach pain",
	"chest pain", "breathlessness", "dizziness", "loss of taste",
	"loss of smell", "chills", "rash", "joint pain", "light sensitivity",
	"vision changes",
}
