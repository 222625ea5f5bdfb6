// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package service

import (
	"context"
	"strings"

	"github.com/medichat/go-medichat/internal/adapter"
	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/metrics"
)

// disclaimers holds the medical disclaimer appended to every chat reply,
// per supported language.
var disclaimers = map[string]string{
	"en": "This is for informational purposes only. Please consult a healthcare professional for medical advice.",
	"hi": "यह केवल सूचना के उद्देश्य से है। चिकित्सा सलाह के लिए कृपया स्वास्थ्य पेशेवर से परामर्श करें।",
	"mr": "हे केवळ माहितीच्या उद्देशाने आहे. वैद्यकीय सल्ल्यासाठी कृपया आरोग्य व्यावसायिकांचा सल्ला घ्या.",
}

// fallbackTerms maps common english medical terms to their translations,
// used for best-effort localization when the translate API has no key.
var fallbackTerms = map[string]map[string]string{
	"hi": {
		"fever":    "बुखार",
		"headache": "सिरदर्द",
		"cough":    "खांसी",
		"cold":     "जुकाम",
		"pain":     "दर्द",
		"medicine": "दवा",
		"doctor":   "डॉक्टर",
		"hospital": "अस्पताल",
		"rest":     "आराम",
		"water":    "पानी",
	},
	"mr": {
		"fever":    "ताप",
		"headache": "डोकेदुखी",
		"cough":    "खोकला",
		"cold":     "सर्दी",
		"pain":     "वेदना",
		"medicine": "औषध",
		"doctor":   "डॉक्टर",
		"hospital": "रुग्णालय",
		"rest":     "विश्रांती",
		"water":    "पाणी",
	},
}

// translationService localizes chat replies. It prefers the external
// translate API and degrades to dictionary-based term substitution when the
// API is not configured or fails.
type translationService struct {
	client  adapter.TranslateClient
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewTranslationService constructs a TranslationService over the given
// translate client.
func NewTranslationService(client adapter.TranslateClient, m *metrics.Metrics, logger *logger.Logger) TranslationService {
	return &translationService{client: client, metrics: m, logger: logger}
}

// Supported reports whether the language has a disclaimer, which is the
// contract for being a serveable reply language.
func (t *translationService) Supported(language string) bool {
	_, ok := disclaimers[language]
	return ok
}

// Localize translates an english reply into the target language and returns
// it together with the matching disclaimer. Unknown or english targets pass
// the text through untouched. A failing translate API downgrades to the term
// dictionary rather than failing the chat turn.
func (t *translationService) Localize(ctx context.Context, text, target string) (string, string, error) {
	if target == "" {
		target = "en"
	}
	disclaimer, ok := disclaimers[target]
	if !ok {
		return text, disclaimers["en"], nil
	}
	if target == "en" {
		return text, disclaimer, nil
	}

	if t.client.Configured() {
		translated, err := t.client.Translate(ctx, text, "en", target)
		if err == nil {
			t.metrics.UpstreamRequestsTotal.WithLabelValues("translate", "ok").Inc()
			return translated, disclaimer, nil
		}

		t.metrics.UpstreamRequestsTotal.WithLabelValues("translate", "error").Inc()
		logger.FromContext(ctx).Err(err).Str("target", target).Msg("translate api failed, using term dictionary")
	}

	return substituteTerms(text, target), disclaimer, nil
}

// substituteTerms replaces known english medical terms with their
// translations. Matching is case-insensitive on whole lowercase terms.
func substituteTerms(text, target string) string {
	terms, ok := fallbackTerms[target]
	if !ok {
		return text
	}

	lowered := strings.ToLower(text)
	for english, translated := range terms {
		lowered = strings.ReplaceAll(lowered, english, translated)
	}
	return lowered
}
