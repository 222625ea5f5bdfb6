// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package service

import (
	"context"
	"sort"
	"strings"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/models"
)

// maxPredictions caps how many conditions a single prediction returns.
const maxPredictions = 3

// diseasePattern describes the canonical symptom set of one condition.
type diseasePattern struct {
	disease         string
	symptoms        []string
	typicalDuration string
	typicalSeverity string
}

// diseasePatterns is the rule base of the predictor. Confidence of a match
// is the fraction of a condition's pattern symptoms the user reported.
var diseasePatterns = []diseasePattern{
	{
		disease:         "Common Cold",
		symptoms:        []string{"cough", "sore throat", "runny nose", "sneezing"},
		typicalDuration: "1-2 weeks",
		typicalSeverity: "mild to moderate",
	},
	{
		disease:         "Influenza (Flu)",
		symptoms:        []string{"fever", "body ache", "headache", "fatigue", "cough"},
		typicalDuration: "1-2 weeks",
		typicalSeverity: "moderate to severe",
	},
	{
		disease:         "COVID-19",
		symptoms:        []string{"fever", "cough", "fatigue", "loss of taste", "breathlessness"},
		typicalDuration: "2-6 weeks",
		typicalSeverity: "mild to severe",
	},
	{
		disease:         "Migraine",
		symptoms:        []string{"headache", "nausea", "light sensitivity", "vision changes"},
		typicalDuration: "4-72 hours",
		typicalSeverity: "moderate to severe",
	},
	{
		disease:         "Gastroenteritis",
		symptoms:        []string{"stomach pain", "nausea", "vomiting", "diarrhea"},
		typicalDuration: "1-3 days",
		typicalSeverity: "moderate",
	},
}

// predictionService is the concrete implementation of PredictionService: a
// rule-based matcher over diseasePatterns. It is intentionally simple and
// explainable; the chat pipeline handles open-ended questions.
type predictionService struct {
	extractor *symptomExtractor
	logger    *logger.Logger
}

// NewPredictionService constructs a PredictionService.
func NewPredictionService(logger *logger.Logger) PredictionService {
	return &predictionService{extractor: newSymptomExtractor(), logger: logger}
}

// Predict extracts canonical symptoms from the free-text description and
// scores them against every known condition pattern. Returns at most three
// predictions ordered by confidence; an empty slice when nothing matches.
//
// Returns ErrInvalidDataProvided when the text is blank.
func (p *predictionService) Predict(ctx context.Context, symptoms string) ([]models.DiseasePrediction, error) {
	if strings.TrimSpace(symptoms) == "" {
		return nil, ErrInvalidDataProvided
	}

	extracted := p.extractor.ExtractSymptoms(symptoms)
	predictions := predictFromSymptoms(extracted)

	logger.FromContext(ctx).Debug().
		Strs("symptoms", extracted).
		Int("predictions", len(predictions)).
		Msg("disease prediction computed")

	return predictions, nil
}

// predictFromSymptoms scores canonical symptoms against the rule base.
func predictFromSymptoms(symptoms []string) []models.DiseasePrediction {
	reported := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		reported[s] = true
	}

	var predictions []models.DiseasePrediction
	for _, pattern := range diseasePatterns {
		matches := 0
		for _, symptom := range pattern.symptoms {
			if reported[symptom] {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		predictions = append(predictions, models.DiseasePrediction{
			Disease:         pattern.disease,
			Confidence:      float64(matches) / float64(len(pattern.symptoms)),
			TypicalDuration: pattern.typicalDuration,
			TypicalSeverity: pattern.typicalSeverity,
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Confidence > predictions[j].Confidence
	})

	if len(predictions) > maxPredictions {
		predictions = predictions[:maxPredictions]
	}
	return predictions
}
