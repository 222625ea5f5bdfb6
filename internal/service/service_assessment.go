// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/metrics"
	"github.com/medichat/go-medichat/internal/store"
	"github.com/medichat/go-medichat/internal/utils"
	"github.com/medichat/go-medichat/models"
)

// stepQuestions is the fixed script of the guided assessment, keyed by the
// step the answer belongs to.
var stepQuestions = map[models.AssessmentStep]models.Question{
	models.StepSymptom: {
		Text:     "What is the main symptom that's bothering you?",
		Type:     "text",
		Step:     models.StepSymptom,
		Examples: []string{"I have a headache", "I've been coughing", "My stomach hurts"},
	},
	models.StepDuration: {
		Text:     "How long have you been experiencing this?",
		Type:     "text",
		Step:     models.StepDuration,
		Examples: []string{"2 days", "since yesterday", "about a week"},
	},
	models.StepSeverity: {
		Text:     "How severe is it on a scale of 1 to 10?",
		Type:     "scale",
		Step:     models.StepSeverity,
		Examples: []string{"3 out of 10", "7/10", "it's mild"},
	},
	models.StepAdditionalSymptoms: {
		Text:     "Do you have any other symptoms?",
		Type:     "text",
		Step:     models.StepAdditionalSymptoms,
		Examples: []string{"I also have a fever", "no, nothing else"},
	},
	models.StepMedicalHistory: {
		Text:     "Do you have any pre-existing medical conditions or take any regular medication?",
		Type:     "text",
		Step:     models.StepMedicalHistory,
		Examples: []string{"I have diabetes", "no"},
	},
}

// stepOrder fixes the progression of the assessment.
var stepOrder = []models.AssessmentStep{
	models.StepSymptom,
	models.StepDuration,
	models.StepSeverity,
	models.StepAdditionalSymptoms,
	models.StepMedicalHistory,
	models.StepComplete,
}

// assessmentService is the concrete implementation of AssessmentService: a
// scripted state machine over a SessionStore, with symptom extraction on
// every answer and a rule-based prediction attached to the final summary.
type assessmentService struct {
	sessions  store.SessionStore
	extractor *symptomExtractor
	uuid      *utils.UUIDGenerator
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

// NewAssessmentService constructs an AssessmentService over the given
// session store.
func NewAssessmentService(sessions store.SessionStore, m *metrics.Metrics, logger *logger.Logger) AssessmentService {
	return &assessmentService{
		sessions:  sessions,
		extractor: newSymptomExtractor(),
		uuid:      utils.NewUUIDGenerator(),
		metrics:   m,
		logger:    logger,
	}
}

// Start opens a new assessment session and returns its first question.
func (a *assessmentService) Start(ctx context.Context) (models.AssessmentResponse, error) {
	now := time.Now()
	session := models.AssessmentSession{
		SessionID: a.uuid.Generate(),
		Step:      models.StepSymptom,
		Responses: make(map[string]string),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := a.sessions.Save(ctx, session); err != nil {
		return models.AssessmentResponse{}, fmt.Errorf("saving assessment session ended with error: %w", err)
	}

	a.metrics.AssessmentSessionsStarted.Inc()
	logger.FromContext(ctx).Info().Str("session_id", session.SessionID).Msg("assessment session started")

	question := stepQuestions[models.StepSymptom]
	return models.AssessmentResponse{
		SessionID: session.SessionID,
		Question:  &question,
	}, nil
}

// Answer records the user's response for the session's current step and
// advances the state machine. When the final step completes, the response
// carries the assessment summary instead of a next question.
//
// Returns ErrSessionNotFound for unknown or expired sessions and
// ErrInvalidDataProvided for blank answers or already-completed sessions.
func (a *assessmentService) Answer(ctx context.Context, sessionID, message string) (models.AssessmentResponse, error) {
	message = strings.TrimSpace(message)
	if sessionID == "" || message == "" {
		return models.AssessmentResponse{}, ErrInvalidDataProvided
	}

	session, err := a.getSession(ctx, sessionID)
	if err != nil {
		return models.AssessmentResponse{}, err
	}
	if session.IsComplete() {
		return models.AssessmentResponse{}, ErrInvalidDataProvided
	}

	session.Responses[string(session.Step)] = message
	a.applyAnswer(&session, message)
	session.Step = nextStep(session.Step)
	session.UpdatedAt = time.Now()

	if err = a.sessions.Save(ctx, session); err != nil {
		return models.AssessmentResponse{}, fmt.Errorf("saving assessment session ended with error: %w", err)
	}

	response := models.AssessmentResponse{
		SessionID:  session.SessionID,
		IsComplete: session.IsComplete(),
	}
	if session.IsComplete() {
		summary := a.buildSummary(session)
		response.Assessment = &summary
	} else {
		question := stepQuestions[session.Step]
		response.Question = &question
	}
	return response, nil
}

// applyAnswer folds the answer into the session state for the current step.
func (a *assessmentService) applyAnswer(session *models.AssessmentSession, message string) {
	switch session.Step {
	case models.StepSymptom:
		symptoms := a.extractor.ExtractSymptoms(message)
		if len(symptoms) == 0 {
			session.PrimarySymptom = strings.ToLower(message)
			return
		}
		session.PrimarySymptom = symptoms[0]
		session.AdditionalSymptoms = appendUnique(session.AdditionalSymptoms, symptoms[1:]...)
	case models.StepDuration:
		session.Duration = a.extractor.ExtractDuration(message)
	case models.StepSeverity:
		session.Severity = a.extractor.ExtractSeverity(message)
	case models.StepAdditionalSymptoms:
		if a.extractor.IsNegativeAnswer(message) {
			return
		}
		symptoms := a.extractor.ExtractSymptoms(message)
		session.AdditionalSymptoms = appendUnique(session.AdditionalSymptoms, symptoms...)
	case models.StepMedicalHistory:
		if !a.extractor.IsNegativeAnswer(message) {
			session.MedicalHistory = message
		}
	}
}

// Summary returns the final assessment for a completed session.
func (a *assessmentService) Summary(ctx context.Context, sessionID string) (models.AssessmentSummary, error) {
	session, err := a.getSession(ctx, sessionID)
	if err != nil {
		return models.AssessmentSummary{}, err
	}
	if !session.IsComplete() {
		return models.AssessmentSummary{}, fmt.Errorf("%w: assessment still in progress", ErrInvalidDataProvided)
	}
	return a.buildSummary(session), nil
}

// List returns a brief for every live session.
func (a *assessmentService) List(ctx context.Context) ([]models.SessionBrief, error) {
	sessions, err := a.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing assessment sessions ended with error: %w", err)
	}

	briefs := make([]models.SessionBrief, 0, len(sessions))
	for _, session := range sessions {
		briefs = append(briefs, models.SessionBrief{
			SessionID:      session.SessionID,
			CurrentStep:    session.Step,
			PrimarySymptom: session.PrimarySymptom,
			IsComplete:     session.IsComplete(),
		})
	}
	return briefs, nil
}

// Delete drops a session. Deleting an unknown session is not an error.
func (a *assessmentService) Delete(ctx context.Context, sessionID string) error {
	if err := a.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		return fmt.Errorf("deleting assessment session ended with error: %w", err)
	}
	return nil
}

func (a *assessmentService) getSession(ctx context.Context, sessionID string) (models.AssessmentSession, error) {
	session, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.AssessmentSession{}, ErrSessionNotFound
		}
		return models.AssessmentSession{}, fmt.Errorf("loading assessment session ended with error: %w", err)
	}
	return session, nil
}

// buildSummary assembles the completed assessment: the collected answers,
// the urgency grade, and the rule-based disease predictions.
func (a *assessmentService) buildSummary(session models.AssessmentSession) models.AssessmentSummary {
	allSymptoms := appendUnique([]string{session.PrimarySymptom}, session.AdditionalSymptoms...)

	return models.AssessmentSummary{
		PrimarySymptom:     session.PrimarySymptom,
		Duration:           session.Duration,
		Severity:           session.Severity,
		AdditionalSymptoms: session.AdditionalSymptoms,
		MedicalHistory:     session.MedicalHistory,
		UrgencyLevel:       urgencyFor(session.Severity, allSymptoms),
		DiseasePredictions: predictFromSymptoms(allSymptoms),
	}
}

// emergencySymptoms force a high urgency regardless of the reported severity.
var emergencySymptoms = map[string]bool{
	"chest pain":     true,
	"breathlessness": true,
}

// urgencyFor grades how urgently the user should seek care.
func urgencyFor(severity models.SeverityLevel, symptoms []string) string {
	for _, symptom := range symptoms {
		if emergencySymptoms[symptom] {
			return "high"
		}
	}

	switch severity {
	case models.SeverityVerySevere, models.SeveritySevere:
		return "high"
	case models.SeverityModerate:
		return "medium"
	default:
		return "low"
	}
}

// nextStep returns the step after current; complete is terminal.
func nextStep(current models.AssessmentStep) models.AssessmentStep {
	for i, step := range stepOrder {
		if step == current && i+1 < len(stepOrder) {
			return stepOrder[i+1]
		}
	}
	return models.StepComplete
}

// appendUnique appends the items not already present, preserving order.
func appendUnique(dst []string, items ...string) []string {
	seen := make(map[string]bool, len(dst)+len(items))
	for _, item := range dst {
		seen[item] = true
	}
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		dst = append(dst, item)
		seen[item] = true
	}
	return dst
}
