// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-medichat Authors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/medichat/go-medichat/internal/logger"
	"github.com/medichat/go-medichat/internal/metrics"
	"github.com/medichat/go-medichat/internal/store"
	"github.com/medichat/go-medichat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssessmentService() AssessmentService {
	sessions := store.NewMemorySessionStore(time.Hour, logger.Nop())
	return NewAssessmentService(sessions, metrics.NewNop(), logger.Nop())
}

func TestAssessment_FullFlow(t *testing.T) {
	svc := newTestAssessmentService()
	ctx := context.Background()

	started, err := svc.Start(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, started.SessionID)
	require.NotNil(t, started.Question)
	assert.Equal(t, models.StepSymptom, started.Question.Step)
	assert.False(t, started.IsComplete)

	id := started.SessionID

	resp, err := svc.Answer(ctx, id, "I have a really bad headache")
	require.NoError(t, err)
	require.NotNil(t, resp.Question)
	assert.Equal(t, models.StepDuration, resp.Question.Step)

	resp, err = svc.Answer(ctx, id, "for about 2 days")
	require.NoError(t, err)
	require.NotNil(t, resp.Question)
	assert.Equal(t, models.StepSeverity, resp.Question.Step)

	resp, err = svc.Answer(ctx, id, "7 out of 10")
	require.NoError(t, err)
	require.NotNil(t, resp.Question)
	assert.Equal(t, models.StepAdditionalSymptoms, resp.Question.Step)

	resp, err = svc.Answer(ctx, id, "I also feel nauseous and sensitive to light")
	require.NoError(t, err)
	require.NotNil(t, resp.Question)
	assert.Equal(t, models.StepMedicalHistory, resp.Question.Step)

	resp, err = svc.Answer(ctx, id, "no")
	require.NoError(t, err)
	assert.True(t, resp.IsComplete)
	assert.Nil(t, resp.Question)
	require.NotNil(t, resp.Assessment)

	summary := resp.Assessment
	assert.Equal(t, "headache", summary.PrimarySymptom)
	assert.Equal(t, "2 days", summary.Duration)
	assert.Equal(t, models.SeveritySevere, summary.Severity)
	assert.Contains(t, summary.AdditionalSymptoms, "nausea")
	assert.Contains(t, summary.AdditionalSymptoms, "light sensitivity")
	assert.Empty(t, summary.MedicalHistory)
	assert.Equal(t, "high", summary.UrgencyLevel)

	require.NotEmpty(t, summary.DiseasePredictions)
	assert.Equal(t, "Migraine", summary.DiseasePredictions[0].Disease)
}

func TestAssessment_UnrecognisedSymptomKeptVerbatim(t *testing.T) {
	svc := newTestAssessmentService()
	ctx := context.Background()

	started, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.Answer(ctx, started.SessionID, "My Elbow Feels Strange")
	require.NoError(t, err)

	briefs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, briefs, 1)
	assert.Equal(t, "my elbow feels strange", briefs[0].PrimarySymptom)
}

func TestAssessment_EmergencySymptomForcesHighUrgency(t *testing.T) {
	svc := newTestAssessmentService()
	ctx := context.Background()

	started, err := svc.Start(ctx)
	require.NoError(t, err)
	id := started.SessionID

	answers := []string{"chest pain", "an hour", "2 out of 10", "no", "no"}
	var resp models.AssessmentResponse
	for _, answer := range answers {
		resp, err = svc.Answer(ctx, id, answer)
		require.NoError(t, err)
	}

	require.NotNil(t, resp.Assessment)
	assert.Equal(t, models.SeverityMild, resp.Assessment.Severity)
	assert.Equal(t, "high", resp.Assessment.UrgencyLevel)
}

func TestAssessment_UnknownSession(t *testing.T) {
	svc := newTestAssessmentService()

	_, err := svc.Answer(context.Background(), "no-such-session", "hello")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Summary(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAssessment_BlankAnswerRejected(t *testing.T) {
	svc := newTestAssessmentService()

	started, err := svc.Start(context.Background())
	require.NoError(t, err)

	_, err = svc.Answer(context.Background(), started.SessionID, "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAssessment_CompletedSessionRejectsFurtherAnswers(t *testing.T) {
	svc := newTestAssessmentService()
	ctx := context.Background()

	started, err := svc.Start(ctx)
	require.NoError(t, err)
	id := started.SessionID

	for _, answer := range []string{"fever", "2 days", "mild", "no", "no"} {
		_, err = svc.Answer(ctx, id, answer)
		require.NoError(t, err)
	}

	_, err = svc.Answer(ctx, id, "one more thing")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	// The summary stays retrievable after completion.
	summary, err := svc.Summary(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "fever", summary.PrimarySymptom)
}

func TestAssessment_DeleteIsIdempotent(t *testing.T) {
	svc := newTestAssessmentService()
	ctx := context.Background()

	started, err := svc.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, started.SessionID))
	require.NoError(t, svc.Delete(ctx, started.SessionID))

	briefs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, briefs)
}
