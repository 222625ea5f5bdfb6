package models

import "time"

// SeverityLevel grades how strongly a symptom affects the user.
type SeverityLevel string

const (
	SeverityMild       SeverityLevel = "mild"
	SeverityModerate   SeverityLevel = "moderate"
	SeveritySevere     SeverityLevel = "severe"
	SeverityVerySevere SeverityLevel = "very_severe"
)

// AssessmentStep identifies the current stage of a guided symptom assessment.
// Steps advance strictly in the order they are declared below.
type AssessmentStep string

const (
	StepSymptom            AssessmentStep = "symptom"
	StepDuration           AssessmentStep = "duration"
	StepSeverity           AssessmentStep = "severity"
	StepAdditionalSymptoms AssessmentStep = "additional_symptoms"
	StepMedicalHistory     AssessmentStep = "medical_history"
	StepComplete           AssessmentStep = "complete"
)

// AssessmentSession is the full state of one guided symptom assessment.
// Sessions are keyed by SessionID and live in a SessionStore until they
// complete, expire, or are deleted by the client.
type AssessmentSession struct {
	// SessionID is the uuid assigned when the assessment was started.
	SessionID string `json:"session_id"`

	// Step is the stage the assessment is currently waiting on.
	Step AssessmentStep `json:"step"`

	// PrimarySymptom is the main complaint extracted from the first answer.
	PrimarySymptom string `json:"primary_symptom,omitempty"`

	// Duration is how long the user reports having the symptom.
	Duration string `json:"duration,omitempty"`

	// Severity is the graded strength of the primary symptom.
	Severity SeverityLevel `json:"severity,omitempty"`

	// AdditionalSymptoms collects further complaints mentioned by the user.
	AdditionalSymptoms []string `json:"additional_symptoms,omitempty"`

	// MedicalHistory is free-text pre-existing condition information.
	MedicalHistory string `json:"medical_history,omitempty"`

	// Responses keeps the raw answer given at each step, keyed by step name.
	Responses map[string]string `json:"responses,omitempty"`

	// CreatedAt is when the session was started.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every processed response; session expiry is
	// measured against it.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsComplete reports whether the assessment has reached its final step.
func (s AssessmentSession) IsComplete() bool {
	return s.Step == StepComplete
}

// Question is the next prompt the assessment asks the user.
type Question struct {
	// Text is the question itself. Empty on the completion summary.
	Text string `json:"question"`

	// Type hints at the expected answer kind ("text", "scale", "summary").
	Type string `json:"type"`

	// Step names the assessment stage the question belongs to.
	Step AssessmentStep `json:"step"`

	// Examples suggests valid answers to the user.
	Examples []string `json:"examples,omitempty"`
}

// DiseasePrediction is a rule-based match of reported symptoms against a
// known condition pattern.
type DiseasePrediction struct {
	// Disease is the condition name.
	Disease string `json:"disease"`

	// Confidence is the fraction of the condition's pattern symptoms that
	// the user reported, in (0, 1].
	Confidence float64 `json:"confidence"`

	// TypicalDuration is how long the condition usually lasts.
	TypicalDuration string `json:"typical_duration,omitempty"`

	// TypicalSeverity is the usual severity range of the condition.
	TypicalSeverity string `json:"typical_severity,omitempty"`
}

// AssessmentSummary is produced when an assessment completes. It restates
// the collected answers and attaches urgency plus disease predictions.
type AssessmentSummary struct {
	PrimarySymptom     string              `json:"primary_symptom"`
	Duration           string              `json:"duration"`
	Severity           SeverityLevel       `json:"severity"`
	AdditionalSymptoms []string            `json:"additional_symptoms"`
	MedicalHistory     string              `json:"medical_history,omitempty"`
	UrgencyLevel       string              `json:"urgency_level"`
	DiseasePredictions []DiseasePrediction `json:"disease_predictions"`
}
