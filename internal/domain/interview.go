package domain

import (
	"encoding/json"
	"time"
)

// BasicInfo is the first wizard step.
type BasicInfo struct {
	Age    *int     `json:"age" validate:"required,min=0,max=120"`
	Gender string   `json:"gender" validate:"required,oneof=male female other prefer_not_to_say"`
	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// AgeValue returns the reported age, or 0 when absent.
func (b *BasicInfo) AgeValue() int {
	if b == nil || b.Age == nil {
		return 0
	}
	return *b.Age
}

// SelectedSymptoms is the symptom selection step.
type SelectedSymptoms struct {
	Symptoms      []string `json:"symptoms" validate:"required"`
	OtherSymptoms string   `json:"otherSymptoms,omitempty"`
	Duration      string   `json:"duration" validate:"required,oneof=today 2-3_days 4-7_days 1+_weeks"`
	Severity      int      `json:"severity" validate:"min=1,max=10"`
}

// SymptomDetails describes the selected symptoms further.
type SymptomDetails struct {
	Location        string   `json:"location,omitempty"`
	Triggers        []string `json:"triggers,omitempty"`
	Timing          string   `json:"timing,omitempty"`
	Characteristics []string `json:"characteristics,omitempty"`
}

// MedicalHistory lists pre-existing conditions and related history.
type MedicalHistory struct {
	Conditions    []string `json:"conditions,omitempty"`
	Medications   []string `json:"medications,omitempty"`
	Allergies     []string `json:"allergies,omitempty"`
	FamilyHistory []string `json:"familyHistory,omitempty"`
}

// ConditionMatch is one scored condition in a Result.
type ConditionMatch struct {
	Name            string   `json:"name" validate:"required"`
	Confidence      int      `json:"confidence" validate:"min=0,max=100"`
	Severity        Severity `json:"severity" validate:"required,oneof=mild moderate significant severe"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations" validate:"required"`
}

// Result is the outcome of scoring an interview.
type Result struct {
	Conditions      []ConditionMatch `json:"conditions" validate:"required,dive"`
	Urgency         Urgency          `json:"urgency" validate:"required,oneof=non_urgent routine prompt urgent emergency"`
	Recommendations []string         `json:"recommendations" validate:"required"`
}

// Interview is a persisted interview snapshot. The step payloads are kept
// as the exact bytes that were submitted.
type Interview struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"userId"`
	BasicInfo        json.RawMessage `json:"basicInfo"`
	SelectedSymptoms json.RawMessage `json:"selectedSymptoms"`
	SymptomDetails   json.RawMessage `json:"symptomDetails"`
	MedicalHistory   json.RawMessage `json:"medicalHistory"`
	Results          json.RawMessage `json:"results"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// NewInterview holds the fields required to persist an interview.
type NewInterview struct {
	UserID           int64           `json:"userId"`
	BasicInfo        json.RawMessage `json:"basicInfo"`
	SelectedSymptoms json.RawMessage `json:"selectedSymptoms"`
	SymptomDetails   json.RawMessage `json:"symptomDetails"`
	MedicalHistory   json.RawMessage `json:"medicalHistory"`
	Results          json.RawMessage `json:"results"`
}
