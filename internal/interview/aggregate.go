// Package interview holds the per-session wizard state and the service
// that scores and persists it.
package interview

import "github.com/ashureev/symcheck/internal/domain"

// Interview accumulates the wizard's answer blocks for one session. Each
// update replaces its block wholesale.
type Interview struct {
	BasicInfo        *domain.BasicInfo        `json:"basicInfo,omitempty"`
	SelectedSymptoms *domain.SelectedSymptoms `json:"selectedSymptoms,omitempty"`
	SymptomDetails   *domain.SymptomDetails   `json:"symptomDetails,omitempty"`
	MedicalHistory   *domain.MedicalHistory   `json:"medicalHistory,omitempty"`
	Results          *domain.Result           `json:"results,omitempty"`

	// SavedInterviewID is the stored record for the current answers, or 0
	// when they have not been saved yet.
	SavedInterviewID int64 `json:"savedInterviewId,omitempty"`
	SavedUserID      int64 `json:"savedUserId,omitempty"`
}

// UpdateBasicInfo replaces the basic info block.
func (iv *Interview) UpdateBasicInfo(b domain.BasicInfo) {
	iv.BasicInfo = &b
	iv.markChanged()
}

// UpdateSymptoms replaces the selected symptoms block.
func (iv *Interview) UpdateSymptoms(s domain.SelectedSymptoms) {
	s.Symptoms = append([]string{}, s.Symptoms...)
	iv.SelectedSymptoms = &s
	iv.markChanged()
}

// UpdateSymptomDetails replaces the symptom details block.
func (iv *Interview) UpdateSymptomDetails(d domain.SymptomDetails) {
	iv.SymptomDetails = &d
	iv.markChanged()
}

// UpdateMedicalHistory replaces the medical history block.
func (iv *Interview) UpdateMedicalHistory(h domain.MedicalHistory) {
	iv.MedicalHistory = &h
	iv.markChanged()
}

// UpdateResults replaces the last computed result. Results derive from the
// other blocks, so this does not invalidate a save.
func (iv *Interview) UpdateResults(r domain.Result) {
	iv.Results = &r
}

// Clear resets the interview to empty.
func (iv *Interview) Clear() {
	*iv = Interview{}
}

// Empty reports whether no block has been filled in.
func (iv *Interview) Empty() bool {
	return iv.BasicInfo == nil && iv.SelectedSymptoms == nil &&
		iv.SymptomDetails == nil && iv.MedicalHistory == nil && iv.Results == nil
}

// SymptomIDs returns the selected symptom ids, if any.
func (iv *Interview) SymptomIDs() []string {
	if iv.SelectedSymptoms == nil {
		return nil
	}
	return iv.SelectedSymptoms.Symptoms
}

func (iv *Interview) markChanged() {
	iv.SavedInterviewID = 0
	iv.SavedUserID = 0
}
