package domain

// Urgency is the five-level classification of how quickly care should be sought.
type Urgency string

const (
	UrgencyNonUrgent Urgency = "non_urgent"
	UrgencyRoutine   Urgency = "routine"
	UrgencyPrompt    Urgency = "prompt"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

// Valid reports whether u is one of the known urgency levels.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyNonUrgent, UrgencyRoutine, UrgencyPrompt, UrgencyUrgent, UrgencyEmergency:
		return true
	}
	return false
}

// Severity is how strongly a single condition's symptoms match.
type Severity string

const (
	SeverityMild        Severity = "mild"
	SeverityModerate    Severity = "moderate"
	SeveritySignificant Severity = "significant"
	SeveritySevere      Severity = "severe"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySignificant, SeveritySevere:
		return true
	}
	return false
}

// Symptom is an atomic reported sensation or finding.
type Symptom struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Locations   []string `json:"locations,omitempty"`
	BodySystems []string `json:"bodySystems,omitempty"`
	Attributes  []string `json:"attributes,omitempty"`
}

// Condition is a possible diagnosis defined by its associated symptoms.
// UrgencyLevel is reference data only; result urgency is derived from
// match severity.
type Condition struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	SymptomIDs      []string `json:"symptoms"`
	UrgencyLevel    Urgency  `json:"urgencyLevel"`
	BodySystems     []string `json:"bodySystems"`
	Recommendations []string `json:"recommendations"`
}
