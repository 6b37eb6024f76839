// Package catalog holds the static symptom and condition reference data.
package catalog

import (
	"fmt"

	"github.com/ashureev/symcheck/internal/domain"
)

var (
	symptomIndex   = indexSymptoms(symptoms)
	conditionIndex = indexConditions(conditions)
)

func indexSymptoms(list []domain.Symptom) map[string]int {
	idx := make(map[string]int, len(list))
	for i, s := range list {
		idx[s.ID] = i
	}
	return idx
}

func indexConditions(list []domain.Condition) map[string]int {
	idx := make(map[string]int, len(list))
	for i, c := range list {
		idx[c.ID] = i
	}
	return idx
}

// Symptoms returns the symptom catalog in declaration order.
func Symptoms() []domain.Symptom {
	out := make([]domain.Symptom, len(symptoms))
	copy(out, symptoms)
	return out
}

// Conditions returns the condition catalog in declaration order.
func Conditions() []domain.Condition {
	out := make([]domain.Condition, len(conditions))
	copy(out, conditions)
	return out
}

// SymptomByID returns the symptom with the given id.
func SymptomByID(id string) (domain.Symptom, bool) {
	i, ok := symptomIndex[id]
	if !ok {
		return domain.Symptom{}, false
	}
	return symptoms[i], true
}

// SymptomsByIDs returns the known symptoms among ids, in catalog order.
// Unknown ids are skipped.
func SymptomsByIDs(ids []string) []domain.Symptom {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []domain.Symptom
	for _, s := range symptoms {
		if _, ok := want[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}

// ConditionByID returns the condition with the given id.
func ConditionByID(id string) (domain.Condition, bool) {
	i, ok := conditionIndex[id]
	if !ok {
		return domain.Condition{}, false
	}
	return conditions[i], true
}

// SymptomsBySystem groups symptoms by body system. A symptom appears under
// every system it belongs to, in catalog order.
func SymptomsBySystem() map[string][]domain.Symptom {
	out := make(map[string][]domain.Symptom)
	for _, s := range symptoms {
		for _, system := range s.BodySystems {
			out[system] = append(out[system], s)
		}
	}
	return out
}

// Validate checks the catalog invariants: unique ids, a non-empty symptom
// set on every condition, and no condition referencing an unknown symptom.
func Validate(symptomList []domain.Symptom, conditionList []domain.Condition) error {
	known := make(map[string]struct{}, len(symptomList))
	for _, s := range symptomList {
		if s.ID == "" {
			return fmt.Errorf("symptom with empty id: %w", domain.ErrInvalidCatalogEntry)
		}
		if _, dup := known[s.ID]; dup {
			return fmt.Errorf("duplicate symptom %q: %w", s.ID, domain.ErrInvalidCatalogEntry)
		}
		known[s.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(conditionList))
	for _, c := range conditionList {
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("duplicate condition %q: %w", c.ID, domain.ErrInvalidCatalogEntry)
		}
		seen[c.ID] = struct{}{}

		if len(c.SymptomIDs) == 0 {
			return fmt.Errorf("condition %q has no symptoms: %w", c.ID, domain.ErrInvalidCatalogEntry)
		}
		if !c.UrgencyLevel.Valid() {
			return fmt.Errorf("condition %q has urgency %q: %w", c.ID, c.UrgencyLevel, domain.ErrInvalidCatalogEntry)
		}
		for _, id := range c.SymptomIDs {
			if _, ok := known[id]; !ok {
				return fmt.Errorf("condition %q references unknown symptom %q: %w", c.ID, id, domain.ErrInvalidCatalogEntry)
			}
		}
	}
	return nil
}

// ValidateDefault validates the built-in catalog.
func ValidateDefault() error {
	return Validate(symptoms, conditions)
}
