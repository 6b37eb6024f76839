// Package scoring ranks catalog conditions against reported symptoms.
package scoring

import (
	"fmt"
	"sort"

	"github.com/ashureev/symcheck/internal/catalog"
	"github.com/ashureev/symcheck/internal/domain"
)

// Age above which high-risk conditions are always reported as severe.
const elderlyAge = 65

// Minimum match percentage, exclusive, for a condition to be reported.
const inclusionThreshold = 20

var highRiskForElderly = map[string]struct{}{
	"pneumonia":    {},
	"heart_attack": {},
	"covid_19":     {},
}

var generalRecommendations = []string{
	"Consult with a healthcare provider for a proper diagnosis",
	"Monitor your symptoms and seek medical attention if they worsen",
	"Maintain adequate hydration and rest",
}

var urgencyRecommendation = map[domain.Urgency]string{
	domain.UrgencyUrgent: "Consider seeking medical attention promptly",
	domain.UrgencyPrompt: "Consider scheduling an appointment with your doctor soon",
}

// Engine scores symptoms against a fixed condition list.
type Engine struct {
	conditions []domain.Condition
}

// NewEngine creates an engine over conditions. The list order is the
// tie-break order for equal confidence.
func NewEngine(conditions []domain.Condition) *Engine {
	return &Engine{conditions: conditions}
}

// Default returns an engine over the built-in condition catalog.
func Default() *Engine {
	return NewEngine(catalog.Conditions())
}

// PredictConditions scores symptoms against the built-in catalog.
func PredictConditions(symptoms []string, age int, gender string) (domain.Result, error) {
	return Default().Predict(symptoms, age, gender)
}

// Predict returns the matched conditions ranked by confidence, the overall
// urgency and general recommendations. Gender is accepted for parity with
// the intake form and does not affect scoring.
func (e *Engine) Predict(symptoms []string, age int, _ string) (domain.Result, error) {
	selected := make(map[string]struct{}, len(symptoms))
	for _, s := range symptoms {
		selected[s] = struct{}{}
	}

	matches := make([]domain.ConditionMatch, 0)
	for _, c := range e.conditions {
		total := len(c.SymptomIDs)
		if total == 0 {
			return domain.Result{}, fmt.Errorf("score condition %q: no symptoms: %w", c.ID, domain.ErrInvalidCatalogEntry)
		}

		matched := 0
		for _, id := range c.SymptomIDs {
			if _, ok := selected[id]; ok {
				matched++
			}
		}
		if matched == 0 {
			continue
		}

		severity := severityFor(matched, total)
		if _, risky := highRiskForElderly[c.ID]; risky && age > elderlyAge {
			severity = domain.SeveritySevere
		}

		// matched/total*100 > 20, compared exactly.
		if matched*100 <= inclusionThreshold*total {
			continue
		}

		recs := make([]string, len(c.Recommendations))
		copy(recs, c.Recommendations)
		matches = append(matches, domain.ConditionMatch{
			Name:            c.Name,
			Confidence:      roundPercent(matched, total),
			Severity:        severity,
			Description:     c.Description,
			Recommendations: recs,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	urgency := overallUrgency(matches)
	recs := make([]string, 0, len(generalRecommendations)+1)
	if extra, ok := urgencyRecommendation[urgency]; ok {
		recs = append(recs, extra)
	}
	recs = append(recs, generalRecommendations...)

	return domain.Result{
		Conditions:      matches,
		Urgency:         urgency,
		Recommendations: recs,
	}, nil
}

// severityFor maps the match percentage onto half-open buckets
// [0,30) [30,50) [50,75) [75,100].
func severityFor(matched, total int) domain.Severity {
	pct := matched * 100
	switch {
	case pct < 30*total:
		return domain.SeverityMild
	case pct < 50*total:
		return domain.SeverityModerate
	case pct < 75*total:
		return domain.SeveritySignificant
	default:
		return domain.SeveritySevere
	}
}

// roundPercent rounds matched/total*100 half up.
func roundPercent(matched, total int) int {
	return (matched*200 + total) / (2 * total)
}

func overallUrgency(matches []domain.ConditionMatch) domain.Urgency {
	has := func(s domain.Severity) bool {
		for _, m := range matches {
			if m.Severity == s {
				return true
			}
		}
		return false
	}

	switch {
	case has(domain.SeveritySevere):
		return domain.UrgencyUrgent
	case has(domain.SeveritySignificant):
		return domain.UrgencyPrompt
	case has(domain.SeverityModerate):
		return domain.UrgencyRoutine
	default:
		return domain.UrgencyNonUrgent
	}
}
