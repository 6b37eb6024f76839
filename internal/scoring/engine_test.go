package scoring

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/ashureev/symcheck/internal/catalog"
	"github.com/ashureev/symcheck/internal/domain"
)

func names(matches []domain.ConditionMatch) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Name)
	}
	return out
}

func TestPredictEmptySymptoms(t *testing.T) {
	for _, in := range [][]string{nil, {}} {
		res, err := PredictConditions(in, 30, "male")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Conditions == nil || len(res.Conditions) != 0 {
			t.Fatalf("expected empty non-nil conditions, got %#v", res.Conditions)
		}
		if res.Urgency != domain.UrgencyNonUrgent {
			t.Errorf("expected non_urgent, got %s", res.Urgency)
		}
		if !reflect.DeepEqual(res.Recommendations, generalRecommendations) {
			t.Errorf("expected only the general recommendations, got %v", res.Recommendations)
		}
	}
}

func TestPredictRespiratoryElderly(t *testing.T) {
	res, err := PredictConditions([]string{"fever", "cough", "fatigue", "chest_pain"}, 70, "male")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"Bronchitis",
		"Pneumonia",
		"Influenza (Flu)",
		"COVID-19",
		"Common Cold",
		"Heart Attack",
		"Hypertension (High Blood Pressure)",
	}
	if got := names(res.Conditions); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected ranking:\n got %v\nwant %v", got, want)
	}

	byName := make(map[string]domain.ConditionMatch)
	for _, m := range res.Conditions {
		byName[m.Name] = m
	}

	pneumonia := byName["Pneumonia"]
	if pneumonia.Confidence != 80 || pneumonia.Severity != domain.SeveritySevere {
		t.Errorf("unexpected pneumonia match: %+v", pneumonia)
	}
	// 3/8 would be moderate; age overrides it.
	if covid := byName["COVID-19"]; covid.Severity != domain.SeveritySevere || covid.Confidence != 38 {
		t.Errorf("unexpected covid match: %+v", covid)
	}
	if heart := byName["Heart Attack"]; heart.Severity != domain.SeveritySevere || heart.Confidence != 33 {
		t.Errorf("unexpected heart attack match: %+v", heart)
	}
	if cold := byName["Common Cold"]; cold.Severity != domain.SeverityModerate {
		t.Errorf("expected common cold to stay moderate, got %s", cold.Severity)
	}
	if htn := byName["Hypertension (High Blood Pressure)"]; htn.Severity != domain.SeverityMild || htn.Confidence != 25 {
		t.Errorf("unexpected hypertension match: %+v", htn)
	}

	if res.Urgency != domain.UrgencyUrgent {
		t.Errorf("expected urgent, got %s", res.Urgency)
	}
	if len(res.Recommendations) != 4 || res.Recommendations[0] != "Consider seeking medical attention promptly" {
		t.Errorf("unexpected recommendations: %v", res.Recommendations)
	}
}

func TestPredictSingleHeadache(t *testing.T) {
	res, err := PredictConditions([]string{"headache"}, 25, "female")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Migraine sits at exactly 20% and common cold at 16.7%; only the
	// four-symptom hypertension entry clears the gate.
	for _, m := range res.Conditions {
		if m.Name == "Migraine" || m.Name == "Common Cold" {
			t.Fatalf("%s should be excluded by the inclusion gate", m.Name)
		}
	}
	if got := names(res.Conditions); !reflect.DeepEqual(got, []string{"Hypertension (High Blood Pressure)"}) {
		t.Fatalf("unexpected conditions: %v", got)
	}
	if res.Conditions[0].Severity != domain.SeverityMild {
		t.Errorf("expected mild, got %s", res.Conditions[0].Severity)
	}
	if res.Urgency != domain.UrgencyNonUrgent {
		t.Errorf("expected non_urgent, got %s", res.Urgency)
	}
	if len(res.Recommendations) != 3 {
		t.Errorf("expected 3 recommendations, got %v", res.Recommendations)
	}
}

func TestElderlyOverrideStillGated(t *testing.T) {
	res, err := PredictConditions([]string{"loss_of_taste"}, 80, "female")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Conditions) != 0 {
		t.Fatalf("expected covid at 12.5%% to be dropped, got %v", names(res.Conditions))
	}
	if res.Urgency != domain.UrgencyNonUrgent {
		t.Errorf("expected non_urgent, got %s", res.Urgency)
	}
}

func TestSeverityBuckets(t *testing.T) {
	ten := []string{"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9"}
	engine := NewEngine([]domain.Condition{
		{ID: "ten", Name: "Ten", SymptomIDs: ten, UrgencyLevel: domain.UrgencyRoutine},
		{ID: "four", Name: "Four", SymptomIDs: []string{"s0", "s1", "s2", "x"}, UrgencyLevel: domain.UrgencyRoutine},
		{ID: "fourteen", Name: "Fourteen", SymptomIDs: append([]string{"s0", "s1", "s2", "s3"}, make([]string, 10)...), UrgencyLevel: domain.UrgencyRoutine},
	})

	tests := []struct {
		name     string
		symptoms []string
		want     map[string]domain.Severity
	}{
		{"exactly 20 percent excluded", ten[:2], map[string]domain.Severity{"Four": domain.SeveritySignificant}},
		{"30 percent is moderate", ten[:3], map[string]domain.Severity{"Ten": domain.SeverityModerate, "Four": domain.SeveritySevere, "Fourteen": domain.SeverityMild}},
		{"50 percent is significant", ten[:5], map[string]domain.Severity{"Ten": domain.SeveritySignificant, "Four": domain.SeveritySevere, "Fourteen": domain.SeverityMild}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := engine.Predict(tt.symptoms, 40, "other")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := make(map[string]domain.Severity)
			for _, m := range res.Conditions {
				got[m.Name] = m.Severity
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfidenceTieKeepsCatalogOrder(t *testing.T) {
	engine := NewEngine([]domain.Condition{
		{ID: "b", Name: "B", SymptomIDs: []string{"a", "z"}},
		{ID: "a", Name: "A", SymptomIDs: []string{"a", "y"}},
		{ID: "c", Name: "C", SymptomIDs: []string{"a"}},
	})
	res, err := engine.Predict([]string{"a"}, 30, "male")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := names(res.Conditions); !reflect.DeepEqual(got, []string{"C", "B", "A"}) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestDuplicateSymptomsCountOnce(t *testing.T) {
	once, err := PredictConditions([]string{"fever", "cough"}, 30, "male")
	if err != nil {
		t.Fatal(err)
	}
	twice, err := PredictConditions([]string{"fever", "cough", "fever", "cough"}, 30, "male")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("duplicate inputs changed the result:\n%+v\n%+v", once, twice)
	}
}

func TestInvalidCatalogEntry(t *testing.T) {
	engine := NewEngine([]domain.Condition{{ID: "hollow", Name: "Hollow"}})
	_, err := engine.Predict([]string{"fever"}, 30, "male")
	if !errors.Is(err, domain.ErrInvalidCatalogEntry) {
		t.Fatalf("expected ErrInvalidCatalogEntry, got %v", err)
	}
}

func TestRecommendationsAreCopied(t *testing.T) {
	res, err := PredictConditions([]string{"cough", "fever", "shortness_of_breath", "chest_pain", "fatigue"}, 30, "male")
	if err != nil {
		t.Fatal(err)
	}
	res.Conditions[0].Recommendations[0] = "mutated"

	again, err := PredictConditions([]string{"cough", "fever", "shortness_of_breath", "chest_pain", "fatigue"}, 30, "male")
	if err != nil {
		t.Fatal(err)
	}
	if again.Conditions[0].Recommendations[0] == "mutated" {
		t.Fatal("result recommendations alias the catalog")
	}
}

func TestRandomizedProperties(t *testing.T) {
	symptoms := catalog.Symptoms()
	conditions := make(map[string]domain.Condition)
	for _, c := range catalog.Conditions() {
		conditions[c.Name] = c
	}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		var picked []string
		for _, s := range symptoms {
			if rng.Intn(4) == 0 {
				picked = append(picked, s.ID)
			}
		}
		age := rng.Intn(100)

		res, err := PredictConditions(picked, age, "other")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		selected := make(map[string]bool)
		for _, id := range picked {
			selected[id] = true
		}

		for j, m := range res.Conditions {
			if m.Confidence < 0 || m.Confidence > 100 {
				t.Fatalf("confidence out of range: %+v", m)
			}
			if j > 0 && res.Conditions[j-1].Confidence < m.Confidence {
				t.Fatalf("not sorted by confidence: %v", res.Conditions)
			}
			overlap := false
			for _, id := range conditions[m.Name].SymptomIDs {
				if selected[id] {
					overlap = true
					break
				}
			}
			if !overlap {
				t.Fatalf("%s emitted without overlap for %v", m.Name, picked)
			}
		}
	}
}
