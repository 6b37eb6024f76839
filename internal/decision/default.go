package decision

var defaultTree = NewTree(
	Node{
		ID:       "main_symptoms",
		Question: "What symptoms are you experiencing?",
		Type:     InputCheckbox,
		Next:     map[string]string{DefaultEdge: "duration"},
	},
	Node{
		ID:       "duration",
		Question: "How long have you been experiencing these symptoms?",
		Type:     InputRadio,
		Options:  []string{"today", "2-3_days", "4-7_days", "1+_weeks"},
		Next:     map[string]string{DefaultEdge: "severity"},
	},
	Node{
		ID:       "severity",
		Question: "How severe are your symptoms?",
		Type:     InputRange,
		Next: map[string]string{
			DefaultEdge:   "symptom_detail_headache",
			"no_symptoms": "medical_history",
		},
		Conditional: []Branch{
			{Symptom: "headache", Targets: []string{"symptom_detail_headache"}},
			{Symptom: "fever", Targets: []string{"symptom_detail_fever"}},
			{Symptom: "chest_pain", Targets: []string{"symptom_detail_chest_pain", "emergency_warning"}},
			{Symptom: "shortness_of_breath", Targets: []string{"symptom_detail_breath", "emergency_warning"}},
		},
	},
	Node{
		ID:       "symptom_detail_headache",
		Question: "Where is your headache located?",
		Type:     InputSelect,
		Options:  []string{"forehead", "temples", "back_of_head", "all_over", "other"},
		Next:     map[string]string{DefaultEdge: "symptom_detail_fever"},
	},
	Node{
		ID:       "symptom_detail_fever",
		Question: "What is your temperature?",
		Type:     InputSelect,
		Options:  []string{"below_100F", "100-101F", "102-103F", "above_103F", "not_measured"},
		Next:     map[string]string{DefaultEdge: "symptom_detail_chest_pain"},
	},
	Node{
		ID:       "symptom_detail_chest_pain",
		Question: "How would you describe your chest pain?",
		Type:     InputSelect,
		Options:  []string{"sharp", "dull", "pressure", "burning", "no_chest_pain"},
		Next:     map[string]string{DefaultEdge: "symptom_detail_breath"},
	},
	Node{
		ID:       "symptom_detail_breath",
		Question: "When do you experience shortness of breath?",
		Type:     InputSelect,
		Options:  []string{"at_rest", "with_activity", "lying_down", "all_the_time", "no_shortness_of_breath"},
		Next:     map[string]string{DefaultEdge: "medical_history"},
	},
	Node{
		ID:       "emergency_warning",
		Question: "Warning: Chest pain and shortness of breath can be signs of a serious medical condition. If severe, please seek immediate medical attention.",
		Type:     InputText,
		Next:     map[string]string{DefaultEdge: "medical_history"},
	},
	Node{
		ID:       "medical_history",
		Question: "Do you have any of these pre-existing conditions?",
		Type:     InputCheckbox,
		Options: []string{
			"hypertension",
			"diabetes",
			"asthma",
			"heart_disease",
			"lung_disease",
			"autoimmune_disorder",
			"none",
		},
		Next: map[string]string{DefaultEdge: "medications"},
	},
	Node{
		ID:       "medications",
		Question: "Are you currently taking any medications?",
		Type:     InputText,
		Next:     map[string]string{DefaultEdge: Results},
	},
	Node{
		ID:       Results,
		Question: "Based on your symptoms, here are the possible conditions:",
		Type:     InputText,
		Next:     map[string]string{},
	},
)

// Default returns the built-in questionnaire.
func Default() *Tree {
	return defaultTree
}

// NextNode routes through the built-in questionnaire.
func NextNode(currentID string, answers Answers) string {
	return defaultTree.NextNode(currentID, answers)
}

// RelevantQuestions lists the built-in questions for the selected symptoms.
func RelevantQuestions(selectedSymptomIDs []string) []string {
	return defaultTree.RelevantQuestions(selectedSymptomIDs)
}
