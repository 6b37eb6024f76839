package catalog

import "github.com/ashureev/symcheck/internal/domain"

var conditions = []domain.Condition{
	{
		ID:           "common_cold",
		Name:         "Common Cold",
		Description:  "A viral infection of the upper respiratory tract. Usually harmless and resolves in 7-10 days.",
		SymptomIDs:   []string{"headache", "nasal_congestion", "runny_nose", "sore_throat", "cough", "fatigue"},
		UrgencyLevel: domain.UrgencyNonUrgent,
		BodySystems:  []string{"respiratory"},
		Recommendations: []string{
			"Rest and drink plenty of fluids",
			"Over-the-counter cold medications may help relieve symptoms",
			"Use a humidifier to add moisture to the air",
			"Gargle with salt water to soothe a sore throat",
		},
	},
	{
		ID:           "influenza",
		Name:         "Influenza (Flu)",
		Description:  "A contagious respiratory illness caused by influenza viruses that infect the nose, throat, and lungs.",
		SymptomIDs:   []string{"fever", "headache", "fatigue", "cough", "sore_throat", "muscle_pain", "nasal_congestion"},
		UrgencyLevel: domain.UrgencyRoutine,
		BodySystems:  []string{"respiratory", "immune"},
		Recommendations: []string{
			"Rest and stay hydrated",
			"Take over-the-counter medications for fever and pain",
			"Consult a doctor about antiviral medications if within 48 hours of symptom onset",
			"Stay home to avoid spreading the illness",
		},
	},
	{
		ID:           "covid_19",
		Name:         "COVID-19",
		Description:  "A respiratory illness caused by the SARS-CoV-2 virus that can range from mild to severe.",
		SymptomIDs:   []string{"fever", "cough", "fatigue", "shortness_of_breath", "headache", "sore_throat", "loss_of_taste", "loss_of_smell"},
		UrgencyLevel: domain.UrgencyPrompt,
		BodySystems:  []string{"respiratory", "immune"},
		Recommendations: []string{
			"Isolate from others to prevent spread",
			"Rest and stay hydrated",
			"Monitor your symptoms closely",
			"Seek medical attention if you have trouble breathing or persistent chest pain",
		},
	},
	{
		ID:           "migraine",
		Name:         "Migraine",
		Description:  "A headache of varying intensity, often accompanied by nausea and sensitivity to light and sound.",
		SymptomIDs:   []string{"headache", "nausea", "vomiting", "light_sensitivity", "sound_sensitivity"},
		UrgencyLevel: domain.UrgencyRoutine,
		BodySystems:  []string{"nervous"},
		Recommendations: []string{
			"Rest in a quiet, dark room",
			"Apply hot or cold compresses to your head or neck",
			"Drink plenty of fluids",
			"Consider over-the-counter pain relievers or prescription medications",
		},
	},
	{
		ID:           "allergic_rhinitis",
		Name:         "Allergic Rhinitis (Hay Fever)",
		Description:  "An allergic response causing cold-like symptoms such as sneezing, itchy eyes, and runny nose.",
		SymptomIDs:   []string{"nasal_congestion", "runny_nose", "sneezing", "itchy_eyes", "sinus_pressure"},
		UrgencyLevel: domain.UrgencyNonUrgent,
		BodySystems:  []string{"respiratory", "immune"},
		Recommendations: []string{
			"Avoid allergen triggers",
			"Try over-the-counter antihistamines or nasal steroids",
			"Keep windows closed during high pollen seasons",
			"Use air purifiers to reduce indoor allergens",
		},
	},
	{
		ID:           "bronchitis",
		Name:         "Bronchitis",
		Description:  "Inflammation of the lining of the bronchial tubes, which carry air to and from the lungs.",
		SymptomIDs:   []string{"cough", "fatigue", "shortness_of_breath", "chest_pain", "fever"},
		UrgencyLevel: domain.UrgencyPrompt,
		BodySystems:  []string{"respiratory"},
		Recommendations: []string{
			"Rest and stay hydrated",
			"Use a humidifier to add moisture to the air",
			"Take over-the-counter pain relievers for fever and discomfort",
			"Consult a doctor if symptoms last more than 3 weeks or are severe",
		},
	},
	{
		ID:           "gastroenteritis",
		Name:         "Gastroenteritis (Stomach Flu)",
		Description:  "Inflammation of the stomach and intestines, typically from a viral infection or bacteria.",
		SymptomIDs:   []string{"nausea", "vomiting", "diarrhea", "abdominal_pain", "fever", "headache"},
		UrgencyLevel: domain.UrgencyRoutine,
		BodySystems:  []string{"digestive"},
		Recommendations: []string{
			"Stay hydrated with small sips of clear liquids",
			"Avoid solid foods until vomiting stops",
			"Gradually reintroduce bland foods",
			"Seek medical attention if unable to keep fluids down or have signs of dehydration",
		},
	},
	{
		ID:           "hypertension",
		Name:         "Hypertension (High Blood Pressure)",
		Description:  "A common condition where the force of blood against artery walls is consistently too high.",
		SymptomIDs:   []string{"headache", "dizziness", "shortness_of_breath", "chest_pain"},
		UrgencyLevel: domain.UrgencyPrompt,
		BodySystems:  []string{"cardiovascular"},
		Recommendations: []string{
			"Monitor blood pressure regularly",
			"Maintain a healthy diet low in salt",
			"Exercise regularly",
			"Consult with a healthcare provider about medication options",
		},
	},
	{
		ID:           "pneumonia",
		Name:         "Pneumonia",
		Description:  "Infection that inflames air sacs in one or both lungs, which may fill with fluid.",
		SymptomIDs:   []string{"cough", "fever", "shortness_of_breath", "chest_pain", "fatigue"},
		UrgencyLevel: domain.UrgencyUrgent,
		BodySystems:  []string{"respiratory"},
		Recommendations: []string{
			"Seek medical attention promptly",
			"Take prescribed antibiotics if bacterial pneumonia",
			"Rest and stay hydrated",
			"Follow up with your doctor to ensure the infection is cleared",
		},
	},
	{
		ID:           "heart_attack",
		Name:         "Heart Attack",
		Description:  "Occurs when blood flow to part of the heart is blocked, causing damage to the heart muscle.",
		SymptomIDs:   []string{"chest_pain", "shortness_of_breath", "nausea", "cold_sweat", "dizziness", "fatigue"},
		UrgencyLevel: domain.UrgencyEmergency,
		BodySystems:  []string{"cardiovascular"},
		Recommendations: []string{
			"Call emergency services (911) immediately",
			"Chew aspirin if advised by emergency personnel",
			"Rest in a position that makes breathing easier",
			"Perform CPR if the person is unconscious and not breathing normally",
		},
	},
}
