package catalog

import "github.com/ashureev/symcheck/internal/domain"

var symptoms = []domain.Symptom{
	{
		ID:          "headache",
		Name:        "Headache",
		Description: "Pain or discomfort in the head, scalp, or neck",
		Locations:   []string{"head", "scalp", "neck"},
		BodySystems: []string{"nervous"},
		Attributes:  []string{"pain", "pressure", "throbbing"},
	},
	{
		ID:          "fever",
		Name:        "Fever",
		Description: "Elevated body temperature above normal (98.6°F/37°C)",
		BodySystems: []string{"immune"},
		Attributes:  []string{"hot", "chills", "sweating"},
	},
	{
		ID:          "cough",
		Name:        "Cough",
		Description: "Sudden expulsion of air from the lungs",
		Locations:   []string{"chest", "throat"},
		BodySystems: []string{"respiratory"},
		Attributes:  []string{"dry", "productive", "persistent"},
	},
	{
		ID:          "fatigue",
		Name:        "Fatigue",
		Description: "Extreme tiredness resulting from mental or physical exertion",
		BodySystems: []string{"musculoskeletal", "nervous"},
		Attributes:  []string{"weakness", "exhaustion", "lack of energy"},
	},
	{
		ID:          "sore_throat",
		Name:        "Sore Throat",
		Description: "Pain or irritation in the throat that worsens when swallowing",
		Locations:   []string{"throat"},
		BodySystems: []string{"respiratory"},
		Attributes:  []string{"pain", "irritation", "difficulty swallowing"},
	},
	{
		ID:          "shortness_of_breath",
		Name:        "Shortness of Breath",
		Description: "Difficult or labored breathing",
		Locations:   []string{"chest", "lungs"},
		BodySystems: []string{"respiratory"},
		Attributes:  []string{"gasping", "wheezing", "suffocation"},
	},
	{
		ID:          "chest_pain",
		Name:        "Chest Pain",
		Description: "Discomfort or pain in the chest area",
		Locations:   []string{"chest"},
		BodySystems: []string{"cardiovascular", "respiratory"},
		Attributes:  []string{"pressure", "tightness", "sharp", "stabbing"},
	},
	{
		ID:          "nausea",
		Name:        "Nausea",
		Description: "Sensation of unease and discomfort in the stomach with an urge to vomit",
		Locations:   []string{"abdomen", "stomach"},
		BodySystems: []string{"digestive"},
		Attributes:  []string{"queasy", "sick feeling", "upset stomach"},
	},
	{
		ID:          "vomiting",
		Name:        "Vomiting",
		Description: "Forceful expulsion of stomach contents through the mouth",
		Locations:   []string{"abdomen", "stomach"},
		BodySystems: []string{"digestive"},
		Attributes:  []string{"throwing up", "regurgitation"},
	},
	{
		ID:          "diarrhea",
		Name:        "Diarrhea",
		Description: "Loose, watery stools occurring more frequently than usual",
		Locations:   []string{"abdomen", "bowel"},
		BodySystems: []string{"digestive"},
		Attributes:  []string{"loose stool", "frequent bowel movements", "urgency"},
	},
	{
		ID:          "abdominal_pain",
		Name:        "Abdominal Pain",
		Description: "Pain felt between the chest and groin",
		Locations:   []string{"abdomen", "stomach", "bowel"},
		BodySystems: []string{"digestive"},
		Attributes:  []string{"cramping", "sharp", "dull", "intermittent", "constant"},
	},
	{
		ID:          "rash",
		Name:        "Rash",
		Description: "Change in the skin's color, appearance, or texture",
		Locations:   []string{"skin"},
		BodySystems: []string{"integumentary"},
		Attributes:  []string{"itchy", "red", "bumps", "swelling"},
	},
	{
		ID:          "joint_pain",
		Name:        "Joint Pain",
		Description: "Discomfort, aches, or soreness in any of the body's joints",
		Locations:   []string{"joints"},
		BodySystems: []string{"musculoskeletal"},
		Attributes:  []string{"aching", "stiffness", "swelling", "limited mobility"},
	},
	{
		ID:          "muscle_pain",
		Name:        "Muscle Pain",
		Description: "Pain affecting a muscle or group of muscles",
		Locations:   []string{"muscles"},
		BodySystems: []string{"musculoskeletal"},
		Attributes:  []string{"aching", "cramping", "tenderness"},
	},
	{
		ID:          "dizziness",
		Name:        "Dizziness",
		Description: "Sensation of being lightheaded, woozy, or unbalanced",
		Locations:   []string{"head"},
		BodySystems: []string{"nervous", "cardiovascular"},
		Attributes:  []string{"lightheaded", "vertigo", "faintness"},
	},
	{
		ID:          "nasal_congestion",
		Name:        "Nasal Congestion",
		Description: "Stuffy nose caused by inflamed blood vessels in the sinuses",
		Locations:   []string{"nose", "sinuses"},
		BodySystems: []string{"respiratory"},
		Attributes:  []string{"stuffy", "blocked", "pressure"},
	},
	{
		ID:          "runny_nose",
		Name:        "Runny Nose",
		Description: "Excessive discharge of fluid from the nose",
		Locations:   []string{"nose"},
		BodySystems: []string{"respiratory"},
		Attributes:  []string{"discharge", "dripping", "rhinorrhea"},
	},
	{
		ID:          "sinus_pressure",
		Name:        "Sinus Pressure",
		Description: "Feeling of fullness, pressure or pain in the sinuses",
		Locations:   []string{"sinuses", "face"},
		BodySystems: []string{"respiratory"},
		Attributes:  []string{"pressure", "pain", "fullness"},
	},

	// Referenced by conditions but not offered on the symptom picker.
	{
		ID:          "loss_of_taste",
		Name:        "Loss of Taste",
		Description: "Reduced or absent ability to taste food and drink",
		Locations:   []string{"mouth", "tongue"},
		BodySystems: []string{"nervous"},
		Attributes:  []string{"ageusia", "bland"},
	},
	{
		ID:          "loss_of_smell",
		Name:        "Loss of Smell",
		Description: "Reduced or absent ability to smell",
		Locations:   []string{"nose"},
		BodySystems: []string{"nervous", "respiratory"},
		Attributes:  []string{"anosmia"},
	},
	{
		ID:          "light_sensitivity",
		Name:        "Light Sensitivity",
		Description: "Discomfort or pain in the eyes caused by light",
		Locations:   []string{"eyes"},
		BodySystems: []string{"nervous"},
		Attributes:  []string{"photophobia", "squinting"},
	},
	{
		ID:          "sound_sensitivity",
		Name:        "Sound Sensitivity",
		Description: "Discomfort caused by ordinary environmental sounds",
		Locations:   []string{"ears"},
		BodySystems: []string{"nervous"},
		Attributes:  []string{"phonophobia"},
	},
	{
		ID:          "sneezing",
		Name:        "Sneezing",
		Description: "Sudden involuntary expulsion of air through the nose and mouth",
		Locations:   []string{"nose"},
		BodySystems: []string{"respiratory", "immune"},
		Attributes:  []string{"frequent", "bursts"},
	},
	{
		ID:          "itchy_eyes",
		Name:        "Itchy Eyes",
		Description: "Irritation of the eyes that causes an urge to rub them",
		Locations:   []string{"eyes"},
		BodySystems: []string{"immune"},
		Attributes:  []string{"itchy", "watery", "red"},
	},
	{
		ID:          "cold_sweat",
		Name:        "Cold Sweat",
		Description: "Sudden sweating without heat or exertion",
		Locations:   []string{"skin"},
		BodySystems: []string{"cardiovascular", "integumentary"},
		Attributes:  []string{"clammy", "sweating"},
	},
}
