package knowledge

var seedConditions = []Condition{
	{
		Name:       "Common Cold",
		Symptoms:   []string{"runny nose", "sneezing", "cough", "sore throat", "mild fever", "congestion"},
		Prevention: []string{"wash hands frequently", "avoid close contact with sick people", "cover mouth when coughing", "avoid touching face"},
		Treatment:  "rest, fluids, over-the-counter medications, steam inhalation",
		Severity:   "mild",
		Category:   "respiratory",
	},
	{
		Name:       "Flu (Influenza)",
		Symptoms:   []string{"high fever", "body aches", "fatigue", "cough", "headache", "chills", "sore throat"},
		Prevention: []string{"annual flu vaccination", "good hygiene", "avoid touching face", "stay home when sick"},
		Treatment:  "antiviral medications, rest, fluids, fever reducers",
		Severity:   "moderate",
		Category:   "respiratory",
	},
	{
		Name:       "Diabetes",
		Symptoms:   []string{"increased thirst", "frequent urination", "fatigue", "blurred vision", "slow healing wounds", "weight loss"},
		Prevention: []string{"maintain healthy weight", "regular exercise", "balanced diet", "limit sugar intake"},
		Treatment:  "insulin therapy, medication, lifestyle changes, blood sugar monitoring",
		Severity:   "chronic",
		Category:   "metabolic",
	},
	{
		Name:       "Thyroid Disorders",
		Symptoms:   []string{"unexpected weight changes", "fatigue or excessive energy", "constipation or diarrhea", "dry skin", "brittle nails", "hair loss", "mood changes", "sensitivity to cold or heat", "neck swelling"},
		Prevention: []string{"regular check-ups", "iodine-rich diet", "avoid excessive stress", "limit processed foods"},
		Treatment:  "hormone replacement therapy, medication, regular monitoring, dietary changes",
		Severity:   "chronic",
		Category:   "endocrine",
	},
	{
		Name:       "Hypertension (High Blood Pressure)",
		Symptoms:   []string{"often no symptoms", "headaches", "shortness of breath", "nosebleeds", "dizziness"},
		Prevention: []string{"reduce salt intake", "regular exercise", "maintain healthy weight", "limit alcohol", "quit smoking"},
		Treatment:  "medication, lifestyle changes, regular monitoring",
		Severity:   "chronic",
		Category:   "cardiovascular",
	},
	{
		Name:       "Malaria",
		Symptoms:   []string{"high fever", "chills", "sweating", "headache", "nausea", "vomiting", "muscle pain"},
		Prevention: []string{"use mosquito nets", "apply insect repellent", "eliminate standing water", "wear long sleeves"},
		Treatment:  "antimalarial medications, rest, fluids, hospital care if severe",
		Severity:   "moderate to severe",
		Category:   "infectious",
	},
	{
		Name:       "Tuberculosis (TB)",
		Symptoms:   []string{"persistent cough", "chest pain", "coughing up blood", "fatigue", "weight loss", "night sweats", "fever"},
		Prevention: []string{"BCG vaccination", "good ventilation", "avoid close contact with infected persons", "cover mouth when coughing"},
		Treatment:  "antibiotic treatment for 6-9 months, rest, proper nutrition",
		Severity:   "moderate to severe",
		Category:   "infectious",
	},
	{
		Name:       "Pneumonia",
		Symptoms:   []string{"cough with phlegm", "fever", "chills", "shortness of breath", "chest pain", "fatigue"},
		Prevention: []string{"pneumonia vaccination", "flu vaccination", "good hygiene", "avoid smoking", "proper nutrition"},
		Treatment:  "antibiotics, rest, fluids, oxygen therapy if needed",
		Severity:   "moderate to severe",
		Category:   "respiratory",
	},
	{
		Name:       "Dengue Fever",
		Symptoms:   []string{"high fever", "severe headache", "pain behind eyes", "muscle and joint pain", "rash", "nausea", "vomiting"},
		Prevention: []string{"eliminate standing water", "use mosquito nets", "apply repellent", "wear protective clothing"},
		Treatment:  "rest, fluids, pain relievers (avoid aspirin), hospital care if severe",
		Severity:   "moderate to severe",
		Category:   "infectious",
	},
	{
		Name:       "Chikungunya",
		Symptoms:   []string{"fever", "severe joint pain", "muscle pain", "headache", "rash", "fatigue"},
		Prevention: []string{"eliminate standing water", "use mosquito nets", "apply repellent", "wear long sleeves"},
		Treatment:  "rest, fluids, pain relievers, physical therapy for joint pain",
		Severity:   "moderate",
		Category:   "infectious",
	},
	{
		Name:       "Jaundice",
		Symptoms:   []string{"yellow skin and eyes", "dark urine", "pale stools", "fatigue", "abdominal pain", "nausea"},
		Prevention: []string{"hepatitis vaccination", "avoid contaminated water", "good hygiene", "safe food handling"},
		Treatment:  "rest, fluids, avoid alcohol, treat underlying cause",
		Severity:   "moderate to severe",
		Category:   "hepatic",
	},
	{
		Name:       "Anemia",
		Symptoms:   []string{"fatigue", "weakness", "pale skin", "shortness of breath", "dizziness", "cold hands and feet"},
		Prevention: []string{"iron-rich diet", "vitamin B12 and folate", "regular check-ups", "avoid blood loss"},
		Treatment:  "iron supplements, dietary changes, treat underlying cause",
		Severity:   "mild to moderate",
		Category:   "hematologic",
	},
	{
		Name:       "Asthma",
		Symptoms:   []string{"wheezing", "shortness of breath", "chest tightness", "coughing", "difficulty breathing"},
		Prevention: []string{"avoid triggers", "use inhalers as prescribed", "avoid smoking", "manage stress"},
		Treatment:  "inhalers, medications, avoid triggers, emergency care if severe",
		Severity:   "chronic",
		Category:   "respiratory",
	},
	{
		Name:       "Heart Disease",
		Symptoms:   []string{"chest pain", "shortness of breath", "fatigue", "irregular heartbeat", "swelling in legs"},
		Prevention: []string{"healthy diet", "regular exercise", "avoid smoking", "manage stress", "control blood pressure"},
		Treatment:  "medication, lifestyle changes, surgery if needed, cardiac rehabilitation",
		Severity:   "moderate to severe",
		Category:   "cardiovascular",
	},
	{
		Name:       "Kidney Disease",
		Symptoms:   []string{"fatigue", "swelling in legs", "changes in urination", "nausea", "loss of appetite", "muscle cramps"},
		Prevention: []string{"control diabetes and blood pressure", "avoid excessive salt", "stay hydrated", "avoid NSAIDs"},
		Treatment:  "medication, dietary changes, dialysis if severe, kidney transplant",
		Severity:   "chronic",
		Category:   "renal",
	},
	{
		Name:       "Arthritis",
		Symptoms:   []string{"joint pain", "stiffness", "swelling", "reduced range of motion", "fatigue"},
		Prevention: []string{"maintain healthy weight", "regular exercise", "protect joints", "avoid repetitive stress"},
		Treatment:  "pain relievers, physical therapy, exercise, joint protection",
		Severity:   "chronic",
		Category:   "musculoskeletal",
	},
	{
		Name:       "Migraine",
		Symptoms:   []string{"severe headache", "nausea", "vomiting", "sensitivity to light and sound", "visual disturbances"},
		Prevention: []string{"identify triggers", "regular sleep", "stress management", "avoid certain foods"},
		Treatment:  "pain relievers, rest in dark room, preventive medications",
		Severity:   "moderate to severe",
		Category:   "neurological",
	},
	{
		Name:       "Depression",
		Symptoms:   []string{"persistent sadness", "loss of interest", "fatigue", "sleep problems", "appetite changes", "difficulty concentrating"},
		Prevention: []string{"regular exercise", "social connections", "stress management", "healthy lifestyle"},
		Treatment:  "therapy, medication, lifestyle changes, support groups",
		Severity:   "moderate to severe",
		Category:   "mental health",
	},
	{
		Name:       "Anxiety",
		Symptoms:   []string{"excessive worry", "restlessness", "fatigue", "difficulty concentrating", "irritability", "sleep problems"},
		Prevention: []string{"stress management", "regular exercise", "adequate sleep", "avoid caffeine"},
		Treatment:  "therapy, medication, relaxation techniques, lifestyle changes",
		Severity:   "mild to severe",
		Category:   "mental health",
	},
	{
		Name:       "Skin Infections",
		Symptoms:   []string{"redness", "swelling", "pain", "warmth", "pus", "fever"},
		Prevention: []string{"good hygiene", "keep wounds clean", "avoid sharing personal items", "proper wound care"},
		Treatment:  "antibiotics, wound care, rest, elevation if on limbs",
		Severity:   "mild to moderate",
		Category:   "dermatological",
	},
	{
		Name:       "Food Poisoning",
		Symptoms:   []string{"nausea", "vomiting", "diarrhea", "stomach cramps", "fever", "dehydration"},
		Prevention: []string{"proper food handling", "cook food thoroughly", "avoid contaminated water", "good hygiene"},
		Treatment:  "rest, fluids, oral rehydration, avoid solid foods initially",
		Severity:   "mild to moderate",
		Category:   "gastrointestinal",
	},
}
