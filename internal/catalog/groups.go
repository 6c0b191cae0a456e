package catalog

// DefaultGroups is the checklist layout shipped with the bundled model
// artifact. Validation in New guarantees the layout and the artifact agree;
// schema features not listed here surface under "Other".
func DefaultGroups() []CategoryGroup {
	return []CategoryGroup{
		{
			Name: "Skin",
			IDs: []string{
				"itching",
				"skin_rash",
				"nodal_skin_eruptions",
				"yellowish_skin",
				"bruising",
				"red_spots_over_body",
			},
		},
		{
			Name: "Digestive",
			IDs: []string{
				"stomach_pain",
				"acidity",
				"vomiting",
				"indigestion",
				"nausea",
				"loss_of_appetite",
				"abdominal_pain",
				"diarrhoea",
				"constipation",
			},
		},
		{
			Name: "Respiratory",
			IDs: []string{
				"continuous_sneezing",
				"cough",
				"breathlessness",
				"phlegm",
				"throat_irritation",
				"runny_nose",
				"congestion",
				"chest_pain",
			},
		},
		{
			Name: "Neurological",
			IDs: []string{
				"headache",
				"dizziness",
				"lack_of_concentration",
				"altered_sensorium",
				"anxiety",
				"depression",
				"irritability",
			},
		},
		{
			Name: "General",
			IDs: []string{
				"shivering",
				"chills",
				"joint_pain",
				"muscle_wasting",
				"fatigue",
				"weight_gain",
				"weight_loss",
				"restlessness",
				"lethargy",
				"high_fever",
				"mild_fever",
				"sweating",
				"dehydration",
				"malaise",
			},
		},
	}
}

// DefaultOverrides fixes display names that the mechanical derivation gets
// wrong for the bundled artifact.
func DefaultOverrides() map[string]string {
	return map[string]string{
		"diarrhoea":         "Diarrhoea (Loose Motion)",
		"breathlessness":    "Shortness of Breath",
		"altered_sensorium": "Confusion / Altered Sensorium",
	}
}
