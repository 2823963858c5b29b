package standard

func soc2() *Standard {
	return &Standard{
		ID:          "SOC2",
		DisplayName: "SOC 2 Trust Services",
		MinLength:   500,
		Structured:  false,
		Sections: []SectionSpec{
			{Name: "Security", Aliases: []string{"common criteria", "protection against unauthorized access"}, Required: true},
			{Name: "Availability", Aliases: []string{"uptime", "service availability"}, Required: true},
			{Name: "Processing Integrity", Aliases: []string{"data integrity", "processing accuracy"}, Required: true},
			{Name: "Confidentiality", Aliases: []string{"confidential information"}, Required: true},
			{Name: "Privacy", Aliases: []string{"personal information", "data privacy"}, Required: true},
		},
	}
}
