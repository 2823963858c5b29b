package standard

func nist80053() *Standard {
	return &Standard{
		ID:          "NIST-800-53",
		DisplayName: "NIST SP 800-53",
		MinLength:   1000,
		Structured:  true,
		Sections: []SectionSpec{
			{Name: "Access Control", Aliases: []string{"access control policy", "account management"}, Required: true},
			{Name: "Audit and Accountability", Aliases: []string{"audit", "audit logging", "accountability"}, Required: true},
			{Name: "Security Assessment", Aliases: []string{"security assessment and authorization", "assessment"}, Required: true},
			{Name: "Configuration Management", Aliases: []string{"baseline configuration", "change control"}, Required: true},
			{Name: "Contingency Planning", Aliases: []string{"contingency", "disaster recovery", "business continuity"}, Required: true},
			{Name: "Identification and Authentication", Aliases: []string{"identification", "authentication"}, Required: true},
			{Name: "Incident Response", Aliases: []string{"incident handling", "incident management"}, Required: true},
			{Name: "Maintenance", Aliases: []string{"system maintenance"}, Required: true},
			{Name: "Media Protection", Aliases: []string{"media sanitization", "media handling"}, Required: true},
			{Name: "Physical Protection", Aliases: []string{"physical and environmental protection", "physical security"}, Required: true},
			{Name: "Risk Assessment", Aliases: []string{"risk management", "vulnerability scanning"}, Required: true},
			{Name: "System and Communications Protection", Aliases: []string{"communications protection", "boundary protection"}, Required: true},
		},
	}
}
