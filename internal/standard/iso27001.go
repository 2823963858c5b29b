package standard

func iso27001() *Standard {
	return &Standard{
		ID:          "ISO-27001",
		DisplayName: "ISO/IEC 27001",
		MinLength:   800,
		Structured:  true,
		Sections: []SectionSpec{
			{Name: "Information Security Policies", Aliases: []string{"security policy", "policies for information security"}, Required: true},
			{Name: "Organization of Information Security", Aliases: []string{"security organization", "roles and responsibilities"}, Required: true},
			{Name: "Human Resource Security", Aliases: []string{"personnel security", "security awareness"}, Required: true},
			{Name: "Asset Management", Aliases: []string{"asset inventory", "information classification"}, Required: true},
			{Name: "Access Control", Aliases: []string{"user access management", "access rights"}, Required: true},
			{Name: "Cryptography", Aliases: []string{"encryption", "cryptographic controls", "key management"}, Required: true},
			{Name: "Physical Security", Aliases: []string{"physical and environmental security", "secure areas"}, Required: true},
			{Name: "Operations Security", Aliases: []string{"operational procedures", "malware protection", "backup"}, Required: true},
			{Name: "Communications Security", Aliases: []string{"network security", "information transfer"}, Required: true},
			{Name: "Incident Management", Aliases: []string{"incident response", "security incident"}, Required: true},
		},
	}
}
