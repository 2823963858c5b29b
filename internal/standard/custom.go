package standard

// customMinLength is the default whole-document minimum for custom standards.
const customMinLength = 50

func customDefault() *Standard {
	return &Standard{
		ID:          "CUSTOM",
		DisplayName: "Custom Policy Checklist",
		MinLength:   customMinLength,
		Structured:  false,
		Sections: []SectionSpec{
			{Name: "Password Policy", Aliases: []string{"password", "passwords", "credential management"}, Required: true},
			{Name: "Data Protection", Aliases: []string{"data security", "data handling"}, Required: true},
			{Name: "Access Control", Aliases: []string{"access management", "authorization"}, Required: true},
			{Name: "Incident Response", Aliases: []string{"incident handling", "security incidents"}, Required: true},
			{Name: "Compliance", Aliases: []string{"regulatory compliance", "legal requirements"}, Required: true},
		},
	}
}

// builtins returns the compiled-in catalog in its fixed order.
func builtins() []*Standard {
	return []*Standard{
		nist80053(),
		iso27001(),
		soc2(),
		customDefault(),
	}
}
