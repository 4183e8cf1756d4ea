package services

// Catalog lists the hospital's service lines. Order matters: it is the
// display order on the services page.
var Catalog = []ServiceEntry{
	{
		Slug:        "cardiology",
		Name:        "Cardiology",
		Specialty:   "Cardiology",
		Description: "Diagnosis and treatment of heart and vascular conditions, from routine screening to interventional procedures.",
	},
	{
		Slug:        "neurology",
		Name:        "Neurology",
		Specialty:   "Neurology",
		Description: "Care for disorders of the brain, spine and nervous system, including stroke follow-up and epilepsy management.",
	},
	{
		Slug:        "orthopedics",
		Name:        "Orthopedics",
		Specialty:   "Orthopedics",
		Description: "Treatment of bone, joint and muscle conditions, sports injuries and joint replacement surgery.",
	},
	{
		Slug:        "pediatrics",
		Name:        "Pediatrics",
		Specialty:   "Pediatrics",
		Description: "Comprehensive medical care for infants, children and adolescents, including vaccinations and growth checks.",
	},
	{
		Slug:        "dermatology",
		Name:        "Dermatology",
		Specialty:   "Dermatology",
		Description: "Diagnosis and treatment of skin, hair and nail conditions, including skin cancer screening.",
	},
	{
		Slug:        "general-medicine",
		Name:        "General Medicine",
		Specialty:   "General Medicine",
		Description: "Primary care for adults: preventive checkups, chronic disease management and referrals to specialists.",
	},
}

// FindBySlug returns the catalog entry for the given slug.
func FindBySlug(slug string) (ServiceEntry, bool) {
	for _, entry := range Catalog {
		if entry.Slug == slug {
			return entry, true
		}
	}
	return ServiceEntry{}, false
}
