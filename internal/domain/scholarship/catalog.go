package scholarship

import (
	"fmt"
	"sort"
)

// Compiled-in catalog names.
const (
	CatalogSCU     = "scu"
	CatalogCompact = "compact"
)

var catalogs = map[string][]RawRecord{
	CatalogSCU: {
		{
			Name:    "🎓 Kuru Footsteps to Your Future Scholarship",
			DueDate: "2024-12-20",
			Summary: "This scholarship awards $1,000 to high school seniors or college students pursuing their academic goals. To apply: Prepare a personal statement highlighting your ambitions and submit your application by December 20, 2024.",
		},
		{
			Name:    "💡 Alert1 Students for Seniors Scholarship",
			DueDate: "2025-01-10",
			Summary: "A $500 award for students committed to improving senior care. Action: Write a 300-word essay about your aspirations in this field. Submit your application by January 10, 2025.",
		},
		{
			Name:    "⭐ Blankstyle Scholarship Opportunity #1",
			DueDate: "2024-12-31",
			Summary: "A $1,000 bi-annual scholarship to support college expenses. Actionable Steps: Share your accomplishments and explain how this scholarship will help you achieve your goals. Deadline: December 31, 2024.",
		},
		{
			Name:    "🚀 Innovation In Education Scholarship",
			DueDate: "2024-10-15",
			Summary: "This $500 scholarship recognizes students with innovative projects that benefit their community. Action: Describe your project in detail and submit supporting documentation by October 15, 2024.",
		},
		{
			Name:    "📘 The Bert & Phyllis Lamb Prize in Political Science",
			DueDate: "2025-02-14",
			Summary: "The Bert & Phyllis Lamb Prize honors excellence in Political Science. Action: Submit a well-researched paper (up to 6,000 words) and an abstract by February 14, 2025.",
		},
		{
			Name:    "🌍 New Beginnings Immigrant Scholarship",
			DueDate: "2024-10-18",
			Summary: "This scholarship supports first-generation immigrant students. Action: Write an essay about your immigrant experience and career aspirations. Deadline: October 18, 2024.",
		},
	},
	CatalogCompact: {
		{Name: "Kuru Scholarship", DueDate: "2024-12-20", Summary: "Awards $1,000 to high school seniors or college students."},
		{Name: "Alert1 Seniors Scholarship", DueDate: "2025-01-10", Summary: "Provides $500 for students committed to senior care."},
		{Name: "Blankstyle Opportunity", DueDate: "2024-12-31", Summary: "A $1,000 scholarship to support college expenses."},
	},
}

// Catalog returns a copy of the raw records of a compiled-in catalog.
func Catalog(name string) ([]RawRecord, error) {
	raws, ok := catalogs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCatalog, name)
	}
	out := make([]RawRecord, len(raws))
	copy(out, raws)
	return out, nil
}

// CatalogNames lists the compiled-in catalogs.
func CatalogNames() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
