package profile

// Option lists offered by the intake form.
var (
	Majors = []string{
		"Computer Science", "Business Analytics", "Engineering", "Psychology", "Biology", "Undeclared", "Other",
	}
	SchoolYears = []string{
		"Freshman", "Sophomore", "Junior", "Senior", "Graduate Student", "Alumni",
	}
	Departments = []string{
		"Arts and Sciences", "Business", "Engineering", "Other",
	}
	YesNo = []string{"Yes", "No"}

	ResidencyStatuses = []string{
		"California Resident", "Out-of-State", "International Student",
	}
	ScholarshipTypes = []string{
		"Merit-Based", "Need-Based", "Graduate Assistantships",
		"Diversity Scholarships", "Department-Specific Aid", "SCU-Sponsored Scholarships",
	}
	Causes = []string{
		"Sustainability", "Community Service", "Diversity", "Social Justice", "STEM", "Arts",
	}
)

// GPA slider bounds.
const (
	MinGPA     = 0.0
	MaxGPA     = 4.0
	DefaultGPA = 3.0
	GPAStep    = 0.1
)

// FormOptions is the set of choices a form renderer needs.
type FormOptions struct {
	Majors           []string `json:"majors"`
	SchoolYears      []string `json:"school_years"`
	Departments      []string `json:"departments"`
	YesNo            []string `json:"yes_no"`
	Residency        []string `json:"residency"`
	ScholarshipTypes []string `json:"scholarship_types"`
	Causes           []string `json:"causes"`
	MinGPA           float64  `json:"min_gpa"`
	MaxGPA           float64  `json:"max_gpa"`
	DefaultGPA       float64  `json:"default_gpa"`
	GPAStep          float64  `json:"gpa_step"`
}

// Options returns copies of the form option lists.
func Options() FormOptions {
	return FormOptions{
		Majors:           clone(Majors),
		SchoolYears:      clone(SchoolYears),
		Departments:      clone(Departments),
		YesNo:            clone(YesNo),
		Residency:        clone(ResidencyStatuses),
		ScholarshipTypes: clone(ScholarshipTypes),
		Causes:           clone(Causes),
		MinGPA:           MinGPA,
		MaxGPA:           MaxGPA,
		DefaultGPA:       DefaultGPA,
		GPAStep:          GPAStep,
	}
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
