// Package profile models the student intake form. Profiles are read within a
// single request and never stored.
package profile

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrInvalidProfile indicates a form value outside its allowed range or list.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile holds the intake form fields. Empty select fields are treated as
// unanswered.
type Profile struct {
	Name             string   `json:"name,omitempty"`
	StudentID        string   `json:"student_id,omitempty"`
	Email            string   `json:"email,omitempty"`
	Major            string   `json:"major,omitempty"`
	SchoolYear       string   `json:"school_year,omitempty"`
	Department       string   `json:"department,omitempty"`
	GPA              float64  `json:"gpa"`
	Honors           string   `json:"honors,omitempty"`
	FinancialNeed    string   `json:"financial_need,omitempty"`
	FAFSAFiled       string   `json:"fafsa_filed,omitempty"`
	Residency        string   `json:"residency,omitempty"`
	ScholarshipTypes []string `json:"scholarship_types,omitempty"`
	Causes           []string `json:"causes,omitempty"`
}

// Default returns a profile with the slider's starting GPA.
func Default() Profile {
	return Profile{GPA: DefaultGPA}
}

// Validate checks GPA bounds and step, and that every select value comes from
// its option list.
func (p Profile) Validate() error {
	if math.IsNaN(p.GPA) || p.GPA < MinGPA || p.GPA > MaxGPA {
		return fmt.Errorf("%w: gpa %.2f outside %.1f-%.1f", ErrInvalidProfile, p.GPA, MinGPA, MaxGPA)
	}
	steps := p.GPA / GPAStep
	if math.Abs(steps-math.Round(steps)) > 1e-6 {
		return fmt.Errorf("%w: gpa %.2f not a multiple of %.1f", ErrInvalidProfile, p.GPA, GPAStep)
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		return fmt.Errorf("%w: email %q", ErrInvalidProfile, p.Email)
	}

	selects := []struct {
		field   string
		value   string
		options []string
	}{
		{"major", p.Major, Majors},
		{"school_year", p.SchoolYear, SchoolYears},
		{"department", p.Department, Departments},
		{"honors", p.Honors, YesNo},
		{"financial_need", p.FinancialNeed, YesNo},
		{"fafsa_filed", p.FAFSAFiled, YesNo},
		{"residency", p.Residency, ResidencyStatuses},
	}
	for _, s := range selects {
		if s.value != "" && !slices.Contains(s.options, s.value) {
			return fmt.Errorf("%w: %s %q", ErrInvalidProfile, s.field, s.value)
		}
	}
	for _, v := range p.ScholarshipTypes {
		if !slices.Contains(ScholarshipTypes, v) {
			return fmt.Errorf("%w: scholarship_types %q", ErrInvalidProfile, v)
		}
	}
	for _, v := range p.Causes {
		if !slices.Contains(Causes, v) {
			return fmt.Errorf("%w: causes %q", ErrInvalidProfile, v)
		}
	}
	return nil
}

// Prompt renders the text-generation prompt for p.
func (p Profile) Prompt() string {
	return fmt.Sprintf(
		"Student: %s, GPA: %.1f, Major: %s, Causes: %s.\nRecommend scholarships and explain why they are a good fit.",
		p.Name, p.GPA, p.Major, strings.Join(p.Causes, ", "),
	)
}
