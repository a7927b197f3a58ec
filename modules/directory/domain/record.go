// Package domain contains the business entities and rules for the employee
// directory. This is the innermost layer - it has no dependencies on outer layers.
package domain

import (
	"strings"
	"unicode"
)

// Departments offered by the form. Remote-sourced records may carry any
// department string (a missing value defaults to DepartmentGeneral) and are
// passed through unchecked; only the form's select is constrained to this set.
const (
	DepartmentAI       = "Artificial Intelligence (AI)"
	DepartmentML       = "Machine Learning (ML)"
	DepartmentCyber    = "Cybersecurity"
	DepartmentSoftware = "Software Engineering"
	DepartmentData     = "Data Science"

	// DepartmentGeneral is the default for remote records without a
	// department and the initial selection of a new add form.
	DepartmentGeneral = "General"
)

// Departments lists the selectable departments in form display order.
var Departments = []string{
	DepartmentAI,
	DepartmentML,
	DepartmentCyber,
	DepartmentSoftware,
	DepartmentData,
}

// KnownDepartment reports whether d is one of the selectable departments.
func KnownDepartment(d string) bool {
	for _, dep := range Departments {
		if dep == d {
			return true
		}
	}
	return false
}

// UnknownLastName is the placeholder for remote names with a single token.
const UnknownLastName = "N/A"

// Record is a single employee entry in the directory collection.
//
// The id is immutable once assigned: remote records keep the id the source
// gave them, locally created records get one from NextID at form-open time.
type Record struct {
	ID         int    `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// FullName returns the display name of the record.
func (r Record) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Initials returns the uppercased first letter of each name word, used by
// presentation for avatar badges.
func (r Record) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(r.FullName()) {
		b.WriteRune(unicode.ToUpper([]rune(word)[0]))
	}
	return b.String()
}

// SplitFullName splits a combined remote name on the first space: the first
// token becomes the first name, the remainder the last name. A single-token
// name gets the UnknownLastName placeholder.
func SplitFullName(name string) (first, last string) {
	first, last, ok := strings.Cut(strings.TrimSpace(name), " ")
	if !ok || last == "" {
		return first, UnknownLastName
	}
	return first, last
}
