package academic

import (
	"github.com/alem-hub/university-registry/internal/domain/shared"
)

// Department groups professors. It does not own them.
type Department struct {
	name       string
	location   string
	budget     float64
	professors []shared.PersonRef
}

// NewDepartment creates an empty department.
func NewDepartment(name, location string, budget float64) *Department {
	return &Department{name: name, location: location, budget: budget}
}

// Name returns the department name.
func (d *Department) Name() string { return d.name }

// Location returns where the department sits.
func (d *Department) Location() string { return d.location }

// Budget returns the yearly budget.
func (d *Department) Budget() float64 { return d.budget }

// AddProfessor appends a professor handle.
func (d *Department) AddProfessor(p shared.PersonRef) {
	d.professors = append(d.professors, p)
}

// Professors returns a copy of the professor handles in insertion order.
func (d *Department) Professors() []shared.PersonRef {
	out := make([]shared.PersonRef, len(d.professors))
	copy(out, d.professors)
	return out
}

// RemoveProfessor drops every occurrence of p and reports how many were removed.
func (d *Department) RemoveProfessor(p shared.PersonRef) int {
	kept := d.professors[:0]
	removed := 0
	for _, ref := range d.professors {
		if ref == p {
			removed++
			continue
		}
		kept = append(kept, ref)
	}
	d.professors = kept
	return removed
}
