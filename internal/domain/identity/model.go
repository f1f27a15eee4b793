package identity

import "fmt"

// Sex is the institution's sex code for a person.
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// UserProfile is the normalized view of a person assembled from the basic
// info and vital record endpoints. Immutable for the session lifetime.
type UserProfile struct {
	StudentID string
	Name      string
	Sex       Sex
	Age       int
}

func (p *UserProfile) Validate() error {
	if p.Sex != SexMale && p.Sex != SexFemale {
		return fmt.Errorf("unknown sex code %q", p.Sex)
	}
	if p.Age < 1 || p.Age > 105 {
		return fmt.Errorf("age %d out of range 1-105", p.Age)
	}
	return nil
}

// VaccinationRecord is the institution-supplied covid vaccination status,
// fetched once per session. Raw retains the full payload for display.
type VaccinationRecord struct {
	Status string
	Raw    map[string]interface{}
}

// FullyVaccinated reports whether the institution considers the record
// complete.
func (v *VaccinationRecord) FullyVaccinated() bool {
	return v.Status == "Full"
}
