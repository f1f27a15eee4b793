package diagnosis

import (
	"fmt"

	"github.com/medadvisor/medadvisor/internal/domain/identity"
)

// State of a remote diagnostic session.
type State int

const (
	StateCreated State = iota
	StateTermsAccepted
	StateProfileSet
	StateCollectingSymptoms
	StateAnalyzed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateTermsAccepted:
		return "terms_accepted"
	case StateProfileSet:
		return "profile_set"
	case StateCollectingSymptoms:
		return "collecting_symptoms"
	case StateAnalyzed:
		return "analyzed"
	default:
		return "unknown"
	}
}

// Gender codes expected by the remote engine.
const (
	GenderMale   = 2
	GenderFemale = 3
)

// GenderCode maps the institutional sex code onto the engine's gender value.
func GenderCode(sex identity.Sex) int {
	if sex == identity.SexMale {
		return GenderMale
	}
	return GenderFemale
}

// Diagnosis is one ranked condition from the analysis. Probability is a
// percentage in [0,100]. Order is the remote service's ranking and is never
// re-sorted locally.
type Diagnosis struct {
	Disease     string
	Probability float64
}

// String renders the record form stored in the diagnoses table.
func (d Diagnosis) String() string {
	return fmt.Sprintf("%.1f%% %s", d.Probability, d.Disease)
}

// Symptom is one reported (feature, severity) pair.
type Symptom struct {
	Name     string
	Severity int
}

func (s Symptom) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("symptom name is required")
	}
	if s.Severity < 1 || s.Severity > 10 {
		return fmt.Errorf("severity %d out of range 1-10", s.Severity)
	}
	return nil
}
