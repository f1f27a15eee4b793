package encounter

import (
	"fmt"
	"regexp"
	"time"
)

var studentIDPattern = regexp.MustCompile(`^[0-9]{9}$`)

// ValidStudentID reports whether id is exactly nine digits.
func ValidStudentID(id string) bool {
	return studentIDPattern.MatchString(id)
}

// Encounter is one completed diagnosis run for a student. The pair
// (StudentID, RecordedAt truncated to the second) is the composite key
// shared across all three tables.
type Encounter struct {
	StudentID         string
	RecordedAt        time.Time
	VaccinationStatus string
	CovidWarning      string
	SymptomsText      string
	Diagnoses         []string
}

// Validate checks the invariants required before the encounter may be saved.
func (e *Encounter) Validate() error {
	if !ValidStudentID(e.StudentID) {
		return fmt.Errorf("student id must be exactly 9 digits")
	}
	if e.RecordedAt.IsZero() {
		return fmt.Errorf("recorded_at is required")
	}
	if len(e.Diagnoses) == 0 {
		return fmt.Errorf("at least one diagnosis is required")
	}
	for i, d := range e.Diagnoses {
		if d == "" {
			return fmt.Errorf("diagnosis %d is empty", i+1)
		}
	}
	return nil
}

// Summary is one history row: the encounter key plus its vaccination status,
// covid warning, reported symptoms, and top-ranked diagnosis.
type Summary struct {
	StudentID         string
	RecordedAt        time.Time
	VaccinationStatus string
	CovidWarning      string
	SymptomsText      string
	TopDiagnosis      string
}
