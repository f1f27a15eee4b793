package encounter

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNoRecords marks an empty history. Callers must special-case it before
// rendering; it is the typed form of the legacy "this table is empty" row.
var ErrNoRecords = errors.New("no saved records for this student")

// Service validates inputs and applies the retention cap before delegating
// to the repository.
type Service struct {
	repo         Repository
	maxDiagnoses int
}

func NewService(repo Repository, maxDiagnoses int) *Service {
	if maxDiagnoses <= 0 {
		maxDiagnoses = 10
	}
	return &Service{repo: repo, maxDiagnoses: maxDiagnoses}
}

// History returns one summary row per saved encounter, oldest first.
// ErrNoRecords when the student has none.
func (s *Service) History(ctx context.Context, studentID string) ([]Summary, error) {
	if !ValidStudentID(studentID) {
		return nil, fmt.Errorf("student id must be exactly 9 digits")
	}
	summaries, err := s.repo.History(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	if len(summaries) == 0 {
		return nil, ErrNoRecords
	}
	return summaries, nil
}

// DiagnosesForDate returns the full ranked diagnosis list for one encounter.
func (s *Service) DiagnosesForDate(ctx context.Context, studentID string, recordedAt time.Time) ([]string, error) {
	if !ValidStudentID(studentID) {
		return nil, fmt.Errorf("student id must be exactly 9 digits")
	}
	diagnoses, err := s.repo.DiagnosesForDate(ctx, studentID, recordedAt.Truncate(time.Second))
	if err != nil {
		return nil, fmt.Errorf("fetch diagnoses: %w", err)
	}
	if len(diagnoses) == 0 {
		return nil, ErrNoRecords
	}
	return diagnoses, nil
}

// SaveEncounter persists one completed diagnosis run. The timestamp is
// truncated to the second and the stored diagnosis list is capped.
func (s *Service) SaveEncounter(ctx context.Context, enc *Encounter) error {
	if enc == nil {
		return fmt.Errorf("encounter is required")
	}
	enc.RecordedAt = enc.RecordedAt.Truncate(time.Second)
	if err := enc.Validate(); err != nil {
		return err
	}
	if len(enc.Diagnoses) > s.maxDiagnoses {
		enc.Diagnoses = enc.Diagnoses[:s.maxDiagnoses]
	}
	if err := s.repo.SaveEncounter(ctx, enc); err != nil {
		return fmt.Errorf("save encounter: %w", err)
	}
	return nil
}

// DeleteOne removes a single encounter by its composite key.
func (s *Service) DeleteOne(ctx context.Context, studentID string, recordedAt time.Time) error {
	if !ValidStudentID(studentID) {
		return fmt.Errorf("student id must be exactly 9 digits")
	}
	if err := s.repo.DeleteOne(ctx, studentID, recordedAt.Truncate(time.Second)); err != nil {
		return fmt.Errorf("delete encounter: %w", err)
	}
	return nil
}

// DeleteAll removes every saved encounter for the student.
func (s *Service) DeleteAll(ctx context.Context, studentID string) error {
	if !ValidStudentID(studentID) {
		return fmt.Errorf("student id must be exactly 9 digits")
	}
	if err := s.repo.DeleteAll(ctx, studentID); err != nil {
		return fmt.Errorf("delete all encounters: %w", err)
	}
	return nil
}
