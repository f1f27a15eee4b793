package encounter

import (
	"context"
	"errors"
	"testing"
	"time"
)

type encKey struct {
	studentID  string
	recordedAt time.Time
}

type mockRepo struct {
	encounters map[encKey]*Encounter
	saveErr    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{encounters: make(map[encKey]*Encounter)}
}

func (m *mockRepo) History(ctx context.Context, studentID string) ([]Summary, error) {
	var summaries []Summary
	for key, enc := range m.encounters {
		if key.studentID != studentID {
			continue
		}
		summaries = append(summaries, Summary{
			StudentID:         enc.StudentID,
			RecordedAt:        enc.RecordedAt,
			VaccinationStatus: enc.VaccinationStatus,
			CovidWarning:      enc.CovidWarning,
			SymptomsText:      enc.SymptomsText,
			TopDiagnosis:      enc.Diagnoses[0],
		})
	}
	return summaries, nil
}

func (m *mockRepo) DiagnosesForDate(ctx context.Context, studentID string, recordedAt time.Time) ([]string, error) {
	enc, ok := m.encounters[encKey{studentID, recordedAt}]
	if !ok {
		return nil, nil
	}
	return enc.Diagnoses, nil
}

func (m *mockRepo) SaveEncounter(ctx context.Context, enc *Encounter) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.encounters[encKey{enc.StudentID, enc.RecordedAt}] = enc
	return nil
}

func (m *mockRepo) DeleteOne(ctx context.Context, studentID string, recordedAt time.Time) error {
	delete(m.encounters, encKey{studentID, recordedAt})
	return nil
}

func (m *mockRepo) DeleteAll(ctx context.Context, studentID string) error {
	for key := range m.encounters {
		if key.studentID == studentID {
			delete(m.encounters, key)
		}
	}
	return nil
}

func validEncounter() *Encounter {
	return &Encounter{
		StudentID:         "123456789",
		RecordedAt:        time.Date(2024, 3, 10, 14, 30, 5, 0, time.UTC),
		VaccinationStatus: "Full",
		CovidWarning:      "Consider testing/boosting",
		SymptomsText:      "Fever, HeadacheFrontal",
		Diagnoses:         []string{"80.0% Covid19", "10.0% Influenza"},
	}
}

func TestSaveThenHistory(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, 10)
	ctx := context.Background()

	enc := validEncounter()
	if err := svc.SaveEncounter(ctx, enc); err != nil {
		t.Fatalf("SaveEncounter() error: %v", err)
	}

	summaries, err := svc.History(ctx, "123456789")
	if err != nil {
		t.Fatalf("History() error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	s := summaries[0]
	if s.VaccinationStatus != "Full" {
		t.Errorf("vaccination status = %q, want Full", s.VaccinationStatus)
	}
	if s.CovidWarning != "Consider testing/boosting" {
		t.Errorf("covid warning = %q", s.CovidWarning)
	}
	if s.TopDiagnosis != "80.0% Covid19" {
		t.Errorf("top diagnosis = %q, want rank 1 entry", s.TopDiagnosis)
	}
}

func TestHistoryEmpty(t *testing.T) {
	svc := NewService(newMockRepo(), 10)

	_, err := svc.History(context.Background(), "123456789")
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestSaveEncounterValidation(t *testing.T) {
	svc := NewService(newMockRepo(), 10)
	ctx := context.Background()

	bad := validEncounter()
	bad.StudentID = "12345"
	if err := svc.SaveEncounter(ctx, bad); err == nil {
		t.Error("short student id should be rejected")
	}

	bad = validEncounter()
	bad.Diagnoses = nil
	if err := svc.SaveEncounter(ctx, bad); err == nil {
		t.Error("encounter with zero diagnoses should be rejected")
	}

	if err := svc.SaveEncounter(ctx, nil); err == nil {
		t.Error("nil encounter should be rejected")
	}
}

func TestSaveEncounterCapsDiagnoses(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, 3)
	ctx := context.Background()

	enc := validEncounter()
	enc.Diagnoses = []string{"a", "b", "c", "d", "e"}
	if err := svc.SaveEncounter(ctx, enc); err != nil {
		t.Fatalf("SaveEncounter() error: %v", err)
	}

	saved := repo.encounters[encKey{enc.StudentID, enc.RecordedAt}]
	if len(saved.Diagnoses) != 3 {
		t.Errorf("got %d stored diagnoses, want cap of 3", len(saved.Diagnoses))
	}
}

func TestSaveEncounterTruncatesTimestamp(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, 10)

	enc := validEncounter()
	enc.RecordedAt = time.Date(2024, 3, 10, 14, 30, 5, 987654321, time.UTC)
	if err := svc.SaveEncounter(context.Background(), enc); err != nil {
		t.Fatalf("SaveEncounter() error: %v", err)
	}

	want := time.Date(2024, 3, 10, 14, 30, 5, 0, time.UTC)
	if _, ok := repo.encounters[encKey{enc.StudentID, want}]; !ok {
		t.Errorf("expected encounter stored under second-truncated key %v", want)
	}
}

func TestDeleteOneLeavesOtherTimestamps(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, 10)
	ctx := context.Background()

	first := validEncounter()
	second := validEncounter()
	second.RecordedAt = first.RecordedAt.Add(time.Hour)
	if err := svc.SaveEncounter(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := svc.SaveEncounter(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	if err := svc.DeleteOne(ctx, first.StudentID, first.RecordedAt); err != nil {
		t.Fatalf("DeleteOne() error: %v", err)
	}

	summaries, err := svc.History(ctx, first.StudentID)
	if err != nil {
		t.Fatalf("History() error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries after DeleteOne, want 1", len(summaries))
	}
	if !summaries[0].RecordedAt.Equal(second.RecordedAt) {
		t.Errorf("surviving encounter = %v, want %v", summaries[0].RecordedAt, second.RecordedAt)
	}
}

func TestDeleteAllLeavesOtherStudents(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, 10)
	ctx := context.Background()

	mine := validEncounter()
	other := validEncounter()
	other.StudentID = "987654321"
	if err := svc.SaveEncounter(ctx, mine); err != nil {
		t.Fatalf("save mine: %v", err)
	}
	if err := svc.SaveEncounter(ctx, other); err != nil {
		t.Fatalf("save other: %v", err)
	}

	if err := svc.DeleteAll(ctx, mine.StudentID); err != nil {
		t.Fatalf("DeleteAll() error: %v", err)
	}

	if _, err := svc.History(ctx, mine.StudentID); !errors.Is(err, ErrNoRecords) {
		t.Errorf("expected ErrNoRecords for purged student, got %v", err)
	}
	if _, err := svc.History(ctx, other.StudentID); err != nil {
		t.Errorf("other student's records should survive, got %v", err)
	}
}

func TestDiagnosesForDate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, 10)
	ctx := context.Background()

	enc := validEncounter()
	if err := svc.SaveEncounter(ctx, enc); err != nil {
		t.Fatalf("SaveEncounter() error: %v", err)
	}

	diagnoses, err := svc.DiagnosesForDate(ctx, enc.StudentID, enc.RecordedAt)
	if err != nil {
		t.Fatalf("DiagnosesForDate() error: %v", err)
	}
	if len(diagnoses) != 2 || diagnoses[0] != "80.0% Covid19" {
		t.Errorf("diagnoses = %v", diagnoses)
	}

	_, err = svc.DiagnosesForDate(ctx, enc.StudentID, enc.RecordedAt.Add(time.Minute))
	if !errors.Is(err, ErrNoRecords) {
		t.Errorf("expected ErrNoRecords for unknown timestamp, got %v", err)
	}
}
