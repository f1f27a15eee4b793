package encounter

import (
	"testing"
	"time"
)

func TestValidStudentID(t *testing.T) {
	valid := []string{"123456789", "000000000", "999999999"}
	for _, id := range valid {
		if !ValidStudentID(id) {
			t.Errorf("ValidStudentID(%q) = false, want true", id)
		}
	}

	invalid := []string{"", "12345678", "1234567890", "12345678a", "abcdefghi", " 23456789", "12345678 "}
	for _, id := range invalid {
		if ValidStudentID(id) {
			t.Errorf("ValidStudentID(%q) = true, want false", id)
		}
	}
}

func TestEncounterValidate(t *testing.T) {
	base := Encounter{
		StudentID:  "123456789",
		RecordedAt: time.Now(),
		Diagnoses:  []string{"80.0% Covid19"},
	}

	if err := base.Validate(); err != nil {
		t.Errorf("valid encounter rejected: %v", err)
	}

	e := base
	e.StudentID = "bad"
	if err := e.Validate(); err == nil {
		t.Error("bad student id accepted")
	}

	e = base
	e.RecordedAt = time.Time{}
	if err := e.Validate(); err == nil {
		t.Error("zero timestamp accepted")
	}

	e = base
	e.Diagnoses = []string{}
	if err := e.Validate(); err == nil {
		t.Error("empty diagnosis list accepted")
	}

	e = base
	e.Diagnoses = []string{"80.0% Covid19", ""}
	if err := e.Validate(); err == nil {
		t.Error("blank diagnosis entry accepted")
	}
}
