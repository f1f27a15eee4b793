package apierror

import (
	"fmt"
	"testing"
)

func TestStatusError_Class(t *testing.T) {
	tests := []struct {
		status int
		want   Class
	}{
		{401, ClassAuth},
		{403, ClassAccessDenied},
		{404, ClassNotFound},
		{500, ClassThrottled},
		{503, ClassThrottled},
		{418, ClassUnknown},
		{502, ClassUnknown},
	}
	for _, tt := range tests {
		got := New("Persons v3", tt.status).Class()
		if got != tt.want {
			t.Errorf("status %d: expected class %v, got %v", tt.status, tt.want, got)
		}
	}
}

func TestStatusError_Fatal(t *testing.T) {
	if !New("Persons v3", 403).Fatal() {
		t.Error("403 must be fatal")
	}
	if !New("Persons v3", 404).Fatal() {
		t.Error("404 must be fatal")
	}
	for _, status := range []int{401, 500, 503, 418} {
		if New("Persons v3", status).Fatal() {
			t.Errorf("%d must not be fatal", status)
		}
	}
}

func TestFromStatus(t *testing.T) {
	if err := FromStatus("Analyze", 200); err != nil {
		t.Errorf("expected nil for 200, got %v", err)
	}
	if err := FromStatus("Analyze", 204); err != nil {
		t.Errorf("expected nil for 204, got %v", err)
	}
	err := FromStatus("Analyze", 503)
	if err == nil {
		t.Fatal("expected error for 503")
	}
	se, ok := AsStatus(err)
	if !ok {
		t.Fatal("expected StatusError")
	}
	if se.StatusCode != 503 || se.API != "Analyze" {
		t.Errorf("unexpected StatusError: %+v", se)
	}
}

func TestAsStatus_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("fetch profile: %w", New("Persons v3", 401))
	se, ok := AsStatus(wrapped)
	if !ok {
		t.Fatal("expected to unwrap StatusError")
	}
	if se.Class() != ClassAuth {
		t.Errorf("expected auth class, got %v", se.Class())
	}
}

func TestStatusError_Guidance(t *testing.T) {
	if New("Persons v3", 418).Guidance() == "" {
		t.Error("unknown class must still produce guidance")
	}
	got := New("Persons v3", 404).Guidance()
	if got != "Not found: the student ID you entered is incorrect" {
		t.Errorf("unexpected guidance: %q", got)
	}
}
