package prompt

import "testing"

func TestValidStudentID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"123456789", true},
		{"000000000", true},
		{"12345678", false},
		{"1234567890", false},
		{"12345678x", false},
		{"", false},
		{"123 45678", false},
	}
	for _, tt := range tests {
		if got := ValidStudentID(tt.id); got != tt.want {
			t.Errorf("ValidStudentID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestValidToken(t *testing.T) {
	token := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = 'a'
		}
		return string(b)
	}

	if ValidToken(token(24)) {
		t.Error("24-char token accepted")
	}
	if !ValidToken(token(25)) {
		t.Error("25-char token rejected")
	}
	if !ValidToken(token(35)) {
		t.Error("35-char token rejected")
	}
	if ValidToken(token(36)) {
		t.Error("36-char token accepted")
	}
	if ValidToken("") {
		t.Error("empty token accepted")
	}
}
