package diagnosis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medadvisor/medadvisor/internal/platform/apierror"
)

type engineCall struct {
	method string
	path   string
	query  url.Values
}

func newEngine(t *testing.T, analyzeBody string) (*httptest.Server, *[]engineCall) {
	t.Helper()

	calls := &[]engineCall{}
	mux := http.NewServeMux()
	record := func(r *http.Request) {
		*calls = append(*calls, engineCall{method: r.Method, path: r.URL.Path, query: r.URL.Query()})
	}

	mux.HandleFunc("/InitSession", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		json.NewEncoder(w).Encode(map[string]string{"SessionID": "sess-42"})
	})
	mux.HandleFunc("/AcceptTermsOfUse", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/UpdateFeature", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/Analyze", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.Write([]byte(analyzeBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, calls
}

func TestSessionFullWorkflow(t *testing.T) {
	srv, calls := newEngine(t, `{"Diseases":[{"Covid19":0.8},{"Influenza":0.1}]}`)
	client := NewClient(srv.URL, srv.Client(), zerolog.Nop(), false)
	ctx := context.Background()

	sess, err := client.NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	if sess.ID() != "sess-42" {
		t.Errorf("session id = %q, want sess-42", sess.ID())
	}
	if sess.State() != StateCreated {
		t.Errorf("state = %v, want %v", sess.State(), StateCreated)
	}

	if err := sess.AcceptTerms(ctx); err != nil {
		t.Fatalf("AcceptTerms() error: %v", err)
	}
	if sess.State() != StateTermsAccepted {
		t.Errorf("state = %v, want %v", sess.State(), StateTermsAccepted)
	}

	if err := sess.SetAgeGender(ctx, 23, GenderFemale); err != nil {
		t.Fatalf("SetAgeGender() error: %v", err)
	}
	if sess.State() != StateProfileSet {
		t.Errorf("state = %v, want %v", sess.State(), StateProfileSet)
	}

	if err := sess.AddSymptom(ctx, Symptom{Name: "Fever", Severity: 7}); err != nil {
		t.Fatalf("AddSymptom() error: %v", err)
	}
	if err := sess.AddSymptom(ctx, Symptom{Name: "HeadacheFrontal", Severity: 4}); err != nil {
		t.Fatalf("AddSymptom() error: %v", err)
	}
	if got := len(sess.Symptoms()); got != 2 {
		t.Errorf("symptom count = %d, want 2", got)
	}

	diagnoses, err := sess.Analyze(ctx)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if sess.State() != StateAnalyzed {
		t.Errorf("state = %v, want %v", sess.State(), StateAnalyzed)
	}
	if len(diagnoses) != 2 {
		t.Fatalf("got %d diagnoses, want 2", len(diagnoses))
	}
	if diagnoses[0].Disease != "Covid19" || diagnoses[0].Probability != 80 {
		t.Errorf("first diagnosis = %+v, want Covid19 at 80", diagnoses[0])
	}
	if diagnoses[1].Disease != "Influenza" || diagnoses[1].Probability != 10 {
		t.Errorf("second diagnosis = %+v, want Influenza at 10", diagnoses[1])
	}

	// Verify the choreography: init, terms, age, gender, two symptoms, analyze.
	paths := []string{"/InitSession", "/AcceptTermsOfUse", "/UpdateFeature", "/UpdateFeature", "/UpdateFeature", "/UpdateFeature", "/Analyze"}
	if len(*calls) != len(paths) {
		t.Fatalf("got %d calls, want %d", len(*calls), len(paths))
	}
	for i, want := range paths {
		if (*calls)[i].path != want {
			t.Errorf("call[%d] path = %s, want %s", i, (*calls)[i].path, want)
		}
	}

	terms := (*calls)[1]
	if terms.query.Get("SessionID") != "sess-42" {
		t.Errorf("terms call missing session id, got %q", terms.query.Get("SessionID"))
	}
	if terms.query.Get("passphrase") != termsPassphrase {
		t.Errorf("terms call passphrase mismatch")
	}

	age := (*calls)[2]
	if age.query.Get("name") != "Age" || age.query.Get("value") != "23" {
		t.Errorf("age call = name %q value %q", age.query.Get("name"), age.query.Get("value"))
	}
	gender := (*calls)[3]
	if gender.query.Get("name") != "Gender" || gender.query.Get("value") != "3" {
		t.Errorf("gender call = name %q value %q", gender.query.Get("name"), gender.query.Get("value"))
	}
	sym := (*calls)[4]
	if sym.query.Get("name") != "Fever" || sym.query.Get("value") != "7" {
		t.Errorf("symptom call = name %q value %q", sym.query.Get("name"), sym.query.Get("value"))
	}
}

func TestAnalyzeNoConclusion(t *testing.T) {
	srv, _ := newEngine(t, `{"Diseases":[]}`)
	client := NewClient(srv.URL, srv.Client(), zerolog.Nop(), false)
	ctx := context.Background()

	sess, err := client.NewSession(ctx)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	diagnoses, err := sess.Analyze(ctx)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if diagnoses != nil {
		t.Errorf("expected nil diagnoses for empty disease list, got %v", diagnoses)
	}
}

func TestAcceptTermsFailOpen(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/InitSession", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"SessionID": "sess-1"})
	})
	mux.HandleFunc("/AcceptTermsOfUse", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), zerolog.Nop(), false)
	sess, err := client.NewSession(context.Background())
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	if err := sess.AcceptTerms(context.Background()); err != nil {
		t.Errorf("fail-open AcceptTerms should tolerate failure, got %v", err)
	}
}

func TestAcceptTermsFailClosed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/InitSession", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"SessionID": "sess-1"})
	})
	mux.HandleFunc("/AcceptTermsOfUse", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), zerolog.Nop(), true)
	sess, err := client.NewSession(context.Background())
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	err = sess.AcceptTerms(context.Background())
	if err == nil {
		t.Fatal("fail-closed AcceptTerms should return error")
	}
	statusErr, ok := apierror.AsStatus(err)
	if !ok {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Class() != apierror.ClassThrottled {
		t.Errorf("class = %v, want %v", statusErr.Class(), apierror.ClassThrottled)
	}
}

func TestAddSymptomSeverityBounds(t *testing.T) {
	srv, calls := newEngine(t, `{"Diseases":[]}`)
	client := NewClient(srv.URL, srv.Client(), zerolog.Nop(), false)
	sess, err := client.NewSession(context.Background())
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	before := len(*calls)

	for _, severity := range []int{0, -1, 11, 100} {
		if err := sess.AddSymptom(context.Background(), Symptom{Name: "Fever", Severity: severity}); err == nil {
			t.Errorf("severity %d should be rejected", severity)
		}
	}
	if len(*calls) != before {
		t.Errorf("invalid symptoms must not reach the engine, got %d extra calls", len(*calls)-before)
	}
	if len(sess.Symptoms()) != 0 {
		t.Errorf("invalid symptoms must not be recorded, got %d", len(sess.Symptoms()))
	}
}

func TestSetAgeGenderValidation(t *testing.T) {
	srv, _ := newEngine(t, `{"Diseases":[]}`)
	client := NewClient(srv.URL, srv.Client(), zerolog.Nop(), false)
	sess, err := client.NewSession(context.Background())
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}

	if err := sess.SetAgeGender(context.Background(), 0, GenderMale); err == nil {
		t.Error("age 0 should be rejected")
	}
	if err := sess.SetAgeGender(context.Background(), 106, GenderMale); err == nil {
		t.Error("age 106 should be rejected")
	}
	if err := sess.SetAgeGender(context.Background(), 30, 5); err == nil {
		t.Error("gender code 5 should be rejected")
	}
}
