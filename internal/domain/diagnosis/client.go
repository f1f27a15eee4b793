package diagnosis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/medadvisor/medadvisor/internal/platform/apierror"
)

const diagnosisAPI = "Endless Medical"

// Passphrase required by the remote engine before any feature can be
// submitted.
const termsPassphrase = "I have read, understood and I accept and agree to comply with the " +
	"Terms of Use of EndlessMedicalAPI and Endless Medical services. The Terms of Use " +
	"are available on endlessmedical.com"

// Client talks to the remote diagnosis engine. One Session is created per
// diagnosis attempt; sessions are never shared across attempts.
type Client struct {
	baseURL    string
	http       *http.Client
	log        zerolog.Logger
	failClosed bool
}

// NewClient builds a diagnosis client. When failClosed is true, a failed
// terms-of-use acceptance aborts the session; otherwise it is logged and the
// session proceeds.
func NewClient(baseURL string, httpClient *http.Client, log zerolog.Logger, failClosed bool) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient, log: log, failClosed: failClosed}
}

// Session is the client-side view of one remote diagnostic session.
type Session struct {
	client   *Client
	id       string
	state    State
	symptoms []Symptom
}

// ID returns the opaque remote session identifier.
func (s *Session) ID() string { return s.id }

// State returns the local view of the session lifecycle.
func (s *Session) State() State { return s.state }

// Symptoms returns the symptoms submitted so far, in order.
func (s *Session) Symptoms() []Symptom { return s.symptoms }

type initSessionResponse struct {
	SessionID string `json:"SessionID"`
}

// NewSession initializes a remote session.
func (c *Client) NewSession(ctx context.Context) (*Session, error) {
	var out initSessionResponse
	if err := c.call(ctx, http.MethodGet, "/InitSession", nil, &out); err != nil {
		return nil, fmt.Errorf("init session: %w", err)
	}
	if out.SessionID == "" {
		return nil, fmt.Errorf("init session: empty session id")
	}
	return &Session{client: c, id: out.SessionID, state: StateCreated}, nil
}

// AcceptTerms submits the terms-of-use passphrase. When the client is
// configured fail-open a failure is logged and tolerated, matching the
// engine's historically lenient integration.
func (s *Session) AcceptTerms(ctx context.Context) error {
	q := url.Values{}
	q.Set("SessionID", s.id)
	q.Set("passphrase", termsPassphrase)

	err := s.client.call(ctx, http.MethodPost, "/AcceptTermsOfUse", q, nil)
	if err != nil {
		if s.client.failClosed {
			return fmt.Errorf("accept terms of use: %w", err)
		}
		s.client.log.Warn().Err(err).Str("session_id", s.id).
			Msg("terms of use acceptance failed, continuing")
		return nil
	}
	s.state = StateTermsAccepted
	return nil
}

// SetAgeGender submits the Age and Gender features. genderCode is 2 for male
// and 3 for female.
func (s *Session) SetAgeGender(ctx context.Context, age, genderCode int) error {
	if age < 1 || age > 105 {
		return fmt.Errorf("age %d out of range 1-105", age)
	}
	if genderCode != GenderMale && genderCode != GenderFemale {
		return fmt.Errorf("gender code must be %d or %d, got %d", GenderMale, GenderFemale, genderCode)
	}
	if err := s.updateFeature(ctx, "Age", strconv.Itoa(age)); err != nil {
		return fmt.Errorf("set age: %w", err)
	}
	if err := s.updateFeature(ctx, "Gender", strconv.Itoa(genderCode)); err != nil {
		return fmt.Errorf("set gender: %w", err)
	}
	s.state = StateProfileSet
	return nil
}

// AddSymptom submits one symptom feature with its severity. Repeatable.
func (s *Session) AddSymptom(ctx context.Context, sym Symptom) error {
	if err := sym.Validate(); err != nil {
		return err
	}
	if err := s.updateFeature(ctx, sym.Name, strconv.Itoa(sym.Severity)); err != nil {
		return fmt.Errorf("add symptom %s: %w", sym.Name, err)
	}
	s.symptoms = append(s.symptoms, sym)
	s.state = StateCollectingSymptoms
	return nil
}

type analyzeResponse struct {
	Diseases []map[string]float64 `json:"Diseases"`
}

// Analyze terminates the session and returns the ranked conditions, with
// probabilities scaled to percentages. A nil slice with a nil error means
// the engine reached no conclusion; callers must treat that as a valid
// terminal outcome, not a failure.
func (s *Session) Analyze(ctx context.Context) ([]Diagnosis, error) {
	q := url.Values{}
	q.Set("SessionID", s.id)

	var out analyzeResponse
	if err := s.client.call(ctx, http.MethodGet, "/Analyze", q, &out); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	s.state = StateAnalyzed

	if len(out.Diseases) == 0 {
		return nil, nil
	}

	diagnoses := make([]Diagnosis, 0, len(out.Diseases))
	for _, entry := range out.Diseases {
		for disease, probability := range entry {
			diagnoses = append(diagnoses, Diagnosis{
				Disease:     disease,
				Probability: probability * 100,
			})
		}
	}
	return diagnoses, nil
}

func (s *Session) updateFeature(ctx context.Context, name, value string) error {
	q := url.Values{}
	q.Set("SessionID", s.id)
	q.Set("name", name)
	q.Set("value", value)
	return s.client.call(ctx, http.MethodPost, "/UpdateFeature", q, nil)
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", diagnosisAPI, err)
	}
	defer resp.Body.Close()

	if err := apierror.FromStatus(diagnosisAPI, resp.StatusCode); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", diagnosisAPI, err)
		}
	}
	return nil
}
