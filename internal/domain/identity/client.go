package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/medadvisor/medadvisor/internal/platform/apierror"
)

// API names used for error classification.
const (
	personsAPI = "Persons v3"
	vaccineAPI = "Covid Vaccine v1"
)

// Client calls the institutional persons and covid-vaccination endpoints
// with a bearer token supplied by the user.
type Client struct {
	personsURL string
	vaccineURL string
	http       *http.Client
}

func NewClient(personsURL, vaccineURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{personsURL: personsURL, vaccineURL: vaccineURL, http: httpClient}
}

type valueString struct {
	Value string `json:"value"`
}

type personResponse struct {
	Basic struct {
		FirstName valueString `json:"first_name"`
		Surname   valueString `json:"surname"`
		Sex       valueString `json:"sex"`
	} `json:"basic"`
}

type vitalRecordResponse struct {
	Age struct {
		Value int `json:"value"`
	} `json:"age"`
}

// FetchProfile issues the basic-info and vital-record calls for the student
// and composes the normalized profile. The caller validates studentID and
// token shape before invoking. No retries are performed.
func (c *Client) FetchProfile(ctx context.Context, studentID, token string) (*UserProfile, error) {
	var person personResponse
	if err := c.get(ctx, personsAPI, fmt.Sprintf("%s/%s", c.personsURL, studentID), token, &person); err != nil {
		return nil, fmt.Errorf("fetch person: %w", err)
	}

	var vital vitalRecordResponse
	if err := c.get(ctx, personsAPI, fmt.Sprintf("%s/%s/vital_record", c.personsURL, studentID), token, &vital); err != nil {
		return nil, fmt.Errorf("fetch vital record: %w", err)
	}

	return &UserProfile{
		StudentID: studentID,
		Name:      person.Basic.FirstName.Value + " " + person.Basic.Surname.Value,
		Sex:       Sex(person.Basic.Sex.Value),
		Age:       vital.Age.Value,
	}, nil
}

// FetchVaccination retrieves the covid vaccination record for the token's
// owner.
func (c *Client) FetchVaccination(ctx context.Context, token string) (*VaccinationRecord, error) {
	var raw map[string]interface{}
	if err := c.get(ctx, vaccineAPI, c.vaccineURL+"/getVaccinationRecord", token, &raw); err != nil {
		return nil, fmt.Errorf("fetch vaccination record: %w", err)
	}

	status, _ := raw["vaccinated"].(string)
	return &VaccinationRecord{Status: status, Raw: raw}, nil
}

func (c *Client) get(ctx context.Context, api, url, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", api, err)
	}
	defer resp.Body.Close()

	if err := apierror.FromStatus(api, resp.StatusCode); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", api, err)
	}
	return nil
}
