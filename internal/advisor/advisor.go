// Package advisor drives the interactive workflow: access selection,
// identity lookup, the diagnostic session, covid-risk advisory, and
// optional persistence of the encounter.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/medadvisor/medadvisor/internal/domain/diagnosis"
	"github.com/medadvisor/medadvisor/internal/domain/encounter"
	"github.com/medadvisor/medadvisor/internal/domain/identity"
	"github.com/medadvisor/medadvisor/internal/platform/apierror"
	"github.com/medadvisor/medadvisor/internal/platform/prompt"
)

// timestampLayout renders the composite-key timestamp in menus.
const timestampLayout = "2006-01-02 15:04:05"

// enrollmentURL is where students register a new vaccination record.
const enrollmentURL = "https://welcome-back.byu.edu/#"

var errQuit = errors.New("quit")

// UI is the menu layer contract consumed by the workflow.
type UI interface {
	Banner()
	AccessType() (string, error)
	StudentID() (string, error)
	Token() (string, error)
	Age() (int, error)
	Gender() (string, error)
	MemberMenu() (string, error)
	RecordsMenu() (string, error)
	SelectOption(message string, options []string) (string, error)
	Symptom(features []string) (string, error)
	Severity() (int, error)
	NextAction() (string, error)
	ConfirmSave() (bool, error)
	Confirm(message string) (bool, error)
	AcknowledgeNoConclusion() error
}

// Identity fetches the user profile and vaccination record.
type Identity interface {
	FetchProfile(ctx context.Context, studentID, token string) (*identity.UserProfile, error)
	FetchVaccination(ctx context.Context, token string) (*identity.VaccinationRecord, error)
}

// Session is one remote diagnostic session in progress.
type Session interface {
	AcceptTerms(ctx context.Context) error
	SetAgeGender(ctx context.Context, age, genderCode int) error
	AddSymptom(ctx context.Context, sym diagnosis.Symptom) error
	Analyze(ctx context.Context) ([]diagnosis.Diagnosis, error)
	Symptoms() []diagnosis.Symptom
}

// Engine creates diagnostic sessions.
type Engine interface {
	NewSession(ctx context.Context) (Session, error)
}

// Records is the encounter persistence contract.
type Records interface {
	History(ctx context.Context, studentID string) ([]encounter.Summary, error)
	DiagnosesForDate(ctx context.Context, studentID string, recordedAt time.Time) ([]string, error)
	SaveEncounter(ctx context.Context, enc *encounter.Encounter) error
	DeleteOne(ctx context.Context, studentID string, recordedAt time.Time) error
	DeleteAll(ctx context.Context, studentID string) error
}

// EngineClient adapts the concrete diagnosis client to the Engine contract.
type EngineClient struct {
	Client *diagnosis.Client
}

func (e EngineClient) NewSession(ctx context.Context) (Session, error) {
	return e.Client.NewSession(ctx)
}

// Advisor runs the interactive loop.
type Advisor struct {
	ui       UI
	identity Identity
	engine   Engine
	records  Records
	out      io.Writer
	log      zerolog.Logger
	now      func() time.Time
}

func New(ui UI, id Identity, engine Engine, records Records, out io.Writer, log zerolog.Logger) *Advisor {
	return &Advisor{
		ui:       ui,
		identity: id,
		engine:   engine,
		records:  records,
		out:      out,
		log:      log,
		now:      time.Now,
	}
}

// Run drives the top-level access loop until the user quits or a fatal API
// error occurs.
func (a *Advisor) Run(ctx context.Context) error {
	a.ui.Banner()
	for {
		access, err := a.ui.AccessType()
		if err != nil {
			return err
		}
		switch access {
		case prompt.AccessStudent:
			err = a.studentFlow(ctx)
		case prompt.AccessGuest:
			err = a.guestFlow(ctx)
		default:
			return nil
		}
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *Advisor) studentFlow(ctx context.Context) error {
	studentID, err := a.ui.StudentID()
	if err != nil {
		return err
	}
	token, err := a.ui.Token()
	if err != nil {
		return err
	}

	profile, err := a.identity.FetchProfile(ctx, studentID, token)
	if err != nil {
		return a.handleAPIError(err)
	}
	fmt.Fprintf(a.out, "\nWelcome, %s!\n\n", profile.Name)

	vaccination, err := a.identity.FetchVaccination(ctx, token)
	if err != nil {
		if handled := a.handleAPIError(err); handled != nil {
			return handled
		}
		vaccination = &identity.VaccinationRecord{Status: "Unknown"}
	}

	for {
		choice, err := a.ui.MemberMenu()
		if err != nil {
			return err
		}
		switch choice {
		case prompt.MenuViewRecords:
			if err := a.recordsFlow(ctx, studentID); err != nil {
				return err
			}
		case prompt.MenuViewVaccination:
			if err := a.vaccinationFlow(vaccination); err != nil {
				return err
			}
		case prompt.MenuRunDiagnosis:
			if err := a.diagnosisFlow(ctx, profile.Age, diagnosis.GenderCode(profile.Sex), studentID, vaccination); err != nil {
				return err
			}
		case prompt.MenuBack:
			return nil
		default:
			return errQuit
		}
	}
}

func (a *Advisor) guestFlow(ctx context.Context) error {
	age, err := a.ui.Age()
	if err != nil {
		return err
	}
	sex, err := a.ui.Gender()
	if err != nil {
		return err
	}
	genderCode := diagnosis.GenderFemale
	if sex == "M" {
		genderCode = diagnosis.GenderMale
	}
	// Guests have no student id; nothing is persisted.
	return a.diagnosisFlow(ctx, age, genderCode, "", nil)
}

// diagnosisFlow runs one remote session end to end. When studentID is empty
// the result is display-only.
func (a *Advisor) diagnosisFlow(ctx context.Context, age, genderCode int, studentID string, vaccination *identity.VaccinationRecord) error {
	sess, err := a.engine.NewSession(ctx)
	if err != nil {
		return a.handleAPIError(err)
	}
	if err := sess.AcceptTerms(ctx); err != nil {
		return a.handleAPIError(err)
	}
	if err := sess.SetAgeGender(ctx, age, genderCode); err != nil {
		return a.handleAPIError(err)
	}

	analyze, err := a.collectSymptoms(ctx, sess)
	if err != nil {
		return err
	}
	if !analyze {
		fmt.Fprintln(a.out, "Diagnosis cancelled.")
		return nil
	}

	diagnoses, err := sess.Analyze(ctx)
	if err != nil {
		return a.handleAPIError(err)
	}
	if len(diagnoses) == 0 {
		return a.ui.AcknowledgeNoConclusion()
	}

	renderDiagnosisResults(a.out, diagnoses)

	vaccinated := vaccination != nil && vaccination.FullyVaccinated()
	warning := diagnosis.CovidAdvisory(diagnoses, vaccinated)
	fmt.Fprintf(a.out, "\nCovid-risk advisory: %s\n\n", warning)

	if studentID == "" {
		return nil
	}
	return a.offerSave(ctx, studentID, vaccination, warning, sess.Symptoms(), diagnoses)
}

// collectSymptoms loops symptom selection until the user analyzes or cancels.
// Returns true when analysis was requested.
func (a *Advisor) collectSymptoms(ctx context.Context, sess Session) (bool, error) {
	for {
		name, err := a.ui.Symptom(diagnosis.Features)
		if err != nil {
			return false, err
		}
		if name == prompt.Back {
			if len(sess.Symptoms()) == 0 {
				return false, nil
			}
			return true, nil
		}

		severity, err := a.ui.Severity()
		if err != nil {
			return false, err
		}
		if err := sess.AddSymptom(ctx, diagnosis.Symptom{Name: name, Severity: severity}); err != nil {
			if handled := a.handleAPIError(err); handled != nil {
				return false, handled
			}
			continue
		}

		action, err := a.ui.NextAction()
		if err != nil {
			return false, err
		}
		switch action {
		case prompt.ActionAnalyze:
			return true, nil
		case prompt.ActionCancel:
			return false, nil
		}
	}
}

func (a *Advisor) offerSave(ctx context.Context, studentID string, vaccination *identity.VaccinationRecord, warning diagnosis.WarningLevel, symptoms []diagnosis.Symptom, diagnoses []diagnosis.Diagnosis) error {
	save, err := a.ui.ConfirmSave()
	if err != nil {
		return err
	}
	if !save {
		return nil
	}

	names := make([]string, len(symptoms))
	for i, s := range symptoms {
		names[i] = s.Name
	}
	entries := make([]string, len(diagnoses))
	for i, d := range diagnoses {
		entries[i] = d.String()
	}
	status := "Unknown"
	if vaccination != nil {
		status = vaccination.Status
	}

	enc := &encounter.Encounter{
		StudentID:         studentID,
		RecordedAt:        a.now(),
		VaccinationStatus: status,
		CovidWarning:      string(warning),
		SymptomsText:      strings.Join(names, ", "),
		Diagnoses:         entries,
	}
	if err := a.records.SaveEncounter(ctx, enc); err != nil {
		return fmt.Errorf("save encounter: %w", err)
	}
	fmt.Fprintln(a.out, "Diagnosis saved to your records.")
	return nil
}

// vaccinationFlow loops the vaccination table with the option to enroll for
// a new record until the user backs out.
func (a *Advisor) vaccinationFlow(vaccination *identity.VaccinationRecord) error {
	for {
		renderVaccination(a.out, vaccination)
		choice, err := a.ui.SelectOption("Vaccination record:", []string{prompt.VaccinationAdd, prompt.Back})
		if err != nil {
			return err
		}
		if choice != prompt.VaccinationAdd {
			return nil
		}
		fmt.Fprintf(a.out, "To add a vaccination record, visit %s\n", enrollmentURL)
	}
}

func (a *Advisor) recordsFlow(ctx context.Context, studentID string) error {
	for {
		choice, err := a.ui.RecordsMenu()
		if err != nil {
			return err
		}
		switch choice {
		case prompt.RecordsView:
			if err := a.viewArchive(ctx, studentID); err != nil {
				return err
			}
		case prompt.RecordsDeleteOne:
			if err := a.deleteOne(ctx, studentID); err != nil {
				return err
			}
		case prompt.RecordsDeleteAll:
			if err := a.deleteAll(ctx, studentID); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// timestampOptions labels each summary for the menu and keeps the original
// time.Time values so composite-key operations never round-trip through the
// displayed text.
func timestampOptions(summaries []encounter.Summary) ([]string, map[string]time.Time) {
	options := make([]string, 0, len(summaries)+1)
	byLabel := make(map[string]time.Time, len(summaries))
	for _, s := range summaries {
		label := s.RecordedAt.Format(timestampLayout)
		options = append(options, label)
		byLabel[label] = s.RecordedAt
	}
	options = append(options, prompt.Back)
	return options, byLabel
}

func (a *Advisor) viewArchive(ctx context.Context, studentID string) error {
	summaries, err := a.records.History(ctx, studentID)
	if errors.Is(err, encounter.ErrNoRecords) {
		fmt.Fprintln(a.out, "You have no saved records yet.")
		return nil
	}
	if err != nil {
		return err
	}
	renderHistory(a.out, summaries)

	options, byLabel := timestampOptions(summaries)
	choice, err := a.ui.SelectOption("View full diagnoses for a record:", options)
	if err != nil {
		return err
	}
	if choice == prompt.Back {
		return nil
	}
	diagnoses, err := a.records.DiagnosesForDate(ctx, studentID, byLabel[choice])
	if errors.Is(err, encounter.ErrNoRecords) {
		fmt.Fprintln(a.out, "No diagnoses found for that record.")
		return nil
	}
	if err != nil {
		return err
	}
	renderDiagnosisList(a.out, choice, diagnoses)
	return nil
}

func (a *Advisor) deleteOne(ctx context.Context, studentID string) error {
	summaries, err := a.records.History(ctx, studentID)
	if errors.Is(err, encounter.ErrNoRecords) {
		fmt.Fprintln(a.out, "You have no saved records yet.")
		return nil
	}
	if err != nil {
		return err
	}

	options, byLabel := timestampOptions(summaries)
	choice, err := a.ui.SelectOption("Delete which record?", options)
	if err != nil {
		return err
	}
	if choice == prompt.Back {
		return nil
	}
	if err := a.records.DeleteOne(ctx, studentID, byLabel[choice]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Record deleted.")
	return nil
}

func (a *Advisor) deleteAll(ctx context.Context, studentID string) error {
	confirmed, err := a.ui.Confirm("Delete ALL of your saved records?")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}
	if err := a.records.DeleteAll(ctx, studentID); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "All records deleted.")
	return nil
}

// handleAPIError applies the status taxonomy: fatal classes propagate and
// terminate, recoverable classes are shown to the user and tolerated.
func (a *Advisor) handleAPIError(err error) error {
	statusErr, ok := apierror.AsStatus(err)
	if !ok {
		return err
	}
	if statusErr.Fatal() {
		fmt.Fprintln(a.out, statusErr.Guidance())
		return err
	}
	a.log.Warn().Err(err).Str("class", statusErr.Class().String()).Msg("recoverable upstream failure")
	fmt.Fprintln(a.out, statusErr.Guidance())
	return nil
}
