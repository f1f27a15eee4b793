// Package prompt is the interactive menu layer. Every prompt validates input
// shape with a bounded re-prompt loop and reports failure after the attempt
// budget is spent, never recursing.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
)

const maxAttempts = 3

// ErrTooManyAttempts is returned when a validated input prompt exhausts its
// attempt budget.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

// Back is the catalog entry that returns from the symptom select without
// choosing a symptom.
const Back = "BACK"

// Access selections.
const (
	AccessStudent = "Student"
	AccessGuest   = "Guest"
)

// Member menu selections.
const (
	MenuViewRecords     = "View my saved records"
	MenuViewVaccination = "View my vaccination status"
	MenuRunDiagnosis    = "Run a new diagnosis"
	MenuBack            = "Back"
	MenuQuit            = "Quit"
)

// Record viewer selections.
const (
	RecordsView      = "View record archive"
	RecordsDeleteOne = "Delete one record"
	RecordsDeleteAll = "Delete all records"
	RecordsBack      = "Back"
)

// Vaccination viewer selections.
const (
	VaccinationAdd = "Add vaccination record"
)

// Symptom round selections.
const (
	ActionAddSymptom = "Add another symptom"
	ActionAnalyze    = "Analyze my symptoms"
	ActionCancel     = "Cancel diagnosis"
)

// Prompter asks questions on the terminal.
type Prompter struct {
	out io.Writer
}

func New(out io.Writer) *Prompter {
	return &Prompter{out: out}
}

// Banner prints the application title.
func (p *Prompter) Banner() {
	fmt.Fprintln(p.out, "==========================================")
	fmt.Fprintln(p.out, "        Student Health Advisor")
	fmt.Fprintln(p.out, "==========================================")
}

// AccessType asks whether the user signs in as a student or continues as a
// guest.
func (p *Prompter) AccessType() (string, error) {
	var choice string
	err := survey.AskOne(&survey.Select{
		Message: "How would you like to use the advisor?",
		Options: []string{AccessStudent, AccessGuest, MenuQuit},
	}, &choice)
	return choice, err
}

// StudentID asks for a nine-digit student id.
func (p *Prompter) StudentID() (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var id string
		if err := survey.AskOne(&survey.Input{
			Message: "Enter your 9-digit student ID:",
		}, &id); err != nil {
			return "", err
		}
		if ValidStudentID(id) {
			return id, nil
		}
		fmt.Fprintln(p.out, "Student IDs are exactly 9 digits.")
	}
	return "", ErrTooManyAttempts
}

// Token asks for the API bearer token.
func (p *Prompter) Token() (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var token string
		if err := survey.AskOne(&survey.Password{
			Message: "Enter your API token:",
		}, &token); err != nil {
			return "", err
		}
		if ValidToken(token) {
			return token, nil
		}
		fmt.Fprintln(p.out, "Tokens are between 25 and 35 characters.")
	}
	return "", ErrTooManyAttempts
}

// Age asks for the user's age in years.
func (p *Prompter) Age() (int, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var raw string
		if err := survey.AskOne(&survey.Input{
			Message: "Enter your age:",
		}, &raw); err != nil {
			return 0, err
		}
		age, err := strconv.Atoi(raw)
		if err == nil && age >= 1 && age <= 105 {
			return age, nil
		}
		fmt.Fprintln(p.out, "Age must be a whole number between 1 and 105.")
	}
	return 0, ErrTooManyAttempts
}

// Gender asks for the user's sex, returning the institutional M/F code.
func (p *Prompter) Gender() (string, error) {
	var choice string
	err := survey.AskOne(&survey.Select{
		Message: "Select your sex:",
		Options: []string{"Male", "Female"},
	}, &choice)
	if err != nil {
		return "", err
	}
	if choice == "Male" {
		return "M", nil
	}
	return "F", nil
}

// MemberMenu presents the signed-in main menu.
func (p *Prompter) MemberMenu() (string, error) {
	var choice string
	err := survey.AskOne(&survey.Select{
		Message: "What would you like to do?",
		Options: []string{MenuViewRecords, MenuViewVaccination, MenuRunDiagnosis, MenuBack, MenuQuit},
	}, &choice)
	return choice, err
}

// RecordsMenu presents the saved-record actions.
func (p *Prompter) RecordsMenu() (string, error) {
	var choice string
	err := survey.AskOne(&survey.Select{
		Message: "Saved records:",
		Options: []string{RecordsView, RecordsDeleteOne, RecordsDeleteAll, RecordsBack},
	}, &choice)
	return choice, err
}

// SelectOption presents an arbitrary single-choice menu, used for picking a
// saved record by timestamp.
func (p *Prompter) SelectOption(message string, options []string) (string, error) {
	var choice string
	err := survey.AskOne(&survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}, &choice)
	return choice, err
}

// Symptom presents the filtered feature catalog plus the Back entry.
func (p *Prompter) Symptom(features []string) (string, error) {
	options := make([]string, 0, len(features)+1)
	options = append(options, Back)
	options = append(options, features...)

	var choice string
	err := survey.AskOne(&survey.Select{
		Message:  "Search for a symptom (type to filter):",
		Options:  options,
		PageSize: 12,
	}, &choice)
	return choice, err
}

// Severity asks how severe the chosen symptom is, 1 to 10.
func (p *Prompter) Severity() (int, error) {
	options := make([]string, 10)
	for i := range options {
		options[i] = strconv.Itoa(i + 1)
	}
	var choice string
	if err := survey.AskOne(&survey.Select{
		Message:  "How severe is it? (1 = mild, 10 = unbearable)",
		Options:  options,
		PageSize: 10,
	}, &choice); err != nil {
		return 0, err
	}
	return strconv.Atoi(choice)
}

// NextAction asks whether to add another symptom, analyze, or cancel.
func (p *Prompter) NextAction() (string, error) {
	var choice string
	err := survey.AskOne(&survey.Select{
		Message: "Next:",
		Options: []string{ActionAddSymptom, ActionAnalyze, ActionCancel},
	}, &choice)
	return choice, err
}

// ConfirmSave asks whether to store the analysis in the student's records.
func (p *Prompter) ConfirmSave() (bool, error) {
	var save bool
	err := survey.AskOne(&survey.Confirm{
		Message: "Save this diagnosis to your records?",
		Default: true,
	}, &save)
	return save, err
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompter) Confirm(message string) (bool, error) {
	var yes bool
	err := survey.AskOne(&survey.Confirm{Message: message}, &yes)
	return yes, err
}

// AcknowledgeNoConclusion blocks until the user acknowledges that the
// analysis reached no conclusion.
func (p *Prompter) AcknowledgeNoConclusion() error {
	var ack bool
	return survey.AskOne(&survey.Confirm{
		Message: "The analysis reached no conclusion. Nothing will be saved. Continue?",
		Default: true,
	}, &ack)
}
