package advisor

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/medadvisor/medadvisor/internal/domain/diagnosis"
	"github.com/medadvisor/medadvisor/internal/domain/encounter"
	"github.com/medadvisor/medadvisor/internal/domain/identity"
)

func renderHistory(w io.Writer, summaries []encounter.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Vaccination", "Covid Warning", "Symptoms", "Top Diagnosis"})
	for _, s := range summaries {
		table.Append([]string{
			s.RecordedAt.Format(timestampLayout),
			s.VaccinationStatus,
			s.CovidWarning,
			s.SymptomsText,
			s.TopDiagnosis,
		})
	}
	table.Render()
}

func renderDiagnosisList(w io.Writer, date string, diagnoses []string) {
	fmt.Fprintf(w, "Diagnoses recorded on %s:\n", date)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Diagnosis"})
	for i, d := range diagnoses {
		table.Append([]string{strconv.Itoa(i + 1), d})
	}
	table.Render()
}

func renderDiagnosisResults(w io.Writer, diagnoses []diagnosis.Diagnosis) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Condition", "Probability"})
	for i, d := range diagnoses {
		table.Append([]string{
			strconv.Itoa(i + 1),
			d.Disease,
			fmt.Sprintf("%.1f%%", d.Probability),
		})
	}
	table.Render()
}

func renderVaccination(w io.Writer, rec *identity.VaccinationRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"vaccinated", rec.Status})

	keys := make([]string, 0, len(rec.Raw))
	for k := range rec.Raw {
		if k == "vaccinated" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		table.Append([]string{k, fmt.Sprint(rec.Raw[k])})
	}
	table.Render()
}
