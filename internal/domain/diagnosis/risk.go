package diagnosis

import "strings"

// WarningLevel is the derived, non-authoritative covid-risk advisory.
type WarningLevel string

const (
	WarnNoRisk          WarningLevel = "No current Risk"
	WarnConsiderTesting WarningLevel = "Consider testing/boosting"
	WarnSeekTesting     WarningLevel = "Seek testing, please consider Vaccination"
)

// CovidAdvisory derives the warning level from the analysis output and the
// user's vaccination status. A disease matches when its lowercased name
// contains "covid" or "corona" anywhere, so "Covid19" at the first ranked
// position triggers the advisory.
func CovidAdvisory(diagnoses []Diagnosis, vaccinated bool) WarningLevel {
	for _, d := range diagnoses {
		name := strings.ToLower(d.Disease)
		if strings.Contains(name, "covid") || strings.Contains(name, "corona") {
			if vaccinated {
				return WarnConsiderTesting
			}
			return WarnSeekTesting
		}
	}
	return WarnNoRisk
}
