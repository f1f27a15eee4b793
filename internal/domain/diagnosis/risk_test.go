package diagnosis

import "testing"

func TestCovidAdvisory(t *testing.T) {
	tests := []struct {
		name       string
		diagnoses  []Diagnosis
		vaccinated bool
		want       WarningLevel
	}{
		{
			name:       "covid unvaccinated",
			diagnoses:  []Diagnosis{{Disease: "Covid19", Probability: 80}, {Disease: "Flu", Probability: 10}},
			vaccinated: false,
			want:       WarnSeekTesting,
		},
		{
			name:       "covid vaccinated",
			diagnoses:  []Diagnosis{{Disease: "Covid19", Probability: 80}, {Disease: "Flu", Probability: 10}},
			vaccinated: true,
			want:       WarnConsiderTesting,
		},
		{
			name:       "corona case insensitive",
			diagnoses:  []Diagnosis{{Disease: "CORONAVIRUS infection", Probability: 40}},
			vaccinated: false,
			want:       WarnSeekTesting,
		},
		{
			name:       "covid mid-name",
			diagnoses:  []Diagnosis{{Disease: "PostCovidSyndrome", Probability: 25}},
			vaccinated: true,
			want:       WarnConsiderTesting,
		},
		{
			name:       "no match",
			diagnoses:  []Diagnosis{{Disease: "Influenza", Probability: 60}, {Disease: "CommonCold", Probability: 30}},
			vaccinated: false,
			want:       WarnNoRisk,
		},
		{
			name:       "empty list",
			diagnoses:  nil,
			vaccinated: false,
			want:       WarnNoRisk,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CovidAdvisory(tt.diagnoses, tt.vaccinated); got != tt.want {
				t.Errorf("CovidAdvisory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiagnosisString(t *testing.T) {
	d := Diagnosis{Disease: "Covid19", Probability: 80}
	if got := d.String(); got != "80.0% Covid19" {
		t.Errorf("String() = %q, want %q", got, "80.0% Covid19")
	}
}
