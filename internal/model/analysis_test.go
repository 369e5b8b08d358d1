package model

import (
	"errors"
	"strings"
	"testing"
)

// validProjections builds a two-year projection set with matching series.
func validProjections() *Projections {
	return &Projections{
		Years:             []int{1, 5},
		GrossRent:         []float64{18000, 20000},
		OperatingIncome:   []float64{17100, 19000},
		OperatingExpenses: []float64{6000, 6600},
		NOI:               []float64{11100, 12400},
		CashFlow:          []float64{2400, 3600},
		PropertyValue:     []float64{300000, 340000},
		Equity:            []float64{60000, 105000},
		CapRate:           []float64{3.7, 3.6},
		CashOnCashReturn:  []float64{3.2, 4.8},
		ROI:               []float64{8.1, 9.4},
		IRR:               []float64{8.1, 8.9},
	}
}

func TestProjectionsValidate(t *testing.T) {
	t.Parallel()

	t.Run("matching series pass", func(t *testing.T) {
		t.Parallel()
		if err := validProjections().Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("short series fails with sentinel", func(t *testing.T) {
		t.Parallel()

		p := validProjections()
		p.Equity = p.Equity[:1]

		err := p.Validate()
		if !errors.Is(err, ErrProjectionLength) {
			t.Fatalf("Validate() = %v, want ErrProjectionLength", err)
		}
		if !strings.Contains(err.Error(), "equity") {
			t.Errorf("error %q does not name the offending series", err)
		}
	})

	t.Run("empty projections pass", func(t *testing.T) {
		t.Parallel()
		if err := (&Projections{}).Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})
}

func TestReportYear1(t *testing.T) {
	t.Parallel()

	t.Run("nil yearly data", func(t *testing.T) {
		t.Parallel()
		r := &Report{}
		if got := r.Year1(); got != nil {
			t.Errorf("Year1() = %v, want nil", got)
		}
	})

	t.Run("year one present", func(t *testing.T) {
		t.Parallel()
		detail := &YearDetail{Equity: 60000}
		r := &Report{YearlyData: map[int]*YearDetail{1: detail}}
		if got := r.Year1(); got != detail {
			t.Errorf("Year1() = %v, want %v", got, detail)
		}
	})

	t.Run("only later years", func(t *testing.T) {
		t.Parallel()
		r := &Report{YearlyData: map[int]*YearDetail{5: {}}}
		if got := r.Year1(); got != nil {
			t.Errorf("Year1() = %v, want nil", got)
		}
	})
}

func TestReportHasProjections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report *Report
		want   bool
	}{
		{
			name:   "no results",
			report: &Report{YearlyData: map[int]*YearDetail{1: {}}},
			want:   false,
		},
		{
			name:   "results without projections",
			report: &Report{Results: &AnalysisResults{}, YearlyData: map[int]*YearDetail{1: {}}},
			want:   false,
		},
		{
			name:   "projections without yearly data",
			report: &Report{Results: &AnalysisResults{Projections: validProjections()}},
			want:   false,
		},
		{
			name: "all present",
			report: &Report{
				Results:    &AnalysisResults{Projections: validProjections()},
				YearlyData: map[int]*YearDetail{1: {}},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.report.HasProjections(); got != tt.want {
				t.Errorf("HasProjections() = %v, want %v", got, tt.want)
			}
		})
	}
}
