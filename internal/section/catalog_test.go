package section

import (
	"errors"
	"testing"
	"time"

	"github.com/avancod/equityengine/internal/format"
	"github.com/avancod/equityengine/internal/model"
)

// fullTitles is the complete catalog order for a report with every part.
var fullTitles = []string{
	"Property Information",
	"Executive Summary (Year 1)",
	"Monthly Financial Breakdown",
	"Purchase & Financing",
	"Annual Financial Summary (Year 1)",
	"Key Financial Ratios",
	"Operating Expenses Breakdown",
	"Tax Benefits & Deductions (Year 1)",
	"Capital Gain Tax Analysis (Year 1)",
	"Sale Analysis - Pre-Tax (Year 1)",
	"Sale Analysis - Post-Tax (Year 1)",
	"Long-Term Projections",
}

// fullReport builds a report carrying every optional part.
func fullReport() *model.Report {
	return &model.Report{
		Property: &model.PropertyInfo{
			Street:       "123 Main St",
			City:         "Austin",
			State:        "TX",
			ZipCode:      "78701",
			PropertyType: model.PropertyHouse,
			YearBuilt:    1998,
			Sqft:         1500,
			LotSize:      0.25,
			Parking:      model.ParkingGarage,
			TotalBeds:    3,
			TotalBaths:   2.5,
		},
		Purchase: &model.PurchaseInfo{
			PurchasePrice:       300000,
			ClosingCost:         9000,
			InitialImprovements: 5000,
			RentMonthly:         1500,
		},
		Loan: &model.LoanInfo{
			PercentDown:   20,
			InterestRate:  6.5,
			LoanTermYears: 30,
		},
		Results: &model.AnalysisResults{
			CashFlow:          200,
			ROI:               0.081,
			CapRate:           0.037,
			EquityGrowth:      4500,
			CashOnCashReturn:  0.032,
			ReturnOnEquity:    0.054,
			MonthlyRent:       1500,
			MonthlyExpenses:   500,
			NetIncome:         1000,
			MortgageMonthly:   800,
			PurchasePrice:     300000,
			DownPayment:       60000,
			LoanAmount:        240000,
			TotalCashInvested: 74000,
			Projections: &model.Projections{
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
			},
		},
		YearlyData: map[int]*model.YearDetail{
			1: {
				EffectiveGrossIncome:   17100,
				TotalOperatingExpenses: 6000,
				InterestPaid:           15500,
				Depreciation:           8700,
				TaxableIncome:          -13100,
				Equity:                 60000,
				SellingCost:            18000,
				SaleProceeds:           42000,
				CumCashFlow:            2400,
				TotalProfitPreTax:      -29600,
				TotalProfitPostTax:     -29600,
				PropertyValue:          300000,
			},
		},
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestEvaluateFullReport(t *testing.T) {
	t.Parallel()

	sections, err := Evaluate(fullReport())
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	if len(sections) != len(fullTitles) {
		t.Fatalf("got %d sections, want %d", len(sections), len(fullTitles))
	}
	for i, s := range sections {
		if s.Title != fullTitles[i] {
			t.Errorf("section %d = %q, want %q", i, s.Title, fullTitles[i])
		}
	}

	// The projection section is the only table.
	for _, s := range sections {
		isProjection := s.Title == "Long-Term Projections"
		if s.Content.IsTable() != isProjection {
			t.Errorf("section %q: IsTable() = %v", s.Title, s.Content.IsTable())
		}
	}
}

func TestEvaluateWithoutResults(t *testing.T) {
	t.Parallel()

	r := fullReport()
	r.Results = nil

	if _, err := Evaluate(r); !errors.Is(err, ErrNoResults) {
		t.Errorf("Evaluate() error = %v, want ErrNoResults", err)
	}
}

func TestEvaluateWithoutYearlyData(t *testing.T) {
	t.Parallel()

	r := fullReport()
	r.YearlyData = nil

	sections, err := Evaluate(r)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	// The four year-one sections and the projection table require yearly
	// data, leaving the seven unconditional sections.
	if len(sections) != 7 {
		t.Fatalf("got %d sections, want 7", len(sections))
	}
	for _, s := range sections {
		switch s.Title {
		case "Tax Benefits & Deductions (Year 1)",
			"Capital Gain Tax Analysis (Year 1)",
			"Sale Analysis - Pre-Tax (Year 1)",
			"Sale Analysis - Post-Tax (Year 1)",
			"Long-Term Projections":
			t.Errorf("section %q should be excluded without yearly data", s.Title)
		}
	}
}

func TestEvaluateMissingPropertyDegradesToPlaceholders(t *testing.T) {
	t.Parallel()

	r := fullReport()
	r.Property = nil

	sections, err := Evaluate(r)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	prop := sections[0]
	if prop.Title != "Property Information" {
		t.Fatalf("first section = %q", prop.Title)
	}
	for _, row := range prop.Content.Rows {
		if row.Value != format.Placeholder {
			t.Errorf("row %q = %q, want placeholder", row.Label, row.Value)
		}
	}
}

func TestProjectionRowsRequireYearDetail(t *testing.T) {
	t.Parallel()

	// The fixture's year 5 has projection series entries but no detail
	// record, so only year 1 produces a table row.
	r := fullReport()

	sections, err := Evaluate(r)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	table := sections[len(sections)-1].Content.Table
	if table == nil {
		t.Fatal("projection section has no table")
	}
	if len(table.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(table.Rows))
	}
	if table.Rows[0][0] != "1" {
		t.Errorf("row year = %q, want %q", table.Rows[0][0], "1")
	}

	// Adding the year 5 detail record brings its row back.
	r.YearlyData[5] = &model.YearDetail{Equity: 105000}
	sections, err = Evaluate(r)
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	table = sections[len(sections)-1].Content.Table
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows after adding year 5, want 2", len(table.Rows))
	}
}

func TestEvaluateRejectsMismatchedProjections(t *testing.T) {
	t.Parallel()

	r := fullReport()
	r.Results.Projections.ROI = r.Results.Projections.ROI[:1]

	if _, err := Evaluate(r); !errors.Is(err, model.ErrProjectionLength) {
		t.Errorf("Evaluate() error = %v, want ErrProjectionLength", err)
	}
}

func TestSectionValueFormatting(t *testing.T) {
	t.Parallel()

	sections, err := Evaluate(fullReport())
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}

	byTitle := make(map[string]Evaluated, len(sections))
	for _, s := range sections {
		byTitle[s.Title] = s
	}

	tests := []struct {
		section string
		label   string
		want    string
	}{
		{"Executive Summary (Year 1)", "Monthly Cash Flow", "$200"},
		{"Executive Summary (Year 1)", "Return on Investment (ROI)", "8.1%"},
		{"Purchase & Financing", "Interest Rate", "6.5%"},
		{"Purchase & Financing", "Loan Term", "30 years"},
		{"Property Information", "Beds/Baths", "3/2.5"},
		{"Property Information", "Square Feet", "1,500 sqft"},
		{"Tax Benefits & Deductions (Year 1)", "Loan Interest", "-$15,500"},
	}

	for _, tt := range tests {
		s, ok := byTitle[tt.section]
		if !ok {
			t.Errorf("section %q missing", tt.section)
			continue
		}
		found := false
		for _, row := range s.Content.Rows {
			if row.Label == tt.label {
				found = true
				if row.Value != tt.want {
					t.Errorf("%s / %s = %q, want %q", tt.section, tt.label, row.Value, tt.want)
				}
			}
		}
		if !found {
			t.Errorf("%s has no row %q", tt.section, tt.label)
		}
	}
}

func TestAccentString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Accent
		want string
	}{
		{AccentSlate, "slate"},
		{AccentBlue, "blue"},
		{AccentViolet, "violet"},
		{AccentEmerald, "emerald"},
		{AccentAmber, "amber"},
		{AccentRed, "red"},
		{Accent(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Accent(%d).String() = %q, want %q", int(tt.in), got, tt.want)
		}
	}
}
