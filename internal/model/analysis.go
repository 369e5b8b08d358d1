package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrProjectionLength is returned when the parallel projection series do not
// all share the length of the Years sequence. Rendering a report with a
// malformed projection set must fail before any artifact is produced.
var ErrProjectionLength = errors.New("projection series length mismatch")

// AnalysisResults is the flat record of pre-computed financial metrics for
// year one of the investment, as returned by the external analysis service.
//
// Design decision: We keep this as a single flat struct mirroring the
// service's JSON payload rather than grouping metrics into sub-structs.
// The section catalog is the layer that groups metrics for presentation;
// duplicating that grouping here would force two places to agree.
//
// Unit convention: every field named like a rate or return (ROI, CapRate,
// CashOnCashReturn, ReturnOnEquity, BreakEvenRatio, DebtYield, IRR) is a
// 0-1 decimal fraction. The Projections series are the exception; see the
// Projections doc comment.
type AnalysisResults struct {
	// === Executive summary (year 1) ===

	// CashFlow is the monthly pre-tax cash flow.
	CashFlow float64 `json:"cashFlow"`

	// ROI is the year-one return on investment as a decimal fraction.
	ROI float64 `json:"roi"`

	// CapRate is the capitalization rate as a decimal fraction.
	CapRate float64 `json:"capRate"`

	// EquityGrowth is the year-one equity growth in currency.
	EquityGrowth float64 `json:"equityGrowth"`

	// CashOnCashReturn is the cash-on-cash return as a decimal fraction.
	CashOnCashReturn float64 `json:"cashOnCashReturn"`

	// ReturnOnEquity is the return on equity as a decimal fraction.
	ReturnOnEquity float64 `json:"returnOnEquity"`

	// === Monthly breakdown ===

	// MonthlyRent is the gross monthly rent.
	MonthlyRent float64 `json:"monthlyRent"`

	// MonthlyExpenses is the total monthly operating expenses.
	MonthlyExpenses float64 `json:"monthlyExpenses"`

	// NetIncome is the net monthly income before debt service.
	NetIncome float64 `json:"netIncome"`

	// MortgageMonthly is the monthly mortgage payment.
	MortgageMonthly float64 `json:"mortgageMonthly"`

	// === Purchase & financing ===

	// PurchasePrice is the contract purchase price.
	PurchasePrice float64 `json:"purchasePrice"`

	// DownPayment is the down payment amount.
	DownPayment float64 `json:"downPayment"`

	// LoanAmount is the financed amount.
	LoanAmount float64 `json:"loanAmount"`

	// TotalCashInvested is down payment + closing cost + improvements.
	TotalCashInvested float64 `json:"totalCashInvested"`

	// === Annual summary (year 1) ===

	// GrossRentAnnual is the gross scheduled annual rent.
	GrossRentAnnual float64 `json:"grossRentAnnual"`

	// VacancyLossAnnual is the annual vacancy loss.
	VacancyLossAnnual float64 `json:"vacancyLossAnnual"`

	// OperatingIncomeAnnual is the effective gross annual income.
	OperatingIncomeAnnual float64 `json:"operatingIncomeAnnual"`

	// OperatingExpensesAnnual is the total annual operating expenses.
	OperatingExpensesAnnual float64 `json:"operatingExpensesAnnual"`

	// NOIAnnual is the annual net operating income.
	NOIAnnual float64 `json:"noiAnnual"`

	// CashFlowAnnual is the annual pre-tax cash flow.
	CashFlowAnnual float64 `json:"cashFlowAnnual"`

	// === Ratios ===

	// GrossRentMultiplier is price divided by gross annual rent.
	GrossRentMultiplier float64 `json:"grossRentMultiplier"`

	// BreakEvenRatio is the break-even ratio as a decimal fraction.
	BreakEvenRatio float64 `json:"breakEvenRatio"`

	// DebtCoverageRatio is NOI divided by annual debt service.
	DebtCoverageRatio float64 `json:"debtCoverageRatio"`

	// DebtYield is NOI divided by loan amount, as a decimal fraction.
	DebtYield float64 `json:"debtYield"`

	// EquityMultiple is total return divided by cash invested.
	EquityMultiple float64 `json:"equityMultiple"`

	// IRR is the internal rate of return as a decimal fraction.
	IRR float64 `json:"irr"`

	// === Monthly expense breakdown ===

	// PropertyTaxMonthly is the monthly property tax reserve.
	PropertyTaxMonthly float64 `json:"propertyTaxMonthly"`

	// InsuranceMonthly is the monthly insurance reserve.
	InsuranceMonthly float64 `json:"insuranceMonthly"`

	// PropertyManagementMonthly is the monthly management fee.
	PropertyManagementMonthly float64 `json:"propertyManagementMonthly"`

	// MaintenanceMonthly is the monthly maintenance reserve.
	MaintenanceMonthly float64 `json:"maintenanceMonthly"`

	// OwnerPaidUtilitiesMonthly is the monthly owner-paid utilities cost.
	OwnerPaidUtilitiesMonthly float64 `json:"ownerPaidUtilitiesMonthly"`

	// Projections holds the long-term outlook series, if computed.
	Projections *Projections `json:"projections,omitempty"`
}

// Projections holds parallel ordered metric series for the long-term outlook.
// Index i in every series corresponds to Years[i].
//
// Unit convention: unlike the AnalysisResults scalars, the CapRate,
// CashOnCashReturn, ROI, and IRR series carry values already scaled to the
// 0-100 range. This mirrors the analysis service's historical payload and is
// deliberately not "fixed" here; the section catalog selects the matching
// formatter per field.
type Projections struct {
	// Years is the ordered list of projection years (e.g. 1, 5, 10, 20, 30).
	Years []int `json:"years"`

	// GrossRent is the projected gross annual rent per year.
	GrossRent []float64 `json:"grossRent"`

	// OperatingIncome is the projected effective gross income per year.
	OperatingIncome []float64 `json:"operatingIncome"`

	// OperatingExpenses is the projected operating expenses per year.
	OperatingExpenses []float64 `json:"operatingExpenses"`

	// NOI is the projected net operating income per year.
	NOI []float64 `json:"noi"`

	// CashFlow is the projected pre-tax cash flow per year.
	CashFlow []float64 `json:"cashFlow"`

	// PropertyValue is the projected property value per year.
	PropertyValue []float64 `json:"propertyValue"`

	// Equity is the projected equity per year.
	Equity []float64 `json:"equity"`

	// CapRate is the projected cap rate per year, scaled 0-100.
	CapRate []float64 `json:"capRate"`

	// CashOnCashReturn is the projected cash-on-cash return, scaled 0-100.
	CashOnCashReturn []float64 `json:"cashOnCashReturn"`

	// ROI is the projected return on investment per year, scaled 0-100.
	ROI []float64 `json:"roi"`

	// IRR is the projected internal rate of return per year, scaled 0-100.
	IRR []float64 `json:"irr"`
}

// Validate checks that every metric series has exactly one entry per year.
// It returns ErrProjectionLength (wrapped with the offending series name)
// on the first mismatch found.
func (p *Projections) Validate() error {
	n := len(p.Years)
	series := []struct {
		name   string
		length int
	}{
		{"grossRent", len(p.GrossRent)},
		{"operatingIncome", len(p.OperatingIncome)},
		{"operatingExpenses", len(p.OperatingExpenses)},
		{"noi", len(p.NOI)},
		{"cashFlow", len(p.CashFlow)},
		{"propertyValue", len(p.PropertyValue)},
		{"equity", len(p.Equity)},
		{"capRate", len(p.CapRate)},
		{"cashOnCashReturn", len(p.CashOnCashReturn)},
		{"roi", len(p.ROI)},
		{"irr", len(p.IRR)},
	}

	for _, s := range series {
		if s.length != n {
			return fmt.Errorf("%w: %s has %d entries, want %d", ErrProjectionLength, s.name, s.length, n)
		}
	}
	return nil
}

// YearDetail is the detailed per-year record computed by the analysis
// service. The yearly data map is sparse: it commonly contains only year 1,
// and for long horizons only the projection milestone years.
type YearDetail struct {
	// EffectiveGrossIncome is gross rent less vacancy loss.
	EffectiveGrossIncome float64 `json:"effective_gross_income"`

	// TotalOperatingExpenses is the sum of all operating expenses.
	TotalOperatingExpenses float64 `json:"total_operating_expenses"`

	// InterestPaid is the mortgage interest paid during the year.
	InterestPaid float64 `json:"interest_paid"`

	// Depreciation is the depreciation deduction for the year.
	Depreciation float64 `json:"depreciation"`

	// TaxableIncome is income after all deductions.
	TaxableIncome float64 `json:"taxable_income"`

	// IncomeTaxDue is the income tax owed for the year.
	IncomeTaxDue float64 `json:"income_tax_due"`

	// OriginalCostBasis is the cost basis at acquisition.
	OriginalCostBasis float64 `json:"original_cost_basis"`

	// CumDepreciation is depreciation accumulated through this year.
	CumDepreciation float64 `json:"cum_dep"`

	// SellingCost is the estimated cost to sell at this year's value.
	SellingCost float64 `json:"selling_cost"`

	// AdjustedCostBasis is basis plus improvements less depreciation.
	AdjustedCostBasis float64 `json:"adjusted_cost_basis"`

	// PropertyValue is the appreciated value at this year.
	PropertyValue float64 `json:"property_value"`

	// CapitalGain is sale price less adjusted basis and selling cost.
	CapitalGain float64 `json:"capital_gain"`

	// TaxOnCapitalGain is the capital gains tax at sale.
	TaxOnCapitalGain float64 `json:"tax_on_capital_gain"`

	// RecaptureTax is the depreciation recapture tax at sale.
	RecaptureTax float64 `json:"recapture_tax"`

	// Equity is property value less mortgage balance.
	Equity float64 `json:"equity"`

	// SaleProceeds is equity less selling cost.
	SaleProceeds float64 `json:"sale_proceeds"`

	// CumCashFlow is cash flow accumulated through this year.
	CumCashFlow float64 `json:"cum_cash_flow"`

	// CumIncomeTax is income tax accumulated through this year.
	CumIncomeTax float64 `json:"cum_income_tax"`

	// TotalProfitPreTax is sale proceeds plus cumulative cash flow less
	// cash invested, before taxes.
	TotalProfitPreTax float64 `json:"total_profit_pre_tax"`

	// TotalProfitPostTax is the pre-tax profit less all taxes.
	TotalProfitPostTax float64 `json:"total_profit_post_tax"`
}

// Report is the read-only aggregate consumed by every renderer.
// It is assembled once per export invocation and never mutated afterward;
// renderers treat it strictly as a data source.
type Report struct {
	// Property is the physical property snapshot.
	Property *PropertyInfo `json:"property_info,omitempty"`

	// Purchase holds the acquisition terms.
	Purchase *PurchaseInfo `json:"purchase_info,omitempty"`

	// Loan holds the financing terms.
	Loan *LoanInfo `json:"loan_info,omitempty"`

	// Results is the computed metric set. Exports require it; an export
	// attempted without results fails before any rendering happens.
	Results *AnalysisResults `json:"results,omitempty"`

	// YearlyData maps year number to its detailed record. Sparse.
	YearlyData map[int]*YearDetail `json:"yearly_data,omitempty"`

	// GeneratedAt is the timestamp stamped into every artifact header.
	GeneratedAt time.Time `json:"generated_at"`
}

// Year1 returns the detailed record for year one, or nil when the analysis
// service did not provide one. The four year-one tax and sale sections of
// the report exist only when this is non-nil.
func (r *Report) Year1() *YearDetail {
	if r.YearlyData == nil {
		return nil
	}
	return r.YearlyData[1]
}

// HasProjections reports whether the long-term projection section can be
// rendered. Both the projection series and the yearly data map must be
// present because each table row is keyed by a year with a detail record.
func (r *Report) HasProjections() bool {
	return r.Results != nil && r.Results.Projections != nil && r.YearlyData != nil
}
