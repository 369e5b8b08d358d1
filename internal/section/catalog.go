package section

import (
	"strconv"

	"github.com/avancod/equityengine/internal/format"
	"github.com/avancod/equityengine/internal/model"
)

// always is the inclusion predicate for unconditional sections.
func always(*model.Report) bool { return true }

// hasYear1 gates the four year-one tax and sale sections.
func hasYear1(r *model.Report) bool { return r.Year1() != nil }

// Catalog returns the canonical ordered section list. Both renderers walk
// this list in order; changing the order here changes every artifact.
func Catalog() []Section {
	return []Section{
		{
			Title:   "Property Information",
			Accent:  AccentBlue,
			Include: always,
			Build:   buildProperty,
		},
		{
			Title:   "Executive Summary (Year 1)",
			Accent:  AccentViolet,
			Include: always,
			Build:   buildExecutiveSummary,
		},
		{
			Title:   "Monthly Financial Breakdown",
			Accent:  AccentEmerald,
			Include: always,
			Build:   buildMonthlyBreakdown,
		},
		{
			Title:   "Purchase & Financing",
			Accent:  AccentAmber,
			Include: always,
			Build:   buildPurchaseFinancing,
		},
		{
			Title:   "Annual Financial Summary (Year 1)",
			Accent:  AccentRed,
			Include: always,
			Build:   buildAnnualSummary,
		},
		{
			Title:   "Key Financial Ratios",
			Accent:  AccentSlate,
			Include: always,
			Build:   buildRatios,
		},
		{
			Title:   "Operating Expenses Breakdown",
			Accent:  AccentBlue,
			Include: always,
			Build:   buildExpenses,
		},
		{
			Title:   "Tax Benefits & Deductions (Year 1)",
			Accent:  AccentViolet,
			Include: hasYear1,
			Build:   buildTaxBenefits,
		},
		{
			Title:   "Capital Gain Tax Analysis (Year 1)",
			Accent:  AccentAmber,
			Include: hasYear1,
			Build:   buildCapitalGain,
		},
		{
			Title:   "Sale Analysis - Pre-Tax (Year 1)",
			Accent:  AccentEmerald,
			Include: hasYear1,
			Build:   buildSalePreTax,
		},
		{
			Title:   "Sale Analysis - Post-Tax (Year 1)",
			Accent:  AccentRed,
			Include: hasYear1,
			Build:   buildSalePostTax,
		},
		{
			Title:   "Long-Term Projections",
			Accent:  AccentViolet,
			Include: func(r *model.Report) bool { return r.HasProjections() },
			Build:   buildProjections,
		},
	}
}

// buildProperty renders the physical property snapshot. A missing property
// record degrades every row to the placeholder rather than failing: the
// property block is descriptive, not load-bearing.
func buildProperty(r *model.Report) (RowSet, error) {
	p := r.Property
	if p == nil {
		return RowSet{Rows: []Row{
			{Label: "Address", Value: format.Placeholder},
			{Label: "Property Type", Value: format.Placeholder},
			{Label: "Year Built", Value: format.Placeholder},
			{Label: "Square Feet", Value: format.Placeholder},
			{Label: "Lot Size", Value: format.Placeholder},
			{Label: "Beds/Baths", Value: format.Placeholder},
			{Label: "Parking", Value: format.Placeholder},
		}}, nil
	}

	return RowSet{Rows: []Row{
		{Label: "Address", Value: p.Address()},
		{Label: "Property Type", Value: p.PropertyType.String()},
		{Label: "Year Built", Value: strconv.Itoa(p.YearBuilt)},
		{Label: "Square Feet", Value: format.Int(p.Sqft) + " sqft"},
		{Label: "Lot Size", Value: format.Number(p.LotSize, 2) + " acres"},
		{Label: "Beds/Baths", Value: format.Compact(p.TotalBeds) + "/" + format.Compact(p.TotalBaths)},
		{Label: "Parking", Value: p.Parking.String()},
	}}, nil
}

func buildExecutiveSummary(r *model.Report) (RowSet, error) {
	res := r.Results
	return RowSet{Rows: []Row{
		{Label: "Monthly Cash Flow", Value: format.Currency(res.CashFlow)},
		{Label: "Return on Investment (ROI)", Value: format.Percentage(res.ROI)},
		{Label: "Capitalization Rate", Value: format.Percentage(res.CapRate)},
		{Label: "Year 1 Equity Growth", Value: format.Currency(res.EquityGrowth)},
		{Label: "Cash on Cash Return", Value: format.Percentage(res.CashOnCashReturn)},
		{Label: "Return on Equity", Value: format.Percentage(res.ReturnOnEquity)},
	}}, nil
}

func buildMonthlyBreakdown(r *model.Report) (RowSet, error) {
	res := r.Results
	return RowSet{Rows: []Row{
		{Label: "Gross Monthly Rent", Value: format.Currency(res.MonthlyRent)},
		{Label: "Monthly Operating Expenses", Value: format.Currency(res.MonthlyExpenses)},
		{Label: "Net Monthly Income", Value: format.Currency(res.NetIncome)},
		{Label: "Monthly Mortgage Payment", Value: format.Currency(res.MortgageMonthly)},
	}}, nil
}

// buildPurchaseFinancing renders the acquisition block. Loan and purchase
// terms are optional; rows that depend on them degrade to the placeholder.
//
// Loan rates arrive in the 0-100 range (form convention), unlike the
// decimal fractions in AnalysisResults, hence RawPercentage here.
func buildPurchaseFinancing(r *model.Report) (RowSet, error) {
	res := r.Results

	rows := []Row{
		{Label: "Purchase Price", Value: format.Currency(res.PurchasePrice)},
		{Label: "Down Payment", Value: format.Currency(res.DownPayment)},
		{Label: "Loan Amount", Value: format.Currency(res.LoanAmount)},
		{Label: "Total Cash Invested", Value: format.Currency(res.TotalCashInvested)},
	}

	if l := r.Loan; l != nil {
		rows = append(rows,
			Row{Label: "Interest Rate", Value: format.RawPercentage(l.InterestRate)},
			Row{Label: "Percent Down", Value: format.RawPercentage(l.PercentDown)},
			Row{Label: "Loan Term", Value: strconv.Itoa(l.LoanTermYears) + " years"},
		)
	} else {
		rows = append(rows,
			Row{Label: "Interest Rate", Value: format.Placeholder},
			Row{Label: "Percent Down", Value: format.Placeholder},
			Row{Label: "Loan Term", Value: format.Placeholder},
		)
	}

	if p := r.Purchase; p != nil {
		rows = append(rows,
			Row{Label: "Closing Cost", Value: format.Currency(p.ClosingCost)},
			Row{Label: "Initial Improvements", Value: format.Currency(p.InitialImprovements)},
			Row{Label: "Purchase Date", Value: p.PurchaseDate.String()},
		)
	}

	return RowSet{Rows: rows}, nil
}

func buildAnnualSummary(r *model.Report) (RowSet, error) {
	res := r.Results
	return RowSet{Rows: []Row{
		{Label: "Gross Annual Rent", Value: format.Currency(res.GrossRentAnnual)},
		{Label: "Vacancy Loss", Value: format.Currency(res.VacancyLossAnnual)},
		{Label: "Operating Income", Value: format.Currency(res.OperatingIncomeAnnual)},
		{Label: "Operating Expenses", Value: format.Currency(res.OperatingExpensesAnnual)},
		{Label: "Net Operating Income (NOI)", Value: format.Currency(res.NOIAnnual)},
		{Label: "Annual Cash Flow", Value: format.Currency(res.CashFlowAnnual)},
	}}, nil
}

func buildRatios(r *model.Report) (RowSet, error) {
	res := r.Results
	return RowSet{Rows: []Row{
		{Label: "Gross Rent Multiplier", Value: format.Number(res.GrossRentMultiplier, 2)},
		{Label: "Break Even Ratio", Value: format.Percentage(res.BreakEvenRatio)},
		{Label: "Debt Coverage Ratio", Value: format.Number(res.DebtCoverageRatio, 2)},
		{Label: "Debt Yield", Value: format.Percentage(res.DebtYield)},
		{Label: "Equity Multiple", Value: format.Number(res.EquityMultiple, 2)},
		{Label: "Internal Rate of Return (IRR)", Value: format.Percentage(res.IRR)},
	}}, nil
}

func buildExpenses(r *model.Report) (RowSet, error) {
	res := r.Results
	return RowSet{Rows: []Row{
		{Label: "Property Tax (Monthly)", Value: format.Currency(res.PropertyTaxMonthly)},
		{Label: "Insurance (Monthly)", Value: format.Currency(res.InsuranceMonthly)},
		{Label: "Property Management (Monthly)", Value: format.Currency(res.PropertyManagementMonthly)},
		{Label: "Maintenance (Monthly)", Value: format.Currency(res.MaintenanceMonthly)},
		{Label: "Owner Paid Utilities (Monthly)", Value: format.Currency(res.OwnerPaidUtilitiesMonthly)},
	}}, nil
}

// Deduction rows are signed the way an accountant reads them: income
// positive, deductions and taxes negative.
func buildTaxBenefits(r *model.Report) (RowSet, error) {
	y := r.Year1()
	deductions := y.TotalOperatingExpenses + y.InterestPaid + y.Depreciation

	return RowSet{Rows: []Row{
		{Label: "Operating Income (Tax)", Value: format.Currency(y.EffectiveGrossIncome)},
		{Label: "Operating Expenses (Tax)", Value: format.Currency(-y.TotalOperatingExpenses)},
		{Label: "Loan Interest", Value: format.Currency(-y.InterestPaid)},
		{Label: "Depreciation", Value: format.Currency(-y.Depreciation)},
		{Label: "Total Deductions", Value: format.Currency(-deductions)},
		{Label: "Taxable Income", Value: format.Currency(y.TaxableIncome)},
		{Label: "Income Tax Due", Value: format.Currency(-y.IncomeTaxDue)},
	}}, nil
}

func buildCapitalGain(r *model.Report) (RowSet, error) {
	y := r.Year1()

	improvements := 0.0
	if r.Purchase != nil {
		improvements = r.Purchase.InitialImprovements
	}

	return RowSet{Rows: []Row{
		{Label: "Original Cost Basis", Value: format.Currency(y.OriginalCostBasis)},
		{Label: "Capital Improvements", Value: format.Currency(improvements)},
		{Label: "Cumulative Depreciation", Value: format.Currency(-y.CumDepreciation)},
		{Label: "Selling Cost (Tax)", Value: format.Currency(y.SellingCost)},
		{Label: "Adjusted Cost Basis", Value: format.Currency(-y.AdjustedCostBasis)},
		{Label: "Sale Price", Value: format.Currency(y.PropertyValue)},
		{Label: "Capital Gain", Value: format.Currency(y.CapitalGain)},
		{Label: "Tax on Capital Gain", Value: format.Currency(-y.TaxOnCapitalGain)},
		{Label: "Recapture Tax", Value: format.Currency(-y.RecaptureTax)},
	}}, nil
}

func buildSalePreTax(r *model.Report) (RowSet, error) {
	y := r.Year1()
	return RowSet{Rows: []Row{
		{Label: "Equity", Value: format.Currency(y.Equity)},
		{Label: "Selling Cost", Value: format.Currency(-y.SellingCost)},
		{Label: "Sale Proceeds", Value: format.Currency(y.SaleProceeds)},
		{Label: "Cumulative Cash Flow", Value: format.Currency(y.CumCashFlow)},
		{Label: "Total Cash Invested", Value: format.Currency(-r.Results.TotalCashInvested)},
		{Label: "Total Profit (Pre-Tax)", Value: format.Currency(y.TotalProfitPreTax)},
	}}, nil
}

func buildSalePostTax(r *model.Report) (RowSet, error) {
	y := r.Year1()
	return RowSet{Rows: []Row{
		{Label: "Total Profit (Pre-Tax)", Value: format.Currency(y.TotalProfitPreTax)},
		{Label: "Cumulative Income Tax Paid", Value: format.Currency(-y.CumIncomeTax)},
		{Label: "Capital Gain Tax Due", Value: format.Currency(-y.TaxOnCapitalGain)},
		{Label: "Recapture Tax Due", Value: format.Currency(-y.RecaptureTax)},
		{Label: "Total Profit (Post-Tax)", Value: format.Currency(y.TotalProfitPostTax)},
	}}, nil
}

// projectionHeader names the projection table columns in render order.
var projectionHeader = []string{
	"Year", "Gross Rent", "Op Income", "Op Expenses", "NOI",
	"Cash Flow", "Prop Value", "Equity", "Cap Rate %", "ROI %",
}

// buildProjections renders the long-term table. The parallel series are
// validated first: a length mismatch is a structural fault in the analysis
// payload and must abort the whole export, not truncate silently.
//
// Only years with a yearly detail record produce a row. The CapRate and ROI
// series arrive pre-scaled to 0-100, hence RawPercentage.
func buildProjections(r *model.Report) (RowSet, error) {
	proj := r.Results.Projections
	if err := proj.Validate(); err != nil {
		return RowSet{}, err
	}

	rows := make([][]string, 0, len(proj.Years))
	for i, year := range proj.Years {
		if r.YearlyData[year] == nil {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(year),
			format.Currency(proj.GrossRent[i]),
			format.Currency(proj.OperatingIncome[i]),
			format.Currency(proj.OperatingExpenses[i]),
			format.Currency(proj.NOI[i]),
			format.Currency(proj.CashFlow[i]),
			format.Currency(proj.PropertyValue[i]),
			format.Currency(proj.Equity[i]),
			format.RawPercentage(proj.CapRate[i]),
			format.RawPercentage(proj.ROI[i]),
		})
	}

	return RowSet{Table: &Table{Header: projectionHeader, Rows: rows}}, nil
}
