package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// analysisDocument is a small but complete analysis service payload.
const analysisDocument = `{
	"property_info": {
		"street": "123 Main St",
		"city": "Austin",
		"state": "TX",
		"zip_code": "78701",
		"property_type": "House",
		"year_built": 1998,
		"sqft": 1500,
		"lot_size": 0.25,
		"parking": "Garage",
		"total_beds": 3,
		"total_baths": 2.5
	},
	"loan_info": {
		"percent_down": 20,
		"interest_rate": 6.5,
		"loan_term_years": 30
	},
	"results": {
		"cashFlow": 200,
		"roi": 0.081,
		"capRate": 0.037,
		"monthlyRent": 1500,
		"monthlyExpenses": 500,
		"netIncome": 1000,
		"mortgageMonthly": 800,
		"purchasePrice": 300000,
		"downPayment": 60000,
		"loanAmount": 240000,
		"totalCashInvested": 74000
	},
	"yearly_data": {
		"1": {"equity": 60000, "property_value": 300000}
	}
}`

// writeAnalysisFile drops the fixture document into a temp dir.
func writeAnalysisFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "analysis.json")
	if err := os.WriteFile(path, []byte(analysisDocument), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExportCmdAllFormats(t *testing.T) {
	t.Parallel()

	input := writeAnalysisFile(t)
	outDir := t.TempDir()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"export", "--format", "all", "--output-dir", outDir, input})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	for _, name := range []string{
		"EquityEngine_Property_Analysis_Report.pdf",
		"EquityEngine_Property_Analysis_Report.xlsx",
		"EquityEngine_Property_Analysis_Report.md",
	} {
		info, err := os.Stat(filepath.Join(outDir, name))
		if err != nil {
			t.Errorf("artifact %s not written: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("artifact %s is empty", name)
		}
	}

	if !strings.Contains(out.String(), "Exported 3 artifact(s)") {
		t.Errorf("summary line missing from output: %q", out.String())
	}
}

func TestExportCmdDefaultFormatIsPDF(t *testing.T) {
	t.Parallel()

	input := writeAnalysisFile(t)
	outDir := t.TempDir()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"export", "--output-dir", outDir, input})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d artifacts, want 1", len(entries))
	}
	if got := entries[0].Name(); !strings.HasSuffix(got, ".pdf") {
		t.Errorf("default artifact = %q, want a PDF", got)
	}
}

func TestExportCmdRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	input := writeAnalysisFile(t)

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"export", "--format", "docx", "--output-dir", t.TempDir(), input})

	if err := cmd.Execute(); err == nil {
		t.Error("want error for unknown format, got nil")
	}
}

func TestExportCmdMissingInput(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{
		"export", "--output-dir", t.TempDir(),
		filepath.Join(t.TempDir(), "missing.json"),
	})

	if err := cmd.Execute(); err == nil {
		t.Error("want error for missing analysis file, got nil")
	}
}

func TestExportCmdExplicitConfigFileMissing(t *testing.T) {
	t.Parallel()

	input := writeAnalysisFile(t)

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{
		"export", "-c", filepath.Join(t.TempDir(), "nope.yaml"),
		"--output-dir", t.TempDir(), input,
	})

	if err := cmd.Execute(); err == nil {
		t.Error("want error for missing config file, got nil")
	}
}

func TestInspectCmd(t *testing.T) {
	t.Parallel()

	input := writeAnalysisFile(t)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"inspect", input})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "PROPERTY INFORMATION") {
		t.Error("section banner missing from inspect output")
	}
	if !strings.Contains(text, "123 Main St") {
		t.Error("address missing from inspect output")
	}
}
