package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/brushworks/paintquote/internal/model"
)

func sampleResult() (model.Project, model.EstimationResult) {
	p := model.NewProject()
	p.Name = "Sharma Residence"

	result := model.EstimationResult{
		Ordered: []model.AreaConfiguration{
			{ID: "walls", AreaType: model.AreaWall, Label: "Hall Walls", Area: 550, PerSqFtRate: 18},
			{ID: "doors", AreaType: model.AreaEnamel, Label: "Doors", SectionName: "Ground Floor", Area: 100, PerSqFtRate: 25},
		},
		Materials: []model.MaterialRequirement{
			{
				ConfigID: "walls", Product: "Tractor Emulsion", Category: model.MaterialEmulsion,
				Area: 550, Coats: 2, CoverageRate: 55, RawQuantity: 10, RequiredQuantity: 10, Unit: "ltr",
				Packs: model.PackCombination{
					Lines:     []model.PackLine{{PackLabel: "10L", PackSize: 10, Count: 1, UnitPrice: 2500}},
					TotalCost: 2500,
				},
				TotalCost: 2500,
			},
			{
				ConfigID: "doors", Product: "Synthetic Enamel", Category: model.MaterialEnamelTopcoat,
				Area: 100, Coats: 2, RequiredQuantity: 2, Unit: "ltr",
				Warning: model.WarnPriceUnavailable,
			},
		},
		Labour: []model.LabourTask{
			{ConfigID: "walls", Product: "Tractor Emulsion", Category: model.MaterialEmulsion, Area: 550, Coats: 2, TotalWork: 1100, AdjustedRate: 612.5, Days: 2},
		},
		PerConfigDays:     map[string]int{"walls": 2},
		TotalDays:         2,
		Laborers:          1,
		MaterialCost:      2500,
		LabourCost:        2200,
		QuotedProjectCost: 12400,
		MarginCost:        1240,
		DealerMarginCost:  200,
		TotalCost:         5940,
	}
	p.Result = &result
	return p, result
}

func TestExportQuotePDF(t *testing.T) {
	p, result := sampleResult()
	path := filepath.Join(t.TempDir(), "quote.pdf")

	if err := ExportQuotePDF(path, p, result, "INR"); err != nil {
		t.Fatalf("export: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty PDF")
	}
}

func TestExportQuotePDFNoConfigurations(t *testing.T) {
	p := model.NewProject()
	err := ExportQuotePDF(filepath.Join(t.TempDir(), "quote.pdf"), p, model.EstimationResult{}, "INR")
	if err == nil {
		t.Error("expected an error when there is nothing to export")
	}
}

func TestExportXLSX(t *testing.T) {
	p, result := sampleResult()
	path := filepath.Join(t.TempDir(), "quote.xlsx")

	if err := ExportXLSX(path, p, result); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Summary": false, "Materials": false, "Labour": false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing sheet %q in %v", name, sheets)
		}
	}

	rows, err := f.GetRows("Materials")
	if err != nil {
		t.Fatalf("read materials: %v", err)
	}
	if len(rows) != 3 { // header + 2 material lines
		t.Errorf("expected 3 rows, got %d", len(rows))
	}

	cell, err := f.GetCellValue("Materials", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if cell != "Tractor Emulsion" {
		t.Errorf("unexpected first material: %q", cell)
	}
}

func TestPackSummary(t *testing.T) {
	pc := model.PackCombination{Lines: []model.PackLine{
		{PackLabel: "20L", Count: 2},
		{PackLabel: "4L", Count: 1},
	}}
	if got := packSummary(pc); got != "2x20L + 1x4L" {
		t.Errorf("got %q", got)
	}
	if got := packSummary(model.PackCombination{}); got != "-" {
		t.Errorf("empty combination should render dash, got %q", got)
	}
}
