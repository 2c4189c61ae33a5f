package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/brushworks/paintquote/internal/model"
)

// ExportXLSX writes the estimation result to an Excel workbook with separate
// Summary, Materials and Labour sheets.
func ExportXLSX(path string, p model.Project, result model.EstimationResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, p, result); err != nil {
		return err
	}
	if err := writeMaterialsSheet(f, result.Materials); err != nil {
		return err
	}
	if err := writeLabourSheet(f, result.Labour); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeSummarySheet(f *excelize.File, p model.Project, result model.EstimationResult) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Project", p.Name},
		{"Reference", p.ID},
		{},
		{"Material Cost", result.MaterialCost},
		{"Labour Cost", result.LabourCost},
		{"Quoted Project Cost", result.QuotedProjectCost},
		{"Margin", result.MarginCost},
		{"Dealer Margin", result.DealerMarginCost},
		{"Total Cost", result.TotalCost},
		{},
		{"Total Days", result.TotalDays},
		{"Laborers", result.Laborers},
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeMaterialsSheet(f *excelize.File, materials []model.MaterialRequirement) error {
	const sheet = "Materials"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"Product", "Category", "Area (sqft)", "Coats", "Coverage", "Raw Qty", "Required Qty", "Unit", "Packs", "Cost", "Warning"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, m := range materials {
		row := []interface{}{
			m.Product,
			m.Category.String(),
			m.Area,
			m.Coats,
			m.CoverageRate,
			m.RawQuantity,
			m.RequiredQuantity,
			m.Unit,
			packSummary(m.Packs),
			m.TotalCost,
			string(m.Warning),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeLabourSheet(f *excelize.File, tasks []model.LabourTask) error {
	const sheet = "Labour"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	header := []interface{}{"Work", "Category", "Area (sqft)", "Coats", "Total Work", "Output/day", "Days"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, t := range tasks {
		row := []interface{}{
			t.Product,
			t.Category.String(),
			t.Area,
			t.Coats,
			t.TotalWork,
			t.AdjustedRate,
			t.Days,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
