// Package export provides functionality for exporting estimation results
// to various file formats.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/brushworks/paintquote/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
	qrSize       = 24.0
)

// quoteRef holds the data encoded into the quotation's QR code so a printed
// quote can be traced back to the project it was generated from.
type quoteRef struct {
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	TotalCost   float64 `json:"total_cost"`
	GeneratedAt string  `json:"generated_at"`
}

// ExportQuotePDF generates a quotation PDF for a project and its estimation
// result. The document contains the cost summary, a materials table, a labour
// table, any pricing warnings, and a QR code referencing the project.
func ExportQuotePDF(path string, p model.Project, result model.EstimationResult, currency string) error {
	if len(result.Ordered) == 0 {
		return fmt.Errorf("no configurations to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	renderQuoteHeader(pdf, p)
	y := renderCostSummary(pdf, result, currency, marginTop+28)
	y = renderAreasTable(pdf, result.Ordered, currency, y+8)
	y = renderMaterialsTable(pdf, result.Materials, currency, y+8)
	y = renderLabourTable(pdf, result, y+8)
	renderWarnings(pdf, result, y+8)

	renderFooter(pdf)

	return pdf.OutputFileAndClose(path)
}

// renderQuoteHeader draws the title block and the QR reference code.
func renderQuoteHeader(pdf *fpdf.Fpdf, p model.Project) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth-qrSize-4, 10, "Painting Work Quotation", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+10)
	pdf.CellFormat(contentWidth-qrSize-4, 5, fmt.Sprintf("Project: %s", p.Name), "", 0, "L", false, 0, "")
	pdf.SetXY(marginLeft, marginTop+15)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(contentWidth-qrSize-4, 5, fmt.Sprintf("Reference: %s    Date: %s", p.ID, time.Now().Format("02 Jan 2006")), "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// QR code top-right; encoding errors are non-fatal for the quotation
	ref := quoteRef{
		ProjectID:   p.ID,
		ProjectName: p.Name,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if p.Result != nil {
		ref.TotalCost = p.Result.TotalCost
	}
	if data, err := json.Marshal(ref); err == nil {
		if png, err := qrcode.Encode(string(data), qrcode.Medium, 256); err == nil {
			imgName := fmt.Sprintf("qr_%s", p.ID)
			pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
			pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+24, pageWidth-marginRight, marginTop+24)
}

// renderCostSummary draws the four cost figures plus days and crew size.
func renderCostSummary(pdf *fpdf.Fpdf, result model.EstimationResult, currency string, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Cost Summary", "", 0, "L", false, 0, "")
	y += 9

	items := []struct {
		label string
		value string
	}{
		{"Material Cost", money(result.MaterialCost, currency)},
		{"Labour Cost", money(result.LabourCost, currency)},
		{"Quoted Project Cost", money(result.QuotedProjectCost, currency)},
		{"Margin", money(result.MarginCost, currency)},
		{"Dealer Margin", money(result.DealerMarginCost, currency)},
		{"Total", money(result.TotalCost, currency)},
		{"Duration", fmt.Sprintf("%d days, %d laborers", result.TotalDays, result.Laborers)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(55, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 6
	}

	return y
}

// renderAreasTable lists the configurations in their display order.
func renderAreasTable(pdf *fpdf.Fpdf, configs []model.AreaConfiguration, currency string, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Work Areas", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{56, 28, 26, 24, 28}
	headers := []string{"Area", "Type", "Sq.Ft", "Rate", "Amount"}
	y = renderTableHeader(pdf, headers, colWidths, y)

	pdf.SetFont("Helvetica", "", 9)
	for i, c := range configs {
		label := c.Label
		if c.SectionName != "" {
			label = fmt.Sprintf("%s / %s", c.SectionName, c.Label)
		}
		row := []string{
			label,
			c.AreaType.String(),
			fmt.Sprintf("%.1f", c.Area),
			fmt.Sprintf("%.2f", c.PerSqFtRate),
			money(c.QuotedCost(), currency),
		}
		y = renderTableRow(pdf, row, colWidths, y, i)
	}

	return y
}

// renderMaterialsTable draws the material lines with pack breakdowns.
func renderMaterialsTable(pdf *fpdf.Fpdf, materials []model.MaterialRequirement, currency string, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Materials", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{58, 18, 22, 54, 28}
	headers := []string{"Product", "Qty", "Unit", "Packs", "Cost"}
	y = renderTableHeader(pdf, headers, colWidths, y)

	pdf.SetFont("Helvetica", "", 9)
	for i, m := range materials {
		row := []string{
			m.Product,
			fmt.Sprintf("%d", m.RequiredQuantity),
			m.Unit,
			packSummary(m.Packs),
			money(m.TotalCost, currency),
		}
		y = renderTableRow(pdf, row, colWidths, y, i)
	}

	return y
}

// renderLabourTable draws the per-layer labour breakdown.
func renderLabourTable(pdf *fpdf.Fpdf, result model.EstimationResult, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Labour", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{62, 24, 20, 36, 38}
	headers := []string{"Work", "Sq.Ft", "Coats", "Output/day", "Days"}
	y = renderTableHeader(pdf, headers, colWidths, y)

	pdf.SetFont("Helvetica", "", 9)
	for i, t := range result.Labour {
		row := []string{
			t.Product,
			fmt.Sprintf("%.1f", t.Area),
			fmt.Sprintf("%d", t.Coats),
			fmt.Sprintf("%.1f sqft", t.AdjustedRate),
			fmt.Sprintf("%d", t.Days),
		}
		y = renderTableRow(pdf, row, colWidths, y, i)
	}

	return y
}

// renderWarnings lists material lines with missing price data, if any.
func renderWarnings(pdf *fpdf.Fpdf, result model.EstimationResult, y float64) {
	warnings := result.Warnings()
	if len(warnings) == 0 {
		return
	}

	y = ensureSpace(pdf, y, float64(len(warnings)+2)*6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(200, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentWidth, 7, "Review Required", "", 0, "L", false, 0, "")
	y += 8

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, m := range warnings {
		pdf.SetXY(marginLeft+5, y)
		text := fmt.Sprintf("- %s: %s", m.Product, m.Warning)
		pdf.CellFormat(contentWidth-5, 5, text, "", 0, "L", false, 0, "")
		y += 5
	}
}

// renderFooter draws the generator line at the page bottom.
func renderFooter(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(contentWidth, 4, "Generated by PaintQuote - Painting Estimation Engine", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderTableHeader draws a bordered header row and returns the next y.
func renderTableHeader(pdf *fpdf.Fpdf, headers []string, colWidths []float64, y float64) float64 {
	y = ensureSpace(pdf, y, 12)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	return y + 6
}

// renderTableRow draws one bordered data row with alternating backgrounds.
func renderTableRow(pdf *fpdf.Fpdf, row []string, colWidths []float64, y float64, rowIdx int) float64 {
	y = ensureSpace(pdf, y, 6)
	if rowIdx%2 == 0 {
		pdf.SetFillColor(245, 245, 245)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	xPos := marginLeft
	for j, cell := range row {
		pdf.SetXY(xPos, y)
		align := "L"
		if j > 0 {
			align = "C"
		}
		pdf.CellFormat(colWidths[j], 6, cell, "1", 0, align, true, 0, "")
		xPos += colWidths[j]
	}
	return y + 6
}

// ensureSpace starts a new page when fewer than needed mm remain.
func ensureSpace(pdf *fpdf.Fpdf, y, needed float64) float64 {
	if y+needed > pageHeight-marginBottom {
		pdf.AddPage()
		return marginTop
	}
	return y
}

// packSummary formats a pack combination as "2x20L + 1x5L".
func packSummary(pc model.PackCombination) string {
	if len(pc.Lines) == 0 {
		return "-"
	}
	out := ""
	for i, l := range pc.Lines {
		if i > 0 {
			out += " + "
		}
		out += fmt.Sprintf("%dx%s", l.Count, l.PackLabel)
	}
	return out
}

// money formats an amount with the configured currency code.
func money(v float64, currency string) string {
	if currency == "" {
		currency = "INR"
	}
	return fmt.Sprintf("%s %.2f", currency, v)
}
