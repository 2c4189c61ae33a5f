// Package importer provides CSV and Excel import functionality for catalog
// data (coverage rates and pack prices). It supports automatic delimiter
// detection, flexible column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/brushworks/paintquote/internal/catalog"
	"github.com/brushworks/paintquote/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Coverage []model.CoverageEntry
	Pricing  []model.PricingEntry
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// An index of -1 means the column is absent.
type ColumnMapping struct {
	Product  int
	Coats    int
	Coverage int
	Pack     int
	Price    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"product":  {"product", "product name", "name", "material", "item", "paint", "description", "desc"},
	"coats":    {"coats", "coat", "coat count", "no of coats", "coats applied"},
	"coverage": {"coverage", "min coverage", "coverage rate", "sqft per unit", "sqft/unit", "spread", "spreading rate"},
	"pack":     {"pack", "pack size", "size", "packing", "volume", "quantity"},
	"price":    {"price", "rate", "cost", "mrp", "unit price", "amount"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column
// role. Returns the mapping and true if a header was detected.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Product:  -1,
		Coats:    -1,
		Coverage: -1,
		Pack:     -1,
		Price:    -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "product":
						if mapping.Product == -1 {
							mapping.Product = i
						}
					case "coats":
						if mapping.Coats == -1 {
							mapping.Coats = i
						}
					case "coverage":
						if mapping.Coverage == -1 {
							mapping.Coverage = i
						}
					case "pack":
						if mapping.Pack == -1 {
							mapping.Pack = i
						}
					case "price":
						if mapping.Price == -1 {
							mapping.Price = i
						}
					}
				}
			}
		}
	}

	return mapping, isHeader
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseCoats accepts "2", "2 coats" or "1 coat" and returns the coat count.
func parseCoats(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "coats")
	s = strings.TrimSuffix(s, "coat")
	s = strings.TrimSpace(s)
	return strconv.Atoi(s)
}

// parseCoverageRow extracts a CoverageEntry from a row.
func parseCoverageRow(row []string, mapping ColumnMapping, rowLabel string) (model.CoverageEntry, string) {
	product := getCell(row, mapping.Product)
	if product == "" {
		return model.CoverageEntry{}, fmt.Sprintf("%s: Missing product name", rowLabel)
	}

	coatsStr := getCell(row, mapping.Coats)
	if coatsStr == "" {
		return model.CoverageEntry{}, fmt.Sprintf("%s: Missing coats value", rowLabel)
	}
	coats, err := parseCoats(coatsStr)
	if err != nil {
		return model.CoverageEntry{}, fmt.Sprintf("%s: Invalid coats '%s'", rowLabel, coatsStr)
	}

	coverageStr := getCell(row, mapping.Coverage)
	if coverageStr == "" {
		return model.CoverageEntry{}, fmt.Sprintf("%s: Missing coverage value", rowLabel)
	}
	coverage := catalog.ParseCoverageRange(coverageStr)
	if coverage <= 0 {
		return model.CoverageEntry{}, fmt.Sprintf("%s: Invalid coverage '%s'", rowLabel, coverageStr)
	}

	if coats <= 0 {
		return model.CoverageEntry{}, fmt.Sprintf("%s: Coats must be positive", rowLabel)
	}

	return model.CoverageEntry{
		Product:     product,
		Coats:       coats,
		MinCoverage: coverage,
		Unit:        catalog.UnitForProduct(product),
	}, ""
}

// parsePriceRow extracts a product, pack label and price from a row.
func parsePriceRow(row []string, mapping ColumnMapping, rowLabel string) (string, string, float64, string) {
	product := getCell(row, mapping.Product)
	if product == "" {
		return "", "", 0, fmt.Sprintf("%s: Missing product name", rowLabel)
	}

	pack := getCell(row, mapping.Pack)
	if pack == "" {
		return "", "", 0, fmt.Sprintf("%s: Missing pack size", rowLabel)
	}

	priceStr := getCell(row, mapping.Price)
	if priceStr == "" {
		return "", "", 0, fmt.Sprintf("%s: Missing price value", rowLabel)
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(priceStr, ",", ""), 64)
	if err != nil {
		return "", "", 0, fmt.Sprintf("%s: Invalid price '%s'", rowLabel, priceStr)
	}
	if price < 0 {
		return "", "", 0, fmt.Sprintf("%s: Price must not be negative", rowLabel)
	}

	return product, pack, price, ""
}

// ImportCoverageCSV imports coverage rates from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportCoverageCSV(path string) ImportResult {
	records, result := readCSV(path)
	if len(result.Errors) > 0 {
		return result
	}
	return coverageFromRows(records, "Line", result.Warnings)
}

// ImportCoverageCSVFromReader imports coverage rates from a CSV reader with a
// known delimiter. Useful for testing.
func ImportCoverageCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	records, result := readCSVReader(reader, delimiter)
	if len(result.Errors) > 0 {
		return result
	}
	return coverageFromRows(records, "Line", nil)
}

// ImportPricingCSV imports pack prices from a CSV file.
func ImportPricingCSV(path string) ImportResult {
	records, result := readCSV(path)
	if len(result.Errors) > 0 {
		return result
	}
	return pricingFromRows(records, "Line", result.Warnings)
}

// ImportPricingCSVFromReader imports pack prices from a CSV reader with a
// known delimiter.
func ImportPricingCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	records, result := readCSVReader(reader, delimiter)
	if len(result.Errors) > 0 {
		return result
	}
	return pricingFromRows(records, "Line", nil)
}

// ImportExcel imports catalog data from an Excel (.xlsx) workbook. Each sheet
// is classified by its header row: sheets with a coverage column are treated
// as coverage data, sheets with pack and price columns as pricing data.
// Unrecognized sheets are skipped with a warning.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Cannot read sheet '%s': %v", sheet, err))
			continue
		}
		if len(rows) == 0 {
			continue
		}

		mapping, hasHeader := DetectColumns(rows[0])
		if !hasHeader {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Sheet '%s': no recognizable header, skipping", sheet))
			continue
		}

		switch {
		case mapping.Coverage != -1:
			sub := coverageFromRows(rows, fmt.Sprintf("Sheet '%s' row", sheet), nil)
			result.Coverage = append(result.Coverage, sub.Coverage...)
			result.Errors = append(result.Errors, sub.Errors...)
			result.Warnings = append(result.Warnings, sub.Warnings...)
		case mapping.Pack != -1 && mapping.Price != -1:
			sub := pricingFromRows(rows, fmt.Sprintf("Sheet '%s' row", sheet), nil)
			result.Pricing = append(result.Pricing, sub.Pricing...)
			result.Errors = append(result.Errors, sub.Errors...)
			result.Warnings = append(result.Warnings, sub.Warnings...)
		default:
			result.Warnings = append(result.Warnings, fmt.Sprintf("Sheet '%s': neither coverage nor pricing columns found, skipping", sheet))
		}
	}

	return result
}

// readCSV opens a CSV file, detects the delimiter and reads all records.
func readCSV(path string) ([][]string, ImportResult) {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return nil, result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return nil, result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, subResult := readCSVReader(bytes.NewReader(data), delimiter)
	result.Errors = append(result.Errors, subResult.Errors...)
	return records, result
}

func readCSVReader(reader io.Reader, delimiter rune) ([][]string, ImportResult) {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return nil, result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return nil, result
	}

	return records, result
}

// coverageFromRows parses coverage entries from tabular data.
func coverageFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1

		missing := []string{}
		if mapping.Product == -1 {
			missing = append(missing, "Product")
		}
		if mapping.Coats == -1 {
			missing = append(missing, "Coats")
		}
		if mapping.Coverage == -1 {
			missing = append(missing, "Coverage")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// Positional fallback: Product, Coats, Coverage
		mapping = ColumnMapping{Product: 0, Coats: 1, Coverage: 2, Pack: -1, Price: -1}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		entry, errMsg := parseCoverageRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Coverage = append(result.Coverage, entry)
	}

	return result
}

// pricingFromRows parses pack prices from tabular data, grouping rows for the
// same product into a single PricingEntry.
func pricingFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1

		missing := []string{}
		if mapping.Product == -1 {
			missing = append(missing, "Product")
		}
		if mapping.Pack == -1 {
			missing = append(missing, "Pack")
		}
		if mapping.Price == -1 {
			missing = append(missing, "Price")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// Positional fallback: Product, Pack, Price
		mapping = ColumnMapping{Product: 0, Coats: -1, Coverage: -1, Pack: 1, Price: 2}
	}

	byProduct := map[string]int{}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		product, pack, price, errMsg := parsePriceRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}

		idx, ok := byProduct[product]
		if !ok {
			result.Pricing = append(result.Pricing, model.PricingEntry{
				Product: product,
				Sizes:   map[string]float64{},
				Unit:    catalog.UnitForProduct(product),
			})
			idx = len(result.Pricing) - 1
			byProduct[product] = idx
		}

		if _, dup := result.Pricing[idx].Sizes[pack]; dup {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Duplicate pack '%s' for %s, overwriting", rowLabel, pack, product))
		}
		result.Pricing[idx].Sizes[pack] = price
	}

	return result
}
