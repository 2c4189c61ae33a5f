// PaintQuote - Painting Estimation Engine
//
// A command line tool for estimating painting material requirements,
// labour days and quotation costs from a project file and a catalog
// database.
//
// Usage:
//   paintquote estimate -project job.json [-pdf quote.pdf] [-xlsx quote.xlsx]
//   paintquote compare  -project job.json
//   paintquote import   -file catalog.xlsx
//   paintquote catalog
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/brushworks/paintquote/internal/config"
	"github.com/brushworks/paintquote/internal/engine"
	"github.com/brushworks/paintquote/internal/export"
	"github.com/brushworks/paintquote/internal/importer"
	"github.com/brushworks/paintquote/internal/model"
	"github.com/brushworks/paintquote/internal/project"
	"github.com/brushworks/paintquote/internal/store"
	"github.com/brushworks/paintquote/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	switch os.Args[1] {
	case "estimate":
		err = runEstimate(cfg, baseLogger, os.Args[2:])
	case "compare":
		err = runCompare(cfg, baseLogger, os.Args[2:])
	case "import":
		err = runImport(cfg, baseLogger, os.Args[2:])
	case "catalog":
		err = runCatalog(cfg, baseLogger, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: paintquote <estimate|compare|import|catalog> [flags]")
}

// openStore opens the catalog database and applies pending migrations.
func openStore(cfg *config.Config, log *zap.Logger) (*store.CatalogStore, func(), error) {
	db, err := store.Open(cfg.Catalog.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog database: %w", err)
	}
	if err := store.Migrate(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migrate catalog database: %w", err)
	}
	closeFn := func() { _ = db.Close() }
	return store.NewCatalogStore(db, log.Named("store.catalog")), closeFn, nil
}

func runEstimate(cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("estimate", flag.ExitOnError)
	projectPath := fs.String("project", "", "path to project JSON file")
	pdfPath := fs.String("pdf", "", "write quotation PDF to this path")
	xlsxPath := fs.String("xlsx", "", "write breakdown workbook to this path")
	save := fs.Bool("save", false, "write the result back into the project file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *projectPath == "" {
		return fmt.Errorf("-project is required")
	}

	p, err := project.Load(*projectPath)
	if err != nil {
		return err
	}
	if err := engine.ValidateConfigurations(p.Configurations); err != nil {
		return err
	}

	catalogStore, closeFn, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	dealerID := p.DealerID
	if dealerID == "" {
		dealerID = cfg.Catalog.DealerID
	}
	cat, err := catalogStore.LoadCatalog(context.Background(), dealerID)
	if err != nil {
		return err
	}

	est := engine.New(cat, p.Settings, log.Named("engine"))
	result := est.Estimate(p.Configurations)
	p.Result = &result

	printResult(p, result)

	appCfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		appCfg = model.DefaultAppConfig()
	}

	if *pdfPath != "" {
		if err := export.ExportQuotePDF(*pdfPath, p, result, appCfg.Currency); err != nil {
			return fmt.Errorf("export pdf: %w", err)
		}
		fmt.Println("wrote", *pdfPath)
	}
	if *xlsxPath != "" {
		if err := export.ExportXLSX(*xlsxPath, p, result); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		fmt.Println("wrote", *xlsxPath)
	}
	if *save {
		if err := project.Save(*projectPath, p); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
	}

	project.AddRecentProject(&appCfg, *projectPath)
	_ = project.SaveAppConfig(project.DefaultConfigPath(), appCfg)

	return nil
}

func runCompare(cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	projectPath := fs.String("project", "", "path to project JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *projectPath == "" {
		return fmt.Errorf("-project is required")
	}

	p, err := project.Load(*projectPath)
	if err != nil {
		return err
	}
	if err := engine.ValidateConfigurations(p.Configurations); err != nil {
		return err
	}

	catalogStore, closeFn, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	dealerID := p.DealerID
	if dealerID == "" {
		dealerID = cfg.Catalog.DealerID
	}
	cat, err := catalogStore.LoadCatalog(context.Background(), dealerID)
	if err != nil {
		return err
	}

	scenarios := engine.BuildDefaultScenarios(p.Settings)
	results := engine.CompareScenarios(scenarios, cat, p.Configurations)

	fmt.Printf("%-28s %12s %12s %8s\n", "Scenario", "Material", "Total", "Days")
	for _, r := range results {
		fmt.Printf("%-28s %12.2f %12.2f %8d\n", r.Scenario.Name, r.MaterialCost, r.TotalCost, r.TotalDays)
	}
	return nil
}

func runImport(cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	file := fs.String("file", "", "catalog workbook (.xlsx) or CSV file")
	kind := fs.String("kind", "", "for CSV files: coverage or pricing")
	dealerID := fs.String("dealer", "", "dealer the prices belong to (defaults to DEALER_ID)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("-file is required")
	}

	var result importer.ImportResult
	switch {
	case strings.HasSuffix(strings.ToLower(*file), ".xlsx"):
		result = importer.ImportExcel(*file)
	case *kind == "coverage":
		result = importer.ImportCoverageCSV(*file)
	case *kind == "pricing":
		result = importer.ImportPricingCSV(*file)
	default:
		return fmt.Errorf("-kind coverage|pricing is required for CSV files")
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintln(os.Stderr, "error:", e)
	}
	if len(result.Coverage) == 0 && len(result.Pricing) == 0 {
		return fmt.Errorf("nothing imported")
	}

	catalogStore, closeFn, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	dealer := *dealerID
	if dealer == "" {
		dealer = cfg.Catalog.DealerID
	}

	ctx := context.Background()
	for _, entry := range result.Coverage {
		coverage := fmt.Sprintf("%g", entry.MinCoverage)
		if err := catalogStore.UpsertCoverageRate(ctx, entry.Product, entry.Coats, coverage, entry.Unit); err != nil {
			return fmt.Errorf("store coverage for %s: %w", entry.Product, err)
		}
	}
	for _, entry := range result.Pricing {
		for pack, price := range entry.Sizes {
			if err := catalogStore.UpsertPackPrice(ctx, dealer, entry.Product, pack, price); err != nil {
				return fmt.Errorf("store price for %s %s: %w", entry.Product, pack, err)
			}
		}
	}

	fmt.Printf("imported %d coverage rates, %d priced products\n", len(result.Coverage), len(result.Pricing))
	return nil
}

func runCatalog(cfg *config.Config, log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	dealerID := fs.String("dealer", "", "dealer to list prices for (defaults to DEALER_ID)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	catalogStore, closeFn, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeFn()

	dealer := *dealerID
	if dealer == "" {
		dealer = cfg.Catalog.DealerID
	}
	cat, err := catalogStore.LoadCatalog(context.Background(), dealer)
	if err != nil {
		return err
	}

	fmt.Println("Coverage rates:")
	for _, entry := range cat.Coverage {
		fmt.Printf("  %-40s %d coats  %.0f sqft/%s\n", entry.Product, entry.Coats, entry.MinCoverage, entry.Unit)
	}
	fmt.Println("Pack prices:")
	for _, entry := range cat.Pricing {
		fmt.Printf("  %-40s", entry.Product)
		first := true
		for pack, price := range entry.Sizes {
			if !first {
				fmt.Print(",")
			}
			fmt.Printf(" %s=%.2f", pack, price)
			first = false
		}
		fmt.Println()
	}
	return nil
}

func printResult(p model.Project, result model.EstimationResult) {
	fmt.Printf("Project: %s (%s)\n\n", p.Name, p.ID)

	fmt.Println("Areas:")
	for _, c := range result.Ordered {
		fmt.Printf("  %-30s %-10s %8.1f sqft @ %.2f = %10.2f\n",
			c.Label, c.AreaType.String(), c.Area, c.PerSqFtRate, c.QuotedCost())
	}

	fmt.Println("\nMaterials:")
	for _, m := range result.Materials {
		line := fmt.Sprintf("  %-40s %3d %-3s %10.2f", m.Product, m.RequiredQuantity, m.Unit, m.TotalCost)
		if m.Warning != "" {
			line += "  [" + string(m.Warning) + "]"
		}
		fmt.Println(line)
	}

	fmt.Println("\nLabour:")
	for _, t := range result.Labour {
		fmt.Printf("  %-40s %8.1f sqft x%d  %3d days\n", t.Product, t.Area, t.Coats, t.Days)
	}

	fmt.Printf("\nDuration: %d days with %d laborers\n", result.TotalDays, result.Laborers)
	fmt.Printf("Material cost:        %12.2f\n", result.MaterialCost)
	fmt.Printf("Labour cost:          %12.2f\n", result.LabourCost)
	fmt.Printf("Quoted project cost:  %12.2f\n", result.QuotedProjectCost)
	fmt.Printf("Margin:               %12.2f\n", result.MarginCost)
	fmt.Printf("Dealer margin:        %12.2f\n", result.DealerMarginCost)
	fmt.Printf("Total:                %12.2f\n", result.TotalCost)
}
