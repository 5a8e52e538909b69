// Command casting-inspector flags manufacturing-design violations in
// rasterized 2D casting drawings.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"casting-inspector/internal/analyze"
	"casting-inspector/internal/config"
	"casting-inspector/internal/detect"
	"casting-inspector/internal/drawing"
	"casting-inspector/internal/ocr"
	"casting-inspector/internal/render"
	"casting-inspector/internal/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gocv.io/x/gocv"
)

var (
	verbose    bool
	configPath string
	outputDir  string
	overlays   bool
	titleOCR   bool
	workers    int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "casting-inspector",
	Short: "Design-rule compliance checking for 2D casting drawings",
	Long: `casting-inspector detects geometric features (walls, corners,
junctions, ribs, bosses) on rasterized casting drawings and evaluates
each against a fixed catalog of casting design rules.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <page.png> [page2.png ...]",
	Short: "Analyze drawing pages and write a compliance report",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the active design-rule threshold table",
	RunE:  runRules,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file with tuning overrides")

	analyzeCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default from config)")
	analyzeCmd.Flags().BoolVar(&overlays, "overlays", false, "Write annotated overlay images per page")
	analyzeCmd.Flags().BoolVar(&titleOCR, "title-ocr", false, "Extract title-block text with Tesseract")
	analyzeCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent page workers (0 = one per CPU)")

	rootCmd.AddCommand(analyzeCmd, rulesCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if workers != 0 {
		cfg.Workers = workers
	}
	if titleOCR {
		cfg.TitleBlockOCR = true
	}

	pages := loadPages(args, logger)
	defer func() {
		for i := range pages {
			pages[i].Close()
		}
	}()

	var titles analyze.TitleReader
	if cfg.TitleBlockOCR {
		engine, err := ocr.NewEngine()
		if err != nil {
			return fmt.Errorf("title-block OCR: %w", err)
		}
		defer engine.Close()
		titles = engine
	}

	runner := analyze.NewRunner(cfg.Pipeline, cfg.Workers, titles, logger)
	doc, err := runner.AnalyzeDocument(cmd.Context(), pages)
	if err != nil {
		return err
	}

	reportPath, err := report.Write(cfg.OutputDir, doc)
	if err != nil {
		return err
	}

	if overlays {
		for i, page := range doc.Pages {
			if page.Failed() {
				continue
			}
			name := fmt.Sprintf("overlay_%d.png", i+1)
			if err := render.Save(filepath.Join(cfg.OutputDir, name), pages[i].Gray, page); err != nil {
				logger.Warn("overlay render failed", zap.String("page", page.ImageRef), zap.Error(err))
			}
		}
	}

	printSummary(doc, reportPath)
	return nil
}

// loadPages loads each path into its slot. A page that fails to load
// keeps its position with a valid empty mat, so analysis records it as
// failed instead of silently dropping it.
func loadPages(paths []string, log *zap.Logger) []drawing.Page {
	pages := make([]drawing.Page, 0, len(paths))
	for _, path := range paths {
		page, err := drawing.LoadPage(path)
		if err != nil {
			log.Warn("failed to load page", zap.String("page", path), zap.Error(err))
			page = drawing.Page{Ref: path, Gray: gocv.NewMat()}
		}
		pages = append(pages, page)
	}
	return pages
}

func printSummary(doc *analyze.DocumentResult, reportPath string) {
	fmt.Printf("Pages analyzed: %d\n", doc.PageCount)
	fmt.Printf("Total features detected: %d\n", doc.TotalFeatureCount)

	for i, page := range doc.Pages {
		if page.Failed() {
			fmt.Printf("  Page %d: FAILED (%s)\n", i+1, page.Failure)
			continue
		}
		if page.FeatureCount == 0 {
			fmt.Printf("  Page %d: no features detected\n", i+1)
			continue
		}
		counts := page.CountsByType()
		parts := ""
		for _, t := range []detect.FeatureType{detect.Wall, detect.Corner, detect.Junction, detect.Rib, detect.Boss} {
			if n := counts[t]; n > 0 {
				if parts != "" {
					parts += ", "
				}
				parts += fmt.Sprintf("%d %s", n, t)
			}
		}
		fmt.Printf("  Page %d: %d features (%s)\n", i+1, page.FeatureCount, parts)
	}

	if len(doc.RuleTally) > 0 {
		fmt.Println("\nRule compliance summary:")
		for _, rule := range doc.RuleIDs() {
			t := doc.RuleTally[rule]
			fmt.Printf("  %s: %d Yes, %d No, %d Review (of %d features)\n",
				rule, t.Yes, t.No, t.NeedsReview, t.Total())
		}
	}

	fmt.Printf("\nReport: %s\n", reportPath)
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	t := cfg.Pipeline.Rules

	fmt.Println("Rule thresholds:")
	fmt.Printf("  R5  wall thickness variation:  Yes < %.1f, No > %.1f\n", t.WallVariationYes, t.WallVariationNo)
	fmt.Printf("  R8  wall transition ratio:     Yes < %.1f, No > %.1f\n", t.WallRatioYes, t.WallRatioNo)
	fmt.Printf("  R3/R7 corner angles:           Yes if 0 acute and min > %.0f, No if acute > %.0f or min < %.0f\n",
		t.CornerMinAngleYes, t.CornerAcuteNo, t.CornerMinAngleNo)
	fmt.Printf("  R4  junction sections:         Yes <= %.0f, No > %.0f\n", t.JunctionSectionsYes, t.JunctionSectionsNo)
	fmt.Printf("  R9  rib spacing:               Yes %.0f-%.0f, No < %.0f or > %.0f\n",
		t.RibSpacingYesLow, t.RibSpacingYesHigh, t.RibSpacingNoLow, t.RibSpacingNoHigh)
	fmt.Printf("  R10 boss size:                 Yes < %.0f, No > %.0f\n", t.BossSizeYes, t.BossSizeNo)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
