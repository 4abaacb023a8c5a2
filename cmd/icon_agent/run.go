package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jonathan/icon-forge/internal/config"
	"github.com/jonathan/icon-forge/internal/llm"
	"github.com/jonathan/icon-forge/internal/observability"
	"github.com/jonathan/icon-forge/internal/prompts"
	"github.com/jonathan/icon-forge/internal/types"
	"github.com/jonathan/icon-forge/internal/validation"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	runConfigPath   string
	runSettingsPath string
	runOutDir       string
	runAllVariants  bool
	runCreative     bool
	runTier         string
	runVerbose      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate icon SVGs end to end: prompt, model call, conformance check",
	Long:  `Build prompts from a configuration file, send them to the generative model, save the returned SVGs and lint each one against the style guide.`,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to icon configuration JSON (required)")
	runCmd.Flags().StringVar(&runSettingsPath, "settings", "", "Path to a JSON settings file supplying flag defaults")
	runCmd.Flags().StringVar(&runOutDir, "out", "", "Directory to write generated SVGs into (default current directory)")
	runCmd.Flags().BoolVar(&runAllVariants, "all-variants", false, "Generate all four prompt variants concurrently")
	runCmd.Flags().BoolVar(&runCreative, "creative", false, "Use the creative prompt (ignored with --all-variants)")
	runCmd.Flags().StringVar(&runTier, "tier", "", "Model tier: lite, standard or advanced (default standard)")
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "Print detailed progress information")
	_ = runCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(runCmd)
}

// runSettings merges flag values with the optional settings file. Flags win;
// file values fill in whatever the command line left unset.
func runSettings() (config.Config, error) {
	settings := config.Config{
		IconConfig:  runConfigPath,
		OutDir:      runOutDir,
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Tier:        runTier,
		Creative:    runCreative,
		AllVariants: runAllVariants,
		Verbose:     runVerbose,
	}

	if runSettingsPath != "" {
		fileCfg, err := config.LoadConfig(runSettingsPath)
		if err != nil {
			return settings, err
		}
		settings = settings.MergeWithDefaults(*fileCfg)
		settings.Creative = settings.Creative || fileCfg.Creative
		settings.AllVariants = settings.AllVariants || fileCfg.AllVariants
		settings.Verbose = settings.Verbose || fileCfg.Verbose
	}

	if settings.OutDir == "" {
		settings.OutDir = "."
	}
	if settings.Tier == "" {
		settings.Tier = string(llm.TierStandard)
	}

	return settings, settings.Validate()
}

func runRun(cmd *cobra.Command, _ []string) error {
	settings, err := runSettings()
	if err != nil {
		return err
	}
	if settings.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	cfg, err := loadConfig(settings.IconConfig, false)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if settings.Verbose {
		printer.PrintIconConfig(cfg)
	}

	ctx := cmd.Context()
	generator, err := llm.NewGenerator(ctx, llm.DefaultConfig(), settings.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = generator.Close() }()

	selected := selectPrompts(cfg, settings)
	if settings.Verbose {
		for label, prompt := range selected {
			printer.PrintPrompt(label, prompt)
		}
	}

	if err := os.MkdirAll(settings.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// One model call per variant; the core itself stays synchronous and
	// stateless, so the fan-out needs no coordination beyond the group.
	g, gctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	reports := make(map[string][]types.ValidationRule, len(selected))

	for label, prompt := range selected {
		g.Go(func() error {
			svg, err := generator.GenerateSVG(gctx, prompt, llm.ModelTier(settings.Tier))
			if err != nil {
				return fmt.Errorf("%s variant: %w", label, err)
			}

			outPath := filepath.Join(settings.OutDir, fmt.Sprintf("%s-%s.svg", cfg.Name, label))
			if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
				return fmt.Errorf("%s variant: failed to write %s: %w", label, outPath, err)
			}

			mu.Lock()
			reports[label] = validation.CheckSVG(svg)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for label, report := range reports {
		if settings.Verbose {
			printer.PrintReport(report)
			continue
		}
		fmt.Printf("--- %s ---\n", label)
		printReport(report)
		summary := types.Summarize(report)
		fmt.Printf("passed=%d failed=%d warnings=%d\n\n", summary.Passed, summary.Failed, summary.Warnings)
	}
	return nil
}

// selectPrompts picks which prompt renderings this run sends to the model.
func selectPrompts(cfg *types.IconConfig, settings config.Config) map[string]string {
	if settings.AllVariants {
		v := prompts.BuildVariants(cfg)
		return map[string]string{
			"standard": v.Standard,
			"detailed": v.Detailed,
			"creative": v.Creative,
			"minimal":  v.Minimal,
		}
	}
	if settings.Creative {
		return map[string]string{"creative": prompts.BuildCreativePrompt(cfg)}
	}
	return map[string]string{"standard": prompts.BuildStandardPrompt(cfg)}
}
