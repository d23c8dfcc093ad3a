package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/automoto/citygen/citydata"
	"github.com/automoto/citygen/config"
)

var (
	// Global flags
	verbose    bool
	layoutPath string

	// Generate flags
	outDir  string
	history bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "citygen",
	Short: "Generate the rooftop city scene fragments",
	Long: `citygen turns the rooftop city layout into two Godot scene fragments:
resource declarations (city_subresources.txt) and the node hierarchy
(city_nodes.txt), ready to paste into the level scene.

Run without a subcommand to generate from the built-in layout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGenerate,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the scene fragments and print checkpoint positions",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check the layout for checkpoint, naming and placement mistakes",
	Args:  cobra.NoArgs,
	RunE:  runLint,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a top-down PNG of the layout",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Layout utilities",
}

var layoutDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the active layout as YAML",
	Long: `Prints the active layout as YAML. Edit the output and pass it back with
--layout to generate a different city.`,
	Args: cobra.NoArgs,
	RunE: runLayoutDump,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&layoutPath, "layout", "l", "", "Layout file (.yaml or .tmx, default: built-in layout)")

	// Generate flags, on the root too so a bare invocation generates
	for _, c := range []*cobra.Command{rootCmd, generateCmd} {
		c.Flags().StringVarP(&outDir, "out", "o", ".", "Directory the fragments are written to")
		c.Flags().BoolVar(&history, "history", false, "Compare checkpoints with the previous run and record them in the user data directory")
	}

	lintCmd.Flags().BoolVar(&strictLint, "strict", false, "Fail on warnings too")

	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "PNG file to write (default: city_preview.png)")
	previewCmd.Flags().Float64Var(&previewScale, "scale", 0, "Pixels per world unit (default: from config)")

	layoutCmd.AddCommand(layoutDumpCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(layoutCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadLayout returns the layout named by --layout, or the built-in one.
func loadLayout() (*citydata.Layout, error) {
	layout, err := citydata.LoadFile(layoutPath)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", layoutPath, err)
	}
	if layoutPath == "" {
		logger.Debug("Using built-in layout")
	} else {
		logger.Debug("Loaded layout", zap.String("path", layoutPath))
	}
	return layout, nil
}

func newConfig() *config.Config {
	return config.Default()
}
