// Command matcalc is the command-line front end for the matrix text codec
// and operator library. Each subcommand maps onto one calc operator; operand
// matrices come from file arguments or from stdin split on blank lines.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bradybhalla/matrixcalc/calc"
)

var (
	// Global flags
	verbose    bool
	configPath string
	tolerance  float64
	precision  int
	plain      bool
	scalar     float64

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "matcalc",
	Short: "matcalc - plain-text matrix calculator",
	Long: `matcalc reads matrices written as plain text (rows on newlines, cells
separated by spaces), applies one linear-algebra operation, and prints the
result in the same text form with aligned columns.

Operands are file arguments read in order; with no arguments, stdin is read
and split on blank lines, one matrix per block, in source order.

Example:
  printf '1 2\n3 4\n\n5 6\n7 8\n' | matcalc mul`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
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
}

var addCmd = &cobra.Command{
	Use:   "add [A] [B]",
	Short: "Add two equally-shaped matrices element-wise",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runOp(calc.OpAdd),
}

var mulCmd = &cobra.Command{
	Use:     "mul [A] [B]",
	Aliases: []string{"multiply", "mult"},
	Short:   "Multiply two matrices (first operand is the left factor)",
	Args:    cobra.MaximumNArgs(2),
	RunE:    runOp(calc.OpMultiply),
}

var scaleCmd = &cobra.Command{
	Use:   "scale [A] [B]",
	Short: "Multiply a matrix by a scalar",
	Long: `Multiplies every cell of a matrix by a scalar.

With one operand, the scalar comes from --scalar. With two operands, exactly
one must be a 1x1 matrix; it supplies the scalar and the other is scaled.

Examples:
  matcalc scale --scalar 2 m.txt
  printf '2\n\n1 2\n3 4\n' | matcalc scale`,
	Args: cobra.MaximumNArgs(2),
	RunE: runOp(calc.OpScale),
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [A]",
	Short: "Swap rows and columns of a matrix",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOp(calc.OpTranspose),
}

var invCmd = &cobra.Command{
	Use:     "inv [A]",
	Aliases: []string{"inverse"},
	Short:   "Invert a square, non-singular matrix",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runOp(calc.OpInverse),
}

var rrefCmd = &cobra.Command{
	Use:   "rref [A]",
	Short: "Reduce a matrix to reduced row-echelon form",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOp(calc.OpRREF),
}

var fmtCmd = &cobra.Command{
	Use:     "fmt [A]",
	Aliases: []string{"format"},
	Short:   "Re-print a matrix with normalized, aligned spacing",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runOp(calc.OpFormat),
}

var insertCmd = &cobra.Command{
	Use:   "insert [RxC]",
	Short: "Print a fresh zero-filled matrix of the given dimensions",
	Long: `Prints an R-by-C matrix of zeros, ready to be edited cell by cell.

Example:
  matcalc insert 2x3`,
	Args: cobra.ExactArgs(1),
	RunE: runInsert,
}

// runOp builds the shared RunE for the matrix-operand subcommands.
func runOp(op calc.Op) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		operands, err := gatherOperands(cmd, args)
		if err != nil {
			return err
		}
		logger.Debug("Executing operation",
			zap.String("op", op.String()),
			zap.Int("operands", len(operands)))

		req := calc.Request{Op: op, Operands: operands, Scalar: scalar}
		out, err := calc.Apply(req, applyOptions(cmd)...)
		if err != nil {
			logger.Debug("Operation failed", zap.String("op", op.String()), zap.Error(err))
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
}

// runInsert handles the one subcommand whose argument is a dimension spec,
// not an operand file.
func runInsert(cmd *cobra.Command, args []string) error {
	req := calc.Request{Op: calc.OpInsert, DimSpec: args[0]}
	out, err := calc.Apply(req, applyOptions(cmd)...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// applyOptions resolves config-file values overridden by explicit flags into
// calc options.
func applyOptions(cmd *cobra.Command) []calc.Option {
	cfg := DefaultConfig()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			logger.Warn("Config load failed, using defaults",
				zap.String("path", configPath), zap.Error(err))
		} else {
			cfg = loaded
		}
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.PivotTolerance = tolerance
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = precision
	}
	if cmd.Flags().Changed("plain") {
		cfg.PlainSpacing = plain
	}

	opts := []calc.Option{
		calc.WithTolerance(cfg.PivotTolerance),
		calc.WithPrecision(cfg.Precision),
	}
	if cfg.PlainSpacing {
		opts = append(opts, calc.WithPlainSpacing())
	}
	return opts
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tolerance", 0, "Zero-pivot tolerance for inv/rref (overrides config)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", 0, "Fractional digits in output (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Single-space output instead of aligned columns")

	scaleCmd.Flags().Float64VarP(&scalar, "scalar", "k", 0, "Scalar factor for single-operand scale")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(invCmd)
	rootCmd.AddCommand(rrefCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(insertCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
