package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"nucleonics/internal/chart"
	"nucleonics/internal/config"
	"nucleonics/internal/filewalker"
	"nucleonics/internal/masstable"
	"nucleonics/internal/nuclide"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "nucleonics",
		Short: "Nuclide physics model and atomic mass table toolkit",
		Long:  "Models atomic nuclei with the semi-empirical mass formula and converts raw atomic mass evaluation tables into a normalized CSV layout.",
	}

	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(plotCmd())
	rootCmd.AddCommand(nuclideCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert raw atomic mass tables to normalized CSV",
		Long: `Converts a raw atomic mass evaluation table into the normalized CSV layout.
When input is a directory, every .txt table underneath is converted into the
output directory, mirroring relative paths.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			input, output := cfg.DataPath, cfg.CSVPath
			if len(args) > 0 {
				input = args[0]
			}
			if len(args) > 1 {
				output = args[1]
			}
			return runConvert(input, output, cfg.WorkerCount)
		},
	}
}

func plotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [output-image]",
		Short: "Plot binding energy per nucleon along the valley of stability",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			minA, maxA := cfg.MinMass, cfg.MaxMass
			if cmd.Flags().Changed("min") {
				minA, _ = cmd.Flags().GetInt("min")
			}
			if cmd.Flags().Changed("max") {
				maxA, _ = cmd.Flags().GetInt("max")
			}

			output := cfg.ImagePath
			if len(args) > 0 {
				output = args[0]
			}
			return runPlot(output, minA, maxA)
		},
	}

	cmd.Flags().Int("min", 1, "Smallest mass number to sweep")
	cmd.Flags().Int("max", 256, "Largest mass number to sweep")

	return cmd
}

func nuclideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nuclide <protons> <mass-number>",
		Short: "Print the physics-model summary of a single nuclide",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			protons, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse protons: %w", err)
			}
			massNumber, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse mass number: %w", err)
			}
			return runNuclide(protons, massNumber)
		},
	}
}

// runConvert handles the `convert` command.
func runConvert(input, output string, workers int) error {
	ctx, cancel := setupContext()
	defer cancel()

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return convertDir(ctx, input, output, workers)
	}
	return convertFile(ctx, input, output, workers)
}

func convertFile(ctx context.Context, input, output string, workers int) error {
	table, err := masstable.NewLoader(workers).LoadFile(ctx, input)
	if err != nil {
		return fmt.Errorf("load table: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := masstable.WriteCSVFile(output, table); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	log.Info().
		Str("input", input).
		Str("output", output).
		Int("entries", len(table)).
		Msg("Converted table")

	return nil
}

func convertDir(ctx context.Context, inputDir, outputDir string, workers int) error {
	paths, err := filewalker.Discover(inputDir)
	if err != nil {
		return fmt.Errorf("discover tables: %w", err)
	}

	inputAbs, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input directory: %w", err)
	}

	for _, path := range paths {
		relPath, err := filepath.Rel(inputAbs, path)
		if err != nil {
			return fmt.Errorf("compute relative path: %w", err)
		}
		outPath := filepath.Join(outputDir, strings.TrimSuffix(relPath, filepath.Ext(relPath))+".csv")

		if err := convertFile(ctx, path, outPath, workers); err != nil {
			return err
		}
	}

	log.Info().
		Int("tables", len(paths)).
		Str("output", outputDir).
		Msg("Directory conversion complete")

	return nil
}

// runPlot handles the `plot` command.
func runPlot(output string, minA, maxA int) error {
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("create image directory: %w", err)
	}
	if err := chart.BindingEnergyCurve(output, minA, maxA); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	log.Info().
		Str("output", output).
		Int("min", minA).
		Int("max", maxA).
		Msg("Rendered binding-energy curve")

	return nil
}

// runNuclide handles the `nuclide` command.
func runNuclide(protons, massNumber int) error {
	n, err := nuclide.New(protons, massNumber)
	if err != nil {
		return err
	}
	stable, err := nuclide.MostStableProtons(massNumber)
	if err != nil {
		return err
	}

	fmt.Printf("Z=%d N=%d A=%d\n", n.Protons(), n.Neutrons(), n.MassNumber())
	fmt.Printf("Binding energy:             %.4f MeV\n", n.BindingEnergy())
	fmt.Printf("Binding energy per nucleon: %.4f MeV\n", n.BindingEnergyPerNucleon())
	fmt.Printf("Mass defect:                %.6f u\n", n.BindingEnergyMass())
	fmt.Printf("Atomic mass (model):        %.6f u\n", n.AtomicMass())
	fmt.Printf("Most stable isobar:         Z=%d\n", stable)

	return nil
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}
