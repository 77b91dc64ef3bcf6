package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vanshika/finsight/backend/internal/generator"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := generator.DefaultConfig()
	var (
		outputDir   string
		format      string
		writeStdout bool
	)

	cmd := &cobra.Command{
		Use:   "datagen",
		Short: "Generate synthetic financial profiles",
		Args:  cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := generator.ParseFormat(format)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			dataset, err := generator.New(cfg).Generate(ctx)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			if writeStdout {
				return generator.Encode(cmd.OutOrStdout(), f, dataset.Profiles)
			}

			path, err := generator.WriteDataset(dataset, outputDir, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d profiles into %s\n", len(dataset.Profiles), path)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.NumProfiles, "profiles", cfg.NumProfiles, "number of profiles to generate")
	flags.Float64Var(&cfg.SharedNameChance, "shared-name-chance", cfg.SharedNameChance, "probability of reusing an existing name")
	flags.Float64Var(&cfg.ZeroFieldChance, "zero-field-chance", cfg.ZeroFieldChance, "probability of leaving an optional amount at zero")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for deterministic generation")
	flags.StringVar(&outputDir, "output-dir", "data", "directory to write the profile file into")
	flags.StringVar(&format, "format", string(generator.FormatJSON), "output format: json or yaml")
	flags.BoolVar(&writeStdout, "stdout", false, "write profiles to stdout instead of a file")

	return cmd
}
