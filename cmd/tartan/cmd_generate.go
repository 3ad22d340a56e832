package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tartan/generator"
	"github.com/katalvlaran/tartan/sett"
	"github.com/katalvlaran/tartan/weave"
	"github.com/katalvlaran/tartan/wif"
)

// constraintFlags override the configured generator constraints.
type constraintFlags struct {
	seed     int64
	symmetry string
	colors   []string
}

func (f *constraintFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Seed (default: generator.seed from config)")
	cmd.Flags().StringVar(&f.symmetry, "symmetry", "", "symmetric, asymmetric or either")
	cmd.Flags().StringSliceVar(&f.colors, "colors", nil, "Allowed colour codes (default: config or whole palette)")
}

func (a *app) constraints(f constraintFlags) (generator.Constraints, int64, error) {
	c, err := a.cfg.Constraints()
	if err != nil {
		return generator.Constraints{}, 0, err
	}
	if f.symmetry != "" {
		if c.Symmetry, err = generator.ParseSymmetry(f.symmetry); err != nil {
			return generator.Constraints{}, 0, err
		}
	}
	if len(f.colors) > 0 {
		c.AllowedColors = f.colors
	}
	seed := f.seed
	if seed == 0 {
		seed = a.cfg.Generator.Seed
	}
	return c, seed, nil
}

func (a *app) generatorOptions(seed int64) []generator.Option {
	return []generator.Option{
		generator.WithSeed(seed),
		generator.WithPalette(a.pal),
		generator.WithLogger(a.logger.Named("generator")),
		generator.WithMaxBatchAttempts(a.cfg.Generator.MaxBatchAttempts),
	}
}

func printResults(w io.Writer, results []generator.Result) {
	for _, r := range results {
		flag := ""
		if r.Degraded {
			flag = "  (degraded)"
		}
		fmt.Fprintf(w, "%-28s %s%s\n", r.Sett.Name(), r.Sett.Threadcount(), flag)
	}
}

func (a *app) generateCmd() *cobra.Command {
	var f constraintFlags
	var write bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one sett from the configured constraints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, seed, err := a.constraints(f)
			if err != nil {
				return err
			}
			r, err := generator.GenerateOne(c, seed, a.generatorOptions(seed)...)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), []generator.Result{r})
			if !write {
				return nil
			}
			return a.writeDrafts(cmd.Context(), cmd.OutOrStdout(), []generator.Result{r})
		},
	}
	f.bind(cmd)
	cmd.Flags().BoolVar(&write, "write", false, "Write a WIF draft to output.dir")
	return cmd
}

func (a *app) batchCmd() *cobra.Command {
	var f constraintFlags
	var n int
	var write bool
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate structurally distinct setts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, seed, err := a.constraints(f)
			if err != nil {
				return err
			}
			results, err := generator.GenerateBatch(n, c, a.generatorOptions(seed)...)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			if !write {
				return nil
			}
			return a.writeDrafts(cmd.Context(), cmd.OutOrStdout(), results)
		},
	}
	f.bind(cmd)
	cmd.Flags().IntVarP(&n, "count", "n", 5, "Number of setts")
	cmd.Flags().BoolVar(&write, "write", false, "Write one WIF draft per sett to output.dir")
	return cmd
}

// base returns the threadcount argument as a Result, or a fresh sett.
func (a *app) base(args []string, c generator.Constraints, seed int64) (generator.Result, error) {
	if len(args) == 0 {
		return generator.GenerateOne(c, seed, a.generatorOptions(seed)...)
	}
	s, err := sett.Parse(strings.Join(args, " "))
	if err != nil {
		return generator.Result{}, err
	}
	return generator.Result{Sett: s, Seed: seed, Constraints: c, Signature: generator.Sign(s)}, nil
}

func (a *app) mutateCmd() *cobra.Command {
	var f constraintFlags
	var n int
	cmd := &cobra.Command{
		Use:   "mutate [threadcount]",
		Short: "Derive variants of a sett that keep some of its colours",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, seed, err := a.constraints(f)
			if err != nil {
				return err
			}
			base, err := a.base(args, c, seed)
			if err != nil {
				return err
			}
			variants, err := generator.Mutate(base, n, a.generatorOptions(seed)...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "base: %s\n", base.Sett.Threadcount())
			printResults(cmd.OutOrStdout(), variants)
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().IntVarP(&n, "count", "n", 4, "Number of variants")
	return cmd
}

func (a *app) breedCmd() *cobra.Command {
	var f constraintFlags
	cmd := &cobra.Command{
		Use:     "breed <threadcount-a> <threadcount-b>",
		Short:   "Recombine two setts into four children",
		Example: `  tartan breed "K/4 R8 Y/2" "B/6 G12 W/2"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, seed, err := a.constraints(f)
			if err != nil {
				return err
			}
			pa, err := a.base(args[:1], c, seed)
			if err != nil {
				return err
			}
			pb, err := a.base(args[1:], c, seed+1)
			if err != nil {
				return err
			}
			children, err := generator.Breed(pa, pb, a.generatorOptions(seed)...)
			if err != nil {
				return err
			}
			for _, ch := range children {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", ch.Strategy, ch.Sett.Threadcount())
			}
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

// writeDrafts exports one WIF file per result into output.dir, with at
// most generator.workers writers at a time.
func (a *app) writeDrafts(ctx context.Context, out io.Writer, results []generator.Result) error {
	p, err := a.pattern("")
	if err != nil {
		return err
	}
	dir := a.cfg.Output.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, len(results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Generator.Workers)
	for i, r := range results {
		i, r := i, r
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := a.writeDraft(dir, r.Sett, p)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintf(out, "wrote %s\n", path)
	}
	return nil
}

func (a *app) writeDraft(dir string, s sett.Sett, p weave.Pattern) (string, error) {
	d, err := wif.GenerateDraft(s, p, a.metadata(""))
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, d.Filename)
	if err := os.WriteFile(path, []byte(d.Content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write draft: %w", err)
	}
	a.logger.Debug("draft written", zap.String("path", path), zap.String("weave", p.ID))
	return path, nil
}

func (a *app) metadata(title string) wif.Metadata {
	return wif.Metadata{
		Title:       title,
		Author:      a.cfg.Output.Author,
		WarpRepeats: a.cfg.Output.WarpRepeats,
		WeftRepeats: a.cfg.Output.WeftRepeats,
		Palette:     a.pal,
	}
}
