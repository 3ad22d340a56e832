package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tartan/palette"
	"github.com/katalvlaran/tartan/sett"
	"github.com/katalvlaran/tartan/weave"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <threadcount>",
		Short: "Validate a threadcount and print its canonical form",
		Example: `  tartan parse "B/24 W4 B24 R2 K24 G24 W/2"
  tartan parse "K,4 R,2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sett.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "threadcount: %s\n", s.Threadcount())
			fmt.Fprintf(out, "stripes:     %d\n", s.Len())
			fmt.Fprintf(out, "threads:     %d\n", s.TotalThreads())
			fmt.Fprintf(out, "symmetric:   %t\n", s.IsSymmetric())
			fmt.Fprintf(out, "colors:      %s\n", strings.Join(s.Colors(), " "))
			if reps := sett.AdjacentRepeats(s); len(reps) > 0 {
				a.logger.Warn("adjacent stripes share a colour", zap.Ints("stripes", reps))
			}
			return nil
		},
	}
}

func (a *app) expandCmd() *cobra.Command {
	var counts bool
	cmd := &cobra.Command{
		Use:   "expand <threadcount>",
		Short: "Print one full repeat of threads",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sett.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			exp := sett.MustExpand(s)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "length: %d\n", exp.Length)
			if counts {
				cc := exp.ColorCounts()
				for _, code := range exp.Colors() {
					fmt.Fprintf(out, "%-3s %d\n", code, cc[code])
				}
				return nil
			}
			fmt.Fprintln(out, strings.Join(exp.Threads, " "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&counts, "counts", false, "Print per-colour thread counts instead of the sequence")
	return cmd
}

func (a *app) colorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List palette colour codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, code := range a.pal.Codes() {
				c, _ := a.pal.Lookup(code)
				fmt.Fprintf(out, "%-3s %s %s\n", c.Code, c.Hex, c.Name)
			}
			return nil
		},
	}
}

func (a *app) weavesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weaves",
		Short: "List the weave catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := weave.Catalog()
			ids := make([]string, 0, len(cat))
			for id := range cat {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			out := cmd.OutOrStdout()
			for _, id := range ids {
				p := cat[id]
				fmt.Fprintf(out, "%-12s %-14s shafts=%d treadles=%d\n", id, p.Name, p.Shafts(), p.Treadles())
			}
			return nil
		},
	}
}

func (a *app) matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "match <#rrggbb>...",
		Short:   "Find the nearest palette colour for hex values",
		Example: `  tartan match "#1A2B5C" "#C00"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, h := range args {
				rgb, err := palette.ParseHex(h)
				if err != nil {
					return err
				}
				c := a.pal.Nearest(rgb)
				fmt.Fprintf(out, "%s -> %s %s %s\n", rgb.Hex(), c.Code, c.Hex, c.Name)
			}
			return nil
		},
	}
}
