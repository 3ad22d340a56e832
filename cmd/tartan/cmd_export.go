package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/tartan/render"
	"github.com/katalvlaran/tartan/sett"
	"github.com/katalvlaran/tartan/weave"
	"github.com/katalvlaran/tartan/wif"
	"github.com/katalvlaran/tartan/yarn"
)

func (a *app) wifCmd() *cobra.Command {
	var weaveID, title, out string
	cmd := &cobra.Command{
		Use:   "wif <threadcount>",
		Short: "Write a WIF loom draft",
		Example: `  tartan wif "B/24 W4 B24 R2 K24 G24 W/2" --title "Dress Gordon" --out gordon.wif
  tartan wif "K/4 R/8" --weave plain`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sett.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			p, err := a.pattern(weaveID)
			if err != nil {
				return err
			}
			meta := a.metadata(title)
			meta.Date = time.Now()
			d, err := wif.GenerateDraft(s, p, meta)
			if err != nil {
				return err
			}
			if out == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), d.Content)
				return err
			}
			if out == "." || strings.HasSuffix(out, string(os.PathSeparator)) {
				out = filepath.Join(out, d.Filename)
			}
			if err := os.WriteFile(out, []byte(d.Content), 0o644); err != nil {
				return fmt.Errorf("failed to write draft: %w", err)
			}
			a.logger.Info("draft written", zap.String("path", out), zap.String("weave", p.ID))
			return nil
		},
	}
	cmd.Flags().StringVar(&weaveID, "weave", "", "Weave id (default: output.weave from config)")
	cmd.Flags().StringVar(&title, "title", "", "Draft title; also names the file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, or a directory ending in / (default: stdout)")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.wif>",
		Short: "Read a WIF draft back into a threadcount and weave",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			d, err := wif.ParseDraft(f, a.pal)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if d.Title != "" {
				fmt.Fprintf(out, "title:       %s\n", d.Title)
			}
			fmt.Fprintf(out, "threadcount: %s\n", d.Sett.Threadcount())
			fmt.Fprintf(out, "weave:       %s (%d shafts, %d treadles)\n", d.Pattern.ID, d.Pattern.Shafts(), d.Pattern.Treadles())
			fmt.Fprintf(out, "repeats:     %d x %d\n", d.WarpRepeats, d.WeftRepeats)
			return nil
		},
	}
}

func (a *app) renderCmd() *cobra.Command {
	var weaveID, out, format string
	var width, height, scale int
	cmd := &cobra.Command{
		Use:   "render <threadcount>",
		Short: "Render a swatch as SVG or PNG",
		Example: `  tartan render "B/24 W4 B24 R2 K24 G24 W/2" --out swatch.png
  tartan render "K/4 R/8" --format svg --width 64 --height 64`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sett.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			p, err := a.pattern(weaveID)
			if err != nil {
				return err
			}
			exp := sett.MustExpand(s)
			g, err := weave.NewGrid(exp.Threads, exp.Threads, p)
			if err != nil {
				return err
			}

			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
			}
			if format != "png" && format != "svg" && format != "" {
				return fmt.Errorf("unknown format %q (valid: svg, png)", format)
			}
			write := func(w io.Writer) error {
				if format == "png" {
					img, err := render.Swatch(g, a.pal, render.SwatchOptions{Width: width, Height: height, Scale: scale})
					if err != nil {
						return err
					}
					return render.WritePNG(w, img)
				}
				return render.WriteSVG(w, g, a.pal, render.SVGOptions{Width: width, Height: height, Cell: scale})
			}
			if out == "" {
				err = write(cmd.OutOrStdout())
			} else {
				err = writeFile(out, write)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("rendered", zap.String("format", format), zap.String("weave", p.ID),
				zap.Int("repeat_width", g.RepeatWidth()), zap.Int("repeat_height", g.RepeatHeight()))
			return nil
		},
	}
	cmd.Flags().StringVar(&weaveID, "weave", "", "Weave id (default: output.weave from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "", "svg or png (default: from --out extension, else svg)")
	cmd.Flags().IntVar(&width, "width", 0, "Width in threads (default: one repeat)")
	cmd.Flags().IntVar(&height, "height", 0, "Height in threads (default: one repeat)")
	cmd.Flags().IntVar(&scale, "scale", 0, "Pixels per thread (default 4)")
	return cmd
}

func (a *app) yarnCmd() *cobra.Command {
	var product, profile, weaveID string
	var waste, gauge, cost float64
	cmd := &cobra.Command{
		Use:     "yarn <threadcount>",
		Short:   "Estimate yarn per colour for a product",
		Example: `  tartan yarn "B/24 W4 B24 R2 K24 G24 W/2" --product kilt --profile worsted --cost 9.5`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sett.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			opts, err := a.cfg.YarnOptions()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("profile") {
				opts = append(opts, yarn.WithProfile(profile))
			}
			if flags.Changed("waste") {
				opts = append(opts, yarn.WithWaste(waste))
			}
			if flags.Changed("gauge") {
				if gauge < 0 {
					return fmt.Errorf("gauge must not be negative")
				}
				opts = append(opts, yarn.WithGauge(gauge))
			}
			if flags.Changed("cost") {
				if cost < 0 {
					return fmt.Errorf("cost must not be negative")
				}
				opts = append(opts, yarn.WithCostPerSkein(cost))
			}
			if weaveID != "" {
				p, err := a.pattern(weaveID)
				if err != nil {
					return err
				}
				opts = append(opts, yarn.WithWeave(p))
			}

			calc, err := yarn.CalculateForProduct(s, product, opts...)
			if err != nil {
				return err
			}
			writeYarnReport(cmd.OutOrStdout(), calc)
			return nil
		},
	}
	cmd.Flags().StringVar(&product, "product", "scarf", "Product template key")
	cmd.Flags().StringVar(&profile, "profile", "", "Yarn profile key")
	cmd.Flags().StringVar(&weaveID, "weave", "", "Weave id used to derive the gauge")
	cmd.Flags().Float64Var(&waste, "waste", yarn.DefaultWaste, "Waste multiplier (>= 1)")
	cmd.Flags().Float64Var(&gauge, "gauge", 0, "Threads per inch (0: derive from profile)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Cost per skein")
	return cmd
}

// writeFile creates path, hands it to write and reports a failed Close
// when write itself succeeded.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return write(f)
}

func writeYarnReport(w io.Writer, calc yarn.Calculation) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%s (%g x %g in), %s yarn, %s weave\n",
		calc.Product.Name, calc.Product.Width, calc.Product.Length, calc.Profile.Name, calc.Weave)
	p.Fprintf(w, "gauge %.2f tpi, %d ends x %d picks, waste x%.2f\n",
		calc.Gauge, calc.WarpEnds, calc.WeftPicks, calc.WasteMultiplier)
	for _, r := range calc.Requirements {
		p.Fprintf(w, "%-4s %10.1f yd %4d skeins %9.0f g %10.2f\n",
			r.Color, r.TotalYards, r.Skeins, r.WeightGrams, r.Cost)
	}
	t := calc.Totals
	p.Fprintf(w, "%-4s %10.1f yd %4d skeins %9.0f g %10.2f\n",
		"all", t.TotalYards, t.Skeins, t.WeightGrams, t.Cost)
}
