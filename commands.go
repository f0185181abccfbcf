package plottools

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewCommand creates a Cobra command tree for figure styling and
// convention checking. The returned command can be executed directly
// or added to a parent CLI's root command.
//
// Commands provided:
//   - check [dir] [--strict]
//   - styles list [--style <preset>] [--palette]
//   - styles show <series> [--style <preset>]
//   - styles export [--style <preset>] [--format mplstyle|json] [-o file]
//   - data info <file>...
//
// Global flags: --json, --quiet, --verbose
func NewCommand(cfg Config, opts ...Option) *cobra.Command {
	var (
		jsonOutput bool
		quiet      bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "plottools",
		Short: "Style and check scientific figures",
		Long: "Centralized plot styling for scientific-figure scripts and a checker\n" +
			"for the authoring conventions: one script per figure, matching base\n" +
			"filenames, display data from .npz/.csv files only.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	cmd.AddCommand(checkCmd(cfg, opts, &jsonOutput, &quiet))
	cmd.AddCommand(stylesCmd(cfg, &jsonOutput))
	cmd.AddCommand(dataCmd(&jsonOutput))

	return cmd
}

func checkCmd(cfg Config, opts []Option, jsonOutput, quiet *bool) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check figure-script conventions",
		Long: "Walk a figure directory and verify that every script has a matching\n" +
			"figure, figures come from scripts, and display data is read from\n" +
			".npz or .csv files only.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.FigureDir
			if len(args) > 0 {
				dir = args[0]
			}
			if dir == "" {
				dir = "."
			}

			runOpts := opts
			if strict {
				runOpts = append(append([]Option{}, opts...), WithStrict())
			}
			report, err := Check(cmd.Context(), DefaultCheckConfig(dir), runOpts...)
			if err != nil {
				return err
			}
			if err := outputReport(cmd.OutOrStdout(), report, *jsonOutput, *quiet); err != nil {
				return err
			}
			if !report.OK() {
				errs, _ := report.Counts()
				return fmt.Errorf("%w: %d in %s", ErrViolations, errs, dir)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")
	return cmd
}

func stylesCmd(cfg Config, jsonOutput *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Inspect and export plot styles",
	}
	cmd.AddCommand(stylesListCmd(cfg, jsonOutput))
	cmd.AddCommand(stylesShowCmd(cfg, jsonOutput))
	cmd.AddCommand(stylesExportCmd(cfg))
	return cmd
}

func stylesListCmd(cfg Config, jsonOutput *bool) *cobra.Command {
	var (
		styleName   string
		showPalette bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List style series as terminal swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := resolveStyle(cfg, styleName)
			if err != nil {
				return err
			}
			if *jsonOutput {
				return WriteStylesJSON(cmd.OutOrStdout(), st.Set)
			}
			if showPalette {
				fmt.Fprint(cmd.OutOrStdout(), RenderPalette(st.Palette))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), RenderSwatches(st))
			return nil
		},
	}

	cmd.Flags().StringVar(&styleName, "style", "", "Style preset: screen, paper, or sketch")
	cmd.Flags().BoolVar(&showPalette, "palette", false, "List palette colors instead of style series")
	return cmd
}

func stylesShowCmd(cfg Config, jsonOutput *bool) *cobra.Command {
	var styleName string

	cmd := &cobra.Command{
		Use:   "show <series>",
		Short: "Show all style variants of one series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := resolveStyle(cfg, styleName)
			if err != nil {
				return err
			}
			series := args[0]
			if !st.Set.HasSeries(series) {
				return fmt.Errorf("%w: %q in %s style", ErrUnknownSeries, series, st.Name)
			}
			return outputSeries(cmd.OutOrStdout(), st.Set, series, *jsonOutput)
		},
	}

	cmd.Flags().StringVar(&styleName, "style", "", "Style preset: screen, paper, or sketch")
	return cmd
}

func stylesExportCmd(cfg Config) *cobra.Command {
	var (
		styleName string
		format    string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a style preset",
		Long: "Export the layout settings of a preset as a matplotlib style sheet,\n" +
			"or all plot styles as JSON, so figure scripts read their styling from\n" +
			"one central place.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := resolveStyle(cfg, styleName)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("%w: creating %s: %v", ErrStorageError, output, err)
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "mplstyle":
				return WriteStyleSheet(w, st.Name, st.Params)
			case "json":
				return WriteStylesJSON(w, st.Set)
			default:
				return fmt.Errorf("unknown format %q: expected mplstyle or json", format)
			}
		},
	}

	cmd.Flags().StringVar(&styleName, "style", "", "Style preset: screen, paper, or sketch")
	cmd.Flags().StringVar(&format, "format", "mplstyle", "Export format: mplstyle or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}

func dataCmd(jsonOutput *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Inspect display-data files",
	}

	info := &cobra.Command{
		Use:   "info <file>...",
		Short: "Describe .npz and .csv data files",
		Long:  "Show array names, dtypes, and shapes of .npz files, or columns and\nrecord counts of .csv files. No data values are read.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []DataInfo
			for _, path := range args {
				di, err := DescribeData(path)
				if err != nil {
					return err
				}
				infos = append(infos, di)
			}
			return outputDataInfos(cmd.OutOrStdout(), infos, *jsonOutput)
		},
	}
	cmd.AddCommand(info)
	return cmd
}

// resolveStyle picks the preset and palette from flags, config, and
// the platform config dir, in that order of precedence.
func resolveStyle(cfg Config, styleName string) (*Style, error) {
	name := styleName
	if name == "" {
		name = cfg.StyleName
	}
	if name == "" {
		name = "screen"
	}

	palettePath := cfg.PalettePath
	if palettePath == "" && cfg.AppName != "" {
		// probe for a user palette, absence is fine
		if path, err := DefaultPalettePath(cfg.AppName); err == nil {
			if _, err := os.Stat(path); err == nil {
				palettePath = path
			}
		}
	}
	if palettePath != "" {
		p, err := LoadPalette(palettePath)
		if err != nil {
			return nil, err
		}
		return StyleWithPalette(name, p)
	}
	return StyleByName(name)
}

// Output helpers

func outputReport(w io.Writer, r Report, asJSON, quiet bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if len(r.Findings) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SEVERITY\tRULE\tPATH\tMESSAGE")
		for _, f := range r.Findings {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Severity, f.Rule, f.Path, f.Message)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if !quiet {
		errs, warns := r.Counts()
		fmt.Fprintf(w, "%s: %d scripts, %d figures, %d data files: %d errors, %d warnings\n",
			r.Dir, r.Scripts, r.Figures, r.DataFiles, errs, warns)
	}
	return nil
}

func outputSeries(w io.Writer, s *StyleSet, series string, asJSON bool) error {
	variants := []string{
		"ls" + series, "ls" + series + "m",
		"ps" + series, "ps" + series + "c", "ps" + series + "m",
		"lps" + series, "lps" + series + "c", "lps" + series + "m",
		"fs" + series, "fs" + series + "s", "fs" + series + "a",
	}

	if asJSON {
		out := make(map[string]any)
		for _, key := range variants {
			if v, ok := s.Lookup(key); ok {
				out[key] = v
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STYLE\tCOLOR\tDETAILS")
	for _, key := range variants {
		v, ok := s.Lookup(key)
		if !ok {
			continue
		}
		switch st := v.(type) {
		case LineStyle:
			fmt.Fprintf(tw, "%s\t%s\tdash %s, width %g\n", key, st.Color, st.Dash, st.Width)
		case PointStyle:
			fmt.Fprintf(tw, "%s\t%s\tmarker %s, size %g, edge %s\n",
				key, st.Color, st.MarkerSym, st.Size, st.EdgeColor)
		case FillStyle:
			details := "no edge"
			if st.EdgeColor != "" {
				details = fmt.Sprintf("edge %s, width %g", st.EdgeColor, st.EdgeWidth)
			}
			if st.Alpha > 0 {
				details += fmt.Sprintf(", alpha %g", st.Alpha)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", key, st.FaceColor, details)
		}
	}
	return tw.Flush()
}

func outputDataInfos(w io.Writer, infos []DataInfo, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	for _, di := range infos {
		switch di.Kind {
		case "npz":
			fmt.Fprintf(w, "%s:\n", di.Path)
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "  ARRAY\tDTYPE\tSHAPE\tSIZE")
			for _, a := range di.Arrays {
				fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
					a.Name, a.DType, a.ShapeString(), formatSize(a.ByteSize))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
		case "csv":
			fmt.Fprintf(w, "%s: %d columns, %d records\n",
				di.Path, len(di.CSV.Columns), di.CSV.Records)
			for _, col := range di.CSV.Columns {
				fmt.Fprintf(w, "  %s\n", col)
			}
		}
	}
	return nil
}

func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
