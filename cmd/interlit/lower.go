package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"interlit/internal/diag"
	"interlit/internal/diagfmt"
	"interlit/internal/driver"
)

var lowerCmd = &cobra.Command{
	Use:   "lower [flags] <file.il|directory>",
	Short: "Lower interpolation literals and print the argument lists",
	Long:  `Lower every i"..." and f"..." literal in the given file or directory and print the resulting argument list per literal`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLower,
}

func init() {
	lowerCmd.Flags().String("format", "", "output format (pretty|json)")
	lowerCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	lowerCmd.SilenceUsage = true
}

func runLower(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format := cfg.Output.Format
	if v, err := cmd.Flags().GetString("format"); err == nil && v != "" {
		format = v
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
	jobs, _ := cmd.Flags().GetInt("jobs")

	cache, err := openCache(cfg, false)
	if err != nil {
		return err
	}
	fileSet, results, err := runPipeline(cmd, args[0], cfg, jobs, cache)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	bag := diag.NewBag(cfg.Limits.MaxDiagnostics)
	for _, res := range results {
		bag.Merge(res.Bag)
	}
	bag.Sort()

	if format == "json" {
		var lowered diagfmt.LoweredOutput
		for _, res := range results {
			for _, ll := range res.Lowered {
				lowered.Literals = append(lowered.Literals,
					diagfmt.BuildLoweredLiteral(fileSet, ll.Lit, ll.Args, diagfmt.JSONOpts{IncludePositions: true}))
			}
		}
		if err := diagfmt.LoweredJSON(out, lowered); err != nil {
			return err
		}
		if bag.Len() > 0 {
			if err := diagfmt.JSON(out, bag, fileSet, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
				return err
			}
		}
	} else {
		for _, res := range results {
			for _, ll := range res.Lowered {
				start, _ := fileSet.Resolve(ll.Lit.Body)
				fmt.Fprintf(out, "%s:%d:%d: %s -> %s\n",
					res.Path, start.Line, start.Col, ll.Lit.Kind, diagfmt.LoweredArgs(fileSet, ll.Args))
			}
			if res.FromCache && res.Cached != nil {
				printCached(out, res.Path, res.Cached)
			}
		}
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(cfg),
			ShowNotes: true,
		})
	}

	if bag.HasErrors() {
		return fmt.Errorf("lowering failed with %d diagnostics", bag.Len())
	}
	return nil
}

// printCached renders literals restored from the disk cache, which carry
// pre-rendered argument text instead of AST nodes.
func printCached(out io.Writer, path string, payload *driver.DiskPayload) {
	for _, cl := range payload.Literals {
		fmt.Fprintf(out, "%s:%d..%d: %s ->", path, cl.BodyStart, cl.BodyEnd, cl.Kind)
		for i, a := range cl.Args {
			if i > 0 {
				fmt.Fprint(out, ",")
			}
			fmt.Fprintf(out, " %s", a)
		}
		fmt.Fprintln(out)
	}
}
