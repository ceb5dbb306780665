package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"interlit/internal/diag"
	"interlit/internal/diagfmt"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.il|directory>",
	Short: "Check interpolation literals without printing the lowered output",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("disk-cache", false, "cache per-file results on disk even when the config leaves it off")
	checkCmd.SilenceUsage = true
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	forceCache, _ := cmd.Flags().GetBool("disk-cache")

	cache, err := openCache(cfg, forceCache)
	if err != nil {
		return err
	}

	fileSet, results, err := runPipeline(cmd, args[0], cfg, jobs, cache)
	if err != nil {
		return err
	}

	bag := diag.NewBag(cfg.Limits.MaxDiagnostics)
	literals := 0
	for _, res := range results {
		bag.Merge(res.Bag)
		literals += len(res.Lowered)
		if res.FromCache && res.Cached != nil {
			literals += len(res.Cached.Literals)
		}
	}
	bag.Sort()
	bag.Dedup()

	if cfg.Output.Format == "json" {
		if err := diagfmt.JSON(cmd.OutOrStdout(), bag, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		}); err != nil {
			return err
		}
	} else {
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(cfg),
			ShowNotes: true,
		})
	}

	if bag.HasErrors() {
		return fmt.Errorf("check failed: %d diagnostics", bag.Len())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d files, %d literals\n", len(results), literals)
	return nil
}
