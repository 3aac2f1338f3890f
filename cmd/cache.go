/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/horoscope/internal/config"
	"github.com/valpere/horoscope/internal/store"
)

const snippetRunes = 40

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the translation memory",
	Long: `Commands for the SQLite translation memory filled by horoscope runs with --db.

The database comes from --db, HOROSCOPE_DB or the db key of horoscope.yaml.`,
}

// withCache opens the configured translation memory for the duration of fn.
func withCache(fn func(ctx context.Context, db *store.Store, out io.Writer, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		if cfg.DB == "" {
			return fmt.Errorf("translation memory is disabled: pass --db or set HOROSCOPE_DB")
		}

		db, err := store.New(cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to open translation memory %s: %w", cfg.DB, err)
		}
		defer db.Close()

		return fn(cmd.Context(), db, cmd.OutOrStdout(), args)
	}
}

func listCache(ctx context.Context, db *store.Store, out io.Writer, _ []string) error {
	entries, err := db.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list translation memory: %w", err)
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(out, "translation memory is empty")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPAIR\tSERVICE\tHITS\tLAST HIT\tHOROSCOPE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s>%s\t%s\t%d\t%s\t%s\n",
			e.ID, e.SourceLang, e.TargetLang, e.ServiceUsed, e.UsageCount,
			e.LastUsed.Local().Format("2006-01-02 15:04"), snippet(e.SourceText))
	}
	return w.Flush()
}

func cacheStats(ctx context.Context, db *store.Store, out io.Writer, _ []string) error {
	stats, err := db.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read translation memory stats: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "entries\t%d\n", stats.TotalEntries)
	fmt.Fprintf(w, "hits\t%d\n", stats.TotalUsage)

	services := make([]string, 0, len(stats.Services))
	for name := range stats.Services {
		services = append(services, name)
	}
	slices.Sort(services)
	for _, name := range services {
		fmt.Fprintf(w, "  %s\t%d\n", name, stats.Services[name])
	}
	return w.Flush()
}

func deleteCacheEntry(ctx context.Context, db *store.Store, out io.Writer, args []string) error {
	if err := db.Delete(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete %s: %w", args[0], err)
	}
	_, err := fmt.Fprintf(out, "removed %s\n", args[0])
	return err
}

func clearCache(ctx context.Context, db *store.Store, out io.Writer, _ []string) error {
	n, err := db.Clear(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear translation memory: %w", err)
	}
	_, err = fmt.Fprintf(out, "removed %d cached translations\n", n)
	return err
}

func snippet(text string) string {
	r := []rune(text)
	if len(r) <= snippetRunes {
		return text
	}
	return string(r[:snippetRunes-1]) + "…"
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.PersistentFlags().String("db", "", "Translation memory database path")

	cacheCmd.AddCommand(
		&cobra.Command{Use: "list", Short: "List cached translations", Args: cobra.NoArgs, RunE: withCache(listCache)},
		&cobra.Command{Use: "stats", Short: "Count cached translations and hits per service", Args: cobra.NoArgs, RunE: withCache(cacheStats)},
		&cobra.Command{Use: "delete <id>", Short: "Remove one cached translation", Args: cobra.ExactArgs(1), RunE: withCache(deleteCacheEntry)},
		&cobra.Command{Use: "clear", Short: "Remove every cached translation", Args: cobra.NoArgs, RunE: withCache(clearCache)},
	)
}
