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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valpere/horoscope/internal/config"
	"github.com/valpere/horoscope/internal/detector"
	"github.com/valpere/horoscope/internal/horoscope"
	"github.com/valpere/horoscope/internal/logging"
	"github.com/valpere/horoscope/internal/orchestrator"
	"github.com/valpere/horoscope/internal/pipeline"
	"github.com/valpere/horoscope/internal/presenter"
	"github.com/valpere/horoscope/internal/store"
	"github.com/valpere/horoscope/internal/translator"
)

var getCmd = &cobra.Command{
	Use:   "get [sign]",
	Short: "Fetch and translate a horoscope",
	Long: `Fetch the horoscope for one sign and translate it.

Periods:
  --period daily     today's horoscope (use --day for TODAY, TOMORROW, YESTERDAY or YYYY-MM-DD)
  --period weekly    this week's horoscope
  --period monthly   this month's horoscope

Use several services as a fallback chain: --services mymemory,google,ollama`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runHoroscope,
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("sign", "libra", "Zodiac sign (see \"horoscope signs\")")
	cmd.Flags().String("period", "daily", "Horoscope period: daily, weekly or monthly")
	cmd.Flags().String("day", "", "Day for the daily period: TODAY, TOMORROW, YESTERDAY or YYYY-MM-DD")
	cmd.Flags().String("base-url", horoscope.DefaultBaseURL, "Horoscope API base URL")

	cmd.Flags().StringP("source", "s", "en", "Source language code, or auto to detect it")
	cmd.Flags().StringP("target", "t", "pt", "Target language code")
	cmd.Flags().StringSlice("services", []string{"mymemory"}, "Translation services to try in order (comma-separated)")
	cmd.Flags().Duration("translate-timeout", 0, "Per-service translation timeout (0 waits indefinitely)")
	cmd.Flags().Bool("validate", false, "Reject translations not detected as the target language")

	cmd.Flags().String("mymemory-email", "", "MyMemory email (for higher limits)")
	cmd.Flags().StringP("google-credentials", "c", "", "Path to Google Cloud credentials")
	cmd.Flags().StringP("google-project", "p", "", "Google Cloud Project ID")
	cmd.Flags().String("ollama-url", "http://localhost:11434", "Ollama base URL")
	cmd.Flags().String("ollama-model", "llama3.2", "Ollama model name")

	cmd.Flags().String("db", "", "Translation memory database path (disabled when empty)")
}

func runHoroscope(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := cmd.Flags().Set("sign", args[0]); err != nil {
			return err
		}
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	defer logger.Sync()

	capabilities, err := buildServices(cfg, logger)
	if err != nil {
		return err
	}

	opts := []orchestrator.Option{orchestrator.WithLogger(logger)}

	if cfg.DB != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.DB), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		db, err := store.New(cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		opts = append(opts, orchestrator.WithMemory(db))
	}

	if cfg.Source == "auto" || cfg.CheckLanguage {
		det := detector.New()
		if cfg.Source == "auto" {
			opts = append(opts, orchestrator.WithDetector(det))
		}
		if cfg.CheckLanguage {
			opts = append(opts, orchestrator.WithValidator(det))
		}
	}

	orch := orchestrator.New(capabilities, orchestrator.OrchestratorConfig{
		SourceLang: cfg.Source,
		TargetLang: cfg.TargetTag().String(),
		Timeout:    cfg.TranslateTimeout,
		Service: translator.ServiceConfig{
			Credentials: cfg.GoogleCredentials,
			ProjectID:   cfg.GoogleProject,
		},
	}, opts...)

	client := horoscope.NewClient(cfg.BaseURL, logger)
	defer client.Close()

	p := pipeline.New(client, orch, presenter.New(cmd.OutOrStdout(), cfg.TargetTag()), logger)
	return p.Run(cmd.Context(), cfg.Request())
}

func init() {
	rootCmd.AddCommand(getCmd)
	addRunFlags(getCmd)
}
