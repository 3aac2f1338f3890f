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
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "horoscope [sign]",
	Short: "Daily horoscope with automatic translation",
	Long: `Fetches a horoscope from the public horoscope API and translates it,
falling back to the original English text when no translation service succeeds.

Without arguments the daily horoscope for libra is shown in Portuguese.

Configuration is read from flags, HOROSCOPE_* environment variables (a .env file is
loaded first), and horoscope.yaml in the current directory or $HOME/.horoscope.

Translation services, tried in order:
  - mymemory    MyMemory (free, default)
  - google      Google Cloud Translation (credentials file or ADC)
  - ollama      Ollama LLM (self-hosted)`,
	Version:      version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runHoroscope,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default is ./horoscope.yaml or $HOME/.horoscope/horoscope.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level written to stderr: debug, info, warn, error")

	addRunFlags(rootCmd)
}
