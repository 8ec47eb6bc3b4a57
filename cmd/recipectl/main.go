// Command recipectl exercises the ingredient line parser and the recipe page
// extractor from the command line.
package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mwhite7112/woodpantry-household/internal/logging"
	"github.com/spf13/cobra"
)

const appName = "recipectl"

var appVersion = "dev"

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "Parse ingredient lines and extract recipes from web pages",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(logging.New(cmd.ErrOrStderr(), level))
		},
	}
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose logging")

	root.AddCommand(newParseCmd(), newExtractCmd())
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	_ = godotenv.Load()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
