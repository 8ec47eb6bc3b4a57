package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mwhite7112/woodpantry-household/internal/scrape"
	"github.com/spf13/cobra"
)

type extractOutput struct {
	scrape.Recipe
	Servings int `json:"servings"`
}

func newExtractCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "extract <file|url>",
		Short: "Extract the schema.org recipe from a saved page or a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := args[0]

			var page []byte
			if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
				cfg := scrape.DefaultClientConfig()
				if timeout > 0 {
					cfg.Timeout = timeout
				}
				b, err := scrape.NewClient(cfg).Fetch(cmd.Context(), src)
				if err != nil {
					return err
				}
				page = b
			} else {
				b, err := os.ReadFile(src)
				if err != nil {
					return fmt.Errorf("read page: %w", err)
				}
				page = b
			}

			rec, err := scrape.Extract(page)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), extractOutput{
				Recipe:   rec,
				Servings: scrape.ParseServings(rec.Yield),
			})
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-request timeout, e.g. 10s")
	return cmd
}
