package main

import (
	"fmt"
	"io"

	"github.com/mwhite7112/woodpantry-household/internal/category"
	"github.com/mwhite7112/woodpantry-household/internal/ingredientline"
	"github.com/mwhite7112/woodpantry-household/internal/service"
	"github.com/spf13/cobra"
)

type parsedLine struct {
	Input string `json:"line"`
	ingredientline.Line
	Category string `json:"category,omitempty"`
}

func newParseCmd() *cobra.Command {
	var keywordsFile string

	cmd := &cobra.Command{
		Use:   "parse [lines...]",
		Short: "Parse ingredient lines given as arguments or on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				lines = service.SplitLines(string(b))
			}

			var categorizer category.Categorizer = category.Default()
			if keywordsFile != "" {
				c, err := category.Load(keywordsFile)
				if err != nil {
					return err
				}
				categorizer = c
			}

			out := make([]parsedLine, 0, len(lines))
			for _, l := range lines {
				p := parsedLine{Input: l, Line: ingredientline.Parse(l)}
				if p.Name != "" {
					p.Category = categorizer.Categorize(p.Name)
				}
				out = append(out, p)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&keywordsFile, "keywords", "", "YAML category keyword table")
	return cmd
}
