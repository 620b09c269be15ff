package commands

import (
	"fmt"
	"strings"

	"exkit/internal/config"
	"exkit/internal/report"
	"exkit/internal/stats"
	"exkit/internal/text"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newMedianModeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "median-mode [integers...]",
		Aliases: []string{"stats"},
		Short:   "Print the median and mode of a list of integers",
		Long: `Print the median and mode of a list of integers.

The median of an even-sized sample is the lower of the two middle values.
When several values share the highest count, the smallest is reported as mode.`,
		Example: "  exkit median-mode 1 1 2 4 3\n  exkit median-mode 5,3",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := opts.cfg.Sample
			if len(args) > 0 {
				parsed, err := stats.ParseValues(args)
				if err != nil {
					return err
				}
				values = parsed
			}

			summary, err := stats.Summarize(values)
			if err != nil {
				return err
			}
			log.Debug().Int("size", len(summary.Sample)).Msg("Sample summarized")

			if opts.output == config.OutputJSON {
				return report.JSON(cmd.OutOrStdout(), summary)
			}
			return report.Summary(cmd.OutOrStdout(), summary)
		},
	}
}

func newPigLatinCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "pig-latin [words...]",
		Aliases: []string{"piglatin"},
		Short:   "Convert words to pig latin",
		Example: "  exkit pig-latin first apple banana",
		RunE: func(cmd *cobra.Command, args []string) error {
			words := opts.cfg.Words
			if len(args) > 0 {
				words = splitWords(args)
			}

			converted := text.PigLatinAll(words)
			if opts.output == config.OutputJSON {
				return report.JSON(cmd.OutOrStdout(), converted)
			}
			return report.PigLatin(cmd.OutOrStdout(), converted)
		},
	}
}

func newWordFreqCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "word-freq [text...]",
		Aliases: []string{"wordfreq"},
		Short:   "Count word occurrences in a text",
		Example: "  exkit word-freq \"hello world yay hello\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := opts.cfg.Text
			if len(args) > 0 {
				input = strings.Join(args, " ")
			}

			ranked := text.RankWords(text.CountWords(input))
			if opts.output == config.OutputJSON {
				return report.JSON(cmd.OutOrStdout(), ranked)
			}
			return report.WordFrequency(cmd.OutOrStdout(), ranked)
		},
	}
}

func newAllCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run all three programs on their configured inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runAll(opts.cfg)
			if err != nil {
				return err
			}
			if opts.output == config.OutputJSON {
				return report.JSON(cmd.OutOrStdout(), r)
			}
			return report.Text(cmd.OutOrStdout(), r)
		},
	}
}

// runAll computes the three reports concurrently. Each goroutine owns one field of the report.
func runAll(cfg *config.AppConfig) (report.Report, error) {
	var r report.Report
	var g errgroup.Group

	g.Go(func() error {
		summary, err := stats.Summarize(cfg.Sample)
		if err != nil {
			return fmt.Errorf("median-mode: %w", err)
		}
		r.Summary = &summary
		return nil
	})
	g.Go(func() error {
		r.PigLatin = text.PigLatinAll(cfg.Words)
		return nil
	})
	g.Go(func() error {
		r.WordCount = text.RankWords(text.CountWords(cfg.Text))
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.Report{}, err
	}
	return r, nil
}

func splitWords(args []string) []string {
	return strings.Fields(strings.Join(args, " "))
}
