package mcp

import (
	"context"
	"slices"

	"exkit/internal/stats"
	"exkit/internal/text"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

func handleSummarize(_ context.Context, _ *mcp.CallToolRequest, in SummarizeInput) (*mcp.CallToolResult, SummarizeOutput, error) {
	summary, err := stats.Summarize(in.Values)
	if err != nil {
		log.Warn().Err(err).Int("values", len(in.Values)).Msg("summarize_sample rejected input")
		return nil, SummarizeOutput{}, err
	}

	keys := make([]int, 0, len(summary.Frequencies))
	for k := range summary.Frequencies {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	freqs := make([]ValueCount, 0, len(keys))
	for _, k := range keys {
		freqs = append(freqs, ValueCount{Value: k, Count: summary.Frequencies[k]})
	}

	log.Debug().Int("median", summary.Median).Int("mode", summary.Mode).Msg("summarize_sample")
	return nil, SummarizeOutput{
		Median:      summary.Median,
		Mode:        summary.Mode,
		Sample:      summary.Sample,
		Frequencies: freqs,
	}, nil
}

func handlePigLatin(_ context.Context, _ *mcp.CallToolRequest, in PigLatinInput) (*mcp.CallToolResult, PigLatinOutput, error) {
	log.Debug().Int("words", len(in.Words)).Msg("pig_latin")
	return nil, PigLatinOutput{Words: text.PigLatinAll(in.Words)}, nil
}

func handleWordFrequency(_ context.Context, _ *mcp.CallToolRequest, in WordFrequencyInput) (*mcp.CallToolResult, WordFrequencyOutput, error) {
	ranked := text.RankWords(text.CountWords(in.Text))
	out := WordFrequencyOutput{Counts: make([]WordCountOutput, 0, len(ranked))}
	for _, wc := range ranked {
		out.Counts = append(out.Counts, WordCountOutput{Word: wc.Word, Count: wc.Count})
	}
	log.Debug().Int("distinct", len(out.Counts)).Msg("word_frequency")
	return nil, out, nil
}
