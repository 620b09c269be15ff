package mcp

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SummarizeInput is the argument of the summarize_sample tool.
type SummarizeInput struct {
	Values []int `json:"values" jsonschema:"integers to summarize; must not be empty"`
}

// ValueCount is one row of a frequency table.
type ValueCount struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

// SummarizeOutput is the result of the summarize_sample tool.
type SummarizeOutput struct {
	Median      int          `json:"median" jsonschema:"lower-middle element of the sorted sample"`
	Mode        int          `json:"mode" jsonschema:"most frequent value; smallest value wins ties"`
	Sample      []int        `json:"sample" jsonschema:"the sample sorted ascending"`
	Frequencies []ValueCount `json:"frequencies" jsonschema:"occurrence count per value, ascending by value"`
}

// PigLatinInput is the argument of the pig_latin tool.
type PigLatinInput struct {
	Words []string `json:"words" jsonschema:"words to convert"`
}

// PigLatinOutput is the result of the pig_latin tool.
type PigLatinOutput struct {
	Words []string `json:"words"`
}

// WordFrequencyInput is the argument of the word_frequency tool.
type WordFrequencyInput struct {
	Text string `json:"text" jsonschema:"text split on whitespace"`
}

// WordFrequencyOutput is the result of the word_frequency tool.
type WordFrequencyOutput struct {
	Counts []WordCountOutput `json:"counts" jsonschema:"count descending, then word ascending"`
}

// WordCountOutput is one row of a word-frequency report.
type WordCountOutput struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

func registerTools(srv *mcp.Server) error {
	summarizeSchema, err := jsonschema.For[SummarizeInput](nil)
	if err != nil {
		return err
	}
	pigLatinSchema, err := jsonschema.For[PigLatinInput](nil)
	if err != nil {
		return err
	}
	wordFreqSchema, err := jsonschema.For[WordFrequencyInput](nil)
	if err != nil {
		return err
	}

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "summarize_sample",
		Description: "Compute the median (lower middle for even sizes) and the mode (smallest value among ties) of a list of integers.",
		InputSchema: summarizeSchema,
	}, handleSummarize)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "pig_latin",
		Description: "Convert words to pig latin: vowel-initial words get '-hay', others move the first letter to the end followed by 'ay'.",
		InputSchema: pigLatinSchema,
	}, handlePigLatin)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "word_frequency",
		Description: "Count the whitespace-separated words of a text.",
		InputSchema: wordFreqSchema,
	}, handleWordFrequency)

	return nil
}
