package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"chem-synthesis-be/internal/config"
	"chem-synthesis-be/internal/constant"
	"chem-synthesis-be/internal/mapper"
	"chem-synthesis-be/pkg/llm"
	"chem-synthesis-be/pkg/llm/perplexity"
	"chem-synthesis-be/pkg/synthesis"
)

// Standalone lookup: same three steps as the HTTP endpoint, printed to the
// terminal instead of served. Useful for checking a CAS number without
// standing up the server.

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

func main() {
	casNumber := flag.String("cas", "", "CAS registry number (e.g. 64-17-5)")
	raw := flag.Bool("raw", false, "print the raw completion reply instead of parsed records")
	flag.Parse()

	if *casNumber == "" {
		color.Red("Usage: lookup -cas <cas_number> [-raw]")
		os.Exit(1)
	}
	if !synthesis.IsValidCASNumber(*casNumber) {
		color.Red("Invalid CAS number format. Expected format: XXXXXXX-XX-X")
		os.Exit(1)
	}

	cfg := config.Load()
	provider := perplexity.NewPerplexityProvider(cfg.Keys.Perplexity, cfg.Ai.LLMBaseURL, cfg.Ai.LLMModel)

	history := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.SynthesisSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: synthesis.BuildPrompt(*casNumber)},
	}

	color.Cyan("Querying %s for CAS %s...", cfg.Ai.LLMProvider, *casNumber)

	replyText, err := provider.Chat(context.Background(), history, llm.WithSearchFilter("academic"))
	if err != nil {
		color.Red("Lookup failed: %v", err)
		os.Exit(1)
	}

	if *raw {
		fmt.Println(replyText)
		return
	}

	records := synthesis.NewExtractor(nil).Extract(replyText)
	if len(records) == 0 {
		color.Yellow("No synthesis information found for CAS %s", *casNumber)
		os.Exit(1)
	}

	color.Green("Found %d synthesis method(s):", len(records))
	prettyPrint(mapper.ToSynthesisRecordDTOs(records))
}
