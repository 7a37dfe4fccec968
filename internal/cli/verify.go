package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"memoscan/internal/llm"
	"memoscan/internal/model"
	"memoscan/internal/pipeline"
)

var (
	sourcePath  string
	fieldsPath  string
	memoPath    string
	companyName string
	outJSON     string
	outMD       string
	runTimeout  time.Duration
	llmProvider string
	llmModel    string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify AI-generated fields and memo sections against source documents",
	Long: `Verify judges AI-generated company data against the source corpus:
- Indexes the source text by document and page
- Segments the memo into its named sections
- Judges each field value and each section against selected source context
- Resolves every finding back to a source document and page
- Writes a scored JSON/Markdown report

Example:
  memoscan verify --source corpus.txt --fields fields.json --company "Acme Corp"
  memoscan verify --source corpus.txt --memo memo.txt --json report.json --md report.md
  memoscan verify --source corpus.txt --fields fields.json --llm-provider openai --llm-model gpt-4o-mini`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	// Input flags
	verifyCmd.Flags().StringVar(&sourcePath, "source", "", "path to the concatenated source text with page markers (required)")
	verifyCmd.Flags().StringVar(&fieldsPath, "fields", "", "path to the AI-generated fields JSON")
	verifyCmd.Flags().StringVar(&memoPath, "memo", "", "path to the AI-generated memo (plain text or HTML)")
	verifyCmd.Flags().StringVar(&companyName, "company", "", "company name for the report header")
	_ = verifyCmd.MarkFlagRequired("source")

	// Output flags
	verifyCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	verifyCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Run flags
	verifyCmd.Flags().DurationVar(&runTimeout, "timeout", 15*time.Minute, "overall run timeout (one judgment call per field and section)")

	// LLM flags
	verifyCmd.Flags().StringVar(&llmProvider, "llm-provider", "anthropic", "judgment provider (openai, anthropic, ollama)")
	verifyCmd.Flags().StringVar(&llmModel, "llm-model", "", "judgment model name (provider default if empty)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	sourceText, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	fields := map[model.FieldID]string{}
	if fieldsPath != "" {
		fields, err = loadFields(fieldsPath)
		if err != nil {
			return fmt.Errorf("read fields: %w", err)
		}
	}

	memo := ""
	if memoPath != "" {
		data, err := os.ReadFile(memoPath)
		if err != nil {
			return fmt.Errorf("read memo: %w", err)
		}
		memo = string(data)
	}

	if fieldsPath == "" && memoPath == "" {
		return fmt.Errorf("nothing to verify: provide --fields, --memo, or both")
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.Output.Verbose = verbose

	// Get API key from environment
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		baseURL := os.Getenv("OLLAMA_BASE_URL")
		if baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	judge, err := llm.NewJudge(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return fmt.Errorf("initialize judge: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Company: %s\n", companyName)
		fmt.Fprintf(os.Stderr, "Judge: %s\n", judge.Name())
		fmt.Fprintf(os.Stderr, "Fields to verify: %d\n", len(fields))
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.New(judge, cfg.Verify, verbose)

	report, err := p.Run(ctx, pipeline.Input{
		Company:    companyName,
		SourceText: string(sourceText),
		Fields:     fields,
		Memo:       memo,
	})
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if err := p.RenderReport(report, outJSON, outMD); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// loadFields reads the AI-generated fields JSON. Unknown keys and
// metadata keys (underscore-prefixed) are skipped; non-string values
// are rendered with their default formatting.
func loadFields(path string) (map[model.FieldID]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse fields JSON: %w", err)
	}

	known := make(map[model.FieldID]bool, len(model.Fields()))
	for _, f := range model.Fields() {
		known[f] = true
	}

	fields := make(map[model.FieldID]string)
	for key, value := range raw {
		if strings.HasPrefix(key, "_") {
			continue
		}
		id := model.FieldID(key)
		if !known[id] {
			continue
		}
		switch v := value.(type) {
		case string:
			fields[id] = v
		case nil:
			fields[id] = ""
		default:
			fields[id] = fmt.Sprintf("%v", v)
		}
	}

	return fields, nil
}
