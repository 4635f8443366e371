package main

// atscheck scores a resume document from the command line:
//   go run ./cmd/atscheck --file resume.pdf --role "Data Engineer"

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resume-ats/internal/enhance"
	"resume-ats/internal/extract"
	"resume-ats/internal/parser"
	"resume-ats/internal/scoring"
)

var (
	filePath   string
	targetRole string
	level      string
	asJSON     bool
	doEnhance  bool
)

var rootCmd = &cobra.Command{
	Use:   "atscheck",
	Short: "atscheck parses a resume file and reports its ATS score",
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "path to a PDF, DOCX, or text resume (required)")
	rootCmd.Flags().StringVarP(&targetRole, "role", "r", "", "target role for enhancement and suggestions")
	rootCmd.Flags().StringVarP(&level, "level", "l", "moderate", "enhancement level: conservative, moderate, or aggressive")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")
	rootCmd.Flags().BoolVar(&doEnhance, "enhance", false, "apply enhancement heuristics and show the score delta")
	_ = rootCmd.MarkFlagRequired("file")
}

func run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}

	text, err := extract.TextFromBytes(data, "", filepath.Base(filePath))
	if err != nil {
		return err
	}

	record := parser.Parse(text)
	result := scoring.Score(record)

	if !doEnhance {
		if asJSON {
			return printJSON(map[string]any{"resume": record, "score": result})
		}
		printScore("Score", result)
		return nil
	}

	enhancer := enhance.NewEnhancer(nil)
	enhanced, changes := enhancer.Enhance(context.Background(), record, targetRole, enhance.ParseLevel(level))
	after := scoring.Score(enhanced)

	if asJSON {
		return printJSON(map[string]any{
			"resume":       enhanced,
			"changes":      changes,
			"score_before": result,
			"score_after":  after,
		})
	}

	printScore("Before", result)
	printScore("After", after)
	if len(changes) > 0 {
		fmt.Println("Changes:")
		for _, c := range changes {
			fmt.Printf("  - %s\n", c)
		}
	}
	return nil
}

func printScore(label string, result scoring.Result) {
	fmt.Printf("%s: %d/100 (keywords %d, format %d)\n", label, result.Score, result.KeywordScore, result.FormatScore)
	if len(result.Suggestions) > 0 {
		fmt.Println(strings.Repeat("-", 40))
		for _, s := range result.Suggestions {
			fmt.Printf("  * %s\n", s)
		}
	}
}

func printJSON(payload any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
