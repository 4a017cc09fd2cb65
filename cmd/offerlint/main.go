// Copyright 2026 Praxis Legal Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/praxislegal/offerlint"
	"github.com/praxislegal/offerlint/ai"
	"github.com/praxislegal/offerlint/core"
	"github.com/praxislegal/offerlint/engine"
)

func main() {
	app := &cli.App{
		Name:  "offerlint",
		Usage: "Compliance analysis for employment offer letters",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Ingest a jurisdiction rule pack",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the rule database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "pack",
						Aliases:  []string{"p"},
						Usage:    "Path to the JSON rule pack file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
				},
			},
			{
				Name:   "analyze",
				Usage:  "Analyze an offer letter against a jurisdiction's rules",
				Action: analyzeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the rule database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "jurisdiction",
						Aliases:  []string{"j"},
						Usage:    "Jurisdiction code to analyze against",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the plain-text document ('-' for stdin)",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "min-similarity",
						Usage: "Minimum hybrid retrieval score in [0,1]",
						Value: -1,
					},
					&cli.Float64Flag{
						Name:  "min-confidence",
						Usage: "Minimum fused confidence in [0,1]",
						Value: -1,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of rules retrieved per request",
					},
					&cli.BoolFlag{
						Name:  "generative",
						Usage: "Enable the language-model analysis layer",
					},
					&cli.StringFlag{
						Name:  "ai-host",
						Usage: "OpenAI-compatible service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.StringFlag{
						Name:  "analyzer-model",
						Usage: "Analyzer model name",
						Value: "qwen2.5:3b",
					},
				},
			},
			{
				Name:   "jurisdictions",
				Usage:  "List ingested jurisdictions",
				Action: jurisdictionsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the rule database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "remove",
				Usage:  "Remove a jurisdiction and all of its rules",
				Action: removeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the rule database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "jurisdiction",
						Aliases:  []string{"j"},
						Usage:    "Jurisdiction code to remove",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	system, err := offerlint.Open(c.String("db"),
		offerlint.WithAIConfig(ai.NewConfig(
			ai.WithHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
		)),
	)
	if err != nil {
		return fmt.Errorf("failed to open system: %w", err)
	}
	defer system.Close()

	jurisdiction, count, err := system.IngestRulePack(ctx, c.String("pack"))
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Ingested %d rules for %s (%s), rule set version %s\n",
		count, jurisdiction.Name, jurisdiction.Code, jurisdiction.RuleSetVersion)
	return nil
}

func analyzeCommand(c *cli.Context) error {
	ctx := context.Background()

	documentText, err := readDocument(c.String("file"))
	if err != nil {
		return err
	}

	engineConfig := engine.DefaultConfig()
	engineConfig.EnableGenerative = c.Bool("generative")

	system, err := offerlint.Open(c.String("db"),
		offerlint.WithAIConfig(ai.NewConfig(
			ai.WithHost(c.String("ai-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
			ai.WithAnalyzerModel(c.String("analyzer-model")),
		)),
		offerlint.WithEngineConfig(engineConfig),
	)
	if err != nil {
		return fmt.Errorf("failed to open system: %w", err)
	}
	defer system.Close()

	report, err := system.Analyze(ctx, core.Document{
		Text:             documentText,
		JurisdictionCode: c.String("jurisdiction"),
	}, requestOptions(c))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func jurisdictionsCommand(c *cli.Context) error {
	system, err := openOffline(c.String("db"))
	if err != nil {
		return err
	}
	defer system.Close()

	jurisdictions := system.Jurisdictions()
	if len(jurisdictions) == 0 {
		fmt.Fprintln(os.Stderr, "No jurisdictions ingested")
		return nil
	}
	for _, jurisdiction := range jurisdictions {
		fmt.Printf("%s\t%s\t%s\n",
			jurisdiction.Code, jurisdiction.Name, jurisdiction.RuleSetVersion)
	}
	return nil
}

func removeCommand(c *cli.Context) error {
	system, err := openOffline(c.String("db"))
	if err != nil {
		return err
	}
	defer system.Close()

	code := c.String("jurisdiction")
	if err := system.RemoveJurisdiction(context.Background(), code); err != nil {
		return fmt.Errorf("failed to remove jurisdiction %s: %w", code, err)
	}
	fmt.Fprintf(os.Stderr, "Removed jurisdiction %s\n", code)
	return nil
}

// openOffline opens the system for commands that never call the AI
// services, so unreachable hosts do not matter.
func openOffline(dbPath string) (*offerlint.System, error) {
	system, err := offerlint.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open system: %w", err)
	}
	return system, nil
}

// requestOptions maps explicitly set flags onto per-request overrides.
func requestOptions(c *cli.Context) *engine.RequestOptions {
	opts := &engine.RequestOptions{}
	set := false

	if v := c.Float64("min-similarity"); v >= 0 {
		opts.MinSimilarity = &v
		set = true
	}
	if v := c.Float64("min-confidence"); v >= 0 {
		opts.MinConfidence = &v
		set = true
	}
	if v := c.Int("top-k"); v > 0 {
		opts.TopK = &v
		set = true
	}

	if !set {
		return nil
	}
	return opts
}

// readDocument loads the document text from a file or stdin.
func readDocument(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read document from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
