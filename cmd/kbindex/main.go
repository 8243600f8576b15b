// Package main implements kbindex, the operator CLI that populates the
// Qdrant knowledge collection from the café's knowledge base.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/whiskerwonders/whiskerbase/internal/config"
	"github.com/whiskerwonders/whiskerbase/internal/embeddings"
	"github.com/whiskerwonders/whiskerbase/internal/indexer"
	"github.com/whiskerwonders/whiskerbase/internal/knowledge"
	"github.com/whiskerwonders/whiskerbase/internal/logging"
	"github.com/whiskerwonders/whiskerbase/internal/qdrant"
	"github.com/whiskerwonders/whiskerbase/internal/vectorstore"
)

var (
	configPath string
	reset      bool
	dryRun     bool

	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kbindex",
	Short: "Index the cat cafe knowledge base into the Qdrant vector store",
	Long: `kbindex embeds every knowledge document and upserts it into the Qdrant
collection used for semantic retrieval.

Examples:
  # Index into the existing collection (created if missing)
  kbindex

  # Drop and rebuild the collection from scratch
  kbindex --reset

  # Show what would be indexed without touching the index
  kbindex --dry-run`,
	Version: version,
	RunE:    runIndex,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.Flags().BoolVarP(&reset, "reset", "r", false, "reset the collection before indexing (deletes all existing vectors)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be indexed without actually indexing")
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(&cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	base := knowledge.NewBase(nil, logger)

	var store indexer.Store
	if !dryRun {
		embedder := embeddings.NewService(embeddings.Config{
			APIKey:  cfg.Embedding.APIKey.Value(),
			Model:   cfg.Embedding.Model,
			BaseURL: cfg.Embedding.BaseURL,
			Timeout: cfg.Embedding.Timeout.Duration(),
		})

		client, err := qdrant.NewGRPCClient(&cfg.Qdrant, logger)
		if err != nil {
			return fmt.Errorf("connecting to qdrant: %w", err)
		}
		defer client.Close() //nolint:errcheck

		index, err := vectorstore.NewIndex(client, embedder, cfg.Index, logger)
		if err != nil {
			return err
		}
		store = index
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Cat Cafe Knowledge Base Indexer")
	fmt.Fprintln(out)

	report, err := indexer.Run(ctx, base, store, indexer.Options{
		Reset:  reset,
		DryRun: dryRun,
		OnProgress: func(current, total int) {
			fmt.Fprintf(out, "\rEmbedding documents... %d/%d", current, total)
			if current == total {
				fmt.Fprintln(out)
			}
		},
	}, logger)

	fmt.Fprintln(out, "Documents by category:")
	for _, row := range report.ByCategory {
		fmt.Fprintf(out, "  %-12s %d\n", row.Category, row.Count)
	}
	fmt.Fprintf(out, "Total: %d documents\n", report.Total)

	if err != nil {
		return err
	}

	if report.DryRun {
		fmt.Fprintln(out, "Dry run mode - no changes made.")
		return nil
	}

	fmt.Fprintf(out, "Successfully indexed %d documents into the vector store.\n", report.Indexed)
	return nil
}
