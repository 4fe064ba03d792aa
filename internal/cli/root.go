// Package cli wires the interactive menu loop behind a cobra command.
package cli

import (
	"github.com/spf13/cobra"

	"examgen/internal/config"
	"examgen/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "examgen",
	Short: "AI-powered exam preparation question generator",
	Long: `Examgen turns study material into practice questions, flashcards,
and mock exams using a locally running language model.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		svc := services.NewAIService(cfg.APIKey, cfg.Model, cfg.Endpoint)
		sess := services.NewSession()
		return runLoop(cmd.InOrStdin(), cmd.OutOrStdout(), svc, sess, cfg.Model)
	},
}

func Execute() error {
	return rootCmd.Execute()
}
