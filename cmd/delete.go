package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete saved vacancies by exact name and town",
	RunE:  runDelete,
}

var (
	deleteName string
	deleteTown string
)

func init() {
	deleteCmd.Flags().StringVar(&deleteName, "name", "", "Vacancy name (required)")
	deleteCmd.Flags().StringVar(&deleteTown, "town", "", "Vacancy town (required)")

	for _, flag := range []string{"name", "town"} {
		if err := deleteCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, _ []string) error {
	removed, err := application.service.Delete(deleteName, deleteTown)
	if err != nil {
		return fmt.Errorf("failed to delete vacancy: %w", err)
	}

	cmd.Printf("Удалено вакансий: %d\n", removed)
	return nil
}
