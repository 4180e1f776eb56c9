package main

import (
	"fmt"

	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/maxaizer/vacancy-saver/internal/services"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search vacancies and save them to the document",
	Long: "Fetches up to --quantity vacancies for --keyword from the chosen provider. " +
		"The document is replaced unless --append is given.",
	RunE: runSearch,
}

var (
	searchProvider string
	searchKeyword  string
	searchQuantity int
	searchAppend   bool
)

func init() {
	searchCmd.Flags().StringVarP(&searchProvider, "provider", "p", "hh", "Provider: hh (1) or sj (2)")
	searchCmd.Flags().StringVarP(&searchKeyword, "keyword", "k", "", "Search keyword (required)")
	searchCmd.Flags().IntVarP(&searchQuantity, "quantity", "n", 10, "Number of vacancies to fetch")
	searchCmd.Flags().BoolVarP(&searchAppend, "append", "a", false, "Merge results into the existing document")

	if err := searchCmd.MarkFlagRequired("keyword"); err != nil {
		panic(fmt.Sprintf("failed to mark keyword flag as required: %v", err))
	}

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {

	provider, err := entities.ProviderFrom(searchProvider)
	if err != nil {
		return err
	}

	result, err := application.service.Search(cmd.Context(), provider, searchKeyword, searchQuantity)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if result.Found() == 0 {
		cmd.Println("По ключевому слову не найдено вакансий")
		return nil
	}

	mode := services.Overwrite
	if searchAppend {
		mode = services.Append
	}
	if err = application.service.Save(result.Vacancies, mode); err != nil {
		return fmt.Errorf("failed to save vacancies: %w", err)
	}

	cmd.Printf("Найдено %d вакансий, сохранено в %s\n", result.Found(), application.cfg.Storage.File)
	return nil
}
