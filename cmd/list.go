package main

import (
	"fmt"
	"strings"

	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print saved vacancies",
	RunE:  runList,
}

var listSort string

func init() {
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "none", "Order by salary: none, asc or desc")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {

	var vacancies []entities.Vacancy
	var err error

	switch listSort {
	case "none":
		vacancies, err = application.service.List()
	case "asc":
		vacancies, err = application.service.Sorted(false)
	case "desc":
		vacancies, err = application.service.Sorted(true)
	default:
		return fmt.Errorf("unknown sort order %q", listSort)
	}
	if err != nil {
		return fmt.Errorf("failed to read vacancies: %w", err)
	}

	for _, vacancy := range vacancies {
		cmd.Println(vacancy.String())
		cmd.Println(strings.Repeat("-", 50))
	}
	return nil
}
