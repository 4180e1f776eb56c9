package main

import (
	"context"
	"errors"
	"os"

	"github.com/maxaizer/vacancy-saver/internal/menu"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	m, err := menu.New(application.bus, application.service, os.Stdin, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err = m.Run(cmd.Context()); errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
