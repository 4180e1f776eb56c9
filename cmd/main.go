package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/maxaizer/vacancy-saver/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	storageFile string
	application *app
)

var rootCmd = &cobra.Command{
	Use:   "vacancy-saver",
	Short: "Search HeadHunter and SuperJob vacancies and keep them in a JSON file",
	Long: "vacancy-saver fetches vacancies from HeadHunter and SuperJob, normalizes them into one format " +
		"and stores them in a local JSON document that can be listed, sorted by salary and cleaned up.\n" +
		"Run without a subcommand to start the interactive menu.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		application, err = newApp(configPath, storageFile)
		return err
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		logger.Cleanup()
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default ./configs/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&storageFile, "file", "f", "", "Path to the vacancies JSON document")
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
