package cmd

import (
	"fmt"
	"strings"

	"github.com/spigell/resume-analyzer/internal/catalog"
	"github.com/spigell/resume-analyzer/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the skills catalog used for matching",
	RunE: func(*cobra.Command, []string) error {
		return printCatalog()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func printCatalog() error {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}

	cat, source, err := catalog.Resolve(viper.GetString("skills"))
	if err != nil {
		return err
	}

	if source == "" {
		source = "built-in"
	}
	log.Debug("resolved skills catalog", zap.String("source", source))

	for _, c := range cat.Categories {
		fmt.Printf("%s: %s\n", c.Name, strings.Join(c.Skills, ", "))
	}

	return nil
}
