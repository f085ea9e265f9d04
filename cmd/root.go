package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-analyzer"
)

var rootCmd = &cobra.Command{
	Use:          app,
	Short:        "resume-analyzer is a simple cli for extracting skill insights from resume files",
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("skills", "RESUME_ANALYZER_SKILLS_FILE"); err != nil {
		log.Fatalf("binding RESUME_ANALYZER_SKILLS_FILE environment variable: %v", err)
	}

	rootCmd.PersistentFlags().StringP("skills", "s", "", "a custom skills file (default is skills.yaml or skills_db.json in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("skills", rootCmd.PersistentFlags().Lookup("skills"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}
