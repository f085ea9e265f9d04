package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spigell/resume-analyzer/internal/analyzer"
	"github.com/spigell/resume-analyzer/internal/catalog"
	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/resume"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptExit       = "Exit"
	PromptCoverage   = "Report coverage by category"
	PromptDumpReport = "Dump report to file"

	textPreviewLimit = 200
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptExit, PromptCoverage, PromptDumpReport},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume and print skill insights",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolP("interactive", "i", false, "offer follow-up actions after printing the report")
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command, path string) error {
	log, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}

	log.Info("starting the resume-analyzer", zap.String("version", version))

	cat, source, err := catalog.Resolve(viper.GetString("skills"))
	if err != nil {
		return err
	}

	if source == "" {
		log.Debug("using the built-in skills catalog")
	} else {
		log.Info("loaded skills catalog",
			zap.String("file", source),
			zap.Int("categories", cat.Len()),
			zap.Int("skills", cat.SkillCount()),
		)
	}

	log.Info("analyzing resume", zap.String("file", path))

	text, err := resume.ExtractText(path)
	if err != nil {
		return err
	}

	log.Debug("extracted resume text",
		zap.Int("length", len(text)),
		zap.String("preview", logger.TruncateForLog(text, textPreviewLimit)),
	)

	counts := analyzer.Match(text, cat)
	suggestions := analyzer.Suggest(counts, cat)
	report := analyzer.NewReport(path, counts, suggestions)

	log.Info("analysis finished",
		zap.Int("matched_skills", len(counts)),
		zap.Int("suggestions", len(suggestions)),
	)

	fmt.Println(report)

	if interactive, _ := cmd.Flags().GetBool("interactive"); !interactive {
		return nil
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		if err := handleAction(action, report, cat, log); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
	}
}

func handleAction(action string, report *analyzer.Report, cat *catalog.Catalog, log *zap.Logger) error {
	switch action {
	case PromptExit:
		return errExit
	case PromptCoverage:
		pretty, _ := json.MarshalIndent(report.CoverageByCategory(cat), "", "  ")
		fmt.Println(string(pretty))
		return nil
	case PromptDumpReport:
		filename, err := report.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		log.Info("dumped report to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
