package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/josephlewis42/minish/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the session event log.",
}

var reportCommand = &cobra.Command{
	Use:   "report [LOG]",
	Short: "Show a report of events, from the configured log unless one is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fd, err := openReportLog(args)
		if err != nil {
			return err
		}
		defer fd.Close()

		report, err := buildReport(fd)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func openReportLog(args []string) (io.ReadCloser, error) {
	if len(args) > 0 {
		return os.Open(args[0])
	}

	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return config.ReadAppLog()
}

func buildReport(r io.Reader) (*logger.Report, error) {
	report := logger.NewReport()
	if err := logger.ReadJSONLinesLog(r, report.Update); err != nil {
		return nil, err
	}
	return report, nil
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)
}
