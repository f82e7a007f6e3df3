package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/josephlewis42/minish/core/config"
	"github.com/josephlewis42/minish/core/logger"
	"github.com/josephlewis42/minish/core/shell"
	"github.com/josephlewis42/minish/core/vos"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var cfgPath string

// exitStatus holds the status of the last interactive session.
var exitStatus int

func loadConfig() (*config.Configuration, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}

	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minish",
	Short: "Minimal interactive command interpreter",
	Long: `Reads command lines, finds the named program on PATH and runs it,
waiting for it to finish before prompting again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		exitStatus, err = runShell(cmd, configuration)
		return err
	},
}

func runShell(cmd *cobra.Command, configuration *config.Configuration) (int, error) {
	hostOS := vos.NewHostOS(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	eventLog, closeLog, err := openEventLog(configuration)
	if err != nil {
		return 1, err
	}
	defer closeLog()

	var reader shell.LineReader
	if isTerminal(hostOS.Stdin()) {
		readlineReader, err := shell.NewReadlineReader(hostOS, configuration.HistoryPath())
		if err != nil {
			return 1, err
		}
		defer readlineReader.Close()
		reader = readlineReader
	}

	sh := shell.NewShell(hostOS, shell.Config{
		Prompt: configuration.Prompt,
		Reader: reader,
		Logger: eventLog.NewSession(),
		Color:  shell.ShouldColor(configuration.Color, isTerminal(hostOS.Stderr())),
	})

	return sh.Run(), nil
}

// openEventLog opens the configured session event log, events are discarded
// if there isn't one.
func openEventLog(configuration *config.Configuration) (*logger.Logger, func(), error) {
	if !configuration.AppLogEnabled() {
		return logger.NewNop(), func() {}, nil
	}

	fd, err := configuration.OpenAppLog()
	if err != nil {
		return nil, nil, err
	}

	eventLog, err := logger.NewJSONLinesLogger(fd, configuration.LogLevel)
	if err != nil {
		fd.Close()
		return nil, nil, err
	}

	return eventLog, func() {
		_ = eventLog.Sync()
		fd.Close()
	}, nil
}

func isTerminal(stream interface{}) bool {
	fd, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(fd.Fd()))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// The returned value is the exit status of the process.
func Execute() int {
	cobra.CheckErr(rootCmd.Execute())
	return exitStatus
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config directory, built-in defaults are used if unset")
}
