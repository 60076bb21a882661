package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/addrspec/addrspec/pkg/emailaddr"
	"github.com/addrspec/addrspec/pkg/logger"
)

var (
	fastMode bool
	jsonLogs bool
	quiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "addrspec [address ...]",
	Short: "Check email address syntax against RFC 5322",
	Long: `addrspec checks whether each given email address is syntactically valid
per RFC 5322, applying the RFC 5321 length limits. It performs no network
lookups; an address reported as valid may still not exist.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	rootCmd.Flags().BoolVar(&fastMode, "fast", false, "single-pass grammar match, no per-part diagnostics")
	rootCmd.Flags().BoolVar(&jsonLogs, "json", false, "emit diagnostics as JSON")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-rule diagnostics")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := []logger.Option{logger.WithTextFormatter()}
	if jsonLogs {
		opts = []logger.Option{logger.WithJSONFormatter()}
	}
	if quiet {
		opts = append(opts, logger.WithLevel(slog.LevelError))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	v := emailaddr.New(emailaddr.WithLogger(log))

	invalid := 0
	for _, addr := range args {
		ok := false
		if fastMode {
			ok = emailaddr.FastValidate(addr)
		} else {
			ok = v.IsValid(addr)
		}

		if ok {
			fmt.Printf("%s %s\n", color.GreenString("ok"), addr)
		} else {
			fmt.Printf("%s %s\n", color.RedString("invalid"), addr)
			invalid++
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d addresses failed validation", invalid, len(args))
	}
	return nil
}
