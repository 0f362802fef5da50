package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"taglog/internal/config"
	"taglog/logger"
)

// newRootCmd はルートコマンドを作成する
func newRootCmd() *cobra.Command {
	cfg := config.FromEnv()

	rootCmd := &cobra.Command{
		Use:   "taglog [flags] <level> [message...]",
		Short: "Write a leveled, tagged log line",
		Long: `taglog writes one line in the form

  <LABEL> <YYYY-MM-DD HH:MM:SS>[ <tag>] -[ <message...>]

INFO, DEBUG and WARN go to stdout, ERROR goes to stderr. Lines below
--min-level are dropped. Defaults come from TAGLOG_LEVEL and TAGLOG_TAG.`,
		Example: `  taglog info "service started"
  taglog --tag db.pool warn slow query 1.2s
  TAGLOG_LEVEL=error taglog debug "dropped"`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(cmd, cfg, args[0], args[1:])
		},
	}

	// <level> 以降はすべてメッセージとして扱う
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().StringVar(&cfg.Level, "min-level", cfg.Level, "threshold level (none, info, debug, warn, error)")
	rootCmd.Flags().StringVar(&cfg.Tag, "tag", cfg.Tag, "tag printed after the timestamp")
	rootCmd.Flags().BoolVar(&cfg.NoTag, "no-tag", false, "omit the tag segment")

	rootCmd.AddCommand(newLevelsCmd())

	return rootCmd
}

// runWrite は1行のログを出力する
func runWrite(cmd *cobra.Command, cfg config.Config, levelArg string, messages []string) error {
	lc, err := cfg.ToLoggerConfig()
	if err != nil {
		return errors.Wrap(err, "設定エラー")
	}

	level, err := logger.ParseLevel(levelArg)
	if err != nil {
		return err
	}

	l, err := logger.Create(lc, logger.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	args := make([]any, len(messages))
	for i, m := range messages {
		args[i] = m
	}
	return l.Write(level, args...)
}

// newLevelsCmd はレベル一覧コマンドを作成する
func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the levels in severity order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, l := range logger.Levels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s %s\n", int(l), l.Label(), l)
			}
		},
	}
}
