package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zaidbabid/muda"
	"github.com/zaidbabid/muda/internal/config"
	"github.com/zaidbabid/muda/internal/logging"
)

// commandContext carries state resolved once per invocation.
type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	cfg    *config.Config
	logger *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
		logger:        logging.NewNop(),
	}
}

// setup loads configuration, applies log flag overrides and installs the
// logger for the library.
func (c *commandContext) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return err
	}

	var level, format string
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		level = *c.logLevelFlag
	}
	if flags.Changed("log-format") {
		format = *c.logFormatFlag
	}
	cfg.ApplyLogOverrides(level, format)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logger
	muda.SetLogger(logger)
	return nil
}

func (c *commandContext) config() *config.Config {
	if c.cfg == nil {
		cfg := config.Default()
		c.cfg = &cfg
	}
	return c.cfg
}
