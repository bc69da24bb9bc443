package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Sound         string
	Cmd           string
	Addr          string
	LogLevel      string
	DisableNotify bool
}

// WithCLIConfig returns an Option that overrides the file configuration with
// any flags set on the command line.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Sound:         ctx.String("sound"),
			Cmd:           ctx.String("cmd"),
			Addr:          ctx.String("addr"),
			LogLevel:      ctx.String("log-level"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Sound != "" {
		c.Notifications.Sound = opts.Sound
	}

	if opts.Cmd != "" {
		c.Notifications.Cmd = opts.Cmd
	}

	if opts.Addr != "" {
		c.Server.Addr = opts.Addr
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}
}
