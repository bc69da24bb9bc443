// Package app wires the pomodoro command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomodoro app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "pomodoro",
		Usage: `
		A Pomodoro timer for the command-line. Focus sessions alternate with
		short breaks, and every cycle of sessions ends with a long break.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the timer in the background and accept commands over HTTP",
				Action: serveAction,
			},
			{
				Name:   "start",
				Usage:  "Start or resume the timer",
				Action: startAction,
			},
			{
				Name:   "pause",
				Usage:  "Pause the timer",
				Action: pauseAction,
			},
			{
				Name:   "reset",
				Usage:  "Stop the timer and return to the first focus session",
				Action: resetAction,
			},
			{
				Name:   "set",
				Usage:  "Change the phase lengths, the cycle length, or auto-start",
				Action: setAction,
				Flags: []cli.Flag{
					focusFlag,
					breakFlag,
					longBreakFlag,
					sessionsFlag,
					autoStartFlag,
				},
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
				Flags:  []cli.Flag{jsonFlag},
			},
			{
				Name:   "history",
				Usage:  "List completed phases. Defaults to the last 7 days",
				Action: historyAction,
				Flags:  []cli.Flag{sinceFlag, untilFlag, jsonFlag},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			disableNotificationFlag,
			soundFlag,
			cmdFlag,
			addrFlag,
			logLevelFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}
}
