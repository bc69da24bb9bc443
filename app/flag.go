package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a phase is completed",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Path to an mp3, ogg, flac, or wav file to play when a phase ends. Disable sound by setting to 'off'",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after each phase",
	}

	addrFlag = &cli.StringFlag{
		Name:  "addr",
		Usage: "Address of the timer server (default: 127.0.0.1:47321)",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "One of debug, info, warn, or error",
	}

	focusFlag = &cli.IntFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus session length in minutes (default: 25)",
	}

	breakFlag = &cli.IntFlag{
		Name:    "break",
		Aliases: []string{"b"},
		Usage:   "Short break length in minutes (default: 5)",
	}

	longBreakFlag = &cli.IntFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break length in minutes (default: 15)",
	}

	sessionsFlag = &cli.IntFlag{
		Name:    "sessions",
		Aliases: []string{"n"},
		Usage:   "The number of focus sessions in a cycle (default: 4)",
	}

	autoStartFlag = &cli.BoolFlag{
		Name:    "auto-start",
		Aliases: []string{"a"},
		Usage:   "Start the next phase automatically. Use --auto-start=false to turn it off",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include sessions completed after this time (e.g. '2 days ago', 'last monday')",
		Value: "7 days ago",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include sessions completed before this time",
	}
)
