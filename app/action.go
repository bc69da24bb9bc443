package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/internal/command"
	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/internal/engine"
	"github.com/ayoisaiah/pomodoro/internal/logger"
	"github.com/ayoisaiah/pomodoro/internal/osutil"
	"github.com/ayoisaiah/pomodoro/internal/pathutil"
	"github.com/ayoisaiah/pomodoro/internal/timeutil"
	"github.com/ayoisaiah/pomodoro/internal/ui"
	"github.com/ayoisaiah/pomodoro/report"
	"github.com/ayoisaiah/pomodoro/store"
	"github.com/ayoisaiah/pomodoro/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envPomodoroNoColor = "POMODORO_NO_COLOR"

	settingsSavedMsg = "Settings saved successfully!"
	notServingMsg    = "No timer is running in the background. The countdown resumes when 'pomodoro' or 'pomodoro serve' is started"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// prepare loads the configuration and opens the log file. The returned
// closer must be closed when the action returns.
func prepare(ctx *cli.Context) (*config.Config, *slog.Logger, io.Closer, error) {
	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	log, closer := logger.New(pathutil.LogFilePath(), cfg.Log.Level)
	slog.SetDefault(log)

	return cfg, log, closer, nil
}

// withHandler calls fn with a handler for the timer. If another process owns
// the timer, requests are sent to its server. Otherwise the timer is loaded
// in this process for the duration of the call.
func withHandler(
	ctx *cli.Context,
	fn func(h command.Handler, history sessionLister) error,
) error {
	cfg, log, closer, err := prepare(ctx)
	if err != nil {
		return err
	}

	defer closer.Close()

	inst, err := openInstance(ctx.Context, pathutil.DBFilePath(), cfg, log)
	if store.IsLocked(err) {
		client := command.NewClient(cfg.Server.Addr)

		return fn(client, client)
	}

	if err != nil {
		return err
	}

	err = fn(inst.dispatcher(), inst.db)

	if err == nil && inst.engine.Snapshot().State.Running {
		report.Notice(notServingMsg)
	}

	if closeErr := inst.Close(); closeErr != nil {
		log.Error("unable to close timer", slog.Any("error", closeErr))
	}

	return err
}

// defaultAction opens the terminal interface. When no other process owns the
// timer it runs in this process, together with a command server so that the
// one-shot commands can reach it.
func defaultAction(ctx *cli.Context) error {
	cfg, log, closer, err := prepare(ctx)
	if err != nil {
		return err
	}

	defer closer.Close()

	opts := []timer.Option{
		timer.WithPollInterval(cfg.Display.PollInterval),
		timer.WithDarkTheme(cfg.Display.DarkTheme),
	}

	inst, err := openInstance(ctx.Context, pathutil.DBFilePath(), cfg, log)
	if store.IsLocked(err) {
		client := command.NewClient(cfg.Server.Addr)

		return timer.New(client, opts...).Run(ctx.Context)
	}

	if err != nil {
		return err
	}

	defer func() {
		if closeErr := inst.Close(); closeErr != nil {
			log.Error("unable to close timer", slog.Any("error", closeErr))
		}
	}()

	runCtx, cancel := context.WithCancel(ctx.Context)
	defer cancel()

	srv := command.NewServer(
		cfg.Server.Addr,
		inst.dispatcher(),
		log,
		command.WithHistory(inst.db),
	)

	go func() {
		err := srv.ListenAndServe(runCtx)
		if err != nil {
			log.Warn("command server stopped", slog.Any("error", err))
		}
	}()

	return timer.New(inst.dispatcher(), opts...).Run(runCtx)
}

// serveAction runs the timer headless until interrupted.
func serveAction(ctx *cli.Context) error {
	cfg, log, closer, err := prepare(ctx)
	if err != nil {
		return err
	}

	defer closer.Close()

	inst, err := openInstance(ctx.Context, pathutil.DBFilePath(), cfg, log)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := inst.Close(); closeErr != nil {
			log.Error("unable to close timer", slog.Any("error", closeErr))
		}
	}()

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	srv := command.NewServer(
		cfg.Server.Addr,
		inst.dispatcher(),
		log,
		command.WithHistory(inst.db),
	)

	pterm.Info.Printfln("pomodoro is listening on %s", cfg.Server.Addr)

	return srv.ListenAndServe(sigCtx)
}

func startAction(ctx *cli.Context) error {
	return runCommand(ctx, command.Request{Action: command.Start})
}

func pauseAction(ctx *cli.Context) error {
	return runCommand(ctx, command.Request{Action: command.Pause})
}

func resetAction(ctx *cli.Context) error {
	return runCommand(ctx, command.Request{Action: command.Reset})
}

// setAction updates the settings named by the flags that were passed.
func setAction(ctx *cli.Context) error {
	patch, err := settingsPatch(ctx)
	if err != nil {
		return err
	}

	return runCommand(ctx, command.Request{
		Action:   command.UpdateSettings,
		Settings: &patch,
	})
}

// runCommand performs req and prints the resulting status.
func runCommand(ctx *cli.Context, req command.Request) error {
	return withHandler(ctx, func(h command.Handler, _ sessionLister) error {
		resp, err := h.Handle(ctx.Context, req)
		if err != nil {
			return err
		}

		if !resp.Success {
			return errCommandFailed.Fmt(req.Action, resp.Error)
		}

		if req.Action == command.UpdateSettings {
			pterm.Success.Println(settingsSavedMsg)
		}

		return printStatus(os.Stdout, *resp.Snapshot, false)
	})
}

// statusAction prints the current timer state.
func statusAction(ctx *cli.Context) error {
	return withHandler(ctx, func(h command.Handler, _ sessionLister) error {
		snap, err := command.Fetch(ctx.Context, h)
		if err != nil {
			return err
		}

		return printStatus(os.Stdout, snap, ctx.Bool("json"))
	})
}

// historyAction lists the phases completed within the requested period.
func historyAction(ctx *cli.Context) error {
	now := time.Now()

	since, err := parseTime(ctx.String("since"), now)
	if err != nil {
		return err
	}

	if !since.IsZero() {
		since = timeutil.RoundToStart(since)
	}

	until, err := parseTime(ctx.String("until"), now)
	if err != nil {
		return err
	}

	return withHandler(ctx, func(_ command.Handler, history sessionLister) error {
		records, err := history.Sessions(ctx.Context, since, until)
		if err != nil {
			return err
		}

		if ctx.Bool("json") {
			return printJSON(os.Stdout, records)
		}

		return printHistory(os.Stdout, records)
	})
}

func parseTime(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	return timeutil.FromStr(s, now)
}

// settingsPatch collects the settings flags that were explicitly set.
func settingsPatch(ctx *cli.Context) (engine.SettingsPatch, error) {
	var patch engine.SettingsPatch

	ints := []struct {
		dst  **int
		name string
	}{
		{&patch.FocusMinutes, focusFlag.Name},
		{&patch.BreakMinutes, breakFlag.Name},
		{&patch.LongBreakMinutes, longBreakFlag.Name},
		{&patch.SessionsPerCycle, sessionsFlag.Name},
	}

	for _, f := range ints {
		if !ctx.IsSet(f.name) {
			continue
		}

		n := ctx.Int(f.name)
		if n < 1 {
			return patch, errInvalidSetting.Fmt(f.name, n)
		}

		*f.dst = &n
	}

	if ctx.IsSet(autoStartFlag.Name) {
		autoStart := ctx.Bool(autoStartFlag.Name)
		patch.AutoStart = &autoStart
	}

	if patch.Empty() {
		return patch, errNoSettings
	}

	return patch, nil
}

// editConfigAction handles the edit-config command which opens the pomodoro
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	// loading the config writes the defaults if the file is missing
	_, _, closer, err := prepare(ctx)
	if err != nil {
		return err
	}

	defer closer.Close()

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMODORO_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomodoroNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return pathutil.Initialize()
}

func printJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}
