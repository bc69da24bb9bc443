package notify

import (
	"context"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomodoro/internal/engine"
)

// Hook runs a user command whenever a countdown reaches zero. The command
// sees POMODORO_OCCASION and POMODORO_PHASE in its environment.
type Hook struct {
	Command string

	run func(ctx context.Context, name string, args, env []string) error
}

// NewHook returns a Hook subscriber for cmd.
func NewHook(cmd string) *Hook {
	return &Hook{
		Command: cmd,
		run:     runCommand,
	}
}

func (h *Hook) Notify(ctx context.Context, ev engine.Event) error {
	if h.Command == "" || !ev.Occasion.PhaseCompleted() {
		return nil
	}

	cmdSlice, err := shellquote.Split(h.Command)
	if err != nil {
		return errParseHookCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	env := []string{
		"POMODORO_OCCASION=" + string(ev.Occasion),
		"POMODORO_PHASE=" + string(ev.Snapshot.State.Phase),
	}

	err = h.run(ctx, cmdSlice[0], cmdSlice[1:], env)
	if err != nil {
		return errRunHookCmd.Fmt(h.Command).Wrap(err)
	}

	return nil
}

func runCommand(
	ctx context.Context,
	name string,
	args, env []string,
) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)

	return cmd.Run()
}
