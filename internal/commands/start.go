package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pomo/internal/session"
	"github.com/balkashynov/pomo/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [focus|short|long]",
	Short: "Start a session right away",
	Long: `Start a focus session or a break right away. Opens the interactive timer by default,
use --no-ui to print the countdown to the terminal instead.

Examples:
  pomo start              # Start a focus session with the interactive UI
  pomo start short        # Start a short break
  pomo start long --no-ui # Start a long break without UI`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		mode := session.Focus
		if len(args) == 1 {
			parsed, err := session.ParseMode(args[0])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			mode = parsed
		}

		a.ctrl.SetMode(mode, session.AlwaysConfirm)

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := runHeadless(ctx, a.ctrl, os.Stdin, os.Stdout); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		a.ctrl.Start()
		if err := tui.RunTimerTUI(a.ctrl); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Print the countdown without interactive UI")
}

const headlessHelp = "Commands: p pause/resume · r reset · 1/2/3 switch mode · a auto-start · q quit"

// runHeadless starts the controller and prints its events to out until ctx is done or
// the user types q. Lines read from in drive the timer.
func runHeadless(ctx context.Context, ctrl *session.Controller, in io.Reader, out io.Writer) error {
	events := ctrl.Subscribe(64)
	lines := readLines(in)

	snap := ctrl.Snapshot()
	fmt.Fprintf(out, "🍅 %s · %s\n", snap.Timer.Mode.Label(), session.FormatClock(snap.Timer.Total))
	fmt.Fprintln(out, headlessHelp)
	ctrl.Start()

	// The confirmer reads the answer from the same input stream as the commands
	confirm := func(prompt string) bool {
		fmt.Fprintf(out, "\n⚠️  %s (y/n) ", prompt)
		select {
		case answer, ok := <-lines:
			if !ok {
				return false
			}
			answer = strings.ToLower(strings.TrimSpace(answer))
			return answer == "y" || answer == "yes"
		case <-ctx.Done():
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			printEvent(out, event)

		case line, ok := <-lines:
			if !ok {
				// Input closed; keep the timer running until interrupted
				lines = nil
				continue
			}
			if quit := handleHeadlessLine(ctrl, out, strings.TrimSpace(line), confirm); quit {
				fmt.Fprintln(out)
				return nil
			}
		}
	}
}

// handleHeadlessLine applies one typed command and reports whether the user quit
func handleHeadlessLine(ctrl *session.Controller, out io.Writer, line string, confirm session.Confirmer) bool {
	switch strings.ToLower(line) {
	case "":
		return false
	case "q", "quit":
		return true
	case "p", "pause", "resume":
		ctrl.Toggle()
	case "r", "reset":
		ctrl.Reset()
	case "a", "auto":
		on, err := ctrl.ToggleAutoStart()
		if err != nil {
			fmt.Fprintf(out, "\nError: %v\n", err)
			break
		}
		fmt.Fprintf(out, "\nAuto-start: %s\n", onOff(on))
	case "1":
		ctrl.SetMode(session.Focus, confirm)
	case "2":
		ctrl.SetMode(session.ShortBreak, confirm)
	case "3":
		ctrl.SetMode(session.LongBreak, confirm)
	default:
		mode, err := session.ParseMode(line)
		if err != nil {
			fmt.Fprintf(out, "\n%s\n", headlessHelp)
			break
		}
		ctrl.SetMode(mode, confirm)
	}
	return false
}

// printEvent writes one controller event as terminal output
func printEvent(out io.Writer, event session.Event) {
	timer := event.Timer
	switch event.Type {
	case session.EventTick, session.EventState:
		status := "⏸  paused"
		if timer.Running {
			status = "▶  running"
		}
		fmt.Fprintf(out, "\r%-12s %s  %-10s", timer.Mode.Label(), timer.Clock(), status)
	case session.EventNotify:
		fmt.Fprintf(out, "\n🔔 %s\n", event.Message)
	case session.EventStats:
		fmt.Fprintf(out, "🍅 Today: %d pomodoros, %d minutes\n", event.Stats.Pomodoros, event.Stats.Minutes)
	}
}

// readLines forwards lines from r until EOF
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
