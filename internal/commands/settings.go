package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pomo/internal/parser"
	"github.com/balkashynov/pomo/internal/session"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change session lengths",
	Long: `Show the current session lengths and the auto-start flag.

Examples:
  pomo settings                                  # Show settings
  pomo settings set --pomodoro 50 --short 10     # Change durations
  pomo settings set --long 1h --auto-start=true  # Durations accept 25, 25m, 1h, 1h30m
  pomo settings toggle-auto                      # Flip auto-start`,
	Args: cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		printSettings(a.ctrl.Snapshot().Settings)
	}),
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change session lengths and auto-start",
	Args:  cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		settings, err := applySettingsFlags(cmd, a.ctrl.Snapshot().Settings)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := a.ctrl.UpdateSettings(settings); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("✅ Settings saved")
		printSettings(a.ctrl.Snapshot().Settings)
	}),
}

var settingsToggleAutoCmd = &cobra.Command{
	Use:   "toggle-auto",
	Short: "Turn auto-start of the next session on or off",
	Args:  cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		on, err := a.ctrl.ToggleAutoStart()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Auto-start: %s\n", onOff(on))
	}),
}

// applySettingsFlags overlays the flags that were set on current
func applySettingsFlags(cmd *cobra.Command, current session.Settings) (session.Settings, error) {
	durations := []struct {
		flag   string
		target *int
	}{
		{"pomodoro", &current.Pomodoro},
		{"short", &current.ShortBreak},
		{"long", &current.LongBreak},
	}

	changed := false
	for _, d := range durations {
		if !cmd.Flags().Changed(d.flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(d.flag)
		minutes, err := parser.ParseMinutes(value)
		if err != nil {
			return current, fmt.Errorf("--%s: %w", d.flag, err)
		}
		*d.target = minutes
		changed = true
	}

	if cmd.Flags().Changed("auto-start") {
		current.AutoStart, _ = cmd.Flags().GetBool("auto-start")
		changed = true
	}

	if !changed {
		return current, fmt.Errorf("nothing to change; use --pomodoro, --short, --long or --auto-start")
	}
	return current, nil
}

func printSettings(settings session.Settings) {
	for _, mode := range session.Modes {
		fmt.Printf("%-12s %s\n", mode.Label(), parser.FormatMinutes(settings.Minutes(mode)))
	}
	fmt.Printf("%-12s %s\n", "Auto-start", onOff(settings.AutoStart))
}

func init() {
	settingsSetCmd.Flags().String("pomodoro", "", "Focus length (e.g. 25, 50m, 1h)")
	settingsSetCmd.Flags().String("short", "", "Short break length")
	settingsSetCmd.Flags().String("long", "", "Long break length")
	settingsSetCmd.Flags().Bool("auto-start", false, "Start the next session automatically")

	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsToggleAutoCmd)
}
