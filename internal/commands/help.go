package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for pomo",
	Long:  `Display detailed help for all pomo commands, flags and keys.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

const banner = `
██████╗  ██████╗ ███╗   ███╗ ██████╗
██╔══██╗██╔═══██╗████╗ ████║██╔═══██╗
██████╔╝██║   ██║██╔████╔██║██║   ██║
██╔═══╝ ██║   ██║██║╚██╔╝██║██║   ██║
██║     ╚██████╔╝██║ ╚═╝ ██║╚██████╔╝
╚═╝      ╚═════╝ ╚═╝     ╚═╝ ╚═════╝

pomo - Terminal Pomodoro Timer
`

type helpSection struct {
	title    string
	commands []helpCommand
}

type helpCommand struct {
	name        string
	description string
	examples    []string
	flags       []helpFlag
}

type helpFlag struct {
	name        string
	description string
}

var helpSections = []helpSection{
	{
		title: "COMMANDS",
		commands: []helpCommand{
			{
				name:        "pomo",
				description: "Open the interactive timer",
				flags: []helpFlag{
					{"--config", "Config file (default ~/.pomo/config.yaml)"},
				},
			},
			{
				name:        "start [focus|short|long]",
				description: "Start a session right away",
				flags: []helpFlag{
					{"--no-ui", "Print the countdown instead of opening the UI"},
				},
				examples: []string{"pomo start short --no-ui"},
			},
			{
				name:        "stats",
				description: "Show today's pomodoros and focused minutes",
				flags: []helpFlag{
					{"--json", "JSON output"},
				},
			},
			{
				name:        "settings",
				description: "Show session lengths and auto-start",
			},
			{
				name:        "settings set",
				description: "Change session lengths (25, 25m, 1h, 1h30m)",
				flags: []helpFlag{
					{"--pomodoro", "Focus length"},
					{"--short", "Short break length"},
					{"--long", "Long break length"},
					{"--auto-start", "Start the next session automatically"},
				},
				examples: []string{"pomo settings set --pomodoro 50 --short 10 --long 20"},
			},
			{name: "settings toggle-auto", description: "Flip auto-start"},
			{name: "version", description: "Print version information"},
			{name: "help", description: "Show this help"},
		},
	},
	{
		title: "TIMER KEYS",
		commands: []helpCommand{
			{name: "space", description: "Start/pause"},
			{name: "r", description: "Reset the current session"},
			{name: "1 / 2 / 3", description: "Focus / Short Break / Long Break (asks first while running)"},
			{name: "a", description: "Toggle auto-start"},
			{name: "s", description: "Settings panel (tab move, enter save, esc cancel)"},
			{name: "?", description: "More keys"},
			{name: "q", description: "Quit"},
		},
	},
}

func showCustomHelp() {
	fmt.Print(renderHelp(helpSections))
}

// renderHelp lays out the sections as indented plain text
func renderHelp(sections []helpSection) string {
	var b strings.Builder
	b.WriteString(banner)

	for _, section := range sections {
		fmt.Fprintf(&b, "\n%s:\n\n", section.title)
		for _, c := range section.commands {
			fmt.Fprintf(&b, "  %-24s%s\n", c.name, c.description)
			for _, f := range c.flags {
				fmt.Fprintf(&b, "    %-22s%s\n", f.name, f.description)
			}
			for _, example := range c.examples {
				fmt.Fprintf(&b, "    Example: %s\n", example)
			}
		}
	}

	b.WriteString("\nEvery fourth pomodoro of the day is followed by a long break.\n\n")
	return b.String()
}
