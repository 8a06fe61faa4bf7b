package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/balkashynov/pomo/internal/models"
	"github.com/balkashynov/pomo/internal/session"
	"github.com/balkashynov/pomo/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show today's stats",
	Long:  "Show how many pomodoros were completed today and how many minutes were spent focusing",
	Args:  cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		stats := a.store.TodayStats(session.Today(time.Now()))

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			data, err := json.MarshalIndent(models.StatsRecord{
				Date:      stats.Date,
				Pomodoros: stats.Pomodoros,
				Minutes:   stats.Minutes,
			}, "", "  ")
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Println(string(data))
			return
		}

		fmt.Println(renderStats(stats, a.ctrl.Snapshot().Settings))
	}),
}

// renderStats formats the stats card printed by `pomo stats`
func renderStats(stats session.DailyStats, settings session.Settings) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(session.Focus.Color()))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSecondaryText)).Width(20)
	valueStyle := lipgloss.NewStyle().Bold(true)

	next := session.NextBreak(stats.Pomodoros + 1)
	rows := []string{
		titleStyle.Render("🍅 " + stats.Date),
		"",
		labelStyle.Render("Pomodoros") + valueStyle.Render(fmt.Sprint(stats.Pomodoros)),
		labelStyle.Render("Minutes focused") + valueStyle.Render(fmt.Sprint(stats.Minutes)),
		labelStyle.Render("Next break") + valueStyle.Render(fmt.Sprintf("%s (%d min)", next.Label(), settings.Minutes(next))),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(tui.ColorBorder)).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func init() {
	statsCmd.Flags().Bool("json", false, "JSON output")
}
