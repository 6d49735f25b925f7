package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/curtisbraxdale/taday-front/internal/api"
	"github.com/curtisbraxdale/taday-front/internal/parser"
)

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Show today's events and open todos",
	Run: withSession(func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		fmt.Printf("Agenda for %s\n\n", time.Now().Format("Monday, 02 January 2006"))

		if err := events.Load(ctx, api.EventListParams{Range: "day", Sort: "desc"}); err == nil {
			items := events.Items()
			if len(items) == 0 {
				fmt.Println("No events today.")
			} else {
				fmt.Println("Events:")
				for _, event := range items {
					prio := ""
					if event.Priority {
						prio = " !"
					}
					tags := ""
					if len(event.Tags) > 0 {
						tags = " [" + strings.Join(event.Tags, ",") + "]"
					}
					fmt.Printf("  %s  %s%s%s\n", event.Time, event.Title, prio, tags)
				}
			}
		}

		fmt.Println()

		if err := todos.Load(ctx, "desc"); err == nil {
			items := todos.Items()
			if len(items) == 0 {
				fmt.Println("No open todos.")
			} else {
				fmt.Println("Todos:")
				for _, todo := range items {
					due := ""
					if todo.DueDate != nil {
						due = "  " + parser.FormatDueDate(todo.DueDate)
					}
					fmt.Printf("  [ ] %s%s\n", todo.Title, due)
				}
			}
		}
	}),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taday %s (commit %s, built %s)\n", version, commit, date)
	},
}
