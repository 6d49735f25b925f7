package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/curtisbraxdale/taday-front/internal/api"
	"github.com/curtisbraxdale/taday-front/internal/models"
	"github.com/curtisbraxdale/taday-front/internal/parser"
	"github.com/curtisbraxdale/taday-front/internal/tui"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage calendar events",
}

var eventAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new event",
	Long: `Add a new event.

Modes:
  Interactive: taday event add -i (or just 'taday event add')
  Quick: taday event add "Event title" (with optional flags)
  Smart parsing: taday event add "Dentist #health ! at:14:30"

Smart parsing syntax:
  #tag1,tag2  - Tags (comma-separated or individual)
  !           - Mark as priority
  at:14:30    - Start time (24-hour HH:MM)`,
	Args: cobra.ArbitraryArgs,
	Run: withSession(func(cmd *cobra.Command, args []string) {
		interactive, _ := cmd.Flags().GetBool("interactive")
		if len(args) == 0 && !interactive {
			interactive = true
		}

		if interactive {
			runInteractiveEventAdd(cmd, args)
			return
		}

		parsed := parser.ParseTitle(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			fmt.Printf("Error: %s\n", strings.Join(parsed.Errors, ", "))
			return
		}
		runDirectEventAdd(cmd, parsed)
	}),
}

// runInteractiveEventAdd starts the TUI wizard
func runInteractiveEventAdd(cmd *cobra.Command, args []string) {
	prefilled := make(map[string]string)
	if len(args) > 0 {
		prefilled["title"] = strings.Join(args, " ")
	}
	if date, _ := cmd.Flags().GetString("date"); date != "" {
		prefilled["date"] = date
	}
	if at, _ := cmd.Flags().GetString("time"); at != "" {
		prefilled["time"] = at
	}
	if tags, _ := cmd.Flags().GetStringSlice("tags"); len(tags) > 0 {
		prefilled["tags"] = strings.Join(tags, ", ")
	}

	input, ok, err := tui.RunAddEventForm(prefilled)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if !ok {
		return
	}

	date, err := parser.ParseDate(input.Date)
	if err != nil {
		fmt.Printf("Error parsing date: %v\n", err)
		return
	}

	event := models.Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        date,
		Time:        input.Time,
		Priority:    input.Priority,
		Tags:        input.Tags,
	}
	createEvent(event)
}

// runDirectEventAdd creates the event from parsed input and flags
func runDirectEventAdd(cmd *cobra.Command, parsed parser.ParsedEntry) {
	tags := parsed.Tags
	if flagTags, _ := cmd.Flags().GetStringSlice("tags"); len(flagTags) > 0 {
		tags = flagTags
	}

	startTime := parsed.Time
	if at, _ := cmd.Flags().GetString("time"); at != "" {
		startTime = at
	}
	if startTime == "" {
		// Matches the event form's default start time
		startTime = "09:00"
	}

	priority := parsed.Priority
	if flagPriority, _ := cmd.Flags().GetBool("priority"); flagPriority {
		priority = true
	}

	dateInput, _ := cmd.Flags().GetString("date")
	date, err := parser.ParseDate(dateInput)
	if err != nil {
		fmt.Printf("Error parsing date: %v\n", err)
		return
	}

	description, _ := cmd.Flags().GetString("description")

	event := models.Event{
		Title:       parsed.Title,
		Description: description,
		Date:        date,
		Time:        startTime,
		Priority:    priority,
		Tags:        tags,
	}
	createEvent(event)
}

func createEvent(event models.Event) {
	if !events.Create(context.Background(), event, nil) {
		return
	}
	created := events.Items()[0]
	fmt.Printf("Created event: %s\n", created.Title)
	fmt.Printf("  When: %s at %s\n", event.Date.Format("02/01/2006"), event.Time)
	if len(event.Tags) > 0 {
		fmt.Printf("  Tags: %s\n", strings.Join(event.Tags, ", "))
	}
	if event.Priority {
		fmt.Println("  Priority: yes")
	}
}

var eventListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List events",
	Long:    "List events with optional server-side filters for range and tag",
	Run: withSession(func(cmd *cobra.Command, args []string) {
		rangeFilter, _ := cmd.Flags().GetString("range")
		tagFilter, _ := cmd.Flags().GetString("tag")

		params := api.EventListParams{Range: rangeFilter, Tag: tagFilter, Sort: "desc"}
		if err := events.Load(context.Background(), params); err != nil {
			return
		}

		items := events.Items()
		if len(items) == 0 {
			fmt.Println("No events found. Use 'taday event add' to create one.")
			return
		}

		printEventTable(items)
	}),
}

func printEventTable(items []models.Event) {
	fmt.Printf("%-26s %-30s %-12s %-6s %-4s %s\n", "ID", "TITLE", "DATE", "TIME", "PRIO", "TAGS")
	fmt.Println(strings.Repeat("-", 95))
	for _, event := range items {
		title := event.Title
		if len(title) > 28 {
			title = title[:25] + "..."
		}
		prio := ""
		if event.Priority {
			prio = "!"
		}
		fmt.Printf("%-26s %-30s %-12s %-6s %-4s %s\n",
			event.ID,
			title,
			event.Date.Format("02/01/2006"),
			event.Time,
			prio,
			strings.Join(event.Tags, ","))
	}
}

var eventRemoveCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete an event",
	Args:    cobra.ExactArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		if err := events.Load(context.Background(), api.EventListParams{Sort: "desc"}); err != nil {
			return
		}
		events.Delete(context.Background(), args[0])
	}),
}

var eventEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an event",
	Args:  cobra.ExactArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		if err := events.Load(context.Background(), api.EventListParams{Sort: "desc"}); err != nil {
			return
		}

		var current *models.Event
		for _, event := range events.Items() {
			if event.ID == args[0] {
				e := event
				current = &e
				break
			}
		}
		if current == nil {
			fmt.Printf("No event with id %s\n", args[0])
			return
		}

		if cmd.Flags().Changed("title") {
			current.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("description") {
			current.Description, _ = cmd.Flags().GetString("description")
		}
		if cmd.Flags().Changed("date") {
			dateInput, _ := cmd.Flags().GetString("date")
			date, err := parser.ParseDate(dateInput)
			if err != nil {
				fmt.Printf("Error parsing date: %v\n", err)
				return
			}
			current.Date = date
		}
		if cmd.Flags().Changed("time") {
			current.Time, _ = cmd.Flags().GetString("time")
		}
		if cmd.Flags().Changed("priority") {
			current.Priority, _ = cmd.Flags().GetBool("priority")
		}
		if cmd.Flags().Changed("tags") {
			current.Tags, _ = cmd.Flags().GetStringSlice("tags")
		}

		if events.Update(context.Background(), *current, nil) {
			fmt.Printf("Updated event: %s\n", current.Title)
		}
	}),
}

func init() {
	eventAddCmd.Flags().BoolP("interactive", "i", false, "Interactive mode with TUI")
	eventAddCmd.Flags().String("date", "", "Event date: dd/mm/yyyy, today, tomorrow")
	eventAddCmd.Flags().String("time", "", "Start time, 24-hour HH:MM")
	eventAddCmd.Flags().StringSliceP("tags", "t", []string{}, "Comma-separated tags")
	eventAddCmd.Flags().Bool("priority", false, "Mark as priority")
	eventAddCmd.Flags().StringP("description", "d", "", "Longer description")

	eventListCmd.Flags().StringP("range", "r", "", "Filter by range: day, week, month, year")
	eventListCmd.Flags().StringP("tag", "t", "", "Filter by tag name")

	eventEditCmd.Flags().String("title", "", "New title")
	eventEditCmd.Flags().StringP("description", "d", "", "New description")
	eventEditCmd.Flags().String("date", "", "New date")
	eventEditCmd.Flags().String("time", "", "New start time")
	eventEditCmd.Flags().Bool("priority", false, "Priority flag")
	eventEditCmd.Flags().StringSliceP("tags", "t", []string{}, "Replacement tags")

	eventCmd.AddCommand(eventAddCmd)
	eventCmd.AddCommand(eventListCmd)
	eventCmd.AddCommand(eventRemoveCmd)
	eventCmd.AddCommand(eventEditCmd)
}
