package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/curtisbraxdale/taday-front/internal/models"
	"github.com/curtisbraxdale/taday-front/internal/parser"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage todos",
}

var todoAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new todo",
	Long: `Add a new todo.

Smart parsing syntax:
  due:3 days   - Due date (dd/mm/yyyy, X days, X hours, X weeks)

Example: taday todo add "Buy milk due:2 days"`,
	Args: cobra.MinimumNArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		parsed := parser.ParseTitle(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			fmt.Printf("Error: %s\n", strings.Join(parsed.Errors, ", "))
			return
		}
		if len(parsed.Tags) > 0 {
			fmt.Println("Note: todos don't support tags, ignoring them.")
		}

		dueDate := parsed.DueDate
		if flagDue, _ := cmd.Flags().GetString("due"); flagDue != "" {
			parsedDue, err := parser.ParseDueDate(flagDue)
			if err != nil {
				fmt.Printf("Error parsing due date: %v\n", err)
				return
			}
			dueDate = parsedDue
		}
		description, _ := cmd.Flags().GetString("description")

		todo := models.Todo{
			Title:       parsed.Title,
			Description: description,
			DueDate:     dueDate,
			Tags:        []string{},
		}
		if todos.Create(context.Background(), todo) {
			created := todos.Items()[0]
			fmt.Printf("Created todo: %s\n", created.Title)
			if created.DueDate != nil {
				fmt.Printf("  %s\n", parser.FormatDueDate(created.DueDate))
			}
		}
	}),
}

var todoListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List todos",
	Run: withSession(func(cmd *cobra.Command, args []string) {
		if err := todos.Load(context.Background(), "desc"); err != nil {
			return
		}

		items := todos.Items()
		if len(items) == 0 {
			fmt.Println("No todos. Use 'taday todo add \"title\"' to create one.")
			return
		}

		fmt.Printf("%-26s %-40s %s\n", "ID", "TITLE", "DUE")
		fmt.Println(strings.Repeat("-", 90))
		for _, todo := range items {
			title := todo.Title
			if len(title) > 38 {
				title = title[:35] + "..."
			}
			fmt.Printf("%-26s %-40s %s\n", todo.ID, title, parser.FormatDueDate(todo.DueDate))
		}
	}),
}

var todoDoneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Complete a todo (removes it)",
	Args:  cobra.ExactArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		if err := todos.Load(context.Background(), "desc"); err != nil {
			return
		}
		todos.Complete(context.Background(), args[0])
	}),
}

var todoRemoveCmd = &cobra.Command{
	Use:     "rm [id]",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a todo",
	Args:    cobra.ExactArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		if err := todos.Load(context.Background(), "desc"); err != nil {
			return
		}
		todos.Delete(context.Background(), args[0])
	}),
}

var todoEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a todo",
	Args:  cobra.ExactArgs(1),
	Run: withSession(func(cmd *cobra.Command, args []string) {
		if err := todos.Load(context.Background(), "desc"); err != nil {
			return
		}

		var current *models.Todo
		for _, todo := range todos.Items() {
			if todo.ID == args[0] {
				t := todo
				current = &t
				break
			}
		}
		if current == nil {
			fmt.Printf("No todo with id %s\n", args[0])
			return
		}

		if cmd.Flags().Changed("title") {
			current.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("description") {
			current.Description, _ = cmd.Flags().GetString("description")
		}
		if flagDue, _ := cmd.Flags().GetString("due"); flagDue != "" {
			parsedDue, err := parser.ParseDueDate(flagDue)
			if err != nil {
				fmt.Printf("Error parsing due date: %v\n", err)
				return
			}
			current.DueDate = parsedDue
		}

		if todos.Update(context.Background(), *current) {
			fmt.Printf("Updated todo: %s\n", current.Title)
		}
	}),
}

func init() {
	todoAddCmd.Flags().StringP("description", "d", "", "Longer description")
	todoAddCmd.Flags().String("due", "", "Due date: dd/mm/yyyy, X days, X hours, X weeks")

	todoEditCmd.Flags().StringP("title", "t", "", "New title")
	todoEditCmd.Flags().StringP("description", "d", "", "New description")
	todoEditCmd.Flags().String("due", "", "New due date")

	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoRemoveCmd)
	todoCmd.AddCommand(todoEditCmd)
}
