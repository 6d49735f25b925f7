package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List your tags",
	Run: withSession(func(cmd *cobra.Command, args []string) {
		tags, err := client.GetTags(context.Background())
		if err != nil {
			fmt.Printf("Error fetching tags: %v\n", err)
			return
		}

		if len(tags) == 0 {
			fmt.Println("No tags yet. Tags are created when you add them to events.")
			return
		}

		fmt.Printf("%-26s %-20s %s\n", "ID", "NAME", "COLOR")
		fmt.Println(strings.Repeat("-", 56))
		for _, tag := range tags {
			fmt.Printf("%-26s %-20s %s\n", tag.ID, tag.Name, tag.Color)
		}
	}),
}
