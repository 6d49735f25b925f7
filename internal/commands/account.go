package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/curtisbraxdale/taday-front/internal/transform"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Run: withSession(func(cmd *cobra.Command, args []string) {
		user := sess.User()
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		if user.Phone != "" {
			fmt.Printf("Phone: %s\n", user.Phone)
		}
	}),
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage your account",
}

var accountUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long: `Update any subset of name, email, password and phone.

Only the flags you pass are sent to the server; everything else stays
as it is.`,
	Run: withSession(func(cmd *cobra.Command, args []string) {
		var update transform.UserUpdate
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			update.Name = &v
		}
		if cmd.Flags().Changed("email") {
			v, _ := cmd.Flags().GetString("email")
			update.Email = &v
		}
		if cmd.Flags().Changed("password") {
			v, _ := cmd.Flags().GetString("password")
			update.Password = &v
		}
		if cmd.Flags().Changed("phone") {
			v, _ := cmd.Flags().GetString("phone")
			update.Phone = &v
		}

		if update.Name == nil && update.Email == nil && update.Password == nil && update.Phone == nil {
			fmt.Println("Nothing to update. Pass --name, --email, --password or --phone.")
			return
		}

		if sess.UpdateUser(context.Background(), update) {
			user := sess.User()
			fmt.Printf("Profile updated: %s <%s>\n", user.Name, user.Email)
		}
	}),
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Permanently delete your account",
	Run: withSession(func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("This permanently deletes your account and all its data. Type 'delete' to confirm: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "delete" {
				fmt.Println("Aborted.")
				return
			}
		}
		sess.DeleteAccount(context.Background())
	}),
}

func init() {
	accountUpdateCmd.Flags().StringP("name", "n", "", "New display name")
	accountUpdateCmd.Flags().StringP("email", "e", "", "New email")
	accountUpdateCmd.Flags().StringP("password", "p", "", "New password")
	accountUpdateCmd.Flags().String("phone", "", "New phone number")

	accountDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	accountCmd.AddCommand(accountUpdateCmd)
	accountCmd.AddCommand(accountDeleteCmd)
}
