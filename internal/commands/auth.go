package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curtisbraxdale/taday-front/internal/transform"
	"github.com/curtisbraxdale/taday-front/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your Taday account",
	Long: `Sign in with your email and password.

With no flags an interactive form opens. The session cookie is kept
for subsequent commands until it expires or you log out.`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			var ok bool
			var err error
			email, password, ok, err = tui.RunLoginForm(email)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if !ok {
				return
			}
		}

		if sess.Login(context.Background(), email, password) {
			user := sess.User()
			fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
		}
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the local session",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		sess.Logout(context.Background())
	}),
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Taday account",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		phone, _ := cmd.Flags().GetString("phone")

		if name == "" || email == "" || password == "" {
			fmt.Println("Name, email and password are required. Use --name, --email and --password.")
			return
		}

		data := transform.NewUser{
			Name:     name,
			Email:    email,
			Password: password,
			Phone:    phone,
		}
		if sess.Register(context.Background(), data) {
			user := sess.User()
			fmt.Printf("Welcome to Taday, %s!\n", user.Name)
		}
	}),
}

func init() {
	loginCmd.Flags().StringP("email", "e", "", "Account email")
	loginCmd.Flags().StringP("password", "p", "", "Account password")

	registerCmd.Flags().StringP("name", "n", "", "Display name")
	registerCmd.Flags().StringP("email", "e", "", "Account email")
	registerCmd.Flags().StringP("password", "p", "", "Account password")
	registerCmd.Flags().String("phone", "", "Phone number (optional)")
}
