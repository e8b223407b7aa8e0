package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/blackwell-systems/bookshopctl/internal/util"
)

func newLoginCmd() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the bookshop",
		Long: `Authenticate against the bookshop API and store the access token locally.

The email and password can be passed as flags; anything missing is
prompted for on the terminal. The password prompt does not echo.`,
		Example: `  bookshopctl login
  bookshopctl login --email reader@example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}
			if err := validateEmail(email); err != nil {
				return err
			}

			if password == "" {
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}
			if err := validatePassword(password); err != nil {
				return err
			}

			token, err := client.Login(email, password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			if err := sess.SetCredentials(token, ""); err != nil {
				return fmt.Errorf("storing session: %w", err)
			}

			// Resolve the display name now that we have a token.
			if user, err := client.Me(); err == nil {
				if err := sess.SetCredentials(token, user.Username); err != nil {
					warn("storing username: %v", err)
				}
				ok("logged in as %s", user.Username)
				return nil
			}

			ok("logged in")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")

	return cmd
}

func newRegisterCmd() *cobra.Command {
	var (
		username string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a bookshop account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if username == "" {
				username, err = promptLine("Username: ")
				if err != nil {
					return err
				}
			}
			if err := validateUsername(username); err != nil {
				return err
			}

			if email == "" {
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}
			if err := validateEmail(email); err != nil {
				return err
			}

			if password == "" {
				password, err = promptPassword("Password: ")
				if err != nil {
					return err
				}
			}
			if err := validatePassword(password); err != nil {
				return err
			}

			if err := client.Register(username, email, password); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}

			ok("account created — run: bookshopctl login")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !sess.LoggedIn() {
				fmt.Println("Not logged in.")
				return nil
			}
			if err := sess.Clear(); err != nil {
				return fmt.Errorf("clearing session: %w", err)
			}
			ok("logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}

			user, err := client.Me()
			if err != nil {
				return authErr(err)
			}

			header("Account")
			fmt.Printf("  Username: %s\n", user.Username)
			fmt.Printf("  Email:    %s\n", user.Email)
			return nil
		},
	}
}

// promptLine reads one trimmed line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a line without echo when stdin is a terminal.
func promptPassword(prompt string) (string, error) {
	if !util.IsTTY() {
		return promptLine(prompt)
	}
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
