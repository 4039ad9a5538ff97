package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the job portal",
		Long:  "Exchange your portal credentials for tokens and store them locally.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())

			if email == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Email: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read email: %w", err)
				}
				email = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if email == "" || password == "" {
				return fmt.Errorf("email and password are required")
			}

			user, err := sessions.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login failed: %s", errMessage(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Portal account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Portal account password (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget stored tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions.Resume(cmd.Context())
			sessions.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := resumeSession(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n", user.Username, user.Email, user.Role)
			return nil
		},
	}
}
