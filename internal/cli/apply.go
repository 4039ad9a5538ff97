package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/me/jobdesk/pkg/jobportal"
)

func newApplyCmd() *cobra.Command {
	var coverLetter string
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "apply <job-id>",
		Short: "Apply to a posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid job id %q", args[0])
			}

			user, err := resumeSession(cmd.Context())
			if err != nil {
				return err
			}
			if user.Role != jobportal.RoleEmployee {
				return fmt.Errorf("only employee accounts can apply to postings")
			}

			if fromStdin {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read cover letter: %w", err)
				}
				coverLetter = string(data)
			}
			if coverLetter == "" {
				return fmt.Errorf("a cover letter is required (--message or --stdin)")
			}

			if err := client.Apply(cmd.Context(), id, coverLetter); err != nil {
				return fmt.Errorf("apply: %s", errMessage(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Application submitted for job %d.\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&coverLetter, "message", "m", "", "Cover letter text")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the cover letter from stdin")
	return cmd
}

func newApplicationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applications",
		Short: "List your applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := resumeSession(cmd.Context()); err != nil {
				return err
			}

			applications, err := client.Applications(cmd.Context())
			if err != nil {
				return fmt.Errorf("list applications: %s", errMessage(err))
			}

			if len(applications) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No applications found.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s  %-35s  %-20s  %-10s  %s\n", "ID", "JOB", "COMPANY", "STATUS", "APPLIED")
			fmt.Fprintf(out, "%-6s  %-35s  %-20s  %-10s  %s\n", "--", "---", "-------", "------", "-------")
			for _, app := range applications {
				fmt.Fprintf(out, "%-6d  %-35s  %-20s  %-10s  %s\n",
					app.ID, clip(app.Job.Title, 35), clip(app.Job.CompanyName, 20), app.Status, humanize.Time(app.AppliedDate))
			}
			return nil
		},
	}

	cmd.AddCommand(newWithdrawCmd())
	return cmd
}

func newWithdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <application-id>",
		Short: "Withdraw a pending application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid application id %q", args[0])
			}

			if _, err := resumeSession(cmd.Context()); err != nil {
				return err
			}

			if err := client.WithdrawApplication(cmd.Context(), id); err != nil {
				return fmt.Errorf("withdraw: %s", errMessage(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Application %d withdrawn.\n", id)
			return nil
		},
	}
}
