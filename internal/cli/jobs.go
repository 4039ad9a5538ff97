package cli

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/me/jobdesk/pkg/jobportal"
)

func newJobsCmd() *cobra.Command {
	var jobType, location string

	cmd := &cobra.Command{
		Use:   "jobs [id]",
		Short: "List open postings, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showJob(cmd, args[0])
			}

			filter := jobportal.JobFilter{
				JobType:  jobportal.JobType(jobType),
				Location: location,
			}
			jobs, err := client.Jobs(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("list jobs: %s", errMessage(err))
			}

			if len(jobs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No jobs found.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s  %-35s  %-20s  %-12s  %s\n", "ID", "TITLE", "COMPANY", "TYPE", "POSTED")
			fmt.Fprintf(out, "%-6s  %-35s  %-20s  %-12s  %s\n", "--", "-----", "-------", "----", "------")
			for _, job := range jobs {
				fmt.Fprintf(out, "%-6d  %-35s  %-20s  %-12s  %s\n",
					job.ID, clip(job.Title, 35), clip(job.CompanyName, 20), job.JobType, humanize.Time(job.CreatedAt))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jobType, "type", "", "Filter by job type (FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP)")
	cmd.Flags().StringVar(&location, "location", "", "Filter by location")
	return cmd
}

func showJob(cmd *cobra.Command, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid job id %q", arg)
	}

	job, err := client.Job(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get job: %s", errMessage(err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", job.Title)
	fmt.Fprintf(out, "Company:   %s\n", job.CompanyName)
	fmt.Fprintf(out, "Location:  %s\n", job.Location)
	fmt.Fprintf(out, "Type:      %s\n", job.JobType)
	if job.SalaryRange != "" {
		fmt.Fprintf(out, "Salary:    %s\n", job.SalaryRange)
	}
	fmt.Fprintf(out, "Deadline:  %s\n", job.Deadline.Format("2006-01-02"))
	fmt.Fprintf(out, "\n%s\n", job.Description)
	if job.Requirements != "" {
		fmt.Fprintf(out, "\nRequirements:\n%s\n", job.Requirements)
	}
	return nil
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func errMessage(err error) string {
	return jobportal.ErrorMessage(err)
}
