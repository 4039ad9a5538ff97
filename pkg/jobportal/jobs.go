package jobportal

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// intPath joins a collection path with a numeric resource ID,
// preserving the portal's trailing-slash convention.
func intPath(prefix string, id int) string {
	return prefix + strconv.Itoa(id) + "/"
}

// Jobs lists postings, optionally filtered by type and location.
// Listing is a public endpoint; no token is required.
func (c *Client) Jobs(ctx context.Context, filter JobFilter) ([]Job, error) {
	query := url.Values{}
	if filter.JobType != "" {
		query.Set("job_type", string(filter.JobType))
	}
	if filter.Location != "" {
		query.Set("location", filter.Location)
	}

	var jobs []Job
	if err := c.get(ctx, "jobs.list", "/jobs/", query, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Job fetches a single posting.
func (c *Client) Job(ctx context.Context, id int) (*Job, error) {
	var job Job
	if err := c.get(ctx, "jobs.get", intPath("/jobs/", id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateJob creates a posting. The portal requires an employer role
// and an existing company profile.
func (c *Client) CreateJob(ctx context.Context, req JobRequest) (*Job, error) {
	var job Job
	if err := c.do(ctx, "jobs.create", http.MethodPost, "/jobs/", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob replaces a posting the caller owns.
func (c *Client) UpdateJob(ctx context.Context, id int, req JobRequest) (*Job, error) {
	var job Job
	if err := c.do(ctx, "jobs.update", http.MethodPut, intPath("/jobs/", id), req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes a posting the caller owns.
func (c *Client) DeleteJob(ctx context.Context, id int) error {
	return c.do(ctx, "jobs.delete", http.MethodDelete, intPath("/jobs/", id), nil, nil)
}

// MyJobs lists the postings created by the calling employer.
func (c *Client) MyJobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := c.get(ctx, "jobs.mine", "/jobs/my_jobs/", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Apply submits an application with a cover letter. The portal rejects
// duplicate applications and non-employee callers.
func (c *Client) Apply(ctx context.Context, jobID int, coverLetter string) error {
	body := map[string]string{"cover_letter": coverLetter}
	return c.do(ctx, "jobs.apply", http.MethodPost, intPath("/jobs/", jobID)+"apply/", body, nil)
}

// Applications lists applications for the caller: an employee sees
// their own, an employer sees applications to their postings.
func (c *Client) Applications(ctx context.Context) ([]Application, error) {
	var apps []Application
	if err := c.get(ctx, "applications.list", "/applications/", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateApplicationStatus moves an application to a new review status.
// Only the posting's employer may do this.
func (c *Client) UpdateApplicationStatus(ctx context.Context, id int, status ApplicationStatus) (*Application, error) {
	var app Application
	body := map[string]string{"status": string(status)}
	err := c.do(ctx, "applications.update_status", http.MethodPost,
		intPath("/applications/", id)+"update_status/", body, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// WithdrawApplication deletes the caller's pending application. The
// portal refuses to withdraw processed (accepted/rejected) ones.
func (c *Client) WithdrawApplication(ctx context.Context, id int) error {
	return c.do(ctx, "applications.withdraw", http.MethodPost,
		intPath("/applications/", id)+"withdraw/", nil, nil)
}
