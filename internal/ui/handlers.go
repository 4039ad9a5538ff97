package ui

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/me/jobdesk/internal/auth"
	"github.com/me/jobdesk/pkg/jobportal"
)

// maxUploadBytes caps profile image and resume uploads.
const maxUploadBytes = 10 << 20

// HandleHome renders the landing page with a handful of recent jobs.
func (ui *UI) HandleHome(w http.ResponseWriter, r *http.Request) {
	jobs, err := ui.client.Jobs(r.Context(), jobportal.JobFilter{})
	if err != nil {
		ui.logger.Warn("loading jobs for home page failed", "error", err)
		jobs = nil
	}
	if len(jobs) > 6 {
		jobs = jobs[:6]
	}

	data := ui.pageData("JobDesk")
	data["Jobs"] = jobs
	ui.render(w, "home", data)
}

// --- Authentication ---

// HandleLogin renders the login page.
func (ui *UI) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if ui.sessions.Snapshot().User != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := ui.pageData("Sign in - JobDesk")
	data["Error"] = r.URL.Query().Get("error")
	ui.render(w, "login", data)
}

// HandleLoginPost processes the login form.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=Invalid+request", http.StatusSeeOther)
		return
	}

	form := loginForm{
		Email:    formValue(r, "email"),
		Password: r.FormValue("password"),
	}
	if fields := ui.checkForm(form); fields != nil {
		data := ui.pageData("Sign in - JobDesk")
		data["Fields"] = fields
		data["Email"] = form.Email
		ui.renderStatus(w, http.StatusUnprocessableEntity, "login", data)
		return
	}

	user, err := ui.sessions.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		ui.logger.Warn("login failed", "email", form.Email, "error", err)
		data := ui.pageData("Sign in - JobDesk")
		data["Error"] = jobportal.ErrorMessage(err)
		data["Email"] = form.Email
		ui.renderStatus(w, http.StatusUnauthorized, "login", data)
		return
	}

	ui.logger.Info("user logged in", "email", user.Email, "role", user.Role)
	http.Redirect(w, r, dashboardPath(user.Role), http.StatusSeeOther)
}

// HandleGoogleLoginPost exchanges a Google ID credential for a portal
// session. The credential arrives from the sign-in widget on the login
// page and is passed through opaquely.
func (ui *UI) HandleGoogleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=Invalid+request", http.StatusSeeOther)
		return
	}

	credential := r.FormValue("credential")
	if credential == "" {
		http.Redirect(w, r, "/login?error=Missing+Google+credential", http.StatusSeeOther)
		return
	}

	user, err := ui.sessions.GoogleLogin(r.Context(), credential)
	if err != nil {
		ui.logger.Warn("google login failed", "error", err)
		data := ui.pageData("Sign in - JobDesk")
		data["Error"] = jobportal.ErrorMessage(err)
		ui.renderStatus(w, http.StatusUnauthorized, "login", data)
		return
	}

	ui.logger.Info("user logged in via google", "email", user.Email)
	http.Redirect(w, r, dashboardPath(user.Role), http.StatusSeeOther)
}

// HandleRegister renders the registration page.
func (ui *UI) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if ui.sessions.Snapshot().User != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	ui.render(w, "register", ui.pageData("Create account - JobDesk"))
}

// HandleRegisterPost processes the registration form. Registration
// does not sign the user in; they land on the login page afterwards.
func (ui *UI) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	form := registerForm{
		Email:    formValue(r, "email"),
		Username: formValue(r, "username"),
		Password: r.FormValue("password"),
		Role:     formValue(r, "role"),
	}

	rerender := func(status int, fields map[string]string, message string) {
		data := ui.pageData("Create account - JobDesk")
		data["Fields"] = fields
		data["Error"] = message
		data["Form"] = form
		ui.renderStatus(w, status, "register", data)
	}

	if fields := ui.checkForm(form); fields != nil {
		rerender(http.StatusUnprocessableEntity, fields, "")
		return
	}

	user, err := ui.sessions.Register(r.Context(), jobportal.RegisterRequest{
		Email:    form.Email,
		Username: form.Username,
		Password: form.Password,
		Role:     jobportal.Role(form.Role),
	})
	if err != nil {
		ui.logger.Warn("registration failed", "email", form.Email, "error", err)
		rerender(statusForError(err), portalFields(err), jobportal.ErrorMessage(err))
		return
	}

	ui.logger.Info("user registered", "email", user.Email, "role", user.Role)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// HandleLogout ends the session and returns to the login page.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ui.sessions.Logout(r.Context())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// --- Public job board ---

// HandleJobList renders the job board with type and location filters.
func (ui *UI) HandleJobList(w http.ResponseWriter, r *http.Request) {
	filter := jobportal.JobFilter{
		JobType:  jobportal.JobType(r.URL.Query().Get("job_type")),
		Location: r.URL.Query().Get("location"),
	}

	jobs, err := ui.client.Jobs(r.Context(), filter)
	if err != nil {
		ui.renderError(w, "Failed to load jobs", err)
		return
	}

	data := ui.pageData("Jobs - JobDesk")
	data["Jobs"] = jobs
	data["JobTypes"] = jobportal.JobTypes
	data["Filter"] = filter
	ui.render(w, "jobs/list", data)
}

// HandleJobDetail renders one posting with an apply form for
// signed-in employees.
func (ui *UI) HandleJobDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.intParam(w, r, "id")
	if !ok {
		return
	}

	job, err := ui.client.Job(r.Context(), id)
	if err != nil {
		if jobportal.IsNotFound(err) {
			ui.renderNotFound(w, "Job not found")
			return
		}
		ui.renderError(w, "Failed to load job", err)
		return
	}

	data := ui.pageData(job.Title + " - JobDesk")
	data["Job"] = job
	data["Error"] = r.URL.Query().Get("error")
	data["Applied"] = r.URL.Query().Get("applied") == "1"
	ui.render(w, "jobs/detail", data)
}

// HandleApplyPost submits an application to a posting.
func (ui *UI) HandleApplyPost(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user.Role != jobportal.RoleEmployee {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id, ok := ui.intParam(w, r, "id")
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, jobPath(id), http.StatusSeeOther)
		return
	}

	form := applyForm{CoverLetter: formValue(r, "cover_letter")}
	if fields := ui.checkForm(form); fields != nil {
		http.Redirect(w, r, jobPath(id)+"?error="+urlEscape(fields["coverletter"]), http.StatusSeeOther)
		return
	}

	if err := ui.client.Apply(r.Context(), id, form.CoverLetter); err != nil {
		ui.logger.Warn("application failed", "job_id", id, "error", err)
		http.Redirect(w, r, jobPath(id)+"?error="+urlEscape(jobportal.ErrorMessage(err)), http.StatusSeeOther)
		return
	}

	ui.logger.Info("application submitted", "job_id", id, "user_id", user.ID)
	http.Redirect(w, r, jobPath(id)+"?applied=1", http.StatusSeeOther)
}

// --- Employer area ---

// HandleEmployerDashboard lists the employer's postings and the
// applications received for them.
func (ui *UI) HandleEmployerDashboard(w http.ResponseWriter, r *http.Request) {
	jobs, err := ui.client.MyJobs(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load your jobs", err)
		return
	}

	applications, err := ui.client.Applications(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load applications", err)
		return
	}

	pending := 0
	for _, app := range applications {
		if app.Status == jobportal.StatusPending {
			pending++
		}
	}

	data := ui.pageData("Dashboard - JobDesk")
	data["Jobs"] = jobs
	data["Applications"] = applications
	data["PendingCount"] = pending
	data["Statuses"] = jobportal.ApplicationStatuses
	ui.render(w, "employer/dashboard", data)
}

// HandleApplicationStatusPost moves an application to a new status.
func (ui *UI) HandleApplicationStatusPost(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.intParam(w, r, "id")
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/employer/dashboard", http.StatusSeeOther)
		return
	}

	status := jobportal.ApplicationStatus(formValue(r, "status"))
	if _, err := ui.client.UpdateApplicationStatus(r.Context(), id, status); err != nil {
		ui.logger.Warn("status update failed", "application_id", id, "status", status, "error", err)
	} else {
		ui.logger.Info("application status updated", "application_id", id, "status", status)
	}
	http.Redirect(w, r, "/employer/dashboard", http.StatusSeeOther)
}

// HandlePostJob renders the posting form.
func (ui *UI) HandlePostJob(w http.ResponseWriter, r *http.Request) {
	data := ui.pageData("Post a job - JobDesk")
	data["JobTypes"] = jobportal.JobTypes
	ui.render(w, "employer/post_job", data)
}

// HandlePostJobPost creates a posting.
func (ui *UI) HandlePostJobPost(w http.ResponseWriter, r *http.Request) {
	form, fields, ok := ui.parseJobForm(r)
	if !ok {
		http.Redirect(w, r, "/employer/post-job", http.StatusSeeOther)
		return
	}
	if fields != nil {
		data := ui.pageData("Post a job - JobDesk")
		data["JobTypes"] = jobportal.JobTypes
		data["Fields"] = fields
		data["Form"] = form
		ui.renderStatus(w, http.StatusUnprocessableEntity, "employer/post_job", data)
		return
	}

	job, err := ui.client.CreateJob(r.Context(), jobRequestFromForm(form))
	if err != nil {
		ui.logger.Warn("job creation failed", "error", err)
		data := ui.pageData("Post a job - JobDesk")
		data["JobTypes"] = jobportal.JobTypes
		data["Fields"] = portalFields(err)
		data["Error"] = jobportal.ErrorMessage(err)
		data["Form"] = form
		ui.renderStatus(w, statusForError(err), "employer/post_job", data)
		return
	}

	ui.logger.Info("job posted", "job_id", job.ID, "title", job.Title)
	http.Redirect(w, r, "/employer/dashboard", http.StatusSeeOther)
}

// HandleEditJob renders the posting form pre-filled from an existing job.
func (ui *UI) HandleEditJob(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.intParam(w, r, "id")
	if !ok {
		return
	}

	job, err := ui.client.Job(r.Context(), id)
	if err != nil {
		if jobportal.IsNotFound(err) {
			ui.renderNotFound(w, "Job not found")
			return
		}
		ui.renderError(w, "Failed to load job", err)
		return
	}

	data := ui.pageData("Edit job - JobDesk")
	data["JobTypes"] = jobportal.JobTypes
	data["Job"] = job
	data["Form"] = jobForm{
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		SalaryRange:  job.SalaryRange,
		Location:     job.Location,
		JobType:      string(job.JobType),
		Deadline:     job.Deadline.Format("2006-01-02"),
	}
	ui.render(w, "employer/edit_job", data)
}

// HandleEditJobPost updates a posting.
func (ui *UI) HandleEditJobPost(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.intParam(w, r, "id")
	if !ok {
		return
	}

	form, fields, parsed := ui.parseJobForm(r)
	if !parsed {
		http.Redirect(w, r, "/employer/dashboard", http.StatusSeeOther)
		return
	}
	if fields != nil {
		data := ui.pageData("Edit job - JobDesk")
		data["JobTypes"] = jobportal.JobTypes
		data["Fields"] = fields
		data["Form"] = form
		data["Job"] = &jobportal.Job{ID: id}
		ui.renderStatus(w, http.StatusUnprocessableEntity, "employer/edit_job", data)
		return
	}

	if _, err := ui.client.UpdateJob(r.Context(), id, jobRequestFromForm(form)); err != nil {
		ui.logger.Warn("job update failed", "job_id", id, "error", err)
		data := ui.pageData("Edit job - JobDesk")
		data["JobTypes"] = jobportal.JobTypes
		data["Fields"] = portalFields(err)
		data["Error"] = jobportal.ErrorMessage(err)
		data["Form"] = form
		data["Job"] = &jobportal.Job{ID: id}
		ui.renderStatus(w, statusForError(err), "employer/edit_job", data)
		return
	}

	ui.logger.Info("job updated", "job_id", id)
	http.Redirect(w, r, "/employer/dashboard", http.StatusSeeOther)
}

// HandleDeleteJobPost removes a posting.
func (ui *UI) HandleDeleteJobPost(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.intParam(w, r, "id")
	if !ok {
		return
	}

	if err := ui.client.DeleteJob(r.Context(), id); err != nil {
		ui.logger.Warn("job deletion failed", "job_id", id, "error", err)
	} else {
		ui.logger.Info("job deleted", "job_id", id)
	}
	http.Redirect(w, r, "/employer/dashboard", http.StatusSeeOther)
}

// HandleCompanyProfile renders the company profile form.
func (ui *UI) HandleCompanyProfile(w http.ResponseWriter, r *http.Request) {
	profiles, err := ui.client.CompanyProfiles(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load company profile", err)
		return
	}

	data := ui.pageData("Company profile - JobDesk")
	if len(profiles) > 0 {
		data["Profile"] = &profiles[0]
	}
	data["Saved"] = r.URL.Query().Get("saved") == "1"
	ui.render(w, "employer/company_profile", data)
}

// HandleCompanyProfilePost creates or updates the company profile,
// including the logo upload.
func (ui *UI) HandleCompanyProfilePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Redirect(w, r, "/employer/company-profile", http.StatusSeeOther)
		return
	}

	form := companyProfileForm{
		CompanyName:        formValue(r, "company_name"),
		CompanyDescription: formValue(r, "company_description"),
		Industry:           formValue(r, "industry"),
		CompanySize:        formValue(r, "company_size"),
		Location:           formValue(r, "location"),
	}
	if fields := ui.checkForm(form); fields != nil {
		data := ui.pageData("Company profile - JobDesk")
		data["Fields"] = fields
		data["Form"] = form
		ui.renderStatus(w, http.StatusUnprocessableEntity, "employer/company_profile", data)
		return
	}

	fields := map[string]string{
		"company_name":        form.CompanyName,
		"company_description": form.CompanyDescription,
		"industry":            form.Industry,
		"company_size":        form.CompanySize,
		"location":            form.Location,
	}

	files, err := ui.collectUploads(r, "company_logo")
	if err != nil {
		ui.renderError(w, "Failed to read upload", err)
		return
	}

	profiles, err := ui.client.CompanyProfiles(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load company profile", err)
		return
	}

	var profile *jobportal.CompanyProfile
	if len(profiles) == 0 {
		profile, err = ui.client.CreateCompanyProfile(r.Context(), fields, files)
	} else {
		profile, err = ui.client.UpdateCompanyProfile(r.Context(), profiles[0].ID, fields, files)
	}
	if err != nil {
		ui.logger.Warn("company profile save failed", "error", err)
		data := ui.pageData("Company profile - JobDesk")
		data["Fields"] = portalFields(err)
		data["Error"] = jobportal.ErrorMessage(err)
		data["Form"] = form
		ui.renderStatus(w, statusForError(err), "employer/company_profile", data)
		return
	}

	// A fresh logo shows up in the navbar right away.
	if profile.CompanyLogo != nil {
		if _, err := ui.sessions.UpdateUser(auth.UserPatch{ProfileImage: profile.CompanyLogo}); err != nil {
			ui.logger.Debug("session image refresh skipped", "error", err)
		}
	}

	ui.logger.Info("company profile saved", "profile_id", profile.ID)
	http.Redirect(w, r, "/employer/company-profile?saved=1", http.StatusSeeOther)
}

// --- Employee area ---

// HandleEmployeeDashboard lists the employee's applications.
func (ui *UI) HandleEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	applications, err := ui.client.Applications(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load applications", err)
		return
	}

	data := ui.pageData("Dashboard - JobDesk")
	data["Applications"] = applications
	ui.render(w, "employee/dashboard", data)
}

// HandleWithdrawPost withdraws an application that is still in review.
func (ui *UI) HandleWithdrawPost(w http.ResponseWriter, r *http.Request) {
	id, ok := ui.intParam(w, r, "id")
	if !ok {
		return
	}

	if err := ui.client.WithdrawApplication(r.Context(), id); err != nil {
		ui.logger.Warn("withdrawal failed", "application_id", id, "error", err)
	} else {
		ui.logger.Info("application withdrawn", "application_id", id)
	}
	http.Redirect(w, r, "/employee/dashboard", http.StatusSeeOther)
}

// HandleEmployeeProfile renders the employee profile form.
func (ui *UI) HandleEmployeeProfile(w http.ResponseWriter, r *http.Request) {
	profiles, err := ui.client.EmployeeProfiles(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load profile", err)
		return
	}

	data := ui.pageData("My profile - JobDesk")
	if len(profiles) > 0 {
		data["Profile"] = &profiles[0]
	}
	data["Saved"] = r.URL.Query().Get("saved") == "1"
	ui.render(w, "employee/profile", data)
}

// HandleEmployeeProfilePost creates or updates the employee profile,
// including the profile image and resume uploads.
func (ui *UI) HandleEmployeeProfilePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Redirect(w, r, "/employee/profile", http.StatusSeeOther)
		return
	}

	form := employeeProfileForm{
		Degree:     formValue(r, "degree"),
		Skills:     formValue(r, "skills"),
		Experience: formValue(r, "experience"),
		Phone:      formValue(r, "phone"),
	}
	if fields := ui.checkForm(form); fields != nil {
		data := ui.pageData("My profile - JobDesk")
		data["Fields"] = fields
		data["Form"] = form
		ui.renderStatus(w, http.StatusUnprocessableEntity, "employee/profile", data)
		return
	}

	fields := map[string]string{
		"degree":     form.Degree,
		"skills":     form.Skills,
		"experience": form.Experience,
		"phone":      form.Phone,
	}

	files, err := ui.collectUploads(r, "profile_image", "resume")
	if err != nil {
		ui.renderError(w, "Failed to read upload", err)
		return
	}

	profiles, err := ui.client.EmployeeProfiles(r.Context())
	if err != nil {
		ui.renderError(w, "Failed to load profile", err)
		return
	}

	var profile *jobportal.EmployeeProfile
	if len(profiles) == 0 {
		profile, err = ui.client.CreateEmployeeProfile(r.Context(), fields, files)
	} else {
		profile, err = ui.client.UpdateEmployeeProfile(r.Context(), profiles[0].ID, fields, files)
	}
	if err != nil {
		ui.logger.Warn("profile save failed", "error", err)
		data := ui.pageData("My profile - JobDesk")
		data["Fields"] = portalFields(err)
		data["Error"] = jobportal.ErrorMessage(err)
		data["Form"] = form
		ui.renderStatus(w, statusForError(err), "employee/profile", data)
		return
	}

	if profile.ProfileImage != nil {
		if _, err := ui.sessions.UpdateUser(auth.UserPatch{ProfileImage: profile.ProfileImage}); err != nil {
			ui.logger.Debug("session image refresh skipped", "error", err)
		}
	}

	ui.logger.Info("employee profile saved", "profile_id", profile.ID)
	http.Redirect(w, r, "/employee/profile?saved=1", http.StatusSeeOther)
}

// --- Helpers ---

func (ui *UI) parseJobForm(r *http.Request) (jobForm, map[string]string, bool) {
	if err := r.ParseForm(); err != nil {
		return jobForm{}, nil, false
	}
	form := jobForm{
		Title:        formValue(r, "title"),
		Description:  formValue(r, "description"),
		Requirements: formValue(r, "requirements"),
		SalaryRange:  formValue(r, "salary_range"),
		Location:     formValue(r, "location"),
		JobType:      formValue(r, "job_type"),
		Deadline:     formValue(r, "deadline"),
	}
	return form, ui.checkForm(form), true
}

func jobRequestFromForm(form jobForm) jobportal.JobRequest {
	return jobportal.JobRequest{
		Title:        form.Title,
		Description:  form.Description,
		Requirements: form.Requirements,
		SalaryRange:  form.SalaryRange,
		Location:     form.Location,
		JobType:      jobportal.JobType(form.JobType),
		Deadline:     form.Deadline,
	}
}

// collectUploads reads the named file fields from a multipart form.
// Fields the user left empty are skipped.
func (ui *UI) collectUploads(r *http.Request, names ...string) ([]jobportal.Upload, error) {
	var uploads []jobportal.Upload
	for _, name := range names {
		file, header, err := r.FormFile(name)
		if err != nil {
			if err == http.ErrMissingFile {
				continue
			}
			return nil, err
		}
		content, err := readAndClose(file)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, jobportal.Upload{
			Field:    name,
			Filename: header.Filename,
			Content:  bytes.NewReader(content),
		})
	}
	return uploads, nil
}

func readAndClose(f multipart.File) ([]byte, error) {
	defer f.Close()
	return io.ReadAll(f)
}

func (ui *UI) intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		ui.renderNotFound(w, "Page not found")
		return 0, false
	}
	return id, true
}

func dashboardPath(role jobportal.Role) string {
	if role == jobportal.RoleEmployer {
		return "/employer/dashboard"
	}
	return "/employee/dashboard"
}

func jobPath(id int) string {
	return "/jobs/" + strconv.Itoa(id)
}

func urlEscape(s string) string {
	return url.QueryEscape(s)
}

func statusForError(err error) int {
	switch {
	case jobportal.IsValidation(err):
		return http.StatusUnprocessableEntity
	case jobportal.IsUnauthorized(err):
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}
