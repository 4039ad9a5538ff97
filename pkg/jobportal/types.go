package jobportal

import "time"

// Role determines which dashboards and API operations a user may use.
type Role string

const (
	// RoleEmployee is a job seeker.
	RoleEmployee Role = "EMPLOYEE"
	// RoleEmployer posts jobs and reviews applications.
	RoleEmployer Role = "EMPLOYER"
)

// Valid reports whether the role is one of the portal-known roles.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleEmployer
}

// TokenPair is the access/refresh credential pair issued by the portal.
// Both values are opaque to the client; no expiry parsing happens here.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IsZero reports whether either half of the pair is missing.
// A partial pair is treated the same as no pair at all.
func (p TokenPair) IsZero() bool {
	return p.Access == "" || p.Refresh == ""
}

// User is the canonical identity record returned by the portal.
// ProfileImage is late-bound: the identity endpoint does not populate it
// on every path, so callers merge it in from the role-specific profile.
type User struct {
	ID              int     `json:"id"`
	Email           string  `json:"email"`
	Username        string  `json:"username"`
	Role            Role    `json:"role"`
	IsEmailVerified bool    `json:"is_email_verified"`
	ProfileImage    *string `json:"profile_image,omitempty"`
}

// RegisterRequest creates a new portal account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// GoogleLoginResult is the combined response of the third-party login
// endpoint: tokens and identity arrive together in one round trip.
type GoogleLoginResult struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    User   `json:"user"`
}

// JobType is the employment category of a posting.
type JobType string

const (
	JobFullTime   JobType = "FULL_TIME"
	JobPartTime   JobType = "PART_TIME"
	JobContract   JobType = "CONTRACT"
	JobInternship JobType = "INTERNSHIP"
)

// JobTypes lists all portal-known job types in display order.
var JobTypes = []JobType{JobFullTime, JobPartTime, JobContract, JobInternship}

// Job is a posting as returned by the portal.
type Job struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	SalaryRange  string    `json:"salary_range"`
	Location     string    `json:"location"`
	JobType      JobType   `json:"job_type"`
	Deadline     time.Time `json:"deadline"`
	CreatedAt    time.Time `json:"created_at"`
	Employer     int       `json:"employer"`
	CompanyName  string    `json:"company_name"`
}

// JobRequest is the payload for creating or updating a posting.
type JobRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
	SalaryRange  string  `json:"salary_range"`
	Location     string  `json:"location"`
	JobType      JobType `json:"job_type"`
	Deadline     string  `json:"deadline"`
}

// JobFilter narrows job listings. Zero values mean no filtering.
type JobFilter struct {
	JobType  JobType
	Location string
}

// ApplicationStatus tracks an application through review.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "PENDING"
	StatusReviewing ApplicationStatus = "REVIEWING"
	StatusAccepted  ApplicationStatus = "ACCEPTED"
	StatusRejected  ApplicationStatus = "REJECTED"
)

// ApplicationStatuses lists the statuses an employer may assign.
var ApplicationStatuses = []ApplicationStatus{
	StatusPending, StatusReviewing, StatusAccepted, StatusRejected,
}

// IsTerminal reports whether the application has been processed.
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanWithdraw reports whether the applicant may still withdraw.
// The portal rejects withdrawal of processed applications.
func (s ApplicationStatus) CanWithdraw() bool {
	return !s.IsTerminal()
}

// Application is a job application with its embedded posting.
type Application struct {
	ID          int               `json:"id"`
	Job         Job               `json:"job"`
	Applicant   int               `json:"applicant"`
	AppliedDate time.Time         `json:"applied_date"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"cover_letter"`
}

// EmployeeProfile is a job seeker's extended profile.
type EmployeeProfile struct {
	ID           int     `json:"id"`
	User         int     `json:"user"`
	UserEmail    string  `json:"user_email"`
	UserName     string  `json:"user_name"`
	ProfileImage *string `json:"profile_image"`
	Resume       *string `json:"resume"`
	Degree       *string `json:"degree"`
	Skills       string  `json:"skills"`
	Experience   string  `json:"experience"`
	Phone        string  `json:"phone"`
}

// CompanyProfile is an employer's company record.
type CompanyProfile struct {
	ID                 int     `json:"id"`
	CompanyName        string  `json:"company_name"`
	CompanyLogo        *string `json:"company_logo"`
	CompanyDescription string  `json:"company_description"`
	Industry           string  `json:"industry"`
	CompanySize        string  `json:"company_size"`
	Location           string  `json:"location"`
}
