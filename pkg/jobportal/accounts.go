package jobportal

import (
	"context"
	"net/http"
)

// Login exchanges email/password credentials for a token pair.
// The client's own token is not modified; callers decide whether and
// where to persist the pair.
func (c *Client) Login(ctx context.Context, email, password string) (TokenPair, error) {
	var pair TokenPair
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, "accounts.login", http.MethodPost, "/accounts/token/", body, &pair); err != nil {
		return TokenPair{}, err
	}
	return pair, nil
}

// Profile fetches the identity record for the current bearer token.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "accounts.profile", "/accounts/profile/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account. It does not log the account in; the
// caller follows up with Login.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := c.do(ctx, "accounts.register", http.MethodPost, "/accounts/register/", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GoogleLogin exchanges an opaque identity-provider credential for a
// token pair plus the identity record, all in one response. The
// credential is passed through verbatim; the client never inspects it.
func (c *Client) GoogleLogin(ctx context.Context, credential string) (*GoogleLoginResult, error) {
	var result GoogleLoginResult
	body := map[string]string{"token": credential}
	if err := c.do(ctx, "accounts.google_login", http.MethodPost, "/accounts/google/login/", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout asks the server to invalidate the current session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "accounts.logout", http.MethodPost, "/accounts/logout/", nil, nil)
}

// EmployeeProfiles lists the employee profiles visible to the caller.
// For a job seeker this is their own profile, so the list has at most
// one record.
func (c *Client) EmployeeProfiles(ctx context.Context) ([]EmployeeProfile, error) {
	var profiles []EmployeeProfile
	if err := c.get(ctx, "accounts.employee_profiles", "/accounts/employee-profiles/", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// CompanyProfiles lists the company profiles owned by the caller
// (at most one record).
func (c *Client) CompanyProfiles(ctx context.Context) ([]CompanyProfile, error) {
	var profiles []CompanyProfile
	if err := c.get(ctx, "accounts.company_profiles", "/accounts/company-profiles/", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// CreateEmployeeProfile creates the caller's employee profile.
// fields carries the plain form values; files carries any uploads
// (profile_image, resume, degree).
func (c *Client) CreateEmployeeProfile(ctx context.Context, fields map[string]string, files []Upload) (*EmployeeProfile, error) {
	var profile EmployeeProfile
	err := c.doMultipart(ctx, "accounts.employee_profile_create", http.MethodPost,
		"/accounts/employee-profiles/", fields, files, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateEmployeeProfile partially updates an employee profile.
func (c *Client) UpdateEmployeeProfile(ctx context.Context, id int, fields map[string]string, files []Upload) (*EmployeeProfile, error) {
	var profile EmployeeProfile
	err := c.doMultipart(ctx, "accounts.employee_profile_update", http.MethodPatch,
		intPath("/accounts/employee-profiles/", id), fields, files, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateCompanyProfile creates the caller's company profile. The portal
// rejects a second profile for the same account.
func (c *Client) CreateCompanyProfile(ctx context.Context, fields map[string]string, files []Upload) (*CompanyProfile, error) {
	var profile CompanyProfile
	err := c.doMultipart(ctx, "accounts.company_profile_create", http.MethodPost,
		"/accounts/company-profiles/", fields, files, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateCompanyProfile partially updates a company profile.
func (c *Client) UpdateCompanyProfile(ctx context.Context, id int, fields map[string]string, files []Upload) (*CompanyProfile, error) {
	var profile CompanyProfile
	err := c.doMultipart(ctx, "accounts.company_profile_update", http.MethodPatch,
		intPath("/accounts/company-profiles/", id), fields, files, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
