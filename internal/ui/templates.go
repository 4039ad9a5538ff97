package ui

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"humanTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return humanize.Time(t)
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("Jan 2, 2006")
	},
	"jobTypeLabel": func(jt string) string {
		switch strings.ToUpper(jt) {
		case "FULL_TIME":
			return "Full-time"
		case "PART_TIME":
			return "Part-time"
		case "CONTRACT":
			return "Contract"
		case "INTERNSHIP":
			return "Internship"
		default:
			return jt
		}
	},
	"statusBadge": func(status string) string {
		// Tailwind classes for application status pills.
		switch strings.ToUpper(status) {
		case "PENDING":
			return "bg-yellow-100 text-yellow-800"
		case "REVIEWING":
			return "bg-blue-100 text-blue-800"
		case "ACCEPTED":
			return "bg-green-100 text-green-800"
		case "REJECTED":
			return "bg-red-100 text-red-800"
		default:
			return "bg-gray-100 text-gray-800"
		}
	},
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
	// field tolerates pages that never set Fields at all.
	"field": func(fields any, name string) string {
		m, ok := fields.(map[string]string)
		if !ok {
			return ""
		}
		return m[name]
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"urlquery": func(s string) string {
		return template.URLQueryEscaper(s)
	},
}

// renderTemplate renders a named page inside the layout.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	if _, err = tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	for compName, compContent := range templates {
		if strings.HasPrefix(compName, "components/") {
			if _, err = tmpl.New(filepath.Base(compName)).Parse(compContent); err != nil {
				return fmt.Errorf("parse component %s: %w", compName, err)
			}
		}
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content, keyed by page name.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 min-h-screen flex flex-col">
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-6xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="/" class="flex items-center px-2 py-2 text-xl font-bold text-indigo-600">JobDesk</a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-8">
                        <a href="/jobs" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Jobs</a>
                        {{if .User}}
                            {{if eq (printf "%s" .User.Role) "EMPLOYER"}}
                            <a href="/employer/dashboard" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Dashboard</a>
                            <a href="/employer/post-job" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Post a job</a>
                            <a href="/employer/company-profile" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Company</a>
                            {{else}}
                            <a href="/employee/dashboard" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">My applications</a>
                            <a href="/employee/profile" class="border-transparent text-gray-500 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Profile</a>
                            {{end}}
                        {{end}}
                    </div>
                </div>
                <div class="flex items-center space-x-4">
                    {{if .User}}
                        {{if .User.ProfileImage}}
                        <img src="{{deref .User.ProfileImage}}" alt="" class="h-8 w-8 rounded-full object-cover">
                        {{end}}
                        <span class="text-sm text-gray-600">{{.User.Username}}</span>
                        <a href="/logout" class="text-sm text-gray-500 hover:text-gray-700">Sign out</a>
                    {{else}}
                        <a href="/login" class="text-sm text-gray-500 hover:text-gray-700">Sign in</a>
                        <a href="/register" class="text-sm bg-indigo-600 text-white px-3 py-1.5 rounded-md hover:bg-indigo-700">Sign up</a>
                    {{end}}
                </div>
            </div>
        </div>
    </nav>
    <main class="flex-1 max-w-6xl w-full mx-auto px-4 sm:px-6 lg:px-8 py-8">
        {{template "content" .}}
    </main>
    <footer class="bg-white border-t py-4">
        <div class="max-w-6xl mx-auto px-4 text-center text-sm text-gray-400">JobDesk</div>
    </footer>
</body>
</html>`,

	"loading": `<div class="flex flex-col items-center justify-center py-24">
    <div class="animate-spin rounded-full h-10 w-10 border-b-2 border-indigo-600"></div>
    <p class="mt-4 text-gray-500">Loading...</p>
</div>`,

	"error": `<div class="max-w-lg mx-auto text-center py-16">
    <h1 class="text-2xl font-bold text-gray-900">{{.Message}}</h1>
    {{if .Detail}}<p class="mt-2 text-gray-500">{{.Detail}}</p>{{end}}
    <a href="/" class="mt-6 inline-block text-indigo-600 hover:text-indigo-700">Back to home</a>
</div>`,

	"home": `<div class="text-center py-12">
    <h1 class="text-4xl font-bold text-gray-900">Find your next role</h1>
    <p class="mt-3 text-lg text-gray-500">Browse open positions or post one for your company.</p>
    <div class="mt-6 space-x-3">
        <a href="/jobs" class="bg-indigo-600 text-white px-5 py-2.5 rounded-md hover:bg-indigo-700">Browse jobs</a>
        {{if not .User}}<a href="/register" class="text-indigo-600 px-5 py-2.5 hover:text-indigo-700">Create an account</a>{{end}}
    </div>
</div>
{{if .Jobs}}
<h2 class="text-xl font-semibold text-gray-900 mb-4">Latest openings</h2>
<div class="grid gap-4 sm:grid-cols-2 lg:grid-cols-3">
    {{range .Jobs}}{{template "job_card" .}}{{end}}
</div>
{{end}}`,

	"components/job_card": `{{define "job_card"}}<a href="/jobs/{{.ID}}" class="block bg-white rounded-lg shadow-sm border p-5 hover:shadow-md">
    <div class="flex justify-between items-start">
        <h3 class="font-semibold text-gray-900">{{.Title}}</h3>
        <span class="text-xs bg-indigo-50 text-indigo-700 px-2 py-0.5 rounded">{{jobTypeLabel (printf "%s" .JobType)}}</span>
    </div>
    <p class="mt-1 text-sm text-gray-500">{{.CompanyName}} &middot; {{.Location}}</p>
    <p class="mt-2 text-sm text-gray-600">{{truncate .Description 120}}</p>
    <p class="mt-3 text-xs text-gray-400">Posted {{humanTime .CreatedAt}}</p>
</a>{{end}}`,

	"login": `<div class="max-w-md mx-auto bg-white rounded-lg shadow-sm border p-8">
    <h1 class="text-2xl font-bold text-gray-900 mb-6">Sign in</h1>
    {{if .Error}}<div class="mb-4 bg-red-50 border border-red-200 text-red-700 text-sm rounded-md p-3">{{.Error}}</div>{{end}}
    <form method="POST" action="/login" class="space-y-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Email</label>
            <input type="email" name="email" value="{{if .Email}}{{.Email}}{{end}}" class="mt-1 w-full border rounded-md px-3 py-2" required>
            {{with field .Fields "email"}}<p class="mt-1 text-sm text-red-600">{{.}}</p>{{end}}
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Password</label>
            <input type="password" name="password" class="mt-1 w-full border rounded-md px-3 py-2" required>
            {{with field .Fields "password"}}<p class="mt-1 text-sm text-red-600">{{.}}</p>{{end}}
        </div>
        <button type="submit" class="w-full bg-indigo-600 text-white py-2 rounded-md hover:bg-indigo-700">Sign in</button>
    </form>
    {{if .GoogleClientID}}
    <div class="mt-6">
        <div class="relative"><div class="absolute inset-0 flex items-center"><div class="w-full border-t"></div></div>
            <div class="relative flex justify-center text-sm"><span class="px-2 bg-white text-gray-400">or</span></div></div>
        <div class="mt-4 flex justify-center">
            <script src="https://accounts.google.com/gsi/client" async></script>
            <div id="g_id_onload"
                 data-client_id="{{.GoogleClientID}}"
                 data-login_uri="/login/google"
                 data-auto_prompt="false"></div>
            <div class="g_id_signin" data-type="standard" data-text="signin_with"></div>
        </div>
    </div>
    {{end}}
    <p class="mt-6 text-sm text-gray-500 text-center">No account? <a href="/register" class="text-indigo-600">Sign up</a></p>
</div>`,

	"register": `<div class="max-w-md mx-auto bg-white rounded-lg shadow-sm border p-8">
    <h1 class="text-2xl font-bold text-gray-900 mb-6">Create account</h1>
    {{if .Error}}<div class="mb-4 bg-red-50 border border-red-200 text-red-700 text-sm rounded-md p-3">{{.Error}}</div>{{end}}
    <form method="POST" action="/register" class="space-y-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Email</label>
            <input type="email" name="email" value="{{if .Form}}{{.Form.Email}}{{end}}" class="mt-1 w-full border rounded-md px-3 py-2" required>
            {{with field .Fields "email"}}<p class="mt-1 text-sm text-red-600">{{.}}</p>{{end}}
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Username</label>
            <input type="text" name="username" value="{{if .Form}}{{.Form.Username}}{{end}}" class="mt-1 w-full border rounded-md px-3 py-2" required>
            {{with field .Fields "username"}}<p class="mt-1 text-sm text-red-600">{{.}}</p>{{end}}
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Password</label>
            <input type="password" name="password" class="mt-1 w-full border rounded-md px-3 py-2" required>
            {{with field .Fields "password"}}<p class="mt-1 text-sm text-red-600">{{.}}</p>{{end}}
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">I am</label>
            <select name="role" class="mt-1 w-full border rounded-md px-3 py-2">
                <option value="EMPLOYEE">Looking for a job</option>
                <option value="EMPLOYER">Hiring</option>
            </select>
            {{with field .Fields "role"}}<p class="mt-1 text-sm text-red-600">{{.}}</p>{{end}}
        </div>
        <button type="submit" class="w-full bg-indigo-600 text-white py-2 rounded-md hover:bg-indigo-700">Sign up</button>
    </form>
    <p class="mt-6 text-sm text-gray-500 text-center">Already registered? <a href="/login" class="text-indigo-600">Sign in</a></p>
</div>`,

	"jobs/list": `<div class="flex justify-between items-center mb-6">
    <h1 class="text-2xl font-bold text-gray-900">Open positions</h1>
</div>
<form method="GET" action="/jobs" class="bg-white rounded-lg shadow-sm border p-4 mb-6 flex flex-wrap gap-3 items-end">
    <div>
        <label class="block text-sm font-medium text-gray-700">Job type</label>
        <select name="job_type" class="mt-1 border rounded-md px-3 py-2">
            <option value="">All types</option>
            {{$selected := printf "%s" .Filter.JobType}}
            {{range .JobTypes}}
            <option value="{{.}}" {{if eq (printf "%s" .) $selected}}selected{{end}}>{{jobTypeLabel (printf "%s" .)}}</option>
            {{end}}
        </select>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Location</label>
        <input type="text" name="location" value="{{.Filter.Location}}" placeholder="Anywhere" class="mt-1 border rounded-md px-3 py-2">
    </div>
    <button type="submit" class="bg-indigo-600 text-white px-4 py-2 rounded-md hover:bg-indigo-700">Filter</button>
</form>
{{if .Jobs}}
<div class="grid gap-4 sm:grid-cols-2 lg:grid-cols-3">
    {{range .Jobs}}{{template "job_card" .}}{{end}}
</div>
{{else}}
<p class="text-gray-500 text-center py-12">No jobs match your filters.</p>
{{end}}`,

	"jobs/detail": `<div class="max-w-3xl mx-auto">
    <a href="/jobs" class="text-sm text-indigo-600">&larr; All jobs</a>
    <div class="mt-3 bg-white rounded-lg shadow-sm border p-8">
        <div class="flex justify-between items-start">
            <div>
                <h1 class="text-2xl font-bold text-gray-900">{{.Job.Title}}</h1>
                <p class="mt-1 text-gray-500">{{.Job.CompanyName}} &middot; {{.Job.Location}}</p>
            </div>
            <span class="text-xs bg-indigo-50 text-indigo-700 px-2 py-1 rounded">{{jobTypeLabel (printf "%s" .Job.JobType)}}</span>
        </div>
        {{if .Job.SalaryRange}}<p class="mt-4 text-sm text-gray-600"><strong>Salary:</strong> {{.Job.SalaryRange}}</p>{{end}}
        <p class="mt-1 text-sm text-gray-600"><strong>Apply by:</strong> {{formatDate .Job.Deadline}}</p>
        <div class="mt-6 prose prose-sm text-gray-700 whitespace-pre-line">{{.Job.Description}}</div>
        {{if .Job.Requirements}}
        <h2 class="mt-6 font-semibold text-gray-900">Requirements</h2>
        <div class="mt-2 prose prose-sm text-gray-700 whitespace-pre-line">{{.Job.Requirements}}</div>
        {{end}}
        {{if .Applied}}
        <div class="mt-8 bg-green-50 border border-green-200 text-green-700 rounded-md p-4">Your application has been submitted.</div>
        {{else if and .User (eq (printf "%s" .User.Role) "EMPLOYEE")}}
        <form method="POST" action="/jobs/{{.Job.ID}}/apply" class="mt-8 border-t pt-6">
            {{if .Error}}<div class="mb-4 bg-red-50 border border-red-200 text-red-700 text-sm rounded-md p-3">{{.Error}}</div>{{end}}
            <label class="block text-sm font-medium text-gray-700">Cover letter</label>
            <textarea name="cover_letter" rows="6" class="mt-1 w-full border rounded-md px-3 py-2" placeholder="Why are you a good fit?" required></textarea>
            <button type="submit" class="mt-4 bg-indigo-600 text-white px-5 py-2 rounded-md hover:bg-indigo-700">Apply</button>
        </form>
        {{else if not .User}}
        <div class="mt-8 border-t pt-6 text-sm text-gray-500"><a href="/login" class="text-indigo-600">Sign in</a> to apply for this job.</div>
        {{end}}
    </div>
</div>`,

	"employer/dashboard": `<h1 class="text-2xl font-bold text-gray-900 mb-6">Employer dashboard</h1>
<div class="grid gap-4 sm:grid-cols-3 mb-8">
    <div class="bg-white rounded-lg shadow-sm border p-5"><p class="text-sm text-gray-500">Open postings</p><p class="text-3xl font-bold text-gray-900">{{len .Jobs}}</p></div>
    <div class="bg-white rounded-lg shadow-sm border p-5"><p class="text-sm text-gray-500">Applications</p><p class="text-3xl font-bold text-gray-900">{{len .Applications}}</p></div>
    <div class="bg-white rounded-lg shadow-sm border p-5"><p class="text-sm text-gray-500">Awaiting review</p><p class="text-3xl font-bold text-yellow-600">{{.PendingCount}}</p></div>
</div>
<div class="flex justify-between items-center mb-3">
    <h2 class="text-lg font-semibold text-gray-900">Your postings</h2>
    <a href="/employer/post-job" class="text-sm bg-indigo-600 text-white px-3 py-1.5 rounded-md hover:bg-indigo-700">Post a job</a>
</div>
{{if .Jobs}}
<div class="bg-white rounded-lg shadow-sm border divide-y mb-8">
    {{range .Jobs}}
    <div class="p-4 flex justify-between items-center">
        <div>
            <a href="/jobs/{{.ID}}" class="font-medium text-gray-900 hover:text-indigo-600">{{.Title}}</a>
            <p class="text-sm text-gray-500">{{.Location}} &middot; posted {{humanTime .CreatedAt}}</p>
        </div>
        <div class="flex items-center space-x-3">
            <a href="/employer/jobs/{{.ID}}/edit" class="text-sm text-indigo-600">Edit</a>
            <form method="POST" action="/employer/jobs/{{.ID}}/delete" onsubmit="return confirm('Delete this posting?')">
                <button type="submit" class="text-sm text-red-600">Delete</button>
            </form>
        </div>
    </div>
    {{end}}
</div>
{{else}}
<p class="text-gray-500 mb-8">You have no postings yet.</p>
{{end}}
<h2 class="text-lg font-semibold text-gray-900 mb-3">Applications received</h2>
{{if .Applications}}
<div class="bg-white rounded-lg shadow-sm border divide-y">
    {{range $app := .Applications}}
    <div class="p-4">
        <div class="flex justify-between items-start">
            <div>
                <p class="font-medium text-gray-900">{{$app.Job.Title}}</p>
                <p class="text-sm text-gray-500">Applied {{humanTime $app.AppliedDate}}</p>
            </div>
            <span class="text-xs px-2 py-1 rounded {{statusBadge (printf "%s" $app.Status)}}">{{$app.Status}}</span>
        </div>
        <p class="mt-2 text-sm text-gray-600">{{truncate $app.CoverLetter 200}}</p>
        <form method="POST" action="/employer/applications/{{$app.ID}}/status" class="mt-3 flex items-center space-x-2">
            <select name="status" class="border rounded-md px-2 py-1 text-sm">
                {{range $.Statuses}}
                <option value="{{.}}" {{if eq . $app.Status}}selected{{end}}>{{.}}</option>
                {{end}}
            </select>
            <button type="submit" class="text-sm text-indigo-600">Update</button>
        </form>
    </div>
    {{end}}
</div>
{{else}}
<p class="text-gray-500">No applications yet.</p>
{{end}}`,

	"employer/post_job": `<div class="max-w-2xl mx-auto">
    <h1 class="text-2xl font-bold text-gray-900 mb-6">Post a job</h1>
    {{template "job_form" .}}
</div>`,

	"employer/edit_job": `<div class="max-w-2xl mx-auto">
    <h1 class="text-2xl font-bold text-gray-900 mb-6">Edit job</h1>
    {{template "job_form" .}}
</div>`,

	"components/job_form": `{{define "job_form"}}
{{if .Error}}<div class="mb-4 bg-red-50 border border-red-200 text-red-700 text-sm rounded-md p-3">{{.Error}}</div>{{end}}
<form method="POST" class="bg-white rounded-lg shadow-sm border p-6 space-y-4">
    <div>
        <label class="block text-sm font-medium text-gray-700">Title</label>
        <input type="text" name="title" value="{{if .Form}}{{.Form.Title}}{{end}}" class="mt-1 w-full border rounded-md px-3 py-2" required>
        {{with field .Fields "title"}}<p class="mt-1 text-sm text-red-600">{{.}}</p>{{end}}
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Description</label>
        <textarea name="description" rows="6" class="mt-1 w-full border rounded-md px-3 py-2" required>{{if .Form}}{{.Form.Description}}{{end}}</textarea>
        {{with field .Fields "description"}}<p class="mt-1 text-sm text-red-600">{{.}}</p>{{end}}
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Requirements</label>
        <textarea name="requirements" rows="4" class="mt-1 w-full border rounded-md px-3 py-2">{{if .Form}}{{.Form.Requirements}}{{end}}</textarea>
    </div>
    <div class="grid grid-cols-2 gap-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Location</label>
            <input type="text" name="location" value="{{if .Form}}{{.Form.Location}}{{end}}" class="mt-1 w-full border rounded-md px-3 py-2" required>
            {{with field .Fields "location"}}<p class="mt-1 text-sm text-red-600">{{.}}</p>{{end}}
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Job type</label>
            <select name="job_type" class="mt-1 w-full border rounded-md px-3 py-2">
                {{$selected := ""}}{{if .Form}}{{$selected = .Form.JobType}}{{end}}
                {{range .JobTypes}}
                <option value="{{.}}" {{if eq (printf "%s" .) $selected}}selected{{end}}>{{jobTypeLabel (printf "%s" .)}}</option>
                {{end}}
            </select>
        </div>
    </div>
    <div class="grid grid-cols-2 gap-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Salary range</label>
            <input type="text" name="salary_range" value="{{if .Form}}{{.Form.SalaryRange}}{{end}}" placeholder="e.g. $90k-$120k" class="mt-1 w-full border rounded-md px-3 py-2">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Deadline</label>
            <input type="date" name="deadline" value="{{if .Form}}{{.Form.Deadline}}{{end}}" class="mt-1 w-full border rounded-md px-3 py-2">
            {{with field .Fields "deadline"}}<p class="mt-1 text-sm text-red-600">{{.}}</p>{{end}}
        </div>
    </div>
    <button type="submit" class="bg-indigo-600 text-white px-5 py-2 rounded-md hover:bg-indigo-700">Save</button>
</form>
{{end}}`,

	"employer/company_profile": `<div class="max-w-2xl mx-auto">
    <h1 class="text-2xl font-bold text-gray-900 mb-6">Company profile</h1>
    {{if .Saved}}<div class="mb-4 bg-green-50 border border-green-200 text-green-700 text-sm rounded-md p-3">Profile saved.</div>{{end}}
    {{if .Error}}<div class="mb-4 bg-red-50 border border-red-200 text-red-700 text-sm rounded-md p-3">{{.Error}}</div>{{end}}
    <form method="POST" action="/employer/company-profile" enctype="multipart/form-data" class="bg-white rounded-lg shadow-sm border p-6 space-y-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Company name</label>
            <input type="text" name="company_name" value="{{if .Form}}{{.Form.CompanyName}}{{else if .Profile}}{{.Profile.CompanyName}}{{end}}" class="mt-1 w-full border rounded-md px-3 py-2" required>
            {{with field .Fields "companyname"}}<p class="mt-1 text-sm text-red-600">{{.}}</p>{{end}}
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Description</label>
            <textarea name="company_description" rows="4" class="mt-1 w-full border rounded-md px-3 py-2">{{if .Form}}{{.Form.CompanyDescription}}{{else if .Profile}}{{.Profile.CompanyDescription}}{{end}}</textarea>
        </div>
        <div class="grid grid-cols-2 gap-4">
            <div>
                <label class="block text-sm font-medium text-gray-700">Industry</label>
                <input type="text" name="industry" value="{{if .Form}}{{.Form.Industry}}{{else if .Profile}}{{.Profile.Industry}}{{end}}" class="mt-1 w-full border rounded-md px-3 py-2">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">Company size</label>
                <input type="text" name="company_size" value="{{if .Form}}{{.Form.CompanySize}}{{else if .Profile}}{{.Profile.CompanySize}}{{end}}" placeholder="e.g. 11-50" class="mt-1 w-full border rounded-md px-3 py-2">
            </div>
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Location</label>
            <input type="text" name="location" value="{{if .Form}}{{.Form.Location}}{{else if .Profile}}{{.Profile.Location}}{{end}}" class="mt-1 w-full border rounded-md px-3 py-2">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Logo</label>
            {{if and .Profile .Profile.CompanyLogo}}<img src="{{deref .Profile.CompanyLogo}}" alt="" class="mt-1 h-16 w-16 rounded object-cover">{{end}}
            <input type="file" name="company_logo" accept="image/*" class="mt-1 w-full text-sm">
        </div>
        <button type="submit" class="bg-indigo-600 text-white px-5 py-2 rounded-md hover:bg-indigo-700">Save</button>
    </form>
</div>`,

	"employee/dashboard": `<h1 class="text-2xl font-bold text-gray-900 mb-6">My applications</h1>
{{if .Applications}}
<div class="bg-white rounded-lg shadow-sm border divide-y">
    {{range .Applications}}
    <div class="p-4 flex justify-between items-start">
        <div>
            <a href="/jobs/{{.Job.ID}}" class="font-medium text-gray-900 hover:text-indigo-600">{{.Job.Title}}</a>
            <p class="text-sm text-gray-500">{{.Job.CompanyName}} &middot; applied {{humanTime .AppliedDate}}</p>
        </div>
        <div class="flex items-center space-x-3">
            <span class="text-xs px-2 py-1 rounded {{statusBadge (printf "%s" .Status)}}">{{.Status}}</span>
            {{if .Status.CanWithdraw}}
            <form method="POST" action="/employee/applications/{{.ID}}/withdraw" onsubmit="return confirm('Withdraw this application?')">
                <button type="submit" class="text-sm text-red-600">Withdraw</button>
            </form>
            {{end}}
        </div>
    </div>
    {{end}}
</div>
{{else}}
<div class="text-center py-12">
    <p class="text-gray-500">You have not applied to any jobs yet.</p>
    <a href="/jobs" class="mt-3 inline-block text-indigo-600">Browse open positions</a>
</div>
{{end}}`,

	"employee/profile": `<div class="max-w-2xl mx-auto">
    <h1 class="text-2xl font-bold text-gray-900 mb-6">My profile</h1>
    {{if .Saved}}<div class="mb-4 bg-green-50 border border-green-200 text-green-700 text-sm rounded-md p-3">Profile saved.</div>{{end}}
    {{if .Error}}<div class="mb-4 bg-red-50 border border-red-200 text-red-700 text-sm rounded-md p-3">{{.Error}}</div>{{end}}
    <form method="POST" action="/employee/profile" enctype="multipart/form-data" class="bg-white rounded-lg shadow-sm border p-6 space-y-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Degree</label>
            <input type="text" name="degree" value="{{if .Form}}{{.Form.Degree}}{{else if .Profile}}{{deref .Profile.Degree}}{{end}}" class="mt-1 w-full border rounded-md px-3 py-2">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Skills</label>
            <textarea name="skills" rows="3" placeholder="Comma-separated" class="mt-1 w-full border rounded-md px-3 py-2">{{if .Form}}{{.Form.Skills}}{{else if .Profile}}{{.Profile.Skills}}{{end}}</textarea>
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Experience</label>
            <textarea name="experience" rows="4" class="mt-1 w-full border rounded-md px-3 py-2">{{if .Form}}{{.Form.Experience}}{{else if .Profile}}{{.Profile.Experience}}{{end}}</textarea>
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Phone</label>
            <input type="text" name="phone" value="{{if .Form}}{{.Form.Phone}}{{else if .Profile}}{{.Profile.Phone}}{{end}}" class="mt-1 w-full border rounded-md px-3 py-2">
        </div>
        <div class="grid grid-cols-2 gap-4">
            <div>
                <label class="block text-sm font-medium text-gray-700">Profile photo</label>
                {{if and .Profile .Profile.ProfileImage}}<img src="{{deref .Profile.ProfileImage}}" alt="" class="mt-1 h-16 w-16 rounded-full object-cover">{{end}}
                <input type="file" name="profile_image" accept="image/*" class="mt-1 w-full text-sm">
            </div>
            <div>
                <label class="block text-sm font-medium text-gray-700">Resume</label>
                {{if and .Profile .Profile.Resume}}<p class="mt-1 text-sm text-gray-500">Uploaded</p>{{end}}
                <input type="file" name="resume" accept=".pdf,.doc,.docx" class="mt-1 w-full text-sm">
            </div>
        </div>
        <button type="submit" class="bg-indigo-600 text-white px-5 py-2 rounded-md hover:bg-indigo-700">Save</button>
    </form>
</div>`,
}
