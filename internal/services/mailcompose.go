package services

import (
	"fmt"
	"net/url"

	"github.com/zensolve/jobportal-admin/internal/config"
	"github.com/zensolve/jobportal-admin/internal/models"
)

// Notice is a ready-to-send subject/body pair plus the compose deep link
// staff open to actually send it. Composition is pure; opening the link is
// the caller's side effect.
type Notice struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	MailLink string `json:"mailLink"`
}

const composeBaseURL = "https://mail.google.com/mail/?view=cm&fs=1"

func composeMailLink(to, subject, body string) string {
	return composeBaseURL +
		"&to=" + url.QueryEscape(to) +
		"&su=" + url.QueryEscape(subject) +
		"&body=" + url.QueryEscape(body)
}

func orgFooter(org config.Organization) string {
	return fmt.Sprintf(`Best regards,
The Recruitment Team
%s

Contact Information:
- Address: %s
- Email: %s
- Call us: %s`, org.Name, org.Address, org.Email, org.Phone)
}

// AcceptanceNotice builds the acceptance mail for an applicant. The
// subject format is load-bearing: the public site links staff replies back
// to postings by matching "Application Accepted - <position> at <company>".
func AcceptanceNotice(app models.Application, org config.Organization) Notice {
	subject := fmt.Sprintf("Application Accepted - %s at %s", app.JobPosition, app.CompanyName)
	body := fmt.Sprintf(`Dear %s,

Thank you for applying for the %s position at %s.

We are pleased to inform you that your application has been accepted, and we will get in touch with you soon. Here are the details we received:

- Name: %s
- Email: %s
- Position: %s at %s

We look forward to working with you!

%s`, app.ApplicantName, app.JobPosition, app.CompanyName,
		app.ApplicantName, app.ApplicantEmail, app.JobPosition, app.CompanyName,
		orgFooter(org))
	return Notice{Subject: subject, Body: body, MailLink: composeMailLink(app.ApplicantEmail, subject, body)}
}

func RejectionNotice(app models.Application, org config.Organization) Notice {
	subject := fmt.Sprintf("Application Status - %s at %s", app.JobPosition, app.CompanyName)
	body := fmt.Sprintf(`Dear %s,

Thank you for your interest in the %s position at %s.

We have reviewed your application carefully, but unfortunately, we will not be moving forward with your application at this time. We encourage you to apply again in the future if a suitable opportunity arises.

Best of luck with your job search and future career endeavors.

%s`, app.ApplicantName, app.JobPosition, app.CompanyName, orgFooter(org))
	return Notice{Subject: subject, Body: body, MailLink: composeMailLink(app.ApplicantEmail, subject, body)}
}
