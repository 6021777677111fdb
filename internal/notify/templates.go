package notify

import (
	"fmt"
	"html/template"
	"strings"
)

type mailData struct {
	CandidateName string
	JobRole       string
	Company       string
	FinalScore    string
	ATSScore      int
	Reasons       []string
	Summary       string
	NextSteps     string
}

var selectionTmpl = template.Must(template.New("selection").Parse(`
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px;">
    <h2 style="color: #28a745;">Congratulations, {{.CandidateName}}!</h2>
    <p>We are pleased to inform you that your application for the position of <strong>{{.JobRole}}</strong> at {{.Company}} has been <strong>selected</strong> for the next round.</p>
    <div style="background-color: #f8f9fa; padding: 15px; border-left: 4px solid #28a745; margin: 20px 0;">
      <h3 style="margin-top: 0; color: #28a745;">Evaluation Summary</h3>
      <p><strong>Final Score:</strong> {{.FinalScore}}</p>
      <p><strong>Key Strengths:</strong></p>
      <p>{{.Summary}}</p>
    </div>
    <h3>Next Steps</h3>
    <p>{{.NextSteps}}</p>
    <p>We look forward to connecting with you soon!</p>
    <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">
    <p style="font-size: 12px; color: #666;">Best regards,<br><strong>{{.Company}} Recruitment Team</strong></p>
  </div>
</body>
</html>
`))

var rejectionTmpl = template.Must(template.New("rejection").Parse(`
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px;">
    <h2 style="color: #dc3545;">Application Update</h2>
    <p>Dear {{.CandidateName}},</p>
    <p>Thank you for your interest in the <strong>{{.JobRole}}</strong> position at {{.Company}} and for taking the time to apply.</p>
    <p>After careful consideration of your application, we regret to inform you that we will not be moving forward with your candidacy at this time.</p>
    <div style="background-color: #f8f9fa; padding: 15px; border-left: 4px solid #ffc107; margin: 20px 0;">
      <h3 style="margin-top: 0; color: #856404;">Evaluation Feedback</h3>
      <p><strong>ATS Score:</strong> {{.ATSScore}}/100</p>
      <p><strong>Final Score:</strong> {{.FinalScore}}</p>
      {{if .Reasons}}<p><strong>Notes:</strong></p><ul>{{range .Reasons}}<li>{{.}}</li>{{end}}</ul>{{end}}
      <p><strong>Recommendation:</strong></p>
      <p>{{.Summary}}</p>
    </div>
    <p>We encourage you to continue developing your skills and applying for future opportunities with us.</p>
    <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">
    <p style="font-size: 12px; color: #666;">Best regards,<br><strong>{{.Company}} Recruitment Team</strong></p>
  </div>
</body>
</html>
`))

func buildOutcomeMail(n Notification, company string) (subject, body string, err error) {
	name := strings.TrimSpace(n.CandidateName)
	if name == "" {
		name = "Candidate"
	}
	summary := strings.TrimSpace(n.Recommendation)
	if summary == "" {
		summary = "Your profile was evaluated against our current requirements."
	}

	data := mailData{
		CandidateName: name,
		JobRole:       n.JobRole,
		Company:       company,
		FinalScore:    fmt.Sprintf("%.2f%%", n.FinalScore*100),
		ATSScore:      n.ATSScore,
		Reasons:       n.Reasons,
		Summary:       summary,
		NextSteps:     "Our HR team will contact you within 3-5 business days.",
	}

	var sb strings.Builder
	if n.Selected() {
		subject = fmt.Sprintf("Congratulations! Application Update for %s", n.JobRole)
		err = selectionTmpl.Execute(&sb, data)
	} else {
		subject = fmt.Sprintf("Application Update for %s at %s", n.JobRole, company)
		err = rejectionTmpl.Execute(&sb, data)
	}
	return subject, sb.String(), err
}
