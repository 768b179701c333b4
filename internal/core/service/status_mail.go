package service

import (
	"bytes"
	"html/template"
)

const (
	subjectVerified = "Techutsav25 -Panorama - Payment Verification Successful"
	subjectRejected = "Techutsav25 -Panorama - Payment Verification Failed"
)

// The two notification bodies match the mails the event team has always
// sent; only the registrant name varies and is HTML-escaped on render.
var verifiedTmpl = template.Must(template.New("verified").Parse(
	`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
  <h2 style="color: #4CAF50;">Payment Successfully Verified!</h2>
  <p>Dear {{.FullName}},</p>
  <p>Your payment has been successfully verified by the Administrator.</p>
  <p>Our Team is very eager to meet you up in the event. Wish you have a safe journey.</p>
  <p>If you have any questions, please don't hesitate to contact us.</p>
  <p>Regards,<br>Team Techutsav25 -Panorama</p>
</div>`))

var rejectedTmpl = template.Must(template.New("rejected").Parse(
	`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
  <h2 style="color: #F44336;">Payment Verification Failed</h2>
  <p>Dear {{.FullName}},</p>
  <p>Your payment transaction address is not matched. Please check the transaction ID of your payment and try once again.</p>
  <p>If you need any assistance, please contact our support team.</p>
  <p>Thank you.</p>
  <p>Regards,<br>Team Techutsav25 -Panorama</p>
</div>`))

// paymentStatusMail renders the subject and HTML body for a verification
// verdict.
func paymentStatusMail(paid bool, fullName string) (subject, body string, err error) {
	tmpl, subject := rejectedTmpl, subjectRejected
	if paid {
		tmpl, subject = verifiedTmpl, subjectVerified
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ FullName string }{FullName: fullName}); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
