package email

import (
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// EmailService defines the notification surface of the review workflow.
// Sends are best-effort: a failure is logged by the caller and never rolls
// back the status transition it accompanies.
type EmailService interface {
	SendApprovalNotification(toEmail, toName string) error
	SendDeclineNotification(toEmail, toName string, declinedFields []string) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// EmailServiceImpl implements EmailService over plain SMTP
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendApprovalNotification tells an applicant their application was approved
func (s *EmailServiceImpl) SendApprovalNotification(toEmail, toName string) error {
	subject := "Your Application Has Been Approved - AdmitPortal"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #2e7d32;">Application Approved</h2>
				<p>Hello %s,</p>
				<p>Congratulations! Your admission application has been reviewed and approved. You can now log in to the portal to continue with the next steps.</p>
				<p>Best regards,<br>The Admissions Office</p>
			</div>
		</body>
		</html>
	`, toName)
	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendDeclineNotification tells an applicant which fields were rejected and
// must be corrected before resubmission.
func (s *EmailServiceImpl) SendDeclineNotification(toEmail, toName string, declinedFields []string) error {
	subject := "Action Required on Your Application - AdmitPortal"

	items := make([]string, 0, len(declinedFields))
	for _, field := range declinedFields {
		items = append(items, "<li>"+humanizeFieldPath(field)+"</li>")
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #c62828;">Application Needs Corrections</h2>
				<p>Hello %s,</p>
				<p>The admissions office reviewed your application and needs you to correct the following fields:</p>
				<ul>%s</ul>
				<p>Please log in to the portal and resubmit the corrected values. Only the fields listed above can be changed.</p>
				<p>Best regards,<br>The Admissions Office</p>
			</div>
		</body>
		</html>
	`, toName, strings.Join(items, ""))
	return s.sendHTMLEmail(toEmail, subject, body)
}

// humanizeFieldPath turns a dotted field path into display text, e.g.
// "father.mobile" -> "Father mobile".
func humanizeFieldPath(path string) string {
	display := strings.ReplaceAll(path, ".", " ")
	if display == "" {
		return display
	}
	return strings.ToUpper(display[:1]) + display[1:]
}

// sendHTMLEmail sends an HTML email. Without SMTP credentials the message is
// logged instead, so development environments never need a mail server.
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Msg("SMTP credentials not configured - notification not sent")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	var message strings.Builder
	for key, value := range headers {
		message.WriteString(key + ": " + value + "\r\n")
	}
	message.WriteString("\r\n" + htmlBody)

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, []byte(message.String()))
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
