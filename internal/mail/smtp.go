package mail

import (
	"gopkg.in/gomail.v2"

	"github.com/jhc-clinics/hms-api/internal/config"
)

type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(cfg *config.Config) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUsername,
			cfg.SMTPPassword,
		),
		from: cfg.MailFrom,
	}
}

func (n *SMTPNotifier) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return n.dialer.DialAndSend(m)
}

func (n *SMTPNotifier) SendDoctorWelcome(email, firstName, lastName, password string) error {
	return n.send(email, "Welcome to JHC Clinics", doctorWelcomeBody(email, firstName, lastName, password))
}

func (n *SMTPNotifier) SendPatientWelcome(email, firstName, lastName, token string) error {
	return n.send(email, "Welcome to JHC", patientWelcomeBody(firstName, lastName, token))
}

func (n *SMTPNotifier) SendPasswordReset(email, firstName, lastName, token string) error {
	return n.send(email, "Password Reset Request", passwordResetBody(firstName, lastName, token))
}

func (n *SMTPNotifier) SendPasswordResetSuccess(email, firstName, lastName string) error {
	return n.send(email, "Password Reset Successful", passwordResetSuccessBody(firstName, lastName))
}

// Compile-time check
var _ Notifier = (*SMTPNotifier)(nil)
