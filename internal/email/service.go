package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/vetco-health/vetco-api/internal/config"
	"github.com/vetco-health/vetco-api/internal/model"
)

// Service sends notification mail. Failures are the caller's to log;
// notification mail never fails a request.
type Service interface {
	SendWelcome(to, name string) error
	SendAppointmentBooked(to string, appointment *model.Appointment) error
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPService builds a gomail-backed sender from SMTP config.
func NewSMTPService(cfg config.SMTPConfig) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendWelcome(to, name string) error {
	body := fmt.Sprintf(
		"Hi %s,<br><br>Welcome to VetCo. Your account is ready. Log in to book appointments and message veterinarians.",
		name,
	)
	return s.send(to, "Welcome to VetCo", body)
}

func (s *smtpService) SendAppointmentBooked(to string, appointment *model.Appointment) error {
	body := fmt.Sprintf(
		"Your appointment %q is booked for %s at %s.",
		appointment.Title, appointment.Date, appointment.Time,
	)
	return s.send(to, "Appointment booked", body)
}

func (s *smtpService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// Noop discards all mail; used when SMTP is not configured and in tests.
type Noop struct{}

func (Noop) SendWelcome(string, string) error                       { return nil }
func (Noop) SendAppointmentBooked(string, *model.Appointment) error { return nil }
