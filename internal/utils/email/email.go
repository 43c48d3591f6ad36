package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/finwell/finhealth-service/internal/config"
	"github.com/finwell/finhealth-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendHealthDigest sends the weekly financial health summary
func (s *Sender) SendHealthDigest(to, username string, report models.HealthReport, keyRate float64) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Your Weekly Financial Health Digest"

	body := fmt.Sprintf(
		"Dear %s,\n\nHere is your financial health summary for the week:\n\n", username,
	)
	body += fmt.Sprintf(
		"Health score: %d/100\n"+
			"Net worth: %s\n"+
			"Monthly surplus: %s\n"+
			"Monthly burn: %s\n"+
			"Emergency fund: %.1f months\n",
		report.Score,
		report.NetWorth.StringFixed(2),
		report.Surplus.StringFixed(2),
		report.MonthlyBurn.StringFixed(2),
		report.EmergencyMonths,
	)

	if report.DebtStrategy.Strategy == "None" {
		body += "Debt: none outstanding. Keep it up!\n"
	} else {
		body += fmt.Sprintf(
			"Debt freedom: %s (extra payment of %s per month recommended)\n",
			report.DebtStrategy.FreedomDate,
			report.DebtStrategy.RecommendedExtraPayment.StringFixed(2),
		)
	}

	if keyRate > 0 {
		body += fmt.Sprintf("\nCurrent central bank key rate: %.2f%%\n", keyRate)
	}
	body += "\nBest regards,\nFinHealth Service"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send digest to %s: %v", to, err)
		return fmt.Errorf("failed to send digest: %w", err)
	}

	s.logger.Infof("Digest sent to %s", to)
	return nil
}
