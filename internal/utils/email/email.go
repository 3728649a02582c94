package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/Dan9191/bank-recommender/internal/config"
	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/Dan9191/bank-recommender/internal/scoring"
	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
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

// SendRecommendationDigest emails the recommended products with their estimated values
func (s *Sender) SendRecommendationDigest(to, name string, resp *models.RecommendationResponse) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Your Personalised Product Recommendations"
	e.Text = []byte(digestBody(name, resp, time.Now()))

	// Send email
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send digest to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

func digestBody(name string, resp *models.RecommendationResponse, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	fmt.Fprintf(&b, "Here are the products we recommend for you as of %s.\n\n", now.Format("2 January 2006"))

	if resp.Summary != "" {
		b.WriteString(resp.Summary)
		b.WriteString("\n\n")
	}

	total := decimal.Zero
	for i, rec := range resp.Recommendations {
		value := decimal.NewFromFloat(rec.EstimatedValue)
		total = total.Add(value)
		fmt.Fprintf(&b, "%d. %s (%s, %s priority)\n", i+1, rec.Name, rec.Category, rec.Priority)
		if rec.Reasoning != "" {
			fmt.Fprintf(&b, "   %s\n", rec.Reasoning)
		}
		if value.IsPositive() {
			fmt.Fprintf(&b, "   Estimated value: %s\n", scoring.FormatDecimalRM(value))
		}
	}
	if total.IsPositive() {
		fmt.Fprintf(&b, "\nCombined estimated value: %s\n", scoring.FormatDecimalRM(total))
	}

	b.WriteString("\nYour relationship manager is happy to walk you through any of these options.\n")
	b.WriteString("\nBest regards,\nAmBank Advisory")
	return b.String()
}
