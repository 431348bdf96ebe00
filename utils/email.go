// utils/email.go
package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"shopcore/models"
)

// EmailService sends transactional email through SendGrid. It is optional:
// checkout works without one configured.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
func NewEmailService(apiKey, sender string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("sendgrid api key is not set")
	}
	if sender == "" {
		return nil, fmt.Errorf("email sender is not set")
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}, nil
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, toName, subject, htmlContent string) error {
	from := mail.NewEmail("ShopCore", es.sender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: sendgrid returned %d", resp.StatusCode)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation email to the user.
func (es *EmailService) SendOrderConfirmationEmail(toEmail, toName string, order models.Order) error {
	subject := "Order Confirmation"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your purchase! Your order (ID: %d) was placed on <strong>%s</strong>.<br><br>Total Amount: <strong>$%.2f</strong><br><br>Thank you for shopping with us!",
		toName,
		order.ID,
		order.Date.Format("2006-01-02"),
		order.Total,
	)

	return es.SendEmail(toEmail, toName, subject, htmlContent)
}
