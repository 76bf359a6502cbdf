package utils

import (
	"fmt"
	"os"

	"github.com/keighl/postmark"

	"github.com/amirulkanak/delibox-parcel-delivery-backend/models"
)

// EmailService handles sending transactional emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
// Returns nil when no API token is configured; callers treat a nil service
// as email disabled.
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendBookingConfirmationEmail notifies the customer that their parcel was
// booked
func (es *EmailService) SendBookingConfirmationEmail(toEmail string, parcel models.Parcel) error {
	subject := "Parcel Booked - DeliBox"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your parcel (ID: %s) has been booked and is pending a delivery-man assignment.<br><br>Requested Delivery Date: <strong>%s</strong><br>Price: <strong>$%.2f</strong><br><br>Thank you for choosing DeliBox!",
		parcel.User.Name,
		parcel.ID.Hex(),
		parcel.DeliveryDate.Format("2006-01-02"),
		parcel.Price,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendDeliveredEmail notifies the customer that their parcel was delivered
func (es *EmailService) SendDeliveredEmail(toEmail string, parcelID string) error {
	subject := "Parcel Delivered - DeliBox"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>Your parcel (ID: %s) has been delivered. We would love to hear your feedback - please leave a review for your delivery man.<br><br>Thank you for choosing DeliBox!",
		parcelID,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
