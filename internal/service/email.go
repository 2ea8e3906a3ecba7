package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"seatsafe-backend/internal/config"
	"seatsafe-backend/internal/logger"
)

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(cfg config.SendGridConfig) EmailService {
	return &emailService{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *emailService) send(ctx context.Context, toEmail, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		logger.ErrorContext(ctx, "failed to send email", "to", toEmail, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		logger.ErrorContext(ctx, "sendgrid rejected email", "to", toEmail, "subject", subject, "status", resp.StatusCode)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	logger.InfoContext(ctx, "email sent", "to", toEmail, "subject", subject)
	return nil
}

func (s *emailService) SendRentalRequestNotification(ctx context.Context, providerEmail, renterName, equipmentName string) error {
	subject := "New rental request"
	plain := fmt.Sprintf("%s has requested to rent %s. Review the request in your dashboard.", renterName, equipmentName)
	html := fmt.Sprintf("<p><strong>%s</strong> has requested to rent <strong>%s</strong>.</p><p>Review the request in your dashboard.</p>", renterName, equipmentName)
	return s.send(ctx, providerEmail, subject, plain, html)
}

func (s *emailService) SendRentalApprovalNotification(ctx context.Context, renterEmail, equipmentName, providerName, pickupNote string) error {
	subject := fmt.Sprintf("Your rental of %s was approved", equipmentName)
	plain := fmt.Sprintf("%s approved your rental of %s.", providerName, equipmentName)
	html := fmt.Sprintf("<p><strong>%s</strong> approved your rental of <strong>%s</strong>.</p>", providerName, equipmentName)
	if pickupNote != "" {
		plain += fmt.Sprintf(" Pickup instructions: %s", pickupNote)
		html += fmt.Sprintf("<p>Pickup instructions: %s</p>", pickupNote)
	}
	return s.send(ctx, renterEmail, subject, plain, html)
}

func (s *emailService) SendRentalRejectionNotification(ctx context.Context, renterEmail, equipmentName, providerName, reason string) error {
	subject := fmt.Sprintf("Your rental request for %s was declined", equipmentName)
	plain := fmt.Sprintf("%s declined your request to rent %s.", providerName, equipmentName)
	html := fmt.Sprintf("<p><strong>%s</strong> declined your request to rent <strong>%s</strong>.</p>", providerName, equipmentName)
	if reason != "" {
		plain += fmt.Sprintf(" Reason: %s", reason)
		html += fmt.Sprintf("<p>Reason: %s</p>", reason)
	}
	return s.send(ctx, renterEmail, subject, plain, html)
}

func (s *emailService) SendRentalCancellationNotification(ctx context.Context, providerEmail, renterName, equipmentName string) error {
	subject := "Rental cancelled"
	plain := fmt.Sprintf("%s cancelled their rental of %s.", renterName, equipmentName)
	html := fmt.Sprintf("<p><strong>%s</strong> cancelled their rental of <strong>%s</strong>.</p>", renterName, equipmentName)
	return s.send(ctx, providerEmail, subject, plain, html)
}

func (s *emailService) SendRentalCompletionNotification(ctx context.Context, email, equipmentName string, netPayout float64) error {
	subject := fmt.Sprintf("Rental of %s completed", equipmentName)
	plain := fmt.Sprintf("The rental of %s is complete. A payout of $%.2f has been recorded to your ledger.", equipmentName, netPayout)
	html := fmt.Sprintf("<p>The rental of <strong>%s</strong> is complete.</p><p>A payout of <strong>$%.2f</strong> has been recorded to your ledger.</p>", equipmentName, netPayout)
	return s.send(ctx, email, subject, plain, html)
}

func (s *emailService) SendReturnReminder(ctx context.Context, renterEmail, equipmentName, endDate string) error {
	subject := fmt.Sprintf("Reminder: return %s by %s", equipmentName, endDate)
	plain := fmt.Sprintf("Your rental of %s ends on %s. Please arrange the return with your provider.", equipmentName, endDate)
	html := fmt.Sprintf("<p>Your rental of <strong>%s</strong> ends on <strong>%s</strong>.</p><p>Please arrange the return with your provider.</p>", equipmentName, endDate)
	return s.send(ctx, renterEmail, subject, plain, html)
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, customerEmail, serviceName, providerName, date, startTime, referenceCode string) error {
	subject := fmt.Sprintf("Booking confirmed: %s on %s", serviceName, date)
	plain := fmt.Sprintf("Your %s appointment with %s is confirmed for %s at %s. Reference: %s.", serviceName, providerName, date, startTime, referenceCode)
	html := fmt.Sprintf("<p>Your <strong>%s</strong> appointment with <strong>%s</strong> is confirmed for <strong>%s at %s</strong>.</p><p>Reference: <strong>%s</strong></p>", serviceName, providerName, date, startTime, referenceCode)
	return s.send(ctx, customerEmail, subject, plain, html)
}

func (s *emailService) SendBookingCancellationNotification(ctx context.Context, providerEmail, customerName, serviceName, date, startTime string) error {
	subject := "Booking cancelled"
	plain := fmt.Sprintf("%s cancelled their %s appointment on %s at %s.", customerName, serviceName, date, startTime)
	html := fmt.Sprintf("<p><strong>%s</strong> cancelled their <strong>%s</strong> appointment on %s at %s.</p>", customerName, serviceName, date, startTime)
	return s.send(ctx, providerEmail, subject, plain, html)
}
