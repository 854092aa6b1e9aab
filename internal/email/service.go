package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"github.com/p2p-kyc/verify-sub000/internal/clients/mail"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
)

var (
	ErrSendingEmail  = errors.New("error sending email")
	ErrEmptyTemplate = errors.New("email template is empty")
)

// EmailService handles sending marketplace notification emails
type EmailService struct {
	mailClient    *mail.ResendClient
	logger        *observability.Logger
	defaultSender string
	templates     map[string]string
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	Name         string
	CampaignName string
	CampaignLink string
	Amount       string
	Currency     string
	Accounts     int
	Reason       string
}

// New creates a new EmailService
func New(mailClient *mail.ResendClient, defaultSender string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		templates: map[string]string{
			"join_request_created": `
			<html>
				<body>
					<h1>New Join Request</h1>
					<p>Hi {{.Name}},</p>
					<p>A seller has applied to join your campaign <strong>{{.CampaignName}}</strong>.</p>
					<p><a href="{{.CampaignLink}}">Review the request</a></p>
				</body>
			</html>
			`,
			"join_request_accepted": `
			<html>
				<body>
					<h1>You're In</h1>
					<p>Hi {{.Name}},</p>
					<p>Your request to join <strong>{{.CampaignName}}</strong> was accepted. You can now chat with the buyer and submit your work.</p>
					<p><a href="{{.CampaignLink}}">Open the campaign</a></p>
				</body>
			</html>
			`,
			"charge_created": `
			<html>
				<body>
					<h1>Payment Requested</h1>
					<p>Hi {{.Name}},</p>
					<p>A seller has requested payment of <strong>{{.Amount}} {{.Currency}}</strong> for {{.Accounts}} verified account(s) on <strong>{{.CampaignName}}</strong>.</p>
					<p><a href="{{.CampaignLink}}">Approve or reject the charge</a></p>
				</body>
			</html>
			`,
			"charge_responded": `
			<html>
				<body>
					<h1>Charge Update</h1>
					<p>Hi {{.Name}},</p>
					<p>The buyer has responded to your payment request of <strong>{{.Amount}} {{.Currency}}</strong> on <strong>{{.CampaignName}}</strong>.</p>
					<p><a href="{{.CampaignLink}}">View the outcome</a></p>
				</body>
			</html>
			`,
			"charge_appealed": `
			<html>
				<body>
					<h1>Payment Appeal Opened</h1>
					<p>A rejected charge of <strong>{{.Amount}} {{.Currency}}</strong> on <strong>{{.CampaignName}}</strong> has been appealed.</p>
					<p>Reason: {{.Reason}}</p>
					<p><a href="{{.CampaignLink}}">Review the appeal</a></p>
				</body>
			</html>
			`,
			"appeal_resolved": `
			<html>
				<body>
					<h1>Appeal Resolved</h1>
					<p>Hi {{.Name}},</p>
					<p>An arbiter has resolved the appeal on your charge of <strong>{{.Amount}} {{.Currency}}</strong> on <strong>{{.CampaignName}}</strong>.</p>
					<p><a href="{{.CampaignLink}}">See the decision</a></p>
				</body>
			</html>
			`,
			"charge_paid": `
			<html>
				<body>
					<h1>Payment Sent</h1>
					<p>Hi {{.Name}},</p>
					<p>The buyer has paid <strong>{{.Amount}} {{.Currency}}</strong> for your work on <strong>{{.CampaignName}}</strong>. The payment proof is attached to your chat thread.</p>
					<p><a href="{{.CampaignLink}}">View the payment</a></p>
				</body>
			</html>
			`,
			"campaign_cancelled": `
			<html>
				<body>
					<h1>Campaign Cancelled</h1>
					<p>Hi {{.Name}},</p>
					<p>The campaign <strong>{{.CampaignName}}</strong> has been cancelled. No further work should be submitted.</p>
				</body>
			</html>
			`,
			"refund_requested": `
			<html>
				<body>
					<h1>Refund Requested</h1>
					<p>A buyer has requested a refund of <strong>{{.Amount}} {{.Currency}}</strong> on <strong>{{.CampaignName}}</strong>.</p>
					<p><a href="{{.CampaignLink}}">Review the request</a></p>
				</body>
			</html>
			`,
			"refund_completed": `
			<html>
				<body>
					<h1>Refund Completed</h1>
					<p>Hi {{.Name}},</p>
					<p>Your refund of <strong>{{.Amount}} {{.Currency}}</strong> for <strong>{{.CampaignName}}</strong> has been paid out and the campaign was cancelled.</p>
				</body>
			</html>
			`,
		},
	}
}

func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	templateContent, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	tmpl, err := template.New(templateName).Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// Subjects per notification kind.
var subjects = map[string]string{
	"join_request_created":  "New join request on your campaign",
	"join_request_accepted": "Your join request was accepted",
	"charge_created":        "Payment requested on your campaign",
	"charge_responded":      "Your payment request has an answer",
	"charge_appealed":       "Payment appeal opened",
	"appeal_resolved":       "Your payment appeal was resolved",
	"charge_paid":           "You've been paid",
	"campaign_cancelled":    "Campaign cancelled",
	"refund_requested":      "Refund requested",
	"refund_completed":      "Your refund is complete",
}

// SendNotification renders and sends the notification email for a kind
func (s *EmailService) SendNotification(ctx context.Context, kind, to string, data TemplateData) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: kind},
		observability.Field{Key: "recipient", Value: to},
	)

	subject, ok := subjects[kind]
	if !ok {
		return fmt.Errorf("unknown notification kind %q", kind)
	}

	htmlContent, err := s.renderTemplate(kind, data)
	if err != nil {
		s.logger.Error(ctx, "failed to render notification template", err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	if _, err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent); err != nil {
		s.logger.Error(ctx, "failed to send notification email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendEmail sends a raw email with the given content
func (s *EmailService) SendEmail(ctx context.Context, to, subject, htmlContent string) error {
	if htmlContent == "" {
		return ErrEmptyTemplate
	}

	if _, err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent); err != nil {
		s.logger.Error(ctx, "failed to send email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}
	return nil
}
