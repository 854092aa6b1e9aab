package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/p2p-kyc/verify-sub000/internal/email"
	"github.com/p2p-kyc/verify-sub000/internal/jobs"
	"github.com/p2p-kyc/verify-sub000/internal/observability"
	"github.com/p2p-kyc/verify-sub000/internal/store"
)

// NotificationStore defines the database operations required by NotificationWorker
type NotificationStore interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
}

// NotificationWorker sends the email for a single notification job.
type NotificationWorker struct {
	store        NotificationStore
	emailService *email.EmailService
	baseURL      string
	logger       *observability.Logger
}

func NewNotificationWorker(store NotificationStore, emailService *email.EmailService, baseURL string, logger *observability.Logger) *NotificationWorker {
	return &NotificationWorker{
		store:        store,
		emailService: emailService,
		baseURL:      baseURL,
		logger:       logger,
	}
}

// ProcessNotificationTask handles an email:notification task. Returning
// an error triggers asynq's retry with backoff.
func (w *NotificationWorker) ProcessNotificationTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.NotificationJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal notification payload: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "notification_kind", Value: payload.Kind},
		observability.Field{Key: "campaign_id", Value: payload.CampaignID.String()},
		observability.Field{Key: "recipient_id", Value: payload.RecipientID.String()},
	)

	recipient, err := w.store.GetUserByID(ctx, payload.RecipientID)
	if err != nil {
		w.logger.Error(ctx, "failed to load notification recipient", err)
		return err
	}

	campaign, err := w.store.GetCampaignByID(ctx, payload.CampaignID)
	if err != nil {
		w.logger.Error(ctx, "failed to load campaign for notification", err)
		return err
	}

	data := email.TemplateData{
		Name:         recipient.Name,
		CampaignName: campaign.Name,
		CampaignLink: fmt.Sprintf("%s/campaigns/%s", w.baseURL, campaign.ID),
		Currency:     store.CurrencyUSDT,
	}
	if amount, ok := payloadAmount(payload.Data); ok {
		data.Amount = amount
	}
	if accounts, ok := payload.Data["accounts"].(float64); ok {
		data.Accounts = int(accounts)
	}
	if reason, ok := payload.Data["reason"].(string); ok {
		data.Reason = reason
	}

	if err := w.emailService.SendNotification(ctx, payload.Kind, recipient.Email, data); err != nil {
		w.logger.Error(ctx, "failed to send notification email", err)
		return err
	}

	w.logger.Info(ctx, "notification email sent")
	return nil
}

// payloadAmount formats the integer USDT amount carried in the job data.
// JSON round-tripping turns it into a float64.
func payloadAmount(data map[string]interface{}) (string, bool) {
	raw, ok := data["amount"]
	if !ok {
		return "", false
	}
	switch v := raw.(type) {
	case float64:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}
