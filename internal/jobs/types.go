package jobs

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	// High priority queue
	TypeEmailNotification = "email:notification"

	// Medium priority queue
	TypeTallyReconcile = "tally:reconcile"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// Notification kinds delivered by the email worker.
const (
	NotificationJoinRequestCreated  = "join_request_created"
	NotificationJoinRequestAccepted = "join_request_accepted"
	NotificationChargeCreated       = "charge_created"
	NotificationChargeResponded     = "charge_responded"
	NotificationChargeAppealed      = "charge_appealed"
	NotificationAppealResolved      = "appeal_resolved"
	NotificationChargePaid          = "charge_paid"
	NotificationCampaignCancelled   = "campaign_cancelled"
	NotificationRefundRequested     = "refund_requested"
	NotificationRefundCompleted     = "refund_completed"
)

// NotificationJobPayload represents an email notification job
type NotificationJobPayload struct {
	Kind        string                 `json:"kind"`
	CampaignID  uuid.UUID              `json:"campaign_id"`
	RecipientID uuid.UUID              `json:"recipient_id"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// NewNotificationTask creates a new email notification task
func NewNotificationTask(payload NotificationJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEmailNotification, data, asynq.Queue(QueueHigh), asynq.MaxRetry(5)), nil
}

// TallyReconcileJobPayload represents a charged-tally cache refresh job
type TallyReconcileJobPayload struct {
	CampaignID uuid.UUID `json:"campaign_id"`
}

// NewTallyReconcileTask creates a new tally reconcile task
func NewTallyReconcileTask(payload TallyReconcileJobPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeTallyReconcile, data, asynq.Queue(QueueMedium), asynq.MaxRetry(3)), nil
}
