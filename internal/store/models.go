package store

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format: {item1,item2,item3}
	return "{" + strings.Join(a, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = []string{}
		return nil
	}

	*a = strings.Split(str, ",")
	return nil
}

// Campaign is a buyer's unit of work with a fixed capacity of verifiable accounts.
type Campaign struct {
	ID                uuid.UUID   `db:"id" json:"id"`
	OwnerID           uuid.UUID   `db:"owner_id" json:"owner_id"`
	Name              string      `db:"name" json:"name"`
	Description       string      `db:"description" json:"description"`
	Countries         StringArray `db:"countries" json:"countries"`
	AccountCount      int         `db:"account_count" json:"account_count"`
	PricePerAccount   int64       `db:"price_per_account" json:"price_per_account"`
	TotalPrice        int64       `db:"total_price" json:"total_price"`
	VerificationCount int         `db:"verification_count" json:"verification_count"`
	Status            string      `db:"status" json:"status"`
	PaymentProofURL   *string     `db:"payment_proof_url" json:"payment_proof_url,omitempty"`
	PaymentStatus     string      `db:"payment_status" json:"payment_status"`
	CreatedAt         time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time   `db:"updated_at" json:"updated_at"`
	CompletedAt       *time.Time  `db:"completed_at" json:"completed_at,omitempty"`
	CancelledAt       *time.Time  `db:"cancelled_at" json:"cancelled_at,omitempty"`
	DeletedAt         *time.Time  `db:"deleted_at" json:"-"`
}

// JoinRequest is a seller's application to join a campaign and the
// container for the associated chat thread.
type JoinRequest struct {
	ID         uuid.UUID `db:"id" json:"id"`
	CampaignID uuid.UUID `db:"campaign_id" json:"campaign_id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Message is one entry in a join request's append-only chat thread.
// Workflow-trigger messages carry the id of the payment request they refer to.
type Message struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	RequestID        uuid.UUID  `db:"request_id" json:"request_id"`
	UserID           uuid.UUID  `db:"user_id" json:"user_id"`
	Type             string     `db:"type" json:"type"`
	Body             *string    `db:"body" json:"body,omitempty"`
	ImageURL         *string    `db:"image_url" json:"image_url,omitempty"`
	PaymentRequestID *uuid.UUID `db:"payment_request_id" json:"payment_request_id,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

// PaymentRequest is a seller-initiated charge against verified accounts.
// AccountsRequested is nullable: rows written before the per-charge count
// existed default to one account.
type PaymentRequest struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	RequestID         uuid.UUID  `db:"request_id" json:"request_id"`
	CampaignID        uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	SellerID          uuid.UUID  `db:"seller_id" json:"seller_id"`
	BuyerID           uuid.UUID  `db:"buyer_id" json:"buyer_id"`
	Amount            int64      `db:"amount" json:"amount"`
	AccountsRequested *int       `db:"accounts_requested" json:"accounts_requested,omitempty"`
	PricePerAccount   int64      `db:"price_per_account" json:"price_per_account"`
	Currency          string     `db:"currency" json:"currency"`
	Status            string     `db:"status" json:"status"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	RespondedAt       *time.Time `db:"responded_at" json:"responded_at,omitempty"`
	AppealedAt        *time.Time `db:"appealed_at" json:"appealed_at,omitempty"`
	AppealResolvedAt  *time.Time `db:"appeal_resolved_at" json:"appeal_resolved_at,omitempty"`
	AppealResolvedBy  *uuid.UUID `db:"appeal_resolved_by" json:"appeal_resolved_by,omitempty"`
}

// Verification is proof submitted for a single account's completion.
type Verification struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	CampaignID  uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	Status      string     `db:"status" json:"status"`
	ProofURL    string     `db:"proof_url" json:"proof_url"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	ApprovedAt  *time.Time `db:"approved_at" json:"approved_at,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// RefundRequest is a buyer's request to claw back a campaign payment.
type RefundRequest struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	CampaignID  uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	BuyerID     uuid.UUID  `db:"buyer_id" json:"buyer_id"`
	RequestID   *uuid.UUID `db:"request_id" json:"request_id,omitempty"`
	Amount      int64      `db:"amount" json:"amount"`
	Currency    string     `db:"currency" json:"currency"`
	Status      string     `db:"status" json:"status"`
	ProofURL    *string    `db:"proof_url" json:"proof_url,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	ResolvedAt  *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// ActivityEvent is an immutable audit record of a state-changing action.
type ActivityEvent struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Type        string     `db:"type" json:"type"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	ActorID     *uuid.UUID `db:"actor_id" json:"actor_id,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// User mirrors the identity service's principal plus marketplace role.
type User struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	ExternalID string     `db:"external_id" json:"external_id"`
	Email      string     `db:"email" json:"email"`
	Name       string     `db:"name" json:"name"`
	Role       string     `db:"role" json:"role"`
	LastLogin  *time.Time `db:"last_login" json:"last_login,omitempty"`
	LastActive *time.Time `db:"last_active" json:"last_active,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}
