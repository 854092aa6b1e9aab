package store

// Campaign ENUMs
const (
	CampaignStatusPending           = "pending"
	CampaignStatusActive            = "active"
	CampaignStatusInactive          = "inactive"
	CampaignStatusPendingPayment    = "pending_payment"
	CampaignStatusProcessingPayment = "processing_payment"
	CampaignStatusCompleted         = "completed"
	CampaignStatusCancelled         = "cancelled"
)

const (
	CampaignPaymentStatusPending  = "pending"
	CampaignPaymentStatusApproved = "approved"
)

// Join request ENUMs
const (
	JoinRequestStatusPending  = "pending"
	JoinRequestStatusAccepted = "accepted"
	JoinRequestStatusRejected = "rejected"
)

// Message ENUMs
const (
	MessageTypeText            = "text"
	MessageTypeImage           = "image"
	MessageTypeCharge          = "charge"
	MessageTypePaymentResponse = "payment_response"
	MessageTypePaymentRejected = "payment_rejected"
	MessageTypePaymentAppeal   = "payment_appeal"
	MessageTypeAppealResponse  = "appeal_response"
	MessageTypePaymentProof    = "payment_proof"
	MessageTypeSystem          = "system"
)

// Payment request ENUMs
const (
	PaymentRequestStatusPending   = "pending"
	PaymentRequestStatusApproved  = "approved"
	PaymentRequestStatusRejected  = "rejected"
	PaymentRequestStatusAppealed  = "appealed"
	PaymentRequestStatusCompleted = "completed"
	PaymentRequestStatusPaid      = "paid"
)

// Verification ENUMs
const (
	VerificationStatusPending   = "pending"
	VerificationStatusApproved  = "approved"
	VerificationStatusCompleted = "completed"
)

// Refund request ENUMs
const (
	RefundStatusPending   = "pending"
	RefundStatusApproved  = "approved"
	RefundStatusRejected  = "rejected"
	RefundStatusCompleted = "completed"
)

// User ENUMs
const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"
)

// Currency used for all marketplace amounts.
const CurrencyUSDT = "USDT"

// IsTerminalCampaignStatus reports whether the status permits no further
// owner updates.
func IsTerminalCampaignStatus(status string) bool {
	return status == CampaignStatusCompleted || status == CampaignStatusCancelled
}
