package models

// PaymentStatus is the lifecycle state of a Payment.
type PaymentStatus string

const (
	PaymentApproved  PaymentStatus = "APPROVED"
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentCanceled  PaymentStatus = "CANCELED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Payment is a charge against a payment source (card nonce, card on file,
// cash, external).
type Payment struct {
	ID                             string              `json:"id,omitempty"`
	CreatedAt                      string              `json:"created_at,omitempty"`
	UpdatedAt                      string              `json:"updated_at,omitempty"`
	AmountMoney                    *Money              `json:"amount_money,omitempty"`
	TipMoney                       *Money              `json:"tip_money,omitempty"`
	TotalMoney                     *Money              `json:"total_money,omitempty"`
	AppFeeMoney                    *Money              `json:"app_fee_money,omitempty"`
	ApprovedMoney                  *Money              `json:"approved_money,omitempty"`
	RefundedMoney                  *Money              `json:"refunded_money,omitempty"`
	Status                         PaymentStatus       `json:"status,omitempty"`
	DelayDuration                  string              `json:"delay_duration,omitempty"`
	DelayAction                    string              `json:"delay_action,omitempty"`
	DelayedUntil                   string              `json:"delayed_until,omitempty"`
	SourceType                     string              `json:"source_type,omitempty"`
	CardDetails                    *CardPaymentDetails `json:"card_details,omitempty"`
	LocationID                     string              `json:"location_id,omitempty"`
	OrderID                        string              `json:"order_id,omitempty"`
	ReferenceID                    string              `json:"reference_id,omitempty"`
	CustomerID                     string              `json:"customer_id,omitempty"`
	TeamMemberID                   string              `json:"team_member_id,omitempty"`
	RefundIDs                      []string            `json:"refund_ids,omitempty"`
	BuyerEmailAddress              string              `json:"buyer_email_address,omitempty"`
	BillingAddress                 *Address            `json:"billing_address,omitempty"`
	ShippingAddress                *Address            `json:"shipping_address,omitempty"`
	Note                           string              `json:"note,omitempty"`
	StatementDescriptionIdentifier string              `json:"statement_description_identifier,omitempty"`
	ReceiptNumber                  string              `json:"receipt_number,omitempty"`
	ReceiptURL                     string              `json:"receipt_url,omitempty"`
	VersionToken                   string              `json:"version_token,omitempty"`
}

// CardPaymentDetails describes how a card payment was processed.
type CardPaymentDetails struct {
	Status               string `json:"status,omitempty"`
	Card                 *Card  `json:"card,omitempty"`
	EntryMethod          string `json:"entry_method,omitempty"`
	CVVStatus            string `json:"cvv_status,omitempty"`
	AVSStatus            string `json:"avs_status,omitempty"`
	AuthResultCode       string `json:"auth_result_code,omitempty"`
	StatementDescription string `json:"statement_description,omitempty"`
}
