package models

// Terminal checkout and refund statuses.
const (
	TerminalPending         = "PENDING"
	TerminalInProgress      = "IN_PROGRESS"
	TerminalCancelRequested = "CANCEL_REQUESTED"
	TerminalCanceled        = "CANCELED"
	TerminalCompleted       = "COMPLETED"
)

// TerminalCheckout is a checkout request pushed to a paired Square Terminal.
type TerminalCheckout struct {
	ID               string                 `json:"id,omitempty"`
	AmountMoney      *Money                 `json:"amount_money,omitempty"`
	ReferenceID      string                 `json:"reference_id,omitempty"`
	Note             string                 `json:"note,omitempty"`
	OrderID          string                 `json:"order_id,omitempty"`
	DeviceOptions    *DeviceCheckoutOptions `json:"device_options,omitempty"`
	DeadlineDuration string                 `json:"deadline_duration,omitempty"`
	Status           string                 `json:"status,omitempty"`
	CancelReason     string                 `json:"cancel_reason,omitempty"`
	PaymentIDs       []string               `json:"payment_ids,omitempty"`
	CreatedAt        string                 `json:"created_at,omitempty"`
	UpdatedAt        string                 `json:"updated_at,omitempty"`
	AppID            string                 `json:"app_id,omitempty"`
	LocationID       string                 `json:"location_id,omitempty"`
	PaymentType      string                 `json:"payment_type,omitempty"`
	CustomerID       string                 `json:"customer_id,omitempty"`
}

// DeviceCheckoutOptions configure the checkout screen on the device.
type DeviceCheckoutOptions struct {
	DeviceID          string       `json:"device_id"`
	SkipReceiptScreen *bool        `json:"skip_receipt_screen,omitempty"`
	CollectSignature  *bool        `json:"collect_signature,omitempty"`
	TipSettings       *TipSettings `json:"tip_settings,omitempty"`
}

// TipSettings configure tipping on the device.
type TipSettings struct {
	AllowTipping      *bool   `json:"allow_tipping,omitempty"`
	SeparateTipScreen *bool   `json:"separate_tip_screen,omitempty"`
	CustomTipField    *bool   `json:"custom_tip_field,omitempty"`
	TipPercentages    []int64 `json:"tip_percentages,omitempty"`
	SmartTipping      *bool   `json:"smart_tipping,omitempty"`
}

// TerminalRefund is an Interac refund performed on a Square Terminal.
type TerminalRefund struct {
	ID               string `json:"id,omitempty"`
	RefundID         string `json:"refund_id,omitempty"`
	PaymentID        string `json:"payment_id"`
	OrderID          string `json:"order_id,omitempty"`
	AmountMoney      *Money `json:"amount_money"`
	Reason           string `json:"reason"`
	DeviceID         string `json:"device_id"`
	DeadlineDuration string `json:"deadline_duration,omitempty"`
	Status           string `json:"status,omitempty"`
	CancelReason     string `json:"cancel_reason,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
	AppID            string `json:"app_id,omitempty"`
	LocationID       string `json:"location_id,omitempty"`
}

// TerminalCheckoutQuery filters and sorts a terminal checkout search.
type TerminalCheckoutQuery struct {
	Filter *TerminalQueryFilter `json:"filter,omitempty"`
	Sort   *TerminalQuerySort   `json:"sort,omitempty"`
}

// TerminalRefundQuery filters and sorts a terminal refund search.
type TerminalRefundQuery struct {
	Filter *TerminalQueryFilter `json:"filter,omitempty"`
	Sort   *TerminalQuerySort   `json:"sort,omitempty"`
}

// TerminalQueryFilter is shared by checkout and refund searches.
type TerminalQueryFilter struct {
	DeviceID  string     `json:"device_id,omitempty"`
	CreatedAt *TimeRange `json:"created_at,omitempty"`
	Status    string     `json:"status,omitempty"`
}

// TerminalQuerySort orders terminal searches by creation time.
type TerminalQuerySort struct {
	SortOrder SortOrder `json:"sort_order,omitempty"`
}
