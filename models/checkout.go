package models

// PaymentLink is a Square-hosted checkout page.
type PaymentLink struct {
	ID               string            `json:"id,omitempty"`
	Version          int64             `json:"version"`
	Description      string            `json:"description,omitempty"`
	OrderID          string            `json:"order_id,omitempty"`
	CheckoutOptions  *CheckoutOptions  `json:"checkout_options,omitempty"`
	PrePopulatedData *PrePopulatedData `json:"pre_populated_data,omitempty"`
	URL              string            `json:"url,omitempty"`
	LongURL          string            `json:"long_url,omitempty"`
	CreatedAt        string            `json:"created_at,omitempty"`
	UpdatedAt        string            `json:"updated_at,omitempty"`
	PaymentNote      string            `json:"payment_note,omitempty"`
}

// CheckoutOptions configure the hosted checkout page.
type CheckoutOptions struct {
	AllowTipping          bool          `json:"allow_tipping,omitempty"`
	CustomFields          []CustomField `json:"custom_fields,omitempty"`
	SubscriptionPlanID    string        `json:"subscription_plan_id,omitempty"`
	RedirectURL           string        `json:"redirect_url,omitempty"`
	MerchantSupportEmail  string        `json:"merchant_support_email,omitempty"`
	AskForShippingAddress bool          `json:"ask_for_shipping_address,omitempty"`
	EnableCoupon          bool          `json:"enable_coupon,omitempty"`
	EnableLoyalty         bool          `json:"enable_loyalty,omitempty"`
}

// CustomField is an extra input shown to the buyer at checkout.
type CustomField struct {
	Title string `json:"title"`
}

// PrePopulatedData fills buyer details on the checkout page.
type PrePopulatedData struct {
	BuyerEmail       string   `json:"buyer_email,omitempty"`
	BuyerPhoneNumber string   `json:"buyer_phone_number,omitempty"`
	BuyerAddress     *Address `json:"buyer_address,omitempty"`
}

// QuickPay describes an ad hoc item for a payment link without an order.
type QuickPay struct {
	Name       string `json:"name"`
	PriceMoney Money  `json:"price_money"`
	LocationID string `json:"location_id"`
}
