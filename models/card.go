package models

// CardBrand is the card network.
type CardBrand string

const (
	CardBrandVisa            CardBrand = "VISA"
	CardBrandMastercard      CardBrand = "MASTERCARD"
	CardBrandAmericanExpress CardBrand = "AMERICAN_EXPRESS"
	CardBrandDiscover        CardBrand = "DISCOVER"
	CardBrandJCB             CardBrand = "JCB"
	CardBrandSquareGiftCard  CardBrand = "SQUARE_GIFT_CARD"
)

// Card is a card stored on file for a customer, or the card summary attached
// to a card payment.
type Card struct {
	ID             string    `json:"id,omitempty"`
	CardBrand      CardBrand `json:"card_brand,omitempty"`
	Last4          string    `json:"last_4,omitempty"`
	ExpMonth       int64     `json:"exp_month,omitempty"`
	ExpYear        int64     `json:"exp_year,omitempty"`
	CardholderName string    `json:"cardholder_name,omitempty"`
	BillingAddress *Address  `json:"billing_address,omitempty"`
	Fingerprint    string    `json:"fingerprint,omitempty"`
	CustomerID     string    `json:"customer_id,omitempty"`
	MerchantID     string    `json:"merchant_id,omitempty"`
	ReferenceID    string    `json:"reference_id,omitempty"`
	Enabled        *bool     `json:"enabled,omitempty"`
	CardType       string    `json:"card_type,omitempty"`
	PrepaidType    string    `json:"prepaid_type,omitempty"`
	Bin            string    `json:"bin,omitempty"`
	Version        int64     `json:"version,omitempty"`
}
