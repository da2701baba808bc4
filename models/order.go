package models

// OrderState is the lifecycle state of an Order.
type OrderState string

const (
	OrderOpen      OrderState = "OPEN"
	OrderCompleted OrderState = "COMPLETED"
	OrderCanceled  OrderState = "CANCELED"
	OrderDraft     OrderState = "DRAFT"
)

// Order is a collection of line items, taxes and discounts that can be paid
// for with one or more payments.
type Order struct {
	ID                      string                  `json:"id,omitempty"`
	LocationID              string                  `json:"location_id"`
	ReferenceID             string                  `json:"reference_id,omitempty"`
	Source                  *OrderSource            `json:"source,omitempty"`
	CustomerID              string                  `json:"customer_id,omitempty"`
	LineItems               []OrderLineItem         `json:"line_items,omitempty"`
	Taxes                   []OrderLineItemTax      `json:"taxes,omitempty"`
	Discounts               []OrderLineItemDiscount `json:"discounts,omitempty"`
	Metadata                map[string]string       `json:"metadata,omitempty"`
	CreatedAt               string                  `json:"created_at,omitempty"`
	UpdatedAt               string                  `json:"updated_at,omitempty"`
	ClosedAt                string                  `json:"closed_at,omitempty"`
	State                   OrderState              `json:"state,omitempty"`
	Version                 int64                   `json:"version,omitempty"`
	TotalMoney              *Money                  `json:"total_money,omitempty"`
	TotalTaxMoney           *Money                  `json:"total_tax_money,omitempty"`
	TotalDiscountMoney      *Money                  `json:"total_discount_money,omitempty"`
	TotalTipMoney           *Money                  `json:"total_tip_money,omitempty"`
	TotalServiceChargeMoney *Money                  `json:"total_service_charge_money,omitempty"`
	NetAmountDueMoney       *Money                  `json:"net_amount_due_money,omitempty"`
	TicketName              string                  `json:"ticket_name,omitempty"`
}

// OrderSource names the application or channel that created an order.
type OrderSource struct {
	Name string `json:"name,omitempty"`
}

// OrderLineItem is one line of an order. Quantity is a decimal string.
type OrderLineItem struct {
	UID                      string                         `json:"uid,omitempty"`
	Name                     string                         `json:"name,omitempty"`
	Quantity                 string                         `json:"quantity"`
	CatalogObjectID          string                         `json:"catalog_object_id,omitempty"`
	CatalogVersion           int64                          `json:"catalog_version,omitempty"`
	VariationName            string                         `json:"variation_name,omitempty"`
	ItemType                 string                         `json:"item_type,omitempty"`
	Note                     string                         `json:"note,omitempty"`
	BasePriceMoney           *Money                         `json:"base_price_money,omitempty"`
	VariationTotalPriceMoney *Money                         `json:"variation_total_price_money,omitempty"`
	GrossSalesMoney          *Money                         `json:"gross_sales_money,omitempty"`
	TotalTaxMoney            *Money                         `json:"total_tax_money,omitempty"`
	TotalDiscountMoney       *Money                         `json:"total_discount_money,omitempty"`
	TotalMoney               *Money                         `json:"total_money,omitempty"`
	AppliedTaxes             []OrderLineItemAppliedTax      `json:"applied_taxes,omitempty"`
	AppliedDiscounts         []OrderLineItemAppliedDiscount `json:"applied_discounts,omitempty"`
}

// OrderLineItemTax is a tax defined on an order.
type OrderLineItemTax struct {
	UID             string `json:"uid,omitempty"`
	CatalogObjectID string `json:"catalog_object_id,omitempty"`
	Name            string `json:"name,omitempty"`
	Type            string `json:"type,omitempty"`
	Percentage      string `json:"percentage,omitempty"`
	Scope           string `json:"scope,omitempty"`
	AppliedMoney    *Money `json:"applied_money,omitempty"`
}

// OrderLineItemDiscount is a discount defined on an order.
type OrderLineItemDiscount struct {
	UID             string `json:"uid,omitempty"`
	CatalogObjectID string `json:"catalog_object_id,omitempty"`
	Name            string `json:"name,omitempty"`
	Type            string `json:"type,omitempty"`
	Percentage      string `json:"percentage,omitempty"`
	AmountMoney     *Money `json:"amount_money,omitempty"`
	AppliedMoney    *Money `json:"applied_money,omitempty"`
	Scope           string `json:"scope,omitempty"`
}

// OrderLineItemAppliedTax links a line item to an order-level tax.
type OrderLineItemAppliedTax struct {
	UID          string `json:"uid,omitempty"`
	TaxUID       string `json:"tax_uid"`
	AppliedMoney *Money `json:"applied_money,omitempty"`
}

// OrderLineItemAppliedDiscount links a line item to an order-level discount.
type OrderLineItemAppliedDiscount struct {
	UID          string `json:"uid,omitempty"`
	DiscountUID  string `json:"discount_uid"`
	AppliedMoney *Money `json:"applied_money,omitempty"`
}

// SearchOrdersQuery filters and sorts an order search.
type SearchOrdersQuery struct {
	Filter *SearchOrdersFilter `json:"filter,omitempty"`
	Sort   *SearchOrdersSort   `json:"sort,omitempty"`
}

// SearchOrdersFilter combines the supported order filters.
type SearchOrdersFilter struct {
	StateFilter    *SearchOrdersStateFilter    `json:"state_filter,omitempty"`
	DateTimeFilter *SearchOrdersDateTimeFilter `json:"date_time_filter,omitempty"`
	CustomerFilter *SearchOrdersCustomerFilter `json:"customer_filter,omitempty"`
	SourceFilter   *SearchOrdersSourceFilter   `json:"source_filter,omitempty"`
}

type SearchOrdersStateFilter struct {
	States []OrderState `json:"states"`
}

type SearchOrdersDateTimeFilter struct {
	CreatedAt *TimeRange `json:"created_at,omitempty"`
	UpdatedAt *TimeRange `json:"updated_at,omitempty"`
	ClosedAt  *TimeRange `json:"closed_at,omitempty"`
}

type SearchOrdersCustomerFilter struct {
	CustomerIDs []string `json:"customer_ids"`
}

type SearchOrdersSourceFilter struct {
	SourceNames []string `json:"source_names"`
}

// SearchOrdersSort orders search results by CREATED_AT, UPDATED_AT or CLOSED_AT.
type SearchOrdersSort struct {
	SortField string    `json:"sort_field"`
	SortOrder SortOrder `json:"sort_order,omitempty"`
}
