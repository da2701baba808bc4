package models

// InventoryState is the state an item quantity is tracked in.
type InventoryState string

const (
	InventoryInStock            InventoryState = "IN_STOCK"
	InventorySold               InventoryState = "SOLD"
	InventoryReturnedByCustomer InventoryState = "RETURNED_BY_CUSTOMER"
	InventoryReservedForSale    InventoryState = "RESERVED_FOR_SALE"
	InventoryWaste              InventoryState = "WASTE"
	InventoryNone               InventoryState = "NONE"
)

// InventoryChangeType selects which member of an InventoryChange is set.
type InventoryChangeType string

const (
	InventoryChangePhysicalCount InventoryChangeType = "PHYSICAL_COUNT"
	InventoryChangeAdjustment    InventoryChangeType = "ADJUSTMENT"
	InventoryChangeTransfer      InventoryChangeType = "TRANSFER"
)

// InventoryChange is one entry of a batch inventory change. Quantities are
// decimal strings as Square sends them.
type InventoryChange struct {
	Type          InventoryChangeType     `json:"type"`
	PhysicalCount *InventoryPhysicalCount `json:"physical_count,omitempty"`
	Adjustment    *InventoryAdjustment    `json:"adjustment,omitempty"`
	Transfer      *InventoryTransfer      `json:"transfer,omitempty"`
}

// InventoryPhysicalCount records an absolute counted quantity.
type InventoryPhysicalCount struct {
	ID                string         `json:"id,omitempty"`
	ReferenceID       string         `json:"reference_id,omitempty"`
	CatalogObjectID   string         `json:"catalog_object_id"`
	CatalogObjectType string         `json:"catalog_object_type,omitempty"`
	State             InventoryState `json:"state"`
	LocationID        string         `json:"location_id"`
	Quantity          string         `json:"quantity"`
	OccurredAt        string         `json:"occurred_at"`
	CreatedAt         string         `json:"created_at,omitempty"`
}

// InventoryAdjustment moves a quantity from one state to another.
type InventoryAdjustment struct {
	ID                string         `json:"id,omitempty"`
	ReferenceID       string         `json:"reference_id,omitempty"`
	FromState         InventoryState `json:"from_state"`
	ToState           InventoryState `json:"to_state"`
	LocationID        string         `json:"location_id"`
	CatalogObjectID   string         `json:"catalog_object_id"`
	CatalogObjectType string         `json:"catalog_object_type,omitempty"`
	Quantity          string         `json:"quantity"`
	TotalPriceMoney   *Money         `json:"total_price_money,omitempty"`
	OccurredAt        string         `json:"occurred_at"`
	CreatedAt         string         `json:"created_at,omitempty"`
}

// InventoryTransfer moves a quantity between two locations.
type InventoryTransfer struct {
	ID                string         `json:"id,omitempty"`
	ReferenceID       string         `json:"reference_id,omitempty"`
	State             InventoryState `json:"state"`
	FromLocationID    string         `json:"from_location_id"`
	ToLocationID      string         `json:"to_location_id"`
	CatalogObjectID   string         `json:"catalog_object_id"`
	CatalogObjectType string         `json:"catalog_object_type,omitempty"`
	Quantity          string         `json:"quantity"`
	OccurredAt        string         `json:"occurred_at"`
	CreatedAt         string         `json:"created_at,omitempty"`
}

// InventoryCount is the computed quantity of an item in a state at a location.
type InventoryCount struct {
	CatalogObjectID   string         `json:"catalog_object_id"`
	CatalogObjectType string         `json:"catalog_object_type,omitempty"`
	State             InventoryState `json:"state"`
	LocationID        string         `json:"location_id"`
	Quantity          string         `json:"quantity"`
	CalculatedAt      string         `json:"calculated_at,omitempty"`
	IsEstimated       bool           `json:"is_estimated,omitempty"`
}
