package models

// CatalogObjectType names the kind of data a CatalogObject carries.
type CatalogObjectType string

const (
	CatalogItemType          CatalogObjectType = "ITEM"
	CatalogItemVariationType CatalogObjectType = "ITEM_VARIATION"
	CatalogCategoryType      CatalogObjectType = "CATEGORY"
	CatalogTaxType           CatalogObjectType = "TAX"
	CatalogDiscountType      CatalogObjectType = "DISCOUNT"
	CatalogImageType         CatalogObjectType = "IMAGE"
	CatalogModifierListType  CatalogObjectType = "MODIFIER_LIST"
	CatalogModifierType      CatalogObjectType = "MODIFIER"
)

// CatalogObject is the envelope of every catalog entry. Exactly one of the
// *Data fields is populated, matching Type. New objects use a temporary id
// starting with "#" which Square maps to a permanent id in the response.
type CatalogObject struct {
	Type                  CatalogObjectType     `json:"type"`
	ID                    string                `json:"id"`
	UpdatedAt             string                `json:"updated_at,omitempty"`
	Version               int64                 `json:"version,omitempty"`
	IsDeleted             bool                  `json:"is_deleted,omitempty"`
	PresentAtAllLocations *bool                 `json:"present_at_all_locations,omitempty"`
	PresentAtLocationIDs  []string              `json:"present_at_location_ids,omitempty"`
	AbsentAtLocationIDs   []string              `json:"absent_at_location_ids,omitempty"`
	ItemData              *CatalogItem          `json:"item_data,omitempty"`
	ItemVariationData     *CatalogItemVariation `json:"item_variation_data,omitempty"`
	CategoryData          *CatalogCategory      `json:"category_data,omitempty"`
	TaxData               *CatalogTax           `json:"tax_data,omitempty"`
	DiscountData          *CatalogDiscount      `json:"discount_data,omitempty"`
	ImageData             *CatalogImage         `json:"image_data,omitempty"`
}

// CatalogItem is a product or service offered by the seller.
type CatalogItem struct {
	Name               string          `json:"name,omitempty"`
	Description        string          `json:"description,omitempty"`
	Abbreviation       string          `json:"abbreviation,omitempty"`
	LabelColor         string          `json:"label_color,omitempty"`
	AvailableOnline    *bool           `json:"available_online,omitempty"`
	CategoryID         string          `json:"category_id,omitempty"`
	TaxIDs             []string        `json:"tax_ids,omitempty"`
	Variations         []CatalogObject `json:"variations,omitempty"`
	ProductType        string          `json:"product_type,omitempty"`
	SkipModifierScreen bool            `json:"skip_modifier_screen,omitempty"`
	ImageIDs           []string        `json:"image_ids,omitempty"`
}

// CatalogItemVariation is a sellable variant (size, colour) of an item.
type CatalogItemVariation struct {
	ItemID         string `json:"item_id,omitempty"`
	Name           string `json:"name,omitempty"`
	SKU            string `json:"sku,omitempty"`
	UPC            string `json:"upc,omitempty"`
	Ordinal        int64  `json:"ordinal,omitempty"`
	PricingType    string `json:"pricing_type,omitempty"`
	PriceMoney     *Money `json:"price_money,omitempty"`
	TrackInventory *bool  `json:"track_inventory,omitempty"`
	Sellable       *bool  `json:"sellable,omitempty"`
	Stockable      *bool  `json:"stockable,omitempty"`
}

// CatalogCategory groups items.
type CatalogCategory struct {
	Name string `json:"name,omitempty"`
}

// CatalogTax is a tax rule applied to items.
type CatalogTax struct {
	Name                   string `json:"name,omitempty"`
	CalculationPhase       string `json:"calculation_phase,omitempty"`
	InclusionType          string `json:"inclusion_type,omitempty"`
	Percentage             string `json:"percentage,omitempty"`
	AppliesToCustomAmounts *bool  `json:"applies_to_custom_amounts,omitempty"`
	Enabled                *bool  `json:"enabled,omitempty"`
}

// CatalogDiscount is a fixed or percentage discount.
type CatalogDiscount struct {
	Name         string `json:"name,omitempty"`
	DiscountType string `json:"discount_type,omitempty"`
	Percentage   string `json:"percentage,omitempty"`
	AmountMoney  *Money `json:"amount_money,omitempty"`
	PinRequired  bool   `json:"pin_required,omitempty"`
	LabelColor   string `json:"label_color,omitempty"`
}

// CatalogImage is an image attached to catalog objects.
type CatalogImage struct {
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// CatalogObjectBatch is one batch of a batch upsert. Square processes every
// batch independently.
type CatalogObjectBatch struct {
	Objects []CatalogObject `json:"objects"`
}

// CatalogIDMapping maps a client temporary id to the id assigned by Square.
type CatalogIDMapping struct {
	ClientObjectID string `json:"client_object_id"`
	ObjectID       string `json:"object_id"`
}

// CatalogQuery is the query of a catalog object search. Set exactly one
// member.
type CatalogQuery struct {
	ExactQuery           *CatalogQueryExact           `json:"exact_query,omitempty"`
	PrefixQuery          *CatalogQueryPrefix          `json:"prefix_query,omitempty"`
	TextQuery            *CatalogQueryText            `json:"text_query,omitempty"`
	SortedAttributeQuery *CatalogQuerySortedAttribute `json:"sorted_attribute_query,omitempty"`
}

// CatalogQueryExact matches an attribute value exactly.
type CatalogQueryExact struct {
	AttributeName  string `json:"attribute_name"`
	AttributeValue string `json:"attribute_value"`
}

// CatalogQueryPrefix matches an attribute value prefix.
type CatalogQueryPrefix struct {
	AttributeName   string `json:"attribute_name"`
	AttributePrefix string `json:"attribute_prefix"`
}

// CatalogQueryText matches keywords across searchable attributes.
type CatalogQueryText struct {
	Keywords []string `json:"keywords"`
}

// CatalogQuerySortedAttribute returns all objects sorted by an attribute.
type CatalogQuerySortedAttribute struct {
	AttributeName         string    `json:"attribute_name"`
	InitialAttributeValue string    `json:"initial_attribute_value,omitempty"`
	SortOrder             SortOrder `json:"sort_order,omitempty"`
}

// CatalogInfoLimits are the batch size limits reported by the catalog info
// endpoint.
type CatalogInfoLimits struct {
	BatchUpsertMaxObjectsPerBatch     int `json:"batch_upsert_max_objects_per_batch,omitempty"`
	BatchUpsertMaxTotalObjects        int `json:"batch_upsert_max_total_objects,omitempty"`
	BatchRetrieveMaxObjectIDs         int `json:"batch_retrieve_max_object_ids,omitempty"`
	SearchMaxPageLimit                int `json:"search_max_page_limit,omitempty"`
	BatchDeleteMaxObjectIDs           int `json:"batch_delete_max_object_ids,omitempty"`
	UpdateItemTaxesMaxItemIDs         int `json:"update_item_taxes_max_item_ids,omitempty"`
	UpdateItemModifierListsMaxItemIDs int `json:"update_item_modifier_lists_max_item_ids,omitempty"`
}
