package models

// Customer is a buyer profile in the seller's customer directory.
type Customer struct {
	ID             string               `json:"id,omitempty"`
	CreatedAt      string               `json:"created_at,omitempty"`
	UpdatedAt      string               `json:"updated_at,omitempty"`
	GivenName      string               `json:"given_name,omitempty"`
	FamilyName     string               `json:"family_name,omitempty"`
	Nickname       string               `json:"nickname,omitempty"`
	CompanyName    string               `json:"company_name,omitempty"`
	EmailAddress   string               `json:"email_address,omitempty"`
	Address        *Address             `json:"address,omitempty"`
	PhoneNumber    string               `json:"phone_number,omitempty"`
	Birthday       string               `json:"birthday,omitempty"`
	ReferenceID    string               `json:"reference_id,omitempty"`
	Note           string               `json:"note,omitempty"`
	Preferences    *CustomerPreferences `json:"preferences,omitempty"`
	CreationSource string               `json:"creation_source,omitempty"`
	GroupIDs       []string             `json:"group_ids,omitempty"`
	SegmentIDs     []string             `json:"segment_ids,omitempty"`
	Version        int64                `json:"version,omitempty"`
}

// CustomerPreferences are the buyer's communication preferences.
type CustomerPreferences struct {
	EmailUnsubscribed bool `json:"email_unsubscribed"`
}

// CustomerQuery is the query part of a customer search.
type CustomerQuery struct {
	Filter *CustomerFilter `json:"filter,omitempty"`
	Sort   *CustomerSort   `json:"sort,omitempty"`
}

// CustomerFilter narrows a customer search. All set filters are ANDed.
type CustomerFilter struct {
	CreationSource *CustomerCreationSourceFilter `json:"creation_source,omitempty"`
	CreatedAt      *TimeRange                    `json:"created_at,omitempty"`
	UpdatedAt      *TimeRange                    `json:"updated_at,omitempty"`
	EmailAddress   *CustomerTextFilter           `json:"email_address,omitempty"`
	PhoneNumber    *CustomerTextFilter           `json:"phone_number,omitempty"`
	ReferenceID    *CustomerTextFilter           `json:"reference_id,omitempty"`
	GroupIDs       *FilterValue                  `json:"group_ids,omitempty"`
}

// CustomerCreationSourceFilter matches customers by how they were created.
type CustomerCreationSourceFilter struct {
	Values []string `json:"values,omitempty"`
	Rule   string   `json:"rule,omitempty"`
}

// CustomerTextFilter matches a text attribute either exactly or fuzzily.
// Only one of the two should be set.
type CustomerTextFilter struct {
	Exact string `json:"exact,omitempty"`
	Fuzzy string `json:"fuzzy,omitempty"`
}

// CustomerSort orders customer search results.
type CustomerSort struct {
	Field string    `json:"field,omitempty"`
	Order SortOrder `json:"order,omitempty"`
}
