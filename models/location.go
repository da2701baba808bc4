package models

// LocationStatus reports whether a location is in use.
type LocationStatus string

const (
	LocationActive   LocationStatus = "ACTIVE"
	LocationInactive LocationStatus = "INACTIVE"
)

// LocationType distinguishes brick-and-mortar from mobile sellers.
type LocationType string

const (
	LocationPhysical LocationType = "PHYSICAL"
	LocationMobile   LocationType = "MOBILE"
)

// Location is a business location of the seller. Name is the only field
// Square requires when creating one.
type Location struct {
	ID                string         `json:"id,omitempty"`
	Name              string         `json:"name,omitempty"`
	Address           *Address       `json:"address,omitempty"`
	Timezone          string         `json:"timezone,omitempty"`
	Capabilities      []string       `json:"capabilities,omitempty"`
	Status            LocationStatus `json:"status,omitempty"`
	CreatedAt         string         `json:"created_at,omitempty"`
	MerchantID        string         `json:"merchant_id,omitempty"`
	Country           string         `json:"country,omitempty"`
	LanguageCode      string         `json:"language_code,omitempty"`
	Currency          Currency       `json:"currency,omitempty"`
	PhoneNumber       string         `json:"phone_number,omitempty"`
	BusinessName      string         `json:"business_name,omitempty"`
	Type              LocationType   `json:"type,omitempty"`
	WebsiteURL        string         `json:"website_url,omitempty"`
	BusinessHours     *BusinessHours `json:"business_hours,omitempty"`
	BusinessEmail     string         `json:"business_email,omitempty"`
	Description       string         `json:"description,omitempty"`
	TwitterUsername   string         `json:"twitter_username,omitempty"`
	InstagramUsername string         `json:"instagram_username,omitempty"`
	FacebookURL       string         `json:"facebook_url,omitempty"`
	Coordinates       *Coordinates   `json:"coordinates,omitempty"`
	LogoURL           string         `json:"logo_url,omitempty"`
	POSBackgroundURL  string         `json:"pos_background_url,omitempty"`
	MCC               string         `json:"mcc,omitempty"`
	FullFormatLogoURL string         `json:"full_format_logo_url,omitempty"`
	TaxIDs            *TaxIDs        `json:"tax_ids,omitempty"`
}

// BusinessHours is the weekly opening schedule of a location.
type BusinessHours struct {
	Periods []BusinessHoursPeriod `json:"periods"`
}

// AddPeriod appends a period, allocating the schedule if needed.
func (b *BusinessHours) AddPeriod(p BusinessHoursPeriod) {
	b.Periods = append(b.Periods, p)
}

// BusinessHoursPeriod is one opening interval. DayOfWeek is SUN..SAT, the
// local times are "HH:MM:SS".
type BusinessHoursPeriod struct {
	DayOfWeek      string `json:"day_of_week"`
	StartLocalTime string `json:"start_local_time"`
	EndLocalTime   string `json:"end_local_time"`
}

// TaxIDs holds country-specific tax identifiers of a location.
type TaxIDs struct {
	EUVat   string `json:"eu_vat,omitempty"`
	FRSiret string `json:"fr_siret,omitempty"`
	FRNaf   string `json:"fr_naf,omitempty"`
	ESNif   string `json:"es_nif,omitempty"`
	JPQii   string `json:"jp_qii,omitempty"`
}
