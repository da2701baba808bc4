package models

// BookingStatus is the lifecycle state of a Booking.
type BookingStatus string

const (
	BookingPending             BookingStatus = "PENDING"
	BookingAccepted            BookingStatus = "ACCEPTED"
	BookingCancelledByCustomer BookingStatus = "CANCELLED_BY_CUSTOMER"
	BookingCancelledBySeller   BookingStatus = "CANCELLED_BY_SELLER"
	BookingDeclined            BookingStatus = "DECLINED"
	BookingNoShow              BookingStatus = "NO_SHOW"
)

// Booking is an appointment of a customer with one or more team members.
type Booking struct {
	ID                  string               `json:"id,omitempty"`
	Version             int64                `json:"version,omitempty"`
	Status              BookingStatus        `json:"status,omitempty"`
	CreatedAt           string               `json:"created_at,omitempty"`
	UpdatedAt           string               `json:"updated_at,omitempty"`
	StartAt             string               `json:"start_at,omitempty"`
	LocationID          string               `json:"location_id,omitempty"`
	CustomerID          string               `json:"customer_id,omitempty"`
	CustomerNote        string               `json:"customer_note,omitempty"`
	SellerNote          string               `json:"seller_note,omitempty"`
	AppointmentSegments []AppointmentSegment `json:"appointment_segments,omitempty"`
	LocationType        string               `json:"location_type,omitempty"`
}

// AppointmentSegment is one service performed by one team member within a
// booking.
type AppointmentSegment struct {
	DurationMinutes         int64  `json:"duration_minutes,omitempty"`
	ServiceVariationID      string `json:"service_variation_id,omitempty"`
	TeamMemberID            string `json:"team_member_id"`
	ServiceVariationVersion int64  `json:"service_variation_version,omitempty"`
	AnyTeamMember           bool   `json:"any_team_member,omitempty"`
}

// SearchAvailabilityQuery is the query of an availability search.
type SearchAvailabilityQuery struct {
	Filter SearchAvailabilityFilter `json:"filter"`
}

// SearchAvailabilityFilter narrows availability to a time window and,
// optionally, a location, services and team members.
type SearchAvailabilityFilter struct {
	StartAtRange   TimeRange       `json:"start_at_range"`
	LocationID     string          `json:"location_id,omitempty"`
	SegmentFilters []SegmentFilter `json:"segment_filters,omitempty"`
	BookingID      string          `json:"booking_id,omitempty"`
}

// SegmentFilter selects a service variation and the team members able to
// perform it.
type SegmentFilter struct {
	ServiceVariationID string       `json:"service_variation_id"`
	TeamMemberIDFilter *FilterValue `json:"team_member_id_filter,omitempty"`
}

// Availability is a bookable slot.
type Availability struct {
	StartAt             string               `json:"start_at,omitempty"`
	LocationID          string               `json:"location_id,omitempty"`
	AppointmentSegments []AppointmentSegment `json:"appointment_segments,omitempty"`
}

// BusinessBookingProfile holds seller-level booking settings.
type BusinessBookingProfile struct {
	SellerID                 string `json:"seller_id,omitempty"`
	CreatedAt                string `json:"created_at,omitempty"`
	BookingEnabled           bool   `json:"booking_enabled"`
	CustomerTimezoneChoice   string `json:"customer_timezone_choice,omitempty"`
	BookingPolicy            string `json:"booking_policy,omitempty"`
	AllowUserCancel          bool   `json:"allow_user_cancel"`
	SupportSellerLevelWrites bool   `json:"support_seller_level_writes,omitempty"`
}

// TeamMemberBookingProfile describes a team member that can be booked.
type TeamMemberBookingProfile struct {
	TeamMemberID    string `json:"team_member_id,omitempty"`
	Description     string `json:"description,omitempty"`
	DisplayName     string `json:"display_name,omitempty"`
	IsBookable      *bool  `json:"is_bookable,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}
