package square

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-square/models"
)

// BookingsAPI manages appointments.
type BookingsAPI struct {
	c *Client
}

type ListBookingsParams struct {
	Limit        int
	Cursor       string
	CustomerID   string
	TeamMemberID string
	LocationID   string
	StartAtMin   string
	StartAtMax   string
}

func (p ListBookingsParams) query() url.Values {
	q := url.Values{}
	setQueryInt(q, "limit", p.Limit)
	setQuery(q, "cursor", p.Cursor)
	setQuery(q, "customer_id", p.CustomerID)
	setQuery(q, "team_member_id", p.TeamMemberID)
	setQuery(q, "location_id", p.LocationID)
	setQuery(q, "start_at_min", p.StartAtMin)
	setQuery(q, "start_at_max", p.StartAtMax)
	return q
}

type ListBookingsResponse struct {
	Bookings []models.Booking `json:"bookings"`
	Cursor   string           `json:"cursor,omitempty"`
}

type BookingResponse struct {
	Booking models.Booking `json:"booking"`
}

type CreateBookingRequest struct {
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
	Booking        *models.Booking `json:"booking"`
}

func (r *CreateBookingRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *CreateBookingRequest) Validate() error {
	if r.Booking == nil {
		return required("booking")
	}
	if r.Booking.StartAt == "" {
		return required("booking.start_at")
	}
	if r.Booking.LocationID == "" {
		return required("booking.location_id")
	}
	if len(r.Booking.AppointmentSegments) == 0 {
		return required("booking.appointment_segments")
	}
	return nil
}

type UpdateBookingRequest struct {
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
	Booking        *models.Booking `json:"booking"`
}

func (r *UpdateBookingRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

func (r *UpdateBookingRequest) Validate() error {
	if r.Booking == nil {
		return required("booking")
	}
	return nil
}

type CancelBookingRequest struct {
	IdempotencyKey string `json:"idempotency_key,omitempty"`
	BookingVersion int64  `json:"booking_version,omitempty"`
}

func (r *CancelBookingRequest) idempotencyKeyRef() *string { return &r.IdempotencyKey }

type SearchAvailabilityRequest struct {
	Query models.SearchAvailabilityQuery `json:"query"`
}

func (r *SearchAvailabilityRequest) Validate() error {
	rng := r.Query.Filter.StartAtRange
	if rng.StartAt == "" || rng.EndAt == "" {
		return required("query.filter.start_at_range")
	}
	return nil
}

type SearchAvailabilityResponse struct {
	Availabilities []models.Availability `json:"availabilities"`
}

type BusinessBookingProfileResponse struct {
	BusinessBookingProfile models.BusinessBookingProfile `json:"business_booking_profile"`
}

type ListTeamMemberBookingProfilesParams struct {
	BookableOnly bool
	Limit        int
	Cursor       string
	LocationID   string
}

func (p ListTeamMemberBookingProfilesParams) query() url.Values {
	q := url.Values{}
	if p.BookableOnly {
		q.Set("bookable_only", "true")
	}
	setQueryInt(q, "limit", p.Limit)
	setQuery(q, "cursor", p.Cursor)
	setQuery(q, "location_id", p.LocationID)
	return q
}

type ListTeamMemberBookingProfilesResponse struct {
	TeamMemberBookingProfiles []models.TeamMemberBookingProfile `json:"team_member_booking_profiles"`
	Cursor                    string                            `json:"cursor,omitempty"`
}

type TeamMemberBookingProfileResponse struct {
	TeamMemberBookingProfile models.TeamMemberBookingProfile `json:"team_member_booking_profile"`
}

func (a *BookingsAPI) List(ctx context.Context, params ListBookingsParams) (*ListBookingsResponse, error) {
	var out ListBookingsResponse
	if err := a.c.Request(ctx, GET, Endpoint{API: APIBookings}, nil, params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *BookingsAPI) Iterate(params ListBookingsParams) *Iterator[models.Booking] {
	return PaginateFrom(params.Cursor, func(ctx context.Context, cursor string) ([]models.Booking, string, error) {
		params.Cursor = cursor
		resp, err := a.List(ctx, params)
		if err != nil {
			return nil, "", err
		}
		return resp.Bookings, resp.Cursor, nil
	})
}

func (a *BookingsAPI) Create(ctx context.Context, req *CreateBookingRequest) (*BookingResponse, error) {
	if req == nil {
		return nil, required("request")
	}

	var out BookingResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APIBookings}, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *BookingsAPI) SearchAvailability(ctx context.Context, req SearchAvailabilityRequest) (*SearchAvailabilityResponse, error) {
	var out SearchAvailabilityResponse
	if err := a.c.Request(ctx, POST, Endpoint{API: APIBookings, Path: "/availability/search"}, &req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *BookingsAPI) RetrieveBusinessProfile(ctx context.Context) (*BusinessBookingProfileResponse, error) {
	var out BusinessBookingProfileResponse
	if err := a.c.Request(ctx, GET, Endpoint{API: APIBookings, Path: "/business-booking-profile"}, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *BookingsAPI) ListTeamMemberProfiles(ctx context.Context, params ListTeamMemberBookingProfilesParams) (*ListTeamMemberBookingProfilesResponse, error) {
	var out ListTeamMemberBookingProfilesResponse
	if err := a.c.Request(ctx, GET, Endpoint{API: APIBookings, Path: "/team-member-booking-profiles"}, nil, params.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *BookingsAPI) RetrieveTeamMemberProfile(ctx context.Context, teamMemberID string) (*TeamMemberBookingProfileResponse, error) {
	path, err := idPath("team_member_id", teamMemberID, "")
	if err != nil {
		return nil, err
	}

	var out TeamMemberBookingProfileResponse
	if err = a.c.Request(ctx, GET, Endpoint{API: APIBookings, Path: "/team-member-booking-profiles" + path}, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *BookingsAPI) Retrieve(ctx context.Context, bookingID string) (*BookingResponse, error) {
	return a.byID(ctx, GET, bookingID, "", nil)
}

func (a *BookingsAPI) Update(ctx context.Context, bookingID string, req *UpdateBookingRequest) (*BookingResponse, error) {
	if req == nil {
		return nil, required("request")
	}
	return a.byID(ctx, PUT, bookingID, "", req)
}

func (a *BookingsAPI) Cancel(ctx context.Context, bookingID string, req *CancelBookingRequest) (*BookingResponse, error) {
	if req == nil {
		req = &CancelBookingRequest{}
	}
	return a.byID(ctx, POST, bookingID, "/cancel", req)
}

func (a *BookingsAPI) byID(ctx context.Context, verb Verb, bookingID, suffix string, body any) (*BookingResponse, error) {
	path, err := idPath("booking_id", bookingID, suffix)
	if err != nil {
		return nil, err
	}

	var out BookingResponse
	if err = a.c.Request(ctx, verb, Endpoint{API: APIBookings, Path: path}, body, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
