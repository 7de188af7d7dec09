// Copyright 2026 The Reservations UI Authors
// SPDX-License-Identifier: Apache-2.0

package api

// Role is a user's platform role. Roles are mutually exclusive and
// immutable once issued by the server.
type Role string

const (
	// RoleAdmin has full administrative capability.
	RoleAdmin Role = "ADMIN"
	// RolePowerUser has venue-scoped administrative privileges, a
	// strict subset of admin capability.
	RolePowerUser Role = "POWER_USER"
	// RoleCustomer can browse events and reserve and pay for tickets.
	RoleCustomer Role = "CUSTOMER"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventDraft     EventStatus = "DRAFT"
	EventPublished EventStatus = "PUBLISHED"
	EventCancelled EventStatus = "CANCELLED"
	EventCompleted EventStatus = "COMPLETED"
)

// TicketStatus is the lifecycle state of a ticket. Every transition is
// server-driven: reserved → paid | cancelled | payment_failed.
type TicketStatus string

const (
	TicketReserved      TicketStatus = "RESERVED"
	TicketPaid          TicketStatus = "PAID"
	TicketCancelled     TicketStatus = "CANCELLED"
	TicketPaymentFailed TicketStatus = "PAYMENT_FAILED"
)

// PaymentStatus is the state of a payment attempt.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentPending   PaymentStatus = "PENDING"
)

// PaymentMethod identifies how a payment is made.
type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "CREDIT_CARD"
	MethodDebitCard  PaymentMethod = "DEBIT_CARD"
)

// User mirrors the server's user record. At login time the server
// returns no user ID, so a locally synthesized User carries an empty
// ID until a follow-up identity fetch (which this client never
// performs).
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	IsRemovable bool   `json:"isRemovable"`
	CreatedAt   string `json:"createdAt"`

	// AssignedVenues is populated on admin user listings for power
	// users with venue assignments.
	AssignedVenues []Venue `json:"assignedVenues,omitempty"`
}

// Event mirrors the server's event record.
type Event struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	EventDateTime    string      `json:"eventDateTime"`
	Capacity         int         `json:"capacity"`
	Price            float64     `json:"price"`
	Status           EventStatus `json:"status"`
	AvailableTickets int         `json:"availableTickets"`
	VenueID          string      `json:"venueId,omitempty"`
	CreatedAt        string      `json:"createdAt"`
}

// TicketsSold derives the sold count from capacity and availability.
func (e Event) TicketsSold() int { return e.Capacity - e.AvailableTickets }

// Ticket mirrors the server's ticket record.
type Ticket struct {
	ID            string       `json:"id"`
	TicketNumber  string       `json:"ticketNumber"`
	UserID        string       `json:"userId"`
	UserEmail     string       `json:"userEmail"`
	EventID       string       `json:"eventId"`
	EventName     string       `json:"eventName"`
	EventDateTime string       `json:"eventDateTime"`
	Price         float64      `json:"price"`
	Status        TicketStatus `json:"status"`
	ReservedAt    string       `json:"reservedAt"`

	// PaymentExpiresAt is set while the ticket is pending payment. The
	// timestamp may omit a timezone, in which case it is UTC.
	PaymentExpiresAt string `json:"paymentExpiresAt,omitempty"`
}

// Venue mirrors the server's venue record.
type Venue struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
	Capacity    int    `json:"capacity"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// EventSales is the server-computed sales aggregate for one event.
type EventSales struct {
	EventID          string  `json:"eventId"`
	EventName        string  `json:"eventName"`
	Capacity         int     `json:"capacity"`
	TicketsSold      int     `json:"ticketsSold"`
	AvailableTickets int     `json:"availableTickets"`
	Revenue          float64 `json:"revenue"`
	OccupancyRate    float64 `json:"occupancyRate"`
}

// Payment mirrors the payment service's payment record.
type Payment struct {
	ID            string        `json:"id"`
	TicketID      string        `json:"ticketId"`
	UserID        string        `json:"userId"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TransactionID string        `json:"transactionId,omitempty"`
	FailureReason string        `json:"failureReason,omitempty"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
	CompletedAt   string        `json:"completedAt,omitempty"`
}

// AuthResponse is returned by POST /auth/login and /auth/register.
type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateEventRequest is the body for POST /events.
type CreateEventRequest struct {
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	EventDateTime string      `json:"eventDateTime"`
	Capacity      int         `json:"capacity"`
	Price         float64     `json:"price"`
	Status        EventStatus `json:"status"`
	VenueID       string      `json:"venueId,omitempty"`
}

// UpdateEventRequest is the body for PUT /events/{id}. Nil fields are
// omitted so the server leaves them unchanged.
type UpdateEventRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	EventDateTime *string  `json:"eventDateTime,omitempty"`
	Capacity      *int     `json:"capacity,omitempty"`
	Price         *float64 `json:"price,omitempty"`
}

// UpdateEventStatusRequest is the body for PATCH /events/{id}/status.
type UpdateEventStatusRequest struct {
	Status EventStatus `json:"status"`
}

// ReserveTicketRequest is the body for POST /tickets/reserve.
type ReserveTicketRequest struct {
	EventID string `json:"eventId"`
}

// CreateVenueRequest is the body for POST /venues.
type CreateVenueRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
	Capacity    int    `json:"capacity"`
}

// UpdateVenueRequest is the body for PUT /venues/{id}.
type UpdateVenueRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
}

// AssignVenueRequest is the body for POST and DELETE
// /venues/assignments, linking a power user to a venue.
type AssignVenueRequest struct {
	UserID  string `json:"userId"`
	VenueID string `json:"venueId"`
}

// CreatePowerUserRequest is the body for POST /users/power-user.
type CreatePowerUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PaymentRequest is the body for POST /payments. IdempotencyKey is
// client-generated so repeated submissions are not double-charged
// server-side.
type PaymentRequest struct {
	TicketID       string        `json:"ticketId"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	CardNumber     string        `json:"cardNumber"`
	IdempotencyKey string        `json:"idempotencyKey"`
}
