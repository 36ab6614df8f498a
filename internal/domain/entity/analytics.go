package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies a tracked user action.
type ActivityType string

const (
	ActivityLogin       ActivityType = "login"
	ActivityLogout      ActivityType = "logout"
	ActivityProductView ActivityType = "product_view"
	ActivityAddToCart   ActivityType = "add_to_cart"
	ActivityCheckout    ActivityType = "checkout"
	ActivityReview      ActivityType = "review"
	ActivityPost        ActivityType = "post"
	ActivityMessage     ActivityType = "message"
)

// UserActivity is an append-only record of something a user did.
type UserActivity struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"user_id"`
	ActivityType ActivityType `json:"activity_type"`
	Description  string       `json:"description"`
	IPAddress    string       `json:"ip_address,omitempty"`
	UserAgent    string       `json:"user_agent,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ProductView records a product detail page view, by a user or anonymously.
type ProductView struct {
	ID         uuid.UUID  `json:"id"`
	ProductID  uuid.UUID  `json:"product_id"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	SessionKey string     `json:"session_key,omitempty"`
	IPAddress  string     `json:"ip_address,omitempty"`
	UserAgent  string     `json:"user_agent,omitempty"`
	ViewedAt   time.Time  `json:"viewed_at"`
}

// SearchQuery records a catalog search.
type SearchQuery struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Query       string     `json:"query"`
	ResultCount int        `json:"result_count"`
	IPAddress   string     `json:"ip_address,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// RevenueReport aggregates sales for one calendar day.
type RevenueReport struct {
	ID           uuid.UUID `json:"id"`
	Date         time.Time `json:"date"`
	TotalRevenue float64   `json:"total_revenue"`
	OrderCount   int       `json:"order_count"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSignup counts registrations for one calendar day.
type UserSignup struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	SignupCount int       `json:"signup_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AnalyticsEventType selects which analytics row an event produces.
type AnalyticsEventType string

const (
	EventUserActivity AnalyticsEventType = "user_activity"
	EventProductView  AnalyticsEventType = "product_view"
	EventSearchQuery  AnalyticsEventType = "search_query"
	EventOrderRevenue AnalyticsEventType = "order_revenue"
	EventUserSignup   AnalyticsEventType = "user_signup"
)

// AnalyticsEvent is the message carried from request handlers to the analytics recorder.
type AnalyticsEvent struct {
	ID           uuid.UUID          `json:"id"`
	Type         AnalyticsEventType `json:"type"`
	RequestID    string             `json:"request_id,omitempty"`
	OccurredAt   time.Time          `json:"occurred_at"`
	UserID       *uuid.UUID         `json:"user_id,omitempty"`
	ProductID    *uuid.UUID         `json:"product_id,omitempty"`
	ActivityType ActivityType       `json:"activity_type,omitempty"`
	Description  string             `json:"description,omitempty"`
	Query        string             `json:"query,omitempty"`
	ResultCount  int                `json:"result_count,omitempty"`
	SessionKey   string             `json:"session_key,omitempty"`
	IPAddress    string             `json:"ip_address,omitempty"`
	UserAgent    string             `json:"user_agent,omitempty"`
	Amount       float64            `json:"amount,omitempty"`
	OrderCount   int                `json:"order_count,omitempty"`
	ProductCount int                `json:"product_count,omitempty"`
}

// ActivityCount is the number of activities of one type.
type ActivityCount struct {
	ActivityType ActivityType `json:"activity_type"`
	Count        int64        `json:"count"`
}

// ProductViewStat is the number of views of one product.
type ProductViewStat struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Views       int64     `json:"views"`
}

// SearchTermStat summarises how often a query was searched.
type SearchTermStat struct {
	Query          string  `json:"query"`
	Count          int64   `json:"count"`
	AverageResults float64 `json:"average_results"`
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// End returns the exclusive upper bound (midnight after To).
func (r DateRange) End() time.Time {
	return DateOf(r.To).AddDate(0, 0, 1)
}
