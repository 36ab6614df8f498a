package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdStatus is the lifecycle state of an advertisement.
type AdStatus string

const (
	AdStatusDraft   AdStatus = "draft"
	AdStatusActive  AdStatus = "active"
	AdStatusPaused  AdStatus = "paused"
	AdStatusExpired AdStatus = "expired"
)

// IsValid checks if the AdStatus is a known value.
func (s AdStatus) IsValid() bool {
	switch s {
	case AdStatusDraft, AdStatusActive, AdStatusPaused, AdStatusExpired:
		return true
	default:
		return false
	}
}

// Advertisement is a paid placement. It is served only while active and inside its date window.
type Advertisement struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	ImageURL    string              `json:"image_url"`
	TargetURL   string              `json:"target_url"`
	Status      AdStatus            `json:"status"`
	StartDate   time.Time           `json:"start_date"`
	EndDate     time.Time           `json:"end_date"`
	Budget      float64             `json:"budget"`
	Spent       float64             `json:"spent"`
	CreatedBy   uuid.UUID           `json:"created_by"`
	Slots       []AdvertisementSlot `json:"slots,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// IsServing reports whether the ad should be shown on the given day.
func (a *Advertisement) IsServing(today time.Time) bool {
	if a.Status != AdStatusActive {
		return false
	}
	day := DateOf(today)

	return !day.Before(DateOf(a.StartDate)) && !day.After(DateOf(a.EndDate))
}

// BudgetExhausted reports whether a capped ad has spent its budget.
func (a *Advertisement) BudgetExhausted() bool {
	return a.Budget > 0 && a.Spent >= a.Budget
}

// AdvertisementSlot is a placement of an ad on a page, with its pricing.
type AdvertisementSlot struct {
	ID                 uuid.UUID      `json:"id"`
	AdvertisementID    uuid.UUID      `json:"advertisement_id"`
	SlotName           string         `json:"slot_name"`
	PageLocation       string         `json:"page_location"`
	Dimensions         string         `json:"dimensions"`
	PricePerImpression float64        `json:"price_per_impression"`
	PricePerClick      float64        `json:"price_per_click"`
	Advertisement      *Advertisement `json:"advertisement,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
