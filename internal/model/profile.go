package model

import (
	"strings"
	"time"
)

// Weights for the completion score. Required fields carry most of the weight.
const (
	requiredWeight     = 70
	optionalWeight     = 30
	completenessCutoff = 80
	requiredFieldCount = 5
	optionalFieldCount = 2
)

// Profile stores a user's personal and needs information. Exactly one
// profile exists per user; it is created alongside the user at registration.
type Profile struct {
	ID                   uint       `json:"id" gorm:"primaryKey"`
	UserID               uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	Phone                string     `json:"phone" gorm:"size:20"`
	Bio                  string     `json:"bio" gorm:"type:text"`
	Address              string     `json:"address" gorm:"size:255"`
	City                 string     `json:"city" gorm:"size:100"`
	State                string     `json:"state" gorm:"size:100"`
	ZipCode              string     `json:"zip_code" gorm:"size:20"`
	Needs                StringList `json:"needs" gorm:"type:text"`
	IsComplete           bool       `json:"is_complete" gorm:"default:false"`
	CompletionPercentage int        `json:"completion_percentage" gorm:"default:0"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// RecomputeCompletion recalculates the completion percentage and the
// is-complete flag from the current field values and returns the percentage.
// Required fields (phone, address, city, state, zip) make up 70 points;
// optional fields (bio, needs) make up the remaining 30. A profile is
// complete at 80 or above. Clients never set the percentage directly.
func (p *Profile) RecomputeCompletion() int {
	required := [requiredFieldCount]string{p.Phone, p.Address, p.City, p.State, p.ZipCode}
	filledRequired := 0
	for _, f := range required {
		if strings.TrimSpace(f) != "" {
			filledRequired++
		}
	}

	filledOptional := 0
	if strings.TrimSpace(p.Bio) != "" {
		filledOptional++
	}
	if len(p.Needs) > 0 {
		filledOptional++
	}

	total := int(float64(filledRequired)/requiredFieldCount*requiredWeight +
		float64(filledOptional)/optionalFieldCount*optionalWeight)

	p.CompletionPercentage = total
	p.IsComplete = total >= completenessCutoff
	return total
}
