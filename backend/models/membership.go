package models

// MembershipTier is a purchasable plan. Inactive tiers are kept for users
// still referencing them but are excluded from purchase listings.
type MembershipTier struct {
	ID           int      `gorm:"primaryKey" json:"Id"`
	Name         string   `gorm:"not null" json:"name"`
	PriceMonthly int      `json:"price_monthly"`
	Features     []string `gorm:"serializer:json" json:"features"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`
}

func (MembershipTier) TableName() string { return "membership_tier" }
