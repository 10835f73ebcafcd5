package models

// Role is a user's access class. It is a closed enumeration and is distinct
// from the numeric membership tier attached to lessons: a tier decides what
// content a user may watch, a role decides what actions the user may take.
type Role string

const (
	RoleGuest  Role = "guest"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleMember, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID     int       `gorm:"primaryKey" json:"Id"`
	Name   string    `json:"name"`
	Email  string    `gorm:"unique;not null" json:"email"`
	Role   Role      `gorm:"default:guest" json:"role"`
	TierID *LookupID `json:"tier_id"`
}

func (User) TableName() string { return "app_user" }
