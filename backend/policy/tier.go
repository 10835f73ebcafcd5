// Package policy holds the tier-gating rules shared by the lesson, membership
// and admin views. Tier levels and user roles deliberately stay two separate
// vocabularies even though the badge variants reuse the role names: a Level
// gates content, a Role gates actions.
package policy

import "hakwon/backend/models"

// Level is a numeric content-access level attached to a lesson
// (tier_required) or a membership tier.
type Level int

const (
	LevelFree    Level = 1
	LevelPremium Level = 2
	LevelVIP     Level = 3
)

// Label returns the Korean display name for a level.
func (l Level) Label() string {
	switch l {
	case LevelFree:
		return "무료"
	case LevelPremium:
		return "프리미엄"
	case LevelVIP:
		return "VIP"
	}
	return "일반"
}

// Badge returns the badge variant for a level. The variants reuse the
// role names for historical reasons; they are display tokens, not roles.
func (l Level) Badge() string {
	switch l {
	case LevelFree:
		return "guest"
	case LevelPremium:
		return "member"
	case LevelVIP:
		return "admin"
	}
	return "default"
}

// ViewerLevel derives a viewer's content level from their membership tier.
// Tier ids double as content levels for the three purchasable tiers; users
// without a tier, or stranded on a retired tier outside that range (the old
// beta plan), are at the free level rather than above VIP.
func ViewerLevel(viewer models.User) Level {
	if viewer.TierID == nil {
		return LevelFree
	}
	level := Level(viewer.TierID.Int())
	if level < LevelFree || level > LevelVIP {
		return LevelFree
	}
	return level
}

// Locked reports whether a lesson requiring the given level is gated behind
// an upgrade for the viewer. Presentation-only: locked lessons stay listed,
// the client renders the upgrade prompt instead of the player.
func Locked(required Level, viewer models.User) bool {
	return required > ViewerLevel(viewer)
}

// IsAdmin gates role-restricted UI and actions (admin dashboard, unflag).
func IsAdmin(viewer models.User) bool {
	return viewer.Role == models.RoleAdmin
}

// AlreadySubscribed reports whether the viewer is on the given tier, in
// which case re-purchase is disabled.
func AlreadySubscribed(viewer models.User, tierID int) bool {
	return viewer.TierID != nil && viewer.TierID.Int() == tierID
}

// RoleForTier is the role a user lands on after checking out a tier:
// paid tiers make a member, the free tier stays guest. Admin is never
// assigned through checkout.
func RoleForTier(tierID int) models.Role {
	if tierID > int(LevelFree) {
		return models.RoleMember
	}
	return models.RoleGuest
}

// PostVisible decides whether a post may be shown to the viewer: flagged
// posts are visible to admins only, everything else to everyone.
func PostVisible(post models.Post, viewer models.User) bool {
	return !post.HasFlagged || IsAdmin(viewer)
}
