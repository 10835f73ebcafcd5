package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hakwon/backend/models"
	"hakwon/backend/notify"
	"hakwon/backend/policy"
	"hakwon/backend/store"
)

var (
	ErrAlreadySubscribed = errors.New("이미 현재 플랜을 이용중입니다.")
	ErrTierNotFound      = errors.New("멤버십 티어를 찾을 수 없습니다.")
	ErrTierInactive      = errors.New("판매가 종료된 플랜입니다.")
)

// MembershipService runs the upgrade flow. There is no real payment
// processor behind it: checkout is a simulated delay followed by the user
// update, exactly like the original flow.
type MembershipService struct {
	store    store.Store
	notifier notify.Notifier
	delay    time.Duration
}

func NewMembershipService(st store.Store, n notify.Notifier, delay time.Duration) *MembershipService {
	return &MembershipService{store: st, notifier: n, delay: delay}
}

// Checkout upgrades the viewer to the given tier. Re-purchasing the current
// tier and purchasing inactive tiers are both rejected before the simulated
// payment runs. On success the user record carries the new tier id and the
// role derived from it.
func (s *MembershipService) Checkout(ctx context.Context, viewer models.User, tierID int) (*models.User, error) {
	tier, err := s.store.GetTier(ctx, tierID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTierNotFound
		}
		return nil, err
	}
	if !tier.IsActive {
		return nil, ErrTierInactive
	}
	if policy.AlreadySubscribed(viewer, tier.ID) {
		return nil, ErrAlreadySubscribed
	}

	s.notifier.Notify(notify.KindInfo, "결제 처리 중...")
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	user, err := s.store.GetUser(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}
	tierRef := models.LookupID(tier.ID)
	user.TierID = &tierRef
	if user.Role != models.RoleAdmin {
		user.Role = policy.RoleForTier(tier.ID)
	}
	if err := s.store.UpdateUser(ctx, user); err != nil {
		s.notifier.Notify(notify.KindError, "결제 처리에 실패했습니다.")
		return nil, err
	}
	s.notifier.Notify(notify.KindSuccess, fmt.Sprintf("%s 플랜으로 업그레이드되었습니다!", tier.Name))
	return user, nil
}
