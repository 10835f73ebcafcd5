package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hakwon/backend/config"
	"hakwon/backend/middleware"
	"hakwon/backend/models"
	"hakwon/backend/policy"
	"hakwon/backend/services"
	"hakwon/backend/store"
	"hakwon/backend/utils"
)

type MembershipController struct {
	Store      store.Store
	Cfg        *config.Config
	Membership *services.MembershipService
}

func NewMembershipController(st store.Store, cfg *config.Config, membership *services.MembershipService) *MembershipController {
	return &MembershipController{Store: st, Cfg: cfg, Membership: membership}
}

// GetTiers lists the purchasable tiers: active tiers only, annotated with
// the tier label/badge and whether the viewer is already on them.
func (mc *MembershipController) GetTiers(c *fiber.Ctx) error {
	viewer := middleware.Viewer(c)

	tiers, err := mc.Store.ListTiers(c.UserContext())
	if err != nil {
		return utils.InternalServerError(c, "멤버십 정보를 불러오지 못했습니다.")
	}

	var current *models.MembershipTier
	result := make([]fiber.Map, 0, len(tiers))
	for _, tier := range tiers {
		if policy.AlreadySubscribed(viewer, tier.ID) {
			t := tier
			current = &t
		}
		if !tier.IsActive {
			continue
		}
		level := policy.Level(tier.ID)
		result = append(result, fiber.Map{
			"tier":       tier,
			"tier_name":  level.Label(),
			"tier_badge": level.Badge(),
			"is_current": policy.AlreadySubscribed(viewer, tier.ID),
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"tiers":        result,
		"current_tier": current,
	})
}

// Checkout godoc
// @Summary Upgrade membership
// @Description Simulated payment followed by the tier/role update
// @Tags membership
// @Accept json
// @Produce json
// @Param input body object true "tier_id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /membership/checkout [post]
func (mc *MembershipController) Checkout(c *fiber.Ctx) error {
	viewer := middleware.Viewer(c)

	var input struct {
		TierID int `json:"tier_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "요청 본문을 읽을 수 없습니다.")
	}

	user, err := mc.Membership.Checkout(c.UserContext(), viewer, input.TierID)
	switch {
	case err == nil:
		return utils.Message(c, fiber.StatusOK, "플랜이 변경되었습니다.", user)
	case errors.Is(err, services.ErrAlreadySubscribed):
		return utils.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTierNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTierInactive):
		return utils.BadRequest(c, err.Error())
	default:
		return utils.InternalServerError(c, "결제 처리에 실패했습니다.")
	}
}
