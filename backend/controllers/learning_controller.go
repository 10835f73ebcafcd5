package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"hakwon/backend/config"
	"hakwon/backend/middleware"
	"hakwon/backend/models"
	"hakwon/backend/store"
	"hakwon/backend/utils"
	"hakwon/backend/viewmodel"
)

type LearningController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewLearningController(st store.Store, cfg *config.Config) *LearningController {
	return &LearningController{Store: st, Cfg: cfg}
}

// GetMyLearning returns the viewer's learning feed with the
// all / in-progress / completed filter and the summary stats.
func (mc *LearningController) GetMyLearning(c *fiber.Ctx) error {
	viewer := middleware.Viewer(c)

	var (
		lessons  []models.Lesson
		progress []models.Progress
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() (err error) {
		lessons, err = mc.Store.ListLessons(ctx)
		return err
	})
	g.Go(func() (err error) {
		progress, err = mc.Store.ProgressByUser(ctx, viewer.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return utils.InternalServerError(c, "학습 현황을 불러오지 못했습니다.")
	}

	filter := c.Query("filter", viewmodel.FilterAll)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"items": viewmodel.BuildLearningList(progress, lessons, filter),
		"stats": viewmodel.SummarizeLearning(progress),
	})
}
