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

const (
	featuredLessonCount = 6
	recentProgressCount = 3
)

type HomeController struct {
	Store store.Store
	Cfg   *config.Config
}

func NewHomeController(st store.Store, cfg *config.Config) *HomeController {
	return &HomeController{Store: st, Cfg: cfg}
}

// GetHome assembles the home feed: the featured lesson strip and the
// viewer's most recent progress with lessons joined on.
func (hc *HomeController) GetHome(c *fiber.Ctx) error {
	viewer := middleware.Viewer(c)

	var (
		lessons  []models.Lesson
		progress []models.Progress
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() (err error) {
		lessons, err = hc.Store.ListLessons(ctx)
		return err
	})
	g.Go(func() (err error) {
		progress, err = hc.Store.ProgressByUser(ctx, viewer.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return utils.InternalServerError(c, "홈 화면을 불러오지 못했습니다.")
	}

	featured := lessons
	if len(featured) > featuredLessonCount {
		featured = featured[:featuredLessonCount]
	}
	recent := progress
	if len(recent) > recentProgressCount {
		recent = recent[:recentProgressCount]
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"featured_lessons": viewmodel.BuildLessonList(featured, progress, nil, viewer, viewmodel.LessonCriteria{}),
		"recent_progress":  viewmodel.BuildLearningList(recent, lessons, viewmodel.FilterAll),
	})
}
