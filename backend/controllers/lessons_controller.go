package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"hakwon/backend/config"
	"hakwon/backend/middleware"
	"hakwon/backend/models"
	"hakwon/backend/policy"
	"hakwon/backend/services"
	"hakwon/backend/store"
	"hakwon/backend/utils"
	"hakwon/backend/viewmodel"
)

type LessonsController struct {
	Store     store.Store
	Cfg       *config.Config
	Progress  *services.ProgressService
	Favorites *services.FavoriteService
}

func NewLessonsController(st store.Store, cfg *config.Config, progress *services.ProgressService, favorites *services.FavoriteService) *LessonsController {
	return &LessonsController{Store: st, Cfg: cfg, Progress: progress, Favorites: favorites}
}

// GetLessons godoc
// @Summary List lessons
// @Description Returns the filtered/sorted lesson list with viewer annotations
// @Tags lessons
// @Produce json
// @Param search query string false "검색어"
// @Param tier query int false "티어 필터 (0=전체)"
// @Param sort query string false "newest | popular | progress"
// @Success 200 {object} utils.SuccessResponse
// @Router /lessons [get]
func (lc *LessonsController) GetLessons(c *fiber.Ctx) error {
	viewer := middleware.Viewer(c)

	// The page needs three collections; they are fetched concurrently and
	// a failure of any one fails the whole group.
	var (
		lessons   []models.Lesson
		progress  []models.Progress
		favorites []models.Favorite
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() (err error) {
		lessons, err = lc.Store.ListLessons(ctx)
		return err
	})
	g.Go(func() (err error) {
		progress, err = lc.Store.ProgressByUser(ctx, viewer.ID)
		return err
	})
	g.Go(func() (err error) {
		favorites, err = lc.Store.FavoritesByUser(ctx, viewer.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return utils.InternalServerError(c, "레슨 목록을 불러오지 못했습니다.")
	}

	crit := viewmodel.LessonCriteria{
		Query: c.Query("search"),
		Tier:  c.QueryInt("tier", viewmodel.TierAll),
		Sort:  c.Query("sort", viewmodel.SortNewest),
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"lessons": viewmodel.BuildLessonList(lessons, progress, favorites, viewer, crit),
		"stats":   viewmodel.SummarizeLessons(lessons, progress),
	})
}

func (lc *LessonsController) GetLessonDetail(c *fiber.Ctx) error {
	viewer := middleware.Viewer(c)

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "잘못된 레슨 ID입니다.")
	}

	var (
		lesson  *models.Lesson
		lessons []models.Lesson
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() (err error) {
		lesson, err = lc.Store.GetLesson(ctx, lessonID)
		return err
	})
	g.Go(func() (err error) {
		lessons, err = lc.Store.ListLessons(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "레슨을 찾을 수 없습니다.")
		}
		return utils.InternalServerError(c, "레슨을 불러오지 못했습니다.")
	}

	pct := 0
	if progress, err := lc.Store.ProgressFor(c.UserContext(), viewer.ID, lessonID); err == nil {
		pct = progress.ProgressPct
	}

	level := policy.Level(lesson.TierRequired)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"lesson":       lesson,
		"tier_name":    level.Label(),
		"tier_badge":   level.Badge(),
		"locked":       policy.Locked(level, viewer),
		"progress_pct": pct,
		"related":      viewmodel.RelatedLessons(lessons, *lesson, 3),
	})
}

// UpdateProgress godoc
// @Summary Update lesson progress
// @Description Upserts the viewer's progress for one lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param input body object true "progress_pct"
// @Success 200 {object} utils.SuccessResponse
// @Router /lessons/{id}/progress [post]
func (lc *LessonsController) UpdateProgress(c *fiber.Ctx) error {
	viewer := middleware.Viewer(c)

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "잘못된 레슨 ID입니다.")
	}
	if _, err := lc.Store.GetLesson(c.UserContext(), lessonID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "레슨을 찾을 수 없습니다.")
		}
		return utils.InternalServerError(c, "레슨을 불러오지 못했습니다.")
	}

	var input struct {
		ProgressPct int `json:"progress_pct"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "요청 본문을 읽을 수 없습니다.")
	}

	progress, err := lc.Progress.Update(c.UserContext(), viewer.ID, lessonID, input.ProgressPct)
	if err != nil {
		return utils.InternalServerError(c, "진행률 저장에 실패했습니다.")
	}
	return utils.Message(c, fiber.StatusOK, "진행률이 저장되었습니다.", progress)
}

func (lc *LessonsController) AddFavorite(c *fiber.Ctx) error {
	viewer := middleware.Viewer(c)

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "잘못된 레슨 ID입니다.")
	}

	favorite, err := lc.Favorites.Add(c.UserContext(), viewer.ID, lessonID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyFavorited) {
			return utils.Conflict(c, err.Error())
		}
		return utils.InternalServerError(c, "즐겨찾기 처리 중 오류가 발생했습니다.")
	}
	return utils.Message(c, fiber.StatusCreated, "즐겨찾기에 추가되었습니다.", favorite)
}

func (lc *LessonsController) RemoveFavorite(c *fiber.Ctx) error {
	viewer := middleware.Viewer(c)

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "잘못된 레슨 ID입니다.")
	}

	if err := lc.Favorites.Remove(c.UserContext(), viewer.ID, lessonID); err != nil {
		if errors.Is(err, services.ErrNotFavorited) {
			return utils.NotFound(c, err.Error())
		}
		return utils.InternalServerError(c, "즐겨찾기 처리 중 오류가 발생했습니다.")
	}
	return utils.Message(c, fiber.StatusOK, "즐겨찾기에서 제거되었습니다.", nil)
}
