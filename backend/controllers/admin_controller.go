package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"hakwon/backend/config"
	"hakwon/backend/models"
	"hakwon/backend/services"
	"hakwon/backend/store"
	"hakwon/backend/utils"
	"hakwon/backend/viewmodel"
)

type AdminController struct {
	Store store.Store
	Cfg   *config.Config
	Posts *services.PostService
}

func NewAdminController(st store.Store, cfg *config.Config, posts *services.PostService) *AdminController {
	return &AdminController{Store: st, Cfg: cfg, Posts: posts}
}

// GetDashboard assembles the admin dashboard: the moderation queue with
// authors joined, the user and lesson listings, and the platform stats.
func (ac *AdminController) GetDashboard(c *fiber.Ctx) error {
	var (
		posts   []models.Post
		users   []models.User
		lessons []models.Lesson
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() (err error) {
		posts, err = ac.Store.ListPosts(ctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = ac.Store.ListUsers(ctx)
		return err
	})
	g.Go(func() (err error) {
		lessons, err = ac.Store.ListLessons(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return utils.InternalServerError(c, "대시보드를 불러오지 못했습니다.")
	}

	flagged := viewmodel.FlaggedPosts(posts, users)

	stats := fiber.Map{
		"total_users":   len(users),
		"total_lessons": len(lessons),
		"total_posts":   len(posts),
		"flagged_posts": len(flagged),
	}
	for _, role := range []models.Role{models.RoleGuest, models.RoleMember, models.RoleAdmin} {
		count := 0
		for _, u := range users {
			if u.Role == role {
				count++
			}
		}
		stats[string(role)+"_users"] = count
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"flagged_posts": flagged,
		"users":         users,
		"lessons":       lessons,
		"stats":         stats,
	})
}

func (ac *AdminController) UnflagPost(c *fiber.Ctx) error {
	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "잘못된 게시글 ID입니다.")
	}

	post, err := ac.Posts.Unflag(c.UserContext(), postID)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return utils.NotFound(c, err.Error())
		}
		return utils.InternalServerError(c, "신고 해제에 실패했습니다.")
	}
	return utils.Message(c, fiber.StatusOK, "신고가 해제되었습니다.", post)
}

func (ac *AdminController) DeletePost(c *fiber.Ctx) error {
	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "잘못된 게시글 ID입니다.")
	}

	if err := ac.Posts.Delete(c.UserContext(), postID); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return utils.NotFound(c, err.Error())
		}
		return utils.InternalServerError(c, "게시글 삭제에 실패했습니다.")
	}
	return utils.Message(c, fiber.StatusOK, "게시글이 삭제되었습니다.", nil)
}

func (ac *AdminController) ChangeUserRole(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "잘못된 사용자 ID입니다.")
	}

	var input struct {
		Role models.Role `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "요청 본문을 읽을 수 없습니다.")
	}
	if !input.Role.Valid() {
		return utils.BadRequest(c, "알 수 없는 권한입니다.")
	}

	user, err := ac.Store.GetUser(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "사용자를 찾을 수 없습니다.")
		}
		return utils.InternalServerError(c, "사용자를 불러오지 못했습니다.")
	}

	user.Role = input.Role
	if err := ac.Store.UpdateUser(c.UserContext(), user); err != nil {
		return utils.InternalServerError(c, "권한 변경에 실패했습니다.")
	}
	return utils.Message(c, fiber.StatusOK, "사용자 권한이 변경되었습니다.", user)
}

func (ac *AdminController) CreateLesson(c *fiber.Ctx) error {
	var input struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		TierRequired    int    `json:"tier_required"`
		DurationMinutes int    `json:"duration_minutes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "요청 본문을 읽을 수 없습니다.")
	}
	if input.Title == "" {
		return utils.BadRequest(c, "레슨 제목을 입력해주세요.")
	}
	if input.TierRequired == 0 {
		input.TierRequired = 1
	}

	lesson := &models.Lesson{
		Title:           input.Title,
		Description:     input.Description,
		TierRequired:    input.TierRequired,
		DurationMinutes: input.DurationMinutes,
		CreatedAt:       time.Now(),
	}
	if err := ac.Store.CreateLesson(c.UserContext(), lesson); err != nil {
		return utils.InternalServerError(c, "레슨 생성에 실패했습니다.")
	}
	return utils.Message(c, fiber.StatusCreated, "레슨이 생성되었습니다.", lesson)
}

func (ac *AdminController) UpdateLesson(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "잘못된 레슨 ID입니다.")
	}

	lesson, err := ac.Store.GetLesson(c.UserContext(), lessonID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "레슨을 찾을 수 없습니다.")
		}
		return utils.InternalServerError(c, "레슨을 불러오지 못했습니다.")
	}

	var input struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		TierRequired    int    `json:"tier_required"`
		DurationMinutes int    `json:"duration_minutes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "요청 본문을 읽을 수 없습니다.")
	}

	if input.Title != "" {
		lesson.Title = input.Title
	}
	if input.Description != "" {
		lesson.Description = input.Description
	}
	if input.TierRequired != 0 {
		lesson.TierRequired = input.TierRequired
	}
	if input.DurationMinutes != 0 {
		lesson.DurationMinutes = input.DurationMinutes
	}

	if err := ac.Store.UpdateLesson(c.UserContext(), lesson); err != nil {
		return utils.InternalServerError(c, "레슨 수정에 실패했습니다.")
	}
	return utils.Message(c, fiber.StatusOK, "레슨이 수정되었습니다.", lesson)
}

func (ac *AdminController) DeleteLesson(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "잘못된 레슨 ID입니다.")
	}

	if err := ac.Store.DeleteLesson(c.UserContext(), lessonID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "레슨을 찾을 수 없습니다.")
		}
		return utils.InternalServerError(c, "레슨 삭제에 실패했습니다.")
	}
	return utils.Message(c, fiber.StatusOK, "레슨이 삭제되었습니다.", nil)
}
