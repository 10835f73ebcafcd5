package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"hakwon/backend/config"
	"hakwon/backend/middleware"
	"hakwon/backend/models"
	"hakwon/backend/services"
	"hakwon/backend/store"
	"hakwon/backend/utils"
	"hakwon/backend/viewmodel"
)

const defaultPageSize = 10

type CommunityController struct {
	Store store.Store
	Cfg   *config.Config
	Posts *services.PostService
}

func NewCommunityController(st store.Store, cfg *config.Config, posts *services.PostService) *CommunityController {
	return &CommunityController{Store: st, Cfg: cfg, Posts: posts}
}

// GetPosts godoc
// @Summary Community feed
// @Description Returns the filtered/sorted post list with authors joined
// @Tags community
// @Produce json
// @Param search query string false "검색어"
// @Param sort query string false "newest | popular | flagged"
// @Param page query int false "페이지 (1부터)"
// @Success 200 {object} utils.PaginatedResponse
// @Router /community [get]
func (cc *CommunityController) GetPosts(c *fiber.Ctx) error {
	viewer := middleware.Viewer(c)

	var (
		posts []models.Post
		users []models.User
	)
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() (err error) {
		posts, err = cc.Store.ListPosts(ctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = cc.Store.ListUsers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return utils.InternalServerError(c, "게시글을 불러오지 못했습니다.")
	}

	crit := viewmodel.PostCriteria{
		Query: c.Query("search"),
		Sort:  c.Query("sort", viewmodel.SortNewest),
	}
	views := viewmodel.BuildPostList(posts, users, viewer, crit)

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	size := c.QueryInt("size", defaultPageSize)
	if size < 1 {
		size = defaultPageSize
	}

	total := len(views)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return utils.Paginate(c, views[start:end], total, page, size)
}

// CreatePost godoc
// @Summary Create a post
// @Tags community
// @Accept json
// @Produce json
// @Param input body object true "title, content"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /community [post]
func (cc *CommunityController) CreatePost(c *fiber.Ctx) error {
	viewer := middleware.Viewer(c)

	var input struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "요청 본문을 읽을 수 없습니다.")
	}

	post, err := cc.Posts.Create(c.UserContext(), viewer, input.Title, input.Content)
	if err != nil {
		if errors.Is(err, services.ErrEmptyPostFields) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalServerError(c, "게시글 작성에 실패했습니다.")
	}
	return utils.Message(c, fiber.StatusCreated, "게시글이 작성되었습니다.", post)
}

func (cc *CommunityController) FlagPost(c *fiber.Ctx) error {
	viewer := middleware.Viewer(c)

	postID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "잘못된 게시글 ID입니다.")
	}

	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "요청 본문을 읽을 수 없습니다.")
	}

	post, err := cc.Posts.Flag(c.UserContext(), viewer, postID, input.Reason)
	switch {
	case err == nil:
		return utils.Message(c, fiber.StatusOK, "게시글이 신고되었습니다.", post)
	case errors.Is(err, services.ErrEmptyFlagReason):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOwnPost):
		return utils.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrPostNotFound):
		return utils.NotFound(c, err.Error())
	default:
		return utils.InternalServerError(c, "신고 처리에 실패했습니다.")
	}
}
