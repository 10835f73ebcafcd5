package routes

import (
	"github.com/gofiber/fiber/v2"

	"hakwon/backend/config"
	"hakwon/backend/controllers"
	"hakwon/backend/middleware"
	"hakwon/backend/notify"
	"hakwon/backend/services"
	"hakwon/backend/store"
)

func SetupRoutes(app *fiber.App, st store.Store, cfg *config.Config, notifier notify.Notifier) {
	progressSvc := services.NewProgressService(st)
	favoriteSvc := services.NewFavoriteService(st, notifier)
	postSvc := services.NewPostService(st, notifier)
	membershipSvc := services.NewMembershipService(st, notifier, cfg.CheckoutDelay)

	// Every route runs with a resolved viewer.
	viewer := middleware.WithViewer(st)
	admin := middleware.AdminOnly()

	homeController := controllers.NewHomeController(st, cfg)
	app.Get("/api/home", viewer, homeController.GetHome)

	lessonsController := controllers.NewLessonsController(st, cfg, progressSvc, favoriteSvc)
	lessons := app.Group("/api/lessons", viewer)
	lessons.Get("/", lessonsController.GetLessons)
	lessons.Get("/:id", lessonsController.GetLessonDetail)
	lessons.Post("/:id/progress", lessonsController.UpdateProgress)
	lessons.Post("/:id/favorite", lessonsController.AddFavorite)
	lessons.Delete("/:id/favorite", lessonsController.RemoveFavorite)

	learningController := controllers.NewLearningController(st, cfg)
	app.Get("/api/learning", viewer, learningController.GetMyLearning)

	communityController := controllers.NewCommunityController(st, cfg, postSvc)
	community := app.Group("/api/community", viewer)
	community.Get("/", communityController.GetPosts)
	community.Post("/", communityController.CreatePost)
	community.Post("/:id/flag", communityController.FlagPost)

	membershipController := controllers.NewMembershipController(st, cfg, membershipSvc)
	membership := app.Group("/api/membership", viewer)
	membership.Get("/", membershipController.GetTiers)
	membership.Post("/checkout", membershipController.Checkout)

	adminController := controllers.NewAdminController(st, cfg, postSvc)
	adminGroup := app.Group("/api/admin", viewer, admin)
	adminGroup.Get("/dashboard", adminController.GetDashboard)
	adminGroup.Post("/posts/:id/unflag", adminController.UnflagPost)
	adminGroup.Delete("/posts/:id", adminController.DeletePost)
	adminGroup.Put("/users/:id/role", adminController.ChangeUserRole)
	adminGroup.Post("/lessons", adminController.CreateLesson)
	adminGroup.Put("/lessons/:id", adminController.UpdateLesson)
	adminGroup.Delete("/lessons/:id", adminController.DeleteLesson)
}
