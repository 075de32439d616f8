package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	UpdateEventByInitiator(c *ginext.Context)
	UpdateEventByAdmin(c *ginext.Context)
	GetInitiatorEvent(c *ginext.Context)
	ListInitiatorEvents(c *ginext.Context)
	SearchEventsAdmin(c *ginext.Context)
	SearchEventsPublic(c *ginext.Context)
	GetPublishedEvent(c *ginext.Context)

	CreateRequest(c *ginext.Context)
	CancelRequest(c *ginext.Context)
	ListUserRequests(c *ginext.Context)
	ListEventRequests(c *ginext.Context)
	ModerateRequests(c *ginext.Context)

	AddComment(c *ginext.Context)
	UpdateComment(c *ginext.Context)
	DeleteComment(c *ginext.Context)
	ModerateComment(c *ginext.Context)
	ListEventComments(c *ginext.Context)

	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	DeleteUser(c *ginext.Context)

	CreateCategory(c *ginext.Context)
	UpdateCategory(c *ginext.Context)
	DeleteCategory(c *ginext.Context)
	GetCategory(c *ginext.Context)
	ListCategories(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Публичный контур
		api.GET("/events", h.SearchEventsPublic)
		api.GET("/events/:eventId", h.GetPublishedEvent)
		api.GET("/events/:eventId/comments", h.ListEventComments)
		api.GET("/categories", h.ListCategories)
		api.GET("/categories/:catId", h.GetCategory)

		// Личный кабинет
		users := api.Group("/users/:userId")
		{
			users.POST("/events", h.CreateEvent)
			users.GET("/events", h.ListInitiatorEvents)
			users.GET("/events/:eventId", h.GetInitiatorEvent)
			users.PATCH("/events/:eventId", h.UpdateEventByInitiator)
			users.GET("/events/:eventId/requests", h.ListEventRequests)
			users.PATCH("/events/:eventId/requests", h.ModerateRequests)

			users.POST("/requests", h.CreateRequest)
			users.GET("/requests", h.ListUserRequests)
			users.PATCH("/requests/:requestId/cancel", h.CancelRequest)

			users.POST("/comments", h.AddComment)
			users.PATCH("/comments/:commentId", h.UpdateComment)
			users.DELETE("/comments/:commentId", h.DeleteComment)
		}

		// Административный контур
		admin := api.Group("/admin")
		{
			admin.GET("/events", h.SearchEventsAdmin)
			admin.PATCH("/events/:eventId", h.UpdateEventByAdmin)

			admin.POST("/users", h.CreateUser)
			admin.GET("/users", h.ListUsers)
			admin.DELETE("/users/:userId", h.DeleteUser)

			admin.POST("/categories", h.CreateCategory)
			admin.PATCH("/categories/:catId", h.UpdateCategory)
			admin.DELETE("/categories/:catId", h.DeleteCategory)

			admin.PATCH("/comments/:commentId", h.ModerateComment)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
