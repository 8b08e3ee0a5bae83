package api

import (
	"net/http"

	"github.com/adilhusain01/aadil-rasheed-server/internal/api/middleware"
	"github.com/adilhusain01/aadil-rasheed-server/internal/model"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/logger"
	"github.com/adilhusain01/aadil-rasheed-server/internal/repository"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, userRepo repository.UserRepo) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(userRepo)
	admin := middleware.CheckRoles(model.RoleAdmin)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true, "data": "pong"})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)
			authGroup.GET("/me", auth, group.AuthHandler.GetMe)
			authGroup.GET("/logout", auth, group.AuthHandler.Logout)
		}

		blogGroup := apiGroup.Group("/blog")
		{
			blogGroup.GET("", group.PostHandler.ListPublished)
			blogGroup.POST("", auth, admin, group.PostHandler.Create)
			blogGroup.GET("/admin/all", auth, admin, group.PostHandler.ListAll)

			idGroup := blogGroup.Group("/id/:id")
			{
				idGroup.GET("", auth, group.PostHandler.GetByID)
				idGroup.PUT("", auth, admin, group.PostHandler.Update)
				idGroup.DELETE("", auth, admin, group.PostHandler.Delete)
				idGroup.PUT("/like", group.PostHandler.Like)
				idGroup.GET("/comments", group.CommentHandler.ListForPost)
				idGroup.POST("/comments", group.CommentHandler.Create)
			}

			commentGroup := blogGroup.Group("/comments")
			{
				commentGroup.GET("", auth, admin, group.CommentHandler.ListAll)
				commentGroup.POST("/:comment_id/replies", group.CommentHandler.Reply)
				commentGroup.PUT("/:comment_id/approve", auth, admin, group.CommentHandler.Approve)
				commentGroup.DELETE("/:comment_id", auth, admin, group.CommentHandler.Delete)
			}

			// Slug catch-all registered last; static segments above win.
			blogGroup.GET("/:slug", group.PostHandler.GetBySlug)
		}

		contactGroup := apiGroup.Group("/contact")
		{
			contactGroup.POST("", group.ContactHandler.Create)
			contactGroup.GET("", auth, admin, group.ContactHandler.List)
			contactGroup.GET("/:id", auth, admin, group.ContactHandler.Get)
			contactGroup.PUT("/:id/read", auth, admin, group.ContactHandler.MarkRead)
			contactGroup.PUT("/:id/unread", auth, admin, group.ContactHandler.MarkUnread)
			contactGroup.DELETE("/:id", auth, admin, group.ContactHandler.Delete)
		}

		subscriptionGroup := apiGroup.Group("/subscription")
		{
			subscriptionGroup.POST("", group.SubscriptionHandler.Subscribe)
			subscriptionGroup.PUT("/unsubscribe", group.SubscriptionHandler.Unsubscribe)
			subscriptionGroup.GET("", auth, admin, group.SubscriptionHandler.List)
			subscriptionGroup.DELETE("/:id", auth, admin, group.SubscriptionHandler.Delete)
		}

		socialGroup := apiGroup.Group("/social")
		{
			socialGroup.GET("", group.SocialHandler.ListActive)
			socialGroup.POST("", auth, admin, group.SocialHandler.Create)
			socialGroup.PUT("/:id", auth, admin, group.SocialHandler.Update)
			socialGroup.DELETE("/:id", auth, admin, group.SocialHandler.Delete)
		}

		galleryGroup := apiGroup.Group("/gallery")
		{
			galleryGroup.GET("", group.GalleryHandler.ListActive)
			galleryGroup.POST("", auth, admin, group.GalleryHandler.Create)
			galleryGroup.PUT("/:id", auth, admin, group.GalleryHandler.Update)
			galleryGroup.DELETE("/:id", auth, admin, group.GalleryHandler.Delete)
		}

		uploadGroup := apiGroup.Group("/upload")
		uploadGroup.Use(auth, admin)
		{
			uploadGroup.POST("", group.UploadHandler.Upload)
			uploadGroup.GET("", group.UploadHandler.List)
			uploadGroup.GET("/:id", group.UploadHandler.Get)
			uploadGroup.DELETE("/:id", group.UploadHandler.Delete)
		}
	}

	return r
}
