package api

import "github.com/adilhusain01/aadil-rasheed-server/internal/api/handler"

// HandlersGroup bundles every initialized handler for router setup.
type HandlersGroup struct {
	AuthHandler         *handler.AuthHandler
	PostHandler         *handler.PostHandler
	CommentHandler      *handler.CommentHandler
	ContactHandler      *handler.ContactHandler
	SubscriptionHandler *handler.SubscriptionHandler
	SocialHandler       *handler.SocialHandler
	GalleryHandler      *handler.GalleryHandler
	UploadHandler       *handler.UploadHandler
}
