package wire

import (
	"github.com/adilhusain01/aadil-rasheed-server/internal/api"
	"github.com/adilhusain01/aadil-rasheed-server/internal/api/handler"
	"github.com/adilhusain01/aadil-rasheed-server/internal/job"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/cron"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/mailer"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/minio"
	"github.com/adilhusain01/aadil-rasheed-server/internal/pkg/recaptcha"
	"github.com/adilhusain01/aadil-rasheed-server/internal/repository"
	"github.com/adilhusain01/aadil-rasheed-server/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer holds every top-level component the process
// needs after wiring.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	contactRepo := repository.NewContactRepo(db)
	subscriptionRepo := repository.NewSubscriptionRepo(db)
	socialRepo := repository.NewSocialRepo(db)
	galleryRepo := repository.NewGalleryRepo(db)
	uploadRepo := repository.NewUploadRepo(db)

	botVerifier := recaptcha.NewClient()
	mailSender := mailer.NewMailer()
	objectStore := minio.NewStore()

	authService := service.NewAuthService(userRepo)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, botVerifier)
	contactService := service.NewContactService(contactRepo, botVerifier, mailSender)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, botVerifier, mailSender)
	socialService := service.NewSocialService(socialRepo)
	galleryService := service.NewGalleryService(galleryRepo)
	uploadService := service.NewUploadService(uploadRepo, objectStore)

	handlers := &api.HandlersGroup{
		AuthHandler:         handler.NewAuthHandler(authService),
		PostHandler:         handler.NewPostHandler(postService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		ContactHandler:      handler.NewContactHandler(contactService),
		SubscriptionHandler: handler.NewSubscriptionHandler(subscriptionService),
		SocialHandler:       handler.NewSocialHandler(socialService),
		GalleryHandler:      handler.NewGalleryHandler(galleryService),
		UploadHandler:       handler.NewUploadHandler(uploadService),
	}

	router := api.SetupRouter(handlers, userRepo)

	cronMgr := cron.NewCronManager(job.NewTempCleanJob())

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
