package wire

import (
	"Terrace/internal/api"
	"Terrace/internal/api/config"
	"Terrace/internal/api/handler"
	"Terrace/internal/job"
	"Terrace/internal/pkg/cron"
	"Terrace/internal/pkg/es"
	"Terrace/internal/pkg/kafka"
	pkgmongo "Terrace/internal/pkg/mongo"
	"Terrace/internal/repository"
	"Terrace/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router   *gin.Engine
	DB       *gorm.DB
	CronMgr  *cron.Manager
	Producer kafka.ModerationProducer
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	profileRepo := repository.NewProfileRepo(db)
	postRepo := repository.NewPostRepository(db)
	actionRepo := repository.NewPostActionRepo(db)
	reportRepo := repository.NewReportRepo(db)
	teamRepo := repository.NewTeamRepo(db)
	memeRepo := repository.NewMemeRepo(db)

	noticeRepo := pkgmongo.NewNoticeRepo(mongoDB)
	esRepo := es.NewPostRepo(es.Client)

	producer, err := kafka.NewModerationProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	actionService := service.NewPostActionService(actionRepo, postRepo, profileRepo)
	postService := service.NewPostService(postRepo, profileRepo, teamRepo, esRepo, actionService)
	moderationService := service.NewModerationService(reportRepo, postRepo, profileRepo, noticeRepo, esRepo, producer)
	teamService := service.NewTeamService(teamRepo, profileRepo)
	memeService := service.NewMemeService(memeRepo)

	handlers := &api.HandlersGroup{
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(actionService),
		ModerationHandler: handler.NewModerationHandler(moderationService),
		TeamHandler:       handler.NewTeamHandler(teamService),
		MemeHandler:       handler.NewMemeHandler(memeService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewReviewRequeueJob(reportRepo),
		job.NewCounterSyncJob(postRepo),
	)

	return &ApplicationContainer{
		Router:   router,
		DB:       db,
		CronMgr:  cronMgr,
		Producer: producer,
	}, nil
}
