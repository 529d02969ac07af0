package main

import (
	"log"

	"github.com/rstracker/fete-cms/config"
	httpapi "github.com/rstracker/fete-cms/internal/api/http"
	"github.com/rstracker/fete-cms/internal/backend"
	"github.com/rstracker/fete-cms/internal/bootstrap"
	"github.com/rstracker/fete-cms/internal/pages"
	"github.com/rstracker/fete-cms/internal/session"
)

const serviceName = "fete-cms"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[error] failed to load config: %v", err)
	}

	var tokens session.Store
	switch cfg.Session.Store {
	case "redis":
		tokens = session.NewRedisStore(cfg.Session.RedisAddr)
	default:
		tokens = session.NewFileStore(cfg.Session.TokenFile)
	}

	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, tokens)
	client.OnUnauthorized(func() {
		log.Printf("[warn] session expired, operator must sign in again at %s", cfg.Backend.LoginRoute)
	})

	questionSvc := backend.NewQuestionService(client)
	userSvc := backend.NewUserService(client)
	recordSvc := backend.NewRecordService(client)

	handler := httpapi.NewPagesHandler(
		pages.NewDashboardPage(questionSvc, userSvc, recordSvc),
		pages.NewQuestionsPage(questionSvc),
		pages.NewUsersPage(userSvc),
		pages.NewRecordsPage(recordSvc),
	)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		BackendURL:  cfg.Backend.BaseURL,
		Pages:       handler,
	})

	log.Printf("[info] %s listening on port %s (backend %s, env %s)",
		serviceName, cfg.Server.Port, cfg.Backend.BaseURL, cfg.App.Environment)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("[error] server stopped: %v", err)
	}
}
