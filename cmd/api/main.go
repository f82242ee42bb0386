package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"agencydesk/internal/database"
	"agencydesk/internal/domain/actor"
	"agencydesk/internal/domain/category"
	"agencydesk/internal/domain/event"
	"agencydesk/internal/domain/installment"
	"agencydesk/internal/domain/lead"
	"agencydesk/internal/domain/notification"
	"agencydesk/internal/domain/project"
	"agencydesk/internal/domain/request"
	"agencydesk/internal/domain/stats"
	"agencydesk/internal/domain/wallet"
	"agencydesk/internal/middleware"
	jwtsvc "agencydesk/internal/pkg/jwt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&actor.Actor{},
		&category.Category{},
		&lead.Lead{},
		&project.Project{},
		&installment.Installment{},
		&request.Request{},
		&wallet.Wallet{},
		&wallet.Transaction{},
		&notification.Notification{},
	); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(secret, 24*time.Hour)
	bus := event.NewBus()

	actorRepo := actor.NewRepository(db)
	categoryRepo := category.NewRepository(db)
	projectRepo := project.NewRepository(db)
	notificationRepo := notification.NewRepository(db)

	walletService := wallet.NewService(db)
	actorService := actor.NewService(actorRepo, j)
	leadService := lead.NewService(db, categoryRepo, bus)
	requestService := request.NewService(db, actorRepo, bus)
	installmentService := installment.NewService(db, projectRepo, walletService, bus)

	hub := stats.NewHub()
	statsService := stats.NewService(db, leadService, hub)
	notificationService := notification.NewService(db, notificationRepo)

	bus.Subscribe(statsService)
	bus.Subscribe(notificationService)

	actorHandler := actor.NewHandler(actorService)
	categoryHandler := category.NewHandler(categoryRepo)
	leadHandler := lead.NewHandler(leadService)
	requestHandler := request.NewHandler(requestService)
	installmentHandler := installment.NewHandler(installmentService)
	projectHandler := project.NewHandler(projectRepo, installmentService)
	walletHandler := wallet.NewHandler(walletService)
	statsHandler := stats.NewHandler(statsService, hub)
	notificationHandler := notification.NewHandler(notificationRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		actor.RegisterPublicRoutes(v1, actorHandler)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.AuthRequired(j))
		{
			actor.RegisterRoutes(protected, actorHandler)
			category.RegisterRoutes(protected, categoryHandler)
			lead.RegisterRoutes(protected, leadHandler)
			request.RegisterRoutes(protected, requestHandler)
			installment.RegisterRoutes(protected, installmentHandler)
			project.RegisterRoutes(protected, projectHandler)
			wallet.RegisterRoutes(protected, walletHandler)
			stats.RegisterRoutes(protected, statsHandler)
			notification.RegisterRoutes(protected, notificationHandler)
		}
	}

	log.Printf("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
