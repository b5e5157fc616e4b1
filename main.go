package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"mostface/internal/handlers"
	"mostface/internal/middleware"
	"mostface/internal/observability"
	"mostface/internal/rabbitmq"
	"mostface/internal/session"
	"mostface/internal/store"
	"mostface/internal/telemetry"
	"mostface/internal/tracing"
	"mostface/internal/ws"
)

func main() {
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		logrus.SetLevel(level)
	}
	log := logrus.WithField("service", "mostface")

	ctx := context.Background()

	shutdownTracing := tracing.Init(ctx, log)
	defer func() {
		if err := shutdownTracing(ctx); err != nil {
			log.WithError(err).Warn("tracing shutdown failed")
		}
	}()

	amqpURL := os.Getenv("AMQP_URL")
	exchange := getEnv("AMQP_EXCHANGE", "mostface.events")

	if amqpURL != "" {
		eventPublisher, err := observability.NewAMQPPublisher(amqpURL, exchange)
		if err != nil {
			log.WithError(err).Warn("event publisher unavailable, store events will be dropped")
		} else {
			observability.SetPublisher(eventPublisher)
			defer eventPublisher.Close()
		}
	}

	auditPublisher := rabbitmq.NewPublisher(amqpURL, exchange, log)
	defer auditPublisher.Close()
	audit := telemetry.NewAuditEmitter(
		auditPublisher,
		getEnv("AUDIT_ROUTING_KEY", "audit_logs"),
		"mostface",
		getEnv("ENVIRONMENT", "dev"),
		log,
	)

	adapter := session.Connect(log)
	defer adapter.Close()

	st := store.New(adapter, log)
	st.Bootstrap(ctx)

	hub := ws.NewHub(log)

	authHandler := handlers.NewAuthHandler(st, audit)
	feedHandler := handlers.NewFeedHandler(st, hub)
	profileHandler := handlers.NewProfileHandler(st)
	searchHandler := handlers.NewSearchHandler(st)
	marketplaceHandler := handlers.NewMarketplaceHandler(st)
	notificationHandler := handlers.NewNotificationHandler(st)
	chatHandler := handlers.NewChatHandler(st, hub)

	chatWS := ws.NewChatWebSocketHandler(hub, st)
	notificationsWS := ws.NewNotificationWebSocketHandler(hub, st)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(otelgin.Middleware("mostface"))
	router.Use(observability.HTTPMetricsMiddleware())

	sessionRequired := middleware.SessionRequired(st)

	router.POST("/auth/signup", authHandler.Signup)
	router.POST("/auth/login", authHandler.Login)
	router.POST("/auth/logout", authHandler.Logout)

	router.GET("/feed", sessionRequired, feedHandler.GetFeed)
	router.POST("/posts", sessionRequired, feedHandler.CreatePost)
	router.POST("/posts/:post_id/like", sessionRequired, feedHandler.LikePost)
	router.POST("/posts/:post_id/comments", sessionRequired, feedHandler.AddComment)

	router.GET("/users/:user_id", sessionRequired, profileHandler.GetUser)
	router.GET("/users/:user_id/posts", sessionRequired, profileHandler.GetUserPosts)

	router.GET("/search", sessionRequired, searchHandler.Search)

	router.GET("/marketplace", sessionRequired, marketplaceHandler.ListItems)
	router.POST("/marketplace", sessionRequired, marketplaceHandler.CreateItem)

	router.GET("/notifications", sessionRequired, notificationHandler.List)
	router.POST("/notifications/:id/read", sessionRequired, notificationHandler.MarkRead)
	router.POST("/notifications/read-all", sessionRequired, notificationHandler.MarkAllRead)

	router.GET("/chats", sessionRequired, chatHandler.ListChats)
	router.POST("/chats/open", sessionRequired, chatHandler.OpenChat)
	router.GET("/chats/active", sessionRequired, chatHandler.GetActive)
	router.POST("/chats/active", sessionRequired, chatHandler.SetActive)
	router.POST("/chats/:chat_id/messages", sessionRequired, chatHandler.PostMessage)
	router.POST("/chats/:chat_id/read", sessionRequired, chatHandler.MarkRead)

	router.GET("/ws/chats/:chat_id", chatWS.Handle)
	router.GET("/ws/notifications", notificationsWS.Handle)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterDebugRoutes(router, audit)

	port := getEnv("PORT", "8080")
	log.WithField("port", port).Info("starting server")
	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
