package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"complaint-portal/internal/common/enum"
	"complaint-portal/internal/handler/portal"
	"complaint-portal/internal/pkg/config"
	"complaint-portal/internal/pkg/helper"
	"complaint-portal/internal/pkg/jwt"
	"complaint-portal/internal/pkg/logger"
	"complaint-portal/internal/pkg/middleware"
	"complaint-portal/internal/pkg/mqtt"
	"complaint-portal/internal/pkg/rabbitmq"
	"complaint-portal/internal/pkg/redis"
	"complaint-portal/internal/pkg/validation"
	"complaint-portal/internal/service/attachment"
	"complaint-portal/internal/service/attachment/model"
	"complaint-portal/internal/service/complaint"
	"complaint-portal/internal/service/eventbus"
	"complaint-portal/internal/service/view"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		logger.Error.Println(err)
		os.Exit(1)
	}
}

func run() error {
	if err := helper.LoadEnv(); err != nil {
		return helper.HandleAppError(err, "main", "LoadEnv", true)
	}
	if err := validation.Setup(); err != nil {
		return helper.HandleAppError(err, "main", "validation.Setup", true)
	}
	settings, err := config.Load()
	if err != nil {
		return helper.HandleAppError(err, "main", "config.Load", true)
	}
	logger.Setup(settings.Env != enum.PRODUCTION)
	gin.SetMode(settings.Env.GinMode())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limits := attachment.LimitsFrom(&settings)
	store, closeStore, err := setupStore(ctx, settings, limits)
	if err != nil {
		return helper.HandleAppError(err, "main", "setupStore", true)
	}
	defer closeStore()

	events, err := setupEvents(ctx, settings)
	if err != nil {
		return helper.HandleAppError(err, "main", "setupEvents", true)
	}
	defer func() {
		_ = helper.HandleAppError(events.Close(), "main", "events.Close", false)
	}()

	var tokens complaint.TokenSource = complaint.StaticToken(settings.API.CSRFToken)
	if settings.API.TokenPageURL != "" {
		tokens = complaint.PageTokenSource{URL: settings.API.TokenPageURL, Client: &http.Client{Timeout: settings.API.Timeout}}
	}
	client := complaint.New(complaint.Options{
		BaseURL: settings.APIBaseURL(),
		Timeout: settings.API.Timeout,
		Tokens:  tokens,
		Events:  events,
	})
	defer func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = helper.HandleAppError(client.Close(drainCtx), "main", "client.Close", false)
	}()

	visitors := view.NewVisitorCounter(settings.UI.VisitorStart, settings.UI.VisitorInterval)
	go visitors.Run(ctx)

	jwtOpts := jwt.DefaultOptions(settings.Session.Secret)
	jwtOpts.TokenExpiredTime = settings.Session.TTL
	session := middleware.SessionMiddleware(jwt.New(jwtOpts), middleware.SessionOpts{
		CookieName: settings.Session.CookieName,
		TTL:        settings.Session.TTL,
		Secure:     settings.Env == enum.PRODUCTION,
	})

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestInit())
	r.Use(middleware.ResponseInit())
	r.MaxMultipartMemory = settings.Attachments.MaxFileSize

	handler := portal.NewHandler(client, store, limits, visitors, settings.UI.Locale)
	handler.NewRoutes(r.Group(""), session)

	srv := &http.Server{
		Addr:              settings.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info.Println("listening on", settings.Server.Addr, "api", settings.APIBaseURL())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return helper.HandleAppError(err, "main", "ListenAndServe", true)
		}
	case <-ctx.Done():
		logger.Info.Println("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return helper.HandleAppError(srv.Shutdown(shutdownCtx), "main", "Shutdown", true)
}

func setupStore(ctx context.Context, settings config.Settings, limits model.Limits) (attachment.Store, func(), error) {
	if settings.Session.Store == "redis" {
		rds, err := redis.Setup(ctx, &redis.Config{
			Host:     settings.Redis.Host,
			Port:     settings.Redis.Port,
			Password: settings.Redis.Password,
			PoolSize: settings.Redis.PoolSize,
		})
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			_ = helper.HandleAppError(rds.Close(), "main", "redis.Close", false)
		}
		return attachment.NewRedisStore(rds, limits, settings.Session.TTL), closeFn, nil
	}

	mem := attachment.NewMemoryStore(limits, settings.Session.TTL)
	go mem.RunJanitor(ctx, time.Minute)
	return mem, func() {}, nil
}

func setupEvents(ctx context.Context, settings config.Settings) (eventbus.Bus, error) {
	switch settings.Events.Sink {
	case "memory":
		return eventbus.NewMemory(), nil
	case "mqtt":
		client, err := mqtt.Setup(&mqtt.Config{
			URL:      settings.Events.MQTT.URL,
			ClientID: settings.Events.MQTT.ClientID,
			Username: settings.Events.MQTT.Username,
			Password: settings.Events.MQTT.Password,
		})
		if err != nil {
			return nil, err
		}
		return eventbus.NewMQTT(client, settings.Events.MQTT.Topic), nil
	case "rabbitmq":
		conn, err := rabbitmq.NewConnectionManager(ctx, &rabbitmq.Config{
			Host:     settings.Events.RabbitMQ.Host,
			Port:     settings.Events.RabbitMQ.Port,
			Username: settings.Events.RabbitMQ.Username,
			Password: settings.Events.RabbitMQ.Password,
		})
		if err != nil {
			return nil, err
		}
		publisher, err := rabbitmq.NewPublisher(ctx, conn)
		if err != nil {
			_ = helper.HandleAppError(conn.Close(), "setupEvents", "rabbitmq.Close", false)
			return nil, err
		}
		return eventbus.NewRabbitMQ(publisher, settings.Events.RabbitMQ.Queue), nil
	}
	return eventbus.Noop(), nil
}
