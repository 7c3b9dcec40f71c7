package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kipkirui63/all-in-one/internal/config"
	"github.com/kipkirui63/all-in-one/internal/email"
	"github.com/kipkirui63/all-in-one/internal/handler"
	"github.com/kipkirui63/all-in-one/internal/logging"
	"github.com/kipkirui63/all-in-one/internal/repository"
	"github.com/kipkirui63/all-in-one/internal/service"
	"github.com/kipkirui63/all-in-one/pkg/gemini"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()

	store, err := repository.Open(ctx, repository.Options{
		Backend:       cfg.StorageBackend,
		DatabaseURL:   cfg.DatabaseURL,
		MongoURI:      cfg.MongoURI,
		MongoDatabase: cfg.MongoDatabase,
	})
	if err != nil {
		logging.Fatal("failed to open storage", "backend", cfg.StorageBackend, "error", err)
	}
	sessions := repository.NewMemoryChatSessionRepository()

	// メール送信（API キー未設定ならログ出力のみ）
	var mailer email.Mailer
	if cfg.ResendAPIKey != "" {
		mailer = email.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom)
	} else {
		slog.Warn("RESEND_API_KEY not set, emails will only be logged")
		mailer = email.NewLogMailer(slog.Default())
	}
	dispatcher := email.NewDispatcher(mailer, cfg.NotifyInbox)

	llm, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		logging.Fatal("failed to create gemini client", "error", err)
	}
	if !llm.Configured() {
		slog.Warn("GEMINI_API_KEY not set, chat will answer with the fallback reply")
	}

	newsletterService := service.NewNewsletterService(store.Newsletter, dispatcher)
	contactService := service.NewContactService(store.Contacts, dispatcher)
	meetingService := service.NewMeetingService(store.Meetings, dispatcher)
	chatService := service.NewChatService(sessions, llm, service.ChatConfig{
		Model:       cfg.ChatModel,
		IdleTimeout: cfg.ChatIdleTimeout,
	})

	// 放置されたチャットセッションを定期的に削除
	scheduler := service.NewSchedulerService()
	if _, err := scheduler.ScheduleInterval(cfg.ChatSweepInterval, func() {
		if _, err := chatService.Sweep(context.Background()); err != nil {
			slog.Error("chat sweep failed", "error", err)
		}
	}); err != nil {
		logging.Fatal("failed to schedule chat sweep", "error", err)
	}
	scheduler.Start()
	slog.Info("scheduler started", "jobs", scheduler.Entries(), "chat_sweep_interval", cfg.ChatSweepInterval)

	h := handler.New(store.DB, store.Backend, cfg.FrontendURL)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)
	contactHandler := handler.NewContactHandler(contactService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	chatHandler := handler.NewChatHandler(chatService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/newsletter/subscribe", newsletterHandler.Subscribe)
	mux.HandleFunc("POST /api/contact/submit", contactHandler.Submit)

	// ミーティング API
	mux.HandleFunc("POST /api/meetings/book", meetingHandler.Book)
	mux.HandleFunc("GET /api/meetings", meetingHandler.List)
	mux.HandleFunc("GET /api/meetings/{id}", meetingHandler.Get)
	mux.HandleFunc("PUT /api/meetings/{id}", meetingHandler.Update)
	mux.HandleFunc("DELETE /api/meetings/{id}", meetingHandler.Delete)

	// チャット API
	mux.HandleFunc("POST /api/chat", chatHandler.Chat)
	mux.HandleFunc("POST /api/chat/session", chatHandler.NewSession)

	// WriteTimeout はモデル呼び出しとメール送信を含むため長めに取る
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.RequestLogger(handler.Recoverer(handler.SecurityHeaders(h.CORS(mux)))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "storage", store.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		slog.Error("store close error", "error", err)
	}
}
