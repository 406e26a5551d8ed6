package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/quant-backend/internal/application/membership"
	appsync "github.com/quant-backend/internal/application/sync"
	"github.com/quant-backend/internal/application/verification"
	"github.com/quant-backend/internal/application/webhook"
	"github.com/quant-backend/internal/config"
	"github.com/quant-backend/internal/transport/http/handler"
	appmiddleware "github.com/quant-backend/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to the code endpoints so a
	// single client cannot spam emails or brute-force codes.
	codeRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	syncSvc := appsync.NewService(deps.Fourthwall, deps.MemberRepo)
	webhookSvc := webhook.NewService(deps.MemberRepo)
	membershipSvc := membership.NewService(deps.MemberRepo, deps.Fourthwall)
	verificationSvc := verification.NewService(deps.VerificationRepo, deps.MemberRepo, deps.InstallRepo, deps.Fourthwall, deps.Mailer)

	healthH := handler.NewHealthHandler()
	syncH := handler.NewSyncHandler(syncSvc)
	webhookH := handler.NewWebhookHandler(webhookSvc)
	membershipH := handler.NewMembershipHandler(membershipSvc)
	verificationH := handler.NewVerificationHandler(verificationSvc)

	r.Get("/health-check/{action}", healthH.Ping)

	r.Get("/sync-members", syncH.Trigger)
	r.Post("/webhook/fourthwall", webhookH.Receive)
	r.Get("/check-membership", membershipH.Check)
	r.With(codeRL.Limit).Post("/send-code", verificationH.SendCode)
	r.With(codeRL.Limit).Post("/verify-code", verificationH.VerifyCode)
	r.Post("/api/verify-membership", membershipH.VerifyByID)

	return r
}
