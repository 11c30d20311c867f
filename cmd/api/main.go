package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"servicehp-backend/internal/config"
	"servicehp-backend/internal/db"
	"servicehp-backend/internal/mail"
	"servicehp-backend/internal/modules/auth"
	"servicehp-backend/internal/modules/dashboard"
	"servicehp-backend/internal/modules/expense"
	"servicehp-backend/internal/modules/member"
	"servicehp-backend/internal/modules/report"
	"servicehp-backend/internal/modules/service"
	"servicehp-backend/internal/modules/servicetype"
	"servicehp-backend/internal/modules/stock"
	"servicehp-backend/internal/modules/user"
	"servicehp-backend/internal/web"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.New(cors.Options{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler)

	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		web.Message(w, http.StatusOK, "ok")
	})

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(pool)
	userService := user.NewService(userRepo)

	mailer := mail.New(cfg)
	sessionRepo := auth.NewPostgresSessionRepository(pool)
	resetRepo := auth.NewPostgresResetRepository(pool)
	authService := auth.NewService(sessionRepo, resetRepo, userRepo, mailer)
	auth.NewHandler(authService).RegisterRoutes(router)

	// Hourly pruning keeps expired session rows from accumulating.
	go func() {
		for range time.Tick(time.Hour) {
			if err := sessionRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("session prune: %v", err)
			}
		}
	}()

	// Account administration requires a live session.
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(authService))
		user.NewHandler(userService).RegisterRoutes(r)
	})

	// ── Master data ─────────────────────────────────────────
	stockRepo := stock.NewPostgresRepository(pool)
	stockService := stock.NewService(stockRepo)
	stock.NewHandler(stockService).RegisterRoutes(router)

	memberRepo := member.NewPostgresRepository(pool)
	memberService := member.NewService(memberRepo)
	member.NewHandler(memberService).RegisterRoutes(router)

	typeRepo := servicetype.NewPostgresRepository(pool)
	typeService := servicetype.NewService(typeRepo)
	servicetype.NewHandler(typeService).RegisterRoutes(router)

	expenseRepo := expense.NewPostgresRepository(pool)
	expenseService := expense.NewService(expenseRepo)
	expense.NewHandler(expenseService).RegisterRoutes(router)

	// ── Services & reporting ────────────────────────────────
	serviceRepo := service.NewPostgresRepository(pool)
	serviceService := service.NewService(serviceRepo, memberRepo, stockRepo)
	service.NewHandler(serviceService).RegisterRoutes(router)

	dashboardRepo := dashboard.NewPostgresRepository(pool)
	dashboardService := dashboard.NewService(dashboardRepo)
	dashboard.NewHandler(dashboardService).RegisterRoutes(router)

	reportRepo := report.NewPostgresRepository(pool)
	reportService := report.NewService(reportRepo)
	report.NewHandler(reportService).RegisterRoutes(router)

	// ── Start server ────────────────────────────────────────
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("API server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
