package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/zivo-app/business-hours/backend/internal/config"
	"github.com/zivo-app/business-hours/backend/internal/domain"
	"github.com/zivo-app/business-hours/backend/internal/hours"
)

// HoursBackend 是处理营业时间时需要用到的后端接口
type HoursBackend interface {
	hours.Backend
	GetBusinessShifts(ctx context.Context, businessID string) ([]domain.BusinessShift, error)
}

// BackendFactory 根据调用者的令牌创建后端客户端
type BackendFactory func(token string) HoursBackend

type SaveReportRepository interface {
	CreateSaveReport(report *domain.SaveReport) error
	GetSaveReportsByBusinessID(businessID string, limit int) ([]*domain.SaveReport, error)
}

type MailPublisher interface {
	Publish(ctx context.Context, msg domain.MailMessage) error
}

// SaveLocker 保证同一个商家同一时间只有一次保存在进行
type SaveLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	Release(ctx context.Context, key string, token string) error
}

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	translator ut.Translator
	repository SaveReportRepository
	newBackend BackendFactory
	mail       MailPublisher
	locker     SaveLocker

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo SaveReportRepository, newBackend BackendFactory, mail MailPublisher, locker SaveLocker) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		translator: trans,
		repository: repo,
		newBackend: newBackend,
		mail:       mail,
		locker:     locker,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if h.config.Server.RateLimit > 0 {
		h.Mux.Use(httprate.LimitByIP(h.config.Server.RateLimit, time.Second))
	}
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/healthz", h.Healthz)

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireBusiness)

		r.Route("/business-hours", func(r chi.Router) {
			r.Get("/", h.GetBusinessHours)
			r.Put("/", h.SaveBusinessHours)
			r.Get("/save-reports", h.GetSaveReports)
		})
	})
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "ok", nil)
}
