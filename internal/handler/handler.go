package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/carserv-vn/service-center/backend/internal/config"
	"github.com/carserv-vn/service-center/backend/internal/domain"
	"github.com/carserv-vn/service-center/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	metrics     *requestMetrics

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	h := &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}

	if cfg.Metrics.Enabled {
		h.metrics = newRequestMetrics()
	}

	return h, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	if h.metrics != nil {
		h.Mux.Use(h.measureRequests)
		h.Mux.Handle(h.config.Metrics.Path, promhttp.Handler())
	}

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a signed-in account
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.myAccount).Get("/my-info", h.GetMyInfo)

		r.Route("/accounts", func(r chi.Router) {
			r.Use(h.RequiredAction(domain.ActionManageAccounts))
			r.Post("/", h.CreateEmployeeAccount)
			r.Get("/", h.GetAllAccounts)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.account)
				r.Patch("/", h.UpdateAccount)
				r.Patch("/password", h.UpdateAccountPassword)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.GetAllEmployees)
			r.With(h.employee).Get("/{id}", h.GetEmployee)
		})

		r.Route("/service-centers", func(r chi.Router) {
			r.With(h.RequiredAction(domain.ActionManageCenters)).Post("/", h.CreateServiceCenter)
			r.Get("/", h.GetAllServiceCenters)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.serviceCenter)
				r.Get("/", h.GetServiceCenter)
				r.With(h.RequiredAction(domain.ActionManageCenters)).Patch("/", h.UpdateServiceCenter)
				r.With(h.RequiredAction(domain.ActionManageCenters)).Delete("/", h.DeleteServiceCenter)
				r.With(h.RequiredAction(domain.ActionManageShifts)).Post("/shifts", h.CreateShift)
				r.Get("/shifts", h.GetShiftsForCenter)
			})
		})

		r.Route("/shifts/{id}", func(r chi.Router) {
			r.Use(h.shift)
			r.Get("/", h.GetShift)
			r.With(h.RequiredAction(domain.ActionManageShifts)).Patch("/", h.UpdateShift)
			r.With(h.RequiredAction(domain.ActionManageShifts)).Delete("/", h.DeleteShift)
			r.Route("/schedules", func(r chi.Router) {
				r.With(h.RequiredAction(domain.ActionReadSchedules)).Get("/", h.GetShiftSchedules)
				r.Group(func(r chi.Router) {
					r.Use(h.RequiredAction(domain.ActionManageSchedules))
					r.Post("/", h.CreateWorkSchedules)
					r.Post("/expand", h.ExpandRecurringSchedules)
					r.Put("/", h.ReplaceSchedulesForDate)
				})
			})
		})

		r.Route("/schedules", func(r chi.Router) {
			r.With(h.RequiredAction(domain.ActionReadSchedules)).Get("/", h.ListSchedules)
			r.With(h.RequiredAction(domain.ActionManageSchedules)).Delete("/{id}", h.DeleteSchedule)
		})

		r.Route("/work-centers", func(r chi.Router) {
			r.With(h.RequiredAction(domain.ActionReadWorkCenters)).Get("/", h.ListWorkCenters)
			r.With(h.RequiredAction(domain.ActionManageWorkCenters)).Post("/", h.CreateWorkCenter)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.RequiredAction(domain.ActionManageWorkCenters))
				r.Use(h.workCenter)
				r.Patch("/", h.UpdateWorkCenter)
				r.Delete("/", h.EndWorkCenter)
			})
		})
	})
}
