package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/carserv-vn/service-center/backend/internal/domain"
	"github.com/carserv-vn/service-center/backend/internal/utils"
)

func (h *Handler) CreateEmployeeAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string `json:"email" validate:"required,email"`
		FirstName string `json:"firstName" validate:"required"`
		LastName  string `json:"lastName" validate:"required"`
		Phone     string `json:"phone"`
		Role      string `json:"role" validate:"required,oneof=ADMIN STAFF TECHNICIAN"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	password := utils.GenerateRandomPassword(h.config.NewAccount.PasswordLength)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	account := &domain.Account{
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         domain.Role(req.Role),
	}
	employee := &domain.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}

	if err := h.repository.CreateEmployeeAccount(account, employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "accounts_email_key":
				h.errorResponse(w, r, "an account with this email already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// mail the generated credentials
	mailMessage := domain.MailMessage{
		Type: "create_account",
		To:   account.Email,
		Data: domain.CreateAccountMailData{
			FullName: employee.FullName(),
			Email:    account.Email,
			Password: password,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "account created, credentials sent by email", employee)
}

func (h *Handler) GetAllAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.repository.GetAllAccounts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "accounts fetched", accounts)
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	account := r.Context().Value(AccountCtx).(*domain.Account)

	var req struct {
		Role     *string `json:"role" validate:"omitempty,oneof=ADMIN STAFF TECHNICIAN CUSTOMER"`
		IsActive *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Role != nil {
		account.Role = domain.Role(*req.Role)
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateAccount(account); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "account updated", account)
}

func (h *Handler) UpdateAccountPassword(w http.ResponseWriter, r *http.Request) {
	account := r.Context().Value(AccountCtx).(*domain.Account)

	var req struct {
		Password string `json:"password" validate:"required,min=8"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	account.PasswordHash = string(passwordHash)

	if err := h.repository.UpdateAccount(account); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "password updated", nil)
}
