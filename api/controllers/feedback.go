package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lucasferrer/freshkeep-backend/api/responses"
	"github.com/lucasferrer/freshkeep-backend/api/validators"
	"github.com/lucasferrer/freshkeep-backend/internal/feedback"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
)

type submitFeedbackRequest struct {
	Type        string  `json:"type"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required,max=2000"`
	Score       int     `json:"score" validate:"required,min=1,max=5"`
	Email       *string `json:"email" validate:"omitempty,email"`
	AppVersion  string  `json:"appVersion" validate:"required,max=50"`
}

// SubmitFeedback records a user report.
func SubmitFeedback(svc feedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "feedback service unavailable"))
			return
		}

		var req submitFeedbackRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.Submit(r.Context(), feedback.SubmitParams{
			Type:        enums.FeedbackType(req.Type),
			Title:       req.Title,
			Description: req.Description,
			Score:       req.Score,
			Email:       req.Email,
			AppVersion:  req.AppVersion,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, entry)
	}
}

// ListFeedback returns stored reports, optionally filtered by status.
func ListFeedback(svc feedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "feedback service unavailable"))
			return
		}

		status := enums.FeedbackStatus(strings.TrimSpace(r.URL.Query().Get("status")))

		entries, err := svc.List(r.Context(), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"feedback": entries})
	}
}

// DeleteFeedback removes one report.
func DeleteFeedback(svc feedback.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "feedback service unavailable"))
			return
		}

		raw := chi.URLParam(r, "feedbackId")
		id, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid feedback id"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}
