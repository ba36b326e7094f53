package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lucasferrer/freshkeep-backend/api/responses"
	"github.com/lucasferrer/freshkeep-backend/api/validators"
	"github.com/lucasferrer/freshkeep-backend/internal/alerts"
	"github.com/lucasferrer/freshkeep-backend/internal/items"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
	"github.com/lucasferrer/freshkeep-backend/pkg/types"
)

type createItemRequest struct {
	Name            string      `json:"name" validate:"required,max=200"`
	Category        string      `json:"category"`
	DaysUntilExpiry *int        `json:"daysUntilExpiry"`
	ExpiryDate      *types.Date `json:"expiryDate"`
	ProductionDate  *types.Date `json:"productionDate"`
	ImageURI        *string     `json:"imageUri"`
}

type updateItemRequest struct {
	Name           *string     `json:"name" validate:"omitempty,max=200"`
	Category       *string     `json:"category"`
	ExpiryDate     *types.Date `json:"expiryDate"`
	ProductionDate *types.Date `json:"productionDate"`
	ImageURI       *string     `json:"imageUri"`
}

// CreateItem registers a tracked item from either an absolute expiry date or
// a days-until-expiry count.
func CreateItem(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "items service unavailable"))
			return
		}

		var req createItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Create(r.Context(), items.CreateParams{
			Name:            req.Name,
			Category:        enums.ItemCategory(req.Category),
			DaysUntilExpiry: req.DaysUntilExpiry,
			ExpiryDate:      req.ExpiryDate,
			ProductionDate:  req.ProductionDate,
			ImageURI:        req.ImageURI,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// ListItems returns the paginated collection, optionally filtered by bucket.
func ListItems(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "items service unavailable"))
			return
		}

		params := items.ListParams{}

		if limitStr := strings.TrimSpace(r.URL.Query().Get("limit")); limitStr != "" {
			value, err := strconv.Atoi(limitStr)
			if err != nil || value <= 0 {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a positive integer"))
				return
			}
			params.Limit = value
		}

		if cursor := strings.TrimSpace(r.URL.Query().Get("cursor")); cursor != "" {
			params.Cursor = cursor
		}

		if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
			bucket, err := enums.ParseExpiryBucket(status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter"))
				return
			}
			params.Bucket = bucket
		}

		resp, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// GetItem returns one item with its urgency classification.
func GetItem(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "items service unavailable"))
			return
		}

		id, err := itemIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// UpdateItem applies a partial edit; expiry changes reschedule alerts.
func UpdateItem(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "items service unavailable"))
			return
		}

		id, err := itemIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := items.UpdateParams{
			Name:           req.Name,
			ExpiryDate:     req.ExpiryDate,
			ProductionDate: req.ProductionDate,
			ImageURI:       req.ImageURI,
		}
		if req.Category != nil {
			category := enums.ItemCategory(*req.Category)
			params.Category = &category
		}

		view, err := svc.Update(r.Context(), id, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// DeleteItem removes the item, its ratings, and its scheduled alerts.
func DeleteItem(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "items service unavailable"))
			return
		}

		id, err := itemIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

// ListItemAlerts exposes the pending alert schedule for one item.
func ListItemAlerts(svc alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "alerts service unavailable"))
			return
		}

		id, err := itemIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		scheduled, err := svc.ListForItem(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"alerts": scheduled})
	}
}

func itemIDParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "itemId")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item id")
	}
	return id, nil
}
