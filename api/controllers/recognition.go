package controllers

import (
	"net/http"

	"github.com/lucasferrer/freshkeep-backend/api/responses"
	"github.com/lucasferrer/freshkeep-backend/api/validators"
	"github.com/lucasferrer/freshkeep-backend/internal/recognition"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
)

type recognizeRequest struct {
	ImageURI string `json:"imageUri" validate:"required,max=2000"`
	Language string `json:"language" validate:"omitempty,oneof=en zh"`
}

// Recognize suggests a name, category, and shelf life for a photographed item.
func Recognize(svc recognition.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "recognition service unavailable"))
			return
		}

		var req recognizeRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Recognize(r.Context(), recognition.Params{
			ImageURI: req.ImageURI,
			Language: req.Language,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
