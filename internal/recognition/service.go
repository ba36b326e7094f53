package recognition

import (
	"context"
	"hash/fnv"
	"strings"

	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
)

// Params describes a recognition request.
type Params struct {
	ImageURI string
	Language string
}

// Result is a catalog-backed recognition suggestion.
type Result struct {
	Name          string             `json:"name"`
	Confidence    float64            `json:"confidence"`
	Category      enums.ItemCategory `json:"category"`
	ShelfLifeDays int                `json:"shelfLifeDays"`
}

// Service suggests a name, category, and shelf life for a photographed item.
type Service interface {
	Recognize(ctx context.Context, params Params) (*Result, error)
}

type candidate struct {
	name       string
	confidence float64
}

// No vision backend is wired yet, so recognition picks from a fixed
// candidate pool keyed off the image URI. The hash keeps repeated requests
// for the same image stable.
var candidates = []candidate{
	{"apple", 0.95},
	{"banana", 0.92},
	{"bread", 0.89},
	{"chicken", 0.91},
	{"milk", 0.94},
}

type service struct {
	logg *logger.Logger
}

// NewService wires recognition dependencies.
func NewService(logg *logger.Logger) (Service, error) {
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{logg: logg}, nil
}

func (s *service) Recognize(ctx context.Context, params Params) (*Result, error) {
	uri := strings.TrimSpace(params.ImageURI)
	if uri == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image URI is required")
	}

	picked := candidates[hashURI(uri)%uint32(len(candidates))]
	category := InferCategory(picked.name)

	result := &Result{
		Name:          localizedName(picked.name, params.Language),
		Confidence:    picked.confidence,
		Category:      category,
		ShelfLifeDays: DefaultShelfLifeDays(picked.name, category),
	}

	logCtx := s.logg.WithFields(ctx, map[string]any{
		"name":       picked.name,
		"category":   string(category),
		"confidence": picked.confidence,
	})
	s.logg.Info(logCtx, "recognized item from catalog")

	return result, nil
}

func hashURI(uri string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(uri))
	return h.Sum32()
}
