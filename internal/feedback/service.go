package feedback

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/lucasferrer/freshkeep-backend/pkg/db/models"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
)

// Service defines feedback submission and triage operations.
type Service interface {
	Submit(ctx context.Context, params SubmitParams) (*models.Feedback, error)
	List(ctx context.Context, status enums.FeedbackStatus) ([]models.Feedback, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.FeedbackStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// SubmitParams captures a new feedback report.
type SubmitParams struct {
	Type        enums.FeedbackType
	Title       string
	Description string
	Score       int
	Email       *string
	AppVersion  string
}

// NewService wires feedback dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "feedback repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Submit(ctx context.Context, params SubmitParams) (*models.Feedback, error) {
	feedbackType := params.Type
	if feedbackType == "" {
		feedbackType = enums.FeedbackTypeGeneral
	}
	if !feedbackType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid feedback type")
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "feedback title required")
	}
	if strings.TrimSpace(params.Description) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "feedback description required")
	}
	if params.Score < 1 || params.Score > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "feedback rating must be between 1 and 5")
	}

	entry := &models.Feedback{
		ID:          uuid.New(),
		Type:        feedbackType,
		Title:       params.Title,
		Description: params.Description,
		Score:       params.Score,
		Email:       params.Email,
		AppVersion:  params.AppVersion,
		Status:      enums.FeedbackStatusPending,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create feedback")
	}
	return entry, nil
}

func (s *service) List(ctx context.Context, status enums.FeedbackStatus) ([]models.Feedback, error) {
	if status != "" && !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid feedback status")
	}
	entries, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list feedback")
	}
	return entries, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.FeedbackStatus) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "feedback id required")
	}
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid feedback status")
	}
	affected, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update feedback status")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "feedback not found")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "feedback id required")
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete feedback")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "feedback not found")
	}
	return nil
}
