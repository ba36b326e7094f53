package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lucasferrer/freshkeep-backend/internal/recognition"
	"github.com/lucasferrer/freshkeep-backend/pkg/enums"
)

type testRecognitionService struct {
	recognizeFn func(ctx context.Context, params recognition.Params) (*recognition.Result, error)
}

func (s *testRecognitionService) Recognize(ctx context.Context, params recognition.Params) (*recognition.Result, error) {
	if s.recognizeFn != nil {
		return s.recognizeFn(ctx, params)
	}
	return &recognition.Result{}, nil
}

func TestRecognizeSuccess(t *testing.T) {
	var captured recognition.Params
	svc := &testRecognitionService{
		recognizeFn: func(ctx context.Context, params recognition.Params) (*recognition.Result, error) {
			captured = params
			return &recognition.Result{Name: "apple", Confidence: 0.95, Category: enums.ItemCategoryFruits, ShelfLifeDays: 14}, nil
		},
	}

	body := `{"imageUri":"file:///photos/a.jpg","language":"zh"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recognition", strings.NewReader(body))
	resp := httptest.NewRecorder()

	Recognize(svc, controllerTestLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if captured.ImageURI != "file:///photos/a.jpg" || captured.Language != "zh" {
		t.Fatalf("unexpected params %+v", captured)
	}
}

func TestRecognizeRejectsMissingImageURI(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recognition", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()

	Recognize(&testRecognitionService{}, controllerTestLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestRecognizeRejectsUnknownLanguage(t *testing.T) {
	body := `{"imageUri":"file:///photos/a.jpg","language":"fr"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recognition", strings.NewReader(body))
	resp := httptest.NewRecorder()

	Recognize(&testRecognitionService{}, controllerTestLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
