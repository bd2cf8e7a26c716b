package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/forgo/realmkeep/internal/service"
)

func TestMapServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"nil error", nil, 0},
		{"subject required", service.ErrSubjectRequired, http.StatusUnauthorized},
		{"world not found", service.ErrWorldNotFound, http.StatusNotFound},
		{"item not found", service.ErrItemNotFound, http.StatusNotFound},
		{"campaign not found", service.ErrCampaignNotFound, http.StatusNotFound},
		{"summary required", service.ErrEventSummaryRequired, http.StatusUnprocessableEntity},
		{"prompt required", service.ErrPromptRequired, http.StatusUnprocessableEntity},
		{"generation failed", service.ErrGenerationFailed, http.StatusBadGateway},
		{"empty completion", service.ErrEmptyCompletion, http.StatusBadGateway},
		{"wrapped generation failure", fmt.Errorf("%w: rate limited", service.ErrGenerationFailed), http.StatusBadGateway},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pd := MapServiceError(tt.err)
			if tt.err == nil {
				if pd != nil {
					t.Fatalf("expected nil for nil error, got %+v", pd)
				}
				return
			}
			if pd.Status != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, pd.Status)
			}
		})
	}
}

func TestMapServiceError_InternalHidesDetail(t *testing.T) {
	t.Parallel()

	pd := MapServiceError(errors.New("pq: connection string leaked"))
	if pd.Detail == "pq: connection string leaked" {
		t.Error("internal error detail must not leak the underlying message")
	}
}
