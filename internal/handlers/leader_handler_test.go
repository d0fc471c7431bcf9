package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/handlers"
	"github.com/servitech/parts-portal/internal/handlers/middleware"
	"github.com/servitech/parts-portal/test/helpers"
	"github.com/servitech/parts-portal/test/mocks"
)

const leaderSecret = "team-leader-secret"

func TestLeaderHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		secret         string
		setupMock      func(*mocks.MockSessionStore)
		expectedStatus int
	}{
		{
			name:   "correct_secret_marks_session",
			secret: leaderSecret,
			setupMock: func(m *mocks.MockSessionStore) {
				m.EXPECT().SetLeader(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong_secret_is_unauthorized",
			secret:         "guess",
			setupMock:      func(m *mocks.MockSessionStore) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty_secret_is_unauthorized",
			secret:         "",
			setupMock:      func(m *mocks.MockSessionStore) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sessions := mocks.NewMockSessionStore(ctrl)
			service := mocks.NewMockStocktakeService(ctrl)
			tt.setupMock(sessions)

			h := handlers.NewLeaderHandler(service, sessions, leaderSecret, helpers.TestLogger())

			w := postForm(t, http.HandlerFunc(h.Login), "/api/v1/leader/login", url.Values{
				"secret": {tt.secret},
			})

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestLeaderHandler_ListStocktakes(t *testing.T) {
	t.Run("summarizes_the_active_run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mocks.NewMockSessionStore(ctrl)
		service := mocks.NewMockStocktakeService(ctrl)

		run := &domain.StocktakeRun{ID: uuid.New(), Name: "August 2026", Active: true}
		service.EXPECT().ListCurrent(gomock.Any()).Return(run, []domain.Stocktake{
			{EngineerEmail: "joe@servitech.co.uk", Status: domain.StatusSubmitted},
			{EngineerEmail: "amy@servitech.co.uk", Status: domain.StatusDraft},
		}, nil)

		h := handlers.NewLeaderHandler(service, sessions, leaderSecret, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/leader/stocktakes", nil)
		w := httptest.NewRecorder()
		h.ListStocktakes(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "August 2026")
		assert.Contains(t, w.Body.String(), `"submitted":1`)
		assert.Contains(t, w.Body.String(), `"drafts":1`)
	})

	t.Run("no_active_run_is_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mocks.NewMockSessionStore(ctrl)
		service := mocks.NewMockStocktakeService(ctrl)

		service.EXPECT().ListCurrent(gomock.Any()).Return(nil, nil, domain.ErrNoActiveRun)

		h := handlers.NewLeaderHandler(service, sessions, leaderSecret, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/leader/stocktakes", nil)
		w := httptest.NewRecorder()
		h.ListStocktakes(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLeaderHandler_UnlockAndReset(t *testing.T) {
	id := uuid.New()

	newMux := func(h *handlers.LeaderHandler) *http.ServeMux {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/v1/leader/stocktakes/{id}/unlock", h.Unlock)
		mux.HandleFunc("POST /api/v1/leader/stocktakes/{id}/reset", h.Reset)
		return mux
	}

	t.Run("unlock_reopens_without_wiping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mocks.NewMockSessionStore(ctrl)
		service := mocks.NewMockStocktakeService(ctrl)

		service.EXPECT().Unlock(gomock.Any(), id).Return(nil)

		h := handlers.NewLeaderHandler(service, sessions, leaderSecret, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodPost,
			fmt.Sprintf("/api/v1/leader/stocktakes/%s/unlock", id), strings.NewReader(""))
		w := httptest.NewRecorder()
		middleware.Session(newMux(h)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "unlock")
	})

	t.Run("reset_wipes_items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mocks.NewMockSessionStore(ctrl)
		service := mocks.NewMockStocktakeService(ctrl)

		service.EXPECT().Reset(gomock.Any(), id).Return(nil)

		h := handlers.NewLeaderHandler(service, sessions, leaderSecret, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodPost,
			fmt.Sprintf("/api/v1/leader/stocktakes/%s/reset", id), strings.NewReader(""))
		w := httptest.NewRecorder()
		middleware.Session(newMux(h)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "reset")
	})

	t.Run("unknown_sheet_is_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mocks.NewMockSessionStore(ctrl)
		service := mocks.NewMockStocktakeService(ctrl)

		service.EXPECT().Unlock(gomock.Any(), id).Return(domain.ErrNotFound)

		h := handlers.NewLeaderHandler(service, sessions, leaderSecret, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodPost,
			fmt.Sprintf("/api/v1/leader/stocktakes/%s/unlock", id), strings.NewReader(""))
		w := httptest.NewRecorder()
		middleware.Session(newMux(h)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
