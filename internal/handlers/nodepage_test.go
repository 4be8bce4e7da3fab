package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"graphbook/internal/service"
	"graphbook/internal/service/mocks"
)

func TestNodePageRendersMarkdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockGraphService(ctrl)
	mockService.EXPECT().
		GetNode(gomock.Any(), "n1").
		Return(service.Node{
			ID:      "n1",
			Title:   "Go Notes",
			Content: "# Heading\n\nSome **bold** text.",
			Tags:    []string{"lang", "notes"},
		}, nil)

	handler := NewNodePageHandler(mockService)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newRequest(http.MethodGet, "/nodes/n1/page", "", map[string]string{"id": "n1"}))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q, want text/html", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<h1>Go Notes</h1>") {
		t.Error("page title missing")
	}
	if !strings.Contains(body, "<strong>bold</strong>") {
		t.Error("markdown not rendered")
	}
	if !strings.Contains(body, "lang, notes") {
		t.Error("tags missing")
	}
}

func TestNodePageNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockGraphService(ctrl)
	mockService.EXPECT().
		GetNode(gomock.Any(), "missing").
		Return(service.Node{}, service.WrapError(service.ErrNotFound, "node"))

	handler := NewNodePageHandler(mockService)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newRequest(http.MethodGet, "/nodes/missing/page", "", map[string]string{"id": "missing"}))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
