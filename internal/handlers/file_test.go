package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"graphbook/internal/service"
	"graphbook/internal/service/mocks"
)

func TestFileHandlerCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mocks.MockGraphService)
		wantStatus int
	}{
		{
			name: "valid file",
			body: `{"name":"projects"}`,
			setup: func(m *mocks.MockGraphService) {
				m.EXPECT().
					CreateFile(gomock.Any(), service.CreateFileInput{Name: "projects"}).
					Return(service.File{ID: "f1", Name: "projects", SrNo: 1}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate name",
			body: `{"name":"projects"}`,
			setup: func(m *mocks.MockGraphService) {
				m.EXPECT().
					CreateFile(gomock.Any(), gomock.Any()).
					Return(service.File{}, &service.ValidationError{Field: "name", Message: "a file with this name already exists"})
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockGraphService(ctrl)
			tt.setup(mockService)

			handler := NewFileHandler(mockService)
			w := httptest.NewRecorder()
			handler.Create(w, newRequest(http.MethodPost, "/api/files", tt.body, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestFileHandlerAddNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockGraphService(ctrl)
	mockService.EXPECT().
		AddNodeToFile(gomock.Any(), "f1", "n1").
		Return(service.File{ID: "f1", Nodes: []service.Node{{ID: "n1"}}}, nil)

	handler := NewFileHandler(mockService)
	w := httptest.NewRecorder()
	handler.AddNode(w, newRequest(http.MethodPost, "/api/files/f1/nodes",
		`{"nodeId":"n1"}`, map[string]string{"id": "f1"}))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var file service.File
	if err := json.Unmarshal(w.Body.Bytes(), &file); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(file.Nodes) != 1 {
		t.Errorf("file nodes = %+v, want the added node", file.Nodes)
	}
}

func TestFileHandlerAddNodeRequiresNodeID(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewFileHandler(mocks.NewMockGraphService(ctrl))

	w := httptest.NewRecorder()
	handler.AddNode(w, newRequest(http.MethodPost, "/api/files/f1/nodes",
		`{}`, map[string]string{"id": "f1"}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestFileHandlerRemoveNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockGraphService(ctrl)
	mockService.EXPECT().
		RemoveNodeFromFile(gomock.Any(), "f1", "n1").
		Return(service.File{ID: "f1", Nodes: []service.Node{}}, nil)

	handler := NewFileHandler(mockService)
	w := httptest.NewRecorder()
	handler.RemoveNode(w, newRequest(http.MethodDelete, "/api/files/f1/nodes/n1", "",
		map[string]string{"id": "f1", "nodeId": "n1"}))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestFileHandlerDeleteNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockGraphService(ctrl)
	mockService.EXPECT().
		DeleteFile(gomock.Any(), "missing").
		Return(service.WrapError(service.ErrNotFound, "file"))

	handler := NewFileHandler(mockService)
	w := httptest.NewRecorder()
	handler.Delete(w, newRequest(http.MethodDelete, "/api/files/missing", "",
		map[string]string{"id": "missing"}))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
