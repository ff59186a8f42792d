package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"smartodo/internal/model"
	"smartodo/internal/task"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUseCase returns canned values and records the inputs it saw.
type mockUseCase struct {
	createErr  error
	createOut  task.CreateOutput
	lastCreate task.CreateInput
	listOut    task.ListOutput
	detailErr  error
	detailOut  task.CreateOutput
	updateErr  error
	updateOut  task.UpdateOutput
	lastUpdate task.UpdateInput
	deleteErr  error
	batchOut   task.BatchUpdateOutput
	exportOut  task.ExportOutput
	importErr  error
	importOut  task.ImportOutput
	lastImport task.ImportInput
}

var _ task.UseCase = (*mockUseCase)(nil)

func (m *mockUseCase) Create(_ context.Context, input task.CreateInput) (task.CreateOutput, error) {
	m.lastCreate = input
	return m.createOut, m.createErr
}

func (m *mockUseCase) List(_ context.Context, _ task.ListInput) (task.ListOutput, error) {
	return m.listOut, nil
}

func (m *mockUseCase) Detail(_ context.Context, _ string) (task.CreateOutput, error) {
	return m.detailOut, m.detailErr
}

func (m *mockUseCase) Update(_ context.Context, input task.UpdateInput) (task.UpdateOutput, error) {
	m.lastUpdate = input
	return m.updateOut, m.updateErr
}

func (m *mockUseCase) Delete(_ context.Context, _ string) error { return m.deleteErr }

func (m *mockUseCase) BatchUpdate(_ context.Context, _ []task.BatchUpdateItem) (task.BatchUpdateOutput, error) {
	return m.batchOut, nil
}

func (m *mockUseCase) Export(_ context.Context) (task.ExportOutput, error) {
	return m.exportOut, nil
}

func (m *mockUseCase) Import(_ context.Context, input task.ImportInput) (task.ImportOutput, error) {
	m.lastImport = input
	return m.importOut, m.importErr
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(mockLogger{}, uc)
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateHandler(t *testing.T) {
	uc := &mockUseCase{
		createOut: task.CreateOutput{Task: model.Task{
			ID:       "t1",
			Title:    "开会",
			DueDate:  "2024-06-11",
			Category: "work",
		}},
	}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", `{"text":"明天开会"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if uc.lastCreate.Text != "明天开会" {
		t.Errorf("usecase saw text %q", uc.lastCreate.Text)
	}
	if !strings.Contains(w.Body.String(), `"id":"t1"`) {
		t.Errorf("body missing task: %s", w.Body.String())
	}
}

func TestCreateHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		uc   *mockUseCase
	}{
		{name: "missing text", body: `{}`, uc: &mockUseCase{}},
		{name: "malformed json", body: `{"text":`, uc: &mockUseCase{}},
		{name: "bad now", body: `{"text":"开会","now":"yesterday"}`, uc: &mockUseCase{}},
		{name: "blank text", body: `{"text":"   "}`, uc: &mockUseCase{createErr: task.ErrEmptyInput}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(tc.uc)
			w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateHandler_ReferenceInstant(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks",
		`{"text":"明天开会","now":"2024-06-10T09:00:00Z"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got := uc.lastCreate.Now.UTC().Format("2006-01-02"); got != "2024-06-10" {
		t.Errorf("usecase saw reference day %s, want 2024-06-10", got)
	}
}

func TestDetailHandler_NotFound(t *testing.T) {
	uc := &mockUseCase{detailErr: task.ErrNotFound}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodGet, "/api/v1/tasks/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestUpdateHandler(t *testing.T) {
	uc := &mockUseCase{updateOut: task.UpdateOutput{Task: model.Task{ID: "t1", Title: "新标题"}}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPut, "/api/v1/tasks/t1", `{"title":"新标题","completed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.lastUpdate.ID != "t1" {
		t.Errorf("usecase saw id %q, want t1", uc.lastUpdate.ID)
	}
	if uc.lastUpdate.Title == nil || *uc.lastUpdate.Title != "新标题" {
		t.Errorf("usecase saw title %v", uc.lastUpdate.Title)
	}
	if uc.lastUpdate.Completed == nil || !*uc.lastUpdate.Completed {
		t.Errorf("usecase saw completed %v", uc.lastUpdate.Completed)
	}
	if uc.lastUpdate.DueDate != nil {
		t.Errorf("absent field must stay nil, got %v", *uc.lastUpdate.DueDate)
	}
}

func TestUpdateHandler_ValidationError(t *testing.T) {
	uc := &mockUseCase{updateErr: task.ErrBadDateFormat}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPut, "/api/v1/tasks/t1", `{"due_date":"11/06/2024"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDeleteHandler(t *testing.T) {
	r := newTestRouter(&mockUseCase{})
	w := doJSON(t, r, http.MethodDelete, "/api/v1/tasks/t1", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}

	r = newTestRouter(&mockUseCase{deleteErr: task.ErrNotFound})
	w = doJSON(t, r, http.MethodDelete, "/api/v1/tasks/t1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestBatchUpdateHandler(t *testing.T) {
	uc := &mockUseCase{batchOut: task.BatchUpdateOutput{
		Results: []task.BatchUpdateResult{
			{ID: "a", Task: &model.Task{ID: "a"}},
			{ID: "b", Error: "task not found"},
		},
		Succeeded: 1,
		Failed:    1,
	}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/batch",
		`{"items":[{"id":"a","completed":true},{"id":"b","completed":true}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data batchUpdateResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Data.Succeeded != 1 || resp.Data.Failed != 1 {
		t.Errorf("succeeded/failed = %d/%d, want 1/1", resp.Data.Succeeded, resp.Data.Failed)
	}
}

func TestBatchUpdateHandler_EmptyItems(t *testing.T) {
	r := newTestRouter(&mockUseCase{})
	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/batch", `{"items":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestExportHandler(t *testing.T) {
	uc := &mockUseCase{exportOut: task.ExportOutput{
		Document: []byte(`{"count":0,"tasks":[]}`),
	}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodGet, "/api/v1/tasks/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", cd)
	}
	if w.Body.String() != `{"count":0,"tasks":[]}` {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestImportHandler(t *testing.T) {
	uc := &mockUseCase{importOut: task.ImportOutput{Count: 2}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/import?replace=true",
		`[{"id":"a","title":"复习"},{"id":"b","title":"周报"}]`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !uc.lastImport.Replace {
		t.Error("replace flag not forwarded")
	}
	if !strings.Contains(w.Body.String(), `"imported":2`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestImportHandler_EmptyBody(t *testing.T) {
	r := newTestRouter(&mockUseCase{})
	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks/import", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
