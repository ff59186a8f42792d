package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartodo/internal/task"
	"smartodo/pkg/response"
)

// Create godoc
// @Summary     Create a task from free-form text
// @Description Parses a natural language sentence (Chinese or English) into a
// @Description structured task: title, due date, time range, category and links.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Free-form task text"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated task list with optional category, completion
// @Description and due-date filters.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       category   query string false "Filter by category (study/work/personal/other)"
// @Param       completed  query bool   false "Filter by completion"
// @Param       due_before query string false "Only tasks due on or before this date (YYYY-MM-DD)"
// @Param       limit      query int    false "Page size (default: 20)"
// @Param       offset     query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} createResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partially updates a task. Empty strings clear the stored value.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// BatchUpdate godoc
// @Summary     Update tasks in bulk
// @Description Applies partial updates to up to 100 tasks in one call. Items are
// @Description applied independently; failed items are reported per-item.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body batchUpdateReq true "Batch items"
// @Success     200 {object} batchUpdateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/batch [POST]
func (h *handler) BatchUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBatchUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.BatchUpdate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.BatchUpdate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBatchUpdateResp(output))
}

// Export godoc
// @Summary     Export all tasks
// @Description Downloads the whole store as a JSON document.
// @Tags        Task
// @Produce     json
// @Success     200 {string} string "JSON export document"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Export(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	filename := fmt.Sprintf("tasks-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", output.Document)
}

// Import godoc
// @Summary     Import tasks
// @Description Loads tasks from a JSON export document or a bare task array.
// @Description With replace=true the store is swapped wholesale, otherwise the
// @Description imported tasks are appended.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       replace query bool   false "Replace the store instead of appending"
// @Param       body    body  string true  "Export document or task array"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	document, replace, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Import(ctx, task.ImportInput{Document: document, Replace: replace})
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}
