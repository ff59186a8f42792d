package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// maxImportBytes caps the import request body.
const maxImportBytes = 4 << 20

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errors.New("id is required")
	}
	return req, req.validate()
}

// processBatchUpdateReq binds the batch update request body.
func (h *handler) processBatchUpdateReq(c *gin.Context) (batchUpdateReq, error) {
	var req batchUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processImportReq reads the raw import document and the replace flag.
func (h *handler) processImportReq(c *gin.Context) ([]byte, bool, error) {
	document, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		return nil, false, err
	}
	if len(document) == 0 {
		return nil, false, errors.New("request body is empty")
	}
	return document, c.Query("replace") == "true", nil
}
