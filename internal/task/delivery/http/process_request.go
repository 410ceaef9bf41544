package http

import (
	"io"

	"github.com/gin-gonic/gin"

	pkgErrors "smartstudy/pkg/errors"
	"smartstudy/pkg/upload"
)

// processCreateTaskReq binds and validates the create request body.
func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateTaskReq binds and validates the partial update body.
func (h *handler) processUpdateTaskReq(c *gin.Context) (updateTaskReq, error) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListTasksReq binds and validates the list query parameters.
func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processProofUpload reads the multipart proof file, enforcing the size
// cap before buffering it.
func (h *handler) processProofUpload(c *gin.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", pkgErrors.NewHTTPError(400, "proof image file is required")
	}
	if fileHeader.Size > upload.MaxProofSize {
		return nil, "", pkgErrors.NewHTTPError(413, "file too large (max 5 MB)")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", pkgErrors.NewHTTPError(400, "cannot read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, upload.MaxProofSize+1))
	if err != nil {
		return nil, "", pkgErrors.NewHTTPError(400, "cannot read uploaded file")
	}
	if len(data) > upload.MaxProofSize {
		return nil, "", pkgErrors.NewHTTPError(413, "file too large (max 5 MB)")
	}

	return data, fileHeader.Header.Get("Content-Type"), nil
}
