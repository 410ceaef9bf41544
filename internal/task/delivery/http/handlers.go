package http

import (
	"github.com/gin-gonic/gin"

	"smartstudy/internal/middleware"
	"smartstudy/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates an active task; the priority score is computed
// @Description server-side from due date, effort, and complexity.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createTaskReq true "Task data"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, scope, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTaskResp(output.Task))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks ordered by priority descending.
// @Description Filter is one of all, today, upcoming, completed.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       filter   query string false "List filter" Enums(all, today, upcoming, completed)
// @Param       category query string false "Category filter"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, scope, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListTasksResp(output))
}

// Detail godoc
// @Summary     Get one task
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Detail(ctx, scope, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update; omitted fields are untouched. Changing due
// @Description date, effort, or complexity recomputes the priority score.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string        true "Task ID"
// @Param       body body updateTaskReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, scope, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Complete godoc
// @Summary     Toggle task completion
// @Description Completes an active task (recording a completion event) or
// @Description reopens a completed one. Tasks that require proof cannot be
// @Description completed before a proof image is uploaded.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Proof required"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id}/complete [PATCH]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Complete(ctx, scope, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes the task. Completion history is kept.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, scope, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// UploadProof godoc
// @Summary     Upload proof of completion
// @Description Accepts a multipart image (max 5 MB) and attaches it to
// @Description the task.
// @Tags        Tasks
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       id   path     string true "Task ID"
// @Param       file formData file   true "Proof image"
// @Success     200 {object} uploadProofResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     413 {object} response.Resp "File too large"
// @Router      /api/tasks/{id}/upload-proof [POST]
func (h *handler) UploadProof(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	data, contentType, err := h.processProofUpload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UploadProof(ctx, scope, c.Param("id"), data, contentType)
	if err != nil {
		h.l.Errorf(ctx, "uc.UploadProof: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, uploadProofResp{ProofImageURL: output.ProofImageURL})
}
