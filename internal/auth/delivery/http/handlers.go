package http

import (
	"github.com/gin-gonic/gin"

	"smartstudy/internal/middleware"
	"smartstudy/pkg/response"
)

// Register godoc
// @Summary     Register a new account
// @Description Creates a user account and returns the public profile.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Registration data"
// @Success     201 {object} registerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - email already registered"
// @Router      /api/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newRegisterResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns a bearer access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Me godoc
// @Summary     Get own profile
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Me(ctx, scope)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(output))
}

// UpdateMe godoc
// @Summary     Update own profile
// @Description Partial update of name, timezone, and notification prefs.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateMeReq true "Fields to update"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/auth/me [PUT]
func (h *handler) UpdateMe(c *gin.Context) {
	ctx := c.Request.Context()

	scope, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateMeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateProfile(ctx, scope, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateProfile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProfileResp(output))
}
