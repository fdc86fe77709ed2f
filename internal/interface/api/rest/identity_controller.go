package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"identity-api/internal/application/ports"
	domain "identity-api/internal/domain/identity"
	"identity-api/internal/domain/shared"
	"identity-api/internal/infrastructure/jwt"
	dto "identity-api/internal/interface/api/rest/dto/identity"
	"identity-api/internal/interface/api/rest/middleware"
	"identity-api/internal/interface/api/rest/validator"
)

type IdentityController struct {
	identityService ports.IdentityService
	logger          *zap.Logger
}

// NewIdentityController registers the identity routes. Command routes
// require a bearer token only when jwtService is not nil.
func NewIdentityController(
	r *gin.Engine,
	identityService ports.IdentityService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *IdentityController {
	ic := &IdentityController{
		identityService: identityService,
		logger:          logger,
	}

	cmd := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if jwtService == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{middleware.AuthMiddleware(jwtService), h}
	}

	r.GET(RouteIdentities, ic.GetIdentitiesHandler)
	r.GET(RouteIdentity, ic.GetIdentityHandler)
	r.POST(RouteIdentities, cmd(ic.CreateIdentityHandler)...)
	r.PUT(RouteIdentity, cmd(ic.UpdateIdentityHandler)...)
	r.DELETE(RouteIdentity, cmd(ic.SoftDeleteIdentityHandler)...)
	r.POST(RouteIdentityRestore, cmd(ic.RestoreIdentityHandler)...)
	r.DELETE(RouteIdentityPermanent, cmd(ic.PermanentlyDeleteIdentityHandler)...)

	return ic
}

func (ic *IdentityController) GetIdentitiesHandler(c *gin.Context) {
	limit, offset, err := validator.ValidatePagination(c.Query("limit"), c.Query("offset"))
	if err != nil {
		writeError(c, ic.logger, "ValidatePagination()", "invalid pagination", err)
		return
	}
	spec, err := validator.QuerySpec(c.Query("status"), c.Query("email"))
	if err != nil {
		writeError(c, ic.logger, "QuerySpec()", "invalid filter", err)
		return
	}

	identities, err := ic.identityService.QueryIdentities(c.Request.Context(), spec, limit, offset)
	if err != nil {
		writeError(c, ic.logger, "QueryIdentities()", "failed to get identities", err)
		return
	}

	c.JSON(
		http.StatusOK,
		dto.ResponseData{
			Data:   dto.ToResponseIdentities(identities),
			Limit:  limit,
			Offset: offset,
		},
	)
}

func (ic *IdentityController) GetIdentityHandler(c *gin.Context) {
	id, ok := ic.identityID(c)
	if !ok {
		return
	}

	i, err := ic.identityService.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, ic.logger, "FindByID()", "failed to get identity", err)
		return
	}
	if i == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "identity not found"},
		)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseIdentity(i))
}

func (ic *IdentityController) CreateIdentityHandler(c *gin.Context) {
	email, ok := ic.requestEmail(c)
	if !ok {
		return
	}

	var primary shared.Email
	if email != nil {
		primary = *email
	}

	i, err := ic.identityService.CreateIdentity(c.Request.Context(), primary)
	if err != nil {
		writeError(c, ic.logger, "CreateIdentity()", "failed to create identity", err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToResponseIdentity(i))
}

func (ic *IdentityController) UpdateIdentityHandler(c *gin.Context) {
	id, ok := ic.identityID(c)
	if !ok {
		return
	}
	email, ok := ic.requestEmail(c)
	if !ok {
		return
	}

	i, err := ic.identityService.UpdateIdentity(c.Request.Context(), id, email)
	if err != nil {
		writeError(c, ic.logger, "UpdateIdentity()", "failed to update identity", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseIdentity(i))
}

func (ic *IdentityController) SoftDeleteIdentityHandler(c *gin.Context) {
	id, ok := ic.identityID(c)
	if !ok {
		return
	}

	i, err := ic.identityService.SoftDeleteIdentity(c.Request.Context(), id)
	if err != nil {
		writeError(c, ic.logger, "SoftDeleteIdentity()", "failed to delete identity", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseIdentity(i))
}

func (ic *IdentityController) RestoreIdentityHandler(c *gin.Context) {
	id, ok := ic.identityID(c)
	if !ok {
		return
	}

	i, err := ic.identityService.RestoreSoftDeletedIdentity(c.Request.Context(), id)
	if err != nil {
		writeError(c, ic.logger, "RestoreSoftDeletedIdentity()", "failed to restore identity", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResponseIdentity(i))
}

func (ic *IdentityController) PermanentlyDeleteIdentityHandler(c *gin.Context) {
	id, ok := ic.identityID(c)
	if !ok {
		return
	}

	if err := ic.identityService.PermanentlyDeleteIdentity(c.Request.Context(), id); err != nil {
		writeError(c, ic.logger, "PermanentlyDeleteIdentity()", "failed to delete identity", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// identityID writes a 400 and reports false when the path id is malformed.
func (ic *IdentityController) identityID(c *gin.Context) (domain.ID, bool) {
	id, err := domain.ParseID(c.Param("identity_id"))
	if err != nil {
		writeError(c, ic.logger, "ParseID()", "invalid identity id", err)
		return "", false
	}

	return id, true
}

// requestEmail reads an optional primary email. An empty body is allowed.
func (ic *IdentityController) requestEmail(c *gin.Context) (*shared.Email, bool) {
	var req dto.Request
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid request body"},
		)
		return nil, false
	}

	email, err := dto.ToDomainEmail(req)
	if err != nil {
		writeError(c, ic.logger, "ToDomainEmail()", "invalid email", err)
		return nil, false
	}

	return email, true
}
