package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/hiboard/hiboard-api/internal/errors"
	"github.com/hiboard/hiboard-api/internal/identity"
	"github.com/hiboard/hiboard-api/internal/repository"
)

// respondData wraps every successful payload in the uniform response
// envelope.
func respondData(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// respondStoreError translates repository and identity-provider errors into
// HTTP status codes.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrCompanyNotFound),
		errors.Is(err, repository.ErrActivityNotFound),
		errors.Is(err, repository.ErrUserActivityNotFound),
		errors.Is(err, repository.ErrTemplateNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, repository.ErrUserAlreadyExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, identity.ErrUpstream):
		apierrors.BadGateway(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
