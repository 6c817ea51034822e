package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/rpckit/errors"
)

// RespondWithError inspects err: if it is an *apperrors.AppError the status and
// structured body are derived automatically; otherwise a generic 500 is sent.
func RespondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}
	c.JSON(http.StatusInternalServerError, apperrors.Internal(err).ToResponse())
}

// RespondOK sends a 200 response with a pre-encoded JSON body.
func RespondOK(c *gin.Context, encoded []byte) {
	c.Data(http.StatusOK, "application/json", encoded)
}

// RespondOKJSON sends a 200 response encoding data as JSON.
func RespondOKJSON(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
