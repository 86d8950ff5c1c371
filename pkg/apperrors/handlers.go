package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope for failed requests:
// { "success": false, "message": ..., "error": {...} }
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Error   *AppError `json:"error,omitempty"`
}

// GinErrorHandler renders AppErrors into gin responses.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("Server error: %v", appErr)
		if !h.Debug {
			// Never leak internal error text to the client.
			appErr = New(CodeInternalError, "system", "Internal server error", appErr.HTTPCode)
		}
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Error:   appErr,
	})
}

// HandleError is the convenience entry point used by handlers.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
