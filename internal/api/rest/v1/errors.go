package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// abortWithError records err for ErrorHandler and stops the handler chain.
func abortWithError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	ctx.Abort()
}

// ErrorHandler renders the last error recorded on the context as
// {"detail": ...} with the status of its *apperr.Error.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if len(ctx.Errors) == 0 || ctx.Writer.Written() {
			return
		}

		appErr := apperr.From(ctx.Errors.Last().Err)
		if appErr.Status >= http.StatusInternalServerError {
			log.Error(fmt.Sprintf("%s %s failed: %v", ctx.Request.Method, ctx.Request.URL.Path, appErr))
		}

		for name, value := range appErr.Headers {
			ctx.Header(name, value)
		}
		ctx.JSON(appErr.Status, ErrorResponse{Detail: appErr.Detail})
	}
}

// Recovery answers panics with a generic 500
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		log.Error(fmt.Sprintf("panic serving %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, recovered))
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
	})
}
