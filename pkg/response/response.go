package response

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime"

	"frame-notify-srv/pkg/discord"
	"frame-notify-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK sends 200 {success:true}.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, Resp{Success: true})
}

// Notified sends 200 {success:true, notifiedUsers:n}.
func Notified(c *gin.Context, n int) {
	c.JSON(http.StatusOK, Resp{Success: true, NotifiedUsers: &n})
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		statusCode := httpErr.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusBadRequest
		}
		if statusCode >= http.StatusInternalServerError {
			report(c, d, err)
		}
		return statusCode, Resp{Error: httpErr.Message}
	}

	if err == nil {
		return http.StatusInternalServerError, Resp{Error: DefaultErrorMessage}
	}
	report(c, d, err)
	return http.StatusInternalServerError, Resp{Error: err.Error()}
}

func report(c *gin.Context, d discord.IDiscord, err error) {
	if d == nil {
		return
	}
	sendDiscordMessageAsync(c, d, buildInternalServerErrorDataForReportBug(c, err.Error(), captureStackTrace()))
}

// Error sends the status and JSON body for err. Errors that are not *errors.HTTPError
// become 500 with the error text and are reported to d when it is set.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

// ErrorWithMap looks up err in eMap and sends the mapped HTTPError, else falls back to Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range eMap {
		if stderrors.Is(err, target) {
			Error(c, fmt.Errorf("%w: %w", httpErr, err), d)
			return
		}
	}
	Error(c, err, d)
}

// PanicError answers a recovered panic with 500.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	var err error
	switch v := rec.(type) {
	case nil:
	case error:
		err = v
	default:
		err = fmt.Errorf("%v", v)
	}
	statusCode, resp := parseError(err, c, d)
	c.JSON(statusCode, resp)
}

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stackTrace []string
	for {
		f, more := frames.Next()
		stackTrace = append(stackTrace, fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return stackTrace
}
