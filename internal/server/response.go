package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/crmd/internal/apperr"
)

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

type listEnvelope struct {
	Data     interface{} `json:"data"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Total    int64       `json:"total"`
}

// respondError maps the error taxonomy to transport status codes. Invalid
// queries are the caller's fault; anything unclassified is a storage
// failure, logged and reported as a 500 without driver detail.
func (s *Server) respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	switch kind {
	case apperr.KindInvalidQuery, apperr.KindValidation:
		c.JSON(http.StatusBadRequest, errorEnvelope{Error: apiError{Message: err.Error(), Code: kind.String()}})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, errorEnvelope{Error: apiError{Message: err.Error(), Code: kind.String()}})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, errorEnvelope{Error: apiError{Message: err.Error(), Code: kind.String()}})
	default:
		s.log.Errorw("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, errorEnvelope{Error: apiError{Message: "internal error", Code: kind.String()}})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorEnvelope{Error: apiError{Message: message, Code: "bad_request"}})
}
