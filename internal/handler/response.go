package handler

import (
	"errors"
	"net/http"
	"strconv"

	"swapi/internal/logging"
	"swapi/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func abortMsg(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"msj": msg})
}

// internalError logs err against the request and answers 500.
func internalError(c *gin.Context, err error, msg string) {
	logging.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Str("path", c.Request.URL.Path).
		Msg(msg)
	abortMsg(c, http.StatusInternalServerError, msg)
}

// pathID reads a numeric path parameter. It answers 400 and returns false
// when the value is not an unsigned integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		abortMsg(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// getOne serves a single catalogue row, answering 404 with notFound when the
// id has no row.
func getOne[T any](c *gin.Context, fetch func(uint) (*T, error), notFound string) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := fetch(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		abortMsg(c, http.StatusNotFound, notFound)
		return
	}
	if err != nil {
		internalError(c, err, "lookup failed")
		return
	}
	c.JSON(http.StatusOK, row)
}

func listAll[T any](c *gin.Context, list func() ([]T, error)) {
	rows, err := list()
	if err != nil {
		internalError(c, err, "list failed")
		return
	}
	if rows == nil {
		rows = []T{}
	}
	c.JSON(http.StatusOK, rows)
}
