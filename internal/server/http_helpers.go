package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"showbench/internal/db"
	"showbench/internal/logging"
)

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// writeDBError translates store errors onto the HTTP taxonomy: missing rows
// are 404, uniqueness violations 409, exhausted code allocation and anything
// unexpected 500.
func writeDBError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		writeError(c, http.StatusNotFound, "not found")
	case errors.Is(err, db.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		writeError(c, http.StatusConflict, "already exists")
	case errors.Is(err, db.ErrRankOutOfRange):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrCodeSpaceExhausted):
		logging.Log.Errorf("code allocation exhausted: %v", err)
		writeError(c, http.StatusInternalServerError, "could not allocate a model code")
	default:
		logging.Log.Errorf("unexpected store error: %v", err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start).String(),
		}).Info("request")
	}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}
