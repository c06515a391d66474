package http

import (
	"errors"
	"net/http"

	"vidhub/domain/dto"
	"vidhub/domain/model"
	"vidhub/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	ErrorUnmarshal = "Error while unmarshal"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Integrity
// faults are logged with their completed steps before the 500 goes out.
func writeError(c *gin.Context, err error) {
	var integrity *model.IntegrityError
	if errors.As(err, &integrity) {
		logger.GetLogger().WithFields(map[string]interface{}{
			"op":        integrity.Op,
			"completed": integrity.Completed,
			"error":     integrity.Err,
		}).Error("Integrity fault")
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "internal inconsistency",
			"op":        integrity.Op,
			"completed": integrity.Completed,
		})
		return
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, model.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, model.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, model.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		logger.GetLogger().WithField("error", err).Error("Unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

func writeBindError(c *gin.Context, err error) {
	logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}

// callerID reads the authenticated user id the middleware stored on the
// context.
func callerID(c *gin.Context) (bson.ObjectID, bool) {
	raw, ok := c.Get("user_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"})
		return bson.ObjectID{}, false
	}
	id, err := bson.ObjectIDFromHex(raw.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"})
		return bson.ObjectID{}, false
	}
	return id, true
}
