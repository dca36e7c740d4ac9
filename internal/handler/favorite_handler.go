package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"swapi/internal/domain"
	"swapi/internal/models"
	"swapi/internal/service"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	svc *service.FavoriteService
}

func NewFavoriteHandler(svc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

type createFavoriteRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// deleteFavoriteRequest carries the user id under user_id. Older clients send
// it under the kind's legacy field instead (people_id, planet_id, vehicle_id).
type deleteFavoriteRequest struct {
	UserID    *uint `json:"user_id"`
	PeopleID  *uint `json:"people_id"`
	PlanetID  *uint `json:"planet_id"`
	VehicleID *uint `json:"vehicle_id"`
}

func (r deleteFavoriteRequest) userID(kind domain.ReferenceKind) uint {
	v := r.UserID
	if v == nil {
		switch kind {
		case domain.KindCharacter:
			v = r.PeopleID
		case domain.KindPlanet:
			v = r.PlanetID
		case domain.KindVehicle:
			v = r.VehicleID
		}
	}
	if v == nil {
		return 0
	}
	return *v
}

// List answers GET /users/favorites, optionally narrowed by ?user_id=.
func (h *FavoriteHandler) List(c *gin.Context) {
	var userID *uint
	if raw, ok := c.GetQuery("user_id"); ok {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			abortMsg(c, http.StatusBadRequest, "invalid user_id")
			return
		}
		uid := uint(id)
		userID = &uid
	}
	list, err := h.svc.List(userID)
	if err != nil {
		internalError(c, err, "list favorites failed")
		return
	}
	if list == nil {
		list = []models.Favorite{}
	}
	c.JSON(http.StatusOK, list)
}

// Create returns the handler for POST /favorite/<kind>/:id.
func (h *FavoriteHandler) Create(kind domain.ReferenceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		refID, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req createFavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, bindMessage(err, "user_id is required"))
			return
		}
		fav, created, err := h.svc.Create(req.UserID, kind, refID)
		if err != nil {
			h.fail(c, kind, err)
			return
		}
		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, fav)
	}
}

// Delete returns the handler for DELETE /favorite/<kind>/:id.
func (h *FavoriteHandler) Delete(kind domain.ReferenceKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		refID, ok := pathID(c, "id")
		if !ok {
			return
		}
		var req deleteFavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortMsg(c, http.StatusBadRequest, bindMessage(err, "user_id (or "+kind.LegacyField()+") is required"))
			return
		}
		if err := h.svc.Delete(req.userID(kind), kind, refID); err != nil {
			h.fail(c, kind, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// bindMessage describes a body binding failure. A field of the wrong JSON
// type gets its own message; anything else falls back to missing.
func bindMessage(err error, missing string) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + " must be a positive integer"
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "malformed JSON body"
	}
	return missing
}

func (h *FavoriteHandler) fail(c *gin.Context, kind domain.ReferenceKind, err error) {
	switch {
	case errors.Is(err, service.ErrMissingUserID):
		abortMsg(c, http.StatusBadRequest, "user_id is required")
	case errors.Is(err, service.ErrUserNotFound):
		abortMsg(c, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrReferenceNotFound):
		abortMsg(c, http.StatusNotFound, kind.Noun()+" not found")
	case errors.Is(err, service.ErrFavoriteNotFound):
		abortMsg(c, http.StatusNotFound, "favorite not found")
	case errors.Is(err, service.ErrUnknownKind):
		abortMsg(c, http.StatusNotFound, "unknown favorite kind")
	default:
		internalError(c, err, "favorite update failed")
	}
}
