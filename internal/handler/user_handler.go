package handler

import (
	"net/http"

	"swapi/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	repo *repository.UserRepository
}

func NewUserHandler(repo *repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

// Hello answers GET /user with a fixed greeting.
func (h *UserHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Hello, this is your GET /user response "})
}

func (h *UserHandler) List(c *gin.Context) {
	listAll(c, h.repo.List)
}
