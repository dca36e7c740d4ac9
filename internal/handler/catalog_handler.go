package handler

import (
	"swapi/internal/repository"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only Star Wars catalogue: people, planets
// and vehicles.
type CatalogHandler struct {
	characters *repository.CharacterRepository
	planets    *repository.PlanetRepository
	vehicles   *repository.VehicleRepository
}

func NewCatalogHandler(characters *repository.CharacterRepository, planets *repository.PlanetRepository, vehicles *repository.VehicleRepository) *CatalogHandler {
	return &CatalogHandler{characters: characters, planets: planets, vehicles: vehicles}
}

func (h *CatalogHandler) ListPeople(c *gin.Context) {
	listAll(c, h.characters.List)
}

func (h *CatalogHandler) GetPerson(c *gin.Context) {
	getOne(c, h.characters.GetByID, "character not found")
}

func (h *CatalogHandler) ListPlanets(c *gin.Context) {
	listAll(c, h.planets.List)
}

func (h *CatalogHandler) GetPlanet(c *gin.Context) {
	getOne(c, h.planets.GetByID, "planet not found")
}

func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	listAll(c, h.vehicles.List)
}

func (h *CatalogHandler) GetVehicle(c *gin.Context) {
	getOne(c, h.vehicles.GetByID, "vehicle not found")
}
