package controller

import (
	"errors"
	"net/http"

	"dragondex/logger"
	"dragondex/web/service"

	"github.com/gin-gonic/gin"
)

// CharacterAPIController serves the public JSON endpoints of the catalog.
type CharacterAPIController struct {
	characterService service.CharacterService
}

func NewCharacterAPIController(g *gin.RouterGroup) *CharacterAPIController {
	a := &CharacterAPIController{}
	a.initRouter(g)
	return a
}

func (a *CharacterAPIController) initRouter(g *gin.RouterGroup) {
	g.GET("/personajes", a.list)
	g.GET("/personajes/:id", a.get)
	g.GET("/buscar/nombre", a.searchByName)
	g.GET("/buscar/raza", a.searchByRace)
}

// list returns the full catalog, importing it first when the store has not
// been seeded yet.
func (a *CharacterAPIController) list(c *gin.Context) {
	characters, err := a.characterService.GetAll()
	if err != nil {
		logger.Warning("list characters:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "failed to load characters")
		return
	}
	c.JSON(http.StatusOK, characters)
}

func (a *CharacterAPIController) get(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid character id")
		return
	}

	character, err := a.characterService.GetByID(id)
	if errors.Is(err, service.ErrCharacterNotFound) {
		c.Status(http.StatusNotFound)
		return
	} else if err != nil {
		logger.Warning("get character:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "failed to load character")
		return
	}
	c.JSON(http.StatusOK, character)
}

func (a *CharacterAPIController) searchByName(c *gin.Context) {
	characters, err := a.characterService.SearchByName(c.Query("nombre"))
	if err != nil {
		logger.Warning("search by name:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "search failed")
		return
	}
	c.JSON(http.StatusOK, characters)
}

func (a *CharacterAPIController) searchByRace(c *gin.Context) {
	characters, err := a.characterService.SearchByRace(c.Query("race"))
	if err != nil {
		logger.Warning("search by race:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "search failed")
		return
	}
	c.JSON(http.StatusOK, characters)
}
