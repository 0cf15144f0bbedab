package controller

import (
	"errors"
	"net/http"

	"dragondex/database/model"
	"dragondex/logger"
	"dragondex/web/service"
	"dragondex/web/session"

	"github.com/gin-gonic/gin"
)

// ViewController renders the server-side pages of the catalog.
type ViewController struct {
	BaseController

	characterService service.CharacterService
	userService      service.UserService
}

func NewViewController(g *gin.RouterGroup) *ViewController {
	a := &ViewController{}
	a.initRouter(g)
	return a
}

func (a *ViewController) initRouter(g *gin.RouterGroup) {
	vista := g.Group("/vista")
	vista.GET("/personajesweb", a.characters)
	vista.GET("/personajesweb/:id", a.characterDetail)
	vista.GET("/favoritos", a.checkLogin, a.favorites)
}

// characters renders the full listing. A logged-in visitor gets a heart
// marker on every favorited entry.
func (a *ViewController) characters(c *gin.Context) {
	characters, err := a.characterService.GetAll()
	if err != nil {
		logger.Warning("render characters:", err)
		htmlStatus(c, http.StatusInternalServerError, "error.html", "Error", gin.H{
			"message": "No se pudieron cargar los personajes",
		})
		return
	}

	data := gin.H{"personajes": characters}
	if user := session.GetLoginUser(c); user != nil {
		favs := map[int]bool{}
		favorites, err := a.userService.GetFavorites(user.Username)
		if err != nil {
			logger.Warning("load favorites for listing:", err)
		} else {
			favs = favoriteIdSet(favorites)
		}
		data["favoritosIds"] = favs
	}
	html(c, "personajes.html", "Personajes", data)
}

func (a *ViewController) characterDetail(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		htmlStatus(c, http.StatusNotFound, "error.html", "No encontrado", gin.H{
			"message": "Personaje no encontrado",
		})
		return
	}

	character, err := a.characterService.GetByID(id)
	if errors.Is(err, service.ErrCharacterNotFound) {
		htmlStatus(c, http.StatusNotFound, "error.html", "No encontrado", gin.H{
			"message": "Personaje no encontrado",
		})
		return
	} else if err != nil {
		logger.Warning("render character detail:", err)
		htmlStatus(c, http.StatusInternalServerError, "error.html", "Error", gin.H{
			"message": "No se pudo cargar el personaje",
		})
		return
	}
	html(c, "detalle-personaje.html", character.Name, gin.H{"personaje": character})
}

// favorites reuses the listing template, restricted to the caller's set.
func (a *ViewController) favorites(c *gin.Context) {
	user := session.GetLoginUser(c)

	favorites, err := a.userService.GetFavorites(user.Username)
	if err != nil {
		logger.Warning("render favorites:", err)
		htmlStatus(c, http.StatusInternalServerError, "error.html", "Error", gin.H{
			"message": "No se pudieron cargar los favoritos",
		})
		return
	}

	html(c, "personajes.html", "Mis favoritos", gin.H{
		"personajes":    favorites,
		"favoritosIds":  favoriteIdSet(favorites),
		"onlyFavorites": true,
	})
}

func favoriteIdSet(favorites []model.Character) map[int]bool {
	ids := make(map[int]bool, len(favorites))
	for _, f := range favorites {
		ids[f.Id] = true
	}
	return ids
}
