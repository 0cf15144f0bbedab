package controller

import (
	"errors"
	"net/http"

	"dragondex/logger"
	"dragondex/web/middleware"
	"dragondex/web/service"
	"dragondex/web/session"

	"github.com/gin-gonic/gin"
)

// FavoriteController mutates the favorites set of the logged-in user.
// Add/remove are POST on purpose: a state-changing GET would let any
// cross-site <img> tag toggle favorites with the browser-held cookie.
type FavoriteController struct {
	BaseController

	userService service.UserService
}

func NewFavoriteController(g *gin.RouterGroup) *FavoriteController {
	a := &FavoriteController{}
	a.initRouter(g)
	return a
}

func (a *FavoriteController) initRouter(g *gin.RouterGroup) {
	favorito := g.Group("/favorito")
	favorito.Use(a.checkLogin, middleware.CSRF())
	favorito.POST("/agregar/:id", a.add)
	favorito.POST("/quitar/:id", a.remove)
}

func (a *FavoriteController) add(c *gin.Context) {
	a.mutate(c, a.userService.AddFavorite)
}

func (a *FavoriteController) remove(c *gin.Context) {
	a.mutate(c, a.userService.RemoveFavorite)
}

func (a *FavoriteController) mutate(c *gin.Context, op func(username string, characterId int) error) {
	user := session.GetLoginUser(c)

	id, ok := pathId(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/vista/personajesweb")
		return
	}

	err := op(user.Username, id)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrCharacterNotFound), errors.Is(err, service.ErrUserNotFound):
		logger.Warningf("favorite change for %q rejected: %v", user.Username, err)
	default:
		logger.Warning("favorite change failed:", err)
	}
	c.Redirect(http.StatusSeeOther, "/vista/personajesweb")
}
