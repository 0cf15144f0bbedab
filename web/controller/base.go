// Package controller provides the HTTP handlers of the catalog: the JSON
// API, the rendered views, favorites, and the login/registration flow.
package controller

import (
	"net/http"

	"dragondex/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the login check shared by protected routes.
type BaseController struct{}

// checkLogin redirects anonymous requests to the login page (or answers
// 401 for AJAX callers) and aborts the chain.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "session expired, please log in again")
		} else {
			c.Redirect(http.StatusTemporaryRedirect, "/login")
		}
		c.Abort()
	} else {
		c.Next()
	}
}
