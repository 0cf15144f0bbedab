package controller

import (
	"errors"
	"net/http"

	"dragondex/logger"
	"dragondex/web/service"
	"dragondex/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm binds the login form submission.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// RegisterForm binds the registration form submission.
type RegisterForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Confirm  string `form:"confirm"`
}

// AuthController handles login, logout, and registration.
type AuthController struct {
	BaseController

	userService service.UserService
}

func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.GET("/login", a.loginForm)
	g.POST("/login", a.login)
	g.POST("/logout", a.logout)
	g.GET("/register", a.registerForm)
	g.POST("/register", a.register)
}

func (a *AuthController) loginForm(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/vista/personajesweb")
		return
	}
	data := gin.H{}
	if c.Query("error") != "" {
		data["errorMessage"] = "Usuario o contraseña incorrectos"
	}
	if c.Query("registered") != "" {
		data["successMessage"] = "Usuario registrado con éxito, ya puedes iniciar sesión"
	}
	html(c, "login.html", "Iniciar sesión", data)
}

func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		c.Redirect(http.StatusSeeOther, "/login?error=1")
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q from %s", form.Username, getRemoteIp(c))
		c.Redirect(http.StatusSeeOther, "/login?error=1")
		return
	}

	if err := session.SetLoginUser(c, session.User{Id: user.Id, Username: user.Username}); err != nil {
		logger.Warning("unable to save session:", err)
		c.Redirect(http.StatusSeeOther, "/login?error=1")
		return
	}

	logger.Infof("%s logged in from %s", user.Username, getRemoteIp(c))
	c.Redirect(http.StatusSeeOther, "/vista/personajesweb")
}

func (a *AuthController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusSeeOther, "/vista/personajesweb")
}

func (a *AuthController) registerForm(c *gin.Context) {
	data := gin.H{}
	switch c.Query("error") {
	case "exists":
		data["errorMessage"] = "El nombre de usuario ya existe"
	case "mismatch":
		data["errorMessage"] = "Las contraseñas no coinciden"
	case "invalid":
		data["errorMessage"] = "Datos de registro no válidos"
	}
	html(c, "register.html", "Registro", data)
}

func (a *AuthController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		c.Redirect(http.StatusSeeOther, "/register?error=invalid")
		return
	}

	err := a.userService.Register(form.Username, form.Password, form.Confirm)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		c.Redirect(http.StatusSeeOther, "/register?error=exists")
	case errors.Is(err, service.ErrPasswordMismatch):
		c.Redirect(http.StatusSeeOther, "/register?error=mismatch")
	case err != nil:
		logger.Warning("register failed:", err)
		c.Redirect(http.StatusSeeOther, "/register?error=invalid")
	default:
		logger.Infof("new user registered: %s", form.Username)
		c.Redirect(http.StatusSeeOther, "/login?registered=1")
	}
}
