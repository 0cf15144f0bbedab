// Package session stores the logged-in user in the cookie session. The
// session value is an explicit User struct, never a framework-managed
// principal.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUserKey = "LOGIN_USER"

// User is the session principal: just enough identity to resolve the
// account on each request.
type User struct {
	Id       int
	Username string
}

func init() {
	gob.Register(User{})
}

func SetLoginUser(c *gin.Context, user User) error {
	s := sessions.Default(c)
	s.Set(loginUserKey, user)
	return s.Save()
}

func GetLoginUser(c *gin.Context) *User {
	s := sessions.Default(c)
	if obj := s.Get(loginUserKey); obj != nil {
		if user, ok := obj.(User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
