package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alaaldainabdo/scalable-login-system/internal/common"
)

const (
	msgUserCreated     = "User created"
	msgLoginSuccessful = "Login successful"
	msgUserNotFound    = "User not found"
	msgWrongPassword   = "Wrong password"
	msgInvalidToken    = "Invalid token"
	msgInvalidBody     = "Invalid request body"
	msgInternalError   = "Internal server error"
)

const healthPingTimeout = 2 * time.Second

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type registerResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type meResponse struct {
	ID string `json:"id"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *HTTPServer) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidBody})
		return
	}

	ctx, log := scoped(c, s.logger)
	u, err := s.users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		s.writeError(c, "register failed", err)
		return
	}

	log.Info(ctx, "user registered", "user_id", u.ID)
	c.JSON(http.StatusCreated, registerResponse{Message: msgUserCreated, User: u.Name})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidBody})
		return
	}

	ctx, _ := scoped(c, s.logger)
	token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		s.writeError(c, "login failed", err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{Message: msgLoginSuccessful, Token: token})
}

func (s *HTTPServer) me(c *gin.Context) {
	header := c.GetHeader(common.AuthorizationHeaderName)
	token, ok := strings.CutPrefix(header, common.BearerPrefix)
	if !ok || token == "" {
		c.JSON(http.StatusUnauthorized, messageResponse{Message: msgInvalidToken})
		return
	}

	ctx, _ := scoped(c, s.logger)
	id, err := s.users.Authenticate(ctx, token)
	if err != nil {
		s.writeError(c, "authenticate failed", err)
		return
	}

	c.JSON(http.StatusOK, meResponse{ID: id})
}

func (s *HTTPServer) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		_, log := scoped(c, s.logger)
		log.Warn(ctx, "store ping failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

// writeError maps the error kind to a status and a fixed message. The
// cause is only logged.
func (s *HTTPServer) writeError(c *gin.Context, msg string, err error) {
	ctx, log := scoped(c, s.logger)
	kind := common.KindOf(err)

	switch kind {
	case common.KindNotFound:
		c.JSON(http.StatusNotFound, messageResponse{Message: msgUserNotFound})
	case common.KindInvalidCredential:
		c.JSON(http.StatusBadRequest, messageResponse{Message: msgWrongPassword})
	case common.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, messageResponse{Message: msgInvalidToken})
	default:
		log.Error(ctx, msg, "kind", kind.String(), "error", err)
		c.JSON(http.StatusInternalServerError, messageResponse{Message: msgInternalError})
	}
}
