package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logiless/internal/client/logiless"
)

// CodeExchanger is the slice of the token manager the auth routes need.
type CodeExchanger interface {
	ExchangeCode(ctx context.Context, code string) error
	AuthorizeQuery() url.Values
}

// AuthHandler drives the one-time browser login for the Logiless OAuth2
// authorization-code flow.
type AuthHandler struct {
	Tokens  CodeExchanger
	AuthURL string
	Logger  *zap.Logger
}

func (h *AuthHandler) Register(r *gin.Engine) {
	group := r.Group("/logiless")
	group.GET("/login", h.login)
	group.GET("/callback", h.callback)
}

// login redirects the operator's browser to the upstream authorization
// endpoint. The credential is untouched until the callback fires.
func (h *AuthHandler) login(c *gin.Context) {
	c.Redirect(http.StatusFound, h.AuthURL+"?"+h.Tokens.AuthorizeQuery().Encode())
}

func (h *AuthHandler) callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		Error(c, http.StatusBadRequest, "missing code")
		return
	}

	if err := h.Tokens.ExchangeCode(c.Request.Context(), code); err != nil {
		if h.Logger != nil {
			h.Logger.Warn("authorization code exchange failed", zap.Error(err))
		}
		var apiErr *logiless.APIError
		if errors.As(err, &apiErr) {
			Error(c, apiErr.Status, apiErr.Body)
			return
		}
		Error(c, http.StatusBadGateway, err.Error())
		return
	}

	Ok(c, gin.H{"status": "logged_in"})
}
