package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/swarmwrapped/wrapped-backend-go/internal/config"
	"github.com/swarmwrapped/wrapped-backend-go/internal/middleware"
	"github.com/swarmwrapped/wrapped-backend-go/internal/repository"
	"github.com/swarmwrapped/wrapped-backend-go/pkg/response"
)

// stateCookie carries the OAuth CSRF state between login and callback.
const stateCookie = "oauth_state"

// AuthHandler handles the Foursquare OAuth flow.
type AuthHandler struct {
	cfg      *config.Config
	oauth    *oauth2.Config
	sessions *repository.SessionRepository
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config, oauth *oauth2.Config, sessions *repository.SessionRepository) *AuthHandler {
	return &AuthHandler{cfg: cfg, oauth: oauth, sessions: sessions}
}

// Login handles GET /auth/login: redirects to Foursquare authorization.
func (h *AuthHandler) Login(c *gin.Context) {
	if h.cfg.FoursquareClientID == "" {
		response.InternalError(c, "Foursquare client ID not configured")
		return
	}

	state := uuid.NewString()
	c.SetCookie(stateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state))
}

// Callback handles GET /auth/callback: exchanges the authorization code and
// opens a session.
func (h *AuthHandler) Callback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		response.BadRequest(c, "OAuth error: "+errParam)
		return
	}

	code := c.Query("code")
	if code == "" {
		response.BadRequest(c, "No authorization code received")
		return
	}

	expectedState, err := c.Cookie(stateCookie)
	if err != nil || c.Query("state") != expectedState {
		response.BadRequest(c, "Invalid OAuth state")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	token, err := h.oauth.Exchange(c.Request.Context(), code)
	if err != nil {
		logrus.Errorf("[AuthHandler] Token exchange failed: %v", err)
		response.BadRequest(c, "Failed to get access token")
		return
	}

	sessionID := uuid.NewString()
	if err := h.sessions.Create(sessionID, token.AccessToken, h.cfg.SessionTTL); err != nil {
		logrus.Errorf("[AuthHandler] Failed to create session: %v", err)
		response.InternalError(c, "Failed to create session")
		return
	}

	signed, err := middleware.SignSession(h.cfg.SessionSecret, sessionID, h.cfg.SessionTTL)
	if err != nil {
		response.InternalError(c, "Failed to sign session")
		return
	}

	c.SetCookie(middleware.SessionCookie, signed, int(h.cfg.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, h.cfg.FrontendURL)
}

// Logout handles GET /auth/logout: drops the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		if sessionID, err := middleware.ParseSession(h.cfg.SessionSecret, cookie); err == nil {
			if err := h.sessions.Delete(sessionID); err != nil {
				logrus.Warnf("[AuthHandler] Failed to delete session: %v", err)
			}
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, h.cfg.FrontendURL)
}
