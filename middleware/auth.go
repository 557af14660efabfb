package middleware

import (
	"net/http"

	"stampcard-backend/models"
	"stampcard-backend/services"
	"stampcard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionCookie is the name of the login cookie. Its value is an opaque
// session id; all session state lives server-side.
const SessionCookie = "session_id"

const userContextKey = "currentUser"

// CurrentUser returns the authenticated admin set by RequireSession.
func CurrentUser(c *gin.Context) *models.AdminUser {
	if v, ok := c.Get(userContextKey); ok {
		if u, ok := v.(*models.AdminUser); ok {
			return u
		}
	}
	return nil
}

// RequireSession resolves the session cookie against the sessions table and
// puts the admin user in the request context. Missing, unknown and expired
// sessions all read the same to the client.
func RequireSession(db *gorm.DB) gin.HandlerFunc {
	sessions := services.NewSessionService(db)

	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		sessionID, err := uuid.Parse(cookie)
		if err != nil {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := sessions.Resolve(sessionID)
		if err != nil {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireTenant enforces the authorization rule on routes carrying an :id
// establishment param: an establishment_admin may only act on their own
// establishment, a superuser on any.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.RespondWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		establishmentID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid establishment ID")
			return
		}

		if !user.CanAccess(establishmentID) {
			utils.RespondWithError(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Next()
	}
}

// RequireSuperuser gates the cross-tenant routes.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsSuperuser() {
			utils.RespondWithError(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Next()
	}
}
