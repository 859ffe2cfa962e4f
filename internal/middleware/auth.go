package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/agenda-api/internal/config"
	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-api/internal/httperr"
)

const ContextCaller = "caller"

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, "invalid_token_claims")
			return
		}

		caller, ok := callerFromClaims(claims)
		if !ok {
			unauthorized(c, "invalid_token_payload")
			return
		}

		c.Set(ContextCaller, caller)
		c.Next()
	}
}

func unauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Autenticação necessária.")
	c.Abort()
}

// callerFromClaims reads sub, businessId and role. Unknown roles are
// rejected.
func callerFromClaims(claims jwt.MapClaims) (domain.Caller, bool) {
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return domain.Caller{}, false
	}

	role, _ := claims["role"].(string)
	capability, ok := domain.ParseCapability(role)
	if !ok {
		return domain.Caller{}, false
	}

	// clients are not bound to a business
	businessID, _ := claims["businessId"].(float64)

	return domain.Caller{
		ID:         uint(sub),
		BusinessID: uint(businessID),
		Capability: capability,
	}, true
}

// CallerFrom returns the authenticated caller set by AuthMiddleware.
func CallerFrom(c *gin.Context) (domain.Caller, bool) {
	v, ok := c.Get(ContextCaller)
	if !ok {
		return domain.Caller{}, false
	}
	caller, ok := v.(domain.Caller)
	return caller, ok
}
