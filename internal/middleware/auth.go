package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/pkg/jwtutil"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// AuthMiddleware validates the JWT token and extracts the store owner context
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		// Extract the token
		tokenString := parts[1]

		// Validate the token
		claims, err := jwtutil.ValidateToken(tokenString)
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		// Store user info in context for later use
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)

		// Store owner information if available
		if claims.StoreID != nil {
			c.Set("store_id", *claims.StoreID)
			c.Set("store_name", claims.StoreName)
			c.Set("user_role", claims.Role)
			log.Info("Request authenticated with store context",
				zap.Uint("store_id", *claims.StoreID),
				zap.String("store_name", claims.StoreName),
				zap.String("role", claims.Role))
		} else {
			log.Warn("JWT token does not contain store_id")
			prometheus.OwnerContextMissingCounter.Inc()
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id is required in the token"})
		}

		// Token is valid, proceed with the request
		return next(c)
	}
}

// OwnerIDFromContext retrieves the store owner ID from the context.
// Returns 0, false if it is not set.
func OwnerIDFromContext(c echo.Context) (uint, bool) {
	ownerID, ok := c.Get("store_id").(uint)
	return ownerID, ok
}
