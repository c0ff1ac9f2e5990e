package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Empasex/mini-pos-admin/internal/application/dto"
	"github.com/Empasex/mini-pos-admin/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalUsername = "username"
	LocalRole     = "role"
	LocalToken    = "token"
)

// Roles conocidos del backend POS.
const (
	RoleAdmin    = "admin"
	RoleStock    = "stock"
	RoleEmployee = "employee"
)

// NormalizeRole deja el rol en forma canónica (minúsculas, sin espacios).
// Los roles llegan del backend con variaciones de mayúsculas/espacios.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// AuthMiddleware valida el Bearer Token JWT y deja username, rol normalizado
// y el token crudo en c.Locals. El token crudo se reenvía luego al backend
// POS en las llamadas salientes.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		username, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, NormalizeRole(role))
		c.Locals(LocalToken, tokenString)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalRole).
func RequireRole(allowed ...string) fiber.Handler {
	allowedSet := make(map[string]bool, len(allowed))
	for _, r := range allowed {
		allowedSet[NormalizeRole(r)] = true
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "rol no encontrado en el token"})
		}
		if !allowedSet[role] {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol '" + role + "' sin acceso a este recurso"})
		}
		return c.Next()
	}
}

// GetUsername devuelve el username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	return localString(c, LocalUsername)
}

// GetRole devuelve el rol normalizado del contexto.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetToken devuelve el Bearer crudo del caller, para reenviarlo al backend POS.
func GetToken(c *fiber.Ctx) string {
	return localString(c, LocalToken)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
