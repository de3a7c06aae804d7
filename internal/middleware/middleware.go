package middleware

import (
	"strings"

	"DTCL-Backend/domain"
	"DTCL-Backend/internal/api/presenters"
	"DTCL-Backend/pkg/group"
	"DTCL-Backend/pkg/jwt"
	"DTCL-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		RequireGroup() fiber.Handler
		GroupAdminOnly() fiber.Handler
		AdminOnly() fiber.Handler
	}

	middleware struct {
		userRepository  user.UserRepository
		groupRepository group.GroupRepository
	}
)

func NewMiddleware(userRepository user.UserRepository, groupRepository group.GroupRepository) Middleware {
	return &middleware{
		userRepository:  userRepository,
		groupRepository: groupRepository,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return presenters.HandleError(c, domain.ErrTokenNotFound)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		userID, _, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.HandleError(c, err)
		}

		// Role and group come from the database, not the token claims,
		// so revoked admins and group changes take effect immediately.
		u, err := m.userRepository.GetUserByID(c.Context(), userID)
		if err != nil {
			return presenters.HandleError(c, domain.ErrTokenUserNotFound)
		}

		c.Locals("user_id", u.ID.String())
		c.Locals("role", u.Role)
		if u.GroupID != nil {
			c.Locals("group_id", u.GroupID.String())
		} else {
			c.Locals("group_id", "")
		}
		return c.Next()
	}
}

func (m *middleware) RequireGroup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		groupID, _ := c.Locals("group_id").(string)
		if groupID == "" {
			return presenters.HandleError(c, domain.ErrNoGroup)
		}
		return c.Next()
	}
}

func (m *middleware) GroupAdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		groupID, _ := c.Locals("group_id").(string)
		if groupID == "" {
			return presenters.HandleError(c, domain.ErrNoGroup)
		}

		g, err := m.groupRepository.GetGroupByID(c.Context(), groupID)
		if err != nil {
			return presenters.HandleError(c, domain.ErrNoGroup)
		}

		userID, _ := c.Locals("user_id").(string)
		if g.AdminID.String() != userID {
			return presenters.HandleError(c, domain.ErrNotGroupAdmin)
		}
		return c.Next()
	}
}

func (m *middleware) AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != domain.RoleAdmin {
			return presenters.HandleError(c, domain.ErrNotAdmin)
		}
		return c.Next()
	}
}
