package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "ecycle/internal/log"
	"ecycle/internal/repos"
	"ecycle/internal/services"
	"ecycle/internal/validate"
)

type AdminHandler struct {
	Auth  *services.AuthService
	Users *repos.UserRepo
}

// ListUsers returns every account; admin sight is the one exception to
// ownership-scoped access.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		return fail(c, "admin.users.list.fail", err)
	}
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, publicUser(&users[i]))
	}
	return c.JSON(out)
}

func (h *AdminHandler) CreateAdmin(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return badRequest(c, "invalid email")
	}
	username, ok := validate.Username(req.Username)
	if !ok {
		return badRequest(c, "invalid username")
	}
	if !validate.Password(req.Password) {
		return badRequest(c, "invalid password")
	}

	u, err := h.Auth.CreateAdmin(services.RegisterInput{
		Email:    email,
		Username: username,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return fail(c, "admin.create.fail", err)
	}
	applog.Audit(c, "admin.create", map[string]any{"admin_id": u.ID})
	return c.JSON(publicUser(u))
}

// InitAdmin is the unauthenticated bootstrap; it refuses once any admin exists.
func (h *AdminHandler) InitAdmin(c *fiber.Ctx) error {
	u, err := h.Auth.InitAdmin()
	if err != nil {
		return fail(c, "admin.init.fail", err)
	}
	applog.Audit(c, "admin.init", map[string]any{"admin_id": u.ID})
	return c.JSON(fiber.Map{
		"message":  "Initial admin created",
		"email":    services.InitialAdminEmail,
		"password": services.InitialAdminPassword,
	})
}
