package routes

import (
	"errors"
	"net/http"

	"github.com/Joeseb100/realprops/storage"
	"github.com/Joeseb100/realprops/utils"

	"github.com/kataras/iris/v12"
)

type AuthHandler struct {
	Admins *storage.AdminRepository
}

func NewAuthHandler(admins *storage.AdminRepository) *AuthHandler {
	return &AuthHandler{Admins: admins}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies admin credentials and sets the session cookie.
func (h *AuthHandler) Login(ctx iris.Context) {
	var input LoginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	admin, err := h.Admins.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCredentials) {
			utils.JSONError(ctx, iris.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
			return
		}
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", err.Error())
		return
	}

	token, err := utils.CreateSessionToken(admin.ID, admin.Email)
	if err != nil {
		utils.JSONError(ctx, iris.StatusInternalServerError, "server_error", "could not issue session token")
		return
	}

	ctx.SetCookie(&http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    token,
		HttpOnly: true,
		Path:     "/",
		MaxAge:   int(utils.SessionMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	ctx.JSON(iris.Map{"success": true})
}

// Logout clears the session cookie. The issuer keeps no server-side state,
// so discarding the cookie is the only revocation there is.
func (h *AuthHandler) Logout(ctx iris.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    "",
		HttpOnly: true,
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
	ctx.JSON(iris.Map{"success": true})
}
