package handlers // handlers/auth paketi

import (
	"errors"
	"net/http"

	"kartoteka.link/configs/configslog"
	"kartoteka.link/pkg/flashmessages"
	"kartoteka.link/pkg/renderer"
	"kartoteka.link/services"
	"kartoteka.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler giriş, kayıt ve profil işlemleri için handler.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{service: services.NewAuthService()}
}

// ShowLogin giriş formunu gösterir.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return renderer.Render(c, "auth/login", "layouts/auth_layout", fiber.Map{
		"Title": "Giriş Yap",
	})
}

// Login e-posta ve şifre ile oturum açar.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.service.Authenticate(c.UserContext(), email, password)
	if err != nil {
		errMsg := "E-posta veya şifre hatalı."
		if errors.Is(err, services.ErrUserDisabled) {
			errMsg = "Hesabınız aktif değil."
		} else if !errors.Is(err, services.ErrInvalidCredentials) {
			configslog.Log.Error("Login error", zap.String("email", email), zap.Error(err))
			errMsg = "Giriş sırasında bir hata oluştu."
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	if err := utils.SetUserSession(c, user.ID, user.Name, user.IsSystem); err != nil {
		configslog.Log.Error("Login: session yazılamadı", zap.Uint("userID", user.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum başlatılamadı.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Redirect("/", fiber.StatusFound)
}

// ShowRegister kayıt formunu gösterir.
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	formData := flashmessages.GetFlashFormData(c)
	return renderer.Render(c, "auth/register", "layouts/auth_layout", fiber.Map{
		"Title":    "Kayıt Ol",
		"FormData": formData,
	})
}

// Register yeni kullanıcı kaydı oluşturur.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.service.Register(c.UserContext(), name, email, password)
	if err != nil {
		errMsg := "Kayıt oluşturulamadı."
		switch {
		case errors.Is(err, services.ErrEmailTaken),
			errors.Is(err, services.ErrWeakPassword),
			errors.Is(err, services.ErrAuthInvalidInput):
			errMsg = err.Error()
		default:
			configslog.Log.Error("Register error", zap.String("email", email), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		_ = flashmessages.SetFlashFormData(c, fiber.Map{"name": name, "email": email})
		return c.Redirect("/auth/register", fiber.StatusSeeOther)
	}

	if err := utils.SetUserSession(c, user.ID, user.Name, user.IsSystem); err != nil {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hesabınız oluşturuldu.")
	return c.Redirect("/", fiber.StatusFound)
}

// Logout oturumu sonlandırır.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := utils.DestroySession(c); err != nil {
		configslog.Log.Warn("Logout: session kapatılamadı", zap.Error(err))
	}
	return c.Redirect("/auth/login", fiber.StatusFound)
}

// Profile profil sayfasını gösterir.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}
	user, err := h.service.GetUserByID(c.UserContext(), userID)
	if err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Profil bilgileri alınamadı.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return renderer.Render(c, "auth/profile", "layouts/main_layout", fiber.Map{
		"Title": "Profilim",
		"User":  user,
	}, http.StatusOK)
}

// UpdatePassword profil sayfasından şifre günceller.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/auth/login")
	}

	current := c.FormValue("current_password")
	newPassword := c.FormValue("new_password")
	if err := h.service.UpdatePassword(c.UserContext(), userID, current, newPassword); err != nil {
		errMsg := "Şifre güncellenemedi."
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrWeakPassword) {
			errMsg = err.Error()
		} else {
			configslog.Log.Error("UpdatePassword error", zap.Uint("userID", userID), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect("/auth/profile", fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Şifreniz güncellendi.")
	return c.Redirect("/auth/profile", fiber.StatusFound)
}
