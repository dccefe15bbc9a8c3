package middlewares

import (
	"kartoteka.link/configs/configslog"
	"kartoteka.link/pkg/flashmessages"
	"kartoteka.link/services"
	"kartoteka.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthMiddleware giriş yapmamış kullanıcıları login sayfasına yönlendirir.
func AuthMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Bu sayfa için giriş yapmalısınız.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// GuestMiddleware giriş yapmış kullanıcıları ana sayfaya yönlendirir.
func GuestMiddleware(c *fiber.Ctx) error {
	if userID, ok := c.Locals("userID").(uint); ok && userID != 0 {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Next()
}

// StatusMiddleware hesabı pasifleştirilmiş kullanıcıların oturumunu kapatır.
func StatusMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		return c.Next()
	}
	user, err := services.NewAuthService().GetUserByID(c.UserContext(), userID)
	if err != nil || !user.IsEnabled {
		if err != nil {
			configslog.Log.Warn("StatusMiddleware: kullanıcı doğrulanamadı", zap.Uint("userID", userID), zap.Error(err))
		}
		_ = utils.DestroySession(c)
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Hesabınız aktif değil.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	return c.Next()
}
