package renderer

import (
	"net/http"

	"kartoteka.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// Şablonlara aktarılan flash mesaj anahtarları.
const (
	FlashSuccessKeyView = "FlashSuccess"
	FlashErrorKeyView   = "FlashError"
)

// Render ortak verileri (flash mesajları, oturum bilgileri, CSRF token)
// şablon verisine ekleyerek sayfayı çizer.
func Render(c *fiber.Ctx, view string, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}

	// Flash mesajları (handler aynı anahtarı doldurmadıysa oturumdan al).
	if _, exists := data[FlashSuccessKeyView]; !exists {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashSuccessKey); msg != "" {
			data[FlashSuccessKeyView] = msg
		}
	}
	if _, exists := data[FlashErrorKeyView]; !exists {
		if msg := flashmessages.GetFlashMessage(c, flashmessages.FlashErrorKey); msg != "" {
			data[FlashErrorKeyView] = msg
		}
	}

	// Oturum bilgileri; menü ve yetki gösterimleri için.
	if userID, ok := c.Locals("userID").(uint); ok {
		data["LoggedInUserID"] = userID
		data["IsAuthenticated"] = true
	} else {
		data["IsAuthenticated"] = false
	}
	if userName, ok := c.Locals("userName").(string); ok {
		data["LoggedInUserName"] = userName
	}
	if isSystem, ok := c.Locals("isSystem").(bool); ok {
		data["IsSystemUser"] = isSystem
	}
	if token, ok := c.Locals("csrf_token").(string); ok {
		data["CSRFToken"] = token
	}

	statusCode := http.StatusOK
	if len(status) > 0 {
		statusCode = status[0]
	}

	// Layout boş dizeyle de açıkça geçilir; argümansız Render çağrısı
	// motorun genel ViewsLayout ayarına düşer ve fragmenti tam sayfa çizer.
	return c.Status(statusCode).Render(view, data, layout)
}

// RenderFragment AJAX uçları için layout'suz kısa yol.
func RenderFragment(c *fiber.Ctx, view string, data fiber.Map, status ...int) error {
	return Render(c, view, "", data, status...)
}
