package renderer

import (
	"io"
	"net/http/httptest"
	"testing"

	"kartoteka.link/pkg/queryparams"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newViewApp gerçek şablon ağacını genel layout ayarıyla yükler;
// main.go'daki kurulumun birebir karşılığıdır.
func newViewApp(t *testing.T) *fiber.App {
	t.Helper()
	engine := html.New("../../views", ".html")
	engine.AddFunc("pageButtons", queryparams.PageButtons)
	require.NoError(t, engine.Load())

	return fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main_layout",
		PassLocalsToViews: true,
	})
}

func TestRenderFragmentSkipsGlobalLayout(t *testing.T) {
	app := newViewApp(t)
	app.Get("/fragment", func(c *fiber.Ctx) error {
		return RenderFragment(c, "website/fragments/login_required", nil)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/fragment", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `class="login-required"`)
	assert.NotContains(t, string(body), "<!DOCTYPE")
	assert.NotContains(t, string(body), "navbar")
}

func TestRenderAppliesGlobalLayoutForPages(t *testing.T) {
	app := newViewApp(t)
	app.Get("/page", func(c *fiber.Ctx) error {
		return Render(c, "website/fragments/login_required", "layouts/main_layout", nil)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/page", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "<!DOCTYPE")
	assert.Contains(t, string(body), `class="login-required"`)
}
