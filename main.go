package main

import (
	"kartoteka.link/configs"
	"kartoteka.link/configs/configslog"
	"kartoteka.link/pkg/queryparams"
	"kartoteka.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configs.LoadEnv()
	configslog.Init()
	defer configslog.Sync()

	// Veritabanı bağlantısını başlat (başarısızsa Fatal ile çıkar)
	configs.GetDB()

	engine := html.New("./views", ".html")
	engine.Reload(configs.GetEnvBool("TEMPLATE_RELOAD", false))
	engine.AddFunc("pageButtons", queryparams.PageButtons)

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main_layout",
		PassLocalsToViews: true,
	})

	app.Static("/static", "./static")

	routes.SetupRoutes(app)

	addr := configs.GetEnv("APP_ADDR", ":3000")
	configslog.SLog.Infof("Sunucu dinlemede: %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
