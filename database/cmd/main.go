package main

import (
	"flag"

	"kartoteka.link/configs"
	"kartoteka.link/configs/configsdatabase"
	"kartoteka.link/configs/configslog"
	"kartoteka.link/database"
)

func main() {
	configs.LoadEnv()
	configslog.Init()
	defer configslog.Sync()

	migrateFlag := flag.Bool("migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	seedFlag := flag.Bool("seed", false, "Veritabanı başlatma işlemini çalıştır (seederları içerir)")
	flag.Parse()

	db := configsdatabase.GetDB()
	defer configsdatabase.CloseDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
