package config

import (
	"log"
	"os"
)

type Config struct {
	Port      string
	DBDSN     string
	MediaDir  string
	LogFile   string
	StoreName string
	Cashier   string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "salesdesk.db" // sqlite catalog file in project root
	}
	media := os.Getenv("MEDIA_DIR")
	if media == "" {
		media = "./web/media"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./salesdesk.log"
	}
	store := os.Getenv("STORE_NAME")
	if store == "" {
		store = "GAPPA Shop"
	}
	cashier := os.Getenv("CASHIER_NAME")
	if cashier == "" {
		cashier = "GAPPA GUITARROCK"
	}

	cfg := Config{Port: port, DBDSN: dsn, MediaDir: media, LogFile: logFile, StoreName: store, Cashier: cashier}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s STORE_NAME=%q CASHIER=%q",
		cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile, cfg.StoreName, cfg.Cashier)
	return cfg
}
