package main

import (
	"flag"
	"log"

	"netbackup/config"
	"netbackup/internal/db"
	"netbackup/internal/logs"
	"netbackup/internal/seed"
	"netbackup/server"
)

func main() {
	seedOnly := flag.Bool("seed", false, "seed an empty database and exit")
	reseed := flag.Bool("reseed", false, "drop all tables, reseed and exit (destructive)")
	flag.Parse()

	cfg := config.MustLoad()

	if *seedOnly || *reseed {
		logs.Init(logs.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
		d, err := db.Open(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		if err := seed.Run(d, *reseed); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		return
	}

	app := &server.App{}
	app.Initialize(cfg)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
