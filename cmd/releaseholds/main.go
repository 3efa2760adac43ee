// cmd/releaseholds/main.go
//
// Maintenance command that releases expired product holds. Run it from
// cron; each expired hold is deleted and its product flipped back to
// available unless the dealer marked it sold in the meantime.
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/warehouse414/catalog-backend/internal/clock"
	"github.com/warehouse414/catalog-backend/internal/config"
	"github.com/warehouse414/catalog-backend/internal/database"
	"github.com/warehouse414/catalog-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}
	defer database.Close(db)

	settingsService := services.NewSettingsService(db)
	inquiryService := services.NewInquiryService(db, settingsService, clock.NewRealClock(), cfg.Catalog.HoldDurationHours)

	released, err := inquiryService.ReleaseExpiredHolds()
	if err != nil {
		logrus.WithField("released", released).Fatal("Failed to release expired holds: ", err)
	}

	logrus.WithField("released", released).Info("Expired holds released")
}
