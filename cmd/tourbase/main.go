package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"gorm.io/gorm"

	"github.com/ptduy/tourbase/internal/config"
	"github.com/ptduy/tourbase/internal/domain"
	"github.com/ptduy/tourbase/internal/store"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	logger, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		log.Fatal("failed to setup logger: ", err)
	}
	defer logger.Close()

	db, err := config.SetupDatabase(&cfg.Database, slog.Default())
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	switch cmd := flag.Arg(0); cmd {
	case "", "migrate":
		if err := migrate(db); err != nil {
			log.Fatal("migration failed: ", err)
		}
		slog.Info("migration complete")
	case "seed":
		if err := migrate(db); err != nil {
			log.Fatal("migration failed: ", err)
		}
		if err := seed(db); err != nil {
			log.Fatal("seeding failed: ", err)
		}
		slog.Info("seeding complete")
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (expected migrate or seed)\n", cmd)
		os.Exit(2)
	}
}

// migrate creates or updates the schema for every entity family.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.TouristDestination{},
		&domain.OcopProduct{},
		&domain.Tip{},
		&domain.Review{},
		&domain.Feedback{},
		&domain.Notification{},
	)
}

// seed inserts a small sample dataset in one transaction.
func seed(db *gorm.DB) error {
	ctx := context.Background()
	return store.WithTx(db, func(tx *gorm.DB) error {
		destinations := store.New[domain.TouristDestination, *domain.TouristDestination](tx)
		products := store.New[domain.OcopProduct, *domain.OcopProduct](tx)
		tips := store.New[domain.Tip, *domain.Tip](tx)

		dest := &domain.TouristDestination{
			Name:        "Ao Ba Om",
			Description: "Square pond surrounded by centuries-old trees",
			Address:     "Nguyet Hoa, Chau Thanh",
			Latitude:    9.9347,
			Longitude:   106.3044,
			AvgRating:   4.6,
			Images:      []string{"https://assets.example.com/ao-ba-om.jpg"},
		}
		product := &domain.OcopProduct{
			ProductName:        "Coconut wax honey",
			ProductDescription: "Raw honey harvested from coconut groves",
			ProductPrice:       "120000",
			OcopPoint:          4,
			OcopYearRelease:    2023,
			SellLocations: []domain.SellLocation{
				{LocationName: "Central market", LocationAddress: "Ward 3"},
			},
		}
		tip := &domain.Tip{
			Title:   "Best time to visit",
			Content: "The dry season from December to April is the most comfortable.",
		}

		if err := destinations.Create(ctx, dest); err != nil {
			return err
		}
		if err := products.Create(ctx, product); err != nil {
			return err
		}
		return tips.Create(ctx, tip)
	})
}
