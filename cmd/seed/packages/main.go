package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mataraung/trip-api/internal/config"
	"github.com/mataraung/trip-api/internal/domain"
	"github.com/mataraung/trip-api/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB.Database)
	repo := repository.NewMongoPackageRepository(db)

	packages := []domain.TripPackage{
		{
			Name:        "Raja Ampat Explorer",
			Description: "4 hari menjelajahi kepulauan Raja Ampat, snorkeling di Pianemo dan trekking ke puncak Wayag.",
			Location:    "Raja Ampat, Papua Barat",
			Price:       4500000,
			Duration:    "4 hari 3 malam",
			MaxPeople:   12,
			Status:      domain.PackageStatusActive,
		},
		{
			Name:        "Bromo Sunrise Trip",
			Description: "Perjalanan semalam ke Gunung Bromo, matahari terbit di Penanjakan dan jeep ke lautan pasir.",
			Location:    "Probolinggo, Jawa Timur",
			Price:       850000,
			Duration:    "2 hari 1 malam",
			MaxPeople:   20,
			Status:      domain.PackageStatusActive,
		},
		{
			Name:        "Labuan Bajo Sailing",
			Description: "Live aboard 3 hari ke Pulau Komodo, Padar dan Pink Beach dengan kapal phinisi.",
			Location:    "Labuan Bajo, NTT",
			Price:       3250000,
			Duration:    "3 hari 2 malam",
			MaxPeople:   14,
			Status:      domain.PackageStatusActive,
		},
		{
			Name:        "Kawah Ijen Blue Fire",
			Description: "Pendakian tengah malam ke Kawah Ijen untuk menyaksikan api biru dan danau asam.",
			Location:    "Banyuwangi, Jawa Timur",
			Price:       650000,
			Duration:    "1 hari",
			MaxPeople:   15,
			Status:      domain.PackageStatusActive,
		},
		{
			Name:        "Toba Heritage Tour",
			Description: "Keliling Danau Toba dan Pulau Samosir, desa adat Batak dan air terjun Sipiso-piso.",
			Location:    "Danau Toba, Sumatera Utara",
			Price:       1750000,
			Duration:    "3 hari 2 malam",
			MaxPeople:   16,
			Status:      domain.PackageStatusInactive,
		},
	}

	for _, pkg := range packages {
		if err := repo.Create(context.Background(), &pkg); err != nil {
			log.Printf("Error creating %s: %v\n", pkg.Name, err)
		} else {
			fmt.Printf("Created: %s\n", pkg.Name)
		}
	}
	fmt.Println("Seeding Packages Complete.")
}
