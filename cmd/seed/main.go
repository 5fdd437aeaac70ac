package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Tellwe/obedir-qr-codes/internal/config"
	"github.com/Tellwe/obedir-qr-codes/internal/model"
	"github.com/Tellwe/obedir-qr-codes/internal/passportapi"

	"github.com/joho/godotenv"
)

// seed creates sample passports through the passport API.
// Passports are read from -file when given, otherwise a built-in set is used.
func main() {
	_ = godotenv.Load()

	apiURL := flag.String("api", os.Getenv("PASSPORT_API_URL"), "passport API base URL")
	file := flag.String("file", "", "JSON file holding an array of passports")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	logger := config.NewLogger(config.LoggerConfig{Level: "info", Format: "console"})

	if *apiURL == "" {
		logger.Fatal().Msg("passport API URL is required (-api or PASSPORT_API_URL)")
	}

	passports, err := loadPassports(*file)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load passports")
	}

	client := passportapi.NewClient(*apiURL, *timeout, logger)
	ctx := context.Background()

	created := 0
	for _, p := range passports {
		id, err := client.Create(ctx, p)
		if err != nil {
			logger.Error().Err(err).Str("product_name", p.Name()).Msg("failed to create passport")
			continue
		}
		created++
		logger.Info().Str("passport_id", id).Str("product_name", p.Name()).Msg("passport created")
	}

	fmt.Printf("Created %d of %d passports\n", created, len(passports))
	if created < len(passports) {
		os.Exit(1)
	}
}

func loadPassports(path string) ([]model.Passport, error) {
	if path == "" {
		return samplePassports(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var passports []model.Passport
	if err := json.Unmarshal(data, &passports); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return passports, nil
}

func samplePassports() []model.Passport {
	forms := []model.PassportForm{
		{
			Name:                  "Merino Trail Jacket",
			SKU:                   "CLO-JKT-001",
			Batch:                 "B2025-03",
			Category:              "clothing",
			Description:           "Insulated hiking jacket made from merino wool and recycled polyester.",
			Color:                 "Forest green",
			Weight:                "0.65",
			Features:              "Windproof\nBreathable\nPackable hood",
			Component1:            "Shell",
			Material1:             "Recycled polyester",
			Supplier1:             "Nordic Textiles",
			Weight1:               "0.35",
			RecycledPercentage1:   "100",
			Component2:            "Insulation",
			Material2:             "Merino wool",
			Supplier2:             "Highland Wool",
			Weight2:               "0.30",
			Certifications:        "bluesign\nResponsible Wool Standard",
			ManufacturerName1:     "Baltic Garments",
			ManufacturerLocation1: "Tallinn, Estonia",
			ManufacturerRole1:     "Assembly",
			Process1:              "Cutting and sewing",
			ProcessLocation1:      "Tallinn, Estonia",
			PackagingComponent1:   "Hang tag",
			PackagingMaterial1:    "Recycled paper",
			CarbonFootprint:       "12 kg CO2e",
			WaterUsage:            "45 L",
			Recyclability:         "Mechanically recyclable",
			CareInstructions:      "Wash at 30°C\nDo not tumble dry",
			Repairability:         "High",
			SpareParts:            "Zippers and toggles available",
			RecyclingOptions:      "Return to any partner store",
			TakeBackPrograms:      "Obedir ReWear",
		},
		{
			Name:                    "Aluminium Desk Lamp",
			SKU:                     "ELE-LMP-014",
			Category:                "electronics",
			Description:             "Dimmable LED desk lamp with a replaceable light module.",
			SizeHeight:              "45",
			SizeWidth:               "15",
			SizeDepth:               "15",
			Weight:                  "1.2",
			Specifications:          "8 W LED\n2700-4000 K\nUSB-C power",
			Component1:              "Body",
			Material1:               "Aluminium",
			RecycledPercentage1:     "70",
			ManufacturerName1:       "Lumen Works",
			ManufacturerLocation1:   "Eindhoven, Netherlands",
			EnergyConsumption:       "8 W",
			Repairability:           "Modular, tool-free",
			DisassemblyInstructions: "Unscrew the base plate and unclip the LED module.",
		},
	}

	passports := make([]model.Passport, 0, len(forms))
	for i := range forms {
		passports = append(passports, forms[i].ToPassport())
	}
	return passports
}
