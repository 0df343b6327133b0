//go:build ignore

// Records a live meal plan from the recipe API into the fixture directory
// used in offline mode.
//
//	go run scripts/record_mealplan_fixture.go -timeframe weekly -calories 2000
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"storefront/internal/config"
	"storefront/internal/mealplan"
	"storefront/internal/model"
)

func main() {
	timeFrame := flag.String("timeframe", "daily", "daily or weekly")
	calories := flag.Int("calories", 2000, "target calories")
	diet := flag.String("diet", "", "optional diet filter")
	flag.Parse()

	tf := model.TimeFrame(*timeFrame)
	if !tf.Valid() {
		log.Fatalf("Invalid time frame %q", *timeFrame)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.MealAPI.APIKey == "" {
		log.Fatal("MEAL_API_KEY must be set to record fixtures")
	}
	logger := config.NewLogger(cfg.Logger)

	client := mealplan.NewClient(mealplan.ClientConfig{
		BaseURL: cfg.MealAPI.Host,
		APIKey:  cfg.MealAPI.APIKey,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	plan, err := client.Generate(ctx, *calories, tf, *diet)
	if err != nil {
		log.Fatalf("Failed to generate plan: %v", err)
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(cfg.MealAPI.FixtureDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode plan: %v", err)
	}

	path := filepath.Join(cfg.MealAPI.FixtureDir, mealplan.FixtureName(tf))
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	log.Printf("Wrote %d-day plan to %s", len(plan.Days()), path)
}
