package main

import (
	"flag"
	"log"

	"showbench/internal/awards"
	"showbench/internal/config"
	"showbench/internal/db"
	"showbench/internal/export"
)

// Offline awards export: writes the same workbook the admin endpoint serves,
// for tenants that want a scheduled dump without hitting the API.
func main() {
	tenant := flag.String("tenant", "", "tenant name (defaults to the configured default tenant)")
	eventID := flag.Uint("event", 0, "event id")
	outPath := flag.String("out", "awards.xlsx", "output file")
	flag.Parse()

	if *eventID == 0 {
		log.Fatal("event id is required")
	}
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()
	name := *tenant
	if name == "" {
		name = cfg.DefaultTenant
	}
	dsn, ok := cfg.Tenants[name]
	if !ok {
		log.Fatalf("tenant %s is not configured", name)
	}

	conn, err := db.Open(dsn, cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	var event db.Event
	if err := conn.First(&event, *eventID).Error; err != nil {
		log.Fatalf("event %d: %v", *eventID, err)
	}
	var categories []db.Category
	if err := conn.Where("event_id = ?", event.ID).Order("name").Find(&categories).Error; err != nil {
		log.Fatalf("load categories: %v", err)
	}
	var models []db.Model
	if err := conn.
		Joins("JOIN categories ON categories.id = models.category_id").
		Where("categories.event_id = ?", event.ID).
		Find(&models).Error; err != nil {
		log.Fatalf("load models: %v", err)
	}
	votes, err := db.VotesForEvent(conn, event.ID)
	if err != nil {
		log.Fatalf("load votes: %v", err)
	}

	modelRefs := make([]awards.ModelRef, 0, len(models))
	for _, model := range models {
		modelRefs = append(modelRefs, awards.ModelRef{ID: model.ID, Name: model.Name, CategoryID: model.CategoryID})
	}
	voteRefs := make([]awards.VoteRef, 0, len(votes))
	for _, vote := range votes {
		voteRefs = append(voteRefs, awards.VoteRef{
			ID: vote.ID, ModelID: vote.ModelID, JudgeID: vote.JudgeID,
			Rank: vote.Rank, CreatedAt: vote.CreatedAt,
		})
	}

	workbook, err := export.AwardsWorkbook(event, categories, awards.ComputeRanking(modelRefs, voteRefs))
	if err != nil {
		log.Fatalf("build workbook: %v", err)
	}
	if err := workbook.SaveAs(*outPath); err != nil {
		log.Fatalf("write workbook: %v", err)
	}
	log.Printf("wrote %s", *outPath)
}
