package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"be04/models"
	"be04/pkg/ledger"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Prints a user's monthly spend roll-up, and optionally the per-category
// breakdown for one month (YYYY-MM).
func main() {
	username := flag.String("username", "", "username to report on")
	month := flag.String("month", "", "optional month (YYYY-MM) for a per-category breakdown")
	limit := flag.Int("limit", 12, "number of months to list")
	flag.Parse()
	if *username == "" {
		log.Fatal("--username is required")
	}

	_ = godotenv.Load()
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set in env")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}

	var user models.User
	if err := db.Where("username = ?", *username).First(&user).Error; err != nil {
		log.Fatalf("user not found: %v", err)
	}

	ctx := context.Background()
	reports, err := ledger.MonthlyReports(ctx, db, user.ID, 1, *limit)
	if err != nil {
		log.Fatalf("fetch reports: %v", err)
	}
	fmt.Printf("Monthly totals for user=%s:\n", user.Username)
	for _, r := range reports {
		fmt.Printf("  %04d-%02d total_spent=%s\n", r.Year, r.Month, r.TotalAmountSpent)
	}

	if *month != "" {
		t, err := time.Parse("2006-01", *month)
		if err != nil {
			log.Fatalf("invalid month format, expected YYYY-MM: %v", err)
		}
		p := ledger.ResolvePeriod(&t, time.Now())
		spend, err := ledger.CategorySpendByPeriod(ctx, db, user.ID, p)
		if err != nil {
			log.Fatalf("fetch category spend: %v", err)
		}
		fmt.Printf("Categories for %s:\n", *month)
		for _, s := range spend {
			fmt.Printf("  %s spent=%s ceiling=%s\n", s.CategoryName, s.TotalAmountSpent, s.CategoryBudget)
		}
	}
}
