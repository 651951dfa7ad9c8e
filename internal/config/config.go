package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	LogLevel         string
	ServerRunAddress string
	DatabaseURI      string
	RewardsCron      string
	BonusCardCost    int
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	LogLevel = os.Getenv("LOG_LEVEL")
	if LogLevel == "" {
		LogLevel = "info"
	}

	ServerRunAddress = os.Getenv("SERVER_RUN_ADDRESS")
	if ServerRunAddress == "" {
		ServerRunAddress = "0.0.0.0:8080"
	}

	DatabaseURI = os.Getenv("DATABASE_URI")
	if DatabaseURI == "" {
		DatabaseURI = "host=db user=postgres password=password dbname=rewards sslmode=disable"
	}

	// Empty disables the in-process schedule; the monthly job is then
	// reachable only through its HTTP endpoint.
	RewardsCron = os.Getenv("REWARDS_CRON")

	BonusCardCost = 100
	if costStr := os.Getenv("BONUS_CARD_COST"); costStr != "" {
		if cost, err := strconv.Atoi(costStr); err == nil && cost > 0 {
			BonusCardCost = cost
		}
	}
}
