// Command validate-config checks that the environment holds everything
// the bot needs before it is started.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/vorathons/memory-mate/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	if _, err := time.LoadLocation(cfg.Reminder.Timezone); err != nil {
		fmt.Fprintf(os.Stderr, "❌ unknown REMINDER_TIMEZONE %q\n", cfg.Reminder.Timezone)
		os.Exit(1)
	}

	fmt.Println("✅ configuration is valid")
	fmt.Printf("   AI provider: %s\n", cfg.AIProvider)
	fmt.Printf("   Reminder timezone: %s\n", cfg.Reminder.Timezone)
}
