package main

import (
	"fmt"
	"go-uncareers-harvester/internal/config"
	"log"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Base URL: %s\n", cfg.BaseURL)
	fmt.Printf("   Browser: %s (headless=%t)\n", cfg.Browser, cfg.IsHeadless())
	fmt.Printf("   Fallback pages: %d, pager window: %d\n", cfg.FallbackPages, cfg.PaginationWindow)
	fmt.Printf("   Implicit wait: %v\n", cfg.ImplicitWait)
	fmt.Printf("   Navigation timeout: %v\n", cfg.NavigationTimeout)
	fmt.Printf("   Output: %s\n", cfg.OutputFile())
	fmt.Printf("   Telegram: %t\n", cfg.TelegramToken != "")
}
