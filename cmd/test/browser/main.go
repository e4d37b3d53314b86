package main

import (
	"fmt"
	"go-uncareers-harvester/internal/browser"
	"go-uncareers-harvester/internal/config"
	"go-uncareers-harvester/internal/scraper/uncareers"
	"log"
)

func main() {
	fmt.Println("🌐 Testing Browser Manager...")

	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	//create playwright manager
	pm, err := browser.NewPlaywright(browser.Options{
		Browser:           cfg.Browser,
		Headless:          cfg.IsHeadless(),
		ImplicitWait:      cfg.ImplicitWait,
		NewTabTimeout:     cfg.NewTabTimeout,
		NavigationTimeout: cfg.NavigationTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer pm.Close()

	fmt.Println("✅ Playwright started")

	fmt.Printf("🔍 Counting result pages on %s...\n", cfg.BaseURL)
	pages := uncareers.CountPages(pm, cfg.BaseURL, cfg.ImplicitWait, cfg.FallbackPages)
	fmt.Printf("✅ Found %d pages\n", pages)
	fmt.Println("✨ Test complete!")
}
