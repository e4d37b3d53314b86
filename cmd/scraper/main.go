package main

import (
	"context"
	"go-uncareers-harvester/internal/browser"
	"go-uncareers-harvester/internal/config"
	"go-uncareers-harvester/internal/export"
	"go-uncareers-harvester/internal/filter"
	"go-uncareers-harvester/internal/reporter"
	"go-uncareers-harvester/internal/scraper"
	"go-uncareers-harvester/internal/scraper/uncareers"
	"log"
	"os"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
	log.Println("🏁 Execution finished.")
}

func run() error {
	//load config
	path := config.DefaultPath
	if p := os.Getenv("UNCAREERS_CONFIG"); p != "" {
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	log.Printf("🔧 Config loaded. Base URL: %s", cfg.BaseURL)

	//optional telegram summary
	var tg *reporter.TelegramReporter
	if cfg.TelegramToken != "" {
		tg, err = reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Printf("⚠️ Telegram disabled: %v", err)
			tg = nil
		} else {
			log.Println("🤖 Telegram reporter initialized.")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout)
	defer cancel()

	log.Println("🚀 Starting UN Careers harvester...")

	//init playwright manager
	pwManager, err := browser.NewPlaywright(browser.Options{
		Browser:           cfg.Browser,
		Headless:          cfg.IsHeadless(),
		ImplicitWait:      cfg.ImplicitWait,
		NewTabTimeout:     cfg.NewTabTimeout,
		NavigationTimeout: cfg.NavigationTimeout,
	})
	if err != nil {
		return err
	}
	//close playwright manager when application stops
	defer pwManager.Close()

	var s scraper.Scraper = uncareers.NewUNCareersScraper(cfg, pwManager)

	log.Printf("\n▶️ Starting scraper: %s", s.Name())
	result, err := s.Scrape(ctx)
	if err != nil {
		if result == nil || len(result.Postings) == 0 {
			notifyError(tg, err)
			return err
		}
		//keep whatever was collected before the run stopped
		log.Printf("⚠️ Scraper %s stopped early: %v", s.Name(), err)
	}
	log.Printf("✅ Scraper %s finished. Found %d postings.", s.Name(), len(result.Postings))

	relevant := filter.Relevant(result.Postings)
	result.Summary.Kept = len(relevant)
	log.Printf("Filtered: %d/%d postings", len(relevant), len(result.Postings))

	out := cfg.OutputFile()
	if err := export.WriteCSV(out, relevant); err != nil {
		notifyError(tg, err)
		return err
	}
	log.Printf("📁 Results saved to %s", out)
	log.Printf("📊 Summary: %s", result.Summary)

	if tg != nil {
		if err := tg.SendSummary(s.Name(), result.Summary, out); err != nil {
			log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
		}
	}
	return nil
}

func notifyError(tg *reporter.TelegramReporter, err error) {
	if tg == nil {
		return
	}
	if sendErr := tg.SendError(err); sendErr != nil {
		log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
	}
}
