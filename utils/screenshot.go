package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-uncareers-harvester/internal/browser"
)

// ScreenshotDebugger handles debug screenshots
type ScreenShotDebugger struct {
	outputDir string
	now       func() time.Time
}

func NewScreenShotDebugger(dir string) *ScreenShotDebugger {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("⚠️ Failed to create screenshots directory: %v", err)
	}
	return &ScreenShotDebugger{
		outputDir: dir,
		now:       time.Now,
	}
}

func (s *ScreenShotDebugger) CaptureAndLog(page browser.Page, name, message string) error {
	timestamp := s.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", name, timestamp)
	path := filepath.Join(s.outputDir, filename)
	log.Printf("📸 %s", message)

	if err := page.Screenshot(path); err != nil {
		log.Printf("⚠️ Failed to capture screenshot: %v", err)
		return err
	}

	log.Printf("   Screenshot saved: %s", path)
	return nil
}
