package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/worms/config"
)

// TestNetworkConfig verifies server settings and the address override carry over
func TestNetworkConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.ReadTimeout = 5 * time.Second
	cfg.Server.ReadLimit = 1024

	nc := networkConfig(cfg, "")
	if nc.Address != ":7777" || nc.ReadTimeout != 5*time.Second || nc.ReadLimit != 1024 {
		t.Errorf("Unexpected network config %+v", nc)
	}
	if nc.MaxSessions <= 0 || nc.MaxTrajectorySamples <= 0 {
		t.Errorf("Expected package defaults for unmapped fields, got %+v", nc)
	}

	if nc := networkConfig(cfg, "127.0.0.1:0"); nc.Address != "127.0.0.1:0" {
		t.Errorf("Expected address override, got %q", nc.Address)
	}
}

func TestSetupLogging_StderrByDefault(t *testing.T) {
	defer log.SetOutput(io.Discard)

	if logFile := setupLogging(false); logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if output := log.Writer(); output != os.Stderr {
		t.Errorf("Expected log output to be stderr, got %v", output)
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Println("Test log message")

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}
