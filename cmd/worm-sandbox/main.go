// Command worm-sandbox drives a single worm in the terminal
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/worms/audio"
	"github.com/lixenwraith/worms/config"
)

var (
	configPath = flag.String("config", "", "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/worm-sandbox.log")
	muteFlag   = flag.Bool("mute", false, "Disable sound cues")
)

// audioConfig maps the loaded settings onto the audio package defaults
func audioConfig(cfg *config.Config, mute bool) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Audio.Enabled && !mute
	ac.MasterVolume = cfg.Audio.MasterVolume
	ac.SampleRate = cfg.Audio.SampleRate
	return ac
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	sound := audio.NewSoundManager(audioConfig(cfg, *muteFlag))
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the sandbox runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nworm-sandbox crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	sb, err := NewSandbox(screen, cfg, sound)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to spawn worm: %v\n", err)
		os.Exit(1)
	}

	log.Printf("sandbox started with %s", cfg.Spawn.Name)
	sb.run()
	screen.Fini()
}
