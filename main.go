package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/alecthomas/kong"
)

var wg sync.WaitGroup

// build options that made it into this binary
var features []string

var cli struct {
	Config    string `help:"JSON settings file" type:"path"`
	Simulated bool   `help:"Use the terminal, keyboard and sound card instead of the board"`
	Hardware  bool   `help:"Use the board even when not running on ARM"`
	LogFile   string `help:"Rotating log file" type:"path"`
	Panel     bool   `help:"Serve the HTTP front panel"`
	Dump      bool   `help:"Print the settings and exit"`
}

func selectDisplay(settings configSettings) display {
	switch settings.GetString(sDisplay) {
	case "backpack":
		return &backpackDisplay{}
	case "terminal":
		return &termDisplay{}
	default:
		return &logDisplay{}
	}
}

func selectInputs(settings configSettings) inputs {
	var in inputs
	switch settings.GetString(sInputs) {
	case "rpio":
		in = &rpioInputs{}
	case "keyboard":
		in = &keyInputs{}
	case "http":
		return &httpPanel{base: &noInputs{}}
	default:
		in = &noInputs{}
	}
	if settings.GetBool(sPanel) {
		return &httpPanel{base: in}
	}
	return in
}

func selectSounds(settings configSettings) sounds {
	switch settings.GetString(sSound) {
	case "piezo":
		return &piezoSounds{}
	case "audio":
		return &realSounds{}
	default:
		return &noSounds{}
	}
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("rtcalarm"),
		kong.Description("Two digit clock with two alarms, set from the front panel switches"))

	simulated := isSimulated()
	if cli.Simulated {
		simulated = true
	}
	if cli.Hardware {
		simulated = false
	}

	settings, err := initSettings(cli.Config, simulated)
	ctx.FatalIfErrorf(err)
	if cli.LogFile != "" {
		settings.settings[sLogFile] = cli.LogFile
	}
	if cli.Panel {
		settings.settings[sPanel] = true
	}
	if cli.Dump {
		settings.Dump()
		return
	}

	// the terminal display owns stderr
	logFile, err := setupLogging(settings, settings.GetString(sDisplay) != "terminal")
	ctx.FatalIfErrorf(err)
	defer logFile.Close()

	log.Printf("starting rtcalarm, features: %s", strings.Join(features, ","))
	if settings.GetBool(sDebug) {
		settings.Dump()
	}

	rt := initRuntime(settings)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigs
		log.Printf("got %v, shutting down", s)
		requestQuit(rt)
	}()

	wg.Add(1)
	go runClock(rt)

	wg.Wait()
	log.Println("exiting")
}
