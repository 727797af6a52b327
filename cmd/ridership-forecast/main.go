package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	lib "github.com/theoremus-urban-solutions/ridership-forecast"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	input := flag.String("input", "", "batch CSV path (oneshot mode)")
	modelName := flag.String("model", "", "model name (overrides config default)")
	format := flag.String("format", "json", "json|csv")
	eventsPath := flag.String("events", "", "events/holidays CSV path (overrides config)")
	flag.Parse()

	lib.InitLogging()
	if err := lib.LoadAppConfig(); err != nil {
		panic(err)
	}
	if *eventsPath != "" {
		lib.Config.Data.EventsPath = *eventsPath
	}

	app, err := lib.NewApp(lib.Config)
	if err != nil {
		panic(err)
	}
	defer app.Close()

	switch *mode {
	case "serve":
		s := lib.StartServer(app)
		s.HandleGracefulShutdown()
	case "oneshot":
		if *input == "" {
			log.Fatal("oneshot mode requires -input")
		}
		buf, err := app.ForecastFile(*input, *modelName, *format)
		if err != nil {
			log.Fatalf("forecast failed: %v", err)
		}
		fmt.Println(string(buf))
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
}
