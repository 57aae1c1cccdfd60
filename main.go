package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"warehouse-crawler/internal/ui"
)

func main() {
	seed := flag.Int64("seed", 0, "run seed (0 picks one from the clock)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	app, err := ui.New(*seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	app.Run()
}
