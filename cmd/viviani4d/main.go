package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/viviani4d/internal/viviani4d"
)

func main() {
	viviani4d.Debug = os.Getenv("DEBUG") != ""
	viviani4d.SkipExact = os.Getenv("SKIP_EXACT") != ""
	viviani4d.PNG = os.Getenv("PNG") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := viviani4d.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		// os.Exit skips deferred calls
		if profile {
			pprof.StopCPUProfile()
		}
		os.Exit(1)
	}
}
