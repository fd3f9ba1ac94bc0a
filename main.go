package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	cfg "github.com/bobokapi/MRPrimes/config"
	"github.com/bobokapi/MRPrimes/output"
	"github.com/bobokapi/MRPrimes/search"
	"github.com/bobokapi/MRPrimes/systeminfo"
	"github.com/bobokapi/MRPrimes/utils"

	"leb.io/hrff"
)

const versionString = "1.1.0"

func printVersion() {
	fmt.Printf("MRPrimes %s\n", versionString)
	fmt.Println("Generates large probable primes with a wheel sieve and the Miller-Rabin test.")
	fmt.Println("One worker searches per requested prime; a fixed seed reproduces the same primes.")
}

func main() {
	var (
		outputPath  string
		numPrimes   int
		digits      int
		rounds      int
		offsets     int
		seed        int64
		appendOut   bool
		pin         bool
		debugFlag   bool
		showInfo    bool
		showVersion bool
		showHelp    bool
		configPath  string
	)

	flag.StringVar(&outputPath, "output", "primes.txt", "Output file for discovered primes, one decimal integer per line")
	flag.IntVar(&numPrimes, "numprimes", 10, "Number of primes to generate (one worker per prime)")
	flag.IntVar(&digits, "digits", 300, "Number of decimal digits per prime (minimum 2)")
	flag.IntVar(&rounds, "rounds", 8, "Rounds of the Miller-Rabin test per candidate (1-199)")
	flag.IntVar(&offsets, "offsets", 10000, "Number of small offset primes in the wheel sieve")
	flag.Int64Var(&seed, "seed", time.Now().Unix(), "Random seed (the same seed finds the same primes)")
	flag.BoolVar(&appendOut, "append", false, "Append to the output file instead of truncating it")
	flag.BoolVar(&pin, "pin", false, "Pin each worker to a CPU core (may require root privileges)")
	flag.BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	flag.StringVar(&configPath, "config", "config.json", "Path to an optional JSON config file")
	flag.BoolVar(&showInfo, "info", false, "Print system resources available for the search and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version information and exit")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.Parse()

	if showVersion {
		printVersion()
		return
	}

	if showHelp {
		fmt.Println("MRPrimes - parallel probable prime generator")
		fmt.Println("Usage: mrprimes [options]")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		return
	}

	if showInfo {
		fmt.Println("=== System Resources Available for Prime Search ===")
		systeminfo.Collect(outputPath).Print()
		if numPrimes > runtime.NumCPU() {
			fmt.Printf("Note: %d workers on %d CPUs will time-share.\n", numPrimes, runtime.NumCPU())
		}
		return
	}

	// Values from the config file fill in flags the user left untouched;
	// explicit flags always win.
	if fileCfg, err := cfg.LoadConfig(configPath); err == nil {
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["output"] && fileCfg.Output != "" {
			outputPath = fileCfg.Output
		}
		if !set["numprimes"] && fileCfg.NumPrimes != 0 {
			numPrimes = fileCfg.NumPrimes
		}
		if !set["digits"] && fileCfg.Digits != 0 {
			digits = fileCfg.Digits
		}
		if !set["rounds"] && fileCfg.Rounds != 0 {
			rounds = fileCfg.Rounds
		}
		if !set["offsets"] && fileCfg.Offsets != 0 {
			offsets = fileCfg.Offsets
		}
		if !set["seed"] && fileCfg.Seed != 0 {
			seed = fileCfg.Seed
		}
		appendOut = appendOut || fileCfg.Append
		pin = pin || fileCfg.Pin
		debugFlag = debugFlag || fileCfg.Debug
	} else if !os.IsNotExist(err) {
		fmt.Printf("Failed to load %s, using default settings: %v\n", configPath, err)
	}

	configuration := cfg.Config{
		Output:    outputPath,
		NumPrimes: numPrimes,
		Digits:    digits,
		Rounds:    rounds,
		Offsets:   offsets,
		Seed:      seed,
		Append:    appendOut,
		Pin:       pin,
		Debug:     debugFlag,
	}
	if err := configuration.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sink, err := output.NewSink(configuration.Output, configuration.Append)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	utils.LogMessage(fmt.Sprintf("Starting search for %d primes of %d digits (rounds=%d, offsets=%d, seed=%d)...",
		numPrimes, digits, rounds, offsets, seed), true)
	utils.LogMessage(fmt.Sprintf("Debug mode: %v", debugFlag), debugFlag)

	stats := &cfg.SearchStats{}
	stop := make(chan struct{})

	progressTicker := time.NewTicker(30 * time.Second)
	go func() {
		for {
			select {
			case <-progressTicker.C:
				stats.Lock()
				found := stats.PrimesFound
				tested := stats.CandidatesTested
				stats.Unlock()
				utils.LogMessage(fmt.Sprintf("Progress update - primes: %d/%d, candidates tested: %s",
					found, numPrimes, utils.FormatCount(tested)), true)
			case <-stop:
				progressTicker.Stop()
				return
			}
		}
	}()

	startTime := time.Now()
	searchErr := search.Run(search.Config{
		NumPrimes: configuration.NumPrimes,
		Digits:    configuration.Digits,
		Rounds:    configuration.Rounds,
		WheelSize: configuration.Offsets,
		Seed:      configuration.Seed,
		Pin:       configuration.Pin,
		Debug:     configuration.Debug,
	}, sink, stats)
	close(stop)
	elapsedTime := time.Since(startTime)

	if searchErr != nil {
		utils.LogMessage(fmt.Sprintf("Search failed: %v", searchErr), true)
		os.Exit(1)
	}

	stats.Lock()
	tested := stats.CandidatesTested
	stats.Unlock()

	rate := hrff.Float64{V: float64(tested) / elapsedTime.Seconds(), U: "candidates/s"}
	utils.LogMessage(fmt.Sprintf("Execution time: %v | tested %s candidates (%h)",
		elapsedTime.Round(time.Millisecond), utils.FormatCount(tested), rate), true)
	utils.LogMessage(fmt.Sprintf("Wrote %d primes to %s", numPrimes, sink.Path()), true)
}
