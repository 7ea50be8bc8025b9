package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/WebDrake/dxorshift"
	"github.com/WebDrake/dxorshift/logger"
)

var (
	version = "0.1.0"
	gitSHA  = ""
)

const usage = `randbench version: {{VERSION}} ({{GITSHA}})

Usage: randbench [-g generator] [options]

Options:
  -v               : display version
  -h               : display help, this screen
  -g generator     : generator to drive  (default: all)
                     [all,splitmix64,xoroshiro128,xorshift1024]
  -n count         : draws per generator  (default: 100000000)
  -s seed          : 64-bit seed  (default: 123456)
  -l level         : log level  (default: info) [debug,info,warn,silent]
  --json           : structured JSON output instead of console
  --jump           : apply one jump before timing, where supported
`

type config struct {
	Generator string
	Count     uint64
	Seed      uint64
	LogLevel  string
	JSON      bool
	Jump      bool
}

func parseFlags() config {
	conf := config{
		Generator: "all",
		Count:     100000000,
		Seed:      123456,
		LogLevel:  "info",
	}
	flag.Usage = func() {
		w := os.Stderr
		for _, arg := range os.Args {
			if arg == "-h" || arg == "--help" {
				w = os.Stdout
				break
			}
		}
		s := usage
		s = strings.Replace(s, "{{VERSION}}", version, -1)
		if gitSHA == "" {
			s = strings.Replace(s, " ({{GITSHA}})", "", -1)
		} else {
			s = strings.Replace(s, "{{GITSHA}}", gitSHA, -1)
		}
		w.Write([]byte(s))
		if w == os.Stdout {
			os.Exit(0)
		}
	}
	var vers bool
	flag.BoolVar(&vers, "v", false, "")
	flag.StringVar(&conf.Generator, "g", conf.Generator, "")
	flag.Uint64Var(&conf.Count, "n", conf.Count, "")
	flag.Uint64Var(&conf.Seed, "s", conf.Seed, "")
	flag.StringVar(&conf.LogLevel, "l", conf.LogLevel, "")
	flag.BoolVar(&conf.JSON, "json", conf.JSON, "")
	flag.BoolVar(&conf.Jump, "jump", conf.Jump, "")
	flag.Parse()
	if vers {
		fmt.Printf("randbench version %s\n", version)
		os.Exit(0)
	}
	return conf
}

// drive pulls count variates through the capability contract and returns
// the total elapsed time. The xor fold keeps the loop from being
// optimized away.
func drive(src dxorshift.Source, count uint64) (time.Duration, uint64) {
	var sink uint64
	start := time.Now()
	for i := uint64(0); i < count; i++ {
		sink ^= src.Front()
		src.Advance()
	}
	return time.Since(start), sink
}

func report(name string, count uint64, elapsed time.Duration, sink uint64) {
	nsop := float64(elapsed.Nanoseconds()) / float64(count)
	persec := float64(count) / elapsed.Seconds()
	logger.Info(
		"generator", name,
		"draws", count,
		elapsed,
		"ns/op", nsop,
		"draws/sec", persec,
		"checksum", sink,
		"benchmark complete",
	)
}

func run(name string, conf config) error {
	var src dxorshift.Source
	switch name {
	case "splitmix64":
		src = dxorshift.NewSplitMix64(conf.Seed)
	case "xoroshiro128":
		src = dxorshift.NewXoroshiro128(conf.Seed)
	case "xorshift1024":
		src = dxorshift.NewXorshift1024(conf.Seed)
	default:
		return fmt.Errorf("unknown generator '%s'", name)
	}

	ref, err := dxorshift.NewRef(src)
	if err != nil {
		return err
	}
	if conf.Jump {
		if !ref.Jump() {
			logger.Warn("generator", name,
				"no jump support, timing from the seeded state")
		}
	}

	elapsed, sink := drive(ref, conf.Count)
	report(name, conf.Count, elapsed, sink)
	return nil
}

func main() {
	conf := parseFlags()
	if conf.JSON {
		logger.SetJsonWriter()
	}
	if err := logger.SetLevel(conf.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -l: %s\n", conf.LogLevel)
		os.Exit(1)
	}

	names := []string{"splitmix64", "xoroshiro128", "xorshift1024"}
	if conf.Generator != "all" {
		names = []string{conf.Generator}
	}

	logger.Info(
		"version", version,
		"seed", conf.Seed,
		"draws", conf.Count,
		"starting randbench",
	)
	for _, name := range names {
		if err := run(name, conf); err != nil {
			logger.Fatal(err)
		}
	}
}
