package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/cespare/advent/stones"
	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
	"github.com/kr/pretty"
)

func init() {
	register("11", "count stones after 25 and 75 blinks", day11)
	register("11i", "count stones for rows typed at a prompt", day11Interactive)
}

func day11(args []string) {
	fs := flag.NewFlagSet("11", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Log cache statistics to stderr")
	configFile := fs.String("config", "", "INI config file (default ~/.advent.ini)")
	profile := fs.String("fgprof", "", "Write a wall-clock profile (pprof format) to this file")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: advent 11 [flags] [inputfile]")
		fs.PrintDefaults()
	}
	fs.Parse(args)
	if fs.NArg() > 1 {
		fs.Usage()
		os.Exit(2)
	}

	conf, err := loadDayConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	input := conf.inputPath("11", fs.Arg(0))

	if *profile != "" {
		stop, err := startProfile(*profile)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := stop(); err != nil {
				log.Fatal(err)
			}
		}()
	}

	start := time.Now()
	row, err := readStones(input)
	if err != nil {
		log.Fatal(err)
	}
	c := stones.NewCounter()
	if err := printTotals(os.Stdout, c, row); err != nil {
		log.Fatal(err)
	}

	if *verbose {
		logStats(c.Stats(), len(row), time.Since(start))
	}
}

func loadDayConfig(name string) (*config, error) {
	if name != "" {
		return loadConfig(name, true)
	}
	return loadConfig(defaultConfigPath(), false)
}

func readStones(name string) ([]uint64, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	row, err := stones.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", name, err)
	}
	return row, nil
}

func startProfile(name string) (stop func() error, err error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

func logStats(st stones.Stats, numStones int, elapsed time.Duration) {
	log.Printf(
		"%s starting stones; swept %s stones into %s transitions; "+
			"memo: %s entries, %s hits, %s misses; took %s",
		humanize.Comma(int64(numStones)),
		humanize.Comma(int64(st.Visited)),
		humanize.Comma(int64(st.Transitions)),
		humanize.Comma(int64(st.MemoEntries)),
		humanize.Comma(int64(st.MemoHits)),
		humanize.Comma(int64(st.MemoMisses)),
		elapsed.Round(time.Microsecond),
	)
	log.Printf("%# v", pretty.Formatter(st))
}

// printTotals writes the two totals for row, one per line.
func printTotals(w io.Writer, c *stones.Counter, row []uint64) error {
	short, long, err := c.Solve(row)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d\n%d\n", short, long)
	return err
}
