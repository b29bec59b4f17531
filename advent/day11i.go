package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/advent/stones"
	"github.com/chzyer/readline"
)

func day11Interactive(args []string) {
	if len(args) != 0 {
		log.Fatal("usage: advent 11i")
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "stones> ",
		HistoryFile: filepath.Join(os.TempDir(), "advent11.txt"),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	// One Counter serves every line; transitions and counts carry over.
	c := stones.NewCounter()
	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return
		default:
			log.Println("Readline error:", err)
			continue
		}
		if err := evalLine(l.Stdout(), c, line); err != nil {
			log.Println(err)
		}
	}
}

// evalLine prints the totals for a row of stones typed at the prompt.
// Blank lines are ignored.
func evalLine(w io.Writer, c *stones.Counter, line string) error {
	row, err := stones.Parse(strings.NewReader(line))
	if err != nil {
		return err
	}
	if len(row) == 0 {
		return nil
	}
	return printTotals(w, c, row)
}
