package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/SaltedPeanutButter/tilted"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		tree   bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&tree, "tree", false, "print parse trees before results")
	flag.Parse()

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			eval(arg, tree)
		}
		return
	}

	f, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		eval(line, tree)
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}

// eval parses and evaluates one expression, reporting parse errors without
// stopping the remaining inputs.
func eval(src string, tree bool) {
	n, err := tilted.ParseString(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	if tree {
		fmt.Println(n)
	}
	fmt.Println(n.Eval())
}

func infile(inname string) (io.Reader, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	return os.Open(inname)
}
