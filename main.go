package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/peijunz-archive/btree/btree"
	"github.com/peijunz-archive/btree/cli"
)

var (
	degree, seedNumRecords           *int
	shouldSeed, shouldTrace, runDemo *bool
	noColor                          *bool
)

func main() {
	setupFlags()

	log := cli.Log
	if *noColor {
		color.NoColor = true
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}
	if *shouldTrace {
		log.SetLevel(logrus.DebugLevel)
	}

	tree, err := btree.New[int](*degree)
	if err != nil {
		log.Fatal(err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, os.Stdout, tree, *noColor)
	if *shouldTrace {
		demo.Trace()
	}

	if *shouldSeed {
		if err := cli.Seed(tree, *seedNumRecords); err != nil {
			log.Fatal(err)
		}
		log.WithFields(logrus.Fields{"records": *seedNumRecords}).Info("seeded tree")
	}

	if *runDemo {
		demo.RunDemo()
		return
	}
	demo.Start()
}

func setupFlags() {
	degree = flag.Int("degree", 4, "Branching factor of the tree, between 3 and 127.")
	shouldSeed = flag.Bool("seed", false, "Seed the tree with random keys created with go-faker.")
	seedNumRecords = flag.Int("records", 1000, "Amount of keys to seed the tree with upon startup.")
	shouldTrace = flag.Bool("trace", false, "Log every split, rotation and merge.")
	runDemo = flag.Bool("demo", false, "Insert 0..19, erase the even keys, print the tree and exit.")
	noColor = flag.Bool("no-color", false, "Disable colored output.")
	flag.Usage = func() {
		fmt.Println("\nB-Tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
