package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
	"github.com/sirupsen/logrus"

	"github.com/peijunz-archive/btree/btree"
)

// Log is the logger rebalancing events are traced to.
var Log = logrus.New()

type Cli struct {
	scanner    *bufio.Scanner
	out        io.Writer
	tree       *btree.Tree[int]
	visualizer *btree.Visualizer[int]
	errorf     func(format string, a ...interface{}) string
	done       bool
}

func NewCli(s *bufio.Scanner, out io.Writer, t *btree.Tree[int], noColor bool) *Cli {
	v := &btree.Visualizer[int]{
		Tree:    t,
		NoColor: noColor,
	}
	red := color.New(color.FgRed)
	if noColor {
		red.DisableColor()
	}
	return &Cli{scanner: s, out: out, tree: t, visualizer: v, errorf: red.Sprintf}
}

// Trace logs every rebalancing step of the tree at debug level.
func (c *Cli) Trace() {
	c.tree.SetObserver(func(e btree.Event[int]) {
		Log.WithFields(logrus.Fields{
			"op":    e.Kind.String(),
			"pivot": e.Pivot,
			"depth": e.Depth,
		}).Debug("rebalance")
	})
}

func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		c.processInput(c.scanner.Text())
		if c.done {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprintln(c.out, `
B-Tree CLI

Available Commands:
  INSERT <key>... Insert integer keys into the B-Tree
  ERASE <key>...  Erase integer keys from the B-Tree
  HAS <key>       Report whether a key is stored
  DUMP            Print the tree structure
  STATS           Print size, depth and degree
  CHECK           Verify the tree invariants
  SEED <n>        Insert n random distinct keys
  DEMO            Insert 0..19, then erase the even keys
  CLEAR           Remove every key
  HELP            Print this message
  EXIT            Terminate this session`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

func (c *Cli) processInput(line string) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Fprintln(c.out, c.errorf("Unknown command %q", command))
	case "insert":
		c.processInsertCommand(fields[1:])
	case "erase":
		c.processEraseCommand(fields[1:])
	case "has":
		c.processHasCommand(fields[1:])
	case "dump":
		fmt.Fprint(c.out, c.visualizer.Visualize())
	case "stats":
		c.processStatsCommand()
	case "check":
		c.processCheckCommand()
	case "seed":
		c.processSeedCommand(fields[1:])
	case "demo":
		c.RunDemo()
	case "clear":
		c.tree.Clear()
	case "help":
		c.printHelp()
	case "exit":
		c.done = true
	}
}

func (c *Cli) parseKeys(args []string) ([]int, bool) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintln(c.out, c.errorf("Invalid key %q", arg))
			return nil, false
		}
		keys = append(keys, k)
	}
	return keys, true
}

func (c *Cli) processInsertCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: INSERT <key>...")
		return
	}
	keys, ok := c.parseKeys(args)
	if !ok {
		return
	}
	for _, k := range keys {
		c.tree.Insert(k)
	}
	fmt.Fprint(c.out, c.visualizer.Visualize())
}

func (c *Cli) processEraseCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: ERASE <key>...")
		return
	}
	keys, ok := c.parseKeys(args)
	if !ok {
		return
	}
	for _, k := range keys {
		if !c.tree.Erase(k) {
			fmt.Fprintf(c.out, "Key %d not found.\n", k)
		}
	}
	fmt.Fprint(c.out, c.visualizer.Visualize())
}

func (c *Cli) processHasCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: HAS <key>")
		return
	}
	keys, ok := c.parseKeys(args)
	if !ok {
		return
	}
	if c.tree.Has(keys[0]) {
		fmt.Fprintln(c.out, "true")
		return
	}
	fmt.Fprintln(c.out, "false")
}

func (c *Cli) processStatsCommand() {
	fmt.Fprintf(c.out, "size=%s depth=%d degree=%d\n",
		humanize.Comma(int64(c.tree.Size())), c.tree.Depth(), c.tree.Degree())
}

func (c *Cli) processCheckCommand() {
	if err := c.tree.Check(); err != nil {
		fmt.Fprintln(c.out, c.errorf("%v", err))
		return
	}
	fmt.Fprintln(c.out, "OK")
}

func (c *Cli) processSeedCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: SEED <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Fprintln(c.out, c.errorf("Invalid count %q", args[0]))
		return
	}
	if err := Seed(c.tree, n); err != nil {
		fmt.Fprintln(c.out, c.errorf("%v", err))
		return
	}
	fmt.Fprintf(c.out, "Seeded %s keys.\n", humanize.Comma(int64(n)))
}

// Seed inserts n distinct random keys drawn from [0, 10n).
func Seed(t *btree.Tree[int], n int) error {
	keys, err := faker.RandomInt(0, 10*n-1, n)
	if err != nil {
		return err
	}
	for _, k := range keys {
		t.Insert(k)
	}
	return nil
}

// RunDemo inserts 0..19, then erases every even key, printing the tree after
// each phase.
func (c *Cli) RunDemo() {
	for i := 0; i < 20; i++ {
		c.tree.Insert(i)
	}
	fmt.Fprint(c.out, c.visualizer.Visualize())
	for i := 0; i < 20; i += 2 {
		c.tree.Erase(i)
	}
	fmt.Fprint(c.out, c.visualizer.Visualize())
}
