package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/peijunz-archive/btree/btree"
)

func run(t *testing.T, input string) (*btree.Tree[int], string) {
	t.Helper()
	tree, err := btree.New[int](4)
	require.NoError(t, err)

	var out bytes.Buffer
	c := NewCli(bufio.NewScanner(strings.NewReader(input)), &out, tree, true)
	c.Start()
	return tree, out.String()
}

func TestInsertErase(t *testing.T) {
	tree, out := run(t, "insert 3 1 2\nerase 2 9\nhas 1\nhas 2\n")
	require.Equal(t, []int{1, 3}, tree.Keys())
	require.Contains(t, out, "BTree: depth=0, degree=4, size=3\n(1, 2, 3)\n")
	require.Contains(t, out, "Key 9 not found.")
	require.Contains(t, out, "> true\n> false\n")
}

func TestUsageAndErrors(t *testing.T) {
	tree, out := run(t, "insert\nerase\nhas\nseed\nseed -4\ninsert x\nfrobnicate\n")
	require.Zero(t, tree.Size())
	require.Contains(t, out, "Usage: INSERT <key>...")
	require.Contains(t, out, "Usage: ERASE <key>...")
	require.Contains(t, out, "Usage: HAS <key>")
	require.Contains(t, out, "Usage: SEED <n>")
	require.Contains(t, out, `Invalid count "-4"`)
	require.Contains(t, out, `Invalid key "x"`)
	require.Contains(t, out, `Unknown command "frobnicate"`)
}

func TestDemo(t *testing.T) {
	tree, out := run(t, "demo\ncheck\nstats\n")
	require.Equal(t, []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, tree.Keys())
	require.Contains(t, out, "(3, 7, 11) -> (1) (5) (9) (13, 15, 17)\n")
	require.Contains(t, out, "OK\n")
	require.Contains(t, out, "size=10 depth=")
}

func TestSeedAndClear(t *testing.T) {
	tree, out := run(t, "seed 1500\nstats\ncheck\n")
	require.Equal(t, 1500, tree.Size())
	require.Contains(t, out, "Seeded 1,500 keys.")
	require.Contains(t, out, "size=1,500 depth=")
	require.Contains(t, out, "OK\n")

	tree, _ = run(t, "seed 10\nclear\n")
	require.Zero(t, tree.Size())
}

func TestExitStopsReading(t *testing.T) {
	tree, _ := run(t, "insert 1\nexit\ninsert 2\n")
	require.Equal(t, []int{1}, tree.Keys())
}

func TestTrace(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	saved := Log
	Log = logger
	defer func() { Log = saved }()

	tree, err := btree.New[int](4)
	require.NoError(t, err)
	c := NewCli(bufio.NewScanner(strings.NewReader("insert 0 1 2 3\n")), &bytes.Buffer{}, tree, true)
	c.Trace()
	c.Start()

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, "split", entries[0].Data["op"])
	require.Equal(t, 1, entries[0].Data["pivot"])
	require.Equal(t, "grow", entries[1].Data["op"])
	require.Equal(t, 1, entries[1].Data["depth"])
}
