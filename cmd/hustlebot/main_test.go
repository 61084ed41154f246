package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hustlebot/internal/reply"
	"hustlebot/internal/store"
)

type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func newTestGenerator(rng reply.Rand) (*reply.Generator, *store.MemoryStore) {
	st := store.NewMemoryStore(nil, nil, nil)
	return reply.NewGenerator(st, rng, nil, nil), st
}

func TestParseArgs_SayIsAMessageNotACommand(t *testing.T) {
	opts, err := parseArgs([]string{"--say", "exit"})
	require.NoError(t, err)
	assert.Equal(t, "exit", opts.message)
}

func TestParseArgs_BareWordsJoin(t *testing.T) {
	opts, err := parseArgs([]string{"got", "any", "business", "ideas"})
	require.NoError(t, err)
	assert.Equal(t, "got any business ideas", opts.message)
}

func TestParseArgs_SayMergesWithBareWords(t *testing.T) {
	opts, err := parseArgs([]string{"tell", "--say", "me", "a", "joke"})
	require.NoError(t, err)
	assert.Equal(t, "tell me a joke", opts.message)
}

func TestParseArgs_MissingValues(t *testing.T) {
	for _, args := range [][]string{
		{"--say"},
		{"--persist"},
		{"--history"},
	} {
		_, err := parseArgs(args)
		assert.Error(t, err, "args %v", args)
	}
}

func TestParseArgs_Persist(t *testing.T) {
	opts, err := parseArgs([]string{"--persist", "chat.json", "--say", "hello"})
	require.NoError(t, err)
	assert.Equal(t, "chat.json", opts.persist)
	assert.Equal(t, "hello", opts.message)
}

func TestParseArgs_History(t *testing.T) {
	opts, err := parseArgs([]string{"--history", "5"})
	require.NoError(t, err)
	assert.Equal(t, 5, opts.history)

	_, err = parseArgs([]string{"--history", "0"})
	assert.Error(t, err)
	_, err = parseArgs([]string{"--history", "several"})
	assert.Error(t, err)
}

func TestParseArgs_Help(t *testing.T) {
	opts, err := parseArgs([]string{"-h"})
	require.NoError(t, err)
	assert.True(t, opts.help)

	opts, err = parseArgs([]string{"--help"})
	require.NoError(t, err)
	assert.True(t, opts.help)
}

func TestIsExitWord(t *testing.T) {
	assert.True(t, isExitWord("exit"))
	assert.True(t, isExitWord("QUIT"))
	assert.True(t, isExitWord("Bye"))
	assert.False(t, isExitWord("exit now"))
	assert.False(t, isExitWord("goodbye"))
}

func TestRunOnce_PrintsIntentAndReply(t *testing.T) {
	gen, _ := newTestGenerator(&scriptedRand{floats: []float64{0.3}, ints: []int{0}})
	var out strings.Builder

	runOnce(&out, gen, "kay", "tell me a joke")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "intent: joke", lines[0])
	assert.Equal(t, reply.Defaults()["joke"][0], lines[1])
}

func TestRunOnce_TickerMessage(t *testing.T) {
	gen, _ := newTestGenerator(&scriptedRand{floats: []float64{0.99}})
	var out strings.Builder

	runOnce(&out, gen, "kay", "AAPL")

	assert.Contains(t, out.String(), "intent: stock")
	assert.Contains(t, out.String(), "I can check AAPL for you")
}

func TestRunREPL_ExitWord(t *testing.T) {
	gen, st := newTestGenerator(&scriptedRand{floats: []float64{0.3}, ints: []int{0}})
	in := strings.NewReader("hello\nexit\n")
	var out strings.Builder

	runREPL(in, &out, gen, "kay", "TestBot")

	s := out.String()
	assert.Contains(t, s, "Chat with TestBot!")
	assert.Contains(t, s, "TestBot: "+reply.Defaults()["greeting"][0])
	assert.Contains(t, s, "Catch you on the flip side")
	// Only the real exchange is logged; "exit" is a command here.
	assert.Len(t, st.Get("kay", 0), 2)
}

func TestRunREPL_EmptyLineEnds(t *testing.T) {
	gen, st := newTestGenerator(&scriptedRand{})
	in := strings.NewReader("\n")
	var out strings.Builder

	runREPL(in, &out, gen, "kay", "TestBot")

	assert.NotContains(t, out.String(), "Catch you on the flip side")
	assert.Empty(t, st.Get("kay", 0))
}

func TestRunREPL_EOFEnds(t *testing.T) {
	gen, st := newTestGenerator(&scriptedRand{floats: []float64{0.3}, ints: []int{0}})
	in := strings.NewReader("hello\n")
	var out strings.Builder

	runREPL(in, &out, gen, "kay", "TestBot")

	assert.Contains(t, out.String(), "TestBot: ")
	assert.Len(t, st.Get("kay", 0), 2)
}

func TestPrintHistory(t *testing.T) {
	st := store.NewMemoryStore(nil, nil, nil)
	st.Append("kay", store.RoleUser, "hello")
	st.Append("kay", store.RoleBot, "yo")

	var out strings.Builder
	printHistory(&out, st, "kay", 10)

	assert.Contains(t, out.String(), "user: hello")
	assert.Contains(t, out.String(), "bot: yo")
}

func TestPrintHistory_Empty(t *testing.T) {
	st := store.NewMemoryStore(nil, nil, nil)

	var out strings.Builder
	printHistory(&out, st, "kay", 10)

	assert.Equal(t, "No recorded turns yet.\n", out.String())
}
