package sequential_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/smallgrammar/grammar"
	"github.com/katalvlaran/smallgrammar/sequential"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomText(seed int64, n int, alphabet string) string {
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return sb.String()
}

func rulesOf(g *grammar.Grammar) []string {
	var out []string
	for _, r := range g.Rules() {
		out = append(out, r.ID.String()+"="+r.Value.String())
	}
	return out
}

// TestBuild_RepeatedCharacter traces the greedy choice on "aaaaaa":
// count(aaaa)=3 scores 9 and beats aaa (8) and aaaaa (8); the rest is "aa".
func TestBuild_RepeatedCharacter(t *testing.T) {
	g, err := sequential.Build("aaaaaa")
	require.NoError(t, err)
	assert.Equal(t, []string{"A0=aaaa", "A1=aa", "A2=A0A1"}, rulesOf(g))
	assert.Equal(t, 8, g.Size())

	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, grammar.ID(2), start)
}

// TestBuild_Reuse checks that a token chosen twice maps to one rule.
func TestBuild_Reuse(t *testing.T) {
	g, err := sequential.Build("abcabcabc", sequential.WithMaxLength(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A0=abc", "A1=A0A0A0"}, rulesOf(g))
	assert.Equal(t, 6, g.Size())
}

// TestBuild_DistinctCharacters compares both scoring formulas on an input
// without repeats.
func TestBuild_DistinctCharacters(t *testing.T) {
	// raw counts: every candidate occurs once, so the longest one wins
	g, err := sequential.Build("abcdef")
	require.NoError(t, err)
	assert.Equal(t, []string{"A0=abcde", "A1=f", "A2=A0A1"}, rulesOf(g))

	// repeats only: single characters everywhere, plus the glue rule
	g, err = sequential.Build("abcdef", sequential.WithScoring(sequential.Repeats))
	require.NoError(t, err)
	assert.Equal(t, []string{"A0=a", "A1=b", "A2=c", "A3=d", "A4=e", "A5=f", "A6=A0A1A2A3A4A5"}, rulesOf(g))
	assert.Equal(t, 12, g.Size())
}

// TestBuild_Degenerate covers the empty and one-character inputs.
func TestBuild_Degenerate(t *testing.T) {
	g, err := sequential.Build("")
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.Size())

	g, err = sequential.Build("k")
	require.NoError(t, err)
	assert.Equal(t, []string{"A0=k", "A1=A0"}, rulesOf(g))
}

// TestBuild_RoundTrip checks derivation, acyclicity and rule uniqueness.
func TestBuild_RoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		for _, sc := range []sequential.Scoring{sequential.RawCount, sequential.Repeats} {
			text := randomText(seed, 150, "abcd")
			g, err := sequential.Build(text, sequential.WithScoring(sc))
			require.NoError(t, err)

			s, err := g.Text()
			require.NoError(t, err)
			assert.Equal(t, text, s, "seed %d", seed)
			assert.NoError(t, g.Validate())

			seen := make(map[string]bool)
			for _, r := range g.Rules() {
				assert.False(t, seen[r.Value.Key()], "seed %d: duplicate %s", seed, r.Value)
				seen[r.Value.Key()] = true
			}
		}
	}
}

// TestWithMaxLength checks the length bound and its validation.
func TestWithMaxLength(t *testing.T) {
	g, err := sequential.Build(strings.Repeat("ab", 20), sequential.WithMaxLength(1))
	require.NoError(t, err)
	for _, r := range g.Rules()[:g.Len()-1] {
		assert.Len(t, r.Value, 1, "%s", r.ID)
	}
	assert.Panics(t, func() { sequential.WithMaxLength(0) })
}

// TestBuild_Cancelled checks that a cancelled context aborts the scan.
func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sequential.Build("abcabc", sequential.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
