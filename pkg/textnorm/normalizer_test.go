package textnorm

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFrench(t *testing.T) *Normalizer {
	t.Helper()
	n, err := New("french")
	require.NoError(t, err)
	return n
}

func TestNormalize_Idempotent(t *testing.T) {
	n := newFrench(t)

	inputs := []string{
		"Quelle est ta couleur préférée ?",
		"J'aime beaucoup la musique, surtout le metal !",
		"Les chanteuses chantaient des chansons magnifiques.",
		"Est-ce que tu connais les nationalités européennes ?",
		"Combien font 6 fois 7 ? 42 !",
		"Aujourd'hui, je me sens vraiment très heureux",
		"",
		"???",
	}

	for _, in := range inputs {
		once := n.Normalize(in)
		twice := n.Normalize(once)
		assert.Equal(t, once, twice, "Normalize not idempotent for %q", in)
	}
}

func TestNormalize_NoAlphanumericTokens(t *testing.T) {
	n := newFrench(t)

	assert.Equal(t, "", n.Normalize("?! ... --- ,;"))
	assert.Equal(t, "", n.Normalize(""))
}

func TestNormalize_DropsStopWords(t *testing.T) {
	n := newFrench(t)

	out := n.Normalize("Quelle est ta couleur préférée ?")
	for _, tok := range strings.Fields(out) {
		assert.NotEqual(t, "est", tok)
		assert.NotEqual(t, "ta", tok)
	}
	assert.NotEmpty(t, out)
}

func TestNormalize_Stems(t *testing.T) {
	n := newFrench(t)

	// Plural and singular reduce to the same stem; articles are stop words.
	assert.Equal(t, n.Normalize("le chat"), n.Normalize("Les chats"))
	assert.Equal(t, "chat", n.Normalize("CHATS"))
}

func TestNormalize_SplitsElisions(t *testing.T) {
	n := newFrench(t)

	// "j'" and "l'" are elided stop words and must not leak into the output.
	out := n.Normalize("j'aime l'école")
	assert.Len(t, strings.Fields(out), 2)
	assert.Equal(t, n.Normalize("aime école"), out)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"quelle", "est", "ta", "couleur", "préférée"}, Tokenize("Quelle est ta couleur préférée ?"))
	assert.Equal(t, []string{"peut", "être", "42"}, Tokenize("Peut-être 42"))
	assert.Empty(t, Tokenize(" \t\n"))
}

func TestNew_UnsupportedLanguage(t *testing.T) {
	_, err := New("klingon")
	assert.Error(t, err)
	assert.False(t, Supported("klingon"))
	assert.True(t, Supported("french"))
}

func TestNormalize_English(t *testing.T) {
	n, err := New("english")
	require.NoError(t, err)

	out := n.Normalize("The cats are running")
	assert.Equal(t, out, n.Normalize(out))
	assert.NotContains(t, strings.Fields(out), "the")
}

func TestNormalizer_ConcurrentUse(t *testing.T) {
	n := newFrench(t)
	want := n.Normalize("Quelle est ta couleur préférée ?")

	var wg sync.WaitGroup
	got := make([]string, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = n.Normalize("Quelle est ta couleur préférée ?")
		}(i)
	}
	wg.Wait()

	for _, g := range got {
		assert.Equal(t, want, g)
	}
	assert.True(t, n.IsStopWord("est"))
}
