/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: word_test.go
Description: Unit tests for word and alphabet primitives. Covers word
construction, immutability of append and concat, prefix enumeration, and
alphabet indexing with canonical word keys.
*/

package words_test

import (
	"testing"

	"github.com/kleascm/akaylee-learner/pkg/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyWord(t *testing.T) {
	w := words.Empty[string]()
	assert.True(t, w.IsEmpty())
	assert.Equal(t, 0, w.Length())
	assert.Equal(t, "ε", w.String())
}

func TestFromSymbolAndAppend(t *testing.T) {
	w := words.FromSymbol("a")
	assert.Equal(t, 1, w.Length())
	assert.Equal(t, "a", w.At(0))

	longer := w.Append("b")
	assert.Equal(t, 2, longer.Length())
	assert.Equal(t, "b", longer.At(1))

	// The original word is untouched
	assert.Equal(t, 1, w.Length())
}

func TestAppendDoesNotAliasBackingStorage(t *testing.T) {
	base := words.FromSymbols("a", "b")
	first := base.Append("c")
	second := base.Append("d")

	assert.Equal(t, "c", first.At(2))
	assert.Equal(t, "d", second.At(2))
	assert.Equal(t, "ab", base.String())
}

func TestConcat(t *testing.T) {
	ab := words.FromSymbols("a", "b")
	cd := words.FromSymbols("c", "d")

	assert.Equal(t, "abcd", ab.Concat(cd).String())
	assert.True(t, ab.Concat(words.Empty[string]()).Equals(ab))
	assert.True(t, words.Empty[string]().Concat(cd).Equals(cd))
}

func TestPrefixes(t *testing.T) {
	w := words.FromSymbols("a", "b", "c")

	withEmpty := w.Prefixes(true)
	require.Len(t, withEmpty, 4)
	assert.True(t, withEmpty[0].IsEmpty())
	assert.Equal(t, "a", withEmpty[1].String())
	assert.Equal(t, "ab", withEmpty[2].String())
	assert.Equal(t, "abc", withEmpty[3].String())

	withoutEmpty := w.Prefixes(false)
	require.Len(t, withoutEmpty, 3)
	assert.Equal(t, "a", withoutEmpty[0].String())
	assert.Equal(t, "abc", withoutEmpty[2].String())
}

func TestPrefixesOfEmptyWord(t *testing.T) {
	assert.Empty(t, words.Empty[string]().Prefixes(false))
	require.Len(t, words.Empty[string]().Prefixes(true), 1)
}

func TestWordEquality(t *testing.T) {
	assert.True(t, words.FromSymbols("a", "b").Equals(words.FromSymbols("a", "b")))
	assert.False(t, words.FromSymbols("a", "b").Equals(words.FromSymbols("b", "a")))
	assert.False(t, words.FromSymbols("a").Equals(words.Empty[string]()))
}

func TestNewAlphabetValidation(t *testing.T) {
	_, err := words.NewAlphabet[string]()
	assert.Error(t, err)

	_, err = words.NewAlphabet("a", "b", "a")
	assert.Error(t, err)
}

func TestAlphabetIndexing(t *testing.T) {
	alphabet, err := words.NewAlphabet("a", "b", "c")
	require.NoError(t, err)

	assert.Equal(t, 3, alphabet.Size())
	assert.Equal(t, []string{"a", "b", "c"}, alphabet.Symbols())

	idx, ok := alphabet.IndexOf("b")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "c", alphabet.SymbolAt(2))

	_, ok = alphabet.IndexOf("z")
	assert.False(t, ok)
	assert.True(t, alphabet.Contains("a"))
	assert.False(t, alphabet.Contains("z"))
}

func TestAlphabetKeyOf(t *testing.T) {
	alphabet, err := words.NewAlphabet("a", "b")
	require.NoError(t, err)

	key, ok := alphabet.KeyOf(words.Empty[string]())
	require.True(t, ok)
	assert.Equal(t, "", key)

	abKey, ok := alphabet.KeyOf(words.FromSymbols("a", "b"))
	require.True(t, ok)
	baKey, ok2 := alphabet.KeyOf(words.FromSymbols("b", "a"))
	require.True(t, ok2)
	assert.NotEqual(t, abKey, baKey)

	_, ok = alphabet.KeyOf(words.FromSymbol("z"))
	assert.False(t, ok)
}

func TestAlphabetExtensions(t *testing.T) {
	alphabet, err := words.NewAlphabet("a", "b")
	require.NoError(t, err)

	extensions := alphabet.Extensions(words.FromSymbol("a"))
	require.Len(t, extensions, 2)
	assert.Equal(t, "aa", extensions[0].String())
	assert.Equal(t, "ab", extensions[1].String())
}
