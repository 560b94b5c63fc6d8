// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt_test

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"carvel.dev/yamlformat/pkg/files"
	"carvel.dev/yamlformat/pkg/yamlfmt"
	"carvel.dev/yamlformat/pkg/yamlmeta"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// randomDocument is YAML text with full-line comments inserted
// before some of its data lines.
type randomDocument struct {
	Text         string
	CommentLines int
}

const randomScalarChars = "abcxyz019 -.:#'\""

func TestFormatProperties(t *testing.T) {
	fuzzDocs := fuzz.New().RandSource(getRandSource(t)).Funcs(fuzzRandomDocument)

	for i := 0; i < 200; i++ {
		var doc randomDocument
		fuzzDocs.Fuzz(&doc)

		t.Run(fmt.Sprintf("document %d", i), func(t *testing.T) {
			formatted := reformatText(t, doc.Text)

			t.Run("keeps document equivalent", func(t *testing.T) {
				original, err := yamlmeta.PlainUnmarshal([]byte(doc.Text))
				require.NoError(t, err)
				result, err := yamlmeta.PlainUnmarshal([]byte(formatted))
				require.NoError(t, err)
				require.True(t, yamlmeta.Equal(original, result), "original:\n%s\nformatted:\n%s", doc.Text, formatted)
				requireUniqueKeys(t, result)
			})

			t.Run("is idempotent", func(t *testing.T) {
				require.Equal(t, formatted, reformatText(t, formatted))
			})

			t.Run("keeps every comment line", func(t *testing.T) {
				require.Equal(t, doc.CommentLines, countCommentLines(formatted), "formatted:\n%s", formatted)
			})

			t.Run("indents by four spaces", func(t *testing.T) {
				for _, line := range strings.Split(strings.TrimSuffix(formatted, "\n"), "\n") {
					indent := len(line) - len(strings.TrimLeft(line, " "))
					require.Zero(t, indent%4, "line %q of:\n%s", line, formatted)
				}
			})
		})
	}
}

func TestCanonicalizeIndentsNestedCollections(t *testing.T) {
	cases := []struct {
		Text     string
		Expected string
	}{
		{"items:\n  - name: x\n    v: 1\n", "items:\n    -   name: x\n        v: 1\n"},
		{"- a: 1\n  b:\n    c: 2\n", "-   a: 1\n    b:\n        c: 2\n"},
		{"a: [[1, 2], [3]]\n", "a:\n    -   - 1\n        - 2\n    -   - 3\n"},
		{"- [a, {b: [c]}]\n", "-   - a\n    -   b:\n            - c\n"},
	}

	for _, tc := range cases {
		t.Run(tc.Text, func(t *testing.T) {
			canonical, err := yamlfmt.Canonicalize(tc.Text)
			require.NoError(t, err)
			require.Equal(t, tc.Expected, canonical)

			for _, line := range strings.Split(strings.TrimSuffix(canonical, "\n"), "\n") {
				require.Zero(t, (len(line)-len(strings.TrimLeft(line, " ")))%4, "line %q", line)
			}
		})
	}
}

func reformatText(t *testing.T, text string) string {
	canonical, err := yamlfmt.Canonicalize(text)
	require.NoError(t, err)

	result, err := yamlfmt.Reinsert(yamlfmt.NewDocumentFromText("random.yml", text, files.EncodingUTF8), canonical)
	require.NoError(t, err)
	return result
}

func fuzzRandomDocument(doc *randomDocument, c fuzz.Continue) {
	indents := []int{2, 4, 8}
	printer := yamlmeta.NewPrinterWithOpts(yamlmeta.PrinterOpts{Indent: indents[c.Intn(len(indents))]})

	text, err := printer.PrintStr(randomMapping(c, 0))
	if err != nil {
		panic(fmt.Sprintf("Printing random document: %s", err))
	}

	var lines []string
	doc.CommentLines = 0

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if c.Intn(3) == 0 {
			for j := c.Intn(2); j >= 0; j-- {
				lines = append(lines, strings.Repeat(" ", c.Intn(7))+"# "+randomScalar(c, "abc xyz"))
				doc.CommentLines++
			}
		}
		lines = append(lines, line)
	}

	doc.Text = strings.Join(lines, "\n") + "\n"
}

// randomMapping keeps strings on one line; collections nest in any
// combination (mappings in sequences, sequences in sequences).
func randomMapping(c fuzz.Continue, depth int) yamlmeta.Mapping {
	var result yamlmeta.Mapping
	seen := map[string]bool{}

	size := 1 + c.Intn(4)

	for len(result) < size {
		key := "k" + randomScalar(c, "abcxyz")
		if seen[key] {
			continue
		}
		seen[key] = true

		result = append(result, yamlmeta.MapItem{Key: key, Value: randomValue(c, depth)})
	}

	return result
}

func randomValue(c fuzz.Continue, depth int) yamlmeta.Value {
	if depth >= 3 {
		return randomScalarValue(c)
	}

	switch c.Intn(8) {
	case 0:
		return randomMapping(c, depth+1)
	case 1:
		return randomSequence(c, depth+1, randomScalarValue)
	case 2:
		return randomSequence(c, depth+1, func(c fuzz.Continue) yamlmeta.Value {
			return randomMapping(c, depth+1)
		})
	case 3:
		return randomSequence(c, depth+1, func(c fuzz.Continue) yamlmeta.Value {
			return randomValue(c, depth+1)
		})
	default:
		return randomScalarValue(c)
	}
}

func randomSequence(c fuzz.Continue, depth int, itemFunc func(fuzz.Continue) yamlmeta.Value) yamlmeta.Sequence {
	var seq yamlmeta.Sequence
	for j := c.Intn(3); j >= 0; j-- {
		seq = append(seq, itemFunc(c))
	}
	return seq
}

func randomScalarValue(c fuzz.Continue) yamlmeta.Value {
	switch c.Intn(5) {
	case 0:
		return yamlmeta.Null{}
	case 1:
		return yamlmeta.Bool(c.RandBool())
	case 2:
		return yamlmeta.NewInt(int64(c.Intn(2000) - 1000))
	case 3:
		return yamlmeta.NewFloat(float64(c.Intn(400)-200) / 4)
	default:
		return yamlmeta.NewString(randomScalar(c, randomScalarChars))
	}
}

func randomScalar(c fuzz.Continue, chars string) string {
	var sb strings.Builder
	for i := c.Intn(6); i >= 0; i-- {
		sb.WriteByte(chars[c.Intn(len(chars))])
	}
	return sb.String()
}

func countCommentLines(text string) int {
	var count int
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			count++
		}
	}
	return count
}

func requireUniqueKeys(t *testing.T, val yamlmeta.Value) {
	switch typedVal := val.(type) {
	case yamlmeta.Mapping:
		seen := map[[2]string]bool{}
		for _, item := range typedVal {
			key := [2]string{item.KeyTag, item.Key}
			require.False(t, seen[key], "duplicate key %q", item.Key)
			seen[key] = true
			requireUniqueKeys(t, item.Value)
		}
	case yamlmeta.Sequence:
		for _, item := range typedVal {
			requireUniqueKeys(t, item)
		}
	}
}

func getRandSource(t *testing.T) rand.Source {
	var seed int64
	if os.Getenv("YAMLFORMAT_SEED") == "" {
		seed = time.Now().UnixNano()
	} else {
		envSeed, err := strconv.Atoi(os.Getenv("YAMLFORMAT_SEED"))
		require.NoError(t, err)
		seed = int64(envSeed)
	}

	t.Logf("Seed used was: [%v]. To reproduce a failure, re-run the test with `export YAMLFORMAT_SEED=%v`", seed, seed)

	return rand.NewSource(seed)
}
