package script

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jba/treemap/internal/logging"
)

func run(t *testing.T, src string) string {
	t.Helper()
	s, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = s.Run(&buf, logging.Discard())
	require.NoError(t, err)
	return buf.String()
}

func TestScenario(t *testing.T) {
	f, err := os.Open("testdata/scenario.yaml")
	require.NoError(t, err)
	defer f.Close()

	s, err := Load(f)
	require.NoError(t, err)
	assert.Equal(t, Numeric, s.Order)

	var buf bytes.Buffer
	m, err := s.Run(&buf, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, 6, m.Len())

	want := `inserted 50
inserted 30
inserted 70
inserted 20
inserted 40
inserted 60
inserted 80
duplicate 50.0
20=twenty
30=thirty
40=forty
50=fifty
60=sixty
70=seventy
80=eighty
removed 50
absent
20=twenty
30=thirty
40=forty
60=sixty
70=seventy
80=eighty
60=sixty
70=seventy
60=sixty
absent
20=twenty
missing 50
6
`
	assert.Equal(t, want, buf.String())
}

func TestLexicalOrder(t *testing.T) {
	got := run(t, `
ops:
  - {op: insert, key: "10", value: a}
  - {op: insert, key: "9", value: b}
  - {op: insert, key: "100", value: c}
  - {op: first}
  - {op: next}
  - {op: next}
  - {op: next}
`)
	assert.Equal(t, "inserted 10\ninserted 9\ninserted 100\n10=a\n100=c\n9=b\nabsent\n", got)
}

func TestSetOrder(t *testing.T) {
	s, err := Load(strings.NewReader(`
ops:
  - {op: insert, key: "10"}
  - {op: insert, key: "9"}
  - {op: walk}
`))
	require.NoError(t, err)
	assert.Equal(t, Lexical, s.Order)
	require.NoError(t, s.SetOrder(Numeric))

	var buf bytes.Buffer
	_, err = s.Run(&buf, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, "inserted 10\ninserted 9\n9=\n10=\n", buf.String())
}

func TestLoadErrors(t *testing.T) {
	for _, test := range []struct {
		name, src, want string
	}{
		{"bad yaml", "ops: [", "decoding script"},
		{"unknown field", "ops: []\ncolour: red", "decoding script"},
		{"unknown order", "order: random", `unknown order "random"`},
		{"unknown op", "ops: [{op: frobnicate}]", `op 1: unknown operation "frobnicate"`},
		{"missing key", "ops: [{op: insert}]", "op 1: insert needs a key"},
		{"extra key", `ops: [{op: walk, key: "1"}]`, "op 1: walk takes no key"},
		{"not a number", "order: numeric\nops: [{op: search, key: ten}]", `op 1: key "ten"`},
		{"nan", "order: numeric\nops: [{op: search, key: NaN}]", `op 1: key "NaN" is not ordered`},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(test.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestRunWriteError(t *testing.T) {
	s, err := Load(strings.NewReader("ops: [{op: len}]"))
	require.NoError(t, err)
	_, err = s.Run(failWriter{}, logging.Discard())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "op 1")
}
