// SPDX-License-Identifier: MIT

package table_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdfunc/internal/table"
	"github.com/katalvlaran/pdfunc/matrix"
)

func TestRead(t *testing.T) {
	t.Parallel()

	src := `# xg        xu
10.0   0.60

11.0   0.61
 9.0   0.59
# trailing comment
10.5   0.62
 9.5   0.58
`
	d, err := table.Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 5, d.Rows())
	assert.Equal(t, 2, d.Cols())

	xg, err := d.Column(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 11, 9, 10.5, 9.5}, xg)
}

func TestRead_Malformed(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":   "# nothing\n\n",
		"ragged":  "1 2\n3\n",
		"garbage": "1 two\n",
		"nan":     "1 NaN\n",
		"inf":     "+Inf 1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := table.Read(strings.NewReader(src))
			assert.ErrorIs(t, err, table.ErrMalformed)
		})
	}
}

func TestWriteRead(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFromRows([][]float64{{1.25, -3e-7}, {0.123456789, 42}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf, m))
	assert.Equal(t, "1.25000000e+00 -3.00000000e-07\n1.23456789e-01 4.20000000e+01\n", buf.String())

	back, err := table.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.Columns(), back.Columns())
}
