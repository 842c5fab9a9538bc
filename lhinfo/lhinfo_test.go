// SPDX-License-Identifier: MIT

package lhinfo_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdfunc/lhinfo"
	"github.com/katalvlaran/pdfunc/uncertainty"
)

const ct10Info = `SetDesc: "CT10 NLO, 52 eigenvector members"
SetIndex: 10800
Authors: "Lai, Guzzi, Huston, Li, Nadolsky, Pumplin, Yuan"
Format: lhagrid1
DataVersion: 1
NumMembers: 53
Flavors: [-5, -4, -3, -2, -1, 1, 2, 3, 4, 5, 21]
OrderQCD: 1
ErrorType: hessian
ErrorConfLevel: 90
XMin: 1e-08
QMax: 100000
`

func TestRead_CT10Like(t *testing.T) {
	t.Parallel()

	info, err := lhinfo.Read(strings.NewReader(ct10Info))
	require.NoError(t, err)
	assert.Equal(t, 53, info.NumMembers)
	assert.Equal(t, "hessian", info.ErrorType)
	assert.Equal(t, 90.0, info.ErrorConfLevel)
	assert.Equal(t, 10800, info.SetIndex)

	set, err := info.NewSet(uncertainty.CentralAuto, uncertainty.IntervalGaussian)
	require.NoError(t, err)
	assert.Equal(t, 53, set.Size())
	assert.Equal(t, 26, set.NumEigen())
	assert.Equal(t, 90.0, set.ConfLevel())
}

func TestRead_MemberHeaderStopsAtSeparator(t *testing.T) {
	t.Parallel()

	src := "PdfType: central\nNumMembers: 101\nErrorType: Replicas+AS\n---\n1e-9 1e-8 1e-7\n1.0 2.0 3.0\n"
	info, err := lhinfo.Read(strings.NewReader(src))
	require.NoError(t, err)

	cfg, err := info.Config(uncertainty.CentralMedian, uncertainty.IntervalPercentile)
	require.NoError(t, err)
	assert.Equal(t, uncertainty.ReplicasAlphaS, cfg.ErrorType)
	assert.Zero(t, cfg.ConfLevel)
	assert.Equal(t, uncertainty.IntervalPercentile, cfg.Interval)
}

func TestRead_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":          "",
		"not yaml":       "NumMembers: [1, 2\n",
		"missing type":   "NumMembers: 5\n",
		"unknown type":   "NumMembers: 5\nErrorType: unc\n",
		"cl too high":    "NumMembers: 5\nErrorType: hessian\nErrorConfLevel: 120\n",
		"no members":     "NumMembers: 0\nErrorType: hessian\n",
		"negative index": "SetIndex: -1\nNumMembers: 5\nErrorType: hessian\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := lhinfo.Read(strings.NewReader(src))
			assert.ErrorIs(t, err, lhinfo.ErrInvalidInfo)
		})
	}
}

func TestNewSet_PropagatesEngineErrors(t *testing.T) {
	t.Parallel()

	info, err := lhinfo.Read(strings.NewReader("NumMembers: 4\nErrorType: hessian\n"))
	require.NoError(t, err)
	_, err = info.NewSet(uncertainty.CentralAuto, uncertainty.IntervalGaussian)
	assert.ErrorIs(t, err, uncertainty.ErrInvalidMemberCount)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "CT10nlo.info")
	require.NoError(t, os.WriteFile(path, []byte(ct10Info), 0o600))

	info, err := lhinfo.Load(path)
	require.NoError(t, err)
	assert.Contains(t, info.SetDesc, "CT10")

	_, err = lhinfo.Load(filepath.Join(t.TempDir(), "missing.info"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
