// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta_test

import (
	"math"
	"testing"

	"carvel.dev/yamlformat/pkg/yamlmeta"
	"github.com/stretchr/testify/require"
)

func TestEqualIgnoresKeyOrder(t *testing.T) {
	a := yamlmeta.Mapping{
		{Key: "x", Value: yamlmeta.NewInt(1)},
		{Key: "y", Value: yamlmeta.Sequence{yamlmeta.NewString("a"), yamlmeta.Null{}}},
	}
	b := yamlmeta.Mapping{
		{Key: "y", Value: yamlmeta.Sequence{yamlmeta.NewString("a"), yamlmeta.Null{}}},
		{Key: "x", Value: yamlmeta.NewInt(1)},
	}
	require.True(t, yamlmeta.Equal(a, b))
}

func TestEqualSequenceOrderMatters(t *testing.T) {
	a := yamlmeta.Sequence{yamlmeta.NewInt(1), yamlmeta.NewInt(2)}
	b := yamlmeta.Sequence{yamlmeta.NewInt(2), yamlmeta.NewInt(1)}
	require.False(t, yamlmeta.Equal(a, b))
}

func TestEqualScalars(t *testing.T) {
	require.True(t, yamlmeta.Equal(yamlmeta.NewInt(1), yamlmeta.NewFloat(1.0)))
	require.True(t, yamlmeta.Equal(yamlmeta.NewFloat(math.NaN()), yamlmeta.NewFloat(math.NaN())))
	require.True(t, yamlmeta.Equal(nil, yamlmeta.Null{}))
	require.False(t, yamlmeta.Equal(yamlmeta.NewString("1"), yamlmeta.NewInt(1)))
	require.False(t, yamlmeta.Equal(yamlmeta.Bool(true), yamlmeta.Bool(false)))
	require.False(t, yamlmeta.Equal(
		yamlmeta.String{Value: "2001-12-14", Tag: "!!timestamp"},
		yamlmeta.NewString("2001-12-14")))
}

func TestEqualMappingDifferentKeys(t *testing.T) {
	a := yamlmeta.Mapping{{Key: "x", Value: yamlmeta.NewInt(1)}}
	b := yamlmeta.Mapping{{Key: "y", Value: yamlmeta.NewInt(1)}}
	require.False(t, yamlmeta.Equal(a, b))
	require.False(t, yamlmeta.Equal(a, yamlmeta.Mapping{}))
}

func TestEqualMappingKeyTags(t *testing.T) {
	intKey := yamlmeta.Mapping{{Key: "1", KeyTag: "!!int", Value: yamlmeta.NewString("a")}}
	strKey := yamlmeta.Mapping{{Key: "1", Value: yamlmeta.NewString("a")}}
	require.False(t, yamlmeta.Equal(intKey, strKey))
	require.False(t, yamlmeta.Equal(strKey, intKey))
	require.True(t, yamlmeta.Equal(intKey, yamlmeta.Mapping{{Key: "1", KeyTag: "!!int", Value: yamlmeta.NewString("a")}}))

	both := yamlmeta.Mapping{
		{Key: "1", KeyTag: "!!int", Value: yamlmeta.NewString("a")},
		{Key: "1", Value: yamlmeta.NewString("b")},
	}
	swapped := yamlmeta.Mapping{
		{Key: "1", Value: yamlmeta.NewString("a")},
		{Key: "1", KeyTag: "!!int", Value: yamlmeta.NewString("b")},
	}
	require.False(t, yamlmeta.Equal(both, swapped))
}
