package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveKnownCity(t *testing.T) {
	require := require.New(t)

	coord, ok := Resolve("Hanoi")
	require.True(ok)
	require.Equal("Hà Nội", coord.Name)
	require.Equal(21.0285, coord.Lat)
	require.Equal(105.8542, coord.Lng)
}

func TestResolveNormalizesLabel(t *testing.T) {
	require := require.New(t)

	upper, ok := Resolve("HO CHI MINH CITY")
	require.True(ok)

	padded, ok2 := Resolve("  Ho Chi Minh City ")
	require.True(ok2)

	require.Equal(upper, padded)
	require.Equal("TP. Hồ Chí Minh", upper.Name)
}

func TestResolveUnknownCity(t *testing.T) {
	require := require.New(t)

	_, ok := Resolve("Bangkok")
	require.False(ok)

	_, ok = Resolve("")
	require.False(ok)
}
