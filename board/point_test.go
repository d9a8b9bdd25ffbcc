package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointInBounds(t *testing.T) {
	require.True(t, Point{X: 0, Y: 0}.InBounds(20))
	require.True(t, Point{X: 19, Y: 19}.InBounds(20))
	require.False(t, Point{X: -1, Y: 5}.InBounds(20))
	require.False(t, Point{X: 5, Y: 20}.InBounds(20))
}

func TestPointManhattan(t *testing.T) {
	require.Equal(t, 2, Point{X: 5, Y: 4}.Manhattan(Point{X: 5, Y: 2}))
	require.Equal(t, 7, Point{X: 1, Y: 1}.Manhattan(Point{X: 4, Y: 5}))
}

func TestDirectionOpposes(t *testing.T) {
	require.True(t, Down.Opposes(Up))
	require.True(t, Right.Opposes(Left))
	require.False(t, Left.Opposes(Up))
	require.False(t, Up.Opposes(Up))
	require.False(t, Down.Opposes(Idle))
	require.Equal(t, "left", Left.String())
}
