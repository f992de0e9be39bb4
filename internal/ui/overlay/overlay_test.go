package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bgBlock(width, height int, fill string) string {
	line := strings.Repeat(fill, width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func TestPlace_Center(t *testing.T) {
	bg := bgBlock(10, 5, ".")
	out := Place(Config{Width: 10, Height: 5}, "XX", bg)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "....XX....", lines[2])
	assert.Equal(t, "..........", lines[0], "background preserved outside overlay")
}

func TestPlace_Bottom(t *testing.T) {
	bg := bgBlock(10, 5, ".")
	out := Place(Config{Width: 10, Height: 5, Position: Bottom, PadY: 1}, "XX", bg)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "....XX....", lines[3])
	assert.Equal(t, "..........", lines[4])
}

func TestPlace_PadsShortBackground(t *testing.T) {
	out := Place(Config{Width: 6, Height: 4}, "AB", "......")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  AB  ", lines[1])
}

func TestPlace_OversizedOverlayClampsToOrigin(t *testing.T) {
	bg := bgBlock(4, 2, ".")
	out := Place(Config{Width: 4, Height: 2}, "ABCDEFGH", bg)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "ABCDEFGH", lines[0])
}
