package canvas

// dotBits maps a dot position inside a cell to its bit in the Unicode braille
// block, indexed as [row][column].
var dotBits = [DotsPerCellY][DotsPerCellX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// dots is one layer of cell masks.
type dots [][]uint8

func newDots(width, height int) dots {
	d := make(dots, height)
	for y := range d {
		d[y] = make([]uint8, width)
	}
	return d
}

func (d dots) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	row, col := y/DotsPerCellY, x/DotsPerCellX
	if row >= len(d) || col >= len(d[row]) {
		return
	}
	d[row][col] |= dotBits[y%DotsPerCellY][x%DotsPerCellX]
}

func (d dots) mask(col, row int) uint8 {
	if row < 0 || row >= len(d) || col < 0 || col >= len(d[row]) {
		return 0
	}
	return d[row][col]
}

func brailleRune(mask uint8) rune {
	return rune(brailleBase + int(mask))
}

// drawLine walks the integer points from (x0, y0) to (x1, y1) inclusive.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := -abs(y1-y0), sign(y1-y0)
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
