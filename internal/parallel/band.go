package parallel

// DefaultBandHeight is the number of scanlines per band when the caller does
// not choose one.
const DefaultBandHeight = 32

// Band is an inclusive range of scanlines [Y0, Y1].
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of scanlines in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0 + 1
}

// SplitRows partitions the inclusive row range [y0, y1] into consecutive
// bands of at most height rows. The bands cover the range exactly once and
// are returned top to bottom. An empty range yields no bands; a height below
// one uses DefaultBandHeight.
func SplitRows(y0, y1, height int) []Band {
	if y1 < y0 {
		return nil
	}
	if height < 1 {
		height = DefaultBandHeight
	}

	bands := make([]Band, 0, (y1-y0)/height+1)
	for y := y0; y <= y1; y += height {
		bands = append(bands, Band{Y0: y, Y1: min(y+height-1, y1)})
	}
	return bands
}
