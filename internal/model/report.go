package model

// LoadReport summarizes one pass of the image loader over a directory.
type LoadReport struct {
	Dir        Path
	Candidates int // entries with an image extension
	Loaded     int
	Failed     int
	Skipped    int // entries that were not eligible for decoding
}

// ComposeStats counts the outcome of every scatter iteration.
type ComposeStats struct {
	Attempted int
	Drawn     int
	Skipped   int // source image smaller than the fragment size
}

// Coverage returns the share of attempted iterations that drew a fragment.
func (s ComposeStats) Coverage() float64 {
	if s.Attempted == 0 {
		return 0
	}

	return float64(s.Drawn) / float64(s.Attempted)
}
