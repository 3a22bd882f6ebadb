package view

// ChromeRows is the fixed screen furniture around the content area: a
// three-line header, one blank line, and a three-line footer plus margins.
const ChromeRows = 9

// VisibleRows returns the content row budget for a terminal height.
func VisibleRows(height int) int {
	r := height - ChromeRows
	if r < 0 {
		return 0
	}
	return r
}

// MaxOffset is the largest scroll offset that still shows content.
func MaxOffset(totalLines, rows int) int {
	m := totalLines - rows
	if m < 0 {
		return 0
	}
	return m
}

// ViewerState is the single piece of mutable state the controller loop owns:
// the active slide and the scroll offset into its document.
type ViewerState struct {
	Slide       int
	TotalSlides int
	Offset      int
}

// NewViewerState starts at slide 1, offset 0.
func NewViewerState(totalSlides int) *ViewerState {
	if totalSlides < 1 {
		totalSlides = 1
	}
	return &ViewerState{Slide: MinSlide, TotalSlides: totalSlides}
}

// ScrollDown moves one line down, clamped to the document end.
func (s *ViewerState) ScrollDown(totalLines, rows int) {
	if s.Offset < MaxOffset(totalLines, rows) {
		s.Offset++
	}
}

// ScrollUp moves one line up, clamped to zero.
func (s *ViewerState) ScrollUp() {
	if s.Offset > 0 {
		s.Offset--
	}
}

// Top jumps to the first line.
func (s *ViewerState) Top() {
	s.Offset = 0
}

// Bottom jumps so the last line is visible.
func (s *ViewerState) Bottom(totalLines, rows int) {
	s.Offset = MaxOffset(totalLines, rows)
}

// Clamp re-fits the offset after the document or terminal changed size,
// preserving the reading position instead of resetting it.
func (s *ViewerState) Clamp(totalLines, rows int) {
	if max := MaxOffset(totalLines, rows); s.Offset > max {
		s.Offset = max
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}

// NextSlide advances to the next slide, resetting the offset. Reports whether
// the slide changed.
func (s *ViewerState) NextSlide() bool {
	if s.Slide >= s.TotalSlides {
		return false
	}
	s.Slide++
	s.Offset = 0
	return true
}

// PrevSlide moves to the previous slide, resetting the offset. Reports
// whether the slide changed.
func (s *ViewerState) PrevSlide() bool {
	if s.Slide <= MinSlide {
		return false
	}
	s.Slide--
	s.Offset = 0
	return true
}
