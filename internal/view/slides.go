package view

// Slides groups dataset names by the slide they were assigned to. Slide
// numbers need not be contiguous; a gap still occupies its index, so Total is
// the highest assigned number.
type Slides struct {
	byNumber map[int][]string
	Total    int
}

// Organize groups the named datasets by their configured slide. Names follow
// classifier order within each slide. Datasets configured as skip, and
// datasets missing from configs, are left out. When configs is empty entirely,
// every dataset lands on slide 1 so nothing silently disappears.
func Organize(names []string, configs map[string]Config) Slides {
	s := Slides{byNumber: make(map[int][]string), Total: 1}

	if len(configs) == 0 {
		s.byNumber[MinSlide] = append([]string(nil), names...)
		return s
	}

	for _, name := range names {
		cfg, ok := configs[name]
		if !ok || cfg.Mode == ModeSkip {
			continue
		}
		n := cfg.SlideNumber()
		s.byNumber[n] = append(s.byNumber[n], name)
		if n > s.Total {
			s.Total = n
		}
	}
	return s
}

// Names returns the dataset names on a slide, in classifier order.
func (s Slides) Names(slide int) []string {
	return s.byNumber[slide]
}

// Count returns how many datasets a slide holds.
func (s Slides) Count(slide int) int {
	return len(s.byNumber[slide])
}
