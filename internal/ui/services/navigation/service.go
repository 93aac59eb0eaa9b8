package navigation

// Service moves a highlight through the recent searches list
type Service struct {
	state *State
}

// NewService creates a service with nothing highlighted
func NewService() *Service {
	return &Service{
		state: &State{Cursor: -1},
	}
}

// SetItems replaces the list, most recent first. The highlight is kept on
// the same term if it is still present.
func (s *Service) SetItems(items []string) {
	current, ok := s.Selected()
	s.state.Items = append([]string(nil), items...)
	s.state.Cursor = -1
	if !ok {
		return
	}
	for i, item := range s.state.Items {
		if item == current {
			s.state.Cursor = i
			return
		}
	}
}

// Items returns the list
func (s *Service) Items() []string {
	return s.state.Items
}

// GetCursor returns the highlighted index, or -1
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// Navigate moves the highlight one step, wrapping at both ends
func (s *Service) Navigate(direction Direction) {
	n := len(s.state.Items)
	if n == 0 {
		s.state.Cursor = -1
		return
	}

	switch direction {
	case DirectionOlder:
		s.state.Cursor = (s.state.Cursor + 1) % n
	case DirectionNewer:
		if s.state.Cursor <= 0 {
			s.state.Cursor = n - 1
		} else {
			s.state.Cursor--
		}
	}
}

// Next highlights the next older entry
func (s *Service) Next() (string, bool) {
	s.Navigate(DirectionOlder)
	return s.Selected()
}

// Prev highlights the next newer entry
func (s *Service) Prev() (string, bool) {
	s.Navigate(DirectionNewer)
	return s.Selected()
}

// Selected returns the highlighted term
func (s *Service) Selected() (string, bool) {
	if s.state.Cursor < 0 || s.state.Cursor >= len(s.state.Items) {
		return "", false
	}
	return s.state.Items[s.state.Cursor], true
}

// Reset clears the highlight
func (s *Service) Reset() {
	s.state.Cursor = -1
}
