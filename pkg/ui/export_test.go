package ui

// Retained reports how many cleanups and pending timeouts the site holds.
func (s *Site) Retained() (cleanups, timeouts int) {
	return len(s.cleanups), len(s.timeouts)
}
