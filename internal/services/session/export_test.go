package session

// LockCount returns how many sessions currently have a lock entry.
func (s *Service) LockCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}
