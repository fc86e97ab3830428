package gild

import "testing"

// Run creates a session bound to the test's lifetime. When the test body
// finishes, the session is verified (or promoted when update mode is
// enabled) and any failure fails the test. When the test body has already
// failed, the staged output is discarded without verification so the
// original failure stays visible.
func Run(t *testing.T, goldenRoot string, opts ...Option) *Session {
	t.Helper()
	s, err := New(goldenRoot, opts...)
	if err != nil {
		t.Fatalf("failed to create golden session: %v", err)
	}
	t.Cleanup(func() {
		if t.Failed() {
			s.Abort()
			return
		}
		if err := s.Close(); err != nil {
			t.Errorf("golden session: %v", err)
		}
	})
	return s
}
