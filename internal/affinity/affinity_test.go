package affinity

import "testing"

func TestPinUnpinDoesNotPanic(t *testing.T) {
	_ = Pin(0)
	Unpin()
}
