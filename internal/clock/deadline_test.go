package clock

import (
	"testing"
	"time"
)

func TestUnbounded_NeverExpires(t *testing.T) {
	d := Unbounded()
	if d.Expired() {
		t.Fatal("unbounded deadline must not expire")
	}
}

func TestAfter_ExpiresPastTTL(t *testing.T) {
	d := After(nil, 5*time.Millisecond)
	if d.Expired() {
		t.Fatal("deadline should not have expired yet")
	}
	time.Sleep(20 * time.Millisecond)
	if !d.Expired() {
		t.Fatal("deadline should have expired by now")
	}
}

func TestAfter_RemainingDecreases(t *testing.T) {
	d := After(nil, 50*time.Millisecond)
	r1 := d.Remaining()
	time.Sleep(5 * time.Millisecond)
	r2 := d.Remaining()
	if r2 >= r1 {
		t.Fatalf("expected remaining time to decrease, got %v then %v", r1, r2)
	}
}
