package confirm

import "testing"

func TestFlow(t *testing.T) {
	t.Run("idle by default", func(t *testing.T) {
		var f Flow

		if _, ok := f.Pending(); ok {
			t.Fatal("zero-value flow has a pending request")
		}

		if _, ok := f.Confirm(); ok {
			t.Fatal("confirmed without a request")
		}
	})

	t.Run("request then confirm", func(t *testing.T) {
		var f Flow

		f.Request(42)

		if target, ok := f.Pending(); !ok || target != 42 {
			t.Fatalf("pending = %v, %v", target, ok)
		}

		target, ok := f.Confirm()
		if !ok || target != 42 {
			t.Fatalf("confirm = %v, %v", target, ok)
		}

		// resolved: a second confirm must not re-fire
		if _, ok := f.Confirm(); ok {
			t.Fatal("confirm fired twice for one request")
		}
	})

	t.Run("request then cancel", func(t *testing.T) {
		var f Flow

		f.Request(42)
		f.Cancel()

		if _, ok := f.Pending(); ok {
			t.Fatal("cancel left a pending request")
		}

		if _, ok := f.Confirm(); ok {
			t.Fatal("confirm fired after cancel")
		}
	})

	t.Run("last request wins", func(t *testing.T) {
		var f Flow

		f.Request(1)
		f.Request(2)
		f.Request(AllTransactions)

		target, ok := f.Confirm()
		if !ok || target != AllTransactions {
			t.Fatalf("confirm = %v, %v", target, ok)
		}
	})
}
