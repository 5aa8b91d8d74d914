package branch

import "testing"

func TestPredictAlwaysNotTaken(t *testing.T) {
	p := New()
	for _, pc := range []int{0, 1, 100} {
		if p.Predict(pc) {
			t.Fatalf("Predict(%d) = true, want false", pc)
		}
	}
}

func TestUpdateDoesNotChangePredictions(t *testing.T) {
	p := New()
	p.Update(5, true)
	p.Update(5, true)
	if p.Predict(5) {
		t.Fatal("Update should not change an always-not-taken prediction")
	}
}
