package eventfft

import "testing"

func TestStimuliFilter(t *testing.T) {
	t.Parallel()

	ss := Stimuli{
		NewStimulus(23, 45, Off),
		NewStimulus(23, 45, Off),
		NewStimulus(14, 45, Off),
		NewStimulus(23, 33, Off),
		NewStimulus(231, 451, On),
		NewStimulus(231, 451, Off),
		NewStimulus(141, 451, On),
		NewStimulus(231, 331, Off),
	}

	if len(ss) != 8 {
		t.Fatalf("setup: want 8 stimuli, got %d", len(ss))
	}

	filtered := ss.Filter()
	if len(filtered) != 6 {
		t.Fatalf("Filter() left %d stimuli, want 6", len(filtered))
	}

	found := false
	for _, s := range filtered {
		if s.Row == 231 && s.Col == 451 {
			found = true
			if s.State != On {
				t.Error("(231, 451) should survive as On (on dominates)")
			}
		}
	}
	if !found {
		t.Fatal("(231, 451) should survive Filter")
	}
}

func TestStimuliBulkState(t *testing.T) {
	t.Parallel()

	ss := Stimuli{
		NewStimulus(231, 451, On),
		NewStimulus(231, 451, Off),
		NewStimulus(141, 451, On),
		NewStimulus(231, 331, Off),
	}

	ss.Set(On)
	for _, s := range ss {
		if s.State != On {
			t.Fatal("Set(On) did not apply to every stimulus")
		}
	}

	ss.Set(Off)
	for _, s := range ss {
		if s.State != Off {
			t.Fatal("Set(Off) did not apply to every stimulus")
		}
	}

	ss.Toggle()
	for _, s := range ss {
		if s.State != On {
			t.Fatal("Toggle() did not flip every stimulus")
		}
	}
}
