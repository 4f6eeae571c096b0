package eventfft

import "testing"

func TestStimulusString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		s    Stimulus
		want string
	}{
		{NewStimulus(123, 456, On), "Stimulus(row: 123, col: 456, state: on)"},
		{NewStimulus(789, 101, Off), "Stimulus(row: 789, col: 101, state: off)"},
	}

	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestStimulusEqualityIgnoresState(t *testing.T) {
	t.Parallel()

	s1 := NewStimulus(123, 456, Off)
	s2 := NewStimulus(123, 456, Off)
	s3 := NewStimulus(123, 456, On)
	s4 := NewStimulus(123, 654, Off)

	if !s1.Equal(s2) {
		t.Error("identical stimuli should be equal")
	}
	if !s1.Equal(s3) {
		t.Error("equality must ignore state")
	}
	if s1.Equal(s4) {
		t.Error("stimuli at different columns must not be equal")
	}
}

func TestStimulusMutators(t *testing.T) {
	t.Parallel()

	s := NewStimulus(1, 2, Off)
	s.On()
	if s.State != On {
		t.Fatal("On() did not set state")
	}
	s.Off()
	if s.State != Off {
		t.Fatal("Off() did not clear state")
	}
	s.Set(On)
	if s.State != On {
		t.Fatal("Set(On) did not set state")
	}
	s.Toggle()
	if s.State != Off {
		t.Fatal("Toggle() did not flip state")
	}
}
