package term

import "testing"

func TestTickStreamer_Length(t *testing.T) {
	s, err := tickStreamer()
	if err != nil {
		t.Fatalf("tickStreamer: %v", err)
	}
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			if smp[0] > 1 || smp[0] < -1 {
				t.Fatalf("sample %v out of range", smp)
			}
		}
		if !ok {
			break
		}
	}
	if want := sampleRate.N(tickDuration); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestClicker_NilIsSilent(t *testing.T) {
	var c *Clicker
	c.Play()
	c.Close()
}
