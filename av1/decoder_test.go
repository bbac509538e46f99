package av1

import "testing"

// buildTemporalUnit hand-assembles a minimal temporal unit: a sequence
// header OBU carrying the reduced_still_picture_header fixture also used by
// TestParseSequenceHeaderReducedStill, followed by a combined frame OBU
// (frame header + a single tile group) carrying the frame header fixture
// also used by TestParseFrameHeaderReducedStill.
func buildTemporalUnit() []byte {
	seqOBU := []byte{0x0a, 0x05, 0x18, 0x0c, 0xe6, 0x40, 0x00}

	tileBytes := make([]byte, 64)
	for i := range tileBytes {
		tileBytes[i] = byte(i*17 + 3)
	}
	frameHeaderBytes := []byte{0x16, 0x40, 0x00}
	payloadSize := len(frameHeaderBytes) + len(tileBytes) // 67, fits a one-byte leb128
	frameOBU := append([]byte{0x32, byte(payloadSize)}, frameHeaderBytes...)
	frameOBU = append(frameOBU, tileBytes...)

	return append(seqOBU, frameOBU...)
}

func TestDecoderPushTemporalUnitProducesOutput(t *testing.T) {
	d := NewDecoder(Settings{}, nil)
	if err := d.PushTemporalUnit(buildTemporalUnit()); err != nil {
		t.Fatalf("PushTemporalUnit: %v", err)
	}
	if err := d.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	pic, ok := <-d.Outputs()
	if !ok {
		t.Fatal("Outputs closed with no picture queued")
	}
	if pic.Width != 10 || pic.Height != 10 {
		t.Errorf("picture size = %dx%d, want 10x10", pic.Width, pic.Height)
	}
}

func TestDecoderPushTemporalUnitWithoutFrameIsANoop(t *testing.T) {
	d := NewDecoder(Settings{}, nil)
	seqOnly := []byte{0x0a, 0x05, 0x18, 0x0c, 0xe6, 0x40, 0x00}
	if err := d.PushTemporalUnit(seqOnly); err != nil {
		t.Fatalf("PushTemporalUnit: %v", err)
	}
	if err := d.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	select {
	case _, ok := <-d.Outputs():
		if ok {
			t.Fatal("expected no picture to have been queued")
		}
	default:
	}
}
