package audio

import (
	"encoding/binary"
	"testing"

	"tummo/internal/core/session"
)

func TestEveryCueHasAShape(t *testing.T) {
	t.Parallel()
	for _, cue := range session.Cues {
		if len(cueShapes[cue]) == 0 {
			t.Errorf("cue %s has no tone shape", cue)
		}
	}
}

func TestRenderCueProducesValidWAV(t *testing.T) {
	t.Parallel()
	for _, cue := range session.Cues {
		data := renderCue(cue, 0.8)
		if len(data) <= 44 {
			t.Fatalf("cue %s: WAV too small (%d bytes)", cue, len(data))
		}
		if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
			t.Fatalf("cue %s: missing RIFF/WAVE magic", cue)
		}
		if string(data[36:40]) != "data" {
			t.Fatalf("cue %s: missing data chunk", cue)
		}
		dataSize := binary.LittleEndian.Uint32(data[40:44])
		if int(dataSize) != len(data)-44 {
			t.Fatalf("cue %s: data chunk size %d, payload %d", cue, dataSize, len(data)-44)
		}
		riffSize := binary.LittleEndian.Uint32(data[4:8])
		if int(riffSize) != len(data)-8 {
			t.Fatalf("cue %s: RIFF size %d, file %d", cue, riffSize, len(data))
		}
	}
}

func TestVolumeScalesAmplitude(t *testing.T) {
	t.Parallel()
	loud := renderCue(session.CueInhale, 1)
	quiet := renderCue(session.CueInhale, 0.2)
	if peakSample(loud) <= peakSample(quiet) {
		t.Fatalf("expected louder render to have larger peak: %d vs %d", peakSample(loud), peakSample(quiet))
	}

	silent := renderCue(session.CueInhale, 0)
	if peak := peakSample(silent); peak != 0 {
		t.Fatalf("expected silence at volume 0, peak %d", peak)
	}
}

func TestEnvelopeRampsToZeroAtEdges(t *testing.T) {
	t.Parallel()
	count := sampleRate / 10
	if got := envelope(0, count); got != 0 {
		t.Fatalf("expected zero at segment start, got %v", got)
	}
	if got := envelope(count/2, count); got != 1 {
		t.Fatalf("expected full level mid-segment, got %v", got)
	}
	if got := envelope(count-1, count); got >= 0.01 {
		t.Fatalf("expected near-zero at segment end, got %v", got)
	}
}

func peakSample(wav []byte) int {
	peak := 0
	for i := 44; i+1 < len(wav); i += 2 {
		value := int(int16(binary.LittleEndian.Uint16(wav[i : i+2])))
		if value < 0 {
			value = -value
		}
		if value > peak {
			peak = value
		}
	}
	return peak
}
