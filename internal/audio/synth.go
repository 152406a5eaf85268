package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"

	"tummo/internal/core/session"
)

const (
	sampleRate    = 44100
	rampLength    = sampleRate / 200 // 5 ms fade on both ends of a segment
	peakAmplitude = 0.6
)

// toneSegment is one continuous tone, optionally sweeping between two
// frequencies.
type toneSegment struct {
	startHz  float64
	endHz    float64
	duration time.Duration
}

// cueShapes maps every engine cue to its tone sequence. Inhale sweeps up,
// exhale sweeps down; the bells are short ascending figures; tick and
// countdown are plain beeps.
var cueShapes = map[session.Cue][]toneSegment{
	session.CueInhale: {
		{startHz: 330, endHz: 660, duration: 400 * time.Millisecond},
	},
	session.CueExhale: {
		{startHz: 660, endHz: 330, duration: 400 * time.Millisecond},
	},
	session.CueHoldStart: {
		{startHz: 523, endHz: 523, duration: 350 * time.Millisecond},
		{startHz: 392, endHz: 392, duration: 350 * time.Millisecond},
	},
	session.CueRecoveryIn: {
		{startHz: 392, endHz: 392, duration: 250 * time.Millisecond},
		{startHz: 523, endHz: 523, duration: 350 * time.Millisecond},
	},
	session.CueRoundComplete: {
		{startHz: 659, endHz: 659, duration: 200 * time.Millisecond},
		{startHz: 784, endHz: 784, duration: 300 * time.Millisecond},
	},
	session.CueSessionComplete: {
		{startHz: 523, endHz: 523, duration: 250 * time.Millisecond},
		{startHz: 659, endHz: 659, duration: 250 * time.Millisecond},
		{startHz: 784, endHz: 784, duration: 400 * time.Millisecond},
	},
	session.CueTick: {
		{startHz: 880, endHz: 880, duration: 120 * time.Millisecond},
	},
	session.CueCountdownBeep: {
		{startHz: 1047, endHz: 1047, duration: 150 * time.Millisecond},
	},
}

// renderCue builds a complete mono 16-bit WAV for the cue at the given
// volume.
func renderCue(cue session.Cue, volume float64) []byte {
	var samples []int16
	for _, segment := range cueShapes[cue] {
		samples = append(samples, renderSegment(segment, volume)...)
	}
	return encodeWAV(samples)
}

func renderSegment(segment toneSegment, volume float64) []int16 {
	count := int(float64(sampleRate) * segment.duration.Seconds())
	samples := make([]int16, count)
	amplitude := peakAmplitude * volume

	phase := 0.0
	for i := 0; i < count; i++ {
		progress := float64(i) / float64(count)
		frequency := segment.startHz + (segment.endHz-segment.startHz)*progress
		phase += 2 * math.Pi * frequency / sampleRate
		value := math.Sin(phase) * amplitude * envelope(i, count)
		samples[i] = int16(value * math.MaxInt16)
	}
	return samples
}

// envelope ramps a segment in and out so playback has no clicks.
func envelope(index, count int) float64 {
	ramp := rampLength
	if count < 2*ramp {
		ramp = count / 2
	}
	if ramp == 0 {
		return 1
	}
	if index < ramp {
		return float64(index) / float64(ramp)
	}
	if index >= count-ramp {
		return float64(count-index) / float64(ramp)
	}
	return 1
}

func encodeWAV(samples []int16) []byte {
	dataSize := len(samples) * 2
	buffer := &bytes.Buffer{}

	buffer.WriteString("RIFF")
	binary.Write(buffer, binary.LittleEndian, uint32(36+dataSize))
	buffer.WriteString("WAVE")

	buffer.WriteString("fmt ")
	binary.Write(buffer, binary.LittleEndian, uint32(16))
	binary.Write(buffer, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buffer, binary.LittleEndian, uint16(1)) // mono
	binary.Write(buffer, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buffer, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(buffer, binary.LittleEndian, uint16(2))
	binary.Write(buffer, binary.LittleEndian, uint16(16))

	buffer.WriteString("data")
	binary.Write(buffer, binary.LittleEndian, uint32(dataSize))
	binary.Write(buffer, binary.LittleEndian, samples)

	return buffer.Bytes()
}
