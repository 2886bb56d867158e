package audio

import (
	"io"
	"math"
	"sync/atomic"
)

// Output format: 44.1 kHz stereo float32 little-endian.
const (
	SampleRate    = 44100
	ChannelCount  = 2
	bytesPerFrame = 8
)

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat is a gentle saturator that keeps output inside [-1, 1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(frames int) []byte {
	return make([]byte, frames*bytesPerFrame)
}

// genEat renders the food cue: a short rising FM pop.
func genEat() []byte {
	n := int(0.09 * SampleRate)
	buf := makeBuf(n)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver renders the death cue: a staggered descending minor chord.
func genGameOver() []byte {
	n := int(0.75 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// Background loop: four chords, four beats each, at 120 bpm.
const (
	musicTempo         = 2.0 // beats per second
	musicBeatsPerChord = 4
)

var musicChords = [][]float64{
	{261.6, 329.6, 392.0}, // C
	{220.0, 261.6, 329.6}, // Am
	{174.6, 220.0, 261.6}, // F
	{196.0, 246.9, 293.7}, // G
}

// musicPhrase is the length of one pass through the progression in seconds.
var musicPhrase = float64(len(musicChords)*musicBeatsPerChord) / musicTempo

// musicReader streams the background loop. With looping off it stops at
// the end of the current phrase.
type musicReader struct {
	t    float64
	seed uint64
	loop atomic.Bool
}

func newMusicReader(loop bool) *musicReader {
	m := &musicReader{seed: 0x5eed}
	m.loop.Store(loop)
	return m
}

// done reports whether a non-looping stream has played out.
func (m *musicReader) done() bool {
	return !m.loop.Load() && m.t >= musicPhrase
}

func (m *musicReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	i := 0
	for ; i < frames; i++ {
		if m.done() {
			break
		}
		putStereoF32(p, i, softSat(m.sample()*0.6))
		m.t += 1.0 / SampleRate
	}
	if i == 0 {
		return 0, io.EOF
	}
	return i * bytesPerFrame, nil
}

// sample mixes one frame of the groove at time m.t.
func (m *musicReader) sample() float64 {
	beatF := m.t * musicTempo
	beat := int(beatF)
	beatPos := beatF - float64(beat)
	trig := beatPos / musicTempo
	chord := musicChords[(beat/musicBeatsPerChord)%len(musicChords)]

	s := fmPad(m.t, chord, 0.45) * 0.45
	s += fmBass(m.t, chord[0]/2, math.Exp(-trig*15)) * 0.9

	if beat%2 == 0 {
		s += kick(trig) * 0.9
	} else {
		s += snare(trig, &m.seed) * 0.8
	}

	hhTrig := math.Mod(m.t*musicTempo*2, 1.0) / (musicTempo * 2)
	s += hihat(hhTrig, &m.seed)

	arpStep := int(m.t*musicTempo*4) % len(chord)
	arpEnv := adsr(math.Mod(m.t*musicTempo*4, 1.0), 0.003, 0.22, 0.06, 0.10)
	s += fmArp(m.t, chord[arpStep]*2, arpEnv) * 0.7
	return s
}

func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.24
	return softSat(body + click)
}

func snare(trig float64, seed *uint64) float64 {
	if trig > 0.2 {
		return 0
	}
	env := math.Exp(-trig * 26.0)
	body := (math.Sin(2*math.Pi*188*trig)*0.24 + math.Sin(2*math.Pi*356*trig)*0.10) * env
	noise := (lcg(seed) - lcg(seed)*0.55) * env * 0.6
	return softSat(body + noise)
}

func hihat(trig float64, seed *uint64) float64 {
	if trig > 0.06 {
		return 0
	}
	metal := math.Sin(2*math.Pi*7300*trig) + math.Sin(2*math.Pi*9200*trig)*0.6
	s := (lcg(seed)*0.8 + metal*0.2) * math.Exp(-trig*42.0) * 0.07
	return softSat(s)
}

func fmBass(t, freq, env float64) float64 {
	b := fm(t, freq, 0.5, 1.25*env) * env * 0.48
	b += math.Sin(2*math.Pi*freq*t) * env * 0.26
	return softSat(b)
}

func fmPad(t float64, chord []float64, env float64) float64 {
	s := 0.0
	detunes := [3]float64{-0.003, 0.0, 0.004}
	for _, freq := range chord {
		for _, d := range detunes {
			s += fm(t, freq*(1+d), 1.45, 0.75*env) * 0.06
		}
	}
	return softSat(s)
}

func fmArp(t, freq, env float64) float64 {
	s := fm(t, freq, 2.0, 3.2*env) * env * 0.20
	s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
	return softSat(s)
}
