//go:build !headless

// audio_backend_oto.go - oto v3 audio output, draining the VAC's latched
// audio registers

package main

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const audioSampleRate = 44100

// audioSource turns the VAC's AUDCx/AUDFx/AUDVx latches into a stream of
// float32 samples. The real chip drives each channel through a 4-bit or
// 5-bit polynomial counter selected by AUDC; reproducing that waveform
// shape is out of scope here (see spec section 1, Non-goals), so each
// enabled channel instead renders as a plain gated square wave at the
// frequency AUDF implies, which is enough to make program audio activity
// audible without pretending to reproduce the original timbre.
type audioSource struct {
	vac   atomic.Pointer[VAC]
	phase [2]float64
}

func (a *audioSource) Read(p []byte) (int, error) {
	vac := a.vac.Load()
	if vac == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	numSamples := len(p) / 4
	samples := make([]float32, numSamples)

	for ch := 0; ch < 2; ch++ {
		volReg := RegAUDV0 + ch
		freqReg := RegAUDF0 + ch
		vol := vac.writeRegs[volReg] & 0x0F
		if vol == 0 {
			continue
		}
		div := int(vac.writeRegs[freqReg]&0x1F) + 1
		freq := 30000.0 / float64(div)
		step := freq / audioSampleRate
		amplitude := float32(vol) / 15.0 / 2.0

		for i := 0; i < numSamples; i++ {
			a.phase[ch] += step
			if a.phase[ch] >= 1 {
				a.phase[ch] -= math.Floor(a.phase[ch])
			}
			v := float32(-amplitude)
			if a.phase[ch] < 0.5 {
				v = amplitude
			}
			samples[i] += v
		}
	}

	for i, s := range samples {
		bits := math.Float32bits(s)
		p[i*4+0] = byte(bits)
		p[i*4+1] = byte(bits >> 8)
		p[i*4+2] = byte(bits >> 16)
		p[i*4+3] = byte(bits >> 24)
	}
	return len(p), nil
}

// OtoPlayer owns the oto context and player, exposing the same
// setup/start/stop lifecycle regardless of host platform.
type OtoPlayer struct {
	ctx     *oto.Context
	player  *oto.Player
	source  *audioSource
	started bool
	mutex   sync.Mutex
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready
	return &OtoPlayer{ctx: ctx, source: &audioSource{}}, nil
}

// SetupPlayer wires the oto player to drain the given VAC. Called again
// whenever a new cartridge reset replaces the VAC instance.
func (op *OtoPlayer) SetupPlayer(vac *VAC) {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	op.source.vac.Store(vac)
	if op.player == nil {
		op.player = op.ctx.NewPlayer(op.source)
	}
}

func (op *OtoPlayer) Start() {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	if !op.started && op.player != nil {
		op.player.Play()
		op.started = true
	}
}

func (op *OtoPlayer) Stop() {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	if op.started && op.player != nil {
		op.player.Close()
		op.started = false
	}
}

func (op *OtoPlayer) Close() {
	op.Stop()
	op.mutex.Lock()
	defer op.mutex.Unlock()
	if op.player != nil {
		op.player.Close()
		op.player = nil
	}
}

func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}
