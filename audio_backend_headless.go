//go:build headless

// audio_backend_headless.go - no-op audio backend for headless builds (CI,
// automated testing)

package main

type OtoPlayer struct {
	started bool
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	return &OtoPlayer{}, nil
}

func (op *OtoPlayer) SetupPlayer(vac *VAC) {}

func (op *OtoPlayer) Start() { op.started = true }
func (op *OtoPlayer) Stop()  { op.started = false }
func (op *OtoPlayer) Close() { op.started = false }

func (op *OtoPlayer) IsStarted() bool { return op.started }
