package speech

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

// Player plays PCM through the system audio device via oto. Playback is
// started and left running; a new sound cuts off the previous one.
type Player struct {
	ctx    *oto.Context
	log    *logger.Logger
	mu     sync.Mutex
	active *oto.Player
}

// NewPlayer initializes the system audio context. Returns an error if no
// audio device is available.
func NewPlayer(log *logger.Logger) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	log.Debug("audio player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Player{ctx: ctx, log: log}, nil
}

// PlayWAV starts playing a RIFF/WAV clip.
func (p *Player) PlayWAV(wav []byte) error {
	pcm, err := extractPCM(wav)
	if err != nil {
		return err
	}
	p.PlayPCM(pcm)
	return nil
}

// PlayPCM starts playing raw PCM in the player's format.
func (p *Player) PlayPCM(pcm []byte) {
	next := p.ctx.NewPlayer(bytes.NewReader(pcm))

	p.mu.Lock()
	prev := p.active
	p.active = next
	p.mu.Unlock()

	if prev != nil {
		prev.Pause()
		prev.Close()
	}
	next.Play()
	p.log.Debug("audio player: playing %d bytes of PCM", len(pcm))
}

// Stop interrupts the current sound, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	active := p.active
	p.active = nil
	p.mu.Unlock()

	if active != nil {
		active.Pause()
		active.Close()
	}
}

// extractPCM strips the WAV/RIFF header and returns the data chunk.
func extractPCM(wav []byte) ([]byte, error) {
	if len(wav) < 44 {
		return nil, errors.New("wav data too short")
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return nil, errors.New("not a valid WAV file")
	}

	pos := 12
	for pos+8 <= len(wav) {
		chunkID := string(wav[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(wav[pos+4 : pos+8]))

		if chunkID == "data" {
			start := pos + 8
			end := start + chunkSize
			if end > len(wav) {
				end = len(wav)
			}
			return wav[start:end], nil
		}

		pos += 8 + chunkSize
		// Chunks are word-aligned.
		if chunkSize%2 != 0 {
			pos++
		}
	}
	return nil, errors.New("data chunk not found in WAV")
}
