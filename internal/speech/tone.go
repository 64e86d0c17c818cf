package speech

import (
	"encoding/binary"
	"math"
	"time"
)

// Tone synthesizes a mono 16-bit little-endian sine burst at SampleRate.
// A short linear fade at both ends avoids clicks. volume is clamped to
// [0, 1].
func Tone(freq float64, d time.Duration, volume float64) []byte {
	volume = math.Max(0, math.Min(1, volume))

	n := int(int64(d) * SampleRate / int64(time.Second))
	if n <= 0 {
		return nil
	}
	fade := SampleRate / 200 // 5ms
	if fade > n/2 {
		fade = n / 2
	}

	pcm := make([]byte, n*2)
	for i := 0; i < n; i++ {
		amp := volume
		switch {
		case i < fade:
			amp *= float64(i) / float64(fade)
		case i >= n-fade:
			amp *= float64(n-1-i) / float64(fade)
		}
		v := amp * math.Sin(2*math.Pi*freq*float64(i)/SampleRate)
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(v*math.MaxInt16)))
	}
	return pcm
}
