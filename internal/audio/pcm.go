// Package audio implements microphone capture, PCM codec helpers and
// speaker playback for the speech features.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// SynthesisSampleRate is the sample rate of speech returned by the remote
// model (raw pcm16, mono).
const SynthesisSampleRate = 24000

// CaptureSampleRate is the microphone capture rate.
const CaptureSampleRate = 16000

// DecodePCM16 deinterleaves 16-bit little-endian signed PCM into
// per-channel samples normalized to [-1, 1) by dividing by 32768.
func DecodePCM16(raw []byte, channels int) ([][]float32, error) {
	if channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d", channels)
	}
	frameBytes := 2 * channels
	if len(raw)%frameBytes != 0 {
		return nil, fmt.Errorf("pcm length %d is not a multiple of frame size %d", len(raw), frameBytes)
	}

	frames := len(raw) / frameBytes
	out := make([][]float32, channels)
	for ch := range out {
		out[ch] = make([]float32, frames)
	}

	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			off := i*frameBytes + ch*2
			sample := int16(binary.LittleEndian.Uint16(raw[off : off+2]))
			out[ch][i] = float32(sample) / 32768
		}
	}
	return out, nil
}

// EncodePCM16 interleaves normalized per-channel samples back into 16-bit
// little-endian PCM, clamping out-of-range values.
func EncodePCM16(channels [][]float32) []byte {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil
	}
	frames := len(channels[0])
	out := make([]byte, frames*len(channels)*2)

	for i := 0; i < frames; i++ {
		for ch := range channels {
			v := channels[ch][i] * 32768
			if v > 32767 {
				v = 32767
			} else if v < -32768 {
				v = -32768
			}
			off := (i*len(channels) + ch) * 2
			binary.LittleEndian.PutUint16(out[off:off+2], uint16(int16(v)))
		}
	}
	return out
}

// int16ToBytes serializes capture samples as little-endian PCM.
func int16ToBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

// EncodeWAV wraps raw 16-bit PCM in a minimal RIFF/WAVE container so the
// payload can travel as a regular audio upload.
func EncodeWAV(pcm []byte, sampleRate, channels int) []byte {
	var buf bytes.Buffer
	dataLen := uint32(len(pcm))
	byteRate := uint32(sampleRate * channels * 2)
	blockAlign := uint16(channels * 2)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, byteRate)
	binary.Write(&buf, binary.LittleEndian, blockAlign)
	binary.Write(&buf, binary.LittleEndian, uint16(16)) // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataLen)
	buf.Write(pcm)

	return buf.Bytes()
}
