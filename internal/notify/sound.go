package notify

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/pomodoro/internal/engine"
)

// SoundOff disables the completion sound.
const SoundOff = "off"

const resampleQuality = 4

// Sound plays an audio file whenever a countdown reaches zero.
type Sound struct {
	Path string

	play func(ctx context.Context, s beep.Streamer, format beep.Format) error
}

// NewSound returns a Sound subscriber for the file at path.
func NewSound(path string) *Sound {
	return &Sound{
		Path: path,
		play: playOnSpeaker,
	}
}

func (s *Sound) Notify(ctx context.Context, ev engine.Event) error {
	if !ev.Occasion.PhaseCompleted() || s.Path == "" ||
		strings.EqualFold(s.Path, SoundOff) {
		return nil
	}

	stream, format, err := decodeSound(s.Path)
	if err != nil {
		return errPlaySound.Fmt(s.Path).Wrap(err)
	}

	defer stream.Close()

	err = s.play(ctx, stream, format)
	if err != nil {
		return errPlaySound.Fmt(s.Path).Wrap(err)
	}

	return nil
}

// decodeSound opens the file at path and decodes it according to its
// extension.
func decodeSound(path string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg", ".mp3", ".flac", ".wav":
	default:
		return nil, format, errInvalidSoundFormat
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, format, err
	}

	switch ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	}

	if err != nil {
		_ = f.Close()

		return nil, format, err
	}

	return stream, format, nil
}

// The speaker can only be initialised once per process, so every sound is
// resampled to the rate of the first one played.
var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

func playOnSpeaker(
	ctx context.Context,
	s beep.Streamer,
	format beep.Format,
) error {
	speakerOnce.Do(func() {
		bufferSize := 10

		speakerRate = format.SampleRate
		speakerErr = speaker.Init(
			speakerRate,
			speakerRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	if speakerErr != nil {
		return speakerErr
	}

	if format.SampleRate != speakerRate {
		s = beep.Resample(resampleQuality, format.SampleRate, speakerRate, s)
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
	case <-ctx.Done():
		speaker.Clear()

		return ctx.Err()
	}

	return nil
}
