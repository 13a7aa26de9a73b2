// Package audio plays the adhan cue associated with a prayer.
package audio

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/julianstephens/adhanclock/internal/config"
	"github.com/julianstephens/adhanclock/internal/constants"
	apperrors "github.com/julianstephens/adhanclock/internal/errors"
	"github.com/julianstephens/adhanclock/internal/logger"
	"github.com/julianstephens/adhanclock/internal/models"
)

// Player plays the cue for a prayer. Errors wrap errors.ErrAssetLoad.
type Player interface {
	Play(name models.PrayerName) error
}

// New returns the speaker player, or a LogPlayer when muted.
func New(cfg config.Config) Player {
	if cfg.Audio.Muted {
		return NewLogPlayer(cfg)
	}
	return NewSpeakerPlayer(cfg)
}

// ResolveCue returns the cue path for name, checking that the file exists.
func ResolveCue(cfg config.Config, name models.PrayerName) (string, error) {
	path, ok := cfg.CueFile(name)
	if !ok {
		return "", fmt.Errorf("no cue configured for %s: %w", name, apperrors.ErrAssetLoad)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("cue for %s: %v: %w", name, err, apperrors.ErrAssetLoad)
	}
	return path, nil
}

// SpeakerPlayer decodes mp3 or wav cues and plays them on the default audio
// device. A new cue replaces one still playing.
type SpeakerPlayer struct {
	cfg        config.Config
	sampleRate beep.SampleRate

	mu          sync.Mutex
	initialized bool
	done        chan struct{}
}

// NewSpeakerPlayer returns a player for cfg. The audio device is opened on the
// first successful decode.
func NewSpeakerPlayer(cfg config.Config) *SpeakerPlayer {
	return &SpeakerPlayer{
		cfg:        cfg,
		sampleRate: beep.SampleRate(constants.SpeakerSampleRate),
	}
}

// Play starts the cue for name and returns without waiting for it to finish.
func (p *SpeakerPlayer) Play(name models.PrayerName) error {
	path, err := ResolveCue(p.cfg, name)
	if err != nil {
		return err
	}
	return p.PlayFile(path)
}

// PlayFile starts playing the audio file at path.
func (p *SpeakerPlayer) PlayFile(path string) error {
	logger.Debug("Loading cue", "path", path)
	streamer, format, err := decode(path)
	if err != nil {
		return fmt.Errorf("decode %s: %v: %w", filepath.Base(path), err, apperrors.ErrAssetLoad)
	}

	if err := p.ensureSpeaker(); err != nil {
		streamer.Close()
		return fmt.Errorf("open audio device: %v: %w", err, apperrors.ErrAssetLoad)
	}

	var s beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		s = beep.Resample(constants.ResampleQuality, format.SampleRate, p.sampleRate, s)
	}
	s = withVolume(s, p.cfg.Audio.Volume)

	done := make(chan struct{})
	p.mu.Lock()
	p.done = done
	p.mu.Unlock()

	speaker.Clear()
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		streamer.Close()
		close(done)
	})))
	logger.Info("Started cue", "path", path)
	return nil
}

// Wait blocks until the most recent cue finishes or ctx is done.
func (p *SpeakerPlayer) Wait(ctx context.Context) error {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases the audio device.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Clear()
		speaker.Close()
		p.initialized = false
	}
}

func (p *SpeakerPlayer) ensureSpeaker() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Probe checks that the cue at path exists and decodes without opening the
// audio device.
func Probe(path string) error {
	s, _, err := decode(path)
	if err != nil {
		return fmt.Errorf("decode %s: %v: %w", filepath.Base(path), err, apperrors.ErrAssetLoad)
	}
	return s.Close()
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, format, err = mp3.Decode(f)
	case ".wav":
		s, format, err = wav.Decode(f)
	default:
		err = fmt.Errorf("unsupported audio format %q", ext)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, err
	}
	return s, format, nil
}

// withVolume scales s by a linear gain in [0, 1].
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain >= 1 {
		return s
	}
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// LogPlayer records cues in the log instead of playing them. It still reports
// missing assets.
type LogPlayer struct {
	cfg    config.Config
	mu     sync.Mutex
	played []models.PrayerName
}

// NewLogPlayer returns a player that only logs.
func NewLogPlayer(cfg config.Config) *LogPlayer {
	return &LogPlayer{cfg: cfg}
}

// Play logs the cue that would have played.
func (p *LogPlayer) Play(name models.PrayerName) error {
	path, err := ResolveCue(p.cfg, name)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.played = append(p.played, name)
	p.mu.Unlock()
	logger.Info("Cue muted", "prayer", name, "path", path)
	return nil
}

// Played returns the prayers played so far.
func (p *LogPlayer) Played() []models.PrayerName {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.PrayerName(nil), p.played...)
}
