package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/kerbaras/pulsesoul/pkg/integrations"
	"github.com/kerbaras/pulsesoul/pkg/sources"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DownloadProgress represents the progress of an audio download
type DownloadProgress struct {
	Chapter int
	Verse   string
	Current int
	Total   int
	Status  string // "downloading", "skipped", "complete", "error"
	Error   error  // on "complete", set when the chapter did not finish

}

// Fetcher opens a remote file for reading.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (io.ReadCloser, error)
}

// AudioDownloader stores chapter recitations on disk so a CachedPlayer can
// play them without the network.
type AudioDownloader struct {
	gateway      sources.Gateway
	fetcher      Fetcher
	dir          string
	concurrency  int
	progressChan chan DownloadProgress
	logger       *zap.Logger

	// mu guards closed; sends hold it for reading so Close never races a send
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

func NewAudioDownloader(gateway sources.Gateway, fetcher Fetcher, dir string, concurrency int, logger *zap.Logger) *AudioDownloader {
	if concurrency < 1 {
		concurrency = 1
	}
	return &AudioDownloader{
		gateway:      gateway,
		fetcher:      fetcher,
		dir:          dir,
		concurrency:  concurrency,
		progressChan: make(chan DownloadProgress, 100),
		logger:       logger,
	}
}

// GetProgressChannel returns the channel for receiving download progress updates
func (d *AudioDownloader) GetProgressChannel() <-chan DownloadProgress {
	return d.progressChan
}

// DownloadChapter fetches the audio of every verse in a chapter. Files that
// already exist are kept. It returns the number of files written.
func (d *AudioDownloader) DownloadChapter(ctx context.Context, number int, translation string) (int, error) {
	detail, err := d.gateway.GetChapter(ctx, number, translation)
	if err != nil {
		return 0, fmt.Errorf("failed to get chapter %d: %w", number, err)
	}
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create audio directory: %w", err)
	}

	total := len(detail.Verses)
	var done, written atomic.Int32

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)
	for _, v := range detail.Verses {
		g.Go(func() error {
			ok, err := d.downloadVerse(ctx, v)
			current := int(done.Add(1))
			if err != nil {
				d.sendProgress(DownloadProgress{Chapter: number, Verse: v.Key(), Current: current, Total: total, Status: "error", Error: err})
				return fmt.Errorf("verse %s: %w", v.Key(), err)
			}
			status := "skipped"
			if ok {
				written.Add(1)
				status = "downloading"
			}
			d.sendProgress(DownloadProgress{Chapter: number, Verse: v.Key(), Current: current, Total: total, Status: status})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		d.sendProgress(DownloadProgress{Chapter: number, Current: int(done.Load()), Total: total, Status: "complete", Error: err})
		return int(written.Load()), err
	}

	d.sendProgress(DownloadProgress{Chapter: number, Current: total, Total: total, Status: "complete"})
	d.logger.Info("downloaded chapter audio", zap.Int("chapter", number), zap.Int32("written", written.Load()))
	return int(written.Load()), nil
}

// downloadVerse reports whether a new file was written.
func (d *AudioDownloader) downloadVerse(ctx context.Context, v data.Verse) (bool, error) {
	if v.AudioURL == "" {
		return false, nil
	}
	name := integrations.AudioFileName(v.AudioURL)
	if name == "" {
		return false, fmt.Errorf("no file name in %q", v.AudioURL)
	}
	target := filepath.Join(d.dir, name)
	if _, err := os.Stat(target); err == nil {
		return false, nil
	}

	body, err := d.fetcher.Fetch(ctx, v.AudioURL)
	if err != nil {
		return false, err
	}
	defer body.Close()

	tmp, err := os.CreateTemp(d.dir, name+".*.part")
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return false, fmt.Errorf("failed to write audio: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return false, err
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return false, err
	}
	return true, nil
}

// sendProgress sends a progress update (non-blocking). Updates after Close
// are dropped.
func (d *AudioDownloader) sendProgress(progress DownloadProgress) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}
	select {
	case d.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}

// Close closes the progress channel. Downloads still unwinding keep running
// but report nothing further.
func (d *AudioDownloader) Close() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.progressChan)
		d.mu.Unlock()
	})
}
