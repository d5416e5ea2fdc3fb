package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"tour-catalog/internal/storage"

	"github.com/sirupsen/logrus"
)

// JobTimeout bounds the media store call made for a single job.
const JobTimeout = 30 * time.Second

// Processor drains cleanup jobs, deleting media from the store and from disk.
// Failures are logged and dropped; the database update has already happened.
type Processor struct {
	queue        *MemoryQueue
	store        storage.MediaStore
	files        storage.FileRemover
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// NewProcessor creates a new cleanup processor. store and files may be nil,
// in which case the corresponding step is skipped.
func NewProcessor(queue *MemoryQueue, store storage.MediaStore, files storage.FileRemover, workerCount int) *Processor {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Processor{
		queue:       queue,
		store:       store,
		files:       files,
		workerCount: workerCount,
	}
}

// Start launches the workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	logrus.WithField("workers", p.workerCount).Info("Media cleanup processor started")
}

// Stop closes the queue and waits for the workers to drain it.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		p.queue.Close()
	})
	p.wg.Wait()
	logrus.Info("Media cleanup processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || ctx.Err() != nil {
				logrus.WithField("worker", id).Debug("Cleanup worker shutting down")
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job CleanupJob) {
	log := logrus.WithFields(logrus.Fields{
		"subPackageId": job.SubPackageID.Hex(),
		"imageId":      job.ImageID.Hex(),
	})

	if job.PublicID != "" && p.store != nil {
		// Detached from ctx so a shutdown still lets in-flight deletes finish.
		destroyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), JobTimeout)
		err := p.store.Destroy(destroyCtx, job.PublicID)
		cancel()
		if err != nil {
			log.WithError(err).WithField("publicId", job.PublicID).Warn("Failed to delete image from media store")
		} else {
			log.WithField("publicId", job.PublicID).Info("Deleted image from media store")
		}
	}

	if job.URL != "" && p.files != nil {
		removed, err := p.files.Remove(job.URL)
		switch {
		case err != nil:
			log.WithError(err).WithField("path", job.URL).Warn("Failed to delete local image")
		case removed:
			log.WithField("path", job.URL).Info("Deleted local image")
		}
	}
}
