package pusher

import (
	"log"
	"sync"
	"time"
)

// Pusher buffers messages and hands them to PushLogic in batches, every
// PushInterval and once more on Stop.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)
	lock           sync.Mutex
	stop           chan struct{}
	done           chan struct{}
	once           sync.Once
	started        bool
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { log.Println(err) },
		PushInterval: time.Second,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll flushes the buffer. Messages stay buffered when PushLogic fails.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.MessagesBuffer) == 0 {
		return nil
	}

	if err := p.PushLogic(p.MessagesBuffer...); err != nil {
		return err
	}

	p.MessagesBuffer = []T{}
	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Buffered() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.started {
		return
	}
	p.started = true

	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			case <-p.stop:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
				return
			}
		}
	}()
}

// Stop ends the loop started by Start and waits for the final flush. A pusher
// that was never started is flushed in place.
func (p *Pusher[T]) Stop() {
	p.lock.Lock()
	started := p.started
	p.lock.Unlock()

	if !started {
		if err := p.PushAll(); err != nil {
			p.ErrorHandler(err)
		}
		return
	}

	p.once.Do(func() {
		close(p.stop)
	})
	<-p.done
}
