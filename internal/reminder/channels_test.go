package reminder

import (
	"context"
	"sync"
)

// In-memory channel doubles shared by the dispatcher and engine tests.

type fakeEmail struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeEmail) Send(_ context.Context, address, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, address)
	return nil
}

func (f *fakeEmail) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeSMS struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeSMS) Send(_ context.Context, number, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, number)
	return nil
}

func (f *fakeSMS) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeInApp struct {
	mu       sync.Mutex
	notified []uint
	err      error
}

func (f *fakeInApp) Notify(_ context.Context, userID uint, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.notified = append(f.notified, userID)
	return nil
}

func (f *fakeInApp) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notified)
}
