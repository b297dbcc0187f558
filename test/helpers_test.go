package test

import (
	"testing"
	"time"

	goBcrypt "github.com/MrEthical07/goBcrypt"
)

type recorder struct {
	hashed  map[int]string
	checked map[int]bool
}

func newRecorder() *recorder {
	return &recorder{
		hashed:  map[int]string{},
		checked: map[int]bool{},
	}
}

func (r *recorder) OnBcryptHashed(contextIdx, correlationID int, hash string) {
	r.hashed[correlationID] = hash
}

func (r *recorder) OnBcryptChecked(contextIdx, correlationID int, match bool) {
	r.checked[correlationID] = match
}

func newEngine(t *testing.T) *goBcrypt.Engine {
	t.Helper()

	engine, err := goBcrypt.New().WithWorkers(2).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	return engine
}

func tickUntil(t *testing.T, engine *goBcrypt.Engine, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not reached within %v", timeout)
		}
		engine.Tick()
		time.Sleep(time.Millisecond)
	}
}
