package goBcrypt

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// fakeHasher is an instant stand-in for bcrypt so bridge tests are not
// dominated by key-schedule time.
type fakeHasher struct{}

func (fakeHasher) Hash(password string, cost int) (string, error) {
	return "fake:" + password + ":" + strconv.Itoa(cost), nil
}

func (fakeHasher) Verify(password, hash string) (bool, error) {
	if !strings.HasPrefix(hash, "fake:") {
		return false, errors.New("unparseable digest")
	}
	return strings.HasPrefix(hash, "fake:"+password+":"), nil
}

// gateHasher blocks every job until the gate channel is closed.
type gateHasher struct {
	gate <-chan struct{}
}

func (g gateHasher) Hash(password string, cost int) (string, error) {
	<-g.gate
	return fakeHasher{}.Hash(password, cost)
}

func (g gateHasher) Verify(password, hash string) (bool, error) {
	<-g.gate
	return fakeHasher{}.Verify(password, hash)
}

// failingHasher errors on every operation.
type failingHasher struct{}

func (failingHasher) Hash(string, int) (string, error) {
	return "", errors.New("primitive failure")
}

func (failingHasher) Verify(string, string) (bool, error) {
	return false, errors.New("primitive failure")
}

type hashedCall struct {
	contextIdx    int
	correlationID int
	hash          string
}

type checkedCall struct {
	contextIdx    int
	correlationID int
	match         bool
}

// captureReceiver records every delivery. It is only ever touched from
// the goroutine driving Tick, so it carries no lock.
type captureReceiver struct {
	hashed  []hashedCall
	checked []checkedCall
}

func (r *captureReceiver) OnBcryptHashed(contextIdx, correlationID int, hash string) {
	r.hashed = append(r.hashed, hashedCall{contextIdx, correlationID, hash})
}

func (r *captureReceiver) OnBcryptChecked(contextIdx, correlationID int, match bool) {
	r.checked = append(r.checked, checkedCall{contextIdx, correlationID, match})
}

// hashOnlyReceiver implements just the hash side.
type hashOnlyReceiver struct {
	hashed []hashedCall
}

func (r *hashOnlyReceiver) OnBcryptHashed(contextIdx, correlationID int, hash string) {
	r.hashed = append(r.hashed, hashedCall{contextIdx, correlationID, hash})
}

func buildTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()

	engine, err := New().
		WithConfig(cfg).
		WithHasher(fakeHasher{}).
		WithWorkers(4).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	return engine
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	return mr, rdb
}

// drainUntil ticks the engine until the condition holds or the deadline
// passes.
func drainUntil(t *testing.T, e *Engine, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not reached within %v", timeout)
		}
		e.Tick()
		time.Sleep(time.Millisecond)
	}
}
