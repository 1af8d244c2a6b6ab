package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBreaker(timeout time.Duration) *CircuitBreaker {
	return NewCircuitBreaker("test", Config{
		MaxRequests: 2,
		Interval:    10 * time.Second,
		Timeout:     timeout,
		ReadyToTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
}

// TestCircuitBreaker_ClosedState 正常状态下请求全部通过
func TestCircuitBreaker_ClosedState(t *testing.T) {
	cb := newTestBreaker(30 * time.Second)

	for i := 0; i < 10; i++ {
		err := cb.Execute(func() error { return nil })
		assert.NoError(t, err)
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(10), cb.Counts().TotalSuccesses)
}

// TestCircuitBreaker_TripsOpen 连续失败达到阈值后熔断
func TestCircuitBreaker_TripsOpen(t *testing.T) {
	cb := newTestBreaker(30 * time.Second)
	boom := errors.New("redis: connection refused")

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return boom })
		assert.ErrorIs(t, err, boom)
	}

	assert.Equal(t, StateOpen, cb.State())

	// 熔断后快速失败，业务函数不再被调用
	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called)
}

// TestCircuitBreaker_HalfOpenRecovery 超时后半开，探测成功则关闭
func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := newTestBreaker(50 * time.Millisecond)
	boom := errors.New("redis: timeout")

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return boom })
	}
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, StateHalfOpen, cb.State())

	err := cb.Execute(func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

// TestCircuitBreaker_HalfOpenFailureReopens 半开状态下失败立即回到打开
func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := newTestBreaker(50 * time.Millisecond)
	boom := errors.New("redis: still down")

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return boom })
	}

	time.Sleep(60 * time.Millisecond)
	_ = cb.Execute(func() error { return boom })

	assert.Equal(t, StateOpen, cb.State())
}

// TestCircuitBreaker_StateChangeCallback 状态切换触发回调
func TestCircuitBreaker_StateChangeCallback(t *testing.T) {
	cb := newTestBreaker(30 * time.Second)

	var from, to State
	cb.SetStateChangeCallback(func(name string, f State, t State) {
		from, to = f, t
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errors.New("fail") })
	}

	assert.Equal(t, StateClosed, from)
	assert.Equal(t, StateOpen, to)
}

// TestCounts_FailureRate 失败率计算
func TestCounts_FailureRate(t *testing.T) {
	c := Counts{Requests: 10, TotalFailures: 4}
	assert.InDelta(t, 0.4, c.FailureRate(), 0.001)

	empty := Counts{}
	assert.Equal(t, 0.0, empty.FailureRate())
}
