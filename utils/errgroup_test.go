package utils

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrGroup(t *testing.T) {
	t.Run("should collect results in call order", func(t *testing.T) {
		g := ErrGroup[int](2)
		for i := 0; i < 10; i++ {
			g.Go(func() (int, error) {
				// later calls finish first
				time.Sleep(time.Duration(10-i) * time.Millisecond)
				return i, nil
			})
		}

		results, err := g.WaitAndCollect()
		assert.Nil(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, results)
	})

	t.Run("should never run more than limit functions at once", func(t *testing.T) {
		g := ErrGroup[any](3)
		var running, maxRunning int32
		for i := 0; i < 20; i++ {
			g.Go(func() (any, error) {
				n := atomic.AddInt32(&running, 1)
				for {
					m := atomic.LoadInt32(&maxRunning)
					if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil, nil
			})
		}
		_, err := g.WaitAndCollect()
		assert.Nil(t, err)
		assert.LessOrEqual(t, maxRunning, int32(3))
	})

	t.Run("should return the first error", func(t *testing.T) {
		g := ErrGroup[int](0)
		g.Go(func() (int, error) { return 1, nil })
		g.Go(func() (int, error) { return 0, errors.New("boom") })

		_, err := g.WaitAndCollect()
		assert.EqualError(t, err, "boom")
	})
}

func TestNotNil(t *testing.T) {
	a, b := "a", "b"
	assert.Equal(t, []string{"a", "b"}, NotNil([]*string{&a, nil, &b, nil}))
	assert.Empty(t, NotNil([]*string{nil}))
}
