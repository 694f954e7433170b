package rui

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffect(t *testing.T) {
	t.Run("runs on change with cleanup", func(t *testing.T) {
		log := []string{}

		count := NewObservable(0)
		log = append(log, fmt.Sprintf("%d", count.Get()))

		NewEffect(func(r *Reader) func() {
			log = append(log, fmt.Sprintf("changed %d", Use[int](r, count)))
			return func() { log = append(log, "cleanup") }
		})

		count.Set(10)
		log = append(log, fmt.Sprintf("%d", count.Get()))
		count.Set(20)

		assert.Equal(t, []string{
			"0",
			"changed 0",
			"cleanup",
			"changed 10",
			"10",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("writes to another observable", func(t *testing.T) {
		log := []string{}

		count := NewObservable(0)
		double := NewObservable(0)

		NewEffect(func(r *Reader) func() {
			double.Set(Use[int](r, count) * 2)
			return nil
		})

		NewEffect(func(r *Reader) func() {
			log = append(log, fmt.Sprintf("changed %d", Use[int](r, double)))
			return func() { log = append(log, "cleanup") }
		})

		count.Set(10)

		assert.Equal(t, []string{
			"changed 0",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("nested effects", func(t *testing.T) {
		log := []string{}

		count := NewObservable(0)

		NewEffect(func(r *Reader) func() {
			Use[int](r, count)
			log = append(log, "running")

			NewEffect(func(r *Reader) func() {
				log = append(log, "running nested")
				return func() { log = append(log, "cleanup nested") }
			})

			return func() { log = append(log, "cleanup") }
		})

		count.Set(10)

		assert.Equal(t, []string{
			"running",
			"running nested",
			"cleanup nested",
			"cleanup",
			"running",
			"running nested",
		}, log)
	})

	t.Run("diamond dependency", func(t *testing.T) {
		log := []string{}

		count := NewObservable(0)
		double := NewComputed(func(r *Reader) int { return Use[int](r, count) * 2 })
		quad := NewComputed(func(r *Reader) int { return Use[int](r, count) * 4 })

		NewEffect(func(r *Reader) func() {
			log = append(log, fmt.Sprintf("running %d %d", Use[int](r, double), Use[int](r, quad)))
			return func() {
				log = append(log, fmt.Sprintf("cleanup %d %d", double.Get(), quad.Get()))
			}
		})

		count.Set(10)

		assert.Equal(t, []string{
			"running 0 0",
			"cleanup 20 40",
			"running 20 40",
		}, log)
	})

	t.Run("deps change between runs", func(t *testing.T) {
		log := []string{}

		count := NewObservable(0)

		initialized := false
		NewEffect(func(r *Reader) func() {
			log = append(log, "running")
			if !initialized {
				Use[int](r, count)
			}
			initialized = true
			return nil
		})

		count.Set(1)
		count.Set(2) // no longer a dependency, must not retrigger

		assert.Equal(t, []string{
			"running",
			"running",
		}, log)
	})

	t.Run("concurrent read/write", func(t *testing.T) {
		var wg sync.WaitGroup
		var mu sync.Mutex
		log := []int{}

		count := NewObservable(0)

		NewEffect(func(r *Reader) func() {
			mu.Lock()
			log = append(log, Use[int](r, count))
			mu.Unlock()
			return nil
		})

		wg.Add(1)
		go func() {
			defer wg.Done()
			for count.Get() < 5 {
				count.Set(count.Get() + 1)
			}
		}()

		wg.Wait()

		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, log)
	})
}
