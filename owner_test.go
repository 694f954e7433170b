package rui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwner(t *testing.T) {
	t.Run("runs function and disposes", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() {
			NewEffect(func(r *Reader) func() {
				log = append(log, "effect")
				OnCleanup(func() { log = append(log, "cleanup") })
				return nil
			})
		})

		log = append(log, "ran")
		o.Dispose()
		log = append(log, "disposed")

		assert.Equal(t, []string{
			"effect",
			"ran",
			"cleanup",
			"disposed",
		}, log)
	})

	t.Run("nested owners", func(t *testing.T) {
		log := []string{}

		o := NewOwner()
		o.OnDispose(func() {
			log = append(log, "parent disposed")
		})

		o.Run(func() {
			NewOwner().OnDispose(func() {
				log = append(log, "child disposed")
			})
		})

		o.Dispose()

		assert.Equal(t, []string{
			"child disposed",
			"parent disposed",
		}, log)
	})

	t.Run("sibling effects disposal order", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() {
			OnCleanup(func() {
				log = append(log, "cleanup")
			})

			NewEffect(func(r *Reader) func() {
				log = append(log, "running first")

				NewEffect(func(r *Reader) func() {
					log = append(log, "running nested")
					OnCleanup(func() { log = append(log, "cleanup nested") })
					return nil
				})

				OnCleanup(func() { log = append(log, "cleanup first") })
				return nil
			})

			NewEffect(func(r *Reader) func() {
				log = append(log, "running second")
				OnCleanup(func() { log = append(log, "cleanup second") })
				return nil
			})
		})

		log = append(log, "ran")
		o.Dispose()
		log = append(log, "disposed")

		assert.Equal(t, []string{
			"running first",
			"running nested",
			"running second",
			"ran",
			"cleanup second",
			"cleanup nested",
			"cleanup first",
			"cleanup",
			"disposed",
		}, log)
	})

	t.Run("catches panics with OnError", func(t *testing.T) {
		log := []string{}

		o := NewOwner()
		o.OnError(func(err any) {
			log = append(log, fmt.Sprintf("caught %v", err))
		})

		var errObs *Observable[error]

		o.Run(func() {
			// propagates here, since this nested owner has no error listener
			NewOwner().Run(func() {
				errObs = NewObservable[error](nil)

				NewEffect(func(r *Reader) func() {
					if e := Use[error](r, errObs); e != nil {
						panic(e)
					}
					return nil
				})
			})
		})

		errObs.Set(errors.New("oops"))

		assert.Equal(t, []string{
			"caught oops",
		}, log)
	})

	t.Run("disposal prevents effect re-runs", func(t *testing.T) {
		log := []int{}

		o := NewOwner()
		count := NewObservable(0)

		o.Run(func() {
			NewEffect(func(r *Reader) func() {
				log = append(log, Use[int](r, count))
				return nil
			})
		})

		count.Set(1)
		o.Dispose()

		// must not trigger the effect
		count.Set(2)

		assert.Equal(t, []int{0, 1}, log)
	})

	t.Run("disposal during effect execution", func(t *testing.T) {
		log := []int{}

		o := NewOwner()
		count := NewObservable(0)

		NewEffect(func(r *Reader) func() {
			if Use[int](r, count) > 0 {
				o.Dispose()
			}
			return nil
		})

		o.Run(func() {
			NewEffect(func(r *Reader) func() {
				log = append(log, Use[int](r, count))
				return nil
			})
		})

		count.Set(1)

		assert.Equal(t, []int{0}, log)
	})
}
