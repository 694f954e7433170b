package rui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBundleChanges(t *testing.T) {
	t.Run("batches multiple writes", func(t *testing.T) {
		log := []string{}

		count := NewObservable(0)

		NewEffect(func(r *Reader) func() {
			log = append(log, fmt.Sprintf("changed %d", Use[int](r, count)))
			return func() { log = append(log, "cleanup") }
		})

		BundleChanges(func() {
			count.Set(10)
			count.Set(20)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("batches multiple observables", func(t *testing.T) {
		log := []string{}

		count := NewObservable(0)
		double := NewObservable(0)

		NewEffect(func(r *Reader) func() {
			log = append(log, fmt.Sprintf("count %d", Use[int](r, count)))
			return func() { log = append(log, "count cleanup") }
		})

		NewEffect(func(r *Reader) func() {
			log = append(log, fmt.Sprintf("double %d", Use[int](r, double)))
			return func() { log = append(log, "double cleanup") }
		})

		BundleChanges(func() {
			count.Set(10)
			double.Set(count.Get() * 2)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"count 0",
			"double 0",
			"updated",
			"count cleanup",
			"count 10",
			"double cleanup",
			"double 20",
		}, log)
	})

	t.Run("nested batches flush once, at the outermost scope", func(t *testing.T) {
		log := []string{}

		count := NewObservable(0)

		NewEffect(func(r *Reader) func() {
			log = append(log, fmt.Sprintf("changed %d", Use[int](r, count)))
			return func() { log = append(log, "cleanup") }
		})

		BundleChanges(func() {
			count.Set(10)
			BundleChanges(func() {
				count.Set(20)
			})
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"cleanup",
			"changed 20",
		}, log)
	})
}
