package iterator_test

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"testing"

	"github.com/ian-shakespeare/r7rs/pkg/iterator"
	"github.com/stretchr/testify/assert"
)

func results(values []int, failAt int, err error) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		for i, v := range values {
			if i == failAt {
				yield(0, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3}, iterator.Collect(slices.Values([]int{1, 2, 3})))
	assert.Equal(t, []int{}, iterator.Collect(slices.Values([]int(nil))))
}

func TestCollectUntilError(t *testing.T) {
	t.Parallel()

	t.Run("noError", func(t *testing.T) {
		t.Parallel()

		values, err := iterator.CollectUntilError(results([]int{1, 2, 3}, -1, nil))
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, values)
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		values, err := iterator.CollectUntilError(results([]int{1, 2, 3}, 2, boom))
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []int{1, 2}, values)
	})
}

func TestMap(t *testing.T) {
	t.Parallel()

	mapped := iterator.Collect(iterator.Map(slices.Values([]int{1, 20, 300}), strconv.Itoa))
	assert.Equal(t, []string{"1", "20", "300"}, mapped)

	for s := range iterator.Map(slices.Values([]int{7, 8}), strconv.Itoa) {
		assert.Equal(t, "7", s)
		break
	}
}
