package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkPrimary(t *testing.T) {
	images := func() []ProjectImage {
		return []ProjectImage{{URL: "a"}, {URL: "b"}, {URL: "c"}}
	}

	t.Run("marks exactly the chosen index", func(t *testing.T) {
		marked := MarkPrimary(images(), 1)
		assert.False(t, marked[0].IsPrimary)
		assert.True(t, marked[1].IsPrimary)
		assert.False(t, marked[2].IsPrimary)
	})

	t.Run("re-marking moves the flag", func(t *testing.T) {
		marked := MarkPrimary(MarkPrimary(images(), 0), 2)
		assert.False(t, marked[0].IsPrimary)
		assert.True(t, marked[2].IsPrimary)
	})

	t.Run("negative index marks nothing", func(t *testing.T) {
		for _, img := range MarkPrimary(images(), -1) {
			assert.False(t, img.IsPrimary)
		}
	})

	t.Run("index past the end marks nothing", func(t *testing.T) {
		for _, img := range MarkPrimary(images(), 3) {
			assert.False(t, img.IsPrimary)
		}
	})

	t.Run("empty list stays empty", func(t *testing.T) {
		assert.Empty(t, MarkPrimary(nil, 0))
	})
}

func TestPrimaryImage(t *testing.T) {
	t.Run("returns the marked URL", func(t *testing.T) {
		p := Project{Images: []ProjectImage{{URL: "a"}, {URL: "b", IsPrimary: true}}}
		assert.Equal(t, "b", p.PrimaryImage())
	})

	t.Run("no primary yields empty string", func(t *testing.T) {
		p := Project{Images: []ProjectImage{{URL: "a"}, {URL: "b"}}}
		assert.Empty(t, p.PrimaryImage())
	})

	t.Run("no images yields empty string", func(t *testing.T) {
		assert.Empty(t, Project{}.PrimaryImage())
	})
}
