package veloxui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/veloxui"
)

func TestBundle(t *testing.T) {
	t.Parallel()

	b := veloxui.NewBundle()
	b.Put("count", 3)
	b.Put("name", "ada")

	v, ok := b.Get("count")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []string{"count", "name"}, b.Keys())

	b.Remove("count")
	_, ok = b.Get("count")
	assert.False(t, ok)
}

func TestBundle_NilIsEmpty(t *testing.T) {
	t.Parallel()

	var b *veloxui.Bundle
	_, ok := b.Get("anything")
	assert.False(t, ok)
	assert.Zero(t, b.Len())
	assert.Nil(t, b.Keys())
	b.Remove("anything")

	_, ok = veloxui.BundleValue[int](b, "anything")
	assert.False(t, ok)
}

func TestBundle_ZeroValuePut(t *testing.T) {
	t.Parallel()

	var b veloxui.Bundle
	b.Put("k", true)
	v, ok := veloxui.BundleValue[bool](&b, "k")
	require.True(t, ok)
	assert.True(t, v)
}

func TestBundleValue(t *testing.T) {
	t.Parallel()

	b := veloxui.NewBundle()
	b.Put("count", 3)

	n, ok := veloxui.BundleValue[int](b, "count")
	require.True(t, ok)
	assert.Equal(t, 3, n)

	s, ok := veloxui.BundleValue[string](b, "count")
	assert.False(t, ok)
	assert.Empty(t, s)
}

func TestBundleGet(t *testing.T) {
	t.Parallel()

	b := veloxui.NewBundle()
	b.Put("count", 3)

	n, err := veloxui.BundleGet[int](b, "count")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = veloxui.BundleGet[int](b, "missing")
	assert.True(t, veloxui.IsMissingKey(err))

	_, err = veloxui.BundleGet[string](b, "count")
	assert.True(t, veloxui.IsTypeMismatch(err))
}
