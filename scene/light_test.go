package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionalLightApply(t *testing.T) {
	store := &fakeStore{}
	dir, _ := DefaultLights()
	require.NoError(t, dir.Apply(store))

	v, ok := store.last("dirLight.direction")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{-0.5, -0.8, 0.8}, v)

	v, ok = store.last("dirLight.ambient")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0.3, 0.3, 0.3}, v)

	v, ok = store.last("dirLight.diffuse")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0.7, 0.7, 0.7}, v)
}

func TestSpotLightApply(t *testing.T) {
	store := &fakeStore{}
	_, spot := DefaultLights()
	require.NoError(t, spot.Apply(store))

	v, ok := store.last("spotLight.position")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{5.5, 4.0, 0.5}, v)

	v, ok = store.last("spotLight.diffuse")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1.0, 0.95, 0.8}, v)

	v, ok = store.last("spotLight.linear")
	require.True(t, ok)
	assert.Equal(t, float32(0.045), v)

	v, ok = store.last("spotLight.quadratic")
	require.True(t, ok)
	assert.Equal(t, float32(0.0075), v)

	// cutoffs are pushed as cosines of the authored degree values
	v, ok = store.last("spotLight.cutOff")
	require.True(t, ok)
	assert.InDelta(t, math.Cos(15*math.Pi/180), float64(v.(float32)), 1e-6)

	v, ok = store.last("spotLight.outerCutOff")
	require.True(t, ok)
	assert.InDelta(t, math.Cos(25*math.Pi/180), float64(v.(float32)), 1e-6)
}

func TestLightApplyPropagatesStoreErrors(t *testing.T) {
	store := &fakeStore{failOn: "spotLight.cutOff"}
	_, spot := DefaultLights()
	assert.Error(t, spot.Apply(store))
}
