package app_test

import (
	"testing"

	"github.com/mstrYoda/go-arctest/pkg/arctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mod = `github\.com/Nazarious-ucu/weather-cli`

func TestLayeredArchitecture(t *testing.T) {
	arch, err := arctest.New("../../")
	require.NoError(t, err)

	err = arch.ParsePackages()
	require.NoError(t, err, "failed to parse packages")

	domainLayer, err := arctest.NewLayer("domain", `^`+mod+`/internal/models`)
	require.NoError(t, err)

	serviceLayer, err := arctest.NewLayer("services", `^`+mod+`/internal/services`)
	require.NoError(t, err)

	deliveryLayer, err := arctest.NewLayer("delivery", `^`+mod+`/internal/(cli|handlers)`)
	require.NoError(t, err)

	infraLayer, err := arctest.NewLayer("infrastructure",
		`^`+mod+`/internal/config`,
		`^`+mod+`/pkg/logger`,
	)
	require.NoError(t, err)

	appLayer, err := arctest.NewLayer("application", `^`+mod+`/internal/app`)
	require.NoError(t, err)

	layered := arch.NewLayeredArchitecture(domainLayer, serviceLayer, deliveryLayer, infraLayer, appLayer)

	assert.NoError(t, serviceLayer.DependsOnLayer(domainLayer))
	assert.NoError(t, deliveryLayer.DependsOnLayer(domainLayer))
	assert.NoError(t, deliveryLayer.DependsOnLayer(serviceLayer))
	assert.NoError(t, appLayer.DependsOnLayer(domainLayer))
	assert.NoError(t, appLayer.DependsOnLayer(serviceLayer))
	assert.NoError(t, appLayer.DependsOnLayer(deliveryLayer))
	assert.NoError(t, appLayer.DependsOnLayer(infraLayer))

	violations, err := layered.Check()
	require.NoError(t, err)

	assert.Len(t, violations, 0)
	for _, v := range violations {
		assert.Failf(t, "", "violation: %s", v)
	}
}
