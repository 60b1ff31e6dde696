package environment_test

import (
	"testing"

	"github.com/blar/virtualc64/environment"
	"github.com/blar/virtualc64/test"
)

func TestNewEnvironmentDefaults(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, env.IsEmulation(environment.MainEmulation), true)
	test.ExpectEquality(t, env.AllowLogging(), true)
}

func TestSecondaryEmulationDoesNotLog(t *testing.T) {
	env, err := environment.NewEnvironment(environment.Label("thumbnailer"), nil, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, env.AllowLogging(), false)
}

func TestNormalise(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil, nil)
	test.ExpectSuccess(t, err)
	env.Normalise()
	test.ExpectEquality(t, env.Random.ZeroSeed, true)
}
