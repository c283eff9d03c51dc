package subprocess

import (
	"fmt"
	"os"

	"github.com/wagiedev/execstream-go/internal/config"
)

// BuildEnvironment constructs the environment for the child process:
// the caller's own environment with the configured overrides appended.
// Later entries win, so overrides shadow inherited variables without
// touching the caller's process.
func BuildEnvironment(options *config.Options) []string {
	env := os.Environ()

	for key, value := range options.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return env
}
