// Package user resolves the name shown as facilitator on review reports
package user

import (
	"os"
	"os/user"
	"strings"
)

// EnvFacilitator overrides the detected facilitator name
const EnvFacilitator = "SPRINTSIM_FACILITATOR"

// Facilitator returns the name of the person running the simulation.
// It tries, in order: SPRINTSIM_FACILITATOR, the OS account (display name
// before login name), the USER environment variable, and finally "unknown".
func Facilitator() string {
	if name := strings.TrimSpace(os.Getenv(EnvFacilitator)); name != "" {
		return name
	}

	currentUser, err := user.Current()
	if err == nil {
		if name := strings.TrimSpace(currentUser.Name); name != "" {
			return name
		}
		if currentUser.Username != "" {
			return currentUser.Username
		}
	}

	if username := os.Getenv("USER"); username != "" {
		return username
	}
	return "unknown"
}
