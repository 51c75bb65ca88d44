package user

import "testing"

func TestFacilitator(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		validate func(string) bool
	}{
		{
			name: "override wins",
			env:  "  Scrum Master ",
			validate: func(name string) bool {
				return name == "Scrum Master"
			},
		},
		{
			name: "falls back to a non-empty name",
			env:  "",
			validate: func(name string) bool {
				// Depends on the environment, but never empty
				return name != ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvFacilitator, tt.env)
			name := Facilitator()
			if !tt.validate(name) {
				t.Errorf("Facilitator() = %q, validation failed", name)
			}
		})
	}
}
