package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-d", "users.db", "-x", "other"},
			allowed: []string{"-d"},
			want:    []string{"-d", "users.db"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--db=users.db", "-v"},
			allowed: []string{"--db"},
			want:    []string{"--db=users.db"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-d", "-v"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1", "-b"},
			allowed: []string{"-z"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
