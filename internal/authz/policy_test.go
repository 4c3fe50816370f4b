package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyIsAdmin(t *testing.T) {
	policy := NewPolicy([]string{"Ops@GritX.example", "  owner@gritx.example  "})

	tests := []struct {
		name string
		id   Identity
		want bool
	}{
		{"whitelisted email", Identity{UserID: "u1", Email: "ops@gritx.example"}, true},
		{"whitelisted email different case", Identity{UserID: "u1", Email: "OPS@gritx.example"}, true},
		{"trimmed whitelist entry", Identity{UserID: "u2", Email: "owner@gritx.example"}, true},
		{"role claim grants without whitelist", Identity{UserID: "u3", Email: "staff@gritx.example", Role: RoleAdmin}, true},
		{"role claim without email", Identity{UserID: "u4", Role: RoleAdmin}, true},
		{"plain member", Identity{UserID: "u5", Email: "member@example.com", Role: "member"}, false},
		{"no email no role", Identity{UserID: "u6"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.IsAdmin(tt.id))
		})
	}
}

func TestPolicyEmptyWhitelist(t *testing.T) {
	policy := NewPolicy(nil)

	assert.False(t, policy.IsAdmin(Identity{UserID: "u1", Email: "anyone@example.com"}))
	assert.True(t, policy.IsAdmin(Identity{UserID: "u1", Role: RoleAdmin}))
}
