package middleware

import (
	"fmt"

	"github.com/casbin/casbin"
)

const policyModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// NewPolicy builds the route policy. Anonymous callers may read anything,
// register and log in. Every other request needs a bearer token.
func NewPolicy() (*casbin.Enforcer, error) {
	e, err := casbin.NewEnforcerSafe(casbin.NewModel(policyModel), false)
	if err != nil {
		return nil, fmt.Errorf("route policy: %w", err)
	}

	rules := [][]string{
		{RoleAnonymous, "/*", "GET"},
		{RoleAnonymous, "/users", "POST"},
		{RoleAnonymous, "/sessions", "POST"},
		{RoleAnonymous, "/auth/register", "POST"},
		{RoleAnonymous, "/auth/login", "POST"},
		{RoleUser, "/*", "*"},
	}
	for _, r := range rules {
		e.AddPolicy(r)
	}
	return e, nil
}
