package rbac

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListRoles() ([]RoleRow, error)
	ListPermissions() ([]PermissionRow, error)
}

type RoleRow struct {
	Name        string   `yaml:"name"`
	Inherits    []string `yaml:"inherits"`
	Permissions []string `yaml:"permissions"`
}

type PermissionRow struct {
	Resource string `yaml:"resource"`
	Action   string `yaml:"action"`
	Label    string `yaml:"label"`
}

// Key mengembalikan bentuk "resource:action" yang dipakai di policy.yaml.
func (p PermissionRow) Key() string {
	return p.Resource + ":" + p.Action
}

type policyFile struct {
	Permissions []PermissionRow `yaml:"permissions"`
	Roles       []RoleRow       `yaml:"roles"`
}

type repository struct {
	policy policyFile
}

// NewRepository mem-parse dokumen policy dan memastikan setiap role hanya
// merujuk permission dan role yang terdaftar.
func NewRepository(data []byte) (Repository, error) {
	var pf policyFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse rbac policy: %w", err)
	}

	known := make(map[string]struct{}, len(pf.Permissions))
	for _, p := range pf.Permissions {
		known[p.Key()] = struct{}{}
	}
	roles := make(map[string]struct{}, len(pf.Roles))
	for _, r := range pf.Roles {
		roles[r.Name] = struct{}{}
	}

	for _, r := range pf.Roles {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("rbac policy: role without name")
		}
		for _, perm := range r.Permissions {
			if _, ok := known[perm]; !ok {
				return nil, fmt.Errorf("rbac policy: role %q references unknown permission %q", r.Name, perm)
			}
		}
		for _, parent := range r.Inherits {
			if _, ok := roles[parent]; !ok {
				return nil, fmt.Errorf("rbac policy: role %q inherits unknown role %q", r.Name, parent)
			}
		}
	}

	return &repository{policy: pf}, nil
}

func NewDefaultRepository() (Repository, error) {
	return NewRepository(defaultPolicy)
}

func (r *repository) ListRoles() ([]RoleRow, error) {
	out := make([]RoleRow, len(r.policy.Roles))
	copy(out, r.policy.Roles)
	return out, nil
}

func (r *repository) ListPermissions() ([]PermissionRow, error) {
	out := make([]PermissionRow, len(r.policy.Permissions))
	copy(out, r.policy.Permissions)
	return out, nil
}
