package rbac

import (
	"sort"
	"strings"
	"sync"

	"go-onboarding/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy() error
	Enforce(req domain.EnforceRequest) (bool, error)
	ListRoles() ([]domain.RoleResponse, error)
	ListPermissions() ([]domain.PermissionResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	roles, err := s.repo.ListRoles()
	if err != nil {
		return err
	}

	var policies, groupings int
	for _, role := range roles {
		for _, parent := range role.Inherits {
			if _, err := s.enforcer.AddGroupingPolicy(role.Name, parent); err != nil {
				return err
			}
			groupings++
		}
		for _, perm := range role.Permissions {
			resource, action, ok := strings.Cut(perm, ":")
			if !ok {
				continue
			}
			if _, err := s.enforcer.AddPolicy(role.Name, resource, action); err != nil {
				return err
			}
			policies++
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("roles", len(roles)),
		zap.Int("policies", policies),
		zap.Int("groupings", groupings),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles() ([]domain.RoleResponse, error) {
	roles, err := s.repo.ListRoles()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.RoleResponse, 0, len(roles))
	for _, role := range roles {
		perms, err := s.enforcer.GetImplicitPermissionsForUser(role.Name)
		if err != nil {
			return nil, err
		}
		keys := make([]string, 0, len(perms))
		for _, p := range perms {
			if len(p) < 3 {
				continue
			}
			keys = append(keys, p[1]+":"+p[2])
		}
		sort.Strings(keys)
		keys = dedupe(keys)
		out = append(out, domain.RoleResponse{Name: role.Name, Permissions: keys})
	}
	return out, nil
}

func (s *service) ListPermissions() ([]domain.PermissionResponse, error) {
	perms, err := s.repo.ListPermissions()
	if err != nil {
		return nil, err
	}
	out := make([]domain.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		out = append(out, domain.PermissionResponse{
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
		})
	}
	return out, nil
}

func dedupe(sorted []string) []string {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
