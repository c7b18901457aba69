package authz

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/bilemo/internal/domain/errors"
)

//go:embed model.conf
var modelText string

const (
	ObjectCustomer = "customer"
	ObjectUser     = "user"
	ObjectProduct  = "product"
)

const (
	ActionCustomerView   = "customer.view"
	ActionCustomerCreate = "customer.create"

	ActionProductView = "product.view"

	ActionUserView   = "user.view"
	ActionUserCreate = "user.create"
	ActionUserDelete = "user.delete"
)

const (
	RoleAnonymous = "role:anonymous"
	RoleCustomer  = "role:customer"
)

// Authorizer decides whether a caller may perform an action on an object.
// A zero customerID stands for an anonymous caller.
type Authorizer interface {
	Authorize(ctx context.Context, customerID int64, object, action string) error
}

// Service checks capabilities against an in-memory casbin policy.
type Service struct {
	enforcer *casbin.SyncedEnforcer
	log      *zap.Logger
}

// NewEnforcer builds the enforcer and loads the built-in role policy.
func NewEnforcer() (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("load authz model: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}
	if err := seedPolicies(enforcer); err != nil {
		return nil, err
	}
	return enforcer, nil
}

func seedPolicies(enforcer *casbin.SyncedEnforcer) error {
	rules := [][]string{
		{RoleAnonymous, ObjectCustomer, ActionCustomerView},
		{RoleAnonymous, ObjectCustomer, ActionCustomerCreate},
		{RoleAnonymous, ObjectProduct, ActionProductView},
		{RoleCustomer, ObjectUser, ActionUserView},
		{RoleCustomer, ObjectUser, ActionUserCreate},
		{RoleCustomer, ObjectUser, ActionUserDelete},
	}
	if _, err := enforcer.AddPolicies(rules); err != nil {
		return fmt.Errorf("seed policies: %w", err)
	}
	if _, err := enforcer.AddGroupingPolicy(RoleCustomer, RoleAnonymous); err != nil {
		return fmt.Errorf("seed role inheritance: %w", err)
	}
	return nil
}

// NewService wraps an enforcer.
func NewService(enforcer *casbin.SyncedEnforcer, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{enforcer: enforcer, log: log}
}

// Authorize returns nil when allowed, ErrUnauthenticated when an anonymous
// caller is denied and ErrForbidden when an authenticated one is.
func (s *Service) Authorize(_ context.Context, customerID int64, object, action string) error {
	role := RoleAnonymous
	if customerID > 0 {
		role = RoleCustomer
	}

	allowed, err := s.enforcer.Enforce(role, object, action)
	if err != nil {
		return fmt.Errorf("enforce %s on %s: %w", action, object, err)
	}
	if allowed {
		return nil
	}

	s.log.Debug("access denied",
		zap.Int64("customer_id", customerID),
		zap.String("object", object),
		zap.String("action", action),
	)
	if customerID <= 0 {
		return domainErrors.ErrUnauthenticated
	}
	return domainErrors.ErrForbidden
}
