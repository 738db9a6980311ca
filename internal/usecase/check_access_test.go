package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/catalog"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/service"
)

func newCheckAccessUseCase(grants *mockGrantRepository) *CheckAccessUseCase {
	return NewCheckAccessUseCase(NewResolvePermissionsUseCase(grants, testLogger()))
}

func TestCheckAccess_Granted(t *testing.T) {
	grants := new(mockGrantRepository)
	grants.On("IsSuperAdmin", mock.Anything, "user-1").Return(false, nil)
	grants.On("ListPrincipalPermissions", mock.Anything, "user-1").Return([]string{
		string(catalog.AccountingJournalView),
	}, nil)
	uc := newCheckAccessUseCase(grants)

	out, err := uc.Execute(context.Background(), CheckAccessInput{
		PrincipalID: "user-1",
		Required:    []catalog.Key{catalog.AccountingJournalView},
		Mode:        service.ModeAllOf,
	})

	require.NoError(t, err)
	assert.True(t, out.Decision.Allowed)
	assert.Equal(t, model.ReasonGranted, out.Decision.Reason)
}

func TestCheckAccess_DeniedMissingPermission(t *testing.T) {
	grants := new(mockGrantRepository)
	grants.On("IsSuperAdmin", mock.Anything, "user-1").Return(false, nil)
	grants.On("ListPrincipalPermissions", mock.Anything, "user-1").Return([]string{
		string(catalog.AccountingJournalView),
	}, nil)
	uc := newCheckAccessUseCase(grants)

	out, err := uc.Execute(context.Background(), CheckAccessInput{
		PrincipalID: "user-1",
		Required:    []catalog.Key{catalog.AccountingJournalCreate},
		Mode:        service.ModeAllOf,
	})

	require.NoError(t, err)
	assert.False(t, out.Decision.Allowed)
	assert.Equal(t, model.ReasonMissingPermission, out.Decision.Reason)
}

func TestCheckAccess_UnauthenticatedWithRequirement(t *testing.T) {
	grants := new(mockGrantRepository)
	uc := newCheckAccessUseCase(grants)

	out, err := uc.Execute(context.Background(), CheckAccessInput{
		Required: []catalog.Key{catalog.SalesOrderView},
		Mode:     service.ModeAllOf,
	})

	require.NoError(t, err)
	assert.False(t, out.Decision.Allowed)
	assert.Equal(t, model.ReasonUnauthenticated, out.Decision.Reason)
	grants.AssertNotCalled(t, "IsSuperAdmin")
}

func TestCheckAccess_UnauthenticatedNoRequirement(t *testing.T) {
	grants := new(mockGrantRepository)
	uc := newCheckAccessUseCase(grants)

	out, err := uc.Execute(context.Background(), CheckAccessInput{
		Mode: service.ModeAllOf,
	})

	require.NoError(t, err)
	assert.True(t, out.Decision.Allowed)
}

func TestCheckAccess_UnknownPermissionKey(t *testing.T) {
	grants := new(mockGrantRepository)
	uc := newCheckAccessUseCase(grants)

	_, err := uc.Execute(context.Background(), CheckAccessInput{
		PrincipalID: "user-1",
		Required:    []catalog.Key{catalog.Key("ghost:page:view")},
		Mode:        service.ModeAllOf,
	})

	assert.ErrorIs(t, err, ErrUnknownPermissionKey)
	grants.AssertNotCalled(t, "IsSuperAdmin")
}

func TestCheckAccess_InvalidMode(t *testing.T) {
	grants := new(mockGrantRepository)
	uc := newCheckAccessUseCase(grants)

	_, err := uc.Execute(context.Background(), CheckAccessInput{
		PrincipalID: "user-1",
		Required:    []catalog.Key{catalog.SalesOrderView},
		Mode:        service.Mode("one_of"),
	})

	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestCheckAccess_AnyOf(t *testing.T) {
	grants := new(mockGrantRepository)
	grants.On("IsSuperAdmin", mock.Anything, "user-1").Return(false, nil)
	grants.On("ListPrincipalPermissions", mock.Anything, "user-1").Return([]string{
		string(catalog.SalesOrderView),
	}, nil)
	uc := newCheckAccessUseCase(grants)

	out, err := uc.Execute(context.Background(), CheckAccessInput{
		PrincipalID: "user-1",
		Required:    []catalog.Key{catalog.SalesOrderCreate, catalog.SalesOrderView},
		Mode:        service.ModeAnyOf,
	})

	require.NoError(t, err)
	assert.True(t, out.Decision.Allowed)
}

func TestCheckAccess_ResolutionErrorPropagated(t *testing.T) {
	grants := new(mockGrantRepository)
	grants.On("IsSuperAdmin", mock.Anything, "user-1").Return(false, errors.New("db down"))
	uc := newCheckAccessUseCase(grants)

	_, err := uc.Execute(context.Background(), CheckAccessInput{
		PrincipalID: "user-1",
		Required:    []catalog.Key{catalog.SalesOrderView},
		Mode:        service.ModeAllOf,
	})

	assert.ErrorIs(t, err, ErrResolutionFailed)
}
