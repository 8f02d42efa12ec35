package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/fritter-backend/internal/domain"
	"github.com/heartmarshall/fritter-backend/internal/service/auth"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	GetUserFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	LoginFunc         func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RegisterFunc      func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	UpdateProfileFunc func(ctx context.Context, input auth.ProfileInput) (*domain.User, error)

	calls struct {
		GetUser []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input auth.ProfileInput
		}
	}
	lockGetUser       sync.RWMutex
	lockLogin         sync.RWMutex
	lockRegister      sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

func (mock *authServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetUserFunc == nil {
		panic("authServiceMock.GetUserFunc: method is nil but authService.GetUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, id)
}

func (mock *authServiceMock) GetUserCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetUser.RLock()
	calls = mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.LoginInput
	}
	mock.lockLogin.RLock()
	calls = mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}
	mock.lockRegister.RLock()
	calls = mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) UpdateProfile(ctx context.Context, input auth.ProfileInput) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("authServiceMock.UpdateProfileFunc: method is nil but authService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.ProfileInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *authServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input auth.ProfileInput
} {
	var calls []struct {
		Ctx   context.Context
		Input auth.ProfileInput
	}
	mock.lockUpdateProfile.RLock()
	calls = mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
