package app

import (
	"context"
	"errors"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/domain"
)

// ErrInvalidCredentials — аутентификатор отверг логин/пароль.
// Только эта ошибка считается неудачной попыткой входа.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator — проверка учётных данных на стороне хоста.
type Authenticator interface {
	Authenticate(ctx context.Context, login, password string) error
}

type AuthenticatorFunc func(ctx context.Context, login, password string) error

func (f AuthenticatorFunc) Authenticate(ctx context.Context, login, password string) error {
	return f(ctx, login, password)
}

// LoginGuard встраивается в конвейер аутентификации хоста:
// заблокированная подсеть отсекается до проверки пароля,
// отвергнутые учётные данные учитываются как неудачная попытка.
type LoginGuard struct {
	auth    Authenticator
	failban FailbanUseCase
}

func NewLoginGuard(auth Authenticator, failban FailbanUseCase) *LoginGuard {
	return &LoginGuard{auth: auth, failban: failban}
}

func (g *LoginGuard) Login(ctx context.Context, ip, login, password string) error {
	blocked, err := g.failban.Check(ctx, ip)
	if err != nil {
		return err
	}
	if blocked {
		return domain.ErrSubnetBlocked
	}

	err = g.auth.Authenticate(ctx, login, password)
	if !errors.Is(err, ErrInvalidCredentials) {
		return err
	}
	if _, rerr := g.failban.ReportFailure(ctx, ip); rerr != nil {
		return errors.Join(err, rerr)
	}
	return err
}
