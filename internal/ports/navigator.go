package ports

import "context"

// Navigator is the login surface the request pipeline redirects to after an
// authentication failure. It is invoked only after the session has been
// cleared.
type Navigator interface {
	RedirectToLogin(ctx context.Context)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(ctx context.Context)

func (f NavigatorFunc) RedirectToLogin(ctx context.Context) {
	f(ctx)
}
