package mailer

import "context"

// Dispatcher mengirim email transaksional ke karyawan.
type Dispatcher interface {
	SendOtp(ctx context.Context, to, fullName string, otp int) error
	SendWelcome(ctx context.Context, to, fullName string) error
}

type noopDispatcher struct{}

func NewNoopDispatcher() Dispatcher {
	return noopDispatcher{}
}

func (noopDispatcher) SendOtp(context.Context, string, string, int) error {
	return nil
}

func (noopDispatcher) SendWelcome(context.Context, string, string) error {
	return nil
}
