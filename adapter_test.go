package yelphelp

import "context"

type DummyAdapter struct {
	RunFunc                  func(ctx context.Context, enqueueEvent func(Event) error, notifyErr func(error))
	PostMessageToChannelFunc func(ctx context.Context, channel string, text string) error
	PostMessageToUserFunc    func(ctx context.Context, username string, text string) error
	GetUserByIDFunc          func(ctx context.Context, id string) (*User, error)
}

var _ Adapter = (*DummyAdapter)(nil)

func (adapter *DummyAdapter) Run(ctx context.Context, enqueueEvent func(Event) error, notifyErr func(error)) {
	adapter.RunFunc(ctx, enqueueEvent, notifyErr)
}

func (adapter *DummyAdapter) PostMessageToChannel(ctx context.Context, channel string, text string) error {
	return adapter.PostMessageToChannelFunc(ctx, channel, text)
}

func (adapter *DummyAdapter) PostMessageToUser(ctx context.Context, username string, text string) error {
	return adapter.PostMessageToUserFunc(ctx, username, text)
}

func (adapter *DummyAdapter) GetUserByID(ctx context.Context, id string) (*User, error) {
	return adapter.GetUserByIDFunc(ctx, id)
}
