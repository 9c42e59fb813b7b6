package port

// Notice is a user-facing message produced by a cart or checkout action.
type Notice struct {
	Kind    string
	Message string
	Fields  map[string]string
}

type Notifier interface {
	Notify(n Notice)
}

// NopNotifier drops every notice.
type NopNotifier struct{}

func (NopNotifier) Notify(Notice) {}
