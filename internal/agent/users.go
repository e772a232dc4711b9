package agent

import (
	"fmt"

	"github.com/melisa48/entertainment-agent/internal/model"
)

// CreateUser adds a profile named name, selects it and returns its id.
func (a *Agent) CreateUser(name string) string {
	n := len(a.profiles) + 1
	id := fmt.Sprintf("user_%d", n)
	for a.profiles[id] != nil {
		n++
		id = fmt.Sprintf("user_%d", n)
	}
	a.putProfile(model.NewProfile(id, name))
	a.current = id
	return id
}

func (a *Agent) putProfile(p *model.Profile) {
	if _, ok := a.profiles[p.UserID]; !ok {
		a.order = append(a.order, p.UserID)
	}
	a.profiles[p.UserID] = p
}

// SetCurrentUser selects the user for current-user operations.
func (a *Agent) SetCurrentUser(userID string) error {
	if _, ok := a.profiles[userID]; !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	a.current = userID
	return nil
}

// CurrentUser returns the selected profile.
func (a *Agent) CurrentUser() (*model.Profile, error) {
	if a.current == "" {
		return nil, ErrNoCurrentUser
	}
	return a.User(a.current)
}

// User returns the profile for userID.
func (a *Agent) User(userID string) (*model.Profile, error) {
	p, ok := a.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return p, nil
}

// Users returns every profile in creation order.
func (a *Agent) Users() []*model.Profile {
	out := make([]*model.Profile, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.profiles[id])
	}
	return out
}

// AddPreference records a preference for the current user. The bool reports
// whether the value was new; unrecognized kinds and categories are ignored.
func (a *Agent) AddPreference(kind model.Kind, category string, value any) (bool, error) {
	p, err := a.CurrentUser()
	if err != nil {
		return false, err
	}
	return p.AddPreference(kind, category, value), nil
}

// AddPreferenceFor records a preference for userID.
func (a *Agent) AddPreferenceFor(userID string, kind model.Kind, category string, value any) (bool, error) {
	p, err := a.User(userID)
	if err != nil {
		return false, err
	}
	return p.AddPreference(kind, category, value), nil
}

// AddToHistory marks an item as consumed by the current user.
func (a *Agent) AddToHistory(kind model.Kind, itemID string) (bool, error) {
	p, err := a.CurrentUser()
	if err != nil {
		return false, err
	}
	return p.AddToHistory(kind, itemID), nil
}

// AddToHistoryFor marks an item as consumed by userID.
func (a *Agent) AddToHistoryFor(userID string, kind model.Kind, itemID string) (bool, error) {
	p, err := a.User(userID)
	if err != nil {
		return false, err
	}
	return p.AddToHistory(kind, itemID), nil
}
