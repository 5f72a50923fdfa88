package ledger

import (
	"fmt"
	"log/slog"

	"github.com/smartsplit/smartsplit/internal/models"
)

// AddMember inserts a member with a zero balance. Adding an empty name or a
// name already present is a no-op, so the call is idempotent.
func (l *Ledger) AddMember(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.addMemberLocked(name)
}

func (l *Ledger) addMemberLocked(name string) {
	if name == "" {
		return
	}
	if _, exists := l.members[name]; exists {
		return
	}
	l.members[name] = &models.Member{Name: name}
	l.order = append(l.order, name)
	slog.Info("Member added", "name", name)
}

// RemoveMember removes a member from the registry. It fails with
// ErrNotFound for an unknown name and with ErrUnsettledBalance when the
// member's balance is not within epsilon of zero; in both cases the
// registry is left untouched.
func (l *Ledger) RemoveMember(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	member, exists := l.members[name]
	if !exists {
		return fmt.Errorf("remove %q: %w", name, ErrNotFound)
	}
	if !member.Settled() {
		return fmt.Errorf("remove %q: %w", name, ErrUnsettledBalance)
	}

	delete(l.members, name)
	for i, n := range l.order {
		if n == name {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	slog.Info("Member removed", "name", name)
	return nil
}

// Members returns the member names in insertion order.
func (l *Ledger) Members() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, len(l.order))
	copy(names, l.order)
	return names
}
