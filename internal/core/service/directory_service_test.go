package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/staffdir/user-directory/internal/core/domain"
	"github.com/staffdir/user-directory/internal/core/ports"
)

func intPtr(v int) *int { return &v }

func TestDirectoryService_List_NoFilter(t *testing.T) {
	store := &stubUserStore{users: fixtureUsers()}
	svc := NewDirectoryService(store, zerolog.Nop())

	got, err := svc.List(context.Background(), ports.UserFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 users, got %d", len(got))
	}
	for i, u := range got {
		if u.ID != i+1 {
			t.Fatalf("order not preserved: position %d has id %d", i, u.ID)
		}
	}
}

func TestDirectoryService_List_ByRoleSubstring(t *testing.T) {
	store := &stubUserStore{users: fixtureUsers()}
	svc := NewDirectoryService(store, zerolog.Nop())

	got, err := svc.List(context.Background(), ports.UserFilter{Role: "user"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("expected 6 users, got %d", len(got))
	}
	prev := 0
	for _, u := range got {
		if !strings.Contains(strings.ToLower(u.Role), "user") {
			t.Fatalf("user %d has role %q", u.ID, u.Role)
		}
		if u.ID <= prev {
			t.Fatalf("order not preserved: id %d after id %d", u.ID, prev)
		}
		prev = u.ID
	}
}

func TestDirectoryService_List_RoleSubstringMatchesSuperset(t *testing.T) {
	store := &stubUserStore{users: []domain.User{
		{ID: 1, Username: "root", Password: "x", Name: "Root", Role: "superuser"},
		{ID: 2, Username: "adm", Password: "x", Name: "Adm", Role: "admin"},
	}}
	svc := NewDirectoryService(store, zerolog.Nop())

	got, err := svc.List(context.Background(), ports.UserFilter{Role: "user"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only the superuser record, got %+v", got)
	}
}

func TestDirectoryService_List_ByID(t *testing.T) {
	store := &stubUserStore{users: fixtureUsers()}
	svc := NewDirectoryService(store, zerolog.Nop())

	got, err := svc.List(context.Background(), ports.UserFilter{ID: intPtr(1)})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected single user with id 1, got %+v", got)
	}

	got, err = svc.List(context.Background(), ports.UserFilter{ID: intPtr(999)})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result for id 999, got %d users", len(got))
	}
}

func TestDirectoryService_List_IDZeroIsARealFilter(t *testing.T) {
	store := &stubUserStore{users: fixtureUsers()}
	svc := NewDirectoryService(store, zerolog.Nop())

	// An explicit id=0 filters (and matches nothing, ids are positive); it is
	// not treated as an absent criterion.
	got, err := svc.List(context.Background(), ports.UserFilter{ID: intPtr(0)})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result for id 0, got %d users", len(got))
	}
}

func TestDirectoryService_List_ByNameCaseInsensitive(t *testing.T) {
	store := &stubUserStore{users: fixtureUsers()}
	svc := NewDirectoryService(store, zerolog.Nop())

	got, err := svc.List(context.Background(), ports.UserFilter{Name: "alice"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Alice" {
		t.Fatalf("expected Alice, got %+v", got)
	}

	got, err = svc.List(context.Background(), ports.UserFilter{Name: "AR"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	// "AR" matches Tom Hardy, Neha Sharma and Mark Lee.
	if len(got) != 3 {
		t.Fatalf("expected 3 substring matches, got %d", len(got))
	}
}

func TestDirectoryService_List_Conjunction(t *testing.T) {
	store := &stubUserStore{users: fixtureUsers()}
	svc := NewDirectoryService(store, zerolog.Nop())

	got, err := svc.List(context.Background(), ports.UserFilter{ID: intPtr(3), Role: "user"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 3 || got[0].Role != "user" {
		t.Fatalf("expected user 3 with role user, got %+v", got)
	}

	// Criteria that individually match but never together.
	got, err = svc.List(context.Background(), ports.UserFilter{ID: intPtr(1), Role: "manager"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestDirectoryService_List_StoreError(t *testing.T) {
	store := &stubUserStore{err: domain.ErrStoreUnavailable}
	svc := NewDirectoryService(store, zerolog.Nop())

	if _, err := svc.List(context.Background(), ports.UserFilter{}); err != domain.ErrStoreUnavailable {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestDirectoryService_List_ProjectionOmitsCredentials(t *testing.T) {
	store := &stubUserStore{users: fixtureUsers()}
	svc := NewDirectoryService(store, zerolog.Nop())

	got, err := svc.List(context.Background(), ports.UserFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, "username") || strings.Contains(body, "password") {
		t.Fatalf("projection leaked credential fields: %s", body)
	}
}
