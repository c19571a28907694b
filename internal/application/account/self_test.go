package account

import (
	"context"
	"testing"

	"github.com/baechuer/user-account-service/internal/domain"
)

func TestUpdateSelf_AppliesPatchAndReissuesToken(t *testing.T) {
	t.Parallel()

	svc, users, _, signer := newSvcForTest(t)
	reg, err := svc.Register(context.Background(), "alice", "a@x.com", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	newName := "alice2"
	newEmail := "A2@X.com"
	res, err := svc.UpdateSelf(context.Background(), reg.User.ID, domain.UserPatch{
		UserName: &newName,
		Email:    &newEmail,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.User.UserName != "alice2" || res.User.Email != "a2@x.com" {
		t.Fatalf("unexpected user: %+v", res.User)
	}
	if users.byID[reg.User.ID].UserName != "alice2" {
		t.Fatalf("store not updated")
	}
	if res.Token == reg.Token {
		t.Fatalf("expected a fresh token")
	}

	claims := signer.signed[len(signer.signed)-1]
	if claims.UserName != "alice2" || claims.Email != "a2@x.com" {
		t.Fatalf("reissued token must reflect the update: %+v", claims)
	}
}

func TestUpdateSelf_MissingUser_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newSvcForTest(t)

	name := "ghost"
	_, err := svc.UpdateSelf(context.Background(), "nope", domain.UserPatch{UserName: &name})
	requireDomainCode(t, err, "user_not_found")
}

func TestUpdateSelf_EmptyIdentity_TokenInvalid(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newSvcForTest(t)

	_, err := svc.UpdateSelf(context.Background(), "  ", domain.UserPatch{})
	requireDomainCode(t, err, "token_invalid")
}

func TestDeleteSelf_ReturnsSnapshotAndToken(t *testing.T) {
	t.Parallel()

	svc, users, _, _ := newSvcForTest(t)
	reg, err := svc.Register(context.Background(), "alice", "a@x.com", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.DeleteSelf(context.Background(), reg.User.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.User.UserName != "alice" {
		t.Fatalf("expected deleted snapshot, got %+v", res.User)
	}
	if res.Token == "" {
		t.Fatalf("expected reissued token")
	}
	if len(users.byID) != 0 {
		t.Fatalf("user should be gone")
	}

	// The identity is gone; a second delete reports not found.
	_, err = svc.DeleteSelf(context.Background(), reg.User.ID)
	requireDomainCode(t, err, "user_not_found")
}

func TestCheckToken_ExistingUser_Reissues(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newSvcForTest(t)
	reg, err := svc.Register(context.Background(), "alice", "a@x.com", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.CheckToken(context.Background(), reg.User.ID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Token == "" || res.User.ID != reg.User.ID {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestCheckToken_DeletedUser_TokenNotValid(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newSvcForTest(t)
	reg, err := svc.Register(context.Background(), "alice", "a@x.com", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.DeleteSelf(context.Background(), reg.User.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = svc.CheckToken(context.Background(), reg.User.ID)
	requireDomainCode(t, err, "token_not_valid")
}
