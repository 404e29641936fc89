package db

import (
	"context"
	"testing"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/database/dbtest"
	"vidtube.com/pkg/utils"
)

func TestUserQueries(t *testing.T) {
	Init(dbtest.New(t))
	ctx := context.Background()

	alice := &model.User{UserId: utils.NextID(), UserName: "alice", Email: "alice@example.com", Password: "x"}
	if err := CreateUser(ctx, alice); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name, username, email string
		want                  bool
	}{
		{"same name", "alice", "other@example.com", true},
		{"same email", "bob", "alice@example.com", true},
		{"fresh", "bob", "bob@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckUserDuplicate(ctx, tt.username, tt.email)
			if err != nil || got != tt.want {
				t.Fatalf("CheckUserDuplicate = %v, %v", got, err)
			}
		})
	}

	if ok, _ := CheckUserExistById(ctx, alice.UserId); !ok {
		t.Fatal("alice missing")
	}
	u, err := GetUserByName(ctx, "alice")
	if err != nil || u.UserId != alice.UserId {
		t.Fatalf("GetUserByName = %+v, %v", u, err)
	}
}

func TestAttachVideoOwners(t *testing.T) {
	Init(dbtest.New(t))
	ctx := context.Background()

	alice := &model.User{UserId: utils.NextID(), UserName: "alice", Email: "a@example.com"}
	if err := CreateUser(ctx, alice); err != nil {
		t.Fatal(err)
	}
	videos := []*model.Video{{OwnerId: alice.UserId}, {OwnerId: alice.UserId}, {OwnerId: 12345}}
	if err := AttachVideoOwners(ctx, videos); err != nil {
		t.Fatal(err)
	}
	if videos[0].Owner == nil || videos[0].Owner.UserName != "alice" || videos[1].Owner == nil {
		t.Fatalf("owner not attached: %+v", videos[0].Owner)
	}
	if videos[2].Owner != nil {
		t.Fatal("unknown owner should stay nil")
	}
}
