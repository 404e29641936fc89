package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pkg/errors"

	"vidtube.com/cmd/dal"
	"vidtube.com/cmd/model"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/database/dbtest"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/utils"
)

type memoryStore struct {
	mu      sync.Mutex
	objects map[string]string
	fail    bool
}

func (m *memoryStore) Upload(_ context.Context, path, bucket, objectName, _ string) (oss.Object, error) {
	if m.fail {
		return oss.Object{}, errors.New("minio down")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[bucket+"/"+objectName] = path
	return oss.Object{URL: "http://media/" + bucket + "/" + objectName, StorageID: objectName}, nil
}

func (m *memoryStore) Remove(_ context.Context, bucket, storageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, bucket+"/"+storageID)
	return nil
}

type stillFrames struct{}

func (stillFrames) Thumbnail(_ string, dir string) (string, error) {
	path := filepath.Join(dir, "thumbnail.jpg")
	return path, os.WriteFile(path, []byte("jpg"), 0o644)
}

func (stillFrames) Duration(string) (float64, error) { return 12.5, nil }

func setup(t *testing.T) (*memoryStore, *mq.Recorder) {
	t.Helper()
	dal.Init(dbtest.New(t))

	store := &memoryStore{objects: map[string]string{}}
	rec := &mq.Recorder{}
	oldStore, oldFrames, oldPub := oss.Default, Frames, mq.Default
	oss.Default, Frames, mq.Default = store, stillFrames{}, rec
	t.Cleanup(func() { oss.Default, Frames, mq.Default = oldStore, oldFrames, oldPub })
	return store, rec
}

func newUser(t *testing.T, name string) int64 {
	t.Helper()
	u := &model.User{UserId: utils.NextID(), UserName: name, Email: name + "@example.com"}
	if err := userdb.CreateUser(context.Background(), u); err != nil {
		t.Fatal(err)
	}
	return u.UserId
}

func spool(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("mp4"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func publish(t *testing.T, owner int64, title string) *model.Video {
	t.Helper()
	v, err := NewVideoUploadService(context.Background()).PublishVideo(&PublishVideoRequest{
		ActorId:  owner,
		Title:    title,
		FilePath: spool(t),
		FileName: "clip.mp4",
	})
	if err != nil {
		t.Fatalf("PublishVideo: %v", err)
	}
	return v
}

func code(err error) int64 {
	return errno.ConvertErr(err).ErrCode
}

func TestPublishVideo(t *testing.T) {
	store, rec := setup(t)
	owner := newUser(t, "alice")

	v := publish(t, owner, "  Intro  ")
	if v.Title != "Intro" || !v.IsPublished || v.Duration != 12.5 {
		t.Fatalf("unexpected video %+v", v)
	}
	if v.VideoUrl == "" || v.ThumbnailUrl == "" || v.Owner == nil || v.Owner.UserName != "alice" {
		t.Fatalf("media or owner missing: %+v", v)
	}
	if len(store.objects) != 2 {
		t.Fatalf("objects = %v", store.objects)
	}
	if types := rec.Types(); len(types) != 1 || types[0] != mq.EventVideoPublished {
		t.Fatalf("events = %v", types)
	}
}

func TestPublishVideoRejects(t *testing.T) {
	store, _ := setup(t)
	owner := newUser(t, "alice")
	svc := NewVideoUploadService(context.Background())

	tests := []struct {
		name string
		req  *PublishVideoRequest
		fail bool
		code int64
	}{
		{name: "blank title", req: &PublishVideoRequest{ActorId: owner, Title: " ", FilePath: "x"}, code: errno.MissingFieldCode},
		{name: "no file", req: &PublishVideoRequest{ActorId: owner, Title: "t"}, code: errno.MissingFieldCode},
		{name: "upload failure", req: &PublishVideoRequest{ActorId: owner, Title: "t", FilePath: "x"}, fail: true, code: errno.UpstreamErrCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store.fail = tt.fail
			defer func() { store.fail = false }()
			if _, err := svc.PublishVideo(tt.req); code(err) != tt.code {
				t.Fatalf("code = %d, want %d (%v)", code(err), tt.code, err)
			}
		})
	}
	if n, _ := db.CountVideosByOwner(context.Background(), owner); n != 0 {
		t.Fatalf("rejected publish stored %d videos", n)
	}
}

func TestGetVideoCountsViews(t *testing.T) {
	setup(t)
	v := publish(t, newUser(t, "alice"), "clip")
	svc := NewVideoService(context.Background())

	for want := int64(1); want <= 2; want++ {
		got, err := svc.GetVideo(0, v.VideoId)
		if err != nil {
			t.Fatal(err)
		}
		if got.Views != want {
			t.Fatalf("views = %d, want %d", got.Views, want)
		}
	}
	if _, err := svc.GetVideo(0, utils.NextID()); code(err) != errno.NotFoundCode {
		t.Fatalf("missing video: %v", err)
	}
}

func TestUnpublishedVideoOwnerOnly(t *testing.T) {
	setup(t)
	alice, bob := newUser(t, "alice"), newUser(t, "bob")
	v := publish(t, alice, "draft")
	svc := NewVideoService(context.Background())
	if _, err := svc.TogglePublish(alice, v.VideoId); err != nil {
		t.Fatal(err)
	}

	for _, viewer := range []int64{0, bob} {
		if _, err := svc.GetVideo(viewer, v.VideoId); code(err) != errno.NotFoundCode {
			t.Fatalf("viewer %d: %v", viewer, err)
		}
	}
	got, err := svc.GetVideo(alice, v.VideoId)
	if err != nil {
		t.Fatal(err)
	}
	if got.Views != 1 {
		t.Fatalf("views = %d, hidden reads must not count", got.Views)
	}
}

func TestVideoOwnership(t *testing.T) {
	setup(t)
	alice, bob := newUser(t, "alice"), newUser(t, "bob")
	v := publish(t, alice, "clip")
	svc := NewVideoService(context.Background())
	title := "hijacked"

	if _, err := svc.UpdateVideo(&UpdateVideoRequest{ActorId: bob, VideoId: v.VideoId, Title: &title}); code(err) != errno.ForbiddenCode {
		t.Fatalf("update by stranger: %v", err)
	}
	if err := svc.DeleteVideo(bob, v.VideoId); code(err) != errno.ForbiddenCode {
		t.Fatalf("delete by stranger: %v", err)
	}
	if _, err := svc.TogglePublish(bob, v.VideoId); code(err) != errno.ForbiddenCode {
		t.Fatalf("toggle by stranger: %v", err)
	}
	got, err := db.GetVideo(context.Background(), v.VideoId)
	if err != nil || got.Title != "clip" || !got.IsPublished {
		t.Fatalf("video changed: %+v, %v", got, err)
	}
}

func TestUpdateVideo(t *testing.T) {
	store, _ := setup(t)
	alice := newUser(t, "alice")
	v := publish(t, alice, "clip")
	svc := NewVideoService(context.Background())

	title, thumb, blank := "better", "http://cdn/custom.jpg", "  "
	got, err := svc.UpdateVideo(&UpdateVideoRequest{ActorId: alice, VideoId: v.VideoId, Title: &title, Thumbnail: &thumb})
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "better" || got.ThumbnailUrl != thumb || got.Description != "" {
		t.Fatalf("unexpected %+v", got)
	}
	if len(store.objects) != 1 {
		t.Fatalf("replaced thumbnail not removed: %v", store.objects)
	}
	if _, err = svc.UpdateVideo(&UpdateVideoRequest{ActorId: alice, VideoId: v.VideoId, Title: &blank}); code(err) != errno.MissingFieldCode {
		t.Fatalf("blank title: %v", err)
	}
}

func TestTogglePublishAndListing(t *testing.T) {
	setup(t)
	alice := newUser(t, "alice")
	v := publish(t, alice, "clip")
	publish(t, alice, "other")
	ctx := context.Background()

	got, err := NewVideoService(ctx).TogglePublish(alice, v.VideoId)
	if err != nil || got.IsPublished {
		t.Fatalf("toggle: %+v, %v", got, err)
	}
	page, err := NewVideoListService(ctx).ListVideos(&ListVideosRequest{OwnerId: alice})
	if err != nil {
		t.Fatal(err)
	}
	if page.TotalVideos != 1 || page.Videos[0].Title != "other" || page.Videos[0].Owner == nil {
		t.Fatalf("unpublished video listed: %+v", page)
	}
}

func TestListVideosPagination(t *testing.T) {
	setup(t)
	alice := newUser(t, "alice")
	for i := 0; i < 15; i++ {
		publish(t, alice, "clip")
	}
	svc := NewVideoListService(context.Background())

	page, err := svc.ListVideos(&ListVideosRequest{Page: 2, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Videos) != 5 || page.TotalPages != 2 || page.TotalVideos != 15 {
		t.Fatalf("page = %d items, %d pages", len(page.Videos), page.TotalPages)
	}
	page, _ = svc.ListVideos(&ListVideosRequest{Page: -3, Limit: 1000})
	if page.Page != 1 || page.Limit != 100 || len(page.Videos) != 15 {
		t.Fatalf("clamped page = %+v", page)
	}
}

func TestDeleteVideoRemovesMedia(t *testing.T) {
	store, rec := setup(t)
	alice := newUser(t, "alice")
	v := publish(t, alice, "clip")

	if err := NewVideoService(context.Background()).DeleteVideo(alice, v.VideoId); err != nil {
		t.Fatal(err)
	}
	if len(store.objects) != 0 {
		t.Fatalf("media left: %v", store.objects)
	}
	if ok, _ := db.CheckVideoVisible(context.Background(), v.VideoId, alice); ok {
		t.Fatal("video survived")
	}
	types := rec.Types()
	if types[len(types)-1] != mq.EventVideoDeleted {
		t.Fatalf("events = %v", types)
	}
}
