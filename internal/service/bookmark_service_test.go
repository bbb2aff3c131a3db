package service

import (
	"context"
	"errors"
	"testing"

	dom "Bookmarker/internal/domain"

	"github.com/jackc/pgx/v5"
)

type fakeBookmarkRepo struct {
	byID map[int64]dom.Bookmark

	created    []dom.Bookmark
	updated    *dom.Bookmark
	deletedIDs []int64
	listOut    []dom.Bookmark
	listErr    error
}

func (f *fakeBookmarkRepo) Create(ctx context.Context, b dom.Bookmark) (dom.Bookmark, error) {
	b.ID = int64(len(f.created) + 1)
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBookmarkRepo) GetByID(ctx context.Context, userID, id int64) (dom.Bookmark, error) {
	b, ok := f.byID[id]
	if !ok || b.UserID != userID {
		return dom.Bookmark{}, pgx.ErrNoRows
	}
	return b, nil
}

func (f *fakeBookmarkRepo) List(ctx context.Context, userID int64) ([]dom.Bookmark, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeBookmarkRepo) Update(ctx context.Context, userID, id int64, patch dom.Bookmark) (dom.Bookmark, error) {
	if _, ok := f.byID[id]; !ok {
		return dom.Bookmark{}, pgx.ErrNoRows
	}
	patch.ID = id
	patch.UserID = userID
	f.updated = &patch
	return patch, nil
}

func (f *fakeBookmarkRepo) Delete(ctx context.Context, userID, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func TestBookmarkCreate_TrimsFields(t *testing.T) {
	t.Parallel()

	f := &fakeBookmarkRepo{}
	s := NewBookmarkService(f, nil)

	b, err := s.Create(context.Background(), 1, "  Title ", " desc ", " https://x.com ")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if b.Title != "Title" || b.Description != "desc" || b.Link != "https://x.com" {
		t.Fatalf("fields not trimmed: %+v", b)
	}
	if b.UserID != 1 {
		t.Fatalf("owner not set: %+v", b)
	}
}

func TestBookmarkGetByID_NotFoundAndForeignOwner(t *testing.T) {
	t.Parallel()

	f := &fakeBookmarkRepo{byID: map[int64]dom.Bookmark{
		5: {ID: 5, UserID: 2, Title: "theirs"},
	}}
	s := NewBookmarkService(f, nil)

	if _, err := s.GetByID(context.Background(), 1, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetByID(context.Background(), 1, 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign owner: expected ErrNotFound, got %v", err)
	}
}

func TestBookmarkUpdate_MergePatch(t *testing.T) {
	t.Parallel()

	f := &fakeBookmarkRepo{byID: map[int64]dom.Bookmark{
		3: {ID: 3, UserID: 1, Title: "old", Description: "keep", Link: "https://old.com"},
	}}
	s := NewBookmarkService(f, nil)

	title := "new"
	b, err := s.Update(context.Background(), 1, 3, &title, nil, nil)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if b.Title != "new" || b.Description != "keep" || b.Link != "https://old.com" {
		t.Fatalf("merge patch broken: %+v", b)
	}
}

func TestBookmarkUpdate_NotFound(t *testing.T) {
	t.Parallel()

	s := NewBookmarkService(&fakeBookmarkRepo{}, nil)

	title := "x"
	if _, err := s.Update(context.Background(), 1, 9, &title, nil, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBookmarkDelete(t *testing.T) {
	t.Parallel()

	f := &fakeBookmarkRepo{}
	s := NewBookmarkService(f, nil)

	if err := s.Delete(context.Background(), 1, 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if len(f.deletedIDs) != 1 || f.deletedIDs[0] != 7 {
		t.Fatalf("delete not delegated: %v", f.deletedIDs)
	}
}

func TestBookmarkList_NoCacheFallsThrough(t *testing.T) {
	t.Parallel()

	f := &fakeBookmarkRepo{listOut: []dom.Bookmark{{ID: 1, UserID: 1, Title: "a"}}}
	s := NewBookmarkService(f, nil)

	list, err := s.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 || list[0].Title != "a" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
