package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"Bookmarker/internal/cache"
	dom "Bookmarker/internal/domain"
	"Bookmarker/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

type BookmarkService struct {
	repo  repo.BookmarkRepo
	cache *cache.BookmarkCache
	sf    singleflight.Group
}

// NewBookmarkService creates a BookmarkService. If c is nil, caching is disabled.
func NewBookmarkService(r repo.BookmarkRepo, c *cache.BookmarkCache) *BookmarkService {
	return &BookmarkService{repo: r, cache: c}
}

func (s *BookmarkService) Create(ctx context.Context, userID int64, title, desc, link string) (dom.Bookmark, error) {
	b, err := s.repo.Create(ctx, dom.Bookmark{
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(desc),
		Link:        strings.TrimSpace(link),
	})
	if err != nil {
		return dom.Bookmark{}, err
	}
	s.invalidateCache(ctx, userID)
	return b, nil
}

func (s *BookmarkService) List(ctx context.Context, userID int64) ([]dom.Bookmark, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Bookmark), nil
	}
	return s.repo.List(ctx, userID)
}

func (s *BookmarkService) GetByID(ctx context.Context, userID, id int64) (dom.Bookmark, error) {
	b, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Bookmark{}, ErrNotFound
		}
		return dom.Bookmark{}, err
	}
	return b, nil
}

func (s *BookmarkService) Update(ctx context.Context, userID, id int64, title, desc, link *string) (dom.Bookmark, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Bookmark{}, ErrNotFound
		}
		return dom.Bookmark{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	if link != nil {
		patch.Link = strings.TrimSpace(*link)
	}
	b, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Bookmark{}, ErrNotFound
		}
		return dom.Bookmark{}, err
	}
	s.invalidateCache(ctx, userID)
	return b, nil
}

func (s *BookmarkService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *BookmarkService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
