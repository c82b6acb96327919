package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/birthday-wall/internal/dto"
	"github.com/lshigami/birthday-wall/internal/model"
	"github.com/lshigami/birthday-wall/internal/repository"
	"github.com/rs/zerolog/log"
)

// BirthdayPostService manages messages on the birthday wall. It offers the same
// read-after-write guarantee as TriviaService.
type BirthdayPostService interface {
	CreatePost(ctx context.Context, req dto.BirthdayPostCreateDTO) (*dto.BirthdayPostDTO, error)
	ListPosts(ctx context.Context) ([]dto.BirthdayPostDTO, error)
}

type birthdayPostService struct {
	repo repository.BirthdayPostRepository
	now  Clock
}

func NewBirthdayPostService(repo repository.BirthdayPostRepository, now Clock) BirthdayPostService {
	return &birthdayPostService{repo: repo, now: now}
}

// CreatePost stores a post. The number of images is not limited here; the upload
// form caps it.
func (s *birthdayPostService) CreatePost(ctx context.Context, req dto.BirthdayPostCreateDTO) (*dto.BirthdayPostDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || strings.TrimSpace(req.Message) == "" {
		return nil, validationError("Name and message are required")
	}

	post := model.BirthdayPost{
		Name:      name,
		Message:   req.Message,
		ImageURLs: model.ImageURLs(append([]string{}, req.ImageURLs...)),
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.repo.Create(ctx, &post); err != nil {
		log.Error().Err(err).Str("name", name).Msg("CreatePost: insert failed")
		return nil, storeError("create birthday post", err)
	}

	log.Info().Uint("postID", post.ID).Str("name", name).Int("images", len(post.ImageURLs)).Msg("Birthday post stored")

	out, err := toPostDTO(&post)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *birthdayPostService) ListPosts(ctx context.Context) ([]dto.BirthdayPostDTO, error) {
	posts, err := s.repo.FindAllNewestFirst(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListPosts: query failed")
		return nil, storeError("list birthday posts", err)
	}

	out := make([]dto.BirthdayPostDTO, 0, len(posts))
	for i := range posts {
		item, err := toPostDTO(&posts[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func toPostDTO(post *model.BirthdayPost) (dto.BirthdayPostDTO, error) {
	var out dto.BirthdayPostDTO
	if err := copier.CopyWithOption(&out, post, copier.Option{IgnoreEmpty: true}); err != nil {
		return dto.BirthdayPostDTO{}, fmt.Errorf("map birthday post %d: %w", post.ID, err)
	}
	// always a JSON array, never null
	out.ImageURLs = append([]string{}, post.ImageURLs...)
	return out, nil
}
