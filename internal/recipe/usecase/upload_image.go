package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
	"github.com/anshy0304/veggiefinder/internal/pkg/storage"
)

//nolint:gochecknoglobals // global for fast reuse
var imageContentTypeExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var errImageTooLarge = errors.New("recipe image exceeds max size")

type UploadImageInput struct {
	RecipeID    int64
	File        io.Reader
	ContentType string
}

type UploadImageOutput struct {
	ImageURL string
}

func (s *Usecase) UploadImage(ctx context.Context, in UploadImageInput) (*UploadImageOutput, error) {
	ctx, span := s.startSpan(ctx, "UploadImage")
	defer span.End()

	accountID, err := s.callerID(ctx)
	if err != nil {
		return nil, err
	}

	if in.RecipeID <= 0 {
		return nil, goerror.NewInvalidInput(nil, "id", "recipe id is required")
	}
	if in.File == nil {
		return nil, goerror.NewInvalidInput(nil, "image", "image file is required")
	}

	contentType := strings.ToLower(strings.TrimSpace(in.ContentType))
	ext, ok := imageContentTypeExt[contentType]
	if !ok {
		return nil, goerror.NewInvalidInput(nil, "image", "unsupported image content type")
	}

	bucket := strings.TrimSpace(s.cfg.GetString("modules.recipe.image_bucket"))
	baseURL := strings.TrimSpace(s.cfg.GetString("modules.recipe.image_base_url"))
	key := fmt.Sprintf("%d/%s%s", in.RecipeID, s.uuid.Generate(), ext)
	maxSize := s.cfg.GetInt64("modules.recipe.image_max_size_bytes")

	reader := &maxBytesReader{
		r:   in.File,
		max: maxSize,
	}
	_, err = s.storage.PutObject(ctx, bucket, key, reader, storage.PutOptions{
		Size:        -1,
		ContentType: contentType,
		Metadata:    map[string]string{"account_id": strconv.FormatInt(accountID, 10)},
	})
	if err != nil {
		if errors.Is(err, errImageTooLarge) {
			return nil, goerror.NewInvalidInput(errImageTooLarge)
		}
		slog.ErrorContext(ctx, "failed to upload recipe image", "recipe_id", in.RecipeID, "error", err)
		return nil, goerror.NewServer(err)
	}

	imageURL := baseURL + "/" + key
	err = s.repoDB.SetRecipeImage(ctx, in.RecipeID, accountID, imageURL)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Recipe not found.", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to set recipe image", "recipe_id", in.RecipeID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UploadImageOutput{ImageURL: imageURL}, nil
}

type maxBytesReader struct {
	r     io.Reader
	max   int64
	read  int64
	buf   [1]byte
	ended bool
}

func (m *maxBytesReader) Read(p []byte) (int, error) {
	if m.read >= m.max {
		if m.ended {
			return 0, errImageTooLarge
		}

		n, err := m.r.Read(m.buf[:])
		if n > 0 {
			m.ended = true
			return 0, errImageTooLarge
		}
		if err == nil {
			m.ended = true
			return 0, errImageTooLarge
		}
		return 0, err
	}

	remaining := m.max - m.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := m.r.Read(p)
	m.read += int64(n)
	return n, err
}
