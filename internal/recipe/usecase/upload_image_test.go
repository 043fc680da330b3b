package usecase

import (
	"strings"
	"testing"

	"github.com/anshy0304/veggiefinder/internal/pkg/goerror"
)

func TestUploadImage_Success(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	resp, err := fx.uc.UploadImage(authedCtx(1), UploadImageInput{
		RecipeID:    42,
		File:        strings.NewReader("fake image bytes"),
		ContentType: "image/png",
	})

	// Assert
	if err != nil {
		t.Fatalf("UploadImage() error = %v, want nil", err)
	}
	want := "https://cdn.example.com/42/image-key.png"
	if resp.ImageURL != want {
		t.Errorf("image url = %q, want %q", resp.ImageURL, want)
	}
	if len(fx.storage.putKeys) != 1 || fx.storage.putKeys[0] != "42/image-key.png" {
		t.Errorf("put keys = %v, want [42/image-key.png]", fx.storage.putKeys)
	}
	if fx.repo.imagesSet[42] != want {
		t.Errorf("stored url = %q, want %q", fx.repo.imagesSet[42], want)
	}
}

func TestUploadImage_RejectsUnsupportedContentType(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	_, err := fx.uc.UploadImage(authedCtx(1), UploadImageInput{
		RecipeID:    42,
		File:        strings.NewReader("%PDF-1.4"),
		ContentType: "application/pdf",
	})

	// Assert
	if err == nil {
		t.Fatal("UploadImage() error = nil, want invalid input")
	}
	if asGoError(t, err).Code() != goerror.CodeInvalidInput {
		t.Errorf("code = %v, want CodeInvalidInput", asGoError(t, err).Code())
	}
	if len(fx.storage.putKeys) != 0 {
		t.Errorf("put keys = %v, want none", fx.storage.putKeys)
	}
}

func TestUploadImage_RejectsOversizedFile(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	oversized := strings.NewReader(strings.Repeat("x", (1<<20)+1))

	// Act
	_, err := fx.uc.UploadImage(authedCtx(1), UploadImageInput{
		RecipeID:    42,
		File:        oversized,
		ContentType: "image/jpeg",
	})

	// Assert
	if err == nil {
		t.Fatal("UploadImage() error = nil, want invalid input")
	}
	if asGoError(t, err).Code() != goerror.CodeInvalidInput {
		t.Errorf("code = %v, want CodeInvalidInput", asGoError(t, err).Code())
	}
}

func TestUploadImage_ForeignRecipeLooksMissing(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	fx.repo.setImgErr = goerror.ErrNotFound

	// Act
	_, err := fx.uc.UploadImage(authedCtx(1), UploadImageInput{
		RecipeID:    42,
		File:        strings.NewReader("fake image bytes"),
		ContentType: "image/webp",
	})

	// Assert
	if err == nil {
		t.Fatal("UploadImage() error = nil, want not found")
	}
	if asGoError(t, err).Code() != goerror.CodeNotFound {
		t.Errorf("code = %v, want CodeNotFound", asGoError(t, err).Code())
	}
}
