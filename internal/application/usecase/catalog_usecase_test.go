package usecase_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fizxxc/digital-store/internal/application/usecase"
	productdom "github.com/Fizxxc/digital-store/internal/domain/product"
)

func validInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        "App A",
		Category:    "app",
		Price:       10000,
		Stock:       5,
		Description: "x",
		Details:     []string{"f1"},
	}
}

func TestCatalogCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid input creates with both timestamps", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProductRepo()
		uc := usecase.NewCatalogUsecaseWithClock(repo, nil, fakeClock{testNow})

		p, err := uc.Create(ctx, validInput())
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, testNow, p.CreatedAt)
		assert.Equal(t, testNow, p.UpdatedAt)
		assert.Equal(t, 1, repo.writes)
	})

	t.Run("empty details rejected with zero store calls", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProductRepo()
		uc := usecase.NewCatalogUsecaseWithClock(repo, nil, fakeClock{testNow})

		in := validInput()
		in.Details = nil
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, productdom.ErrInvalidDetails)
		assert.Zero(t, repo.writes)
	})

	t.Run("invalid fields rejected with zero store calls", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name   string
			mutate func(*usecase.ProductInput)
			want   error
		}{
			{"empty name", func(in *usecase.ProductInput) { in.Name = " " }, productdom.ErrInvalidName},
			{"bad category", func(in *usecase.ProductInput) { in.Category = "food" }, productdom.ErrInvalidCategory},
			{"negative price", func(in *usecase.ProductInput) { in.Price = -10 }, productdom.ErrInvalidPrice},
			{"stock below sentinel", func(in *usecase.ProductInput) { in.Stock = -2 }, productdom.ErrInvalidStock},
			{"empty description", func(in *usecase.ProductInput) { in.Description = "" }, productdom.ErrInvalidDescription},
		}
		for _, tc := range cases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				repo := newFakeProductRepo()
				uc := usecase.NewCatalogUsecaseWithClock(repo, nil, fakeClock{testNow})

				in := validInput()
				tc.mutate(&in)
				_, err := uc.Create(ctx, in)
				assert.ErrorIs(t, err, tc.want)
				assert.Zero(t, repo.writes)
			})
		}
	})
}

func TestCatalogUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("sets updatedAt and keeps createdAt", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProductRepo(seedProduct("p1", "App A", productdom.CategoryApp, 10000, 5))
		later := testNow.Add(time.Hour)
		uc := usecase.NewCatalogUsecaseWithClock(repo, nil, fakeClock{later})

		in := validInput()
		in.Name = "App A v2"
		p, err := uc.Update(ctx, "p1", in)
		require.NoError(t, err)
		assert.Equal(t, "App A v2", p.Name)
		assert.Equal(t, testNow, p.CreatedAt)
		assert.Equal(t, later, p.UpdatedAt)
	})

	t.Run("empty details rejected, stored product unchanged", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProductRepo(seedProduct("p1", "App A", productdom.CategoryApp, 10000, 5))
		uc := usecase.NewCatalogUsecaseWithClock(repo, nil, fakeClock{testNow})

		in := validInput()
		in.Details = []string{"  "}
		_, err := uc.Update(ctx, "p1", in)
		assert.ErrorIs(t, err, productdom.ErrInvalidDetails)
		assert.Zero(t, repo.writes)

		stored, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "App A", stored.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewCatalogUsecaseWithClock(newFakeProductRepo(), nil, fakeClock{testNow})
		_, err := uc.Update(ctx, "nope", validInput())
		assert.ErrorIs(t, err, productdom.ErrNotFound)
	})
}

func TestCatalogListAndSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeProductRepo(
		seedProduct("p1", "App A", productdom.CategoryApp, 10000, 5),
		seedProduct("p2", "Service B", productdom.CategoryService, 20000, -1),
		seedProduct("p3", "App C", productdom.CategoryApp, 5000, 0),
	)
	uc := usecase.NewCatalogUsecaseWithClock(repo, nil, fakeClock{testNow})

	t.Run("list by category", func(t *testing.T) {
		t.Parallel()

		apps, err := uc.ListByCategory(ctx, "app")
		require.NoError(t, err)
		assert.Len(t, apps, 2)
		for _, p := range apps {
			assert.Equal(t, productdom.CategoryApp, p.Category)
		}

		_, err = uc.ListByCategory(ctx, "toys")
		assert.ErrorIs(t, err, productdom.ErrInvalidCategory)
	})

	t.Run("search matches name or description case-insensitively", func(t *testing.T) {
		t.Parallel()

		hits, err := uc.Search(ctx, "aPp")
		require.NoError(t, err)
		assert.Len(t, hits, 2)

		hits, err = uc.Search(ctx, "desc")
		require.NoError(t, err)
		assert.Len(t, hits, 3)

		hits, err = uc.Search(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("empty term returns everything", func(t *testing.T) {
		t.Parallel()

		hits, err := uc.Search(ctx, "  ")
		require.NoError(t, err)
		assert.Len(t, hits, 3)
	})
}

func TestCatalogRelated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seed := []productdom.Product{seedProduct("p0", "App 0", productdom.CategoryApp, 1, 1)}
	for i := 1; i <= 6; i++ {
		seed = append(seed, seedProduct(
			"p"+string(rune('0'+i)), "App "+string(rune('0'+i)), productdom.CategoryApp, 1, 1))
	}
	seed = append(seed, seedProduct("s1", "Svc", productdom.CategoryService, 1, 1))
	uc := usecase.NewCatalogUsecaseWithClock(newFakeProductRepo(seed...), nil, fakeClock{testNow})

	related, err := uc.Related(ctx, "p0")
	require.NoError(t, err)
	assert.Len(t, related, 4)
	for _, p := range related {
		assert.NotEqual(t, "p0", p.ID)
		assert.Equal(t, productdom.CategoryApp, p.Category)
	}
}

func TestCatalogDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeProductRepo(seedProduct("p1", "App A", productdom.CategoryApp, 10000, 5))
	uc := usecase.NewCatalogUsecaseWithClock(repo, nil, fakeClock{testNow})

	// Unconditional even for an unknown id.
	require.NoError(t, uc.Delete(ctx, "ghost"))
	require.NoError(t, uc.Delete(ctx, "p1"))

	_, err := uc.GetByID(ctx, "p1")
	assert.ErrorIs(t, err, productdom.ErrNotFound)
}

type fakeImageStore struct {
	uploads int
	deletes int
}

func (f *fakeImageStore) Upload(_ context.Context, productID, fileName, _ string, _ io.Reader) (string, error) {
	f.uploads++
	return "https://storage.googleapis.com/test-bucket/products/" + productID + "/" + fileName, nil
}

func (f *fakeImageStore) Delete(context.Context, string, string) error {
	f.deletes++
	return nil
}

func TestCatalogAttachImage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("records public url and bumps updatedAt", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProductRepo(seedProduct("p1", "App A", productdom.CategoryApp, 10000, 5))
		images := &fakeImageStore{}
		later := testNow.Add(time.Hour)
		uc := usecase.NewCatalogUsecaseWithClock(repo, images, fakeClock{later})

		p, err := uc.AttachImage(ctx, "p1", "cover.png", "image/png", strings.NewReader("png-bytes"))
		require.NoError(t, err)
		assert.Equal(t, 1, images.uploads)
		assert.Equal(t, "https://storage.googleapis.com/test-bucket/products/p1/cover.png", p.ImageURL)
		assert.Equal(t, later, p.UpdatedAt)

		stored, err := uc.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, p.ImageURL, stored.ImageURL)
	})

	t.Run("unknown product uploads nothing", func(t *testing.T) {
		t.Parallel()

		images := &fakeImageStore{}
		uc := usecase.NewCatalogUsecaseWithClock(newFakeProductRepo(), images, fakeClock{testNow})

		_, err := uc.AttachImage(ctx, "ghost", "cover.png", "image/png", strings.NewReader("x"))
		assert.ErrorIs(t, err, productdom.ErrNotFound)
		assert.Zero(t, images.uploads)
	})

	t.Run("no image store configured", func(t *testing.T) {
		t.Parallel()

		uc := usecase.NewCatalogUsecaseWithClock(newFakeProductRepo(), nil, fakeClock{testNow})
		_, err := uc.AttachImage(ctx, "p1", "cover.png", "image/png", strings.NewReader("x"))
		assert.ErrorIs(t, err, usecase.ErrCatalogNoImageStore)
	})

	t.Run("delete cleans up the stored image", func(t *testing.T) {
		t.Parallel()

		repo := newFakeProductRepo(seedProduct("p1", "App A", productdom.CategoryApp, 10000, 5))
		images := &fakeImageStore{}
		uc := usecase.NewCatalogUsecaseWithClock(repo, images, fakeClock{testNow})

		_, err := uc.AttachImage(ctx, "p1", "cover.png", "image/png", strings.NewReader("x"))
		require.NoError(t, err)

		require.NoError(t, uc.Delete(ctx, "p1"))
		assert.Equal(t, 1, images.deletes)
	})
}
