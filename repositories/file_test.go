package repositories

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"potluck/domain"
)

func testItem(name, dish string, section domain.Section) domain.Item {
	now := time.Now().UTC()
	return domain.Item{
		ID:        name + "-id",
		Name:      name,
		Dish:      dish,
		Section:   section,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func Test_File_Missing_Is_Empty(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "items.json")
	backend := NewFileBackend(path, slog.Default())
	items, err := backend.LoadAll(context.Background())
	req.NoError(err)
	req.Empty(items)
	// First run creates the empty array file.
	req.FileExists(path)
}

func Test_File_Round_Trip(t *testing.T) {
	req := require.New(t)
	backend := NewFileBackend(filepath.Join(t.TempDir(), "data", "items.json"), slog.Default())
	items := []domain.Item{
		testItem("Amy", "Salad", domain.SectionAppetizers),
		testItem("Bob", "Brownies", domain.SectionDessert),
	}
	req.NoError(backend.Flush(context.Background(), items))

	loaded, err := backend.LoadAll(context.Background())
	req.NoError(err)
	req.Equal(items, loaded)
}

func Test_File_Flush_Overwrites_Previous_State(t *testing.T) {
	req := require.New(t)
	backend := NewFileBackend(filepath.Join(t.TempDir(), "items.json"), slog.Default())
	ctx := context.Background()
	req.NoError(backend.Flush(ctx, []domain.Item{
		testItem("Amy", "Salad", domain.SectionAppetizers),
		testItem("Bob", "Brownies", domain.SectionDessert),
	}))
	kept := testItem("Amy", "Salad", domain.SectionAppetizers)
	req.NoError(backend.Flush(ctx, []domain.Item{kept}))

	loaded, err := backend.LoadAll(ctx)
	req.NoError(err)
	req.Equal([]domain.Item{kept}, loaded)
}
