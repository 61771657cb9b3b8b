package repositories

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"potluck/domain"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Badger_Round_Trip(t *testing.T) {
	req := require.New(t)
	backend := NewBadgerBackend(openTestDB(t), slog.Default())
	ctx := context.Background()
	items := []domain.Item{
		testItem("Amy", "Salad", domain.SectionAppetizers),
		testItem("Bob", "Brownies", domain.SectionDessert),
		testItem("Clara", "Cider", domain.SectionBeverages),
	}
	req.NoError(backend.Flush(ctx, items))

	loaded, err := backend.LoadAll(ctx)
	req.NoError(err)
	req.ElementsMatch(items, loaded)
}

func Test_Badger_Flush_Reconciles_Id_Sets(t *testing.T) {
	req := require.New(t)
	backend := NewBadgerBackend(openTestDB(t), slog.Default())
	ctx := context.Background()
	req.NoError(backend.Flush(ctx, []domain.Item{
		testItem("Amy", "Salad", domain.SectionAppetizers),
		testItem("Bob", "Brownies", domain.SectionDessert),
		testItem("Clara", "Cider", domain.SectionBeverages),
	}))

	// Second flush drops Bob and adds Dan: the stored id set must follow.
	second := []domain.Item{
		testItem("Amy", "Salad", domain.SectionAppetizers),
		testItem("Dan", "Wings", domain.SectionAppetizers),
	}
	req.NoError(backend.Flush(ctx, second))

	loaded, err := backend.LoadAll(ctx)
	req.NoError(err)
	wantIDs := lo.Map(second, func(item domain.Item, _ int) string { return item.ID })
	gotIDs := lo.Map(loaded, func(item domain.Item, _ int) string { return item.ID })
	req.ElementsMatch(wantIDs, gotIDs)
}

func Test_Badger_Flush_Empty_Clears_Collection(t *testing.T) {
	req := require.New(t)
	backend := NewBadgerBackend(openTestDB(t), slog.Default())
	ctx := context.Background()
	req.NoError(backend.Flush(ctx, []domain.Item{testItem("Amy", "Salad", domain.SectionAppetizers)}))
	req.NoError(backend.Flush(ctx, nil))

	loaded, err := backend.LoadAll(ctx)
	req.NoError(err)
	req.Empty(loaded)
}
