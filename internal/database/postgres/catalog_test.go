package postgres

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrammoRPG_Go/internal/domain"
)

func TestItemRepository_DefaultsAndNullDescription(t *testing.T) {
	ctx := setupTest(t)
	repo := NewItemRepository(testPool)

	item, err := repo.Add(ctx, domain.ItemInput{Name: "Stick"})
	require.NoError(t, err)
	assert.Equal(t, domain.RarityCommon, item.Rarity)
	assert.Nil(t, item.Description)

	desc := "Glows faintly"
	updated, err := repo.Update(ctx, item.ID, domain.ItemInput{Name: "Stick", Description: &desc, Rarity: domain.RarityRare})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
	assert.Equal(t, domain.RarityRare, updated.Rarity)
}

func TestItemRepository_GetByNameFirstByID(t *testing.T) {
	ctx := setupTest(t)
	repo := NewItemRepository(testPool)

	first, err := repo.Add(ctx, domain.ItemInput{Name: "Potion"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, domain.ItemInput{Name: "Potion"})
	require.NoError(t, err)

	got, err := repo.GetByName(ctx, "Potion")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Less(t, all[0].ID, all[1].ID)
}

func TestInventoryRepository_OrderedByID(t *testing.T) {
	ctx := setupTest(t)
	repo := NewInventoryRepository(testPool)

	for _, money := range []int{30, 10, 20} {
		_, err := repo.Add(ctx, domain.InventoryInput{Money: money, ItemList: "sword,shield"})
		require.NoError(t, err)
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{30, 10, 20}, []int{all[0].Money, all[1].Money, all[2].Money})
	assert.Equal(t, "sword,shield", all[0].ItemList)

	_, err = repo.Add(ctx, domain.InventoryInput{Money: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCharacterRepository_CascadesWithPlayer(t *testing.T) {
	ctx := setupTest(t)
	repo := NewCharacterRepository(testPool)
	p := createPlayer(t, ctx, "Juno")

	c, err := repo.Add(ctx, domain.CharacterInput{Name: "Knight", Level: 3, PlayerID: p.ID})
	require.NoError(t, err)

	got, err := repo.GetByName(ctx, "Knight")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	deleted, err := NewPlayerRepository(testPool).Delete(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err = repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCharacterRepository_GetAllOrderedByName(t *testing.T) {
	ctx := setupTest(t)
	repo := NewCharacterRepository(testPool)
	p := createPlayer(t, ctx, "Juno")

	for _, name := range []string{"Zed", "Ann", "Mid", "Ann"} {
		_, err := repo.Add(ctx, domain.CharacterInput{Name: name, Level: 1, PlayerID: p.ID})
		require.NoError(t, err)
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)

	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Ann", "Ann", "Mid", "Zed"}, names)
	assert.Less(t, all[0].ID, all[1].ID, "equal names fall back to id order")

	first, err := repo.GetByName(ctx, "Ann")
	require.NoError(t, err)
	assert.Equal(t, all[0], *first)
}

func TestCharacterRepository_UnknownPlayer(t *testing.T) {
	ctx := setupTest(t)

	_, err := NewCharacterRepository(testPool).Add(ctx, domain.CharacterInput{Name: "Ghost", Level: 1, PlayerID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestMarketRepository_Lifecycle(t *testing.T) {
	ctx := setupTest(t)
	repo := NewMarketRepository(testPool)
	p := createPlayer(t, ctx, "Kai")
	item, err := NewItemRepository(testPool).Add(ctx, domain.ItemInput{Name: "Gem"})
	require.NoError(t, err)

	listing, err := repo.Add(ctx, domain.MarketListingInput{ItemID: item.ID, SellerID: p.ID, Price: 12.5, Quantity: 3})
	require.NoError(t, err)
	assert.InDelta(t, 12.5, listing.Price, 0.0001)

	updated, err := repo.Update(ctx, listing.ID, domain.MarketListingInput{ItemID: item.ID, SellerID: p.ID, Price: 9, Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)

	_, err = repo.Add(ctx, domain.MarketListingInput{ItemID: 424242, SellerID: p.ID, Price: 1, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	_, err = repo.Update(ctx, listing.ID, domain.MarketListingInput{ItemID: item.ID, SellerID: p.ID, Price: -1, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	ctx := setupTest(t)
	repo := NewUserRepository(testPool)

	u, err := repo.Add(ctx, domain.UserCredentials{Email: "hero@example.com", PasswordHash: "$2a$04$hash"})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "hero@example.com")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = repo.Add(ctx, domain.UserCredentials{Email: "hero@example.com", PasswordHash: "$2a$04$other"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}
