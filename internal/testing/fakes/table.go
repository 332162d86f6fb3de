// Package fakes provides in-memory repositories for service and handler tests.
// They follow the repository contract but enforce no uniqueness constraints.
package fakes

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/GrammoRPG_Go/internal/domain"
)

// Table is an in-memory repository.CRUD and repository.NameLookup
type Table[E any, In any, ID comparable] struct {
	mu    sync.Mutex
	rows  map[ID]E
	calls map[string]int

	nextID func() ID
	build  func(id ID, in In) E
	nameOf func(E) string
	less   func(a, b E) bool

	// Err, when set, is returned by every operation as a storage failure
	Err error
	// OnLookup runs after GetByName has read its result and before it returns
	OnLookup func()
}

func newTable[E any, In any, ID comparable](
	nextID func() ID,
	build func(ID, In) E,
	nameOf func(E) string,
	less func(a, b E) bool,
) *Table[E, In, ID] {
	return &Table[E, In, ID]{
		rows:   make(map[ID]E),
		calls:  make(map[string]int),
		nextID: nextID,
		build:  build,
		nameOf: nameOf,
		less:   less,
	}
}

func (t *Table[E, In, ID]) record(op string) error {
	t.calls[op]++
	return t.Err
}

// Calls returns how many times op was invoked
func (t *Table[E, In, ID]) Calls(op string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls[op]
}

// Len returns the number of stored rows
func (t *Table[E, In, ID]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

func (t *Table[E, In, ID]) GetByID(ctx context.Context, id ID) (*E, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("GetByID"); err != nil {
		return nil, err
	}
	row, ok := t.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (t *Table[E, In, ID]) GetAll(ctx context.Context) ([]E, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("GetAll"); err != nil {
		return nil, err
	}
	return t.sorted(), nil
}

func (t *Table[E, In, ID]) GetByName(ctx context.Context, name string) (*E, error) {
	t.mu.Lock()
	if err := t.record("GetByName"); err != nil {
		t.mu.Unlock()
		return nil, err
	}
	var found *E
	for _, row := range t.sorted() {
		if t.nameOf(row) == name {
			found = &row
			break
		}
	}
	t.mu.Unlock()

	if t.OnLookup != nil {
		t.OnLookup()
	}
	return found, nil
}

func (t *Table[E, In, ID]) Add(ctx context.Context, in In) (*E, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("Add"); err != nil {
		return nil, err
	}
	id := t.nextID()
	row := t.build(id, in)
	t.rows[id] = row
	return &row, nil
}

func (t *Table[E, In, ID]) Update(ctx context.Context, id ID, in In) (*E, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("Update"); err != nil {
		return nil, err
	}
	if _, ok := t.rows[id]; !ok {
		return nil, nil
	}
	row := t.build(id, in)
	t.rows[id] = row
	return &row, nil
}

func (t *Table[E, In, ID]) Delete(ctx context.Context, id ID) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.record("Delete"); err != nil {
		return false, err
	}
	if _, ok := t.rows[id]; !ok {
		return false, nil
	}
	delete(t.rows, id)
	return true, nil
}

// sorted must be called with mu held
func (t *Table[E, In, ID]) sorted() []E {
	out := make([]E, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return t.less(out[i], out[j]) })
	return out
}

func intSequence() func() int {
	next := 0
	return func() int {
		next++
		return next
	}
}

// NewPlayers returns an empty player table
func NewPlayers() *Table[domain.Player, domain.PlayerInput, uuid.UUID] {
	return newTable(
		uuid.New,
		func(id uuid.UUID, in domain.PlayerInput) domain.Player {
			return domain.Player{ID: id, Name: in.Name, Strength: in.Strength, HP: in.HP, MaxHP: in.MaxHP, InventoryID: in.InventoryID}
		},
		func(p domain.Player) string { return p.Name },
		func(a, b domain.Player) bool {
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			return a.ID.String() < b.ID.String()
		},
	)
}

// NewItems returns an empty item table
func NewItems() *Table[domain.Item, domain.ItemInput, int] {
	return newTable(
		intSequence(),
		func(id int, in domain.ItemInput) domain.Item {
			return domain.Item{ID: id, Name: in.Name, Description: in.Description, Rarity: in.RarityOrDefault()}
		},
		func(i domain.Item) string { return i.Name },
		func(a, b domain.Item) bool {
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			return a.ID < b.ID
		},
	)
}

// NewInventories returns an empty inventory table
func NewInventories() *Table[domain.Inventory, domain.InventoryInput, int] {
	return newTable(
		intSequence(),
		func(id int, in domain.InventoryInput) domain.Inventory {
			return domain.Inventory{ID: id, Money: in.Money, ItemList: in.ItemList}
		},
		func(domain.Inventory) string { return "" },
		func(a, b domain.Inventory) bool { return a.ID < b.ID },
	)
}

// NewCharacters returns an empty character table
func NewCharacters() *Table[domain.Character, domain.CharacterInput, int] {
	return newTable(
		intSequence(),
		func(id int, in domain.CharacterInput) domain.Character {
			return domain.Character{ID: id, Name: in.Name, Level: in.Level, PlayerID: in.PlayerID}
		},
		func(c domain.Character) string { return c.Name },
		func(a, b domain.Character) bool {
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			return a.ID < b.ID
		},
	)
}

// NewMarket returns an empty market listing table
func NewMarket() *Table[domain.MarketListing, domain.MarketListingInput, int] {
	return newTable(
		intSequence(),
		func(id int, in domain.MarketListingInput) domain.MarketListing {
			return domain.MarketListing{ID: id, ItemID: in.ItemID, SellerID: in.SellerID, Price: in.Price, Quantity: in.Quantity}
		},
		func(domain.MarketListing) string { return "" },
		func(a, b domain.MarketListing) bool { return a.ID < b.ID },
	)
}

// Users is an in-memory repository.User keyed by email for lookups
type Users struct {
	*Table[domain.User, domain.UserCredentials, uuid.UUID]
}

// NewUsers returns an empty user table
func NewUsers() *Users {
	return &Users{newTable(
		uuid.New,
		func(id uuid.UUID, in domain.UserCredentials) domain.User {
			return domain.User{ID: id, Email: in.Email, PasswordHash: in.PasswordHash}
		},
		func(u domain.User) string { return u.Email },
		func(a, b domain.User) bool {
			if a.Email != b.Email {
				return a.Email < b.Email
			}
			return a.ID.String() < b.ID.String()
		},
	)}
}

func (u *Users) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return u.GetByName(ctx, email)
}
