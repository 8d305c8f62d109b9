package arena

import (
	"context"
	"testing"

	arenaRepo "arenabook/database/repository/arena"
	"arenabook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	arenas     map[string]*models.Arena
	lastUpdate map[string]interface{}
}

func newFakeRepo(arenas ...*models.Arena) *fakeRepo {
	repo := &fakeRepo{arenas: make(map[string]*models.Arena)}
	for _, a := range arenas {
		repo.arenas[a.ID] = a
	}
	return repo
}

func (f *fakeRepo) Create(ctx context.Context, arena *models.Arena) error {
	f.arenas[arena.ID] = arena
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, arenaID string) (*models.Arena, error) {
	a, ok := f.arenas[arenaID]
	if !ok {
		return nil, arenaRepo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeRepo) UpdateFields(ctx context.Context, arenaID string, fields map[string]interface{}) error {
	if _, ok := f.arenas[arenaID]; !ok {
		return arenaRepo.ErrNotFound
	}
	f.lastUpdate = fields
	return nil
}

func validInput() CreateArenaInput {
	return CreateArenaInput{
		Name:         "Riverside Court",
		Address:      "1 Embankment Rd",
		City:         "Lisbon",
		Country:      "PT",
		PricePerHour: 12.5,
	}
}

func TestCreateArena(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultArenaService{Repo: repo}

	created, err := svc.CreateArena(context.Background(), "manager-1", validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "manager-1", created.CreatedBy)
	assert.Equal(t, "usd", created.Currency)
	assert.Equal(t, 12.5, created.PricePerHour)
	assert.Contains(t, repo.arenas, created.ID)
}

func TestCreateArenaRequiredFields(t *testing.T) {
	svc := &DefaultArenaService{Repo: newFakeRepo()}

	for _, mutate := range []func(*CreateArenaInput){
		func(in *CreateArenaInput) { in.Name = "" },
		func(in *CreateArenaInput) { in.Address = "" },
		func(in *CreateArenaInput) { in.City = "" },
		func(in *CreateArenaInput) { in.Country = "" },
	} {
		input := validInput()
		mutate(&input)
		_, err := svc.CreateArena(context.Background(), "manager-1", input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestGetArenaNotFound(t *testing.T) {
	svc := &DefaultArenaService{Repo: newFakeRepo()}
	_, err := svc.GetArena(context.Background(), "no-such-arena")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateArena(t *testing.T) {
	existing := &models.Arena{ID: "arena-1", Name: "Riverside Court", CreatedBy: "manager-1"}
	repo := newFakeRepo(existing)
	svc := &DefaultArenaService{Repo: repo}

	err := svc.UpdateArena(context.Background(), "manager-1", "arena-1", map[string]interface{}{
		"name":       "Riverside Arena",
		"id":         "hijacked",
		"created_by": "someone-else",
	})
	require.NoError(t, err)

	// Immutable fields are stripped before the write.
	assert.Equal(t, map[string]interface{}{"name": "Riverside Arena"}, repo.lastUpdate)
}

func TestUpdateArenaForbidden(t *testing.T) {
	repo := newFakeRepo(&models.Arena{ID: "arena-1", CreatedBy: "manager-1"})
	svc := &DefaultArenaService{Repo: repo}

	err := svc.UpdateArena(context.Background(), "intruder", "arena-1", map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateArenaOnlyImmutableFields(t *testing.T) {
	repo := newFakeRepo(&models.Arena{ID: "arena-1", CreatedBy: "manager-1"})
	svc := &DefaultArenaService{Repo: repo}

	err := svc.UpdateArena(context.Background(), "manager-1", "arena-1", map[string]interface{}{"id": "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
