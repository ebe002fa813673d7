package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campstead/reservation-api/internal/core/domain"
	"github.com/campstead/reservation-api/internal/core/ports"
)

type stubSpotCache struct {
	spots       []domain.Spot
	getErr      error
	sets        int
	invalidates int
}

func (c *stubSpotCache) Get(_ context.Context) ([]domain.Spot, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.spots, nil
}

func (c *stubSpotCache) Set(_ context.Context, spots []domain.Spot) error {
	c.sets++
	c.spots = spots
	return nil
}

func (c *stubSpotCache) Invalidate(_ context.Context) error {
	c.invalidates++
	c.spots = nil
	return nil
}

func TestSpotService_Create_AvailableByDefault(t *testing.T) {
	repo := newStubSpotRepo()
	svc := NewSpotService(repo, nil, discardLogger)

	spot, err := svc.Create(context.Background(), ports.CreateSpotInput{
		Name:     "Riverside",
		Location: "valley",
		Price:    30,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !spot.Available {
		t.Error("new spot must start available")
	}
	if spot.ID == 0 {
		t.Error("expected a non-zero spot ID")
	}
}

func TestSpotService_List_CacheMissThenHit(t *testing.T) {
	repo := newStubSpotRepo()
	repo.addSpot(true)
	cache := &stubSpotCache{}
	svc := NewSpotService(repo, cache, discardLogger)

	// Miss populates the cache.
	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 spot, got %d", len(first))
	}
	if cache.sets != 1 {
		t.Errorf("expected 1 cache write, got %d", cache.sets)
	}

	// Hit bypasses the store: a spot added behind the cache stays hidden.
	repo.addSpot(true)
	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(second) != 1 {
		t.Errorf("expected cached listing of 1 spot, got %d", len(second))
	}
}

func TestSpotService_List_CacheFailureFallsBack(t *testing.T) {
	repo := newStubSpotRepo()
	repo.addSpot(true)
	cache := &stubSpotCache{getErr: errors.New("redis down")}
	svc := NewSpotService(repo, cache, discardLogger)

	spots, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List must fall back to the store, got error: %v", err)
	}
	if len(spots) != 1 {
		t.Errorf("expected 1 spot from fallback, got %d", len(spots))
	}
}

func TestSpotService_Create_InvalidatesCache(t *testing.T) {
	repo := newStubSpotRepo()
	cache := &stubSpotCache{}
	svc := NewSpotService(repo, cache, discardLogger)

	if _, err := svc.Create(context.Background(), ports.CreateSpotInput{Name: "A", Location: "x", Price: 1}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if cache.invalidates != 1 {
		t.Errorf("expected 1 cache invalidation, got %d", cache.invalidates)
	}
}

func TestSpotService_OverrideAvailability(t *testing.T) {
	repo := newStubSpotRepo()
	cache := &stubSpotCache{}
	svc := NewSpotService(repo, cache, discardLogger)
	spot := repo.addSpot(false)

	if err := svc.OverrideAvailability(context.Background(), spot.ID, true); err != nil {
		t.Fatalf("OverrideAvailability returned error: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), spot.ID)
	if !stored.Available {
		t.Error("override did not flip the flag")
	}
	if cache.invalidates != 1 {
		t.Errorf("expected 1 cache invalidation, got %d", cache.invalidates)
	}

	if err := svc.OverrideAvailability(context.Background(), 999, true); !errors.Is(err, domain.ErrSpotNotFound) {
		t.Fatalf("expected ErrSpotNotFound, got %v", err)
	}
}
