package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/weighin/internal/db"
	"github.com/alexanderramin/weighin/internal/repository"
	"github.com/alexanderramin/weighin/internal/testutil"
)

func setupRepos(t *testing.T) (
	repository.ProfileRepo,
	repository.WeightLogRepo,
	repository.FoodLogRepo,
	db.UnitOfWork,
) {
	database := testutil.NewTestDB(t)
	return repository.NewSQLProfileRepo(database),
		repository.NewSQLWeightLogRepo(database),
		repository.NewSQLFoodLogRepo(database),
		testutil.NewTestUoW(database)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) byName(name string) []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range o.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}
