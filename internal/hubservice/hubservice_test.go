// FilePath: internal/hubservice/hubservice_test.go
package hubservice

import (
	"context"
	"sync"
	"time"

	"github.com/smarthive/hub/internal/alerting"
	"github.com/smarthive/hub/internal/config"
	"github.com/smarthive/hub/internal/database"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	svc      *HubService
	users    *memUserRepo
	apiaries *memApiaryRepo
	hives    *memHiveRepo
	records  *memRecordRepo
	alerts   *memAlertRepo
	bus      *alerting.Broker
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:    newMemUserRepo(),
		apiaries: newMemApiaryRepo(),
		hives:    newMemHiveRepo(),
		records:  newMemRecordRepo(),
		alerts:   newMemAlertRepo(),
		bus:      alerting.NewBroker(8),
	}
	env.svc = New(env.users, env.apiaries, env.hives, env.records, env.alerts, env.bus, config.AuthConfig{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}, nil)
	return env
}

// userContext returns a context with an authenticated regular user.
func userContext(id string) context.Context {
	return WithUser(context.Background(), &Principal{
		ID:    id,
		Name:  "Test Keeper",
		Email: id + "@example.com",
		Role:  models.RoleUser,
	})
}

// In-memory repository fakes. Only what the service layer touches is
// implemented; everything stores into plain slices/maps under a mutex.

type stubBase struct{}

func (stubBase) BeginTx(ctx context.Context) (database.Transaction, error) {
	return nil, errors.NewInternalError("transactions not supported in tests", nil)
}

type memUserRepo struct {
	stubBase
	mu      sync.Mutex
	byEmail map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*models.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[user.Email]; ok {
		return errors.NewValidationError("e-mail already registered", nil)
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *memUserRepo) Get(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found", nil)
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, errors.NewNotFoundError("user not found", nil)
}

type memApiaryRepo struct {
	stubBase
	mu       sync.Mutex
	apiaries map[string]*models.Apiary
}

func newMemApiaryRepo() *memApiaryRepo {
	return &memApiaryRepo{apiaries: make(map[string]*models.Apiary)}
}

func (r *memApiaryRepo) Create(ctx context.Context, apiary *models.Apiary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apiaries[apiary.ID] = apiary
	return nil
}

func (r *memApiaryRepo) Get(ctx context.Context, id, ownerID string) (*models.Apiary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apiaries[id]
	if !ok || a.OwnerID != ownerID {
		return nil, errors.NewNotFoundError("apiary not found", nil)
	}
	return a, nil
}

func (r *memApiaryRepo) Update(ctx context.Context, apiary *models.Apiary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apiaries[apiary.ID]; !ok {
		return errors.NewNotFoundError("apiary not found", nil)
	}
	r.apiaries[apiary.ID] = apiary
	return nil
}

func (r *memApiaryRepo) Delete(ctx context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apiaries[id]
	if !ok || a.OwnerID != ownerID {
		return errors.NewNotFoundError("apiary not found", nil)
	}
	delete(r.apiaries, id)
	return nil
}

func (r *memApiaryRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Apiary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Apiary{}
	for _, a := range r.apiaries {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memApiaryRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	list, _ := r.ListByOwner(ctx, ownerID)
	return len(list), nil
}

func (r *memApiaryRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.apiaries[id]
	return ok, nil
}

type memHiveRepo struct {
	stubBase
	mu    sync.Mutex
	hives map[string]*models.Hive
}

func newMemHiveRepo() *memHiveRepo {
	return &memHiveRepo{hives: make(map[string]*models.Hive)}
}

func (r *memHiveRepo) Create(ctx context.Context, hive *models.Hive) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hives[hive.ID] = hive
	return nil
}

func (r *memHiveRepo) Get(ctx context.Context, id string) (*models.Hive, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hives[id]
	if !ok {
		return nil, errors.NewNotFoundError("hive not found", nil)
	}
	copied := *h
	return &copied, nil
}

func (r *memHiveRepo) Update(ctx context.Context, hive *models.Hive) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hives[hive.ID]; !ok {
		return errors.NewNotFoundError("hive not found", nil)
	}
	r.hives[hive.ID] = hive
	return nil
}

func (r *memHiveRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hives[id]; !ok {
		return errors.NewNotFoundError("hive not found", nil)
	}
	delete(r.hives, id)
	return nil
}

func (r *memHiveRepo) List(ctx context.Context, filters models.HiveFilters) ([]*models.Hive, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Hive{}
	for _, h := range r.hives {
		if filters.ApiaryID != "" && h.ApiaryID != filters.ApiaryID {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *memHiveRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.hives), nil
}

type memRecordRepo struct {
	stubBase
	mu      sync.Mutex
	records []*models.Record
	failure error
}

func newMemRecordRepo() *memRecordRepo { return &memRecordRepo{} }

func (r *memRecordRepo) Create(ctx context.Context, record *models.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return r.failure
	}
	r.records = append(r.records, record)
	return nil
}

func (r *memRecordRepo) List(ctx context.Context, filters models.RecordFilters) ([]*models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Record{}
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if filters.HiveID != "" && rec.HiveID != filters.HiveID {
			continue
		}
		if filters.Kind != "" && string(rec.Kind) != filters.Kind {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *memRecordRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, rec := range r.records {
		if rec.CreatedAt.After(since) {
			count++
		}
	}
	return count, nil
}

func (r *memRecordRepo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.records[:0]
	var removed int64
	for _, rec := range r.records {
		if rec.CreatedAt.Before(before) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
	return removed, nil
}

type memAlertRepo struct {
	stubBase
	mu      sync.Mutex
	alerts  []*models.Alert
	failure error
}

func newMemAlertRepo() *memAlertRepo { return &memAlertRepo{} }

func (r *memAlertRepo) Create(ctx context.Context, alert *models.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failure != nil {
		return r.failure
	}
	r.alerts = append(r.alerts, alert)
	return nil
}

func (r *memAlertRepo) Get(ctx context.Context, id string) (*models.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.alerts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errors.NewNotFoundError("alert not found", nil)
}

func (r *memAlertRepo) List(ctx context.Context, filters models.AlertFilters) ([]*models.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Alert{}
	for i := len(r.alerts) - 1; i >= 0; i-- {
		a := r.alerts[i]
		if filters.HiveID != "" && a.HiveID != filters.HiveID {
			continue
		}
		if filters.Open && a.Acknowledged {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *memAlertRepo) Acknowledge(ctx context.Context, id string) (*models.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.alerts {
		if a.ID == id {
			a.Acknowledged = true
			return a, nil
		}
	}
	return nil, errors.NewNotFoundError("alert not found", nil)
}

func (r *memAlertRepo) CountOpen(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, a := range r.alerts {
		if !a.Acknowledged {
			count++
		}
	}
	return count, nil
}

func (r *memAlertRepo) DeleteAcknowledgedOlderThan(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.alerts[:0]
	var removed int64
	for _, a := range r.alerts {
		if a.Acknowledged && a.CreatedAt.Before(before) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	r.alerts = kept
	return removed, nil
}
