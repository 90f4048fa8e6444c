package api

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"property-management/internal/model"
	"property-management/internal/storage"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	pingErr  error
	failWith error

	managers     map[int64]model.PropertyManager
	properties   map[int64]model.Property
	tenancies    map[int64]model.Tenancy
	tenants      map[int64]model.Tenant
	workers      map[int64]model.SupportWorker
	tenancyLinks []model.TenantTenancy
	workerLinks  []model.TenantSupportWorker
	events       []model.Event
}

func newMemStore() *memStore {
	return &memStore{
		managers:   map[int64]model.PropertyManager{},
		properties: map[int64]model.Property{},
		tenancies:  map[int64]model.Tenancy{},
		tenants:    map[int64]model.Tenant{},
		workers:    map[int64]model.SupportWorker{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func sortedKeys[V any](rows map[int64]V) []int64 {
	keys := make([]int64, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func values[V any](rows map[int64]V) []V {
	out := make([]V, 0, len(rows))
	for _, k := range sortedKeys(rows) {
		out = append(out, rows[k])
	}
	return out
}

func (m *memStore) Ping(ctx context.Context) error { return m.pingErr }

func (m *memStore) ListPropertyManagers(ctx context.Context) ([]model.PropertyManager, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return values(m.managers), nil
}

func (m *memStore) GetPropertyManager(ctx context.Context, id int64) (*model.PropertyManager, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pm, ok := m.managers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &pm, nil
}

func (m *memStore) ListPropertyManagersWithProperties(ctx context.Context) ([]model.PropertyManagerWithProperties, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.PropertyManagerWithProperties{}
	for _, pm := range values(m.managers) {
		row := model.PropertyManagerWithProperties{PropertyManager: pm, Properties: []model.PropertyRef{}}
		for _, p := range values(m.properties) {
			if p.PropertyManagerID == pm.ID {
				row.Properties = append(row.Properties, model.PropertyRef{ID: p.ID, Address: p.Address})
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (m *memStore) CreatePropertyManager(ctx context.Context, in model.PropertyManagerInput) (*model.PropertyManager, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pm := model.PropertyManager{ID: m.id(), Name: in.Name, Phone: in.Phone, Email: in.Email}
	m.managers[pm.ID] = pm
	return &pm, nil
}

func (m *memStore) UpdatePropertyManager(ctx context.Context, id int64, up model.PropertyManagerUpdate) (*model.PropertyManager, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pm, ok := m.managers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.Name.Apply(&pm.Name)
	up.Phone.Apply(&pm.Phone)
	up.Email.Apply(&pm.Email)
	m.managers[id] = pm
	return &pm, nil
}

func (m *memStore) DeletePropertyManager(ctx context.Context, id int64) (*model.PropertyManager, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pm, ok := m.managers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for pid, p := range m.properties {
		if p.PropertyManagerID == id {
			m.dropProperty(pid)
		}
	}
	delete(m.managers, id)
	return &pm, nil
}

func (m *memStore) ListProperties(ctx context.Context) ([]model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return values(m.properties), nil
}

func (m *memStore) GetProperty(ctx context.Context, id int64) (*model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.properties[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (m *memStore) ListPropertiesWithManager(ctx context.Context) ([]model.PropertyWithManager, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.PropertyWithManager{}
	for _, p := range values(m.properties) {
		row := model.PropertyWithManager{Property: p}
		if pm, ok := m.managers[p.PropertyManagerID]; ok {
			row.PropertyManager = &model.PropertyManagerRef{ID: pm.ID, Name: pm.Name}
		}
		out = append(out, row)
	}
	return out, nil
}

func (m *memStore) CreateProperty(ctx context.Context, in model.PropertyInput) (*model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.managers[in.PropertyManagerID]; !ok {
		return nil, storage.ErrInvalidReference
	}
	p := model.Property{ID: m.id(), Address: in.Address, PropertyManagerID: in.PropertyManagerID}
	m.properties[p.ID] = p
	return &p, nil
}

func (m *memStore) UpdateProperty(ctx context.Context, id int64, up model.PropertyUpdate) (*model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.properties[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.Address.Apply(&p.Address)
	up.PropertyManagerID.Apply(&p.PropertyManagerID)
	if _, ok := m.managers[p.PropertyManagerID]; !ok {
		return nil, storage.ErrInvalidReference
	}
	m.properties[id] = p
	return &p, nil
}

func (m *memStore) DeleteProperty(ctx context.Context, id int64) (*model.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.properties[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	m.dropProperty(id)
	return &p, nil
}

func (m *memStore) ListTenancies(ctx context.Context) ([]model.Tenancy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return values(m.tenancies), nil
}

func (m *memStore) SearchTenancies(ctx context.Context, f model.TenancyFilter) ([]model.Tenancy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Tenancy{}
	for _, t := range values(m.tenancies) {
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.StartFrom != nil && t.StartDate.Before(f.StartFrom.Time) {
			continue
		}
		if f.EndBy != nil && (t.EndDate == nil || t.EndDate.After(f.EndBy.Time)) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memStore) GetTenancy(ctx context.Context, id int64) (*model.Tenancy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tenancies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &t, nil
}

func (m *memStore) ListTenanciesWithProperty(ctx context.Context) ([]model.TenancyWithProperty, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.TenancyWithProperty{}
	for _, t := range values(m.tenancies) {
		row := model.TenancyWithProperty{Tenancy: t}
		if p, ok := m.properties[t.PropertyID]; ok {
			row.Property = &model.PropertyRef{ID: p.ID, Address: p.Address}
		}
		out = append(out, row)
	}
	return out, nil
}

func (m *memStore) ListTenanciesWithTenants(ctx context.Context) ([]model.TenancyWithTenants, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.TenancyWithTenants{}
	for _, t := range values(m.tenancies) {
		row := model.TenancyWithTenants{Tenancy: t, Tenants: []model.TenantRef{}}
		for _, l := range m.tenancyLinks {
			if l.TenancyID == t.ID {
				tn := m.tenants[l.TenantID]
				row.Tenants = append(row.Tenants, model.TenantRef{ID: tn.ID, Name: tn.Name})
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (m *memStore) CreateTenancy(ctx context.Context, in model.TenancyInput) (*model.Tenancy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := model.Tenancy{ID: m.id(), StartDate: in.StartDate, EndDate: in.EndDate, Status: in.Status, PropertyID: in.PropertyID}
	if !t.ValidRange() {
		return nil, storage.ErrInvalidDateRange
	}
	if _, ok := m.properties[in.PropertyID]; !ok {
		return nil, storage.ErrInvalidReference
	}
	m.tenancies[t.ID] = t
	return &t, nil
}

func (m *memStore) UpdateTenancy(ctx context.Context, id int64, up model.TenancyUpdate) (*model.Tenancy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tenancies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.Apply(&t)
	if !t.ValidRange() {
		return nil, storage.ErrInvalidDateRange
	}
	m.tenancies[id] = t
	return &t, nil
}

func (m *memStore) DeleteTenancy(ctx context.Context, id int64) (*model.Tenancy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tenancies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	m.dropTenancy(id)
	return &t, nil
}

func (m *memStore) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return values(m.tenants), nil
}

func (m *memStore) GetTenant(ctx context.Context, id int64) (*model.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tenants[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &t, nil
}

func contact(t model.Tenant) model.TenantContact {
	return model.TenantContact{ID: t.ID, Name: t.Name, Phone: t.Phone, Email: t.Email}
}

func (m *memStore) ListTenantsWithTenancies(ctx context.Context) ([]model.TenantWithTenancies, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.TenantWithTenancies{}
	for _, t := range values(m.tenants) {
		row := model.TenantWithTenancies{TenantContact: contact(t), Tenancies: []model.Tenancy{}}
		for _, l := range m.tenancyLinks {
			if l.TenantID == t.ID {
				row.Tenancies = append(row.Tenancies, m.tenancies[l.TenancyID])
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (m *memStore) ListTenantsWithSupportWorkers(ctx context.Context) ([]model.TenantWithSupportWorkers, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.TenantWithSupportWorkers{}
	for _, t := range values(m.tenants) {
		row := model.TenantWithSupportWorkers{TenantContact: contact(t), SupportWorkers: []model.SupportWorkerRef{}}
		for _, l := range m.workerLinks {
			if l.TenantID == t.ID {
				sw := m.workers[l.SupportWorkerID]
				row.SupportWorkers = append(row.SupportWorkers, model.SupportWorkerRef{ID: sw.ID, Name: sw.Name})
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (m *memStore) CreateTenant(ctx context.Context, in model.TenantInput) (*model.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := model.Tenant{ID: m.id(), Name: in.Name, DateOfBirth: in.DateOfBirth, Phone: in.Phone, Email: in.Email}
	m.tenants[t.ID] = t
	return &t, nil
}

func (m *memStore) UpdateTenant(ctx context.Context, id int64, up model.TenantUpdate) (*model.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tenants[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.Name.Apply(&t.Name)
	up.DateOfBirth.Apply(&t.DateOfBirth)
	up.Phone.ApplyPtr(&t.Phone)
	up.Email.ApplyPtr(&t.Email)
	m.tenants[id] = t
	return &t, nil
}

func (m *memStore) DeleteTenant(ctx context.Context, id int64) (*model.Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tenants[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	delete(m.tenants, id)
	m.tenancyLinks = filterLinks(m.tenancyLinks, func(l model.TenantTenancy) bool { return l.TenantID == id })
	m.workerLinks = filterLinks(m.workerLinks, func(l model.TenantSupportWorker) bool { return l.TenantID == id })
	return &t, nil
}

func (m *memStore) ListSupportWorkers(ctx context.Context) ([]model.SupportWorker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return values(m.workers), nil
}

func (m *memStore) GetSupportWorker(ctx context.Context, id int64) (*model.SupportWorker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sw, ok := m.workers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &sw, nil
}

func (m *memStore) ListSupportWorkersWithTenants(ctx context.Context) ([]model.SupportWorkerWithTenants, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.SupportWorkerWithTenants{}
	for _, sw := range values(m.workers) {
		row := model.SupportWorkerWithTenants{SupportWorker: sw, Tenants: []model.TenantRef{}}
		for _, l := range m.workerLinks {
			if l.SupportWorkerID == sw.ID {
				tn := m.tenants[l.TenantID]
				row.Tenants = append(row.Tenants, model.TenantRef{ID: tn.ID, Name: tn.Name})
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (m *memStore) CreateSupportWorker(ctx context.Context, in model.SupportWorkerInput) (*model.SupportWorker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sw := model.SupportWorker{ID: m.id(), Name: in.Name, Phone: in.Phone, Email: in.Email}
	m.workers[sw.ID] = sw
	return &sw, nil
}

func (m *memStore) UpdateSupportWorker(ctx context.Context, id int64, up model.SupportWorkerUpdate) (*model.SupportWorker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sw, ok := m.workers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.Name.Apply(&sw.Name)
	up.Phone.ApplyPtr(&sw.Phone)
	up.Email.Apply(&sw.Email)
	m.workers[id] = sw
	return &sw, nil
}

func (m *memStore) DeleteSupportWorker(ctx context.Context, id int64) (*model.SupportWorker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sw, ok := m.workers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	delete(m.workers, id)
	m.workerLinks = filterLinks(m.workerLinks, func(l model.TenantSupportWorker) bool { return l.SupportWorkerID == id })
	return &sw, nil
}

// dropProperty and dropTenancy follow the ON DELETE CASCADE chain of the
// schema. Callers hold m.mu.
func (m *memStore) dropProperty(id int64) {
	for tid, t := range m.tenancies {
		if t.PropertyID == id {
			m.dropTenancy(tid)
		}
	}
	delete(m.properties, id)
}

func (m *memStore) dropTenancy(id int64) {
	delete(m.tenancies, id)
	m.tenancyLinks = filterLinks(m.tenancyLinks, func(l model.TenantTenancy) bool { return l.TenancyID == id })
}

// filterLinks removes the links matching drop.
func filterLinks[L any](links []L, drop func(L) bool) []L {
	kept := links[:0]
	for _, l := range links {
		if !drop(l) {
			kept = append(kept, l)
		}
	}
	return kept
}

func (m *memStore) LinkTenantTenancy(ctx context.Context, tenantID, tenancyID int64, rank *int) (*model.TenantTenancy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, okTenant := m.tenants[tenantID]
	_, okTenancy := m.tenancies[tenancyID]
	if !okTenant || !okTenancy {
		return nil, storage.ErrNotFound
	}
	for _, l := range m.tenancyLinks {
		if l.TenantID == tenantID && l.TenancyID == tenancyID {
			return nil, storage.ErrDuplicateLink
		}
	}
	link := model.TenantTenancy{ID: m.id(), Rank: rank, TenantID: tenantID, TenancyID: tenancyID}
	m.tenancyLinks = append(m.tenancyLinks, link)
	return &link, nil
}

func (m *memStore) UnlinkTenantTenancy(ctx context.Context, tenantID, tenancyID int64) (*model.TenantTenancy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, l := range m.tenancyLinks {
		if l.TenantID == tenantID && l.TenancyID == tenancyID {
			m.tenancyLinks = append(m.tenancyLinks[:i], m.tenancyLinks[i+1:]...)
			return &l, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) LinkTenantSupportWorker(ctx context.Context, tenantID, workerID int64, rank *int) (*model.TenantSupportWorker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, okTenant := m.tenants[tenantID]
	_, okWorker := m.workers[workerID]
	if !okTenant || !okWorker {
		return nil, storage.ErrNotFound
	}
	for _, l := range m.workerLinks {
		if l.TenantID == tenantID && l.SupportWorkerID == workerID {
			return nil, storage.ErrDuplicateLink
		}
	}
	link := model.TenantSupportWorker{ID: m.id(), Rank: rank, TenantID: tenantID, SupportWorkerID: workerID}
	m.workerLinks = append(m.workerLinks, link)
	return &link, nil
}

func (m *memStore) UnlinkTenantSupportWorker(ctx context.Context, tenantID, workerID int64) (*model.TenantSupportWorker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, l := range m.workerLinks {
		if l.TenantID == tenantID && l.SupportWorkerID == workerID {
			m.workerLinks = append(m.workerLinks[:i], m.workerLinks[i+1:]...)
			return &l, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) ListAuditEvents(ctx context.Context, cursor string, limit int) ([]model.Event, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var after int64
	if cursor != "" {
		n, err := strconv.ParseInt(cursor, 10, 64)
		if err != nil {
			return nil, "", &storage.InputError{Column: "cursor", Msg: "must be a sequence number"}
		}
		after = n
	}
	var page []model.Event
	for _, e := range m.events {
		if e.Seq > after {
			page = append(page, e)
		}
		if len(page) == limit {
			break
		}
	}
	next := ""
	if len(page) == limit {
		next = strconv.FormatInt(page[len(page)-1].Seq, 10)
	}
	return page, next, nil
}

// recorder captures published events.
type recorder struct {
	mu     sync.Mutex
	events []model.Event
}

func (r *recorder) Publish(ctx context.Context, e model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Entity+"."+e.Action)
	}
	return out
}
