package store

import (
	"context"
	"sort"
	"sync"

	"logitrans-backend/models/cargo"
	"logitrans-backend/models/point"
	"logitrans-backend/models/shipment"
)

// Memory is a mutex-guarded in-memory Store used by tests.
type Memory struct {
	mu        sync.RWMutex
	cargoes   map[string]cargo.Cargo       // track -> cargo
	points    map[string]point.Point       // name -> point
	shipments map[[2]string]shipment.Shipment // (track, point) -> live shipment
	archive   []shipment.Archive
	events    []shipment.StatusEvent
	nextID    uint
}

func NewMemory() *Memory {
	return &Memory{
		cargoes:   make(map[string]cargo.Cargo),
		points:    make(map[string]point.Point),
		shipments: make(map[[2]string]shipment.Shipment),
	}
}

// AddPoint seeds a point; test setup helper.
func (m *Memory) AddPoint(p point.Point) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.points[p.Name] = p
}

func (m *Memory) id() uint {
	m.nextID++
	return m.nextID
}

func (m *Memory) CreateCargo(ctx context.Context, c *cargo.Cargo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cargoes[c.Track]; ok {
		return ErrDuplicate
	}
	c.ID = m.id()
	m.cargoes[c.Track] = *c
	return nil
}

func (m *Memory) GetCargo(ctx context.Context, track string) (*cargo.Cargo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.cargoes[track]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *Memory) UpdateCargo(ctx context.Context, c *cargo.Cargo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.cargoes[c.Track]
	if !ok {
		return ErrNotFound
	}
	cur.Type = c.Type
	cur.Delivery = c.Delivery
	cur.Price = c.Price
	cur.Mass = c.Mass
	cur.DeclaredValue = c.DeclaredValue
	cur.Packaging = c.Packaging
	cur.Insurance = c.Insurance
	m.cargoes[c.Track] = cur
	return nil
}

func (m *Memory) DeleteCargo(ctx context.Context, track string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cargoes[track]; !ok {
		return ErrNotFound
	}
	delete(m.cargoes, track)
	return nil
}

func (m *Memory) GetPoint(ctx context.Context, name string) (*point.Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.points[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *Memory) CreateShipment(ctx context.Context, s *shipment.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]string{s.CargoTrack, s.PointName}
	if _, ok := m.shipments[key]; ok {
		return ErrDuplicate
	}
	for _, existing := range m.shipments {
		if existing.PointName == s.PointName && existing.Slot == s.Slot {
			return ErrDuplicate
		}
	}
	s.ID = m.id()
	m.shipments[key] = *s
	return nil
}

func (m *Memory) GetShipment(ctx context.Context, cargoTrack, pointName string) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.shipments[[2]string{cargoTrack, pointName}]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *Memory) UpdateShipment(ctx context.Context, s *shipment.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]string{s.CargoTrack, s.PointName}
	cur, ok := m.shipments[key]
	if !ok {
		return ErrNotFound
	}
	cur.Slot = s.Slot
	cur.Status = s.Status
	cur.EmployeeFio = s.EmployeeFio
	cur.Date = s.Date
	m.shipments[key] = cur
	return nil
}

func (m *Memory) DeleteShipment(ctx context.Context, cargoTrack, pointName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := [2]string{cargoTrack, pointName}
	if _, ok := m.shipments[key]; !ok {
		return ErrNotFound
	}
	delete(m.shipments, key)
	return nil
}

func (m *Memory) ListShipmentsByPoint(ctx context.Context, pointName string) ([]shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []shipment.Shipment
	for _, s := range m.shipments {
		if s.PointName == pointName {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *Memory) ListShipmentsByTrack(ctx context.Context, cargoTrack string) ([]shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []shipment.Shipment
	for _, s := range m.shipments {
		if s.CargoTrack == cargoTrack {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *Memory) SlotOccupied(ctx context.Context, pointName, slot, excludeTrack string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.shipments {
		if s.PointName == pointName && s.Slot == slot && s.CargoTrack != excludeTrack {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) MoveToArchive(ctx context.Context, cargoTrack string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	moved := 0
	for key, s := range m.shipments {
		if s.CargoTrack != cargoTrack {
			continue
		}
		m.archive = append(m.archive, shipment.Archive{
			CargoTrack:  s.CargoTrack,
			PointName:   s.PointName,
			Slot:        s.Slot,
			Status:      s.Status,
			EmployeeFio: s.EmployeeFio,
			Date:        s.Date,
		})
		delete(m.shipments, key)
		moved++
	}
	if moved == 0 {
		return 0, ErrNotFound
	}
	return moved, nil
}

func (m *Memory) AppendStatusEvent(ctx context.Context, ev *shipment.StatusEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	ev.ID = m.id()
	m.events = append(m.events, *ev)
	return nil
}

func (m *Memory) ListStatusEvents(ctx context.Context, cargoTrack string) ([]shipment.StatusEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []shipment.StatusEvent
	for _, ev := range m.events {
		if ev.CargoTrack == cargoTrack {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// WithinTransaction snapshots the store, runs fn, and restores the snapshot
// if fn fails, mirroring the rollback the Postgres store gets for free.
func (m *Memory) WithinTransaction(ctx context.Context, fn func(Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	snapCargoes := make(map[string]cargo.Cargo, len(m.cargoes))
	for k, v := range m.cargoes {
		snapCargoes[k] = v
	}
	snapShipments := make(map[[2]string]shipment.Shipment, len(m.shipments))
	for k, v := range m.shipments {
		snapShipments[k] = v
	}
	snapArchive := append([]shipment.Archive(nil), m.archive...)
	snapEvents := append([]shipment.StatusEvent(nil), m.events...)
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.cargoes = snapCargoes
		m.shipments = snapShipments
		m.archive = snapArchive
		m.events = snapEvents
		m.mu.Unlock()
		return err
	}
	return nil
}

// Archived returns a copy of the archive; test inspection helper.
func (m *Memory) Archived() []shipment.Archive {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]shipment.Archive, len(m.archive))
	copy(out, m.archive)
	return out
}
