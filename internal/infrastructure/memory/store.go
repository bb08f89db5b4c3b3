// Package memory es un doble de test: implementa los puertos de persistencia en
// memoria, con las mismas restricciones UNIQUE y FK que el esquema PostgreSQL.
// Sólo lo importan los tests de casos de uso y de HTTP; el binario usa
// internal/infrastructure/postgres y nunca enlaza este paquete.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/expedicao-api/internal/domain"
	"github.com/jhoicas/expedicao-api/internal/domain/entity"
	"github.com/jhoicas/expedicao-api/internal/domain/repository"
)

// Store tablas en memoria protegidas por un único mutex.
type Store struct {
	mu        sync.RWMutex
	users     map[int64]*entity.User
	customers map[int64]*entity.Customer
	products  map[int64]*entity.Product
	vehicles  map[int64]*entity.Vehicle
	daily     map[int64]*entity.DailyShipmentReport
	monthly   map[int64]*entity.MonthlyShipmentReport
	seq       map[string]int64
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		users:     make(map[int64]*entity.User),
		customers: make(map[int64]*entity.Customer),
		products:  make(map[int64]*entity.Product),
		vehicles:  make(map[int64]*entity.Vehicle),
		daily:     make(map[int64]*entity.DailyShipmentReport),
		monthly:   make(map[int64]*entity.MonthlyShipmentReport),
		seq:       make(map[string]int64),
	}
}

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Customers repositorio de clientes.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }

// Products repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Vehicles repositorio de vehículos.
func (s *Store) Vehicles() *VehicleRepo { return &VehicleRepo{s: s} }

// DailyReports repositorio de relatórios diarios.
func (s *Store) DailyReports() *DailyReportRepo { return &DailyReportRepo{s: s} }

// MonthlyReports repositorio de registros mensuales.
func (s *Store) MonthlyReports() *MonthlyReportRepo { return &MonthlyReportRepo{s: s} }

// Analytics consultas del dashboard.
func (s *Store) Analytics() *AnalyticsRepo { return &AnalyticsRepo{s: s} }

func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func duplicate(constraint, detail string) error {
	return fmt.Errorf("%w: %w", domain.ErrDuplicate, &domain.StoreError{Code: "23505", Detail: detail, Err: fmt.Errorf("unique %s", constraint)})
}

func referenced(constraint, detail string) error {
	return fmt.Errorf("%w: %w", domain.ErrReferenced, &domain.StoreError{Code: "23503", Detail: detail, Err: fmt.Errorf("foreign key %s", constraint)})
}

// paginate ordena por key descendente y recorta la página.
func paginate[T any](items []*T, key func(*T) int64, page repository.Page) ([]*T, int) {
	sort.Slice(items, func(i, j int) bool { return key(items[i]) > key(items[j]) })
	total := len(items)
	if page.Offset >= total {
		return []*T{}, total
	}
	end := total
	if page.Limit > 0 && page.Offset+page.Limit < total {
		end = page.Offset + page.Limit
	}
	return items[page.Offset:end], total
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

func cloneReport(r *entity.DailyShipmentReport) *entity.DailyShipmentReport {
	c := *r
	c.Products = append([]entity.ProductItem(nil), r.Products...)
	return &c
}

// ── Users ────────────────────────────────────────────────────────────────────

// UserRepo implementa repository.UserRepository.
type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.users {
		if other.Username == u.Username {
			return duplicate("users_username_key", fmt.Sprintf("Key (username)=(%s) already exists.", u.Username))
		}
	}
	u.ID = r.s.next("users")
	r.s.users[u.ID] = clone(u)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if u, ok := r.s.users[id]; ok {
		return clone(u), nil
	}
	return nil, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, other := range r.s.users {
		if id != u.ID && other.Username == u.Username {
			return duplicate("users_username_key", fmt.Sprintf("Key (username)=(%s) already exists.", u.Username))
		}
	}
	if _, ok := r.s.users[u.ID]; ok {
		r.s.users[u.ID] = clone(u)
	}
	return nil
}

func (r *UserRepo) List(_ context.Context, page repository.Page) ([]*entity.User, int, error) {
	all, _ := r.ListAll(context.Background())
	out, total := paginate(all, func(u *entity.User) int64 { return u.ID }, page)
	return out, total, nil
}

func (r *UserRepo) ListAll(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, clone(u))
	}
	return out, nil
}

func (r *UserRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range r.s.daily {
		if d.UserID == id {
			return referenced("daily_shipment_report_user_id_fkey", fmt.Sprintf("Key (id)=(%d) is still referenced from table \"daily_shipment_report\".", id))
		}
	}
	delete(r.s.users, id)
	return nil
}

// ── Customers ────────────────────────────────────────────────────────────────

// CustomerRepo implementa repository.CustomerRepository.
type CustomerRepo struct{ s *Store }

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

func (r *CustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.Code]; ok {
		return duplicate("customers_pkey", fmt.Sprintf("Key (code)=(%d) already exists.", c.Code))
	}
	if err := r.taxIDTaken(c.Code, c.TaxID); err != nil {
		return err
	}
	r.s.customers[c.Code] = clone(c)
	return nil
}

func (r *CustomerRepo) taxIDTaken(code int64, taxID string) error {
	for other, c := range r.s.customers {
		if other != code && c.TaxID == taxID {
			return duplicate("customers_tax_id_key", fmt.Sprintf("Key (tax_id)=(%s) already exists.", taxID))
		}
	}
	return nil
}

func (r *CustomerRepo) GetByCode(_ context.Context, code int64) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if c, ok := r.s.customers[code]; ok {
		return clone(c), nil
	}
	return nil, nil
}

func (r *CustomerRepo) GetByCodeOrTaxID(_ context.Context, code int64, taxID string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.customers {
		if c.Code == code || (taxID != "" && c.TaxID == taxID) {
			return clone(c), nil
		}
	}
	return nil, nil
}

func (r *CustomerRepo) List(_ context.Context, page repository.Page) ([]*entity.Customer, int, error) {
	all, _ := r.ListAll(context.Background())
	out, total := paginate(all, func(c *entity.Customer) int64 { return c.Code }, page)
	return out, total, nil
}

func (r *CustomerRepo) ListAll(_ context.Context) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		out = append(out, clone(c))
	}
	return out, nil
}

func (r *CustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.taxIDTaken(c.Code, c.TaxID); err != nil {
		return err
	}
	if _, ok := r.s.customers[c.Code]; ok {
		r.s.customers[c.Code] = clone(c)
	}
	return nil
}

func (r *CustomerRepo) Delete(_ context.Context, code int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range r.s.daily {
		if d.CustomerCode == code {
			return referenced("daily_shipment_report_customer_code_fkey", fmt.Sprintf("Key (code)=(%d) is still referenced from table \"daily_shipment_report\".", code))
		}
	}
	for _, m := range r.s.monthly {
		if m.CustomerID == code {
			return referenced("monthly_shipment_report_customer_id_fkey", fmt.Sprintf("Key (code)=(%d) is still referenced from table \"monthly_shipment_report\".", code))
		}
	}
	delete(r.s.customers, code)
	return nil
}

func (r *CustomerRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.customers), nil
}

// ── Products ─────────────────────────────────────────────────────────────────

// ProductRepo implementa repository.ProductRepository.
type ProductRepo struct{ s *Store }

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.Code]; ok {
		return duplicate("products_pkey", fmt.Sprintf("Key (code)=(%d) already exists.", p.Code))
	}
	r.s.products[p.Code] = clone(p)
	return nil
}

func (r *ProductRepo) GetByCode(_ context.Context, code int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.products[code]; ok {
		return clone(p), nil
	}
	return nil, nil
}

func (r *ProductRepo) List(_ context.Context, page repository.Page) ([]*entity.Product, int, error) {
	all, _ := r.ListAll(context.Background())
	out, total := paginate(all, func(p *entity.Product) int64 { return p.Code }, page)
	return out, total, nil
}

func (r *ProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, clone(p))
	}
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.Code]; ok {
		r.s.products[p.Code] = clone(p)
	}
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, code int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.monthly {
		if m.ProductID == code {
			return referenced("monthly_shipment_report_product_id_fkey", fmt.Sprintf("Key (code)=(%d) is still referenced from table \"monthly_shipment_report\".", code))
		}
	}
	delete(r.s.products, code)
	return nil
}

func (r *ProductRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.products), nil
}

// ── Vehicles ─────────────────────────────────────────────────────────────────

// VehicleRepo implementa repository.VehicleRepository.
type VehicleRepo struct{ s *Store }

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

func (r *VehicleRepo) plateTaken(id int64, plate string) error {
	for other, v := range r.s.vehicles {
		if other != id && v.Plate == plate {
			return duplicate("vehicles_plate_key", fmt.Sprintf("Key (plate)=(%s) already exists.", plate))
		}
	}
	return nil
}

func (r *VehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.plateTaken(0, v.Plate); err != nil {
		return err
	}
	v.ID = r.s.next("vehicles")
	r.s.vehicles[v.ID] = clone(v)
	return nil
}

func (r *VehicleRepo) GetByID(_ context.Context, id int64) (*entity.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if v, ok := r.s.vehicles[id]; ok {
		return clone(v), nil
	}
	return nil, nil
}

func (r *VehicleRepo) GetByPlate(_ context.Context, plate string) (*entity.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, v := range r.s.vehicles {
		if v.Plate == plate {
			return clone(v), nil
		}
	}
	return nil, nil
}

func (r *VehicleRepo) List(_ context.Context, page repository.Page) ([]*entity.Vehicle, int, error) {
	r.s.mu.RLock()
	all := make([]*entity.Vehicle, 0, len(r.s.vehicles))
	for _, v := range r.s.vehicles {
		all = append(all, clone(v))
	}
	r.s.mu.RUnlock()
	out, total := paginate(all, func(v *entity.Vehicle) int64 { return v.ID }, page)
	return out, total, nil
}

// Update cambia la placa en cascada en los relatórios (ON UPDATE CASCADE).
func (r *VehicleRepo) Update(_ context.Context, v *entity.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.plateTaken(v.ID, v.Plate); err != nil {
		return err
	}
	old, ok := r.s.vehicles[v.ID]
	if !ok {
		return nil
	}
	if old.Plate != v.Plate {
		for _, d := range r.s.daily {
			if d.DeliverVehicle != nil && *d.DeliverVehicle == old.Plate {
				plate := v.Plate
				d.DeliverVehicle = &plate
			}
		}
	}
	r.s.vehicles[v.ID] = clone(v)
	return nil
}

func (r *VehicleRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.vehicles[id]
	if !ok {
		return nil
	}
	for _, d := range r.s.daily {
		if d.DeliverVehicle != nil && *d.DeliverVehicle == v.Plate {
			return referenced("daily_shipment_report_deliver_vehicle_fkey", fmt.Sprintf("Key (plate)=(%s) is still referenced from table \"daily_shipment_report\".", v.Plate))
		}
	}
	delete(r.s.vehicles, id)
	return nil
}

func (r *VehicleRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.vehicles), nil
}

// ── Daily reports ────────────────────────────────────────────────────────────

// DailyReportRepo implementa repository.DailyReportRepository.
type DailyReportRepo struct{ s *Store }

var _ repository.DailyReportRepository = (*DailyReportRepo)(nil)

func (r *DailyReportRepo) checkRefs(d *entity.DailyShipmentReport) error {
	if _, ok := r.s.users[d.UserID]; !ok {
		return referenced("daily_shipment_report_user_id_fkey", fmt.Sprintf("Key (user_id)=(%d) is not present in table \"users\".", d.UserID))
	}
	if _, ok := r.s.customers[d.CustomerCode]; !ok {
		return referenced("daily_shipment_report_customer_code_fkey", fmt.Sprintf("Key (customer_code)=(%d) is not present in table \"customers\".", d.CustomerCode))
	}
	if d.DeliverVehicle != nil {
		found := false
		for _, v := range r.s.vehicles {
			if v.Plate == *d.DeliverVehicle {
				found = true
				break
			}
		}
		if !found {
			return referenced("daily_shipment_report_deliver_vehicle_fkey", fmt.Sprintf("Key (deliver_vehicle)=(%s) is not present in table \"vehicles\".", *d.DeliverVehicle))
		}
	}
	return nil
}

// CreateMany todo o nada, como la transacción de PostgreSQL.
func (r *DailyReportRepo) CreateMany(_ context.Context, reports []*entity.DailyShipmentReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, d := range reports {
		if err := r.checkRefs(d); err != nil {
			return err
		}
	}
	for _, d := range reports {
		d.ID = r.s.next("daily")
		r.s.daily[d.ID] = cloneReport(d)
	}
	return nil
}

func (r *DailyReportRepo) GetByID(_ context.Context, id int64) (*entity.DailyShipmentReport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if d, ok := r.s.daily[id]; ok {
		return cloneReport(d), nil
	}
	return nil, nil
}

func (r *DailyReportRepo) List(_ context.Context, page repository.Page) ([]*entity.DailyShipmentReport, int, error) {
	all, _ := r.ListAll(context.Background())
	out, total := paginate(all, func(d *entity.DailyShipmentReport) int64 { return d.ID }, page)
	return out, total, nil
}

// ListAll por id descendente.
func (r *DailyReportRepo) ListAll(_ context.Context) ([]*entity.DailyShipmentReport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.DailyShipmentReport, 0, len(r.s.daily))
	for _, d := range r.s.daily {
		out = append(out, cloneReport(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *DailyReportRepo) Update(_ context.Context, d *entity.DailyShipmentReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	old, ok := r.s.daily[d.ID]
	if !ok {
		return nil
	}
	if err := r.checkRefs(d); err != nil {
		return err
	}
	c := cloneReport(d)
	c.FillingDate = old.FillingDate
	r.s.daily[d.ID] = c
	return nil
}

func (r *DailyReportRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.daily, id)
	return nil
}

// ── Monthly reports ──────────────────────────────────────────────────────────

// MonthlyReportRepo implementa repository.MonthlyReportRepository.
type MonthlyReportRepo struct{ s *Store }

var _ repository.MonthlyReportRepository = (*MonthlyReportRepo)(nil)

func (r *MonthlyReportRepo) checkRefs(m *entity.MonthlyShipmentReport) error {
	if _, ok := r.s.products[m.ProductID]; !ok {
		return referenced("monthly_shipment_report_product_id_fkey", fmt.Sprintf("Key (product_id)=(%d) is not present in table \"products\".", m.ProductID))
	}
	if _, ok := r.s.customers[m.CustomerID]; !ok {
		return referenced("monthly_shipment_report_customer_id_fkey", fmt.Sprintf("Key (customer_id)=(%d) is not present in table \"customers\".", m.CustomerID))
	}
	return nil
}

func (r *MonthlyReportRepo) Create(_ context.Context, m *entity.MonthlyShipmentReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkRefs(m); err != nil {
		return err
	}
	m.ID = r.s.next("monthly")
	r.s.monthly[m.ID] = clone(m)
	return nil
}

func (r *MonthlyReportRepo) GetByID(_ context.Context, id int64) (*entity.MonthlyShipmentReport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if m, ok := r.s.monthly[id]; ok {
		return clone(m), nil
	}
	return nil, nil
}

func (r *MonthlyReportRepo) List(_ context.Context, page repository.Page) ([]*entity.MonthlyShipmentReport, int, error) {
	r.s.mu.RLock()
	all := make([]*entity.MonthlyShipmentReport, 0, len(r.s.monthly))
	for _, m := range r.s.monthly {
		all = append(all, clone(m))
	}
	r.s.mu.RUnlock()
	out, total := paginate(all, func(m *entity.MonthlyShipmentReport) int64 { return m.ID }, page)
	return out, total, nil
}

func (r *MonthlyReportRepo) Update(_ context.Context, m *entity.MonthlyShipmentReport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.monthly[m.ID]; !ok {
		return nil
	}
	if err := r.checkRefs(m); err != nil {
		return err
	}
	r.s.monthly[m.ID] = clone(m)
	return nil
}

func (r *MonthlyReportRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.monthly, id)
	return nil
}

// ── Analytics ────────────────────────────────────────────────────────────────

// AnalyticsRepo implementa repository.AnalyticsRepository sobre los registros mensuales.
type AnalyticsRepo struct{ s *Store }

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

func (r *AnalyticsRepo) MostProductsSold(_ context.Context) ([]repository.ProductSalesResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	byProduct := make(map[int64]*repository.ProductSalesResult)
	for _, m := range r.s.monthly {
		res, ok := byProduct[m.ProductID]
		if !ok {
			res = &repository.ProductSalesResult{ProductID: m.ProductID, TotalSold: decimal.Zero}
			if p, found := r.s.products[m.ProductID]; found {
				name := p.Description
				res.ProductName = &name
			}
			byProduct[m.ProductID] = res
		}
		res.TotalSold = res.TotalSold.Add(m.Quantity)
		res.TimesSold++
	}
	out := make([]repository.ProductSalesResult, 0, len(byProduct))
	for _, res := range byProduct {
		out = append(out, *res)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalSold.Cmp(out[j].TotalSold); c != 0 {
			return c > 0
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out, nil
}

func (r *AnalyticsRepo) ProductsSoldByState(_ context.Context) ([]repository.DestinationSalesResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	byState := make(map[string]decimal.Decimal)
	for _, m := range r.s.monthly {
		byState[m.Destination] = byState[m.Destination].Add(m.Quantity)
	}
	out := make([]repository.DestinationSalesResult, 0, len(byState))
	for state, total := range byState {
		out = append(out, repository.DestinationSalesResult{State: state, TotalSold: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].TotalSold.Cmp(out[j].TotalSold); c != 0 {
			return c > 0
		}
		return out[i].State < out[j].State
	})
	return out, nil
}
