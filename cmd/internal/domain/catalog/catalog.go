package catalog

import (
	"strconv"
	"strings"

	"driveline/cmd/internal/domain/entity"
)

// Price bracket labels as the filter UI submits them.
const (
	PriceLow  = "$0 - $50,000"
	PriceMid  = "$50,000 - $100,000"
	PriceHigh = "$100,000+"
)

const featuredCount = 3

// Query carries the active catalog facets. Zero values (and the filter
// widget placeholders) leave a facet inactive; active facets are combined
// with AND.
type Query struct {
	Search string
	Type   string
	Price  string
	Year   string
}

// Store holds the fixed vehicle list. It is read-only after construction
// and every query is a pure function over it.
type Store struct {
	vehicles []entity.Vehicle
	details  map[int]*entity.VehicleDetail
}

// New builds a store from detail records, keeping their order for listings.
func New(details []entity.VehicleDetail) *Store {
	s := &Store{
		vehicles: make([]entity.Vehicle, len(details)),
		details:  make(map[int]*entity.VehicleDetail, len(details)),
	}
	for i := range details {
		s.vehicles[i] = details[i].Vehicle
		s.details[details[i].ID] = &details[i]
	}
	return s
}

// List returns every vehicle in source order.
func (s *Store) List() []entity.Vehicle {
	out := make([]entity.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// Featured returns the vehicles the landing page highlights.
func (s *Store) Featured() []entity.Vehicle {
	n := featuredCount
	if n > len(s.vehicles) {
		n = len(s.vehicles)
	}
	out := make([]entity.Vehicle, n)
	copy(out, s.vehicles[:n])
	return out
}

// GetByID returns the detail record for id, or nil when no such vehicle
// exists. Unknown ids are an expected outcome, not an error.
func (s *Store) GetByID(id int) *entity.VehicleDetail {
	return s.details[id]
}

// Filter returns the vehicles matching every active facet of q, in source
// order. The result is always non-nil so an empty match stays
// distinguishable from an absent one.
func (s *Store) Filter(q Query) []entity.Vehicle {
	filtered := make([]entity.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if matches(v, q) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

func matches(v entity.Vehicle, q Query) bool {
	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		name := strings.ToLower(v.Name)
		typ := strings.ToLower(v.Type)
		if !strings.Contains(name, search) && !strings.Contains(typ, search) {
			return false
		}
	}

	if q.Type != "" && q.Type != "All Types" && v.Type != q.Type {
		return false
	}

	if q.Price != "" && q.Price != "Price Range" && !inBracket(v.Price, q.Price) {
		return false
	}

	if q.Year != "" && q.Year != "Year" && v.Year != q.Year {
		return false
	}
	return true
}

// inBracket strips thousands separators before comparing. The low bracket
// is inclusive of 50,000 and the mid bracket of 100,000; an unparseable
// price matches no bracket.
func inBracket(priceStr, bracket string) bool {
	price, err := strconv.Atoi(strings.ReplaceAll(priceStr, ",", ""))
	if err != nil {
		return false
	}

	switch bracket {
	case PriceLow:
		return price <= 50000
	case PriceMid:
		return price > 50000 && price <= 100000
	case PriceHigh:
		return price > 100000
	default:
		return true
	}
}
