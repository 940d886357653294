package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemStore keeps the catalog in process memory. It starts from the fixed
// sample set and loses everything added after it on restart.
type MemStore struct {
	mu    sync.RWMutex
	m     map[string]Product
	order []string
}

func NewMemStore() *MemStore {
	s := &MemStore{m: make(map[string]Product)}
	for _, p := range seedProducts() {
		s.m[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

func seedProducts() []Product {
	return []Product{
		{
			ID:             "1",
			Name:           "Digital Blood Pressure Monitor",
			Description:    "Advanced digital blood pressure monitor with LCD display and memory function",
			Category:       "Diagnostic Equipment",
			Price:          2500,
			InStock:        true,
			Specifications: []string{"LCD Display", "Memory for 100 readings", "Irregular heartbeat detection"},
		},
		{
			ID:             "2",
			Name:           "Surgical Forceps Set",
			Description:    "Premium stainless steel surgical forceps set for precision operations",
			Category:       "Surgical Instruments",
			Price:          1800,
			InStock:        true,
			Specifications: []string{"Stainless steel", "Precision tips", "Autoclave safe"},
		},
		{
			ID:             "3",
			Name:           "Patient Monitor",
			Description:    "Multi-parameter patient monitor with ECG, SpO2, and NIBP capabilities",
			Category:       "Patient Monitoring",
			Price:          45000,
			InStock:        true,
			Specifications: []string{"12.1 inch display", "ECG monitoring", "SpO2 sensor", "NIBP cuff"},
		},
		{
			ID:             "4",
			Name:           "Autoclave Sterilizer",
			Description:    "Tabletop autoclave sterilizer for medical instrument sterilization",
			Category:       "Sterilization",
			Price:          15000,
			InStock:        true,
			Specifications: []string{"15L capacity", "Digital display", "Safety lock system"},
		},
		{
			ID:             "5",
			Name:           "Digital X-Ray System",
			Description:    "Modern digital radiography system for diagnostic imaging",
			Category:       "Diagnostic Equipment",
			Price:          125000,
			InStock:        true,
			Specifications: []string{"Digital sensors", "PACS integration", "High resolution imaging"},
		},
		{
			ID:             "6",
			Name:           "Orthopedic Bone Drill",
			Description:    "High-precision orthopedic drill for bone surgery procedures",
			Category:       "Orthopedic Instruments",
			Price:          8500,
			InStock:        true,
			Specifications: []string{"Variable speed", "Sterilizable", "Ergonomic design"},
		},
		{
			ID:             "7",
			Name:           "Defibrillator",
			Description:    "Automated external defibrillator for emergency cardiac care",
			Category:       "Emergency Medicine",
			Price:          35000,
			InStock:        true,
			Specifications: []string{"Biphasic waveform", "Voice prompts", "Data recording"},
		},
		{
			ID:             "8",
			Name:           "Laboratory Centrifuge",
			Description:    "High-speed laboratory centrifuge for sample processing",
			Category:       "Laboratory Equipment",
			Price:          12000,
			InStock:        true,
			Specifications: []string{"15000 RPM", "Digital timer", "Safety lid lock"},
		},
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context, f Filter) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		if p := s.m[id]; f.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.m[id]
	return p, ok, nil
}

func (s *MemStore) Add(ctx context.Context, in InsertProduct) (Product, error) {
	p := Product{
		ID:             "p_" + uuid.NewString(),
		Name:           in.Name,
		Description:    in.Description,
		Category:       in.Category,
		Price:          in.Price,
		ImageURL:       in.ImageURL,
		InStock:        in.InStock == nil || *in.InStock,
		Specifications: in.Specifications,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[p.ID] = p
	s.order = append(s.order, p.ID)
	return p, nil
}

func (s *MemStore) Update(ctx context.Context, id string, patch ProductPatch) (Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.m[id]
	if !ok {
		return Product{}, false, nil
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.Specifications != nil {
		p.Specifications = patch.Specifications
	}

	s.m[id] = p
	return p, true, nil
}
