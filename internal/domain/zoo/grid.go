package zoo

import "errors"

var (
	ErrPlacementCollision = errors.New("placement collides with an existing structure")
	ErrInsufficientFunds  = errors.New("insufficient funds")
)

// SnapToGrid floors a world coordinate to the nearest lower multiple of the
// cell size. Callers translate raw pointer positions into world coordinates
// (divide by zoom) before snapping.
func SnapToGrid(v int) int {
	if v < 0 {
		return -((-v + CellSize - 1) / CellSize) * CellSize
	}
	return (v / CellSize) * CellSize
}

type boundingBox struct {
	x1, y1, x2, y2 int
}

func footprintBox(t StructureTemplate, x, y int) boundingBox {
	return boundingBox{x1: x, y1: y, x2: x + t.Width*CellSize, y2: y + t.Height*CellSize}
}

// overlaps is a strict AABB test: boxes sharing only an edge do not overlap,
// so adjacent placement is always legal.
func overlaps(a, b boundingBox) bool {
	return a.x1 < b.x2 && a.x2 > b.x1 && a.y1 < b.y2 && a.y2 > b.y1
}

// ValidatePlacement snaps the requested origin and checks the template's
// footprint against every placed structure. Returns the snapped origin and
// ErrPlacementCollision if anything intersects.
func ValidatePlacement(t StructureTemplate, x, y int, structures []PlacedStructure) (int, int, error) {
	gx, gy := SnapToGrid(x), SnapToGrid(y)
	candidate := footprintBox(t, gx, gy)
	for _, s := range structures {
		if overlaps(candidate, footprintBox(s.Template, s.X, s.Y)) {
			return gx, gy, ErrPlacementCollision
		}
	}
	return gx, gy, nil
}

// Place validates and appends. Append order is preserved; later structures
// render above earlier ones when depth-sorted, roads always beneath.
func Place(w *WorldState, instanceID string, t StructureTemplate, x, y int) (*PlacedStructure, error) {
	gx, gy, err := ValidatePlacement(t, x, y, w.Structures)
	if err != nil {
		return nil, err
	}
	w.Structures = append(w.Structures, PlacedStructure{
		InstanceID: instanceID,
		ItemID:     t.ID,
		X:          gx,
		Y:          gy,
		Template:   t,
	})
	return &w.Structures[len(w.Structures)-1], nil
}

// DemolishRefund: roads refund in full, everything else half, rounded down.
func DemolishRefund(t StructureTemplate) int {
	if t.Category == CategoryRoad {
		return t.Cost
	}
	return t.Cost / 2
}

// Demolish removes the structure and credits the refund to gold. The caller
// is responsible for confirming first; demolition is not reversible.
func Demolish(w *WorldState, instanceID string) (int, bool) {
	for i := range w.Structures {
		if w.Structures[i].InstanceID != instanceID {
			continue
		}
		refund := DemolishRefund(w.Structures[i].Template)
		w.Structures = append(w.Structures[:i], w.Structures[i+1:]...)
		w.Gold += refund
		return refund, true
	}
	return 0, false
}

// CanAfford checks the balance in the template's declared currency only; a
// diamond-priced structure is never checked against gold and vice versa.
func CanAfford(w *WorldState, cost int, currency Currency) bool {
	switch currency {
	case CurrencyDiamond:
		return w.Diamonds >= cost
	default:
		return w.Gold >= cost
	}
}

// Charge deducts cost in the given currency after an affordability check,
// so balances never go transiently negative.
func Charge(w *WorldState, cost int, currency Currency) error {
	if !CanAfford(w, cost, currency) {
		return ErrInsufficientFunds
	}
	switch currency {
	case CurrencyDiamond:
		w.Diamonds -= cost
	default:
		w.Gold -= cost
	}
	return nil
}
