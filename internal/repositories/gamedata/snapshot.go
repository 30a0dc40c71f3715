package gamedata

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/hexbench/tooltip-api/internal/entities"
	"github.com/hexbench/tooltip-api/internal/errors"
)

// Snapshot is the on-disk shape of a game data export.
type Snapshot struct {
	Units []*entities.UnitDefinition `json:"units"`
	Items []*entities.ItemDefinition `json:"items"`
}

// snapshotRepo serves game data from an in-memory snapshot. The maps
// are built once at construction and never written again, so reads
// need no locking.
type snapshotRepo struct {
	unitsByID map[string]*entities.UnitDefinition
	itemsByID map[string]*entities.ItemDefinition
	units     []*entities.UnitDefinition
	items     []*entities.ItemDefinition
}

// NewSnapshot creates a repository over an already-decoded snapshot.
func NewSnapshot(snap *Snapshot) (Repository, error) {
	if snap == nil {
		return nil, errors.InvalidArgument("snapshot cannot be nil")
	}

	repo := &snapshotRepo{
		unitsByID: make(map[string]*entities.UnitDefinition, len(snap.Units)),
		itemsByID: make(map[string]*entities.ItemDefinition, len(snap.Items)),
	}
	for _, u := range snap.Units {
		if u == nil || u.ID == "" {
			return nil, errors.InvalidArgument("snapshot contains a unit without an ID")
		}
		if _, ok := repo.unitsByID[u.ID]; ok {
			return nil, errors.InvalidArgumentf("duplicate unit ID %s in snapshot", u.ID)
		}
		repo.unitsByID[u.ID] = u
		repo.units = append(repo.units, u)
	}
	for _, it := range snap.Items {
		if it == nil || it.ID == "" {
			return nil, errors.InvalidArgument("snapshot contains an item without an ID")
		}
		if _, ok := repo.itemsByID[it.ID]; ok {
			return nil, errors.InvalidArgumentf("duplicate item ID %s in snapshot", it.ID)
		}
		repo.itemsByID[it.ID] = it
		repo.items = append(repo.items, it)
	}

	sort.Slice(repo.units, func(i, j int) bool {
		if repo.units[i].Cost != repo.units[j].Cost {
			return repo.units[i].Cost < repo.units[j].Cost
		}
		return repo.units[i].Name < repo.units[j].Name
	})
	sort.Slice(repo.items, func(i, j int) bool {
		return repo.items[i].Name < repo.items[j].Name
	})

	return repo, nil
}

// LoadSnapshotFile reads and decodes a snapshot JSON file.
func LoadSnapshotFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path) // #nosec G304 // operator-supplied data path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read snapshot file %s", path)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument,
			"failed to parse snapshot file "+path)
	}
	return &snap, nil
}

// NewFromFile loads a snapshot file and builds a repository over it.
func NewFromFile(path string) (Repository, error) {
	snap, err := LoadSnapshotFile(path)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(snap)
}

func (r *snapshotRepo) GetUnit(_ context.Context, input GetUnitInput) (*GetUnitOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.InvalidArgument("unit ID is required")
	}
	unit, ok := r.unitsByID[id]
	if !ok {
		return nil, errors.NotFoundf("unit %s not found", id)
	}
	return &GetUnitOutput{Unit: unit}, nil
}

func (r *snapshotRepo) GetItem(_ context.Context, input GetItemInput) (*GetItemOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}
	item, ok := r.itemsByID[id]
	if !ok {
		return nil, errors.NotFoundf("item %s not found", id)
	}
	return &GetItemOutput{Item: item}, nil
}

func (r *snapshotRepo) ListUnits(_ context.Context, _ ListUnitsInput) (*ListUnitsOutput, error) {
	out := make([]*entities.UnitDefinition, len(r.units))
	copy(out, r.units)
	return &ListUnitsOutput{Units: out}, nil
}

func (r *snapshotRepo) ListItems(_ context.Context, _ ListItemsInput) (*ListItemsOutput, error) {
	out := make([]*entities.ItemDefinition, len(r.items))
	copy(out, r.items)
	return &ListItemsOutput{Items: out}, nil
}
