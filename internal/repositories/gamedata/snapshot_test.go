package gamedata_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hexbench/tooltip-api/internal/entities"
	"github.com/hexbench/tooltip-api/internal/errors"
	"github.com/hexbench/tooltip-api/internal/repositories/gamedata"
	"github.com/hexbench/tooltip-api/internal/testutils"
)

type SnapshotRepositoryTestSuite struct {
	suite.Suite

	ctx  context.Context
	repo gamedata.Repository
}

func (s *SnapshotRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	repo, err := gamedata.NewSnapshot(&gamedata.Snapshot{
		Units: []*entities.UnitDefinition{
			testutils.NewTestUnit(),
			{ID: "unit_pebble", Name: "Pebble", Cost: 1},
			{ID: "unit_aurora", Name: "Aurora", Cost: 5},
		},
		Items: testutils.NewTestItems(),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SnapshotRepositoryTestSuite) TestGetUnit() {
	out, err := s.repo.GetUnit(s.ctx, gamedata.GetUnitInput{ID: "unit_ember"})

	s.Require().NoError(err)
	s.Equal("Ember", out.Unit.Name)
	s.Require().NotNil(out.Unit.Ability)
	s.Equal("Flame Surge", out.Unit.Ability.Name)
}

func (s *SnapshotRepositoryTestSuite) TestGetUnit_NotFound() {
	_, err := s.repo.GetUnit(s.ctx, gamedata.GetUnitInput{ID: "unit_missing"})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *SnapshotRepositoryTestSuite) TestGetUnit_EmptyID() {
	_, err := s.repo.GetUnit(s.ctx, gamedata.GetUnitInput{ID: "  "})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SnapshotRepositoryTestSuite) TestGetItem() {
	out, err := s.repo.GetItem(s.ctx, gamedata.GetItemInput{ID: "item_deathcap"})

	s.Require().NoError(err)
	s.Equal("Rabadon's Deathcap", out.Item.Name)
	s.InDelta(50.0, out.Item.Stats.AbilityPower, 0.001)
}

func (s *SnapshotRepositoryTestSuite) TestGetItem_NotFound() {
	_, err := s.repo.GetItem(s.ctx, gamedata.GetItemInput{ID: "item_missing"})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *SnapshotRepositoryTestSuite) TestListUnits_SortedByCostThenName() {
	out, err := s.repo.ListUnits(s.ctx, gamedata.ListUnitsInput{})

	s.Require().NoError(err)
	s.Require().Len(out.Units, 3)
	s.Equal("unit_pebble", out.Units[0].ID)
	s.Equal("unit_ember", out.Units[1].ID)
	s.Equal("unit_aurora", out.Units[2].ID)
}

func (s *SnapshotRepositoryTestSuite) TestListItems_SortedByName() {
	out, err := s.repo.ListItems(s.ctx, gamedata.ListItemsInput{})

	s.Require().NoError(err)
	s.Require().Len(out.Items, 3)
	s.Equal("B.F. Sword", out.Items[0].Name)
	s.Equal("Giant's Belt", out.Items[1].Name)
	s.Equal("Rabadon's Deathcap", out.Items[2].Name)
}

func TestSnapshotRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotRepositoryTestSuite))
}

func TestNewSnapshot_Validation(t *testing.T) {
	t.Run("nil snapshot", func(t *testing.T) {
		_, err := gamedata.NewSnapshot(nil)
		if !errors.IsInvalidArgument(err) {
			t.Fatalf("expected invalid argument, got %v", err)
		}
	})

	t.Run("duplicate unit ID", func(t *testing.T) {
		_, err := gamedata.NewSnapshot(&gamedata.Snapshot{
			Units: []*entities.UnitDefinition{
				{ID: "unit_dup", Name: "A"},
				{ID: "unit_dup", Name: "B"},
			},
		})
		if !errors.IsInvalidArgument(err) {
			t.Fatalf("expected invalid argument, got %v", err)
		}
	})

	t.Run("unit without ID", func(t *testing.T) {
		_, err := gamedata.NewSnapshot(&gamedata.Snapshot{
			Units: []*entities.UnitDefinition{{Name: "Nameless"}},
		})
		if !errors.IsInvalidArgument(err) {
			t.Fatalf("expected invalid argument, got %v", err)
		}
	})
}

func TestNewFromFile(t *testing.T) {
	repo, err := gamedata.NewFromFile(filepath.Join("testdata", "snapshot.json"))
	if err != nil {
		t.Fatalf("loading snapshot: %v", err)
	}

	out, err := repo.GetUnit(context.Background(), gamedata.GetUnitInput{ID: "tft_ember"})
	if err != nil {
		t.Fatalf("getting unit: %v", err)
	}
	if out.Unit.Ability == nil || len(out.Unit.Ability.Variables) == 0 {
		t.Fatal("expected ability variables from the snapshot file")
	}
	if got := out.Unit.Ability.Variables[0].Key; got != "Damage" {
		t.Fatalf("unexpected first variable key %q", got)
	}
}

func TestNewFromFile_Missing(t *testing.T) {
	_, err := gamedata.NewFromFile(filepath.Join("testdata", "does_not_exist.json"))
	if err == nil {
		t.Fatal("expected an error for a missing snapshot file")
	}
}
