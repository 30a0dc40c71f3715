package tooltip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexbench/tooltip-api/internal/entities"
	"github.com/hexbench/tooltip-api/internal/testutils"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(nil)

	t.Run("mana fields outrank every keyword", func(t *testing.T) {
		a := testutils.NewTestAbility()
		a.Description = "Passive: deals @Damage@ magic damage."

		got := c.Classify(a)

		assert.Equal(t, entities.SkillTypeActive, got.Type)
		require.NotNil(t, got.Mana)
		assert.Equal(t, int32(25), got.Mana.Start)
		assert.Equal(t, int32(75), got.Mana.Cost)
		assert.False(t, got.Guessed)
	})

	t.Run("mana values round to whole numbers", func(t *testing.T) {
		a := testutils.NewTestAbility()
		start, cost := 24.6, 74.4
		a.ManaStart, a.ManaCost = &start, &cost

		got := c.Classify(a)

		require.NotNil(t, got.Mana)
		assert.Equal(t, int32(25), got.Mana.Start)
		assert.Equal(t, int32(74), got.Mana.Cost)
	})

	t.Run("passive keyword without mana", func(t *testing.T) {
		a := &entities.AbilityDefinition{
			Name:        "Ever Watchful",
			Description: "Innate: constantly regenerates health.",
		}

		got := c.Classify(a)

		assert.Equal(t, entities.SkillTypePassive, got.Type)
		assert.Nil(t, got.Mana)
		assert.False(t, got.Guessed)
	})

	t.Run("passive keyword wins over active keyword", func(t *testing.T) {
		a := &entities.AbilityDefinition{
			Name:        "Twin Form",
			Description: "Passive: after each cast, gains bonus armor.",
		}

		got := c.Classify(a)

		assert.Equal(t, entities.SkillTypePassive, got.Type)
	})

	t.Run("active keyword without mana fields", func(t *testing.T) {
		a := &entities.AbilityDefinition{
			Name:        "Skyfall",
			Description: "Cast a meteor at the largest enemy cluster.",
		}

		got := c.Classify(a)

		assert.Equal(t, entities.SkillTypeActive, got.Type)
		assert.Nil(t, got.Mana)
		assert.False(t, got.Guessed)
	})

	t.Run("zero mana cost falls through to keywords", func(t *testing.T) {
		a := testutils.NewTestAbility()
		zero := 0.0
		a.ManaCost = &zero
		a.Description = "Channels a beam for 3 seconds."

		got := c.Classify(a)

		assert.Equal(t, entities.SkillTypeActive, got.Type)
		assert.Nil(t, got.Mana)
	})

	t.Run("no signal defaults to a guessed passive", func(t *testing.T) {
		a := &entities.AbilityDefinition{
			Name:        "Enigma",
			Description: "Deals @Damage@ to a random enemy.",
		}

		got := c.Classify(a)

		assert.Equal(t, entities.SkillTypePassive, got.Type)
		assert.Nil(t, got.Mana)
		assert.True(t, got.Guessed)
	})
}
