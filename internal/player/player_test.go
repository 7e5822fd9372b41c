package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamageAndHealClamp(t *testing.T) {
	p := New("tester")

	applied := p.TakeDamage(30)
	assert.Equal(t, 30, applied)
	assert.Equal(t, 70, p.Health)

	healed := p.Heal(50)
	assert.Equal(t, 30, healed, "heal must stop at max health")
	assert.Equal(t, p.MaxHealth, p.Health)

	applied = p.TakeDamage(500)
	assert.Equal(t, p.MaxHealth, applied)
	assert.Equal(t, 0, p.Health)
	assert.False(t, p.IsAlive())
}

func TestGainXPLevelsUp(t *testing.T) {
	p := New("tester")
	p.TakeDamage(40)

	levels := p.GainXP(100)
	assert.Equal(t, 1, levels)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 110, p.MaxHealth)
	assert.Equal(t, 110, p.Health, "level up heals to full")
	assert.Equal(t, 11, p.Stats.Strength)
	assert.Equal(t, 11, p.Stats.Luck)
}

func TestGainXPMultipleLevels(t *testing.T) {
	p := New("tester")

	// 100 for level 2, 200 more for level 3.
	levels := p.GainXP(320)
	assert.Equal(t, 2, levels)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 20, p.XP)
	assert.Equal(t, 280, p.XPToNextLevel())
}

func TestInventoryCapacity(t *testing.T) {
	inv := NewInventory()
	inv.Capacity = 2

	require.NoError(t, inv.Add(Item{Name: "Rope", Category: CategoryTool}))
	require.NoError(t, inv.Add(Item{Name: "Torch", Category: CategoryTool}))
	err := inv.Add(Item{Name: "Gem", Category: CategoryTreasure})
	require.ErrorIs(t, err, ErrInventoryFull)
	assert.True(t, inv.IsFull())
}

func TestInventoryRemoveIsCaseInsensitive(t *testing.T) {
	inv := NewInventory()
	require.NoError(t, inv.Add(Item{Name: "Silver Key", Value: 15}))

	item, err := inv.Remove("silver key")
	require.NoError(t, err)
	assert.Equal(t, "Silver Key", item.Name)
	assert.Equal(t, 0, inv.Count())

	_, err = inv.Remove("silver key")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestInventoryGrouping(t *testing.T) {
	inv := NewInventory()
	require.NoError(t, inv.Add(Item{Name: "Health Potion", Value: 20, Category: CategoryConsumable}))
	require.NoError(t, inv.Add(Item{Name: "Rusty Sword", Value: 10, Category: CategoryWeapon}))
	require.NoError(t, inv.Add(Item{Name: "Bread", Value: 5, Category: CategoryConsumable}))

	cats, groups := inv.ByCategory()
	assert.Equal(t, []string{CategoryConsumable, CategoryWeapon}, cats)
	assert.Len(t, groups[CategoryConsumable], 2)
	assert.Equal(t, 35, inv.TotalValue())
}

func TestUsePotionHeals(t *testing.T) {
	p := New("tester")
	p.TakeDamage(50)
	require.NoError(t, p.Inventory.Add(Item{Name: "Health Potion", Value: 40, Category: CategoryConsumable}))

	msg, err := p.UseItem("health potion")
	require.NoError(t, err)
	assert.Contains(t, msg, "recover 20 health")
	assert.Equal(t, 70, p.Health)
	assert.Equal(t, 0, p.Inventory.Count())
}

func TestUseScrollRaisesStat(t *testing.T) {
	p := New("tester")
	require.NoError(t, p.Inventory.Add(Item{Name: "Scroll of Strength", Value: 25, Category: CategoryConsumable}))

	msg, err := p.UseItem("Scroll of Strength")
	require.NoError(t, err)
	assert.Contains(t, msg, "Strength +1")
	assert.Equal(t, 11, p.Stats.Strength)
}

func TestUseUnusableItem(t *testing.T) {
	p := New("tester")
	require.NoError(t, p.Inventory.Add(Item{Name: "Golden Idol", Value: 100, Category: CategoryTreasure}))

	_, err := p.UseItem("Golden Idol")
	require.Error(t, err)
	assert.Equal(t, 1, p.Inventory.Count(), "failed use must not consume the item")
}

func TestProgressTracking(t *testing.T) {
	pr := NewProgress()
	pr.VisitChamber(1, map[string]int{"north": 2})
	pr.VisitChamber(2, map[string]int{"south": 1, "east": 3})
	pr.CompleteChamber(1, 50)
	pr.CompleteChamber(1, 50) // repeat must not double-score

	assert.Equal(t, 2, pr.VisitedCount())
	assert.Equal(t, 1, pr.CompletedCount())
	assert.Equal(t, 50, pr.Score)
	assert.True(t, pr.HasVisited(2))
	assert.False(t, pr.HasCompleted(2))
	assert.Equal(t, map[string]int{"south": 1, "east": 3}, pr.KnownExits(2))
}

func TestStatsAddClampsAtOne(t *testing.T) {
	s := DefaultStats()
	require.NoError(t, s.Add(StatLuck, -20))
	assert.Equal(t, 1, s.Luck)

	err := s.Add("charisma", 1)
	assert.Error(t, err)
}
