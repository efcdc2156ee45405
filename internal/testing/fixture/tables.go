// Package fixture provides a small, hand-checked slice of the game tables for tests.
package fixture

import "github.com/antonguzun/lazy-crafter/internal/domain"

// Item base names used across tests
const (
	ImperialBow       = "Imperial Bow"
	LongBow           = "Long Bow"
	CarnalBoots       = "Carnal Boots"
	RingmailBoots     = "Ringmail Boots"
	WarPlate          = "War Plate"
	CopperTowerShield = "Copper Tower Shield"
	AntiqueRapier     = "Antique Rapier"
	SilkGloves        = "Fingerless Silk Gloves"
	UnreleasedRing    = "Unreleased Ring"
	AbyssJewel        = "Murderous Eye Jewel"
)

// Pool weights on Carnal Boots at item level 100
const (
	BootsPrefixWeight = 9500
	BootsSuffixWeight = 10000
)

// I64 returns a pointer to v
func I64(v int64) *int64 {
	return &v
}

func stat(id string, lo, hi int64) domain.Stat {
	return domain.Stat{ID: id, Min: I64(lo), Max: I64(hi)}
}

func weights(pairs ...any) []domain.SpawnWeight {
	out := make([]domain.SpawnWeight, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.SpawnWeight{Tag: pairs[i].(string), Weight: uint32(pairs[i+1].(int))})
	}
	return out
}

type modSpec struct {
	key     string
	gen     domain.GenerationType
	level   uint64
	group   string
	weights []domain.SpawnWeight
	stats   []domain.Stat
}

func (s modSpec) build() domain.Mod {
	return domain.Mod{
		Key:            s.key,
		Name:           s.key,
		Domain:         domain.DomainItem,
		GenerationType: s.gen,
		RequiredLevel:  s.level,
		Groups:         []string{s.group},
		SpawnWeights:   s.weights,
		Stats:          s.stats,
		Type:           s.group,
	}
}

// Mods returns the mods table keyed by mod id.
func Mods() map[string]domain.Mod {
	armour := weights("boots", 1000, "gloves", 1000, "body_armour", 1000, "default", 0)
	boots := weights("boots", 1000, "default", 0)
	anywhere := weights("default", 1000)
	weapon := weights("weapon", 1000, "default", 0)
	regen := weights("body_armour", 1000, "default", 0)

	specs := []modSpec{
		{"LocalIncreasedPhysicalDamagePercent1", domain.GenerationPrefix, 1, "LocalPhysicalDamagePercent", weapon,
			[]domain.Stat{stat("local_physical_damage_+%", 40, 49)}},
		{"LocalIncreasedPhysicalDamagePercent2", domain.GenerationPrefix, 11, "LocalPhysicalDamagePercent", weapon,
			[]domain.Stat{stat("local_physical_damage_+%", 50, 64)}},

		{"IncreasedLife1", domain.GenerationPrefix, 1, "IncreasedLife", armour, []domain.Stat{stat("base_maximum_life", 3, 9)}},
		{"IncreasedLife2", domain.GenerationPrefix, 11, "IncreasedLife", armour, []domain.Stat{stat("base_maximum_life", 10, 24)}},
		{"IncreasedLife3", domain.GenerationPrefix, 18, "IncreasedLife", armour, []domain.Stat{stat("base_maximum_life", 25, 39)}},
		{"IncreasedLife4", domain.GenerationPrefix, 30, "IncreasedLife", armour, []domain.Stat{stat("base_maximum_life", 40, 54)}},
		{"IncreasedLife5", domain.GenerationPrefix, 44, "IncreasedLife", armour, []domain.Stat{stat("base_maximum_life", 55, 69)}},

		{"MovementVelocity1", domain.GenerationPrefix, 1, "MovementVelocity", boots, []domain.Stat{stat("base_movement_velocity_+%", 10, 14)}},
		{"MovementVelocity2", domain.GenerationPrefix, 15, "MovementVelocity", boots, []domain.Stat{stat("base_movement_velocity_+%", 15, 19)}},
		{"MovementVelocity3", domain.GenerationPrefix, 30, "MovementVelocity", boots, []domain.Stat{stat("base_movement_velocity_+%", 20, 24)}},
		{"MovementVelocity4", domain.GenerationPrefix, 40, "MovementVelocity", boots, []domain.Stat{stat("base_movement_velocity_+%", 25, 29)}},
		{"MovementVelocity5", domain.GenerationPrefix, 55, "MovementVelocity", weights("boots", 500, "default", 0),
			[]domain.Stat{stat("base_movement_velocity_+%", 30, 34)}},

		{"FireResist1", domain.GenerationSuffix, 1, "FireResistance", anywhere, []domain.Stat{stat("base_fire_damage_resistance_%", 6, 11)}},
		{"FireResist2", domain.GenerationSuffix, 14, "FireResistance", anywhere, []domain.Stat{stat("base_fire_damage_resistance_%", 12, 17)}},
		{"FireResist3", domain.GenerationSuffix, 26, "FireResistance", anywhere, []domain.Stat{stat("base_fire_damage_resistance_%", 18, 23)}},
		{"FireResist4", domain.GenerationSuffix, 36, "FireResistance", anywhere, []domain.Stat{stat("base_fire_damage_resistance_%", 24, 29)}},

		{"ColdResist1", domain.GenerationSuffix, 1, "ColdResistance", anywhere, []domain.Stat{stat("base_cold_damage_resistance_%", 6, 11)}},
		{"ColdResist2", domain.GenerationSuffix, 14, "ColdResistance", anywhere, []domain.Stat{stat("base_cold_damage_resistance_%", 12, 17)}},
		{"ColdResist3", domain.GenerationSuffix, 26, "ColdResistance", anywhere, []domain.Stat{stat("base_cold_damage_resistance_%", 18, 23)}},
		{"ColdResist4", domain.GenerationSuffix, 36, "ColdResistance", anywhere, []domain.Stat{stat("base_cold_damage_resistance_%", 24, 29)}},

		{"ItemFoundRarityIncrease1", domain.GenerationSuffix, 2, "ItemFoundRarityIncrease", boots,
			[]domain.Stat{stat("base_item_found_rarity_+%", 6, 10)}},
		{"ItemFoundRarityIncrease2", domain.GenerationSuffix, 21, "ItemFoundRarityIncrease", boots,
			[]domain.Stat{stat("base_item_found_rarity_+%", 11, 14)}},

		{"LifeGainPerTargetLocal1", domain.GenerationSuffix, 8, "LifeGainPerTarget", weapon, []domain.Stat{stat("local_life_gain_per_target", 2, 2)}},
		{"LifeGainPerTargetLocal2", domain.GenerationSuffix, 20, "LifeGainPerTarget", weapon, []domain.Stat{stat("local_life_gain_per_target", 3, 3)}},
		{"LifeGainPerTargetLocal3", domain.GenerationSuffix, 30, "LifeGainPerTarget", weapon, []domain.Stat{stat("local_life_gain_per_target", 4, 4)}},

		{"LifeGainedFromEnemyDeath1", domain.GenerationSuffix, 1, "LifeGainedFromEnemyDeath", weapon,
			[]domain.Stat{stat("life_gained_on_enemy_death", 3, 6)}},
		{"LifeGainedFromEnemyDeath2", domain.GenerationSuffix, 11, "LifeGainedFromEnemyDeath", weapon,
			[]domain.Stat{stat("life_gained_on_enemy_death", 7, 10)}},

		{"LocalAddedColdDamageTwoHand4", domain.GenerationPrefix, 29, "ColdDamage", weights("twohand", 1000, "default", 0),
			[]domain.Stat{stat("local_minimum_added_cold_damage", 26, 35), stat("local_maximum_added_cold_damage", 53, 62)}},
		{"LocalAddedColdDamageTwoHand5", domain.GenerationPrefix, 35, "ColdDamage", weights("twohand", 1000, "default", 0),
			[]domain.Stat{stat("local_minimum_added_cold_damage", 37, 50), stat("local_maximum_added_cold_damage", 74, 87)}},
		{"LocalAddedColdDamage5", domain.GenerationPrefix, 35, "ColdDamage", weights("onehand", 1000, "default", 0),
			[]domain.Stat{stat("local_minimum_added_cold_damage", 20, 27), stat("local_maximum_added_cold_damage", 41, 48)}},

		{"LifeLeechPermyriad1", domain.GenerationPrefix, 9, "LifeLeech", weights("gloves", 1000, "default", 0),
			[]domain.Stat{stat("life_leech_from_physical_attack_damage_permyriad", 20, 40)}},

		{"IncreasedMana5", domain.GenerationPrefix, 35, "IncreasedMana", weights("gloves", 1000, "default", 0),
			[]domain.Stat{stat("base_maximum_mana", 70, 79)}},
		{"IncreasedManaEnhancedModCost", domain.GenerationPrefix, 60, "IncreasedManaAndCost", weights("gloves", 500, "default", 0),
			[]domain.Stat{stat("base_maximum_mana", 74, 78), stat("base_mana_cost_+", -8, -6)}},

		{"LifeRegeneration6", domain.GenerationSuffix, 55, "LifeRegeneration", regen, []domain.Stat{stat("life_regeneration_rate_per_minute", 1926, 2880)}},
		{"LifeRegeneration7", domain.GenerationSuffix, 68, "LifeRegeneration", regen, []domain.Stat{stat("life_regeneration_rate_per_minute", 2886, 3840)}},
		{"LifeRegeneration8_", domain.GenerationSuffix, 74, "LifeRegeneration", regen, []domain.Stat{stat("life_regeneration_rate_per_minute", 3846, 4800)}},
		{"LifeRegeneration9", domain.GenerationSuffix, 78, "LifeRegeneration", regen, []domain.Stat{stat("life_regeneration_rate_per_minute", 4806, 5766)}},
		{"LifeRegeneration10__", domain.GenerationSuffix, 81, "LifeRegeneration", regen, []domain.Stat{stat("life_regeneration_rate_per_minute", 5772, 6720)}},
		{"LifeRegeneration11____", domain.GenerationSuffix, 83, "LifeRegeneration", regen, []domain.Stat{stat("life_regeneration_rate_per_minute", 6726, 7680)}},

		{"RingOnlyMod", domain.GenerationPrefix, 1, "RingOnly", weights("ring", 1000), []domain.Stat{stat("base_maximum_life", 1, 2)}},
	}

	mods := make(map[string]domain.Mod, len(specs)+3)
	for _, s := range specs {
		mods[s.key] = s.build()
	}

	// Mods every crafting filter must drop on otherwise eligible bases
	implicit := modSpec{"ShieldImplicitLife", domain.GenerationType("unique"), 1, "ImplicitLife", anywhere,
		[]domain.Stat{stat("base_maximum_life", 30, 30)}}.build()
	mods[implicit.Key] = implicit

	statless := modSpec{"StatlessSuffix", domain.GenerationSuffix, 1, "Statless", anywhere, nil}.build()
	mods[statless.Key] = statless

	jewel := modSpec{"AbyssJewelLife", domain.GenerationPrefix, 1, "IncreasedLife", anywhere,
		[]domain.Stat{stat("base_maximum_life", 21, 25)}}.build()
	jewel.Domain = "abyss_jewel"
	mods[jewel.Key] = jewel

	return mods
}

// ItemBases returns the base items table keyed by metadata id.
func ItemBases() map[string]domain.ItemBase {
	bases := []domain.ItemBase{
		{ID: "Metadata/Items/Weapons/TwoHandWeapons/Bows/Bow16", Name: ImperialBow, ItemClass: "Bows",
			Tags: []string{"bow", "ranged", "two_hand_weapon", "twohand", "weapon", "default"}, Requirements: &domain.Requirements{Level: 66}},
		{ID: "Metadata/Items/Weapons/TwoHandWeapons/Bows/Bow5", Name: LongBow, ItemClass: "Bows",
			Tags: []string{"bow", "ranged", "two_hand_weapon", "twohand", "weapon", "default"}, Requirements: &domain.Requirements{Level: 26}},
		{ID: "Metadata/Items/Armours/Boots/BootsDexInt10", Name: CarnalBoots, ItemClass: "Boots",
			Tags: []string{"dex_int_armour", "boots", "armour", "default"}, Requirements: &domain.Requirements{Level: 55}},
		{ID: "Metadata/Items/Armours/Boots/BootsStrDex2", Name: RingmailBoots, ItemClass: "Boots",
			Tags: []string{"str_dex_armour", "boots", "armour", "default"}, Requirements: &domain.Requirements{Level: 20}},
		{ID: "Metadata/Items/Armours/BodyArmours/BodyStr6", Name: WarPlate, ItemClass: "Body Armours",
			Tags: []string{"str_armour", "body_armour", "armour", "default"}, Requirements: &domain.Requirements{Level: 35}},
		{ID: "Metadata/Items/Armours/Shields/ShieldStr3", Name: CopperTowerShield, ItemClass: "Shields",
			Tags: []string{"str_shield", "shield", "armour", "default"}, Requirements: &domain.Requirements{Level: 24}},
		{ID: "Metadata/Items/Weapons/OneHandWeapons/OneHandThrustingSwords/Rapier7", Name: AntiqueRapier, ItemClass: "Thrusting One Hand Swords",
			Tags: []string{"rapier", "sword", "one_hand_weapon", "onehand", "weapon", "default"}, Requirements: &domain.Requirements{Level: 26}},
		{ID: "Metadata/Items/Armours/Gloves/GlovesInt11", Name: SilkGloves, ItemClass: "Gloves",
			Tags: []string{"int_armour", "gloves", "armour", "default"}},
		{ID: "Metadata/Items/Rings/RingUnreleased", Name: UnreleasedRing, ItemClass: "Rings",
			Tags: []string{"ring", "default"}, ReleaseState: "unreleased"},
		{ID: "Metadata/Items/Jewels/JewelAbyssCaster", Name: AbyssJewel, ItemClass: "Abyss Jewels",
			Tags: []string{"abyss_jewel", "default"}, Domain: "abyss_jewel"},
	}

	out := make(map[string]domain.ItemBase, len(bases))
	for _, b := range bases {
		if b.Domain == "" {
			b.Domain = domain.DomainItem
		}
		if b.ReleaseState == "" {
			b.ReleaseState = domain.ReleaseReleased
		}
		out[b.ID] = b
	}
	return out
}

func single(id, template, format string, handler ...string) domain.StatTranslation {
	return domain.StatTranslation{
		IDs: []string{id},
		Variants: []domain.LanguageInstance{{
			Condition:     []domain.Condition{{}},
			Format:        []string{format},
			IndexHandlers: [][]string{handler},
			Template:      template,
		}},
	}
}

// increasedOrReduced mirrors the common two-variant "increased"/"reduced" pattern.
func increasedOrReduced(id, what string) domain.StatTranslation {
	return domain.StatTranslation{
		IDs: []string{id},
		Variants: []domain.LanguageInstance{
			{
				Condition:     []domain.Condition{{Min: I64(1)}},
				Format:        []string{"#"},
				IndexHandlers: [][]string{{}},
				Template:      "{0}% increased " + what,
			},
			{
				Condition:     []domain.Condition{{Max: I64(-1)}},
				Format:        []string{"#"},
				IndexHandlers: [][]string{{"negate"}},
				Template:      "{0}% reduced " + what,
			},
		},
	}
}

// Translations returns the English stat translation table.
func Translations() []domain.StatTranslation {
	return []domain.StatTranslation{
		increasedOrReduced("local_physical_damage_+%", "Physical Damage"),
		increasedOrReduced("base_movement_velocity_+%", "Movement Speed"),
		increasedOrReduced("base_item_found_rarity_+%", "Rarity of Items found"),
		single("base_maximum_life", "{0} to maximum Life", "+#"),
		single("base_maximum_mana", "{0} to maximum Mana", "+#"),
		single("base_mana_cost_+", "{0} to Total Mana Cost of Skills", "+#"),
		single("base_fire_damage_resistance_%", "{0}% to Fire Resistance", "+#"),
		single("base_cold_damage_resistance_%", "{0}% to Cold Resistance", "+#"),
		single("local_life_gain_per_target", "Gain {0} Life per Enemy Hit by Attacks", "#"),
		single("life_gained_on_enemy_death", "Gain {0} Life per Enemy Killed", "#"),
		single("life_regeneration_rate_per_minute", "Regenerate {0} Life per second", "#", "per_minute_to_per_second"),
		single("life_leech_from_physical_attack_damage_permyriad", "{0}% of Physical Attack Damage Leeched as Life", "#", "divide_by_one_hundred"),
		{
			IDs: []string{"local_minimum_added_cold_damage", "local_maximum_added_cold_damage"},
			Variants: []domain.LanguageInstance{{
				Condition:     []domain.Condition{{}, {}},
				Format:        []string{"#", "#"},
				IndexHandlers: [][]string{{}, {}},
				Template:      "Adds {0} to {1} Cold Damage",
			}},
		},
	}
}

// Tables bundles the fixture tables.
func Tables() domain.ReferenceTables {
	return domain.ReferenceTables{
		Mods:         Mods(),
		ItemBases:    ItemBases(),
		Translations: Translations(),
	}
}
