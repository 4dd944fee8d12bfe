package world

// DefaultModifier returns the effect an Item of this kind applies when
// consumed. Food always uses the Attribute modifier (capped at Sober by
// the player model, never pushing Sober into High); every dose variant
// uses Intoxication. The exact numbers are this repo's own balancing
// pass — spec.md pins only the shape of the formulas, not magnitudes,
// beyond the worked overdose example in §8.
func DefaultModifier(kind ItemKind) Modifier {
	switch kind {
	case ItemFood:
		return Modifier{Kind: ModifierAttribute, StateOfMind: 10}
	case ItemDose:
		return Modifier{Kind: ModifierIntoxication, StateOfMind: 10, Tolerance: 1}
	case ItemStrongDose:
		return Modifier{Kind: ModifierIntoxication, StateOfMind: 20, Tolerance: 2}
	case ItemCardinalDose:
		return Modifier{Kind: ModifierIntoxication, StateOfMind: 10, Tolerance: 1}
	case ItemDiagonalDose:
		return Modifier{Kind: ModifierIntoxication, StateOfMind: 10, Tolerance: 1}
	default:
		return Modifier{}
	}
}

// DefaultIrresistible returns an item kind's pull radius before Will
// reduces it (spec.md §3, the Item.irresistible field).
func DefaultIrresistible(kind ItemKind) int {
	switch kind {
	case ItemDose, ItemCardinalDose, ItemDiagonalDose:
		return 3
	case ItemStrongDose:
		return 5
	default:
		return 0
	}
}

// NewItem builds an Item of the given kind with its default modifier and
// irresistible radius.
func NewItem(kind ItemKind) Item {
	return Item{
		Kind:         kind,
		Modifier:     DefaultModifier(kind),
		Irresistible: DefaultIrresistible(kind),
	}
}
