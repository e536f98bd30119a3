package linearprobing

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that holds a live entry
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot that has been in use but was deleted (tombstone)
const SlotDeleted uint8 = 2

// GrowLoadFactor - Put and Insert double the capacity first if the load factor is at or above this value
const GrowLoadFactor = 0.5

// ShrinkLoadFactor - Delete halves the capacity if the load factor ends up at or below this value
const ShrinkLoadFactor = 0.125

// MinCapacity - The table never shrinks below this number of slots
const MinCapacity = 1
