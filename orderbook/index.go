package orderbook

import "github.com/tidwall/hashmap"

// defaultReservedOrderSlots sizes the order index's initial bucket
// allocation, avoiding early rehashes for a freshly opened book.
const defaultReservedOrderSlots = 1024

// orderIndex maps an order id to the *Order carrying that order's
// current ladder/queue position, giving cancel and modify O(1) lookup
// instead of a ladder walk.
type orderIndex struct {
	byID *hashmap.Map[uint64, *Order]
}

func newOrderIndex() *orderIndex {
	return &orderIndex{byID: hashmap.New[uint64, *Order](defaultReservedOrderSlots)}
}

// insert records order under its id. Returns ErrDuplicateOrderID if an
// order with that id is already present.
func (idx *orderIndex) insert(o *Order) error {
	if _, exists := idx.byID.Get(o.id); exists {
		return ErrDuplicateOrderID
	}
	idx.byID.Set(o.id, o)
	return nil
}

// lookup returns the order with the given id, or nil if absent.
func (idx *orderIndex) lookup(id uint64) *Order {
	o, ok := idx.byID.Get(id)
	if !ok {
		return nil
	}
	return o
}

// remove deletes id from the index.
func (idx *orderIndex) remove(id uint64) {
	idx.byID.Delete(id)
}

// len returns the number of indexed orders.
func (idx *orderIndex) len() int {
	return idx.byID.Len()
}
