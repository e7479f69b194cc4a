package entity

// Item is the only thing the service knows about an item: the identifier it
// was asked for. It is never stored.
type Item struct {
	ID int64
}
