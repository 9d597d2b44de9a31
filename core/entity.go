package core

// Entity is a unique identifier for a simulated object.
// Zero is never a valid entity.
type Entity uint64
