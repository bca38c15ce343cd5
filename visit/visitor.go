package visit

// Visitor is a function that visits (key, element) pairs.
// The visitor calls the provided callback for each pair.
// If the callback returns (false, nil), the visit stops.
// If the callback returns an error, the visit stops and returns that error.
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
