// Package logistics implements the logistics profile aggregate: the
// delivery-capability metadata (vehicle category, supporting document)
// owned one-to-one by a courier.
package logistics
