// Package pendingupdate implements the staged profile-change request: a
// partial update to a courier's commercial and logistics fields submitted by
// the courier and held for admin review. The raw payload stays opaque until
// an admin approves the request, at which point it is parsed into a typed
// ProfilePatch whose fields are all optional.
package pendingupdate
