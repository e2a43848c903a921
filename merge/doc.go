// Package merge deep-merges decoded JSON objects.
//
// Combine folds any number of source objects into a destination object in
// place; Merge does the same into a fresh object. Arrays found under the
// same key on both sides are concatenated, objects are merged key by key at
// every depth, and any other value from a later source wins.
//
//	dst, _ := load.LoadString(`{"tags": ["a"], "db": {"host": "x"}}`)
//	src, _ := load.LoadString(`{"tags": ["b"], "db": {"port": 5432}}`)
//	merge.Combine(dst, src)
//	// {"tags":["a","b"],"db":{"host":"x","port":5432}}
//
// Neither function can fail.
package merge
